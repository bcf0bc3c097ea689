package markdown

import "strings"

// Section is one structural unit of a sectioned document. Bodies of
// consecutive sections tile the document: each spans from its StartLine up to
// the next section's StartLine.
type Section struct {
	// Level is 0 for synthetic intro/whole-document sections, 1-6 otherwise.
	Level     int
	Title     string
	Body      string
	StartLine int
}

const (
	introTitle    = "Introduction"
	documentTitle = "Document"
)

// Sections splits content into an ordered list of sections anchored at ATX
// headings. Headings inside fenced code blocks are ignored. Content before
// the first heading becomes a level-0 "Introduction" section when non-blank;
// a document without any headings yields a single level-0 "Document" section
// covering the entire input.
func Sections(content string) []Section {
	lines := splitLines(content)

	var sections []Section
	inFence := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if h, ok := ParseHeading(line); ok {
			sections = append(sections, Section{Level: h.Level, Title: h.Title, StartLine: i})
		}
	}

	for i := range sections {
		end := len(lines)
		if i+1 < len(sections) {
			end = sections[i+1].StartLine
		}
		sections[i].Body = strings.Join(lines[sections[i].StartLine:end], "\n")
	}

	if len(sections) > 0 && sections[0].StartLine > 0 {
		intro := strings.Join(lines[:sections[0].StartLine], "\n")
		if strings.TrimSpace(intro) != "" {
			sections = append([]Section{{Level: 0, Title: introTitle, Body: intro}}, sections...)
		}
	}

	if len(sections) == 0 {
		sections = append(sections, Section{Level: 0, Title: documentTitle, Body: content})
	}

	return sections
}

// splitLines splits on '\n' without producing a phantom empty line after a
// trailing newline.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" && strings.HasSuffix(content, "\n") {
		lines = lines[:len(lines)-1]
	}
	return lines
}
