package markdown

import "strings"

// Heading is a recognized ATX heading line.
type Heading struct {
	Level int
	Title string
}

// ParseHeading reports whether line is an ATX heading. A heading is 1-6 '#'
// characters (after trimming surrounding whitespace) followed by a space or
// the end of the line. The title has the leading markers, any trailing run of
// '#', and surrounding whitespace stripped. A non-heading line is a normal
// result, not an error.
func ParseHeading(line string) (Heading, bool) {
	trimmed := strings.TrimSpace(line)

	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level < 1 || level > 6 {
		return Heading{}, false
	}

	rest := trimmed[level:]
	if rest != "" && rest[0] != ' ' {
		return Heading{}, false
	}

	title := strings.TrimSpace(rest)
	title = strings.TrimRight(title, "#")
	title = strings.TrimSpace(title)
	return Heading{Level: level, Title: title}, true
}
