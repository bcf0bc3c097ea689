package markdown

import (
	"reflect"
	"strings"
	"testing"
)

func TestSectionsTwoHeadings(t *testing.T) {
	got := Sections("# A\nbody1\n## B\nbody2\n")
	want := []Section{
		{Level: 1, Title: "A", Body: "# A\nbody1", StartLine: 0},
		{Level: 2, Title: "B", Body: "## B\nbody2", StartLine: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sections = %+v, want %+v", got, want)
	}
}

func TestSectionsIntroBeforeFirstHeading(t *testing.T) {
	got := Sections("intro\n# A\nbody\n")
	want := []Section{
		{Level: 0, Title: "Introduction", Body: "intro", StartLine: 0},
		{Level: 1, Title: "A", Body: "# A\nbody", StartLine: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sections = %+v, want %+v", got, want)
	}
}

func TestSectionsBlankIntroSkipped(t *testing.T) {
	got := Sections("\n\n# A\nbody\n")
	if len(got) != 1 {
		t.Fatalf("expected 1 section, got %d: %+v", len(got), got)
	}
	if got[0].Level != 1 || got[0].Title != "A" || got[0].StartLine != 2 {
		t.Fatalf("unexpected section: %+v", got[0])
	}
}

func TestSectionsNoHeadings(t *testing.T) {
	doc := "plain text\nmore text\n"
	got := Sections(doc)
	if len(got) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got))
	}
	s := got[0]
	if s.Level != 0 || s.Title != "Document" || s.Body != doc || s.StartLine != 0 {
		t.Fatalf("unexpected section: %+v", s)
	}
}

func TestSectionsEmptyDocument(t *testing.T) {
	got := Sections("")
	if len(got) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got))
	}
	if got[0].Body != "" || got[0].Level != 0 {
		t.Fatalf("unexpected section: %+v", got[0])
	}
}

func TestSectionsIgnoreHeadingsInFences(t *testing.T) {
	doc := "# Real\n```\n# fake\n```\n~~~\n## fake too\n~~~\ntail\n"
	got := Sections(doc)
	if len(got) != 1 {
		t.Fatalf("expected 1 section, got %d: %+v", len(got), got)
	}
	if got[0].Title != "Real" {
		t.Fatalf("unexpected section: %+v", got[0])
	}
}

func TestSectionsIndentedFenceStillToggles(t *testing.T) {
	doc := "# A\n  ```\n# hidden\n  ```\n# B\n"
	got := Sections(doc)
	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %d: %+v", len(got), got)
	}
	if got[0].Title != "A" || got[1].Title != "B" {
		t.Fatalf("unexpected sections: %+v", got)
	}
}

func TestSectionsReconstructDocument(t *testing.T) {
	docs := []string{
		"# A\nbody1\n## B\nbody2\n",
		"intro\n# A\nbody\n",
		"no headings at all\njust text",
		"# only heading",
		"a\nb\nc\n# H\nd\n```\n# x\n```\ne",
	}
	for _, doc := range docs {
		sections := Sections(doc)
		var bodies []string
		for _, s := range sections {
			bodies = append(bodies, s.Body)
		}
		joined := strings.Join(bodies, "\n")

		wantLines := strings.Join(splitLines(doc), "\n")
		if joined != wantLines {
			t.Errorf("doc %q: bodies reconstruct %q, want %q", doc, joined, wantLines)
		}
	}
}

func TestSectionsIdempotent(t *testing.T) {
	doc := "intro\n# A\nbody\n## B\nmore\n"
	first := Sections(doc)
	second := Sections(doc)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Sections not idempotent: %+v vs %+v", first, second)
	}
}

func TestSectionsOrderingAndBounds(t *testing.T) {
	doc := strings.Repeat("filler\n", 3) + "# one\nx\n### three\ny\n###### six\nz\n"
	sections := Sections(doc)
	for i := 1; i < len(sections); i++ {
		if sections[i].StartLine <= sections[i-1].StartLine {
			t.Fatalf("sections out of order: %+v", sections)
		}
	}
	for _, s := range sections {
		if s.Level < 0 || s.Level > 6 {
			t.Fatalf("level out of range: %+v", s)
		}
	}
}
