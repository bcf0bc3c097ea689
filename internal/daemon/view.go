package daemon

import (
	"path/filepath"

	"github.com/TristanLaR/glance/internal/config"
	"github.com/TristanLaR/glance/internal/document"
	"github.com/TristanLaR/glance/internal/markdown"
)

// View is the read model the presentation layer renders from: the document
// snapshot plus everything derived from it. Sections are computed only for
// Large documents; small ones take the unsectioned path.
type View struct {
	document.Document
	// Dir is the document's directory, for resolving relative image paths.
	Dir        string
	Sections   []markdown.Section
	IsDiagram  bool
	Extensions config.Extensions
}

// View builds the current presentation view from a fresh snapshot.
func (d *Daemon) View() View {
	doc := d.state.Snapshot()
	view := View{Document: doc, Extensions: d.cfg.Extensions}
	if doc.Path != "" {
		view.Dir = filepath.Dir(doc.Path)
		view.IsDiagram = document.IsDiagram(doc.Path)
	}
	if doc.Class == document.Large {
		view.Sections = markdown.Sections(doc.Content)
	}
	return view
}
