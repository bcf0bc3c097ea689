package daemon

import "github.com/TristanLaR/glance/internal/document"

// Events is the outbound boundary to the presentation layer. FileLoaded
// announces a new document (new path, possibly new section set);
// ContentChanged announces an in-place update of the currently open
// document. Implementations must not block: they run on daemon goroutines.
type Events interface {
	FileLoaded(document.Document)
	ContentChanged(document.Document)
}

// NopEvents discards all notifications.
type NopEvents struct{}

func (NopEvents) FileLoaded(document.Document)     {}
func (NopEvents) ContentChanged(document.Document) {}
