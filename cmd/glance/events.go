package main

import (
	"log/slog"

	"github.com/TristanLaR/glance/internal/document"
	"github.com/TristanLaR/glance/internal/logging"
)

// logEvents is the headless presentation boundary: document lifecycle
// notifications land in the log where a frontend would otherwise consume
// them.
type logEvents struct {
	logger *slog.Logger
}

func (e *logEvents) FileLoaded(doc document.Document) {
	e.logger.Info("file loaded",
		logging.String("path", doc.Path),
		logging.String("name", doc.Name),
		logging.Int64("size", doc.Size),
		logging.String("class", doc.Class.String()))
}

func (e *logEvents) ContentChanged(doc document.Document) {
	e.logger.Info("content changed",
		logging.String("path", doc.Path),
		logging.Int64("size", doc.Size))
}
