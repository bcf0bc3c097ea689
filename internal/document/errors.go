package document

import "errors"

var (
	// ErrNotFound indicates the requested path does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrEmptyFile indicates the file contains only whitespace.
	ErrEmptyFile = errors.New("file is empty")

	// ErrUnsupportedType indicates the file extension is not in the allowed
	// set of document and diagram extensions.
	ErrUnsupportedType = errors.New("unsupported file type")
)
