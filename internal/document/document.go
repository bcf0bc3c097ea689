package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LargeFileThreshold is the byte size above which a document is classified
// Large and displayed sectioned instead of whole.
const LargeFileThreshold = 500 * 1024

// PlaceholderName titles the window while no file is open.
const PlaceholderName = "Glance"

// SizeClass drives whether sectioned display is applied.
type SizeClass int

const (
	Normal SizeClass = iota
	Large
)

func (c SizeClass) String() string {
	if c == Large {
		return "large"
	}
	return "normal"
}

// Classify derives the size class from a byte size, honoring the no-truncate
// override.
func Classify(size int64, noTruncate bool) SizeClass {
	if size > LargeFileThreshold && !noTruncate {
		return Large
	}
	return Normal
}

// Document is the immutable record of one loaded file.
type Document struct {
	// Content is the full text of the file.
	Content string
	// Path is the canonical absolute path; empty means no file open yet.
	Path string
	// Name is the file's base name, used for window titling.
	Name string
	// Size is the file's byte size at load time.
	Size int64
	// Class is derived from Size against LargeFileThreshold.
	Class SizeClass
}

// Empty returns the zero document used by a daemon started without a file.
func Empty() Document {
	return Document{Name: PlaceholderName}
}

// Read loads path into a Document. It fails with ErrNotFound when the path
// does not exist, ErrEmptyFile when the trimmed content is empty, and a
// wrapped I/O error otherwise. The path is canonicalized; the returned
// document is complete or the error is non-nil, never both partial.
func Read(path string, noTruncate bool) (Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Document{}, fmt.Errorf("stat %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	content := string(data)
	if strings.TrimSpace(content) == "" {
		return Document{}, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	canonical, err := Canonicalize(path)
	if err != nil {
		return Document{}, err
	}

	return Document{
		Content: content,
		Path:    canonical,
		Name:    filepath.Base(canonical),
		Size:    info.Size(),
		Class:   Classify(info.Size(), noTruncate),
	}, nil
}

// Canonicalize resolves symlinks and makes path absolute.
func Canonicalize(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("canonicalize %s: %w", path, err)
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("canonicalize %s: %w", path, err)
	}
	return abs, nil
}
