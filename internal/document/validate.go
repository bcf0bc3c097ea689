package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// allowedExtensions lists the two document and two diagram-description
// extensions glance will open. Anything else is rejected before it reaches
// the parser, regardless of where the request came from.
var allowedExtensions = map[string]struct{}{
	".md":       {},
	".markdown": {},
	".puml":     {},
	".plantuml": {},
}

// IsDiagram reports whether path names a diagram-description file.
func IsDiagram(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".puml" || ext == ".plantuml"
}

// ValidatePath checks that an externally supplied path exists and carries an
// allowed extension, then returns its canonical form. Canonicalizing after
// the checks stops relative or symlinked paths from escaping into arbitrary
// files.
func ValidatePath(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, path)
	}

	return Canonicalize(path)
}
