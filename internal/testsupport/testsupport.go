// Package testsupport provides shared fixtures for glance tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/TristanLaR/glance/internal/config"
)

// NewConfig produces a default config for tests.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()
	cfg := config.Default()
	return &cfg
}

// WriteDoc writes content to name inside a fresh temp directory and returns
// the full path.
func WriteDoc(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// SocketPath returns a short unix socket path for tests. Sockets created
// under deeply nested temp dirs can exceed the sun_path limit, so the path is
// rooted in the default temp dir and removed on cleanup.
func SocketPath(t testing.TB) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "glance-sock")
	if err != nil {
		t.Fatalf("mkdtemp: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return filepath.Join(dir, "glance.sock")
}
