package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// appDirName is the per-user directory shared by every glance instance.
// All instances must derive the same locations for the rendezvous socket,
// lock file, and history store.
const appDirName = "glance"

const (
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// ConfigDir returns the per-user configuration directory.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// CacheDir returns the per-user cache directory. It backs the history store
// and serves as the socket location fallback when no runtime dir exists.
func CacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("user cache dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// RuntimeDir returns the per-user runtime directory, or "" when the platform
// provides none.
func RuntimeDir() string {
	if base := os.Getenv("XDG_RUNTIME_DIR"); base != "" {
		return filepath.Join(base, appDirName)
	}
	return ""
}
