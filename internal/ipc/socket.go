package ipc

import (
	"path/filepath"

	"github.com/TristanLaR/glance/internal/config"
)

const socketName = "glance.sock"

// SocketPath returns the well-known per-user rendezvous socket location.
// The runtime dir is preferred; the user cache dir is the fallback when the
// platform provides none. Every instance derives the same answer, so no
// configuration is needed for launches to find each other.
func SocketPath() (string, error) {
	if dir := config.RuntimeDir(); dir != "" {
		return filepath.Join(dir, socketName), nil
	}
	cache, err := config.CacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cache, socketName), nil
}
