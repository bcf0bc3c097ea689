package ipc_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/TristanLaR/glance/internal/document"
	"github.com/TristanLaR/glance/internal/ipc"
	"github.com/TristanLaR/glance/internal/logging"
	"github.com/TristanLaR/glance/internal/testsupport"
)

type requestSink struct {
	mu    sync.Mutex
	paths []string
}

func (r *requestSink) accept(path string) {
	r.mu.Lock()
	r.paths = append(r.paths, path)
	r.mu.Unlock()
}

func (r *requestSink) wait(t *testing.T, n int) []string {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		r.mu.Lock()
		if len(r.paths) >= n {
			out := append([]string(nil), r.paths...)
			r.mu.Unlock()
			return out
		}
		r.mu.Unlock()
		time.Sleep(10 * time.Millisecond)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t.Fatalf("timed out waiting for %d requests, have %d", n, len(r.paths))
	return nil
}

func startServer(t *testing.T, sink *requestSink) string {
	t.Helper()
	socket := testsupport.SocketPath(t)
	srv, err := ipc.NewServer(socket, sink.accept, logging.NewNop())
	if err != nil {
		t.Fatalf("ipc.NewServer: %v", err)
	}
	srv.Serve()
	t.Cleanup(srv.Close)
	return socket
}

func TestProbeAndForwardRoundTrip(t *testing.T) {
	sink := &requestSink{}
	socket := startServer(t, sink)

	path := testsupport.WriteDoc(t, "notes.md", "# hi\n")
	if !ipc.ProbeAndForward(socket, path) {
		t.Fatal("ProbeAndForward should succeed with a listening daemon")
	}

	got := sink.wait(t, 1)
	want, err := document.Canonicalize(path)
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	if got[0] != want {
		t.Fatalf("dispatched %q, want %q", got[0], want)
	}
}

func TestProbeWithoutDaemonReturnsFalse(t *testing.T) {
	socket := filepath.Join(t.TempDir(), "absent.sock")

	start := time.Now()
	if ipc.ProbeAndForward(socket, "/whatever.md") {
		t.Fatal("probe must fail with no daemon")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Fatalf("probe took too long: %v", elapsed)
	}
}

func TestServerRejectsUnsupportedExtension(t *testing.T) {
	sink := &requestSink{}
	socket := startServer(t, sink)

	bad := testsupport.WriteDoc(t, "notes.txt", "text")
	if !ipc.ProbeAndForward(socket, bad) {
		t.Fatal("forward itself should succeed; rejection is server-side")
	}

	good := testsupport.WriteDoc(t, "notes.md", "# ok\n")
	if !ipc.ProbeAndForward(socket, good) {
		t.Fatal("forward of valid path failed")
	}

	got := sink.wait(t, 1)
	wantGood, _ := document.Canonicalize(good)
	for _, p := range got {
		if p != wantGood {
			t.Fatalf("rejected path leaked through: %q", p)
		}
	}
}

func TestServerSurvivesGarbageAndServesNext(t *testing.T) {
	sink := &requestSink{}
	socket := startServer(t, sink)

	// Nonexistent path: validated and dropped, loop keeps serving.
	if !ipc.ProbeAndForward(socket, filepath.Join(t.TempDir(), "ghost.md")) {
		t.Fatal("forward failed")
	}

	good := testsupport.WriteDoc(t, "real.md", "# real\n")
	if !ipc.ProbeAndForward(socket, good) {
		t.Fatal("forward of valid path failed")
	}

	got := sink.wait(t, 1)
	want, _ := document.Canonicalize(good)
	if got[len(got)-1] != want {
		t.Fatalf("expected %q dispatched, got %v", want, got)
	}
}

func TestNewServerRemovesStaleSocket(t *testing.T) {
	sink := &requestSink{}
	socket := testsupport.SocketPath(t)

	// Simulate a crashed daemon: a leftover entry at the socket path with no
	// listener behind it.
	if err := os.WriteFile(socket, nil, 0o600); err != nil {
		t.Fatalf("plant stale socket: %v", err)
	}

	srv, err := ipc.NewServer(socket, sink.accept, logging.NewNop())
	if err != nil {
		t.Fatalf("rebinding over stale socket: %v", err)
	}
	srv.Serve()
	t.Cleanup(srv.Close)

	path := testsupport.WriteDoc(t, "doc.md", "# doc\n")
	if !ipc.ProbeAndForward(socket, path) {
		t.Fatal("forward to rebound server failed")
	}
	sink.wait(t, 1)
}
