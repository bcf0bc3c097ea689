package ipc

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TristanLaR/glance/internal/document"
	"github.com/TristanLaR/glance/internal/logging"
)

// maxMessageSize bounds a forwarded message. Paths fit comfortably; a sender
// that streams forever is cut off here.
const maxMessageSize = 4096

// readTimeout bounds how long one connection may dawdle before sending its
// path.
const readTimeout = 5 * time.Second

// Server owns the rendezvous socket and dispatches validated file requests.
type Server struct {
	path     string
	logger   *slog.Logger
	listener net.Listener
	onFile   func(path string)

	mu     sync.Mutex
	wg     sync.WaitGroup
	closed bool
}

// NewServer binds the rendezvous socket exclusively, removing any stale
// socket file first. The caller must already hold the single-instance lock:
// that is what proves a leftover socket is unowned and safe to remove.
func NewServer(path string, onFile func(string), logger *slog.Logger) (*Server, error) {
	if onFile == nil {
		return nil, errors.New("ipc server requires a file request handler")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("ensure socket directory: %w", err)
		}
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("remove stale socket: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	return &Server{
		path:     path,
		logger:   logger.With(logging.String("component", "ipc")),
		listener: listener,
		onFile:   onFile,
	}, nil
}

// Serve accepts connections until the server is closed. Each connection is
// handled on its own goroutine with a bounded read, so one slow or malicious
// sender cannot block later ones, and a fault in one handler never reaches
// the accept loop.
func (s *Server) Serve() {
	s.logger.Info("rendezvous socket listening", logging.String("socket", s.path))
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				if s.isClosed() {
					return
				}
				s.logger.Warn("accept failed", logging.Error(err))
				continue
			}
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				s.handleConn(c)
			}(conn)
		}
	}()
}

// Close stops the server and removes the socket file. The daemon itself
// never closes mid-process; this exists for tests.
func (s *Server) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	_ = s.listener.Close()
	s.wg.Wait()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("failed to remove socket", logging.String("socket", s.path), logging.Error(err))
	}
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()
	connLogger := s.logger.With(logging.String("conn", shortID()))
	defer func() {
		if r := recover(); r != nil {
			connLogger.Error("connection handler panicked", logging.String("panic", fmt.Sprint(r)))
		}
	}()

	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	data, err := io.ReadAll(io.LimitReader(conn, maxMessageSize))
	if err != nil {
		connLogger.Warn("read failed", logging.Error(err))
		return
	}

	raw := strings.TrimSpace(string(data))
	if raw == "" {
		connLogger.Warn("empty message dropped")
		return
	}

	canonical, err := document.ValidatePath(raw)
	if err != nil {
		connLogger.Warn("forwarded path rejected", logging.String("path", raw), logging.Error(err))
		return
	}

	connLogger.Info("file request received", logging.String("path", canonical))
	s.onFile(canonical)
}

func shortID() string {
	return uuid.NewString()[:8]
}
