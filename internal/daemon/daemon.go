package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"

	"github.com/TristanLaR/glance/internal/config"
	"github.com/TristanLaR/glance/internal/document"
	"github.com/TristanLaR/glance/internal/ipc"
	"github.com/TristanLaR/glance/internal/logging"
	"github.com/TristanLaR/glance/internal/recent"
	"github.com/TristanLaR/glance/internal/watch"
)

// ErrAlreadyRunning reports that another daemon holds the instance lock.
var ErrAlreadyRunning = errors.New("another glance instance is already running")

// Options configures a Daemon.
type Options struct {
	Config     *config.Config
	Logger     *slog.Logger
	Initial    document.Document
	NoTruncate bool
	Events     Events

	SocketPath  string
	LockPath    string
	HistoryPath string
}

// Daemon is the single long-lived glance process.
type Daemon struct {
	cfg        *config.Config
	logger     *slog.Logger
	state      *document.State
	watcher    *watch.Controller
	server     *ipc.Server
	recents    *recent.Store
	events     Events
	noTruncate bool

	socketPath string
	lockPath   string
	lock       *flock.Flock
}

// New constructs a daemon; Start acquires resources.
func New(opts Options) (*Daemon, error) {
	if opts.Config == nil {
		return nil, errors.New("daemon requires config")
	}
	if opts.SocketPath == "" || opts.LockPath == "" {
		return nil, errors.New("daemon requires socket and lock paths")
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	events := opts.Events
	if events == nil {
		events = NopEvents{}
	}

	d := &Daemon{
		cfg:        opts.Config,
		logger:     logger,
		state:      document.NewState(opts.Initial),
		events:     events,
		noTruncate: opts.NoTruncate,
		socketPath: opts.SocketPath,
		lockPath:   opts.LockPath,
		lock:       flock.New(opts.LockPath),
	}

	watcher, err := watch.New(watch.Options{
		State:      d.state,
		Logger:     logger,
		NoTruncate: opts.NoTruncate,
		OnChange:   d.contentChanged,
	})
	if err != nil {
		return nil, err
	}
	d.watcher = watcher

	if opts.HistoryPath != "" {
		store, err := recent.Open(opts.HistoryPath)
		if err != nil {
			// History is optional; the viewer works without it.
			logger.Warn("history store unavailable", logging.Error(err))
		} else {
			d.recents = store
		}
	}

	return d, nil
}

// Start acquires the single-instance lock, starts the watcher, and binds and
// serves the rendezvous socket. It returns ErrAlreadyRunning when another
// daemon holds the lock.
func (d *Daemon) Start() error {
	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire instance lock: %w", err)
	}
	if !ok {
		return ErrAlreadyRunning
	}

	initial := d.state.Snapshot()
	d.watcher.Start(initial.Path)

	// Holding the lock proves any leftover socket is stale; NewServer
	// removes it and takes ownership.
	server, err := ipc.NewServer(d.socketPath, d.handleFileRequest, d.logger)
	if err != nil {
		_ = d.lock.Unlock()
		return err
	}
	d.server = server

	// Announce the initial document before accepting forwards, so a request
	// landing right after bind can never be followed by a staler FileLoaded.
	if initial.Path != "" {
		d.remember(initial)
		d.events.FileLoaded(initial)
	}
	d.server.Serve()

	d.logger.Info("daemon started",
		logging.String("lock", d.lockPath),
		logging.String("file", initial.Path))
	return nil
}

// Close releases the lock and every resource. The daemon normally runs until
// process exit; Close exists for tests and orderly shutdown on signals.
func (d *Daemon) Close() {
	if d.server != nil {
		d.server.Close()
		d.server = nil
	}
	d.watcher.Close()
	if err := d.recents.Close(); err != nil {
		d.logger.Warn("closing history store", logging.Error(err))
	}
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("releasing instance lock", logging.Error(err))
	}
}

// OpenPath validates and loads path, swaps it in as the current document,
// retargets the watcher, and signals the presentation layer. It is the
// single entry point for forwarded launches, drag-and-drop, and
// OS file-association requests. Failures leave the prior document untouched.
func (d *Daemon) OpenPath(path string) error {
	canonical, err := document.ValidatePath(path)
	if err != nil {
		return err
	}

	doc, err := document.Read(canonical, d.noTruncate)
	if err != nil {
		return err
	}

	d.state.SetDocument(doc)
	d.remember(doc)
	d.watcher.Retarget(doc.Path)
	d.events.FileLoaded(doc)

	d.logger.Info("file opened",
		logging.String("path", doc.Path),
		logging.Int64("bytes", doc.Size),
		logging.String("class", doc.Class.String()))
	return nil
}

// Snapshot returns the current document.
func (d *Daemon) Snapshot() document.Document {
	return d.state.Snapshot()
}

// Recents returns the history store, or nil when history is disabled.
func (d *Daemon) Recents() *recent.Store {
	return d.recents
}

// handleFileRequest serves one forwarded path. Errors are logged and the
// request dropped; the daemon keeps serving.
func (d *Daemon) handleFileRequest(path string) {
	if err := d.OpenPath(path); err != nil {
		d.logger.Warn("forwarded request dropped",
			logging.String("path", path),
			logging.Error(err))
	}
}

func (d *Daemon) contentChanged(doc document.Document) {
	d.events.ContentChanged(doc)
}

func (d *Daemon) remember(doc document.Document) {
	if d.recents == nil || doc.Path == "" {
		return
	}
	if err := d.recents.Touch(context.Background(), doc.Path, doc.Name); err != nil {
		d.logger.Warn("recording recent file", logging.Error(err))
	}
}
