package watch

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/TristanLaR/glance/internal/document"
	"github.com/TristanLaR/glance/internal/logging"
)

// settleDelay gives the writer a moment to finish before the file is
// re-read, so a half-written file is not loaded.
const settleDelay = 50 * time.Millisecond

// Options configures a Controller.
type Options struct {
	State      *document.State
	Logger     *slog.Logger
	NoTruncate bool
	// OnChange receives the refreshed document after a successful re-read.
	OnChange func(document.Document)
	// Settle overrides the write-settle delay; zero keeps the default.
	Settle time.Duration
}

// Controller watches one file path and refreshes document state on change.
// The watched target is owned exclusively by the run loop; other goroutines
// influence it only through Retarget.
type Controller struct {
	state      *document.State
	logger     *slog.Logger
	noTruncate bool
	onChange   func(document.Document)
	settle     time.Duration

	fsw      *fsnotify.Watcher
	retarget chan string
	done     chan struct{}
	once     sync.Once

	// target is accessed only from the run goroutine.
	target string
}

// New creates a Controller. Start must be called to begin watching.
func New(opts Options) (*Controller, error) {
	if opts.State == nil {
		return nil, fmt.Errorf("watch controller requires document state")
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	settle := opts.Settle
	if settle <= 0 {
		settle = settleDelay
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	return &Controller{
		state:      opts.State,
		logger:     logger.With(logging.String("component", "watch")),
		noTruncate: opts.NoTruncate,
		onChange:   opts.OnChange,
		settle:     settle,
		fsw:        fsw,
		retarget:   make(chan string, 1),
		done:       make(chan struct{}),
	}, nil
}

// Start launches the watch loop. With an empty initial path the controller
// idles until the first Retarget.
func (c *Controller) Start(initial string) {
	go c.run(initial)
}

// Retarget switches the watched path. The single-slot channel keeps only the
// most recent request: every retarget implies re-reading the now-current
// file, so earlier queued targets are obsolete.
func (c *Controller) Retarget(path string) {
	for {
		select {
		case c.retarget <- path:
			return
		default:
			select {
			case <-c.retarget:
			default:
			}
		}
	}
}

// Close stops the watch loop. The daemon never calls this mid-process; it
// exists for tests.
func (c *Controller) Close() {
	c.once.Do(func() {
		close(c.done)
		_ = c.fsw.Close()
	})
}

func (c *Controller) run(initial string) {
	if initial != "" {
		c.applyRetarget(initial)
	}

	for {
		// Pending retargets win over queued change events: switching files
		// must take effect before the next wait, not after it.
		c.drainRetargets()

		select {
		case <-c.done:
			return
		case path := <-c.retarget:
			c.safely(func() { c.applyRetarget(path) })
		case event, ok := <-c.fsw.Events:
			if !ok {
				return
			}
			c.safely(func() { c.handleEvent(event) })
		case err, ok := <-c.fsw.Errors:
			if !ok {
				return
			}
			c.logger.Warn("watcher error", logging.Error(err))
		}
	}
}

func (c *Controller) drainRetargets() {
	var pending string
	for {
		select {
		case path := <-c.retarget:
			pending = path
		default:
			if pending != "" {
				c.safely(func() { c.applyRetarget(pending) })
			}
			return
		}
	}
}

// applyRetarget subscribes the new path and unsubscribes the old one as one
// logical step. When the new path cannot be watched the previous target is
// kept: failing open onto a known-good file beats going dark.
func (c *Controller) applyRetarget(path string) {
	if path == c.target {
		return
	}
	if err := c.fsw.Add(path); err != nil {
		c.logger.Warn("cannot watch new target, keeping previous",
			logging.String("path", path),
			logging.String("previous", c.target),
			logging.Error(err))
		return
	}
	if c.target != "" {
		// The old file may already be gone; that is fine.
		_ = c.fsw.Remove(c.target)
	}
	c.target = path
	c.logger.Info("watching", logging.String("path", path))
}

func (c *Controller) handleEvent(event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
		return
	}
	if c.target == "" {
		return
	}

	time.Sleep(c.settle)

	doc, err := document.Read(c.target, c.noTruncate)
	if err != nil {
		// Deleted, unreadable, or momentarily empty: skip this cycle and
		// keep the previous content.
		c.logger.Debug("skipping refresh", logging.String("path", c.target), logging.Error(err))
		return
	}

	// The open document may have been replaced while this handler slept;
	// the conditional commit drops a refresh for the outgoing file. The
	// pending retarget will move the subscription on the next loop turn.
	if !c.state.SetContentFor(c.target, doc.Content, doc.Size, c.noTruncate) {
		c.logger.Debug("document replaced during settle, refresh dropped",
			logging.String("path", c.target))
		return
	}
	c.logger.Debug("content refreshed",
		logging.String("path", c.target),
		logging.Int64("bytes", doc.Size))

	if c.onChange != nil {
		c.onChange(c.state.Snapshot())
	}
}

// safely isolates one unit of work so a fault in a single cycle cannot take
// down the watch loop.
func (c *Controller) safely(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("watch cycle panicked", logging.String("panic", fmt.Sprint(r)))
		}
	}()
	fn()
}
