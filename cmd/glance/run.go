package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/TristanLaR/glance/internal/config"
	"github.com/TristanLaR/glance/internal/daemon"
	"github.com/TristanLaR/glance/internal/document"
	"github.com/TristanLaR/glance/internal/ipc"
	"github.com/TristanLaR/glance/internal/logging"
)

// runViewer implements the rendezvous control flow: probe for a running
// instance, forward and exit when one answers, otherwise become the daemon
// for the rest of the process lifetime.
func runViewer(ctx context.Context, file string, noTruncateFlag bool, configPath string) error {
	cfg, cfgPath, cfgErr := config.Load(configPath)
	noTruncate := noTruncateFlag || cfg.NoTruncate

	socket, err := ipc.SocketPath()
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}

	initial := document.Empty()
	if file != "" {
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("file not found: %s", file)
		}

		forward := file
		if canonical, err := document.Canonicalize(file); err == nil {
			forward = canonical
		}
		if ipc.ProbeAndForward(socket, forward) {
			// The running instance took over; nothing left to do here.
			return nil
		}

		// No daemon yet: this launch becomes it, so a load failure is fatal.
		initial, err = document.Read(file, noTruncate)
		if err != nil {
			return err
		}
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	if cfgErr != nil {
		logger.Warn("config unusable, using defaults",
			logging.String("path", cfgPath),
			logging.Error(cfgErr))
	}

	cache, err := config.CacheDir()
	if err != nil {
		return err
	}

	d, err := daemon.New(daemon.Options{
		Config:      cfg,
		Logger:      logger,
		Initial:     initial,
		NoTruncate:  noTruncate,
		Events:      &logEvents{logger: logger},
		SocketPath:  socket,
		LockPath:    filepath.Join(cache, "glance.lock"),
		HistoryPath: filepath.Join(cache, "history.db"),
	})
	if err != nil {
		return err
	}

	if err := d.Start(); err != nil {
		if errors.Is(err, daemon.ErrAlreadyRunning) {
			if file == "" {
				// A bare relaunch with an instance already up is not a
				// failure; the running instance keeps the window.
				logger.Info("glance is already running")
				return nil
			}
			// Lost a startup race: a daemon appeared between the probe and
			// the lock. Forward to the winner instead.
			if ipc.ProbeAndForward(socket, initial.Path) {
				return nil
			}
		}
		return err
	}
	defer d.Close()

	signalCtx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	<-signalCtx.Done()

	logger.Info("glance shutting down")
	return nil
}

func newLogger(cfg *config.Config) (*slog.Logger, error) {
	outputs := []string{"stderr"}
	if cfg.Logging.File != "" {
		outputs = append(outputs, cfg.Logging.File)
	}
	return logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: outputs,
	})
}
