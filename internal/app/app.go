// Package app is the suzu application object. It owns the configuration
// store for the lifetime of the process, wires logging from the stored
// settings and shuts everything down in order.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/suzu-editor/suzu/internal/config"
	suzuerrors "github.com/suzu-editor/suzu/internal/errors"
	"github.com/suzu-editor/suzu/internal/logger"
	"github.com/suzu-editor/suzu/internal/platform"
)

// Store pointers read at startup.
const (
	LogFileKey  = "/logfile"
	LogLevelKey = "/loglevel"
)

// App holds the process-wide state.
type App struct {
	configPath string
	watch      bool
	storeOpts  []config.Option
	store      *config.Store

	initOnce  sync.Once
	initErr   error
	closeOnce sync.Once
}

// Option configures an App.
type Option func(*App)

// WithWatch makes Run reload the configuration whenever its file changes.
func WithWatch(enabled bool) Option {
	return func(a *App) { a.watch = enabled }
}

// WithStoreOptions passes extra options to the configuration store.
func WithStoreOptions(opts ...config.Option) Option {
	return func(a *App) { a.storeOpts = append(a.storeOpts, opts...) }
}

// New opens the configuration at configPath. The store is written back to
// its file when the application shuts down.
func New(configPath string, opts ...Option) *App {
	a := &App{configPath: configPath}
	for _, opt := range opts {
		opt(a)
	}

	storeOpts := append([]config.Option{config.WithFlushOnClose(true)}, a.storeOpts...)
	a.store = config.Open(configPath, storeOpts...)
	return a
}

// Store returns the configuration store.
func (a *App) Store() *config.Store {
	return a.store
}

// ConfigPath returns the path the configuration was loaded from.
func (a *App) ConfigPath() string {
	return a.configPath
}

// Initialize prepares the application. It runs once; later calls return the
// first result.
func (a *App) Initialize() error {
	a.initOnce.Do(func() {
		a.initErr = a.initialize()
	})
	return a.initErr
}

func (a *App) initialize() error {
	if !a.store.IsOK() {
		return suzuerrors.Wrap(suzuerrors.ErrCodeInvalidState, "configuration store is unusable", a.store.LoadError())
	}

	if err := a.store.LoadError(); err != nil {
		switch suzuerrors.CodeOf(err) {
		case suzuerrors.ErrCodeOpenFile:
			logger.App().Info("no configuration at %s, starting with defaults", a.configPath)
		default:
			// keep the unreadable file for the user to fix
			a.store.SetFlushOnClose(false)
			logger.App().Warn("configuration ignored, starting with defaults: %v", err)
			logger.App().Warn("%s will not be overwritten on exit", a.configPath)
		}
	}

	a.applyLogLevel()

	logfile := a.LogFile()
	if logfile != "" {
		if err := logger.InitFile(logfile); err != nil {
			logger.App().LogError(err, "cannot open log file")
		}
	}

	logger.App().InfoFields("application initialized", map[string]interface{}{
		"config":   a.configPath,
		"logfile":  logfile,
		"platform": platform.Platform(),
	})
	return nil
}

// applyLogLevel lowers the log threshold to the configured level. A stored
// level never hides lines that --verbose asked for.
func (a *App) applyLogLevel() {
	name := config.Convert(a.store.GetValue(LogLevelKey), "")
	if name == "" {
		return
	}
	level, err := logger.ParseLevel(name)
	if err != nil {
		logger.App().Warn("ignoring %s: %v", LogLevelKey, err)
		return
	}
	if level < logger.GetLevel() {
		logger.SetLevel(level)
	}
}

// LogFile returns the configured log file. Relative paths are resolved
// against the directory of the configuration file.
func (a *App) LogFile() string {
	logfile := config.Convert(a.store.GetValue(LogFileKey), "")
	if logfile == "" || filepath.IsAbs(logfile) || a.configPath == "" {
		return logfile
	}
	return filepath.Join(filepath.Dir(a.configPath), logfile)
}

// Run initializes the application and blocks until ctx is done, then shuts
// down. With watching enabled the configuration is reloaded on every change
// to its file.
func (a *App) Run(ctx context.Context) error {
	if err := a.Initialize(); err != nil {
		return err
	}
	defer a.Shutdown()

	g, gctx := errgroup.WithContext(ctx)
	if a.watch && a.configPath != "" {
		logger.App().Info("watching %s", a.configPath)
		g.Go(func() error {
			if err := a.store.Watch(gctx, a.onReload); err != nil {
				return fmt.Errorf("failed to watch configuration: %w", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		return nil
	})

	return g.Wait()
}

func (a *App) onReload(err error) {
	if err != nil {
		logger.App().LogError(err, "configuration reload failed")
		return
	}
	a.store.SetFlushOnClose(true)
	logger.App().Info("configuration reloaded from %s", a.configPath)
}

// Shutdown closes the store, writing it back to its file unless the file
// could not be parsed, and detaches the log file. It is safe to call more than once.
func (a *App) Shutdown() {
	a.closeOnce.Do(func() {
		if a.configPath != "" {
			if dir := filepath.Dir(a.configPath); dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					logger.App().LogError(err, "cannot create configuration directory")
				}
			}
		}
		a.store.Close()
		logger.App().Info("application shut down")
		if err := logger.CloseFile(); err != nil {
			logger.LogError(err, "failed to close log file")
		}
	})
}
