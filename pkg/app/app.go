// Package app wires the command registry, the front end and the shell, and
// runs the application until its window closes.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/user/deskbridge/pkg/adapters/chromeshell"
	"github.com/user/deskbridge/pkg/adapters/playwrightshell"
	"github.com/user/deskbridge/pkg/bridge"
	"github.com/user/deskbridge/pkg/commands"
	"github.com/user/deskbridge/pkg/config"
	"github.com/user/deskbridge/pkg/frontend"
	"github.com/user/deskbridge/pkg/ports"
)

// shutdownTimeout bounds how long the front-end server may take to stop.
const shutdownTimeout = 5 * time.Second

// App is a running desktop application.
type App struct {
	name       string
	registry   *commands.Registry
	dispatcher ports.Dispatcher
	shell      ports.Shell
	logger     ports.Logger
}

// New creates a new App.
func New(
	name string,
	registry *commands.Registry,
	dispatcher ports.Dispatcher,
	shell ports.Shell,
	logger ports.Logger,
) *App {
	return &App{
		name:       name,
		registry:   registry,
		dispatcher: dispatcher,
		shell:      shell,
		logger:     logger,
	}
}

// Run resolves the front end and blocks in the shell until the window is
// closed or ctx is cancelled.
func (a *App) Run(ctx context.Context, frontendSource string) error {
	a.logger.Info("Starting %s with %d commands", a.name, len(a.registry.Names()))

	fe, err := frontend.Resolve(ctx, frontendSource, a.logger)
	if err != nil {
		return fmt.Errorf("resolve front end: %w", err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := fe.Close(stopCtx); err != nil {
			a.logger.Warn("Failed to stop front-end server: %s", err)
		}
	}()
	a.logger.Info("Serving front end from %s", fe.Source)

	a.logger.Info("Opening window on %s", fe.URL)
	if err := a.shell.Run(ctx, fe.URL, a.dispatcher); err != nil {
		a.logger.Error("Failed to open window: %s", err)
		return fmt.Errorf("shell: %w", err)
	}

	if ctx.Err() == nil {
		a.logger.Info("Window closed")
	}
	return nil
}

// NewShell builds the shell backend selected by cfg, with the bridge shim
// installed.
func NewShell(cfg config.Config, logger ports.Logger) (ports.Shell, error) {
	opts := ShellOptions(cfg)
	switch cfg.Shell.Backend {
	case config.BackendChromedp, "":
		return chromeshell.New(opts, logger), nil
	case config.BackendPlaywright:
		return playwrightshell.New(opts, logger), nil
	default:
		return nil, fmt.Errorf("unsupported shell backend: %s", cfg.Shell.Backend)
	}
}

// ShellOptions maps cfg onto ports.ShellOptions.
func ShellOptions(cfg config.Config) ports.ShellOptions {
	return ports.ShellOptions{
		Title:       cfg.Window.Title,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		Headless:    cfg.Shell.Headless,
		BrowserPath: cfg.Shell.BrowserPath,
		UserDataDir: cfg.Shell.UserDataDir,
		Binding:     bridge.DefaultBinding,
		InitScript:  bridge.Shim(bridge.DefaultBinding, cfg.Shell.CompatGlobal, cfg.Window.Title),
	}
}
