// Package main provides the entry point for deskbridge.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/deskbridge/pkg/adapters/hostinfo"
	"github.com/user/deskbridge/pkg/adapters/logger"
	"github.com/user/deskbridge/pkg/adapters/osfilesystem"
	"github.com/user/deskbridge/pkg/app"
	"github.com/user/deskbridge/pkg/bridge"
	"github.com/user/deskbridge/pkg/commands"
	"github.com/user/deskbridge/pkg/config"
	"github.com/user/deskbridge/pkg/ports"
	"github.com/user/deskbridge/pkg/tracing"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Run      RunCmd      `cmd:"" default:"withargs" help:"Open the application window (default)."`
	Invoke   InvokeCmd   `cmd:"" help:"Invoke one command without a window and print its result as JSON."`
	Commands CommandsCmd `cmd:"" help:"List the commands the front end can invoke."`
	Version  VersionCmd  `cmd:"" help:"Show version information."`
}

// RunCmd defines the run subcommand.
type RunCmd struct {
	Config   string `short:"c" type:"path" help:"YAML configuration file."`
	Frontend string `short:"f" help:"Front end to load: http(s) URL or directory (default: bundled page)."`

	// Window options (override config)
	Title  *string `help:"Window title."`
	Width  *int    `short:"W" help:"Window width in pixels."`
	Height *int    `short:"H" help:"Window height in pixels."`

	// Shell options
	Shell      string `help:"Shell backend (chromedp, playwright)."`
	ChromePath string `help:"Path to Chrome executable (falls back to CHROME_PATH env, then system default)."`
	Headless   bool   `help:"Run the browser without a visible window."`

	// Logging options
	LogLevel string `short:"l" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
	Trace    bool   `help:"Print OpenTelemetry spans for each command invocation."`
}

// InvokeCmd defines the invoke subcommand.
type InvokeCmd struct {
	Command  string            `arg:"" help:"Command name."`
	Arg      map[string]string `short:"a" help:"Argument as key=value (repeatable)."`
	ArgsJSON string            `name:"args-json" help:"Arguments as a JSON object."`

	Config   string `short:"c" type:"path" help:"YAML configuration file."`
	LogLevel string `short:"l" help:"Log level (debug, info, warn, error)."`

	out io.Writer `kong:"-"`
}

// CommandsCmd lists registered commands.
type CommandsCmd struct {
	out io.Writer `kong:"-"`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

const appName = "deskbridge"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name(appName),
		kong.Description(l10n.T("Desktop application backend exposing host file and system commands to a web front end.")),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the run command.
func (cmd *RunCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	log := newLogger(cfg.Logger)

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracer)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("Failed to flush traces: %s", err)
		}
	}()

	fs := osfilesystem.New()
	if cfg.Shell.UserDataDir != "" {
		if err := fs.MkdirAll(cfg.Shell.UserDataDir); err != nil {
			return fmt.Errorf("create browser profile directory: %w", err)
		}
	}

	registry := commands.NewRegistry(commands.New(fs, hostinfo.New()))
	dispatcher := bridge.NewDispatcher(registry, log)

	shell, err := app.NewShell(cfg, log)
	if err != nil {
		return err
	}

	if err := app.New(appName, registry, dispatcher, shell, log).Run(ctx, cfg.Frontend); err != nil {
		return err
	}

	log.Info("Application exited")
	return nil
}

// buildConfig loads the config file and environment, then applies flags.
func (cmd *RunCmd) buildConfig() (config.Config, error) {
	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	if cmd.Frontend != "" {
		cfg.Frontend = cmd.Frontend
	}
	if cmd.Title != nil {
		cfg.Window.Title = *cmd.Title
	}
	if cmd.Width != nil {
		cfg.Window.Width = *cmd.Width
	}
	if cmd.Height != nil {
		cfg.Window.Height = *cmd.Height
	}
	if cmd.Shell != "" {
		cfg.Shell.Backend = cmd.Shell
	}
	if cmd.ChromePath != "" {
		cfg.Shell.BrowserPath = cmd.ChromePath
	}
	if cmd.Headless {
		cfg.Shell.Headless = true
	}
	if cmd.LogLevel != "" {
		cfg.Logger.Level = cmd.LogLevel
	}
	if cmd.Quiet {
		cfg.Logger.Quiet = true
	}
	if cmd.Trace {
		cfg.Tracer.Enabled = true
		cfg.Tracer.Exporter = "stdout"
	}

	return cfg, cfg.Validate()
}

// Run executes the invoke command.
func (cmd *InvokeCmd) Run() error {
	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.LogLevel != "" {
		cfg.Logger.Level = cmd.LogLevel
	}

	args, err := cmd.arguments()
	if err != nil {
		return err
	}

	dispatcher := bridge.NewDispatcher(newRegistry(), newLogger(cfg.Logger))
	result, err := dispatcher.Call(context.Background(), cmd.Command, args)
	if err != nil {
		return err
	}

	out, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Fprintln(writerOr(cmd.out), string(out))
	return nil
}

// arguments builds the JSON argument object from --args-json or --arg pairs.
func (cmd *InvokeCmd) arguments() (json.RawMessage, error) {
	if cmd.ArgsJSON != "" {
		if len(cmd.Arg) > 0 {
			return nil, errors.New(l10n.T("--arg and --args-json cannot be combined"))
		}
		trimmed := strings.TrimSpace(cmd.ArgsJSON)
		if !json.Valid([]byte(trimmed)) || !strings.HasPrefix(trimmed, "{") {
			return nil, errors.New(l10n.T("--args-json must be a JSON object"))
		}
		return json.RawMessage(trimmed), nil
	}
	if len(cmd.Arg) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(cmd.Arg)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Run executes the commands command.
func (cmd *CommandsCmd) Run() error {
	w := writerOr(cmd.out)
	for _, name := range newRegistry().Names() {
		fmt.Fprintln(w, name)
	}
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("deskbridge version %s", version))
	return nil
}

func newRegistry() *commands.Registry {
	return commands.NewRegistry(commands.New(osfilesystem.New(), hostinfo.New()))
}

func newLogger(cfg config.LoggerConfig) ports.Logger {
	if cfg.Quiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(cfg.Level))
}

func writerOr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
