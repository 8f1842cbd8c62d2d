// Package playwrightshell hosts the front end in a Chromium window driven by
// playwright-go.
package playwrightshell

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/user/deskbridge/pkg/bridge"
	"github.com/user/deskbridge/pkg/ports"
)

// Shell implements ports.Shell using playwright.
type Shell struct {
	opts ports.ShellOptions
	log  ports.Logger
}

// New creates a new Shell.
func New(opts ports.ShellOptions, log ports.Logger) *Shell {
	if opts.Binding == "" {
		opts.Binding = bridge.DefaultBinding
	}
	return &Shell{opts: opts, log: log.WithComponent("playwright")}
}

func (s *Shell) launchOptions() playwright.BrowserTypeLaunchOptions {
	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(s.opts.Headless),
	}
	if s.opts.Width > 0 && s.opts.Height > 0 {
		opts.Args = append(opts.Args, fmt.Sprintf("--window-size=%d,%d", s.opts.Width, s.opts.Height))
	}
	if s.opts.BrowserPath != "" {
		opts.ExecutablePath = playwright.String(s.opts.BrowserPath)
	}
	return opts
}

// handler adapts a Dispatcher to playwright's exposed-function signature.
// The page receives the encoded Response as the promise value.
func handler(ctx context.Context, d ports.Dispatcher) playwright.ExposedFunction {
	return func(args ...interface{}) interface{} {
		var payload string
		if len(args) > 0 {
			payload, _ = args[0].(string)
		}
		return string(d.Dispatch(ctx, []byte(payload)))
	}
}

// persistentOptions mirrors launchOptions for a browser profile kept in
// UserDataDir.
func (s *Shell) persistentOptions() playwright.BrowserTypeLaunchPersistentContextOptions {
	launch := s.launchOptions()
	return playwright.BrowserTypeLaunchPersistentContextOptions{
		Headless:       launch.Headless,
		Args:           launch.Args,
		ExecutablePath: launch.ExecutablePath,
	}
}

// open starts Chromium and returns the page to host the front end on.
// With UserDataDir set the profile persists across runs.
func (s *Shell) open(pw *playwright.Playwright) (playwright.Page, func(), error) {
	if s.opts.UserDataDir != "" {
		bctx, err := pw.Chromium.LaunchPersistentContext(s.opts.UserDataDir, s.persistentOptions())
		if err != nil {
			return nil, nil, fmt.Errorf("launch browser: %w", err)
		}
		release := func() { bctx.Close() }
		if pages := bctx.Pages(); len(pages) > 0 {
			return pages[0], release, nil
		}
		page, err := bctx.NewPage()
		if err != nil {
			release()
			return nil, nil, fmt.Errorf("open page: %w", err)
		}
		return page, release, nil
	}

	browser, err := pw.Chromium.Launch(s.launchOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("launch browser: %w", err)
	}
	release := func() { browser.Close() }
	page, err := browser.NewPage()
	if err != nil {
		release()
		return nil, nil, fmt.Errorf("open page: %w", err)
	}
	return page, release, nil
}

// Run opens the window on url and serves binding calls until it closes.
func (s *Shell) Run(ctx context.Context, url string, d ports.Dispatcher) error {
	s.log.Debug("Launching %s", s.opts.Title)
	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("start playwright: %w", err)
	}
	defer pw.Stop()

	page, release, err := s.open(pw)
	if err != nil {
		return err
	}
	defer release()

	closed := make(chan struct{})
	page.OnClose(func(playwright.Page) {
		close(closed)
	})

	if err := page.ExposeFunction(s.opts.Binding, handler(ctx, d)); err != nil {
		return fmt.Errorf("expose binding: %w", err)
	}
	if err := page.AddInitScript(playwright.Script{Content: playwright.String(s.opts.InitScript)}); err != nil {
		return fmt.Errorf("add init script: %w", err)
	}
	s.log.Debug("Binding %s installed", s.opts.Binding)

	if _, err := page.Goto(url); err != nil {
		return fmt.Errorf("navigate: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-closed:
		s.log.Debug("Browser closed")
	}
	return nil
}

// Ensure Shell implements ports.Shell
var _ ports.Shell = (*Shell)(nil)
