// Package chromeshell hosts the front end in a Chrome app-mode window driven
// over the DevTools protocol with chromedp.
package chromeshell

import (
	"context"
	"fmt"
	"sync"

	"github.com/chromedp/cdproto/inspector"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"

	"github.com/user/deskbridge/pkg/bridge"
	"github.com/user/deskbridge/pkg/ports"
)

// Shell implements ports.Shell using chromedp.
type Shell struct {
	opts ports.ShellOptions
	log  ports.Logger
}

// New creates a new Shell.
func New(opts ports.ShellOptions, log ports.Logger) *Shell {
	if opts.Binding == "" {
		opts.Binding = bridge.DefaultBinding
	}
	return &Shell{opts: opts, log: log.WithComponent("chromedp")}
}

// flags returns the Chrome command-line switches for the configured window.
func (s *Shell) flags() map[string]interface{} {
	f := map[string]interface{}{
		"no-first-run":                     true,
		"no-default-browser-check":         true,
		"disable-background-networking":    true,
		"disable-extensions":               true,
		"disable-sync":                     true,
		"disable-translate":                true,
		"disable-features":                 "Translate,MediaRouter",
		"metrics-recording-only":           true,
		"safebrowsing-disable-auto-update": true,
		"password-store":                   "basic",
	}
	if s.opts.Headless {
		// Use new headless mode for better compatibility
		f["headless"] = "new"
		f["disable-gpu"] = true
		f["no-sandbox"] = true
	} else {
		// App mode gives a chromeless window; the real page is loaded after
		// the binding is installed.
		f["app"] = "about:blank"
	}
	if s.opts.Width > 0 && s.opts.Height > 0 {
		f["window-size"] = fmt.Sprintf("%d,%d", s.opts.Width, s.opts.Height)
	}
	return f
}

func (s *Shell) allocatorOptions() []chromedp.ExecAllocatorOption {
	var opts []chromedp.ExecAllocatorOption
	for name, value := range s.flags() {
		opts = append(opts, chromedp.Flag(name, value))
	}
	if path := ResolveChromePath(s.opts.BrowserPath); path != "" {
		opts = append(opts, chromedp.ExecPath(path))
	}
	if s.opts.UserDataDir != "" {
		opts = append(opts, chromedp.UserDataDir(s.opts.UserDataDir))
	}
	return opts
}

// Run opens the window on url and serves binding calls until it closes.
func (s *Shell) Run(ctx context.Context, url string, d ports.Dispatcher) error {
	s.log.Debug("Launching %s", s.opts.Title)
	if s.opts.Headless {
		s.log.Debug("Launching browser in headless mode")
	} else {
		s.log.Debug("Launching browser in app mode")
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, s.allocatorOptions()...)
	defer allocCancel()
	bctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	closed := make(chan struct{})
	var closeOnce sync.Once
	markClosed := func() { closeOnce.Do(func() { close(closed) }) }

	// Listener callbacks must not block; every call is answered on its own goroutine.
	chromedp.ListenTarget(bctx, func(ev interface{}) {
		switch e := ev.(type) {
		case *runtime.EventBindingCalled:
			if e.Name != s.opts.Binding {
				return
			}
			go s.answer(bctx, d, e)
		case *inspector.EventDetached:
			markClosed()
		}
	})

	err := chromedp.Run(bctx,
		runtime.AddBinding(s.opts.Binding),
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(s.opts.InitScript).Do(ctx)
			return err
		}),
		chromedp.Navigate(url),
	)
	if err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}
	s.log.Debug("Binding %s installed", s.opts.Binding)

	c := chromedp.FromContext(bctx)
	targetID := c.Target.TargetID
	chromedp.ListenBrowser(bctx, func(ev interface{}) {
		if e, ok := ev.(*target.EventTargetDestroyed); ok && e.TargetID == targetID {
			markClosed()
		}
	})

	select {
	case <-ctx.Done():
	case <-closed:
		s.log.Debug("Browser closed")
	case <-c.Browser.LostConnection:
		s.log.Debug("Browser connection lost")
	}
	return nil
}

// answer dispatches one binding call and settles the page's pending promise.
func (s *Shell) answer(ctx context.Context, d ports.Dispatcher, e *runtime.EventBindingCalled) {
	resp := d.Dispatch(ctx, []byte(e.Payload))
	expr := bridge.ResolveExpression(resp)

	err := chromedp.Run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		_, exc, err := runtime.Evaluate(expr).WithContextID(e.ExecutionContextID).Do(ctx)
		if err != nil {
			return err
		}
		if exc != nil {
			return exc
		}
		return nil
	}))
	if err != nil && ctx.Err() == nil {
		s.log.Warn("Failed to deliver response for %s: %s", e.Name, err)
	}
}

// Ensure Shell implements ports.Shell
var _ ports.Shell = (*Shell)(nil)
