package ports

import "context"

// Dispatcher answers one encoded command invocation with an encoded response.
// Implementations must be safe for concurrent use.
type Dispatcher interface {
	Dispatch(ctx context.Context, request []byte) []byte
}

// ShellOptions configures the window a Shell opens.
type ShellOptions struct {
	Title       string
	Width       int
	Height      int
	Headless    bool
	BrowserPath string // explicit browser executable; empty means auto-detect
	UserDataDir string // browser profile directory; empty means a temporary one

	// Binding is the name of the native function exposed to page scripts.
	Binding string
	// InitScript runs in every document before the page's own scripts.
	InitScript string
}

// Shell hosts the front end and routes its invocations to a Dispatcher.
type Shell interface {
	// Run opens a window on url and blocks until the window is closed,
	// the browser goes away, or ctx is cancelled.
	Run(ctx context.Context, url string, d Dispatcher) error
}
