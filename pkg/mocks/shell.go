package mocks

import (
	"context"
	"sync"

	"github.com/user/deskbridge/pkg/ports"
)

// Shell is a ports.Shell that replays scripted requests instead of opening a window.
type Shell struct {
	mu sync.Mutex

	// Requests are dispatched in order when Run is called.
	Requests [][]byte
	// RunErr is returned by Run after the requests have been dispatched.
	RunErr error

	URL       string
	Responses [][]byte
	Runs      int
}

// NewShell creates a Shell that will dispatch the given requests.
func NewShell(requests ...[]byte) *Shell {
	return &Shell{Requests: requests}
}

func (m *Shell) Run(ctx context.Context, url string, d ports.Dispatcher) error {
	m.mu.Lock()
	m.URL = url
	m.Runs++
	m.mu.Unlock()

	for _, req := range m.Requests {
		resp := d.Dispatch(ctx, req)
		m.mu.Lock()
		m.Responses = append(m.Responses, resp)
		m.mu.Unlock()
	}
	return m.RunErr
}

var _ ports.Shell = (*Shell)(nil)
