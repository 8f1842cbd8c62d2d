package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/user/deskbridge/pkg/commands"
	"github.com/user/deskbridge/pkg/ports"
	"github.com/user/deskbridge/pkg/tracing"
)

// UnknownCommandError is returned for names missing from the registry.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return "unknown command: " + e.Name
}

// Dispatcher implements ports.Dispatcher over a commands.Registry.
type Dispatcher struct {
	registry *commands.Registry
	log      ports.Logger

	idMu    sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewDispatcher creates a Dispatcher for registry.
func NewDispatcher(registry *commands.Registry, log ports.Logger) *Dispatcher {
	now := time.Now()
	return &Dispatcher{
		registry: registry,
		log:      log.WithComponent("bridge"),
		entropy:  ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0),
	}
}

// Dispatch decodes request, runs the command and encodes the Response.
// Every outcome, including malformed input, is reported in the Response.
func (d *Dispatcher) Dispatch(ctx context.Context, request []byte) []byte {
	var req Request
	if err := json.Unmarshal(request, &req); err != nil {
		return encode(failure(salvageID(request), fmt.Errorf("malformed invocation: %w", err)))
	}

	result, err := d.Call(ctx, req.Cmd, req.Args)
	if err != nil {
		return encode(failure(req.ID, err))
	}
	return encode(Response{ID: req.ID, OK: true, Result: result})
}

// Call runs one command by name and returns its raw result.
func (d *Dispatcher) Call(ctx context.Context, name string, args json.RawMessage) (any, error) {
	callID := d.newCallID()

	_, span := tracing.StartSpan(ctx, "command."+name)
	span.SetAttributes(
		tracing.StringAttr("command.name", name),
		tracing.StringAttr("command.call_id", callID),
	)
	defer span.End()

	handler, ok := d.registry.Lookup(name)
	if !ok {
		err := &UnknownCommandError{Name: name}
		tracing.RecordError(span, err)
		d.log.Debug("Rejected unknown command %s (call %s)", name, callID)
		return nil, err
	}

	start := time.Now()
	d.log.Debug("Invoking %s (call %s)", name, callID)

	result, err := handler(args)
	elapsed := time.Since(start)
	if err != nil {
		tracing.RecordError(span, err)
		d.log.Debug("Command %s failed after %s (call %s): %s", name, elapsed, callID, err)
		return nil, err
	}

	tracing.SetOK(span)
	d.log.Debug("Command %s finished in %s (call %s)", name, elapsed, callID)
	return result, nil
}

func (d *Dispatcher) newCallID() string {
	d.idMu.Lock()
	defer d.idMu.Unlock()
	return ulid.MustNew(ulid.Now(), d.entropy).String()
}

// salvageID recovers the id of an envelope whose other fields failed to
// decode, so the caller's pending invoke can still be settled.
func salvageID(request []byte) string {
	var head struct {
		ID string `json:"id"`
	}
	if json.Unmarshal(request, &head) != nil {
		return ""
	}
	return head.ID
}

func encode(resp Response) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		data, _ = json.Marshal(failure(resp.ID, fmt.Errorf("encode result: %w", err)))
	}
	return data
}

var _ ports.Dispatcher = (*Dispatcher)(nil)
