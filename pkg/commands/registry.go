package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Handler runs one command with its JSON-encoded arguments.
// The result must be JSON-encodable; nil means "no value".
type Handler func(args json.RawMessage) (any, error)

// Registry is the fixed table of invokable commands.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry builds the registry of the four commands backed by c.
func NewRegistry(c *Commands) *Registry {
	return &Registry{handlers: map[string]Handler{
		GetSystemInfo: func(json.RawMessage) (any, error) {
			return c.SystemInfo(), nil
		},
		FileExists: func(raw json.RawMessage) (any, error) {
			var args struct {
				Path *string `json:"path"`
			}
			if err := decodeArgs(FileExists, raw, &args); err != nil {
				return nil, err
			}
			if args.Path == nil {
				return nil, missingArg(FileExists, "path")
			}
			return c.FileExists(*args.Path), nil
		},
		ReadFile: func(raw json.RawMessage) (any, error) {
			var args struct {
				Path *string `json:"path"`
			}
			if err := decodeArgs(ReadFile, raw, &args); err != nil {
				return nil, err
			}
			if args.Path == nil {
				return nil, missingArg(ReadFile, "path")
			}
			return c.ReadFile(*args.Path)
		},
		WriteFile: func(raw json.RawMessage) (any, error) {
			var args struct {
				Path     *string `json:"path"`
				Contents *string `json:"contents"`
			}
			if err := decodeArgs(WriteFile, raw, &args); err != nil {
				return nil, err
			}
			if args.Path == nil {
				return nil, missingArg(WriteFile, "path")
			}
			if args.Contents == nil {
				return nil, missingArg(WriteFile, "contents")
			}
			return nil, c.WriteFile(*args.Path, *args.Contents)
		},
	}}
}

// Lookup returns the handler registered under name.
func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func decodeArgs(cmd string, raw json.RawMessage, v any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("invalid args for command %s: %w", cmd, err)
	}
	return nil
}

func missingArg(cmd, key string) error {
	return fmt.Errorf("invalid args for command %s: missing required key %s", cmd, key)
}
