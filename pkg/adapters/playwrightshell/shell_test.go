package playwrightshell

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/user/deskbridge/pkg/adapters/logger"
	"github.com/user/deskbridge/pkg/bridge"
	"github.com/user/deskbridge/pkg/commands"
	"github.com/user/deskbridge/pkg/mocks"
	"github.com/user/deskbridge/pkg/ports"
)

func TestLaunchOptions(t *testing.T) {
	s := New(ports.ShellOptions{Width: 640, Height: 480, BrowserPath: "/opt/chromium"}, logger.NewNoop())
	opts := s.launchOptions()

	if opts.Headless == nil || *opts.Headless {
		t.Error("expected headed launch by default")
	}
	if len(opts.Args) != 1 || opts.Args[0] != "--window-size=640,480" {
		t.Errorf("Args = %v", opts.Args)
	}
	if opts.ExecutablePath == nil || *opts.ExecutablePath != "/opt/chromium" {
		t.Errorf("ExecutablePath = %v", opts.ExecutablePath)
	}
}

func TestLaunchOptions_Headless(t *testing.T) {
	s := New(ports.ShellOptions{Headless: true}, logger.NewNoop())
	opts := s.launchOptions()

	if opts.Headless == nil || !*opts.Headless {
		t.Error("expected headless launch")
	}
	if len(opts.Args) != 0 {
		t.Errorf("expected no args, got %v", opts.Args)
	}
	if opts.ExecutablePath != nil {
		t.Errorf("expected no executable path, got %v", *opts.ExecutablePath)
	}
	if s.opts.Binding != bridge.DefaultBinding {
		t.Errorf("Binding = %q", s.opts.Binding)
	}
}

func TestPersistentOptions(t *testing.T) {
	s := New(ports.ShellOptions{
		Width:       800,
		Height:      600,
		Headless:    true,
		BrowserPath: "/opt/chromium",
		UserDataDir: "/tmp/profile",
	}, logger.NewNoop())
	opts := s.persistentOptions()

	if opts.Headless == nil || !*opts.Headless {
		t.Error("expected headless launch")
	}
	if len(opts.Args) != 1 || opts.Args[0] != "--window-size=800,600" {
		t.Errorf("Args = %v", opts.Args)
	}
	if opts.ExecutablePath == nil || *opts.ExecutablePath != "/opt/chromium" {
		t.Errorf("ExecutablePath = %v", opts.ExecutablePath)
	}
}

func TestHandler(t *testing.T) {
	reg := commands.NewRegistry(commands.New(mocks.NewFileSystem(), mocks.NewHostInfo("linux", "arm64", "unix")))
	fn := handler(context.Background(), bridge.NewDispatcher(reg, logger.NewNoop()))

	raw, ok := fn(`{"id":"1","cmd":"get_system_info"}`).(string)
	if !ok {
		t.Fatal("expected string result")
	}
	var resp bridge.Response
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("invalid response %q: %v", raw, err)
	}
	if !resp.OK || resp.Result != "OS: linux, Architecture: arm64, OS Family: unix" {
		t.Errorf("unexpected response %+v", resp)
	}

	raw, _ = fn().(string)
	if err := json.Unmarshal([]byte(raw), &resp); err != nil || resp.OK {
		t.Errorf("expected failure response for missing payload, got %q", raw)
	}
}
