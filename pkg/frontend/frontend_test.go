package frontend

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/user/deskbridge/pkg/mocks"
	"github.com/user/deskbridge/pkg/ports"
)

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestResolve_Bundled(t *testing.T) {
	f, err := Resolve(context.Background(), "", mocks.NewLogger())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	defer f.Close(context.Background())

	if !strings.HasPrefix(f.URL, "http://127.0.0.1:") {
		t.Errorf("unexpected URL %q", f.URL)
	}
	code, body := get(t, f.URL)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if !strings.Contains(body, "__DESKBRIDGE__") {
		t.Error("bundled page should use the bridge")
	}
}

func TestResolve_Directory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<p>custom</p>"), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := Resolve(context.Background(), dir, mocks.NewLogger())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	defer f.Close(context.Background())

	if f.Source != dir {
		t.Errorf("Source = %q, want %q", f.Source, dir)
	}
	code, body := get(t, f.URL)
	if code != http.StatusOK || !strings.Contains(body, "custom") {
		t.Errorf("got %d %q", code, body)
	}

	code, body = get(t, f.URL+"__deskbridge/health")
	if code != http.StatusOK || body != "ok" {
		t.Errorf("health: got %d %q", code, body)
	}

	code, _ = get(t, f.URL+"missing.js")
	if code != http.StatusNotFound {
		t.Errorf("missing file status = %d", code)
	}
}

func TestResolve_URL(t *testing.T) {
	f, err := Resolve(context.Background(), "http://localhost:5173/app", mocks.NewLogger())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if f.URL != "http://localhost:5173/app" {
		t.Errorf("URL = %q", f.URL)
	}
	if err := f.Close(context.Background()); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestResolve_Errors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "index.html")
	os.WriteFile(file, []byte("x"), 0644)

	for _, src := range []string{
		filepath.Join(t.TempDir(), "missing"),
		file,
		"http://",
	} {
		if _, err := Resolve(context.Background(), src, mocks.NewLogger()); err == nil {
			t.Errorf("Resolve(%q): expected error", src)
		}
	}
}

func TestClose_StopsServer(t *testing.T) {
	f, err := Resolve(context.Background(), "", mocks.NewLogger())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if err := f.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := http.Get(f.URL); err == nil {
		t.Error("expected request to fail after Close")
	}
}

func TestListen_LogsServeFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ln.Close()

	log := mocks.NewLogger()
	listen(&http.Server{}, ln, log.WithComponent("frontend"))

	entries := log.Entries()
	if len(entries) != 1 || entries[0].Level != ports.LevelError || entries[0].Component != "frontend" {
		t.Fatalf("expected one frontend error entry, got %+v", entries)
	}
	if !strings.HasPrefix(entries[0].Message, "Front-end server stopped: ") {
		t.Errorf("Message = %q", entries[0].Message)
	}
}

func TestListen_ShutdownIsQuiet(t *testing.T) {
	log := mocks.NewLogger()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	srv := &http.Server{}
	done := make(chan struct{})
	go func() {
		listen(srv, ln, log)
		close(done)
	}()
	srv.Shutdown(context.Background())
	<-done

	if n := log.Count(ports.LevelError); n != 0 {
		t.Errorf("expected no errors after shutdown, got %+v", log.Entries())
	}
}
