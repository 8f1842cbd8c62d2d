// Package frontend locates the front end the shell should load and, for
// local sources, serves it over loopback HTTP.
package frontend

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/user/deskbridge/pkg/ports"
)

//go:embed assets
var assets embed.FS

// Frontend is a resolved front-end location.
type Frontend struct {
	// URL is what the shell navigates to.
	URL string
	// Source describes where the content comes from, for logging.
	Source string

	server *http.Server
}

// Resolve turns a front-end source into a loadable URL.
//
// An http(s) URL is used as is. A directory is served from an ephemeral
// loopback port. An empty source serves the bundled default page.
func Resolve(ctx context.Context, source string, log ports.Logger) (*Frontend, error) {
	log = log.WithComponent("frontend")

	switch {
	case source == "":
		sub, err := fs.Sub(assets, "assets")
		if err != nil {
			return nil, fmt.Errorf("open bundled front end: %w", err)
		}
		return serve(ctx, http.FS(sub), "bundled page", log)

	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		u, err := url.Parse(source)
		if err != nil {
			return nil, fmt.Errorf("parse front-end URL: %w", err)
		}
		if u.Host == "" {
			return nil, fmt.Errorf("front-end URL %q has no host", source)
		}
		return &Frontend{URL: u.String(), Source: u.String()}, nil
	}

	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("front end %q is neither a URL nor a readable directory: %w", source, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("front end %q is not a directory", source)
	}
	return serve(ctx, http.Dir(source), source, log)
}

// Close stops the local server, if one was started.
func (f *Frontend) Close(ctx context.Context) error {
	if f.server == nil {
		return nil
	}
	return f.server.Shutdown(ctx)
}

func serve(ctx context.Context, root http.FileSystem, source string, log ports.Logger) (*Frontend, error) {
	r := mux.NewRouter()
	r.HandleFunc("/__deskbridge/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	r.PathPrefix("/").Handler(http.FileServer(root)).Methods(http.MethodGet, http.MethodHead)

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("listen for front end: %w", err)
	}

	srv := &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go listen(srv, ln, log)
	log.Debug("Front-end server listening on %s", ln.Addr())

	return &Frontend{
		URL:    "http://" + ln.Addr().String() + "/",
		Source: source,
		server: srv,
	}, nil
}

// listen serves until the server is shut down. Other failures are logged.
func listen(srv *http.Server, ln net.Listener, log ports.Logger) {
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Front-end server stopped: %s", err)
	}
}
