// Package httpmux mounts the ungated surfaces and the session gate on the
// root mux.
package httpmux

import (
	"io/fs"
	"net/http"
	"strings"

	routepath "github.com/Jnavarr56/ifhelper-web/internal/services/web/routepath"
)

// MountStatic wires the shared static route into the root mux.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS) {
	if rootMux == nil || staticFS == nil {
		return
	}
	staticHandler := http.StripPrefix(routepath.Static, http.FileServer(http.FS(staticFS)))
	rootMux.Handle(routepath.Static, WithStaticMime(staticHandler))
}

// MountHealth wires the liveness probe. It never touches the session.
func MountHealth(rootMux *http.ServeMux) {
	if rootMux == nil {
		return
	}
	rootMux.HandleFunc("GET "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

// MountGate routes everything else through the session gate.
func MountGate(rootMux *http.ServeMux, gate http.Handler) {
	if rootMux == nil || gate == nil {
		return
	}
	rootMux.Handle(routepath.Root, gate)
}

// WithStaticMime attaches explicit content-type hints for known static assets.
func WithStaticMime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch path := strings.ToLower(r.URL.Path); {
		case strings.HasSuffix(path, ".css"):
			w.Header().Set("Content-Type", "text/css; charset=utf-8")
		case strings.HasSuffix(path, ".svg"):
			w.Header().Set("Content-Type", "image/svg+xml")
		}
		w.Header().Set("X-Content-Type-Options", "nosniff")
		next.ServeHTTP(w, r)
	})
}
