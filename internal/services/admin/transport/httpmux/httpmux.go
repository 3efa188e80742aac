// Package httpmux assembles the console's root mux from its parts.
package httpmux

import (
	"io/fs"
	"net/http"

	routepath "github.com/louisbranch/farmhouse.admin/internal/services/admin/routepath"
)

// MountStatic wires static asset serving into the root mux.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS, wrap func(http.Handler) http.Handler) {
	if rootMux == nil || staticFS == nil {
		return
	}
	staticHandler := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS)))
	if wrap != nil {
		staticHandler = wrap(staticHandler)
	}
	rootMux.Handle(routepath.StaticPrefix, staticHandler)
}

// MountHealth answers liveness probes without touching sessions.
func MountHealth(rootMux *http.ServeMux) {
	if rootMux == nil {
		return
	}
	rootMux.HandleFunc(routepath.Healthz, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte("ok"))
	})
}

// MountAdminRoutes mounts the guarded console handler at the root path.
func MountAdminRoutes(rootMux *http.ServeMux, admin http.Handler) {
	if rootMux == nil || admin == nil {
		return
	}
	rootMux.Handle(routepath.Root, admin)
}
