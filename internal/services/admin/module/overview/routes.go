// Package overview registers the console landing page.
package overview

import (
	"net/http"

	routepath "github.com/louisbranch/farmhouse.admin/internal/services/admin/routepath"
	sharedroute "github.com/louisbranch/farmhouse.admin/internal/services/shared/route"
)

// Service defines overview handlers consumed by this route module.
type Service interface {
	HandleOverview(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires the overview into the provided mux. The root pattern
// matches every unclaimed path, so anything other than "/" is a 404.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Root, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != routepath.Root {
			http.NotFound(w, r)
			return
		}
		if !sharedroute.AllowMethods(w, r, http.MethodGet) {
			return
		}
		service.HandleOverview(w, r)
	})
}
