// Package auth registers the console sign-in routes.
package auth

import (
	"net/http"

	routepath "github.com/louisbranch/farmhouse.admin/internal/services/admin/routepath"
	sharedroute "github.com/louisbranch/farmhouse.admin/internal/services/shared/route"
)

// Service defines sign-in handlers consumed by this route module.
type Service interface {
	HandleLoginPage(w http.ResponseWriter, r *http.Request)
	HandleLoginSubmit(w http.ResponseWriter, r *http.Request)
	HandleLogout(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires login and logout into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Login, func(w http.ResponseWriter, r *http.Request) {
		if !sharedroute.AllowMethods(w, r, http.MethodGet, http.MethodPost) {
			return
		}
		if r.Method == http.MethodPost {
			service.HandleLoginSubmit(w, r)
			return
		}
		service.HandleLoginPage(w, r)
	})
	mux.HandleFunc(routepath.Logout, func(w http.ResponseWriter, r *http.Request) {
		if !sharedroute.AllowMethods(w, r, http.MethodPost) {
			return
		}
		service.HandleLogout(w, r)
	})
}
