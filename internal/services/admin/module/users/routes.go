// Package users registers the read-only user list routes.
package users

import (
	"net/http"
	"strings"

	sharedpath "github.com/louisbranch/farmhouse.admin/internal/services/admin/module/sharedpath"
	routepath "github.com/louisbranch/farmhouse.admin/internal/services/admin/routepath"
	sharedroute "github.com/louisbranch/farmhouse.admin/internal/services/shared/route"
)

// Service defines users route handlers consumed by this route module.
type Service interface {
	HandleUsersPage(w http.ResponseWriter, r *http.Request)
	HandleUsersTable(w http.ResponseWriter, r *http.Request)
	HandleUserDialog(w http.ResponseWriter, r *http.Request, userID string)
}

// RegisterRoutes wires user routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Users, func(w http.ResponseWriter, r *http.Request) {
		if sharedroute.AllowMethods(w, r, http.MethodGet) {
			service.HandleUsersPage(w, r)
		}
	})
	mux.HandleFunc(routepath.UsersTable, func(w http.ResponseWriter, r *http.Request) {
		if sharedroute.AllowMethods(w, r, http.MethodGet) {
			service.HandleUsersTable(w, r)
		}
	})
	mux.HandleFunc(routepath.UsersPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleUserPath(w, r, service)
	})
}

// HandleUserPath parses user detail subroutes and dispatches to service handlers.
func HandleUserPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	parts := sharedpath.SplitPathParts(strings.TrimPrefix(r.URL.Path, routepath.UsersPrefix))
	if len(parts) != 1 {
		http.NotFound(w, r)
		return
	}
	if sharedroute.AllowMethods(w, r, http.MethodGet) {
		service.HandleUserDialog(w, r, parts[0])
	}
}
