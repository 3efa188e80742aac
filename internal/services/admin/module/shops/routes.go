// Package shops registers shop moderation routes.
package shops

import (
	"net/http"
	"strings"

	"github.com/louisbranch/farmhouse.admin/internal/services/admin/marketplace"
	sharedpath "github.com/louisbranch/farmhouse.admin/internal/services/admin/module/sharedpath"
	routepath "github.com/louisbranch/farmhouse.admin/internal/services/admin/routepath"
	sharedroute "github.com/louisbranch/farmhouse.admin/internal/services/shared/route"
)

// Service defines shop route handlers consumed by this route module.
type Service interface {
	HandleShopsPage(w http.ResponseWriter, r *http.Request)
	HandleShopsTable(w http.ResponseWriter, r *http.Request)
	HandleShopDialog(w http.ResponseWriter, r *http.Request, shopID string)
	HandleShopDetail(w http.ResponseWriter, r *http.Request, shopID string)
	HandleShopAction(w http.ResponseWriter, r *http.Request, shopID string, action marketplace.ShopAction)
}

// RegisterRoutes wires shop routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Shops, func(w http.ResponseWriter, r *http.Request) {
		if sharedroute.AllowMethods(w, r, http.MethodGet) {
			service.HandleShopsPage(w, r)
		}
	})
	mux.HandleFunc(routepath.ShopsTable, func(w http.ResponseWriter, r *http.Request) {
		if sharedroute.AllowMethods(w, r, http.MethodGet) {
			service.HandleShopsTable(w, r)
		}
	})
	mux.HandleFunc(routepath.ShopsPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleShopPath(w, r, service)
	})
}

// HandleShopPath parses "/shops/{id}[/detail|/{action}]" and dispatches.
func HandleShopPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	parts := sharedpath.SplitPathParts(strings.TrimPrefix(r.URL.Path, routepath.ShopsPrefix))
	switch {
	case len(parts) == 1:
		if sharedroute.AllowMethods(w, r, http.MethodGet) {
			service.HandleShopDialog(w, r, parts[0])
		}
	case len(parts) == 2 && parts[1] == "detail":
		if sharedroute.AllowMethods(w, r, http.MethodGet) {
			service.HandleShopDetail(w, r, parts[0])
		}
	case len(parts) == 2:
		action, ok := marketplace.ParseShopAction(parts[1])
		if !ok {
			http.NotFound(w, r)
			return
		}
		if sharedroute.AllowMethods(w, r, http.MethodPost) {
			service.HandleShopAction(w, r, parts[0], action)
		}
	default:
		http.NotFound(w, r)
	}
}
