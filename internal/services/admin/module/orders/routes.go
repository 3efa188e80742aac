// Package orders registers order review routes.
package orders

import (
	"net/http"
	"strings"

	sharedpath "github.com/louisbranch/farmhouse.admin/internal/services/admin/module/sharedpath"
	routepath "github.com/louisbranch/farmhouse.admin/internal/services/admin/routepath"
	sharedroute "github.com/louisbranch/farmhouse.admin/internal/services/shared/route"
)

// Service defines order route handlers consumed by this route module.
type Service interface {
	HandleOrdersPage(w http.ResponseWriter, r *http.Request)
	HandleOrdersTable(w http.ResponseWriter, r *http.Request)
	HandleOrderDialog(w http.ResponseWriter, r *http.Request, orderID string)
	HandleOrderDetail(w http.ResponseWriter, r *http.Request, orderID string)
	HandleOrderDelete(w http.ResponseWriter, r *http.Request, orderID string)
}

// RegisterRoutes wires order routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Orders, func(w http.ResponseWriter, r *http.Request) {
		if sharedroute.AllowMethods(w, r, http.MethodGet) {
			service.HandleOrdersPage(w, r)
		}
	})
	mux.HandleFunc(routepath.OrdersTable, func(w http.ResponseWriter, r *http.Request) {
		if sharedroute.AllowMethods(w, r, http.MethodGet) {
			service.HandleOrdersTable(w, r)
		}
	})
	mux.HandleFunc(routepath.OrdersPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleOrderPath(w, r, service)
	})
}

// HandleOrderPath parses "/orders/{id}[/detail|/delete]" and dispatches.
func HandleOrderPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	parts := sharedpath.SplitPathParts(strings.TrimPrefix(r.URL.Path, routepath.OrdersPrefix))
	switch {
	case len(parts) == 1:
		if sharedroute.AllowMethods(w, r, http.MethodGet) {
			service.HandleOrderDialog(w, r, parts[0])
		}
	case len(parts) == 2 && parts[1] == "detail":
		if sharedroute.AllowMethods(w, r, http.MethodGet) {
			service.HandleOrderDetail(w, r, parts[0])
		}
	case len(parts) == 2 && parts[1] == "delete":
		if sharedroute.AllowMethods(w, r, http.MethodPost) {
			service.HandleOrderDelete(w, r, parts[0])
		}
	default:
		http.NotFound(w, r)
	}
}
