// Package route holds path helpers shared by console route modules.
package route

import (
	"net/http"
	"strings"
)

// RedirectTrailingSlash redirects "/shops/s-1/" to "/shops/s-1", keeping the
// query string. It returns true when a redirect was written and the caller
// must stop.
func RedirectTrailingSlash(w http.ResponseWriter, r *http.Request) bool {
	if w == nil || r == nil || r.URL == nil {
		return false
	}

	path := r.URL.Path
	canonical := strings.TrimRight(path, "/")
	if canonical == "" {
		canonical = "/"
	}
	if canonical == path {
		return false
	}
	if r.URL.RawQuery != "" {
		canonical += "?" + r.URL.RawQuery
	}

	http.Redirect(w, r, canonical, http.StatusMovedPermanently)
	return true
}

// AllowMethods writes 405 with an Allow header when r's method is not listed.
// It returns true when the request may proceed.
func AllowMethods(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
		if m == http.MethodGet && r.Method == http.MethodHead {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	return false
}
