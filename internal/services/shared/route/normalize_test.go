package route

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRedirectTrailingSlash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   string
		wantOK   bool
		wantCode int
		wantLoc  string
	}{
		{name: "no trailing slash", target: "/shops", wantCode: http.StatusOK},
		{name: "list trailing slash", target: "/shops/", wantOK: true, wantCode: http.StatusMovedPermanently, wantLoc: "/shops"},
		{name: "detail trailing slash", target: "/orders/o-1/", wantOK: true, wantCode: http.StatusMovedPermanently, wantLoc: "/orders/o-1"},
		{name: "keeps query", target: "/users/?page=2&q=ana", wantOK: true, wantCode: http.StatusMovedPermanently, wantLoc: "/users?page=2&q=ana"},
		{name: "root path", target: "/", wantCode: http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()

			got := RedirectTrailingSlash(rec, req)
			if got != tc.wantOK {
				t.Fatalf("RedirectTrailingSlash = %v, want %v", got, tc.wantOK)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if got {
				if loc := rec.Header().Get("Location"); loc != tc.wantLoc {
					t.Fatalf("location = %q, want %q", loc, tc.wantLoc)
				}
			}
		})
	}
}

func TestAllowMethods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method   string
		allowed  []string
		wantOK   bool
		wantCode int
	}{
		{method: http.MethodGet, allowed: []string{http.MethodGet}, wantOK: true, wantCode: http.StatusOK},
		{method: http.MethodHead, allowed: []string{http.MethodGet}, wantOK: true, wantCode: http.StatusOK},
		{method: http.MethodPost, allowed: []string{http.MethodGet, http.MethodPost}, wantOK: true, wantCode: http.StatusOK},
		{method: http.MethodDelete, allowed: []string{http.MethodPost}, wantCode: http.StatusMethodNotAllowed},
	}

	for _, tc := range tests {
		t.Run(tc.method, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tc.method, "/shops/s-1/approve", nil)
			rec := httptest.NewRecorder()
			if got := AllowMethods(rec, req, tc.allowed...); got != tc.wantOK {
				t.Fatalf("AllowMethods = %v, want %v", got, tc.wantOK)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if !tc.wantOK && rec.Header().Get("Allow") == "" {
				t.Fatal("expected Allow header")
			}
		})
	}
}
