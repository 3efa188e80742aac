package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsAuthExempt(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"/login":            true,
		"/logout":           true,
		"/healthz":          true,
		"/static/admin.css": true,
		"/":                 false,
		"/shops":            false,
		"/login/extra":      false,
	}
	for path, want := range tests {
		if got := isAuthExempt(path); got != want {
			t.Fatalf("isAuthExempt(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestLoginURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		htmx       bool
		currentURL string
		want       string
	}{
		{name: "page", target: "/users?q=mia", want: "/login?next=%2Fusers%3Fq%3Dmia"},
		{name: "root", target: "/", want: "/login"},
		{name: "htmx uses current page", target: "/shops/table", htmx: true, currentURL: "http://example.com/shops?page=3", want: "/login?next=%2Fshops%3Fpage%3D3"},
		{name: "htmx ignores foreign page", target: "/shops/table", htmx: true, currentURL: "http://evil.test/shops", want: "/login"},
		{name: "htmx without current page", target: "/shops/table", htmx: true, want: "/login"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.htmx {
				req.Header.Set("HX-Request", "true")
			}
			if tc.currentURL != "" {
				req.Header.Set("HX-Current-URL", tc.currentURL)
			}
			if got := loginURL(req); got != tc.want {
				t.Fatalf("loginURL = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEnsureSessionIDReusesValidCookie(t *testing.T) {
	t.Parallel()

	h := &Handler{}
	rec := httptest.NewRecorder()
	first, err := h.ensureSessionID(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("new session id: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != first || !cookies[0].HttpOnly {
		t.Fatalf("cookies = %+v", cookies)
	}
	if cookies[0].SameSite != http.SameSiteLaxMode {
		t.Fatalf("SameSite = %v, want Lax", cookies[0].SameSite)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: first})
	rec = httptest.NewRecorder()
	second, err := h.ensureSessionID(rec, req)
	if err != nil {
		t.Fatalf("reuse session id: %v", err)
	}
	if second != first {
		t.Fatalf("session id = %q, want %q", second, first)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("did not expect a new cookie for a valid session")
	}
}

func TestEnsureSessionIDReplacesForgedCookie(t *testing.T) {
	t.Parallel()

	h := &Handler{secureCookies: true}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "not-an-id"})
	rec := httptest.NewRecorder()

	got, err := h.ensureSessionID(rec, req)
	if err != nil {
		t.Fatalf("ensure session id: %v", err)
	}
	if got == "not-an-id" {
		t.Fatal("expected forged id to be replaced")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || !cookies[0].Secure {
		t.Fatalf("expected one secure cookie, got %+v", cookies)
	}
}

func TestRequireSameOrigin(t *testing.T) {
	t.Parallel()

	loc, _ := (&Handler{}).localizer(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	tests := []struct {
		name    string
		headers map[string]string
		want    bool
	}{
		{name: "matching origin", headers: map[string]string{"Origin": "http://example.com"}, want: true},
		{name: "matching referer", headers: map[string]string{"Referer": "http://example.com/shops"}, want: true},
		{name: "foreign origin", headers: map[string]string{"Origin": "http://evil.test"}},
		{name: "scheme mismatch", headers: map[string]string{"Origin": "https://example.com"}},
		{name: "forwarded https", headers: map[string]string{"Origin": "https://example.com", "X-Forwarded-Proto": "https"}, want: true},
		{name: "no headers"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/shops/s1/ban", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			if got := requireSameOrigin(rec, req, loc); got != tc.want {
				t.Fatalf("requireSameOrigin = %v, want %v", got, tc.want)
			}
			if !tc.want && rec.Code != http.StatusForbidden {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
			}
		})
	}
}
