package admin

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/farmhouse.admin/internal/platform/id"
	"github.com/louisbranch/farmhouse.admin/internal/platform/requestctx"
	routepath "github.com/louisbranch/farmhouse.admin/internal/services/admin/routepath"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/templates"
	"github.com/louisbranch/farmhouse.admin/internal/services/shared/htmx"
)

// sessionCookieName holds the opaque console session id. The API token never
// leaves the server.
const sessionCookieName = "fh_admin_session"

// requireSession assigns every visitor a console session and lets only
// authenticated sessions past the login routes.
//
// While the stored token is still being probed by another request the guard
// answers with the loading page instead of guessing.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := h.ensureSessionID(w, r)
		if err != nil {
			h.logger.Error().Err(err).Msg("create console session id")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		ctx := requestctx.WithSessionID(r.Context(), sessionID)
		r = r.WithContext(ctx)

		if isAuthExempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		state := h.sessions.Current(ctx, sessionID)
		switch {
		case state.Loading:
			loc, lang := h.localizer(w, r)
			w.Header().Set("Retry-After", "1")
			renderPage(w, r, templates.SessionLoadingPage(h.pageContext(lang, loc, r), r.URL.RequestURI()), "")
			return
		case !state.Authenticated:
			h.dropViews(sessionID)
			htmx.Redirect(w, r, loginURL(r))
			return
		}

		next.ServeHTTP(w, r.WithContext(requestctx.WithAdminID(ctx, state.Admin.ID)))
	})
}

// isAuthExempt returns true for paths that should bypass authentication.
func isAuthExempt(path string) bool {
	return path == routepath.Login ||
		path == routepath.Logout ||
		path == routepath.Healthz ||
		strings.HasPrefix(path, routepath.StaticPrefix)
}

// loginURL sends the operator back to the page they asked for. htmx fragment
// requests return to the page that issued them.
func loginURL(r *http.Request) string {
	next := r.URL.RequestURI()
	if htmx.IsHTMXRequest(r) {
		next = ""
		if current := r.Header.Get("HX-Current-URL"); current != "" {
			if path, ok := sameOriginPath(current, r); ok {
				next = path
			}
		}
	}
	next = safeNext(next)
	if next == routepath.Root {
		return routepath.Login
	}
	return routepath.Login + "?next=" + url.QueryEscape(next)
}

func (h *Handler) ensureSessionID(w http.ResponseWriter, r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if value := strings.TrimSpace(cookie.Value); id.Valid(value) {
			return value, nil
		}
	}
	sessionID, err := id.NewID()
	if err != nil {
		return "", err
	}
	h.setSessionCookie(w, r, sessionID)
	return sessionID, nil
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, r *http.Request, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies || isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// HandleLoginPage renders the sign-in form, or leaves for the requested page
// when the session is already signed in.
func (h *Handler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	sessionID := requestctx.SessionIDFromContext(r.Context())
	next := safeNext(r.URL.Query().Get("next"))
	if state := h.sessions.Current(r.Context(), sessionID); state.Authenticated {
		http.Redirect(w, r, next, http.StatusSeeOther)
		return
	}
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r)
	renderPage(w, r, templates.LoginPage(page, templates.LoginView{Next: next}), loc.Sprintf("login.title"))
}

// HandleLoginSubmit exchanges credentials for a token. The token is bound to
// a freshly issued session id; the id the visitor arrived with is retired, so
// a planted cookie never becomes a signed-in session.
func (h *Handler) HandleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, loc.Sprintf("error.invalid_input"), http.StatusBadRequest)
		return
	}
	previousID := requestctx.SessionIDFromContext(r.Context())
	email := strings.TrimSpace(r.PostFormValue("email"))
	next := safeNext(r.PostFormValue("next"))

	sessionID, err := id.NewID()
	if err != nil {
		h.logger.Error().Err(err).Msg("create console session id")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	state, err := h.sessions.Login(r.Context(), sessionID, email, r.PostFormValue("password"))
	if err != nil {
		h.logger.Info().Err(err).Str("session_id", previousID).Msg("console login failed")
		view := templates.LoginView{Email: email, Error: errorText(loc, err), Next: next}
		if htmx.IsHTMXRequest(r) {
			renderFragment(w, r, http.StatusOK, templates.LoginForm(h.pageContext(lang, loc, r), view))
			return
		}
		renderPageStatus(w, r, errorStatus(err), templates.LoginPage(h.pageContext(lang, loc, r), view))
		return
	}

	if previousID != "" {
		if err := h.sessions.Logout(r.Context(), previousID); err != nil {
			h.logger.Warn().Err(err).Str("session_id", previousID).Msg("retire pre-login session")
		}
		h.dropViews(previousID)
	}
	h.setSessionCookie(w, r, sessionID)
	h.logger.Info().Str("admin_id", state.Admin.ID).Str("session_id", sessionID).Msg("console login")
	htmx.Redirect(w, r, next)
}

// HandleLogout clears the token and every list view held for the session.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	sessionID := requestctx.SessionIDFromContext(r.Context())
	if err := h.sessions.Logout(r.Context(), sessionID); err != nil {
		h.logger.Warn().Err(err).Str("session_id", sessionID).Msg("console logout")
	}
	h.dropViews(sessionID)
	htmx.Redirect(w, r, routepath.Login)
}

// pruneSessions forgets sessions whose token expired and drops their views.
func (h *Handler) pruneSessions(ctx context.Context) int {
	pruned := h.sessions.Prune(ctx)
	for _, sessionID := range pruned {
		h.dropViews(sessionID)
	}
	return len(pruned)
}

func (h *Handler) dropViews(sessionID string) {
	h.shops.Drop(sessionID)
	h.users.Drop(sessionID)
	h.orders.Drop(sessionID)
}
