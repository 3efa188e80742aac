package admin

import (
	"errors"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/message"

	"github.com/louisbranch/farmhouse.admin/internal/platform/requestctx"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/i18n"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/listview"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/marketplace"
	authmodule "github.com/louisbranch/farmhouse.admin/internal/services/admin/module/auth"
	ordersmodule "github.com/louisbranch/farmhouse.admin/internal/services/admin/module/orders"
	overviewmodule "github.com/louisbranch/farmhouse.admin/internal/services/admin/module/overview"
	shopsmodule "github.com/louisbranch/farmhouse.admin/internal/services/admin/module/shops"
	usersmodule "github.com/louisbranch/farmhouse.admin/internal/services/admin/module/users"
	routepath "github.com/louisbranch/farmhouse.admin/internal/services/admin/routepath"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/session"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/templates"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/transport/httpmux"
	sharedtemplates "github.com/louisbranch/farmhouse.admin/internal/services/shared/templates"
)

// HandlerConfig wires the console handler.
type HandlerConfig struct {
	Sessions *session.Manager
	Logger   zerolog.Logger
	// PageSize overrides the list page size. Zero uses marketplace.PageSize.
	PageSize int
	// SecureCookies marks the session cookie Secure.
	SecureCookies bool
	// StaticFS serves /static/. Nil uses the embedded assets.
	StaticFS fs.FS
}

// Handler routes console requests.
type Handler struct {
	sessions      *session.Manager
	logger        zerolog.Logger
	secureCookies bool

	shops  *listview.Registry[marketplace.Shop]
	users  *listview.Registry[marketplace.User]
	orders *listview.Registry[marketplace.Order]
}

// NewHandler builds the HTTP handler for the console.
func NewHandler(cfg HandlerConfig) (http.Handler, error) {
	_, handler, err := buildHandler(cfg)
	return handler, err
}

func buildHandler(cfg HandlerConfig) (*Handler, http.Handler, error) {
	h, err := newHandler(cfg)
	if err != nil {
		return nil, nil, err
	}
	staticFS := cfg.StaticFS
	if staticFS == nil {
		staticFS, err = fs.Sub(staticAssets, "static")
		if err != nil {
			return nil, nil, err
		}
	}
	return h, h.routes(staticFS), nil
}

func newHandler(cfg HandlerConfig) (*Handler, error) {
	if cfg.Sessions == nil {
		return nil, errors.New("session manager is required")
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = marketplace.PageSize
	}
	sessions := cfg.Sessions
	h := &Handler{
		sessions:      sessions,
		logger:        cfg.Logger,
		secureCookies: cfg.SecureCookies,
	}
	h.shops = listview.NewRegistry(func(sessionID string) *listview.View[marketplace.Shop] {
		return listview.New(sessions.API(sessionID).ListShops, shopID, listview.WithPageSize[marketplace.Shop](pageSize))
	})
	h.users = listview.NewRegistry(func(sessionID string) *listview.View[marketplace.User] {
		return listview.New(sessions.API(sessionID).ListUsers, userID, listview.WithPageSize[marketplace.User](pageSize))
	})
	h.orders = listview.NewRegistry(func(sessionID string) *listview.View[marketplace.Order] {
		return listview.New(sessions.API(sessionID).ListOrders, orderID, listview.WithPageSize[marketplace.Order](pageSize))
	})
	return h, nil
}

func shopID(s marketplace.Shop) string   { return s.ID }
func userID(u marketplace.User) string   { return u.ID }
func orderID(o marketplace.Order) string { return o.ID }

// routes wires the HTTP routes for the console handler.
func (h *Handler) routes(staticFS fs.FS) http.Handler {
	adminMux := http.NewServeMux()
	authmodule.RegisterRoutes(adminMux, h)
	overviewmodule.RegisterRoutes(adminMux, h)
	shopsmodule.RegisterRoutes(adminMux, h)
	usersmodule.RegisterRoutes(adminMux, h)
	ordersmodule.RegisterRoutes(adminMux, h)

	rootMux := http.NewServeMux()
	httpmux.MountStatic(rootMux, staticFS, withStaticCache)
	httpmux.MountHealth(rootMux)
	httpmux.MountAdminRoutes(rootMux, h.requireSession(adminMux))
	return rootMux
}

func withStaticCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return i18n.Printer(tag), tag.String()
}

func (h *Handler) pageContext(lang string, loc *message.Printer, r *http.Request) templates.PageContext {
	page := templates.PageContext{
		Lang:         lang,
		Loc:          loc,
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
	}
	if sessionID := requestctx.SessionIDFromContext(r.Context()); sessionID != "" {
		if state := h.sessions.State(sessionID); state.Authenticated {
			page.AdminName = state.Admin.DisplayName()
		}
	}
	for _, option := range i18n.LanguageOptions(lang, loc) {
		page.Languages = append(page.Languages, sharedtemplates.LanguageOption{
			Tag:    option.Tag,
			Label:  option.Label,
			URL:    i18n.LanguageURL(r.URL.Path, r.URL.RawQuery, option.Tag),
			Active: option.Active,
		})
	}
	return page
}

func requireSameOrigin(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if r == nil {
		http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		if !sameOrigin(origin, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		if !sameOrigin(referer, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
	return false
}

func sameOrigin(rawURL string, r *http.Request) bool {
	if rawURL == "" || rawURL == "null" || r == nil {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if !strings.EqualFold(parsed.Host, r.Host) {
		return false
	}
	if parsed.Scheme != "" {
		return strings.EqualFold(parsed.Scheme, requestScheme(r))
	}
	return true
}

func requestScheme(r *http.Request) string {
	if r == nil {
		return "http"
	}
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		first, _, _ := strings.Cut(proto, ",")
		return strings.ToLower(strings.TrimSpace(first))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func isHTTPS(r *http.Request) bool {
	return requestScheme(r) == "https"
}

// safeNext keeps post-login redirects on this origin.
func safeNext(next string) string {
	next = strings.TrimSpace(next)
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return routepath.Root
	}
	if next == routepath.Login || strings.HasPrefix(next, routepath.Login+"?") {
		return routepath.Root
	}
	return next
}
