package admin

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
	"golang.org/x/text/message"

	apperrors "github.com/louisbranch/farmhouse.admin/internal/platform/errors"
	"github.com/louisbranch/farmhouse.admin/internal/platform/requestctx"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/listview"
	routepath "github.com/louisbranch/farmhouse.admin/internal/services/admin/routepath"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/templates"
	"github.com/louisbranch/farmhouse.admin/internal/services/shared/htmx"
)

// renderPage serves full for normal requests and its main content for htmx
// navigation.
func renderPage(w http.ResponseWriter, r *http.Request, full templ.Component, title string) {
	htmx.RenderPage(w, r, nil, full, htmx.TitleTag(title))
}

// renderPageStatus renders a full page with a non-200 status.
func renderPageStatus(w http.ResponseWriter, r *http.Request, status int, full templ.Component) {
	templ.Handler(full, templ.WithStatus(status)).ServeHTTP(w, r)
}

// renderFragment writes an htmx fragment followed by any out-of-band parts.
func renderFragment(w http.ResponseWriter, r *http.Request, status int, components ...templ.Component) {
	if err := htmx.RenderFragment(w, r, status, components...); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("render fragment")
	}
}

// sessionID returns the console session attached by the guard.
func sessionID(r *http.Request) string {
	return requestctx.SessionIDFromContext(r.Context())
}

// handleViewError deals with the outcomes every list fragment shares. It
// returns true when the response has been written.
func (h *Handler) handleViewError(w http.ResponseWriter, r *http.Request, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, listview.ErrStale):
		// A newer request for this view owns the swap.
		w.WriteHeader(http.StatusNoContent)
		return true
	case apperrors.HasCode(err, apperrors.CodeUnauthorized):
		id := sessionID(r)
		h.dropViews(id)
		h.logger.Info().Str("session_id", id).Msg("console session evicted by api")
		htmx.Redirect(w, r, loginURL(r))
		return true
	default:
		return false
	}
}

// errorText picks what the operator sees for err. Messages the API wrote
// itself are shown verbatim; transport and decode failures use the catalog.
func errorText(loc *message.Printer, err error) string {
	if err == nil {
		return ""
	}
	domainErr, ok := apperrors.As(err)
	if !ok {
		return loc.Sprintf(apperrors.CodeUnknown.LocalizationKey())
	}
	switch domainErr.Code {
	case apperrors.CodeTransport, apperrors.CodeDecode, apperrors.CodeUnknown:
		return loc.Sprintf(domainErr.Code.LocalizationKey())
	}
	if strings.TrimSpace(domainErr.Message) != "" {
		return domainErr.Message
	}
	return loc.Sprintf(domainErr.Code.LocalizationKey())
}

// errorStatus maps err to the status of a full-page error response.
func errorStatus(err error) int {
	return apperrors.HTTPStatus(err)
}

// noticeView localizes a list notice for the toast region.
func noticeView(loc *message.Printer, notice *listview.Notice) *templates.NoticeView {
	if notice == nil {
		return nil
	}
	text := notice.Detail
	if text == "" {
		text = loc.Sprintf(notice.Key)
	}
	return &templates.NoticeView{Kind: string(notice.Kind), Text: text}
}

// parsePage reads the 1-based page query parameter.
func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("page")))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// sameOriginPath returns the path and query of rawURL when it points at this
// console.
func sameOriginPath(rawURL string, r *http.Request) (string, bool) {
	if !sameOrigin(rawURL, r) {
		return "", false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	return parsed.RequestURI(), true
}

func tableState(containerID string, refreshURL string) templates.TableState {
	return templates.TableState{ContainerID: containerID, RefreshURL: refreshURL}
}

func pagination(target string, page, totalPages int, pageURL func(int) string) templates.PaginationView {
	return templates.PaginationView{
		Page:       page,
		TotalPages: totalPages,
		PageURL:    pageURL,
		Target:     "#" + target,
	}
}

func pagedURL(base string) func(int) string {
	return func(page int) string {
		return routepath.Paged(base, page)
	}
}
