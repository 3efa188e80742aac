package admin

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/message"

	apperrors "github.com/louisbranch/farmhouse.admin/internal/platform/errors"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/templates"
	"github.com/louisbranch/farmhouse.admin/internal/services/shared/htmx"
)

// HandleOverview renders the landing page with one total per collection. The
// three reads run together; a failed read marks only its own card.
func (h *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	client := h.sessions.API(sessionID(r))

	totals := [3]string{}
	errs := [3]error{}
	reads := [3]func(ctx context.Context) (int, error){
		func(ctx context.Context) (int, error) {
			page, err := client.ListShops(ctx, 1, 1)
			return page.Total, err
		},
		func(ctx context.Context) (int, error) {
			page, err := client.ListUsers(ctx, 1, 1)
			return page.Total, err
		},
		func(ctx context.Context) (int, error) {
			page, err := client.ListOrders(ctx, 1, 1)
			return page.Total, err
		},
	}

	var group errgroup.Group
	for i, read := range reads {
		group.Go(func() error {
			total, err := read(r.Context())
			errs[i] = err
			if err == nil {
				totals[i] = formatCount(total, loc)
			}
			return nil
		})
	}
	_ = group.Wait()

	for i, err := range errs {
		if err == nil {
			continue
		}
		if apperrors.HasCode(err, apperrors.CodeUnauthorized) {
			h.dropViews(sessionID(r))
			htmx.Redirect(w, r, loginURL(r))
			return
		}
		h.logger.Warn().Err(err).Int("card", i).Msg("overview total unavailable")
		totals[i] = unavailable(loc)
	}

	view := templates.OverviewView{Cards: templates.OverviewCards(loc, totals[0], totals[1], totals[2])}
	renderPage(w, r, templates.OverviewPage(h.pageContext(lang, loc, r), view), loc.Sprintf("overview.title"))
}

func unavailable(loc *message.Printer) string {
	return loc.Sprintf("overview.unavailable")
}
