package admin

import (
	"context"
	"net/http"

	"golang.org/x/text/message"

	"github.com/louisbranch/farmhouse.admin/internal/services/admin/listview"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/marketplace"
	routepath "github.com/louisbranch/farmhouse.admin/internal/services/admin/routepath"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/templates"
)

// HandleShopsPage renders the shops page shell at the requested page, or the
// page the session last viewed.
func (h *Handler) HandleShopsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := parsePage(r)
	if r.URL.Query().Get("page") == "" {
		if snap := h.shops.For(sessionID(r)).Snapshot(); snap.Phase == listview.PhaseLoaded {
			page = snap.Page
		}
	}
	renderPage(w, r, templates.ShopsPage(h.pageContext(lang, loc, r), routepath.Paged(routepath.ShopsTable, page)), loc.Sprintf("shops.title"))
}

// HandleShopsTable fetches one page and renders the table fragment.
func (h *Handler) HandleShopsTable(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	view := h.shops.For(sessionID(r))
	snap, err := view.FetchPage(r.Context(), parsePage(r))
	if h.handleViewError(w, r, err) {
		return
	}
	h.renderShopsTable(w, r, loc, snap)
}

// HandleShopDialog opens the dialog on the held summary; the body then loads
// the fuller record.
func (h *Handler) HandleShopDialog(w http.ResponseWriter, r *http.Request, id string) {
	loc, lang := h.localizer(w, r)
	summary, ok := h.shops.For(sessionID(r)).Select(id)
	if !ok {
		summary = marketplace.Shop{ID: id}
	}
	view := shopDialogView(summary, loc, lang)
	view.DetailURL = routepath.ShopDetail(id)
	renderFragment(w, r, http.StatusOK, templates.ShopDialog(loc, view))
}

// HandleShopDetail merges the detail endpoint's record into the held summary.
// A failed detail read keeps the summary and says so.
func (h *Handler) HandleShopDetail(w http.ResponseWriter, r *http.Request, id string) {
	loc, lang := h.localizer(w, r)
	sid := sessionID(r)
	summary, ok := h.shops.For(sid).Select(id)
	if !ok {
		summary = marketplace.Shop{ID: id}
	}

	detail, err := h.sessions.API(sid).GetShop(r.Context(), id)
	if h.handleViewError(w, r, err) {
		return
	}
	if err != nil {
		h.logger.Warn().Err(err).Str("shop_id", id).Msg("load shop detail")
		view := shopDialogView(summary, loc, lang)
		view.Warning = loc.Sprintf("notice.detail_failed")
		renderFragment(w, r, http.StatusOK, templates.ShopDetail(loc, view))
		return
	}
	view := shopDialogView(marketplace.MergeShop(summary, detail), loc, lang)
	renderFragment(w, r, http.StatusOK, templates.ShopDetail(loc, view))
}

// HandleShopAction posts a moderation action, then re-renders the table from
// a fresh fetch of the current page.
func (h *Handler) HandleShopAction(w http.ResponseWriter, r *http.Request, id string, action marketplace.ShopAction) {
	loc, _ := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	sid := sessionID(r)
	view := h.shops.For(sid)
	client := h.sessions.API(sid)

	snap, err := view.Run(r.Context(), listview.Action{
		Call: func(ctx context.Context) error {
			if err := client.ShopAction(ctx, id, action); err != nil {
				return err
			}
			view.Update(id, func(shop marketplace.Shop) marketplace.Shop { return shop.Apply(action) })
			return nil
		},
		SuccessKey: "notice.shop." + string(action),
	})
	if err != nil {
		h.logger.Warn().Err(err).Str("shop_id", id).Str("action", string(action)).Msg("shop action failed")
	}
	if h.handleViewError(w, r, err) {
		return
	}
	h.renderShopsTable(w, r, loc, snap)
}

func (h *Handler) renderShopsTable(w http.ResponseWriter, r *http.Request, loc *message.Printer, snap listview.Snapshot[marketplace.Shop]) {
	_, lang := h.localizer(w, r)
	refreshURL := routepath.Paged(routepath.ShopsTable, snap.Page)
	state := tableState(templates.ShopsTableID, refreshURL)
	state.Busy = snap.Busy
	state.Empty = snap.Empty()
	state.EmptyText = loc.Sprintf("shops.empty")
	state.Pagination = pagination(templates.ShopsTableID, snap.Page, snap.TotalPages, pagedURL(routepath.ShopsTable))

	notice := noticeView(loc, snap.Notice)
	if notice != nil && snap.Phase == listview.PhaseError && len(snap.Items) == 0 {
		state.ErrorText = notice.Text
		notice = nil
	}

	rows := make([]templates.ShopRow, 0, len(snap.Items))
	for _, shop := range snap.Items {
		rows = append(rows, shopRow(shop, loc, lang))
	}
	renderFragment(w, r, http.StatusOK,
		templates.ShopsTable(loc, templates.ShopsTableView{State: state, Rows: rows}),
		templates.Toast(notice),
	)
}

func shopRow(shop marketplace.Shop, loc *message.Printer, lang string) templates.ShopRow {
	status := shop.Status()
	row := templates.ShopRow{
		ID:            shop.ID,
		Name:          shop.Name,
		OwnerName:     shop.OwnerName,
		Location:      shop.Location,
		CreatedAt:     formatDate(shop.CreatedAt, lang),
		StatusLabel:   shopStatusLabel(status, loc),
		StatusVariant: shopStatusVariant(status),
		Unverified:    !shop.IsVerified,
	}
	for _, action := range shop.AvailableActions() {
		row.Actions = append(row.Actions, templates.ActionButton{
			Label:   loc.Sprintf("shops.action." + string(action)),
			URL:     routepath.ShopAction(shop.ID, string(action)),
			Variant: shopActionVariant(action),
		})
	}
	return row
}

func shopDialogView(shop marketplace.Shop, loc *message.Printer, lang string) templates.ShopDialogView {
	view := templates.ShopDialogView{
		ID:          shop.ID,
		Name:        shop.Name,
		OwnerName:   shop.OwnerName,
		Email:       shop.Email,
		PhoneNumber: shop.PhoneNumber,
		Location:    shop.Location,
		Description: shop.Description,
		CreatedAt:   formatDate(shop.CreatedAt, lang),
	}
	// A bare id means nothing is known yet, so no badge.
	if shop.Name != "" || !shop.CreatedAt.IsZero() {
		status := shop.Status()
		view.StatusLabel = shopStatusLabel(status, loc)
		view.StatusVariant = shopStatusVariant(status)
		view.Unverified = !shop.IsVerified
	}
	return view
}
