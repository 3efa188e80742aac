package admin

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/louisbranch/farmhouse.admin/internal/services/admin/listview"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/marketplace"
	routepath "github.com/louisbranch/farmhouse.admin/internal/services/admin/routepath"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/templates"
)

// HandleOrdersPage renders the orders page shell.
func (h *Handler) HandleOrdersPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := parsePage(r)
	if r.URL.Query().Get("page") == "" {
		if snap := h.orders.For(sessionID(r)).Snapshot(); snap.Phase == listview.PhaseLoaded {
			page = snap.Page
		}
	}
	renderPage(w, r, templates.OrdersPage(h.pageContext(lang, loc, r), routepath.Paged(routepath.OrdersTable, page)), loc.Sprintf("orders.title"))
}

// HandleOrdersTable fetches one page of orders.
func (h *Handler) HandleOrdersTable(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	snap, err := h.orders.For(sessionID(r)).FetchPage(r.Context(), parsePage(r))
	if h.handleViewError(w, r, err) {
		return
	}
	h.renderOrdersTable(w, r, loc, snap)
}

// HandleOrderDialog opens the dialog on the held summary.
func (h *Handler) HandleOrderDialog(w http.ResponseWriter, r *http.Request, id string) {
	loc, lang := h.localizer(w, r)
	summary, ok := h.orders.For(sessionID(r)).Select(id)
	if !ok {
		summary = marketplace.Order{ID: id}
	}
	view := orderDialogView(summary, loc, lang)
	view.DetailURL = routepath.OrderDetail(id)
	renderFragment(w, r, http.StatusOK, templates.OrderDialog(loc, view))
}

// HandleOrderDetail merges the order's line items, customer and address into
// the held summary.
func (h *Handler) HandleOrderDetail(w http.ResponseWriter, r *http.Request, id string) {
	loc, lang := h.localizer(w, r)
	sid := sessionID(r)
	summary, ok := h.orders.For(sid).Select(id)
	if !ok {
		summary = marketplace.Order{ID: id}
	}

	detail, err := h.sessions.API(sid).GetOrder(r.Context(), id)
	if h.handleViewError(w, r, err) {
		return
	}
	if err != nil {
		h.logger.Warn().Err(err).Str("order_id", id).Msg("load order detail")
		view := orderDialogView(summary, loc, lang)
		view.Warning = loc.Sprintf("notice.detail_failed")
		renderFragment(w, r, http.StatusOK, templates.OrderDetail(loc, view))
		return
	}
	renderFragment(w, r, http.StatusOK, templates.OrderDetail(loc, orderDialogView(marketplace.MergeOrder(summary, detail), loc, lang)))
}

// HandleOrderDelete deletes an order, closes the dialog and re-renders the
// table from a fresh fetch.
func (h *Handler) HandleOrderDelete(w http.ResponseWriter, r *http.Request, id string) {
	loc, _ := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	sid := sessionID(r)
	client := h.sessions.API(sid)
	view := h.orders.For(sid)
	snap, err := view.Run(r.Context(), listview.Action{
		Call: func(ctx context.Context) error {
			return client.DeleteOrder(ctx, id)
		},
		SuccessKey: "notice.order.deleted",
	})
	if err != nil {
		h.logger.Warn().Err(err).Str("order_id", id).Msg("delete order failed")
	}
	if h.handleViewError(w, r, err) {
		return
	}
	// Deleting the last order on the last page leaves that page empty.
	if page := marketplace.ClampPage(snap.Page, snap.TotalPages); err == nil && page != snap.Page {
		notice := snap.Notice
		if clamped, fetchErr := view.FetchPage(r.Context(), page); fetchErr == nil {
			clamped.Notice = notice
			snap = clamped
		}
	}
	if err != nil {
		h.renderOrdersTable(w, r, loc, snap)
		return
	}
	h.renderOrdersTable(w, r, loc, snap, templates.CloseDialog())
}

func (h *Handler) renderOrdersTable(w http.ResponseWriter, r *http.Request, loc *message.Printer, snap listview.Snapshot[marketplace.Order], extra ...templ.Component) {
	_, lang := h.localizer(w, r)
	state := tableState(templates.OrdersTableID, routepath.Paged(routepath.OrdersTable, snap.Page))
	state.Busy = snap.Busy
	state.Empty = snap.Empty()
	state.EmptyText = loc.Sprintf("orders.empty")
	state.Pagination = pagination(templates.OrdersTableID, snap.Page, snap.TotalPages, pagedURL(routepath.OrdersTable))

	notice := noticeView(loc, snap.Notice)
	if notice != nil && snap.Phase == listview.PhaseError && len(snap.Items) == 0 {
		state.ErrorText = notice.Text
		notice = nil
	}

	rows := make([]templates.OrderRow, 0, len(snap.Items))
	for _, order := range snap.Items {
		rows = append(rows, templates.OrderRow{
			ID:            order.ID,
			Customer:      orderCustomer(order),
			Total:         formatMoney(order.TotalAmount, loc),
			StatusLabel:   orderStatusLabel(order.Status, loc),
			StatusVariant: orderStatusVariant(order.Status),
			CreatedAt:     formatDate(order.CreatedAt, lang),
		})
	}
	components := []templ.Component{
		templates.OrdersTable(loc, templates.OrdersTableView{State: state, Rows: rows}),
		templates.Toast(notice),
	}
	renderFragment(w, r, http.StatusOK, append(components, extra...)...)
}

func orderCustomer(order marketplace.Order) string {
	if order.User != nil {
		if name := order.User.Name(); name != "" {
			return name
		}
		if order.User.Email != "" {
			return order.User.Email
		}
	}
	return order.UserID
}

func orderDialogView(order marketplace.Order, loc *message.Printer, lang string) templates.OrderDialogView {
	view := templates.OrderDialogView{
		ID:            order.ID,
		StatusLabel:   orderStatusLabel(order.Status, loc),
		StatusVariant: orderStatusVariant(order.Status),
		CreatedAt:     formatDate(order.CreatedAt, lang),
		UpdatedAt:     formatDate(order.UpdatedAt, lang),
		Delete: templates.ActionButton{
			Label:   loc.Sprintf("orders.delete"),
			URL:     routepath.OrderDelete(order.ID),
			Variant: templates.VariantDanger,
			Confirm: loc.Sprintf("orders.delete_confirm"),
		},
	}
	if order.Status != "" {
		view.Total = formatMoney(order.TotalAmount, loc)
	}
	for _, item := range order.Items {
		product := item.Name
		if product == "" {
			product = item.ProductID
		}
		view.Items = append(view.Items, templates.OrderItemRow{
			Product:   product,
			Quantity:  formatQuantity(item.Quantity),
			UnitPrice: formatMoney(item.UnitPrice, loc),
			Subtotal:  formatMoney(item.Subtotal(), loc),
		})
	}
	if order.User != nil {
		view.CustomerName = order.User.Name()
		view.CustomerEmail = order.User.Email
	}
	if order.ShippingAddress != nil {
		view.AddressLines = order.ShippingAddress.Lines()
	}
	return view
}
