package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	routepath "github.com/louisbranch/farmhouse.admin/internal/services/admin/routepath"
	sharedtemplates "github.com/louisbranch/farmhouse.admin/internal/services/shared/templates"
)

// OrdersTableID is the DOM id of the orders table container.
const OrdersTableID = "orders-table"

// OrderRow represents a row in the orders table.
type OrderRow struct {
	ID            string
	Customer      string
	Total         string
	StatusLabel   string
	StatusVariant string
	CreatedAt     string
}

// OrdersTableView provides data for the orders table fragment.
type OrdersTableView struct {
	State TableState
	Rows  []OrderRow
}

// OrderItemRow is one line item in the order dialog.
type OrderItemRow struct {
	Product   string
	Quantity  string
	UnitPrice string
	Subtotal  string
}

// OrderDialogView provides data for the order detail dialog.
type OrderDialogView struct {
	ID            string
	Total         string
	StatusLabel   string
	StatusVariant string
	CreatedAt     string
	UpdatedAt     string
	Items         []OrderItemRow
	CustomerName  string
	CustomerEmail string
	AddressLines  []string
	// DetailURL loads the fuller record. Empty once it has loaded.
	DetailURL string
	Warning   string
	Delete    ActionButton
}

// OrdersPage renders the orders page shell; the table loads lazily.
func OrdersPage(page PageContext, tableURL string) templ.Component {
	return Page(page, T(page.Loc, "orders.title"), NavOrders, LazyTable(OrdersTableID, tableURL))
}

// OrdersTable renders the orders table fragment.
func OrdersTable(loc Localizer, view OrdersTableView) templ.Component {
	head := []string{
		T(loc, "orders.col.id"),
		T(loc, "orders.col.customer"),
		T(loc, "orders.col.total"),
		T(loc, "orders.col.status"),
		T(loc, "orders.col.date"),
		T(loc, "core.actions"),
	}
	rows := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := sharedtemplates.NewMarkup(w)
		for _, row := range view.Rows {
			m.Raw(`<tr`).Attr("data-order-id", row.ID).Raw(`>`)
			m.Raw(`<td class="font-mono text-xs">`).Text(row.ID).Raw(`</td>`)
			m.Raw(`<td>`).Text(orNA(loc, row.Customer)).Raw(`</td>`)
			m.Raw(`<td>`).Text(row.Total).Raw(`</td>`)
			m.Raw(`<td>`).Render(ctx, Badge(row.StatusLabel, row.StatusVariant)).Raw(`</td>`)
			m.Raw(`<td>`).Text(row.CreatedAt).Raw(`</td>`)
			m.Raw(`<td>`).Render(ctx, DetailLink(T(loc, "core.details"), routepath.Order(row.ID))).Raw(`</td></tr>`)
		}
		return m.Err()
	})
	return Table(loc, view.State, head, rows)
}

// OrderDialog renders the order dialog around the held record.
func OrderDialog(loc Localizer, view OrderDialogView) templ.Component {
	return Dialog(loc, T(loc, "orders.detail.title"), view.DetailURL, OrderDetail(loc, view))
}

// OrderDetail renders the dialog body. It is also the response of the detail
// endpoint.
func OrderDetail(loc Localizer, view OrderDialogView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := sharedtemplates.NewMarkup(w)
		m.Render(ctx, Warning(view.Warning))
		m.Raw(`<div class="mb-3 flex items-center gap-2"><span class="font-mono">`).Text(view.ID).Raw(`</span>`).
			Render(ctx, Badge(view.StatusLabel, view.StatusVariant)).Raw(`</div>`)
		m.Render(ctx, Fields(loc, []Field{
			{Label: T(loc, "orders.col.total"), Value: view.Total},
			{Label: T(loc, "orders.col.date"), Value: view.CreatedAt},
			{Label: T(loc, "orders.field.updated"), Value: view.UpdatedAt},
		}))

		if len(view.Items) > 0 {
			m.Raw(`<h4 class="mt-4 font-semibold">`).Text(T(loc, "orders.items")).Raw(`</h4>`)
			m.Raw(`<table class="table table-sm"><thead><tr>`)
			for _, key := range []string{"orders.item.product", "orders.item.quantity", "orders.item.price", "orders.item.subtotal"} {
				m.Raw(`<th>`).Text(T(loc, key)).Raw(`</th>`)
			}
			m.Raw(`</tr></thead><tbody>`)
			for _, item := range view.Items {
				m.Raw(`<tr><td>`).Text(item.Product).
					Raw(`</td><td>`).Text(item.Quantity).
					Raw(`</td><td>`).Text(item.UnitPrice).
					Raw(`</td><td>`).Text(item.Subtotal).
					Raw(`</td></tr>`)
			}
			m.Raw(`</tbody></table>`)
		}

		if view.CustomerName != "" || view.CustomerEmail != "" {
			m.Raw(`<h4 class="mt-4 font-semibold">`).Text(T(loc, "orders.customer")).Raw(`</h4>`)
			m.Raw(`<p>`).Text(view.CustomerName).Raw(`</p><p class="text-sm">`).Text(view.CustomerEmail).Raw(`</p>`)
		}
		if len(view.AddressLines) > 0 {
			m.Raw(`<h4 class="mt-4 font-semibold">`).Text(T(loc, "orders.shipping")).Raw(`</h4><address class="not-italic">`)
			for _, line := range view.AddressLines {
				m.Raw(`<div>`).Text(line).Raw(`</div>`)
			}
			m.Raw(`</address>`)
		}

		if view.Delete.URL != "" {
			m.Raw(`<div class="mt-4">`).Render(ctx, Actions([]ActionButton{view.Delete}, "#"+OrdersTableID, false)).Raw(`</div>`)
		}
		return m.Err()
	})
}
