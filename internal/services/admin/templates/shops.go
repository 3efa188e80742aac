package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	routepath "github.com/louisbranch/farmhouse.admin/internal/services/admin/routepath"
	sharedtemplates "github.com/louisbranch/farmhouse.admin/internal/services/shared/templates"
)

// ShopsTableID is the DOM id of the shops table container.
const ShopsTableID = "shops-table"

// ShopRow is one row of the shops table.
type ShopRow struct {
	ID            string
	Name          string
	OwnerName     string
	Location      string
	CreatedAt     string
	StatusLabel   string
	StatusVariant string
	// Unverified adds the marker next to the status badge.
	Unverified bool
	Actions    []ActionButton
}

// ShopsTableView provides data for the shops table fragment.
type ShopsTableView struct {
	State TableState
	Rows  []ShopRow
}

// ShopDialogView provides data for the shop detail dialog.
type ShopDialogView struct {
	ID            string
	Name          string
	OwnerName     string
	Email         string
	PhoneNumber   string
	Location      string
	Description   string
	CreatedAt     string
	StatusLabel   string
	StatusVariant string
	Unverified    bool
	// DetailURL loads the fuller record. Empty once it has loaded.
	DetailURL string
	Warning   string
}

// ShopsPage renders the shops page shell; the table loads lazily.
func ShopsPage(page PageContext, tableURL string) templ.Component {
	return Page(page, T(page.Loc, "shops.title"), NavShops, LazyTable(ShopsTableID, tableURL))
}

// ShopsTable renders the shops table fragment.
func ShopsTable(loc Localizer, view ShopsTableView) templ.Component {
	head := []string{
		T(loc, "shops.col.name"),
		T(loc, "shops.col.owner"),
		T(loc, "shops.col.location"),
		T(loc, "shops.col.date"),
		T(loc, "shops.col.status"),
		T(loc, "core.actions"),
	}
	rows := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := sharedtemplates.NewMarkup(w)
		for _, row := range view.Rows {
			m.Raw(`<tr`).Attr("data-shop-id", row.ID).Raw(`>`)
			m.Raw(`<td>`).Text(row.Name).Raw(`</td>`)
			m.Raw(`<td>`).Text(row.OwnerName).Raw(`</td>`)
			m.Raw(`<td>`).Text(orNA(loc, row.Location)).Raw(`</td>`)
			m.Raw(`<td>`).Text(row.CreatedAt).Raw(`</td>`)
			m.Raw(`<td><div class="flex gap-1">`).Render(ctx, Badge(row.StatusLabel, row.StatusVariant))
			if row.Unverified {
				m.Render(ctx, Badge(T(loc, "shops.unverified"), VariantInfo))
			}
			m.Raw(`</div></td>`)
			m.Raw(`<td><div class="flex gap-1">`).
				Render(ctx, DetailLink(T(loc, "core.details"), routepath.Shop(row.ID))).
				Render(ctx, Actions(row.Actions, "#"+ShopsTableID, view.State.Busy)).
				Raw(`</div></td></tr>`)
		}
		return m.Err()
	})
	return Table(loc, view.State, head, rows)
}

// ShopDialog renders the shop dialog around the held record.
func ShopDialog(loc Localizer, view ShopDialogView) templ.Component {
	return Dialog(loc, T(loc, "shops.detail.title"), view.DetailURL, ShopDetail(loc, view))
}

// ShopDetail renders the dialog body. It is also the response of the detail
// endpoint.
func ShopDetail(loc Localizer, view ShopDialogView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := sharedtemplates.NewMarkup(w)
		m.Render(ctx, Warning(view.Warning))
		m.Raw(`<div class="mb-3 flex items-center gap-2"><span class="text-xl">`).Text(view.Name).Raw(`</span>`)
		m.Render(ctx, Badge(view.StatusLabel, view.StatusVariant))
		if view.Unverified {
			m.Render(ctx, Badge(T(loc, "shops.unverified"), VariantInfo))
		}
		m.Raw(`</div>`)
		m.Render(ctx, Fields(loc, []Field{
			{Label: T(loc, "shops.col.owner"), Value: view.OwnerName},
			{Label: T(loc, "shops.field.email"), Value: view.Email},
			{Label: T(loc, "shops.field.phone"), Value: view.PhoneNumber},
			{Label: T(loc, "shops.col.location"), Value: view.Location},
			{Label: T(loc, "shops.field.created"), Value: view.CreatedAt},
			{Label: T(loc, "shops.field.description"), Value: view.Description},
		}))
		return m.Err()
	})
}

func orNA(loc Localizer, value string) string {
	if value == "" {
		return T(loc, "core.not_available")
	}
	return value
}
