package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	routepath "github.com/louisbranch/farmhouse.admin/internal/services/admin/routepath"
	sharedtemplates "github.com/louisbranch/farmhouse.admin/internal/services/shared/templates"
)

// UsersTableID is the DOM id of the users table container.
const UsersTableID = "users-table"

// RoleOption is one entry of the role filter.
type RoleOption struct {
	Value    string
	Label    string
	Selected bool
}

// UsersFilterView is the state of the users filter form.
type UsersFilterView struct {
	Search string
	Roles  []RoleOption
	// Page is the page the filter applies to.
	Page int
}

// UserRow represents a row in the users table.
type UserRow struct {
	ID          string
	Name        string
	Email       string
	RoleLabel   string
	RoleVariant string
}

// UsersTableView provides data for the users table fragment.
type UsersTableView struct {
	State TableState
	Rows  []UserRow
}

// UserDialogView provides data for the user detail dialog.
type UserDialogView struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	RoleLabel   string
	RoleVariant string
}

// UsersPage renders the users page with its filter form; the table loads
// lazily.
func UsersPage(page PageContext, filter UsersFilterView, tableURL string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return sharedtemplates.NewMarkup(w).
			Render(ctx, UsersFilter(page.Loc, filter)).
			Render(ctx, LazyTable(UsersTableID, tableURL)).
			Err()
	})
	return Page(page, T(page.Loc, "users.title"), NavUsers, body)
}

// UsersFilter renders the search and role filter. Filtering narrows the page
// already on screen.
func UsersFilter(loc Localizer, view UsersFilterView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := sharedtemplates.NewMarkup(w)
		m.Raw(`<form id="users-filter" class="mb-4 flex flex-wrap items-end gap-2"`).
			Attr("action", routepath.Users).
			Attr("hx-get", routepath.UsersTable).
			Attr("hx-target", "#"+UsersTableID).
			Raw(` hx-swap="outerHTML">`)
		m.Raw(`<input type="hidden" name="filter" value="1">`)
		m.Raw(`<input type="hidden" name="page"`).Attr("value", strconv.Itoa(max(view.Page, 1))).Raw(`>`)
		m.Raw(`<input class="input input-bordered input-sm" type="search" name="q"`).
			Attr("value", view.Search).
			Attr("placeholder", T(loc, "users.search")).
			Attr("aria-label", T(loc, "users.search")).
			Raw(`>`)
		m.Raw(`<select class="select select-bordered select-sm" name="role"`).Attr("aria-label", T(loc, "users.col.role")).Raw(`>`)
		for _, option := range view.Roles {
			m.Raw(`<option`).Attr("value", option.Value).AttrIf(option.Selected, "selected", "selected").Raw(`>`).
				Text(option.Label).Raw(`</option>`)
		}
		m.Raw(`</select>`)
		m.Raw(`<button type="submit" class="btn btn-sm btn-primary">`).Text(T(loc, "users.filter")).Raw(`</button>`)
		m.Raw(`<a class="btn btn-sm btn-ghost"`).Attr("href", routepath.Users).Raw(`>`).Text(T(loc, "users.reset")).Raw(`</a>`)
		return m.Raw(`</form>`).Err()
	})
}

// UsersTable renders the users table fragment.
func UsersTable(loc Localizer, view UsersTableView) templ.Component {
	head := []string{
		T(loc, "users.col.name"),
		T(loc, "users.col.email"),
		T(loc, "users.col.role"),
		T(loc, "core.actions"),
	}
	rows := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := sharedtemplates.NewMarkup(w)
		for _, row := range view.Rows {
			m.Raw(`<tr`).Attr("data-user-id", row.ID).Raw(`>`)
			m.Raw(`<td>`).Text(orNA(loc, row.Name)).Raw(`</td>`)
			m.Raw(`<td>`).Text(row.Email).Raw(`</td>`)
			m.Raw(`<td>`).Render(ctx, Badge(row.RoleLabel, row.RoleVariant)).Raw(`</td>`)
			m.Raw(`<td>`).Render(ctx, DetailLink(T(loc, "core.details"), routepath.User(row.ID))).Raw(`</td></tr>`)
		}
		return m.Err()
	})
	return Table(loc, view.State, head, rows)
}

// UserDialog renders the user dialog from the held list record.
func UserDialog(loc Localizer, view UserDialogView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return sharedtemplates.NewMarkup(w).
			Raw(`<div class="mb-3">`).Render(ctx, Badge(view.RoleLabel, view.RoleVariant)).Raw(`</div>`).
			Render(ctx, Fields(loc, []Field{
				{Label: T(loc, "users.col.name"), Value: joinName(view.FirstName, view.LastName)},
				{Label: T(loc, "users.col.email"), Value: view.Email},
				{Label: "ID", Value: view.ID},
			})).
			Err()
	})
	return Dialog(loc, T(loc, "users.detail.title"), "", body)
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
