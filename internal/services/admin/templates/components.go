package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	sharedtemplates "github.com/louisbranch/farmhouse.admin/internal/services/shared/templates"
)

// Badge variants shared by status and role badges.
const (
	VariantSuccess = "success"
	VariantWarning = "warning"
	VariantDanger  = "danger"
	VariantNeutral = "neutral"
	VariantInfo    = "info"
)

// NoticeView is a toast for the operator.
type NoticeView struct {
	// Kind is "success" or "error".
	Kind string
	Text string
}

// ActionButton is one row or dialog action posted via htmx.
type ActionButton struct {
	Label   string
	URL     string
	Variant string
	// Confirm, when set, asks before posting.
	Confirm string
}

// PaginationView drives the previous/next controls under a table.
type PaginationView struct {
	Page       int
	TotalPages int
	// PageURL builds the table URL of a page.
	PageURL func(page int) string
	// Target is the CSS selector of the table container.
	Target string
}

// TableState is the shared shape of a list table fragment.
type TableState struct {
	ContainerID string
	// RefreshURL reloads the current page.
	RefreshURL string
	Empty      bool
	EmptyText  string
	// ErrorText replaces the table when the fetch failed with nothing to show.
	ErrorText  string
	Busy       bool
	Pagination PaginationView
}

// Toast renders notice as an out-of-band append to the toast region.
func Toast(notice *NoticeView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if notice == nil || notice.Text == "" {
			return nil
		}
		alert := "alert-success"
		if notice.Kind == "error" {
			alert = "alert-error"
		}
		return sharedtemplates.NewMarkup(w).
			Raw(`<div hx-swap-oob="beforeend:#toasts"><div`).
			Attr("class", "alert "+alert).
			Raw(` role="alert" data-toast>`).
			Raw(`<span>`).Text(notice.Text).Raw(`</span></div></div>`).
			Err()
	})
}

// Badge renders a small status pill.
func Badge(label string, variant string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return sharedtemplates.NewMarkup(w).
			Raw(`<span`).Attr("class", "badge "+badgeClass(variant)).Raw(`>`).Text(label).Raw(`</span>`).
			Err()
	})
}

func badgeClass(variant string) string {
	switch variant {
	case VariantSuccess:
		return "badge-success"
	case VariantWarning:
		return "badge-warning"
	case VariantDanger:
		return "badge-error"
	case VariantInfo:
		return "badge-info"
	default:
		return "badge-neutral"
	}
}

func buttonClass(variant string) string {
	switch variant {
	case VariantSuccess:
		return "btn btn-xs btn-success"
	case VariantWarning:
		return "btn btn-xs btn-warning"
	case VariantDanger:
		return "btn btn-xs btn-error"
	default:
		return "btn btn-xs btn-outline"
	}
}

// Actions renders action buttons that swap the response into target.
func Actions(buttons []ActionButton, target string, disabled bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := sharedtemplates.NewMarkup(w).Raw(`<div class="flex flex-wrap gap-1">`)
		for _, button := range buttons {
			m.Raw(`<button type="button"`).
				Attr("class", buttonClass(button.Variant)).
				Attr("hx-post", button.URL).
				Attr("hx-target", target).
				Raw(` hx-swap="outerHTML" hx-disabled-elt="this"`).
				AttrIf(button.Confirm != "", "hx-confirm", button.Confirm).
				AttrIf(disabled, "disabled", "disabled").
				Raw(`>`).Text(button.Label).Raw(`</button>`)
		}
		return m.Raw(`</div>`).Err()
	})
}

// Pagination renders previous/next controls with the page indicator.
func Pagination(loc Localizer, view PaginationView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if view.TotalPages <= 1 || view.PageURL == nil {
			return nil
		}
		m := sharedtemplates.NewMarkup(w).Raw(`<nav class="mt-4 flex items-center justify-between" aria-label="pagination">`)
		writePageButton(m, T(loc, "core.previous"), view, view.Page-1, view.Page <= 1)
		m.Raw(`<span class="text-sm" data-page="`).Raw(strconv.Itoa(view.Page)).Raw(`">`).
			Text(T(loc, "core.page_of", view.Page, view.TotalPages)).Raw(`</span>`)
		writePageButton(m, T(loc, "core.next"), view, view.Page+1, view.Page >= view.TotalPages)
		return m.Raw(`</nav>`).Err()
	})
}

func writePageButton(m *sharedtemplates.Markup, label string, view PaginationView, page int, disabled bool) {
	m.Raw(`<button type="button" class="btn btn-sm"`)
	if disabled {
		m.Raw(` disabled>`).Text(label).Raw(`</button>`)
		return
	}
	m.Attr("hx-get", view.PageURL(page)).
		Attr("hx-target", view.Target).
		Raw(` hx-swap="outerHTML">`).Text(label).Raw(`</button>`)
}

// LazyTable renders the placeholder that loads a table fragment on page load.
func LazyTable(containerID string, tableURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return sharedtemplates.NewMarkup(w).
			Raw(`<div`).Attr("id", containerID).
			Attr("hx-get", tableURL).
			Raw(` hx-trigger="load" hx-swap="outerHTML">`).
			Render(ctx, sharedtemplates.TableSkeleton(5)).
			Raw(`</div>`).
			Err()
	})
}

// Table wraps a table body with the shared empty, error and pagination
// handling. Requests targeting the container replace any still in flight.
func Table(loc Localizer, state TableState, head []string, rows templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := sharedtemplates.NewMarkup(w)
		m.Raw(`<div`).Attr("id", state.ContainerID).Raw(` hx-sync="this:replace"`).AttrIf(state.Busy, "aria-busy", "true").Raw(`>`)
		switch {
		case state.ErrorText != "":
			m.Raw(`<div class="alert alert-error" role="alert"><span>`).Text(state.ErrorText).Raw(`</span>`)
			writeRefresh(m, loc, state)
			m.Raw(`</div>`)
		case state.Empty:
			m.Raw(`<div class="py-10 text-center space-y-3" data-empty><p>`).Text(state.EmptyText).Raw(`</p>`)
			writeRefresh(m, loc, state)
			m.Raw(`</div>`)
		default:
			m.Raw(`<div class="overflow-x-auto"><table class="table table-zebra"><thead><tr>`)
			for _, label := range head {
				m.Raw(`<th>`).Text(label).Raw(`</th>`)
			}
			m.Raw(`</tr></thead><tbody>`).Render(ctx, rows).Raw(`</tbody></table></div>`)
			m.Render(ctx, Pagination(loc, state.Pagination))
		}
		return m.Raw(`</div>`).Err()
	})
}

func writeRefresh(m *sharedtemplates.Markup, loc Localizer, state TableState) {
	if state.RefreshURL == "" {
		return
	}
	m.Raw(`<button type="button" class="btn btn-sm"`).
		Attr("hx-get", state.RefreshURL).
		Attr("hx-target", "#"+state.ContainerID).
		Raw(` hx-swap="outerHTML">`).Text(T(loc, "core.refresh")).Raw(`</button>`)
}

// DetailLink renders a link that opens an entity dialog.
func DetailLink(label string, dialogURL string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return sharedtemplates.NewMarkup(w).
			Raw(`<button type="button" class="btn btn-xs btn-ghost"`).
			Attr("hx-get", dialogURL).
			Raw(` hx-target="#dialog" hx-swap="innerHTML">`).Text(label).Raw(`</button>`).
			Err()
	})
}

// Dialog renders a modal around body. detailURL, when set, swaps body for the
// fuller record once it loads.
func Dialog(loc Localizer, title string, detailURL string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := sharedtemplates.NewMarkup(w)
		m.Raw(`<dialog class="modal modal-open" open><div class="modal-box max-w-2xl">`)
		m.Raw(`<h3 class="text-lg font-bold mb-4">`).Text(title).Raw(`</h3>`)
		m.Raw(`<div data-dialog-body`)
		if detailURL != "" {
			m.Attr("hx-get", detailURL).Raw(` hx-trigger="load" hx-swap="innerHTML"`)
		}
		m.Raw(`>`).Render(ctx, body).Raw(`</div>`)
		m.Raw(`<div class="modal-action"><button type="button" class="btn" onclick="this.closest('dialog').remove()">`).
			Text(T(loc, "core.close")).Raw(`</button></div>`)
		m.Raw(`</div></dialog>`)
		return m.Err()
	})
}

// Field is one label/value pair in a detail list.
type Field struct {
	Label string
	Value string
}

// Fields renders a description list, replacing empty values with the
// localized "not available" marker.
func Fields(loc Localizer, fields []Field) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := sharedtemplates.NewMarkup(w).Raw(`<dl class="grid grid-cols-3 gap-2">`)
		for _, field := range fields {
			value := field.Value
			if value == "" {
				value = T(loc, "core.not_available")
			}
			m.Raw(`<dt class="font-semibold">`).Text(field.Label).Raw(`</dt><dd class="col-span-2">`).Text(value).Raw(`</dd>`)
		}
		return m.Raw(`</dl>`).Err()
	})
}

// Warning renders an inline warning line.
func Warning(text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if text == "" {
			return nil
		}
		return sharedtemplates.NewMarkup(w).
			Raw(`<div class="alert alert-warning my-3" role="alert"><span>`).Text(text).Raw(`</span></div>`).
			Err()
	})
}

// CloseDialog empties the dialog region out of band.
func CloseDialog() templ.Component {
	return templ.Raw(`<div id="dialog" hx-swap-oob="innerHTML"></div>`)
}
