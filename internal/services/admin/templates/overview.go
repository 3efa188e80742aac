package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	routepath "github.com/louisbranch/farmhouse.admin/internal/services/admin/routepath"
	sharedtemplates "github.com/louisbranch/farmhouse.admin/internal/services/shared/templates"
)

// OverviewCard is one total on the overview page.
type OverviewCard struct {
	Label string
	// Value is the formatted total, or the unavailable marker.
	Value string
	URL   string
}

// OverviewView provides data for the overview page.
type OverviewView struct {
	Cards []OverviewCard
}

// OverviewCards lays out the three totals in console order.
func OverviewCards(loc Localizer, shops, users, orders string) []OverviewCard {
	return []OverviewCard{
		{Label: T(loc, "overview.shops"), Value: shops, URL: routepath.Shops},
		{Label: T(loc, "overview.users"), Value: users, URL: routepath.Users},
		{Label: T(loc, "overview.orders"), Value: orders, URL: routepath.Orders},
	}
}

// OverviewPage renders the landing page with entity totals.
func OverviewPage(page PageContext, view OverviewView) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := sharedtemplates.NewMarkup(w).Raw(`<div class="stats stats-vertical lg:stats-horizontal shadow bg-base-100">`)
		for _, card := range view.Cards {
			m.Raw(`<a class="stat"`).Attr("href", card.URL).Raw(`>`).
				Raw(`<div class="stat-title">`).Text(card.Label).Raw(`</div>`).
				Raw(`<div class="stat-value">`).Text(card.Value).Raw(`</div></a>`)
		}
		return m.Raw(`</div>`).Err()
	})
	return Page(page, T(page.Loc, "overview.title"), NavOverview, body)
}
