package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	routepath "github.com/louisbranch/farmhouse.admin/internal/services/admin/routepath"
	sharedtemplates "github.com/louisbranch/farmhouse.admin/internal/services/shared/templates"
)

// Nav keys select the active header tab.
const (
	NavOverview = "overview"
	NavShops    = "shops"
	NavUsers    = "users"
	NavOrders   = "orders"
)

// NavItems lists the console tabs in display order.
func NavItems(loc Localizer) []sharedtemplates.NavItem {
	return []sharedtemplates.NavItem{
		{Key: NavOverview, Label: T(loc, "nav.overview"), URL: routepath.Root},
		{Key: NavShops, Label: T(loc, "nav.shops"), URL: routepath.Shops},
		{Key: NavUsers, Label: T(loc, "nav.users"), URL: routepath.Users},
		{Key: NavOrders, Label: T(loc, "nav.orders"), URL: routepath.Orders},
	}
}

// Page wraps body in the signed-in console chrome.
func Page(page PageContext, title string, activeNav string, body templ.Component) templ.Component {
	return sharedtemplates.AppChromeLayout(sharedtemplates.AppChromeLayoutOptions{
		Title:       title,
		Lang:        page.Lang,
		AppName:     T(page.Loc, "core.app_name"),
		Loc:         page.Loc,
		Breadcrumbs: sharedtemplates.BuildPathBreadcrumbs(page.CurrentPath, page.Loc),
		ChromeOptions: sharedtemplates.ChromeLayoutOptions{
			UserName:   page.AdminName,
			SignOutURL: routepath.Logout,
			Nav:        NavItems(page.Loc),
			ActiveNav:  activeNav,
			Languages:  page.Languages,
		},
		Body: body,
	})
}

// LoginView is the state of the sign-in form.
type LoginView struct {
	Email string
	// Error is shown above the form after a failed attempt.
	Error string
	// Next is the path to return to after sign-in.
	Next string
}

// LoginPage renders the standalone sign-in page.
func LoginPage(page PageContext, view LoginView) templ.Component {
	return sharedtemplates.AppChromeLayout(sharedtemplates.AppChromeLayoutOptions{
		Title:   T(page.Loc, "login.title"),
		Lang:    page.Lang,
		AppName: T(page.Loc, "core.app_name"),
		Loc:     page.Loc,
		ChromeOptions: sharedtemplates.ChromeLayoutOptions{
			Languages: page.Languages,
		},
		Body: LoginForm(page, view),
	})
}

// LoginForm renders the sign-in card. It is also the htmx response to a
// failed submit.
func LoginForm(page PageContext, view LoginView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := sharedtemplates.NewMarkup(w)
		m.Raw(`<div id="login-card" class="card bg-base-100 shadow-md max-w-md mx-auto"><div class="card-body">`)
		m.Raw(`<p class="text-base-content/70">`).Text(T(page.Loc, "login.subtitle")).Raw(`</p>`)
		if view.Error != "" {
			m.Raw(`<div class="alert alert-error" role="alert">`).Text(view.Error).Raw(`</div>`)
		}
		m.Raw(`<form method="post" class="space-y-4"`).
			Attr("action", routepath.Login).
			Attr("hx-post", routepath.Login).
			Raw(` hx-target="#login-card" hx-swap="outerHTML" hx-disabled-elt="find button">`)
		m.Raw(`<input type="hidden" name="next"`).Attr("value", view.Next).Raw(`>`)
		m.Raw(`<label class="form-control w-full"><span class="label-text">`).Text(T(page.Loc, "login.email")).Raw(`</span>`)
		m.Raw(`<input class="input input-bordered w-full" type="email" name="email" autocomplete="username" required`).Attr("value", view.Email).Raw(`></label>`)
		m.Raw(`<label class="form-control w-full"><span class="label-text">`).Text(T(page.Loc, "login.password")).Raw(`</span>`)
		m.Raw(`<input class="input input-bordered w-full" type="password" name="password" autocomplete="current-password" required></label>`)
		m.Raw(`<button type="submit" class="btn btn-primary w-full">`).Text(T(page.Loc, "login.submit")).Raw(`</button>`)
		m.Raw(`</form></div></div>`)
		return m.Err()
	})
}

// SessionLoadingPage is shown while the stored token is still being checked.
// It reloads retryURL after a second.
func SessionLoadingPage(page PageContext, retryURL string) templ.Component {
	return sharedtemplates.AppChromeLayout(sharedtemplates.AppChromeLayoutOptions{
		Lang:    page.Lang,
		AppName: T(page.Loc, "core.app_name"),
		Loc:     page.Loc,
		Head: templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			return sharedtemplates.NewMarkup(w).Raw(`<meta http-equiv="refresh"`).Attr("content", "1;url="+retryURL).Raw(`>`).Err()
		}),
		Body: templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			m := sharedtemplates.NewMarkup(w)
			m.Raw(`<div class="text-center" role="status">`)
			m.Render(ctx, sharedtemplates.Loading())
			m.Raw(`<p class="text-base-content/70">`).Text(T(page.Loc, "session.loading")).Raw(`</p></div>`)
			return m.Err()
		}),
	})
}

// NotFoundPage renders the console 404.
func NotFoundPage(page PageContext) templ.Component {
	return Page(page, T(page.Loc, "core.not_found"), "", templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return sharedtemplates.NewMarkup(w).
			Raw(`<p><a class="link"`).Attr("href", routepath.Root).Raw(`>`).Text(T(page.Loc, "nav.overview")).Raw(`</a></p>`).
			Err()
	}))
}
