package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const (
	htmxScriptURL  = "https://unpkg.com/htmx.org@2.0.4"
	daisyUIStyle   = "https://cdn.jsdelivr.net/npm/daisyui@4.12.14/dist/full.min.css"
	consoleStyle   = "/static/admin.css"
	toastRegionID  = "toasts"
	dialogRegionID = "dialog"
)

// NavItem is one header tab.
type NavItem struct {
	// Key identifies the tab for ActiveNav.
	Key   string
	Label string
	URL   string
}

// LanguageOption is one entry of the header language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// ChromeLayoutOptions configures the header.
type ChromeLayoutOptions struct {
	// UserName shows the signed-in operator. Empty hides the user menu.
	UserName string
	// SignOutURL is the POST target of the sign-out form.
	SignOutURL string
	Nav        []NavItem
	ActiveNav  string
	Languages  []LanguageOption
}

// AppChromeLayoutOptions configures a full console page.
type AppChromeLayoutOptions struct {
	Title       string
	Lang        string
	AppName     string
	Loc         Localizer
	Breadcrumbs []BreadcrumbItem
	// HeadingAction renders on the same row as the page heading.
	HeadingAction templ.Component
	ChromeOptions ChromeLayoutOptions
	// Head adds tags to the document head.
	Head templ.Component
	Body templ.Component
}

// ComposePageTitle appends the app name to title unless it is already there.
func ComposePageTitle(title string, appName string) string {
	title = strings.TrimSpace(title)
	appName = strings.TrimSpace(appName)
	if appName == "" {
		return title
	}
	if title == "" || title == appName {
		return appName
	}
	for _, separator := range []string{" | ", " - "} {
		if base, ok := strings.CutSuffix(title, separator+appName); ok {
			return strings.TrimSpace(base) + " | " + appName
		}
	}
	return title + " | " + appName
}

// pageHeadingFromTitle strips the app-name suffix from a composed title.
func pageHeadingFromTitle(title string, appName string) string {
	title = strings.TrimSpace(title)
	for _, separator := range []string{" | ", " - "} {
		if base, ok := strings.CutSuffix(title, separator+appName); ok {
			return strings.TrimSpace(base)
		}
	}
	return title
}

// AppChromeLayout renders the HTML document with header, main and footer.
func AppChromeLayout(opts AppChromeLayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := strings.TrimSpace(opts.Lang)
		if lang == "" {
			lang = "en"
		}
		m := NewMarkup(w)
		m.Raw(`<!DOCTYPE html><html`).Attr("lang", lang).Raw(`>`)
		m.Raw(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.Raw(`<title>`).Text(ComposePageTitle(opts.Title, opts.AppName)).Raw(`</title>`)
		m.Raw(`<link rel="stylesheet"`).Attr("href", daisyUIStyle).Raw(`>`)
		m.Raw(`<link rel="stylesheet"`).Attr("href", consoleStyle).Raw(`>`)
		m.Raw(`<script`).Attr("src", htmxScriptURL).Raw(` defer></script>`)
		m.Render(ctx, opts.Head)
		m.Raw(`</head><body class="min-h-screen flex flex-col bg-base-200">`)

		writeHeader(m, opts)

		m.Raw(`<main id="main"`).Attr("class", chromeMainClassFromStyle("", "")).Raw(`>`)
		writeBreadcrumbs(m, opts.Breadcrumbs)
		if heading := pageHeadingFromTitle(opts.Title, opts.AppName); heading != "" {
			m.Raw(`<div class="mb-5 flex items-center justify-between gap-3"><h1 class="mb-0">`).Text(heading).Raw(`</h1>`)
			m.Render(ctx, opts.HeadingAction)
			m.Raw(`</div>`)
		}
		m.Render(ctx, opts.Body)
		m.Raw(`</main>`)

		m.Raw(`<div`).Attr("id", dialogRegionID).Raw(`></div>`)
		m.Raw(`<div class="toast toast-end"`).Attr("id", toastRegionID).Raw(` aria-live="polite"></div>`)
		m.Raw(`<footer class="footer footer-center p-4 text-base-content/60"><p>`).Text(T(opts.Loc, "core.footer")).Raw(`</p></footer>`)
		m.Raw(`</body></html>`)
		return m.Err()
	})
}

func writeHeader(m *Markup, opts AppChromeLayoutOptions) {
	chrome := opts.ChromeOptions
	m.Raw(`<header class="navbar bg-base-100 shadow-sm px-4">`)
	m.Raw(`<div class="flex-1 gap-4"><a class="text-lg font-semibold" href="/">`).Text(opts.AppName).Raw(`</a>`)
	if len(chrome.Nav) > 0 {
		m.Raw(`<nav role="tablist" class="tabs tabs-boxed">`)
		for _, item := range chrome.Nav {
			class := "tab"
			if item.Key == chrome.ActiveNav {
				class = "tab tab-active"
			}
			m.Raw(`<a role="tab"`).Attr("class", class).URLAttr("href", item.URL).
				AttrIf(item.Key == chrome.ActiveNav, "aria-selected", "true").
				Raw(` data-nav-item="true">`).Text(item.Label).Raw(`</a>`)
		}
		m.Raw(`</nav>`)
	}
	m.Raw(`</div><div class="flex-none flex items-center gap-2">`)
	if len(chrome.Languages) > 0 {
		m.Raw(`<div class="join" role="group"`).Attr("aria-label", T(opts.Loc, "core.language")).Raw(`>`)
		for _, option := range chrome.Languages {
			class := "btn btn-ghost btn-xs join-item"
			if option.Active {
				class = "btn btn-xs join-item btn-active"
			}
			m.Raw(`<a`).Attr("class", class).URLAttr("href", option.URL).Attr("hreflang", option.Tag).Raw(`>`).Text(option.Label).Raw(`</a>`)
		}
		m.Raw(`</div>`)
	}
	if strings.TrimSpace(chrome.UserName) != "" {
		m.Raw(`<span class="text-sm">`).Text(T(opts.Loc, "core.signed_in_as", chrome.UserName)).Raw(`</span>`)
		signOut := chrome.SignOutURL
		if signOut == "" {
			signOut = "/logout"
		}
		m.Raw(`<form method="POST"`).URLAttr("action", signOut).Raw(`><button type="submit" class="btn btn-outline btn-sm">`).
			Text(T(opts.Loc, "core.sign_out")).Raw(`</button></form>`)
	}
	m.Raw(`</div></header>`)
}

func writeBreadcrumbs(m *Markup, breadcrumbs []BreadcrumbItem) {
	if len(breadcrumbs) == 0 {
		return
	}
	m.Raw(`<div class="breadcrumbs text-sm mb-2"><ul>`)
	for _, crumb := range breadcrumbs {
		if crumb.URL == "" {
			m.Raw(`<li>`).Text(crumb.Label).Raw(`</li>`)
			continue
		}
		m.Raw(`<li><a`).URLAttr("href", crumb.URL).Raw(`>`).Text(crumb.Label).Raw(`</a></li>`)
	}
	m.Raw(`</ul></div>`)
}

// chromeMainClassFromStyle returns the main element class. width overrides the
// default max width and extra is appended.
func chromeMainClassFromStyle(width string, extra string) string {
	width = strings.TrimSpace(width)
	if width == "" {
		width = "max-w-7xl"
	}
	class := "flex-1 w-full p-6 " + width
	if extra = strings.TrimSpace(extra); extra != "" {
		class += " " + extra
	}
	return class
}
