package i18n

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/farmhouse.admin/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the operator's language preference.
	LangCookieName = "fh_admin_lang"
)

var supportedTags = []language.Tag{
	language.English,
	language.MustParse("pt-BR"),
}

var tagMatcher = language.NewMatcher(supportedTags)
var supportedTagSet = make(map[string]language.Tag, len(supportedTags))

// messages forces catalog registration before any printer is built.
var messages = catalog.Default()

func init() {
	for _, tag := range supportedTags {
		supportedTagSet[tag.String()] = tag
	}
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	Active bool
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	if messages == nil {
		return message.NewPrinter(Default())
	}
	return message.NewPrinter(tag)
}

// ResolveTag determines the best language tag for the request.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}

	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, ok := parseTag(langValue); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := parseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			_, index, confidence := tagMatcher.Match(tags...)
			if confidence != language.No {
				return supportedTags[index], false
			}
		}
	}

	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// LanguageOptions lists the supported languages with labels from loc and the
// active one marked.
func LanguageOptions(activeLang string, loc *message.Printer) []LanguageOption {
	active := NormalizeTag(activeLang)
	options := make([]LanguageOption, 0, len(supportedTags))
	for _, tag := range supportedTags {
		label := tag.String()
		if loc != nil {
			if resolved := strings.TrimSpace(loc.Sprintf(LanguageKeyLabel(tag))); resolved != "" {
				label = resolved
			}
		}
		options = append(options, LanguageOption{Tag: tag.String(), Label: label, Active: tag == active})
	}
	return options
}

// LanguageKeyLabel returns the catalog key naming tag.
func LanguageKeyLabel(tag language.Tag) string {
	base, _ := tag.Base()
	switch base.String() {
	case "pt":
		return "core.lang_pt_br"
	case "en":
		return "core.lang_en"
	default:
		return tag.String()
	}
}

// LanguageURL returns path?rawQuery with the language param replaced.
func LanguageURL(path string, rawQuery string, tag string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

// NormalizeTag coerces unknown tags to the default supported language.
func NormalizeTag(value string) language.Tag {
	if tag, ok := parseTag(value); ok {
		return tag
	}
	return Default()
}

func parseTag(value string) (language.Tag, bool) {
	parsed, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return language.Tag{}, false
	}
	if tag, ok := supportedTagSet[parsed.String()]; ok {
		return tag, true
	}
	if base, confidence := parsed.Base(); confidence != language.No && base.String() == "en" {
		return language.English, true
	}
	return language.Tag{}, false
}
