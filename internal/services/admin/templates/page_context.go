package templates

import (
	sharedtemplates "github.com/louisbranch/farmhouse.admin/internal/services/shared/templates"
)

// PageContext provides shared layout context for console pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	// AdminName is the signed-in operator. Empty on the login page.
	AdminName string
	Languages []sharedtemplates.LanguageOption
}
