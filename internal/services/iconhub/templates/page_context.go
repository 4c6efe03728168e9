package templates

import "github.com/louisbranch/iconhub/internal/services/iconhub/i18n"

// PageContext provides shared layout context for gallery pages.
type PageContext struct {
	Lang      string
	Loc       Localizer
	Languages []i18n.LanguageOption
}
