package templates

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/iconhub/internal/platform/icons"
)

// IconTableID is the element swapped by gallery searches.
const IconTableID = "icon-table"

// IconRow holds formatted icon catalog data for display.
type IconRow struct {
	ID          icons.ID
	Name        string
	Description string
	// Label is the localized accessible label for the icon.
	Label   string
	ViewBox string
	Preview templ.Component
}

var tableColumns = []string{
	"gallery.column.preview",
	"gallery.column.id",
	"gallery.column.name",
	"gallery.column.label",
	"gallery.column.view_box",
}

// GalleryFullPage renders the gallery inside the shared layout.
func GalleryFullPage(page PageContext, rows []IconRow, query string, message string) templ.Component {
	return Layout(page, T(page.Loc, "gallery.title")+" | "+T(page.Loc, "core.app_name"), GalleryPage(rows, query, message, page.Loc))
}

func emptyMessage(message string, loc Localizer) string {
	if message != "" {
		return message
	}
	return T(loc, "gallery.empty")
}
