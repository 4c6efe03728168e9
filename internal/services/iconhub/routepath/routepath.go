// Package routepath holds the iconhub HTTP route patterns and URL builders.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root    = "/"
	Healthz = "/healthz"
)

const (
	Icons         = "/icons"
	IconsTable    = "/icons/table"
	IconsSprite   = "/icons/sprite.svg"
	IconSVGPrefix = "/icons/svg/"

	// IconSVG is the ServeMux pattern for one icon; {id} is the icon ID.
	IconSVG = IconSVGPrefix + "{id}"
)

const (
	Bindings = "/bindings"

	// Binding is the ServeMux pattern for one slot; {slot} is the binding slot.
	Binding    = Bindings + "/{slot}"
	BindingSVG = Binding + "/svg"
)

// Method-qualified ServeMux patterns.
const (
	GetRoot        = "GET /{$}"
	GetIcons       = "GET " + Icons
	GetIconsTable  = "GET " + IconsTable
	GetIconsSprite = "GET " + IconsSprite
	GetIconSVG     = "GET " + IconSVG
	GetBindings    = "GET " + Bindings
	GetBinding     = "GET " + Binding
	PutBinding     = "PUT " + Binding
	DeleteBinding  = "DELETE " + Binding
	GetBindingSVG  = "GET " + BindingSVG
	GetHealthz     = "GET " + Healthz
)

func IconSVGPath(iconID string) string {
	return IconSVGPrefix + escapeSegment(iconID)
}

func BindingPath(slot string) string {
	return Bindings + "/" + escapeSegment(slot)
}

func BindingSVGPath(slot string) string {
	return BindingPath(slot) + "/svg"
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
