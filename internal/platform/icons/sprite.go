package icons

import "strings"

const symbolPrefix = "icon-"

// SymbolID returns the sprite symbol ID for an icon.
func SymbolID(id ID) string {
	return symbolPrefix + string(id)
}

// Sprite returns a hidden SVG document holding one <symbol> per icon, in
// registry order. Symbols leave paint to the referencing <use> element.
func (r *Registry) Sprite() string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="` + svgNamespace + `" style="display:none">`)
	for _, id := range r.ids {
		def := r.defs[id]
		b.WriteString("<symbol")
		writeAttr(&b, "id", SymbolID(def.ID))
		writeAttr(&b, "viewBox", def.ViewBox.String())
		b.WriteString(">")
		writePaths(&b, def.Paths, InheritColor)
		b.WriteString("</symbol>")
	}
	b.WriteString("</svg>")
	return b.String()
}
