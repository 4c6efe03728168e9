package icons

import (
	"strconv"
	"strings"
)

// CatalogMarkdown renders the registry as a markdown table.
func (r *Registry) CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("Generated by `go generate ./internal/platform/icons`.\n\n")
	builder.WriteString("| Icon ID | Name | Description | View Box | Paths |\n")
	builder.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, id := range r.ids {
		def := r.defs[id]
		builder.WriteString("| `")
		builder.WriteString(string(def.ID))
		builder.WriteString("` | ")
		builder.WriteString(escapeCell(def.Name))
		builder.WriteString(" | ")
		builder.WriteString(escapeCell(def.Description))
		builder.WriteString(" | ")
		builder.WriteString(def.ViewBox.String())
		builder.WriteString(" | ")
		builder.WriteString(strconv.Itoa(len(def.Paths)))
		builder.WriteString(" |\n")
	}
	return builder.String()
}

func escapeCell(value string) string {
	return strings.ReplaceAll(value, "|", `\|`)
}
