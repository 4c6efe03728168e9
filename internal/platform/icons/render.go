package icons

import (
	"context"
	"io"
	"math"
	"strings"

	"github.com/a-h/templ"
	apperrors "github.com/louisbranch/iconhub/internal/platform/errors"
)

const (
	svgNamespace = "http://www.w3.org/2000/svg"
	// InheritColor paints icons with the ambient foreground color.
	InheritColor = "currentColor"
	// MaxColorLength bounds a color accepted by ValidateColor.
	MaxColorLength = 64
)

// Size is the rendered width and height. A zero, negative, or non-finite
// dimension is omitted so the icon sizes from its layout context.
type Size struct {
	Width  float64
	Height float64
}

// Square returns a Size with equal width and height.
func Square(n float64) Size {
	return Size{Width: n, Height: n}
}

// Options controls how an icon is presented.
type Options struct {
	Size Size
	// Color is any SVG paint value; empty inherits the foreground color.
	Color string
	// Decorative hides the icon from assistive technology. When false, Label
	// is required.
	Decorative bool
	Label      string
	Class      string
	// Symbol references the icon's sprite symbol instead of inlining paths.
	Symbol bool
}

// Element is a resolved, renderable icon. It carries no references into the
// registry, so equal inputs always produce equal Elements.
type Element struct {
	ID         ID
	ViewBox    ViewBox
	Paths      []Path
	Width      float64
	Height     float64
	Color      string
	Label      string
	Decorative bool
	Class      string
	Symbol     bool
}

var _ templ.Component = Element{}

// Render resolves id with opts into an Element. It fails with ErrUnknownIcon
// or ErrMissingLabel before producing any output.
func (r *Registry) Render(id ID, opts Options) (Element, error) {
	def, err := r.Get(id)
	if err != nil {
		return Element{}, err
	}

	label := strings.TrimSpace(opts.Label)
	if opts.Decorative {
		label = ""
	} else if label == "" {
		return Element{}, missingLabelError(id)
	}

	color := strings.TrimSpace(opts.Color)
	if color == "" {
		color = InheritColor
	}

	return Element{
		ID:         def.ID,
		ViewBox:    def.ViewBox,
		Paths:      def.Paths,
		Width:      dimension(opts.Size.Width),
		Height:     dimension(opts.Size.Height),
		Color:      color,
		Label:      label,
		Decorative: opts.Decorative,
		Class:      strings.TrimSpace(opts.Class),
		Symbol:     opts.Symbol,
	}, nil
}

// AccessibleName returns the name exposed to assistive technology, or "" for
// decorative icons.
func (e Element) AccessibleName() string {
	if e.Decorative {
		return ""
	}
	return e.Label
}

// Render writes the element as inline SVG markup.
func (e Element) Render(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := io.WriteString(w, e.String())
	return err
}

// String returns the element as inline SVG markup.
func (e Element) String() string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="` + svgNamespace + `"`)
	writeAttr(&b, "viewBox", e.ViewBox.String())
	if e.Width > 0 {
		writeAttr(&b, "width", formatNumber(e.Width))
	}
	if e.Height > 0 {
		writeAttr(&b, "height", formatNumber(e.Height))
	}
	writeAttr(&b, "fill", e.Color)
	if e.Class != "" {
		writeAttr(&b, "class", e.Class)
	}
	if e.Decorative {
		writeAttr(&b, "aria-hidden", "true")
		writeAttr(&b, "focusable", "false")
	} else {
		writeAttr(&b, "role", "img")
		writeAttr(&b, "aria-label", e.Label)
	}
	b.WriteString(">")
	if !e.Decorative {
		b.WriteString("<title>" + templ.EscapeString(e.Label) + "</title>")
	}
	if e.Symbol {
		b.WriteString(`<use href="#` + templ.EscapeString(SymbolID(e.ID)) + `"></use>`)
	} else {
		writePaths(&b, e.Paths, e.Color)
	}
	b.WriteString("</svg>")
	return b.String()
}

// writePaths emits path elements. Stroke paths carry their own paint while
// fill paths inherit the fill set on an ancestor.
func writePaths(b *strings.Builder, paths []Path, color string) {
	for _, p := range paths {
		b.WriteString("<path")
		writeAttr(b, "d", p.D)
		if p.Paint == PaintStroke {
			writeAttr(b, "fill", "none")
			writeAttr(b, "stroke", color)
		}
		if p.FillRule != "" {
			writeAttr(b, "fill-rule", p.FillRule)
		}
		b.WriteString("></path>")
	}
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func dimension(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0
	}
	return n
}

// ValidateColor checks a caller-supplied paint value before it reaches
// Options.Color. Empty is valid and inherits the foreground color. Values
// longer than MaxColorLength or holding markup characters fail with
// INVALID_ARGUMENT. Color syntax itself is not parsed.
func ValidateColor(color string) error {
	if len(color) > MaxColorLength || strings.ContainsAny(color, "<>\"'&") {
		return apperrors.WithMetadata(
			apperrors.CodeInvalidArgument,
			"color is not a valid paint value",
			map[string]string{"Field": "color"},
		)
	}
	return nil
}
