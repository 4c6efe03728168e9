package icons

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ID is the stable identifier of one icon. Published identifiers are never
// renamed because consumers persist and hardcode them.
type ID string

// String returns the raw identifier.
func (id ID) String() string {
	return string(id)
}

// idPattern accepts lowercase kebab-case tokens such as "arrow-drop-down".
var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ViewBox holds min-x, min-y, width, and height of an icon's coordinate space.
type ViewBox [4]float64

// MinX returns the left edge of the coordinate space.
func (v ViewBox) MinX() float64 { return v[0] }

// MinY returns the top edge of the coordinate space.
func (v ViewBox) MinY() float64 { return v[1] }

// Width returns the horizontal extent of the coordinate space.
func (v ViewBox) Width() float64 { return v[2] }

// Height returns the vertical extent of the coordinate space.
func (v ViewBox) Height() float64 { return v[3] }

// String formats the view box as an SVG viewBox attribute value.
func (v ViewBox) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = formatNumber(n)
	}
	return strings.Join(parts, " ")
}

func (v ViewBox) validate() string {
	for _, n := range v {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return "view box must be finite"
		}
	}
	if v.Width() <= 0 || v.Height() <= 0 {
		return "view box must have a positive width and height"
	}
	return ""
}

// Paint selects how a path is painted with the icon color.
type Paint uint8

const (
	// PaintFill fills the path with the icon color.
	PaintFill Paint = iota
	// PaintStroke outlines the path with the icon color and leaves it unfilled.
	PaintStroke
)

// String returns the paint mode name.
func (p Paint) String() string {
	switch p {
	case PaintFill:
		return "fill"
	case PaintStroke:
		return "stroke"
	default:
		return "paint(" + strconv.Itoa(int(p)) + ")"
	}
}

// Path is one geometry descriptor, rendered in catalog order.
type Path struct {
	// D is the SVG path data.
	D string
	// Paint defaults to PaintFill.
	Paint Paint
	// FillRule optionally overrides the fill rule ("evenodd" or "nonzero").
	FillRule string
}

// Definition describes a registered icon.
type Definition struct {
	ID          ID
	Name        string
	Description string
	ViewBox     ViewBox
	Paths       []Path
}

func (d Definition) clone() Definition {
	paths := make([]Path, len(d.Paths))
	copy(paths, d.Paths)
	d.Paths = paths
	return d
}

func (d Definition) validate() error {
	if !idPattern.MatchString(string(d.ID)) {
		return invalidDefinitionError(d.ID, "id must be a lowercase kebab-case token")
	}
	if reason := d.ViewBox.validate(); reason != "" {
		return invalidDefinitionError(d.ID, reason)
	}
	if len(d.Paths) == 0 {
		return invalidDefinitionError(d.ID, "at least one path is required")
	}
	for _, p := range d.Paths {
		if strings.TrimSpace(p.D) == "" {
			return invalidDefinitionError(d.ID, "path data cannot be blank")
		}
		if p.Paint != PaintFill && p.Paint != PaintStroke {
			return invalidDefinitionError(d.ID, "unsupported paint "+p.Paint.String())
		}
		switch p.FillRule {
		case "", "evenodd", "nonzero":
		default:
			return invalidDefinitionError(d.ID, "unsupported fill rule "+strconv.Quote(p.FillRule))
		}
	}
	return nil
}

// Registry maps icon identifiers to their definitions. A Registry is
// immutable once constructed.
type Registry struct {
	ids  []ID
	defs map[ID]Definition
}

// New builds a registry from defs, keeping their order as the listing order.
func New(defs ...Definition) (*Registry, error) {
	r := &Registry{
		ids:  make([]ID, 0, len(defs)),
		defs: make(map[ID]Definition, len(defs)),
	}
	for _, def := range defs {
		if err := def.validate(); err != nil {
			return nil, err
		}
		if _, exists := r.defs[def.ID]; exists {
			return nil, duplicateIDError(def.ID)
		}
		r.ids = append(r.ids, def.ID)
		r.defs[def.ID] = def.clone()
	}
	return r, nil
}

// MustNew is like New but panics on invalid definitions. It is meant for
// compiled-in icon sets.
func MustNew(defs ...Definition) *Registry {
	r, err := New(defs...)
	if err != nil {
		panic(err)
	}
	return r
}

// IDs returns every registered identifier in insertion order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, len(r.ids))
	copy(ids, r.ids)
	return ids
}

// Len returns the number of registered icons.
func (r *Registry) Len() int {
	return len(r.ids)
}

// Has reports whether id is registered.
func (r *Registry) Has(id ID) bool {
	_, ok := r.defs[id]
	return ok
}

// Get returns the definition for id.
func (r *Registry) Get(id ID) (Definition, error) {
	def, ok := r.defs[id]
	if !ok {
		return Definition{}, unknownIconError(id)
	}
	return def.clone(), nil
}

// ParseID normalizes an identifier that arrived from configuration or a
// request and confirms it is registered.
func (r *Registry) ParseID(raw string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(raw)))
	if !r.Has(id) {
		return "", unknownIconError(id)
	}
	return id, nil
}

// Definitions returns a copy of every definition in insertion order.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.ids))
	for _, id := range r.ids {
		defs = append(defs, r.defs[id].clone())
	}
	return defs
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
