package iconhub

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	apperrors "github.com/louisbranch/iconhub/internal/platform/errors"
	"github.com/louisbranch/iconhub/internal/platform/icons"
	"github.com/louisbranch/iconhub/internal/services/iconhub/i18n"
	"github.com/louisbranch/iconhub/internal/services/iconhub/templates"
	sharedhtmx "github.com/louisbranch/iconhub/internal/services/shared/htmx"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	svgContentType = "image/svg+xml; charset=utf-8"
	// immutableCache applies to registry assets: published geometry never changes.
	immutableCache = "public, max-age=31536000, immutable"
	// previewSize is the gallery preview edge in pixels.
	previewSize = 24
)

// HandleIconsPage renders the gallery page, or its main content for HTMX.
func (h *Handler) HandleIconsPage(w http.ResponseWriter, r *http.Request) {
	loc, tag := h.localizer(w, r)
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	rows := h.buildIconRows(r, loc, query)

	page := h.pageContext(tag, loc, r)
	sharedhtmx.RenderPage(
		w,
		r,
		templates.GalleryPage(rows, query, "", loc),
		templates.GalleryFullPage(page, rows, query, ""),
		sharedhtmx.TitleTag(templates.T(loc, "gallery.title")+" | "+templates.T(loc, "core.app_name")),
	)
}

// HandleIconsTable renders the filtered gallery table fragment.
func (h *Handler) HandleIconsTable(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	rows := h.buildIconRows(r, loc, query)
	w.Header().Add("Vary", sharedhtmx.RequestHeaderKey)
	h.renderComponent(w, r, templates.IconsTable(rows, "", loc))
}

// HandleIconSVG renders one icon as a standalone SVG document.
func (h *Handler) HandleIconSVG(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := h.registry.ParseID(r.PathValue("id"))
	h.metrics.RecordLookup(ctx, surfaceHTTP, err)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	opts, err := svgOptions(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	el, err := h.registry.Render(id, opts)
	h.metrics.RecordRender(ctx, surfaceHTTP, id.String(), err)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeSVG(w, r, el.String(), immutableCache)
}

// HandleIconsSprite serves every icon as one symbol sheet.
func (h *Handler) HandleIconsSprite(w http.ResponseWriter, r *http.Request) {
	writeSVGWithETag(w, r, h.sprite, h.spriteETag, immutableCache)
}

// HandleHealthz reports whether the process and its store are reachable.
func (h *Handler) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health.Ping(r.Context()); err != nil {
			h.writeError(w, r, apperrors.WithMetadata(
				apperrors.CodeUnavailable,
				"binding store is unavailable: "+err.Error(),
				map[string]string{"Resource": "Binding store"},
			))
			return
		}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte("ok\n"))
}

func (h *Handler) buildIconRows(r *http.Request, loc *message.Printer, query string) []templates.IconRow {
	needle := strings.ToLower(query)
	definitions := h.registry.Definitions()
	rows := make([]templates.IconRow, 0, len(definitions))
	for _, def := range definitions {
		label := iconLabel(loc, def)
		if needle != "" && !matchesQuery(needle, def, label) {
			continue
		}
		row := templates.IconRow{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Label:       label,
			ViewBox:     def.ViewBox.String(),
		}
		el, err := h.registry.Render(def.ID, icons.Options{Size: icons.Square(previewSize), Decorative: true})
		h.metrics.RecordRender(r.Context(), surfaceHTTP, def.ID.String(), err)
		if err == nil {
			row.Preview = el
		}
		rows = append(rows, row)
	}
	return rows
}

// iconLabel returns the localized accessible label, falling back to the
// catalog name when the locale has no entry.
func iconLabel(loc *message.Printer, def icons.Definition) string {
	key := "icons.label." + def.ID.String()
	if loc != nil {
		if label := loc.Sprintf(key); label != "" && label != key {
			return label
		}
	}
	return def.Name
}

func matchesQuery(needle string, def icons.Definition, label string) bool {
	for _, candidate := range []string{def.ID.String(), def.Name, label} {
		if strings.Contains(strings.ToLower(candidate), needle) {
			return true
		}
	}
	return false
}

// svgOptions reads presentation options from the query string. The icon is
// decorative unless a label is supplied.
func svgOptions(r *http.Request) (icons.Options, error) {
	query := r.URL.Query()
	var opts icons.Options

	if raw := query.Get("size"); raw != "" {
		n, err := parseDimension("size", raw)
		if err != nil {
			return icons.Options{}, err
		}
		opts.Size = icons.Square(n)
	}
	if raw := query.Get("width"); raw != "" {
		n, err := parseDimension("width", raw)
		if err != nil {
			return icons.Options{}, err
		}
		opts.Size.Width = n
	}
	if raw := query.Get("height"); raw != "" {
		n, err := parseDimension("height", raw)
		if err != nil {
			return icons.Options{}, err
		}
		opts.Size.Height = n
	}

	color := strings.TrimSpace(query.Get("color"))
	if err := icons.ValidateColor(color); err != nil {
		return icons.Options{}, err
	}
	opts.Color = color

	opts.Label = strings.TrimSpace(query.Get("label"))
	opts.Decorative = opts.Label == ""
	return opts, nil
}

func parseDimension(field, raw string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0, invalidArgument(field, field+" must be a positive number")
	}
	return n, nil
}

func invalidArgument(field, msg string) error {
	return apperrors.WithMetadata(apperrors.CodeInvalidArgument, msg, map[string]string{"Field": field})
}

func writeSVG(w http.ResponseWriter, r *http.Request, markup string, cacheControl string) {
	writeSVGWithETag(w, r, markup, etagFor(markup), cacheControl)
}

func writeSVGWithETag(w http.ResponseWriter, r *http.Request, markup string, etag string, cacheControl string) {
	header := w.Header()
	header.Set("Content-Type", svgContentType)
	header.Set("Cache-Control", cacheControl)
	header.Set("ETag", etag)
	header.Set("X-Content-Type-Options", "nosniff")
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(markup))
}

// etagFor returns a strong entity tag for body.
func etagFor(body string) string {
	sum := sha256.Sum256([]byte(body))
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

func etagMatches(ifNoneMatch string, etag string) bool {
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, language.Tag) {
	tag, loc := i18n.Resolve(w, r)
	return loc, tag
}

func (h *Handler) pageContext(tag language.Tag, loc *message.Printer, r *http.Request) templates.PageContext {
	return templates.PageContext{
		Lang: tag.String(),
		Loc:  loc,
		Languages: i18n.LanguageOptions(tag, r.URL.Path, r.URL.RawQuery, func(option language.Tag) string {
			return templates.T(loc, i18n.LanguageKey(option))
		}),
	}
}

// renderComponent writes component as an HTML response.
func (h *Handler) renderComponent(w http.ResponseWriter, r *http.Request, component templ.Component) {
	templ.Handler(component).ServeHTTP(w, r)
}
