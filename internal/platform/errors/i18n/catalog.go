// Package i18n renders localized error messages from the "errors" namespace
// of the locale catalogs.
package i18n

import (
	"strings"
	"sync"
	"text/template"

	i18ncatalog "github.com/louisbranch/iconhub/internal/platform/i18n/catalog"
)

const errorsNamespace = "errors"

// Code is a machine-readable error code. It mirrors errors.Code, which
// cannot be imported here.
type Code = string

// Catalog holds the error templates of one locale, parsed at construction.
// Templates that fail to parse are kept in raw and rendered verbatim.
type Catalog struct {
	locale    string
	raw       map[Code]string
	templates map[Code]*template.Template
}

// catalogs caches resolved and registered catalogs by locale.
var catalogs sync.Map

// GetCatalog returns the catalog for locale, falling back to the base locale
// when the locale has no error templates.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = i18ncatalog.BaseLocale
	}
	if c, ok := catalogs.Load(requested); ok {
		return c.(*Catalog)
	}

	resolved, messages := i18ncatalog.Default().NamespaceMessagesWithFallback(requested, errorsNamespace)
	if c, ok := catalogs.Load(resolved); ok {
		return c.(*Catalog)
	}
	c, _ := catalogs.LoadOrStore(resolved, NewCatalog(resolved, messages))
	return c.(*Catalog)
}

// RegisterCatalog installs cat for locale, replacing any cached catalog.
func RegisterCatalog(locale string, cat *Catalog) {
	catalogs.Store(locale, cat)
}

// NewCatalog parses messages into a catalog for locale.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	c := &Catalog{
		locale:    locale,
		raw:       make(map[Code]string),
		templates: make(map[Code]*template.Template, len(messages)),
	}
	for code, text := range messages {
		t, err := template.New(code).Parse(text)
		if err != nil {
			c.raw[code] = text
			continue
		}
		c.templates[code] = t
	}
	return c
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Has reports whether the catalog defines a template for code.
func (c *Catalog) Has(code Code) bool {
	if _, ok := c.templates[code]; ok {
		return true
	}
	_, ok := c.raw[code]
	return ok
}

// Format renders the template for code with metadata. Unknown codes render
// as the code itself; broken templates render as their source text.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	t, ok := c.templates[code]
	if !ok {
		if text, broken := c.raw[code]; broken {
			return text
		}
		return code
	}
	if metadata == nil {
		metadata = map[string]string{}
	}
	var b strings.Builder
	if err := t.Execute(&b, metadata); err != nil {
		return code
	}
	return b.String()
}
