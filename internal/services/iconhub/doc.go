// Package iconhub serves the icon registry over HTTP: a localized gallery,
// single-icon and sprite SVG endpoints, and a JSON API for slot bindings.
//
// Routes are registered per module (module/icons, module/bindings) onto one
// ServeMux. Handler wraps the mux with tracing, request metrics, and
// trailing-slash canonicalization.
package iconhub
