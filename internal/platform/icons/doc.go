// Package icons is the registry of vector icons shared by the query UI.
//
// Every icon is immutable data: a stable identifier, a view box, and an
// ordered list of path descriptors. The registry is built once when the
// package initializes and is read-only afterwards, so lookups and renders are
// safe from any number of goroutines without locking.
//
// Rendering is renderer-neutral: Render returns an Element value that carries
// the resolved geometry and presentation, and that also satisfies
// templ.Component so HTML surfaces can embed it directly. Icons inherit the
// ambient foreground color unless a color is supplied, and they are either
// decorative (hidden from assistive technology) or labeled.
package icons
