package templates

// HTMXScriptURL is the HTMX bundle loaded by full pages.
const HTMXScriptURL = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
