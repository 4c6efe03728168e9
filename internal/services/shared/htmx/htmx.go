// Package htmx renders pages that serve both full-document navigations and
// HTMX partial swaps from the same handler.
package htmx

import (
	"bytes"
	"html"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

const (
	// RequestHeaderKey marks requests issued by HTMX.
	RequestHeaderKey = "HX-Request"
	// BoostedHeaderKey marks HTMX requests from hx-boost links, which swap the
	// whole body and therefore need the full document.
	BoostedHeaderKey = "HX-Boosted"
)

// captureWriter buffers a component render so the body can be trimmed
// before it reaches the client.
type captureWriter struct {
	header      http.Header
	statusCode  int
	body        bytes.Buffer
	headerWrote bool
}

func newCaptureWriter() *captureWriter {
	return &captureWriter{
		header:     make(http.Header),
		statusCode: http.StatusOK,
	}
}

func (w *captureWriter) Header() http.Header {
	return w.header
}

func (w *captureWriter) WriteHeader(status int) {
	if w.headerWrote {
		return
	}
	w.headerWrote = true
	w.statusCode = status
}

func (w *captureWriter) Write(body []byte) (int, error) {
	return w.body.Write(body)
}

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeaderKey), "true")
}

// IsBoosted reports whether the request came from an hx-boost navigation.
func IsBoosted(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(BoostedHeaderKey), "true")
}

// TitleTag formats an escaped `<title>` element.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// RenderPage renders a page for normal or HTMX requests.
//
// Partial HTMX requests receive the <main> content of full (or fragment when
// full is nil) prefixed with titleTag unless the body already has a title.
// Everything else receives full, falling back to fragment.
func RenderPage(w http.ResponseWriter, r *http.Request, fragment templ.Component, full templ.Component, titleTag string) {
	w.Header().Add("Vary", RequestHeaderKey)

	if !IsHTMXRequest(r) || IsBoosted(r) {
		if full == nil {
			full = fragment
		}
		if full == nil {
			return
		}
		templ.Handler(full).ServeHTTP(w, r)
		return
	}

	target := fragment
	fromFull := full != nil
	if fromFull {
		target = full
	}
	if target == nil {
		return
	}

	capture := newCaptureWriter()
	templ.Handler(target).ServeHTTP(capture, r)

	body := capture.body.Bytes()
	if fromFull {
		if mainContent, ok := extractMainContent(body); ok {
			body = mainContent
		}
	}
	body = prependTitle(body, titleTag)

	copyHeaders(w.Header(), capture.Header())
	if capture.statusCode != http.StatusOK {
		w.WriteHeader(capture.statusCode)
	}
	_, _ = w.Write(body)
}

func prependTitle(body []byte, titleTag string) []byte {
	if strings.TrimSpace(titleTag) == "" {
		return body
	}
	if bytes.Contains(bytes.ToLower(body), []byte("<title")) {
		return body
	}
	return append([]byte(titleTag), body...)
}

// copyHeaders replaces single-valued headers and appends Set-Cookie and Vary.
func copyHeaders(dst, src http.Header) {
	for key, values := range src {
		switch http.CanonicalHeaderKey(key) {
		case "Set-Cookie", "Vary":
			for _, value := range values {
				dst.Add(key, value)
			}
		default:
			for _, value := range values {
				dst.Set(key, value)
			}
		}
	}
}

func extractMainContent(body []byte) ([]byte, bool) {
	start := bytes.Index(body, []byte("<main"))
	if start < 0 {
		return nil, false
	}
	openClose := bytes.IndexByte(body[start:], '>')
	if openClose < 0 {
		return nil, false
	}
	contentStart := start + openClose + 1
	end := bytes.LastIndex(body[contentStart:], []byte("</main>"))
	if end < 0 {
		return nil, false
	}
	return body[contentStart : contentStart+end], true
}
