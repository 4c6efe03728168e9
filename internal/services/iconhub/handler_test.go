package iconhub

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/iconhub/internal/platform/icons"
	"github.com/louisbranch/iconhub/internal/services/iconhub/binding"
	"github.com/louisbranch/iconhub/internal/services/iconhub/routepath"
	iconsqlite "github.com/louisbranch/iconhub/internal/services/iconhub/storage/sqlite"
	sharedhtmx "github.com/louisbranch/iconhub/internal/services/shared/htmx"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	store, err := iconsqlite.Open(context.Background(), filepath.Join(t.TempDir(), "iconhub.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return NewHandler(HandlerConfig{
		Bindings: binding.NewService(store),
		Health:   store,
	})
}

func serve(t *testing.T, h http.Handler, method, target string, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestRootRedirectsToGallery(t *testing.T) {
	rec := serve(t, NewHandler(HandlerConfig{}), http.MethodGet, "/", "", nil)
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if got := rec.Header().Get("Location"); got != routepath.Icons {
		t.Fatalf("Location = %q, want %q", got, routepath.Icons)
	}
}

func TestTrailingSlashRedirect(t *testing.T) {
	rec := serve(t, NewHandler(HandlerConfig{}), http.MethodGet, "/icons/?q=clo", "", nil)
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMovedPermanently)
	}
	if got := rec.Header().Get("Location"); got != "/icons?q=clo" {
		t.Fatalf("Location = %q", got)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	rec := serve(t, NewHandler(HandlerConfig{}), http.MethodGet, "/nope", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestGalleryPageFullAndFragment(t *testing.T) {
	h := NewHandler(HandlerConfig{})

	full := serve(t, h, http.MethodGet, routepath.Icons, "", nil)
	if full.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", full.Code)
	}
	body := full.Body.String()
	if !strings.Contains(body, "<!doctype html>") && !strings.Contains(body, "<!DOCTYPE html>") {
		t.Fatalf("expected full document, got %q", body)
	}
	for _, id := range icons.IDs() {
		if !strings.Contains(body, `id="icon-`+id.String()+`"`) {
			t.Fatalf("gallery missing row for %s", id)
		}
	}

	partial := serve(t, h, http.MethodGet, routepath.Icons, "", map[string]string{sharedhtmx.RequestHeaderKey: "true"})
	if partial.Code != http.StatusOK {
		t.Fatalf("partial status = %d, want 200", partial.Code)
	}
	if strings.Contains(strings.ToLower(partial.Body.String()), "<!doctype html>") {
		t.Fatalf("partial response should not be a full document")
	}
	if !strings.HasPrefix(partial.Body.String(), "<title>") {
		t.Fatalf("partial response should start with a title, got %q", partial.Body.String())
	}
	if vary := partial.Header().Values("Vary"); len(vary) == 0 {
		t.Fatal("expected Vary header")
	}
}

func TestGalleryPageLocalized(t *testing.T) {
	rec := serve(t, NewHandler(HandlerConfig{}), http.MethodGet, routepath.Icons+"?lang=pt-BR", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Galeria de ícones") {
		t.Fatalf("expected localized heading, got %q", body)
	}
	if !strings.Contains(body, "Fechar") {
		t.Fatal("expected localized close label")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 || cookies[0].Value != "pt-BR" {
		t.Fatalf("expected language cookie, got %v", cookies)
	}
}

func TestIconsTableFilters(t *testing.T) {
	h := NewHandler(HandlerConfig{})

	rec := serve(t, h, http.MethodGet, routepath.IconsTable+"?q=CLOSE", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `id="icon-close"`) {
		t.Fatalf("expected close row, got %q", body)
	}
	if strings.Contains(body, `id="icon-warning"`) {
		t.Fatalf("warning row should be filtered out")
	}

	empty := serve(t, h, http.MethodGet, routepath.IconsTable+"?q=zzzz-no-match", "", nil)
	if !strings.Contains(empty.Body.String(), "No icons match this filter.") {
		t.Fatalf("expected empty message, got %q", empty.Body.String())
	}
}

func TestIconSVG(t *testing.T) {
	h := NewHandler(HandlerConfig{})

	t.Run("decorative by default", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, routepath.IconSVGPath("close"), "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "image/svg+xml") {
			t.Fatalf("Content-Type = %q", got)
		}
		if got := rec.Header().Get("Cache-Control"); !strings.Contains(got, "immutable") {
			t.Fatalf("Cache-Control = %q", got)
		}
		if rec.Header().Get("ETag") == "" {
			t.Fatal("expected ETag")
		}
		if !strings.Contains(rec.Body.String(), `aria-hidden="true"`) {
			t.Fatalf("expected decorative svg, got %q", rec.Body.String())
		}
	})

	t.Run("labeled with size and color", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, routepath.IconSVGPath("close")+"?label=Close+dialog&size=32&color=red", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		body := rec.Body.String()
		for _, want := range []string{`aria-label="Close dialog"`, `width="32"`, `height="32"`, `fill="red"`, "<title>Close dialog</title>"} {
			if !strings.Contains(body, want) {
				t.Fatalf("expected %s in %q", want, body)
			}
		}
	})

	t.Run("width overrides size", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, routepath.IconSVGPath("close")+"?size=16&width=40", "", nil)
		body := rec.Body.String()
		if !strings.Contains(body, `width="40"`) || !strings.Contains(body, `height="16"`) {
			t.Fatalf("unexpected dimensions in %q", body)
		}
	})

	t.Run("not modified", func(t *testing.T) {
		first := serve(t, h, http.MethodGet, routepath.IconSVGPath("warning"), "", nil)
		etag := first.Header().Get("ETag")
		rec := serve(t, h, http.MethodGet, routepath.IconSVGPath("warning"), "", map[string]string{"If-None-Match": etag})
		if rec.Code != http.StatusNotModified {
			t.Fatalf("status = %d, want 304", rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Fatal("expected empty body")
		}
	})

	t.Run("normalizes id", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, routepath.IconSVGPath("CLOSE"), "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})
}

func TestIconSVGErrors(t *testing.T) {
	h := NewHandler(HandlerConfig{})

	tests := []struct {
		name    string
		target  string
		lang    string
		status  int
		code    string
		message string
	}{
		{name: "unknown icon", target: routepath.IconSVGPath("nope"), status: http.StatusNotFound, code: "ICON_UNKNOWN", message: "Unknown icon: nope"},
		{name: "unknown icon localized", target: routepath.IconSVGPath("nope"), lang: "pt-BR", status: http.StatusNotFound, code: "ICON_UNKNOWN", message: "Ícone desconhecido: nope"},
		{name: "bad size", target: routepath.IconSVGPath("close") + "?size=big", status: http.StatusBadRequest, code: "INVALID_ARGUMENT", message: "Invalid value for size"},
		{name: "negative width", target: routepath.IconSVGPath("close") + "?width=-4", status: http.StatusBadRequest, code: "INVALID_ARGUMENT", message: "Invalid value for width"},
		{name: "zero height", target: routepath.IconSVGPath("close") + "?height=0", status: http.StatusBadRequest, code: "INVALID_ARGUMENT", message: "Invalid value for height"},
		{name: "markup in color", target: routepath.IconSVGPath("close") + "?color=%3Cscript%3E", status: http.StatusBadRequest, code: "INVALID_ARGUMENT", message: "Invalid value for color"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			headers := map[string]string{}
			if tc.lang != "" {
				headers["Accept-Language"] = tc.lang
			}
			rec := serve(t, h, http.MethodGet, tc.target, "", headers)
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			body := decodeError(t, rec)
			if body.Code != tc.code {
				t.Fatalf("code = %q, want %q", body.Code, tc.code)
			}
			if body.Message != tc.message {
				t.Fatalf("message = %q, want %q", body.Message, tc.message)
			}
		})
	}
}

func TestIconsSprite(t *testing.T) {
	h := NewHandler(HandlerConfig{})
	rec := serve(t, h, http.MethodGet, routepath.IconsSprite, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != icons.Sprite() {
		t.Fatal("sprite body does not match registry sprite")
	}
	if got := strings.Count(rec.Body.String(), "<symbol"); got != len(icons.IDs()) {
		t.Fatalf("symbols = %d, want %d", got, len(icons.IDs()))
	}
}

func TestHealthz(t *testing.T) {
	rec := serve(t, newTestHandler(t), http.MethodGet, routepath.Healthz, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("disk gone") }

func TestHealthzUnavailable(t *testing.T) {
	rec := serve(t, NewHandler(HandlerConfig{Health: failingPinger{}}), http.MethodGet, routepath.Healthz, "", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if body := decodeError(t, rec); body.Code != "UNAVAILABLE" {
		t.Fatalf("code = %q, want UNAVAILABLE", body.Code)
	}
}

func TestBindingsLifecycle(t *testing.T) {
	h := newTestHandler(t)
	slotPath := routepath.BindingPath("panel.table.toggle")

	put := serve(t, h, http.MethodPut, slotPath, `{"icon_id":"Table","label":"Show table","size":20}`, nil)
	if put.Code != http.StatusOK {
		t.Fatalf("put status = %d, body %s", put.Code, put.Body.String())
	}
	var stored bindingResponse
	if err := json.Unmarshal(put.Body.Bytes(), &stored); err != nil {
		t.Fatalf("decode put: %v", err)
	}
	if stored.Slot != "panel.table.toggle" || stored.IconID != "table" || stored.Label != "Show table" {
		t.Fatalf("unexpected binding %+v", stored)
	}
	if stored.Width != 20 || stored.Height != 20 {
		t.Fatalf("size = %vx%v, want 20x20", stored.Width, stored.Height)
	}

	get := serve(t, h, http.MethodGet, slotPath, "", nil)
	if get.Code != http.StatusOK {
		t.Fatalf("get status = %d", get.Code)
	}

	svg := serve(t, h, http.MethodGet, routepath.BindingSVGPath("panel.table.toggle"), "", nil)
	if svg.Code != http.StatusOK {
		t.Fatalf("svg status = %d", svg.Code)
	}
	if !strings.Contains(svg.Body.String(), `aria-label="Show table"`) {
		t.Fatalf("unexpected svg %q", svg.Body.String())
	}
	if got := svg.Header().Get("Cache-Control"); got != "no-cache" {
		t.Fatalf("Cache-Control = %q, want no-cache", got)
	}

	list := serve(t, h, http.MethodGet, routepath.Bindings, "", nil)
	var page bindingListResponse
	if err := json.Unmarshal(list.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(page.Bindings) != 1 || page.Bindings[0].Slot != "panel.table.toggle" {
		t.Fatalf("unexpected list %+v", page)
	}

	del := serve(t, h, http.MethodDelete, slotPath, "", nil)
	if del.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", del.Code)
	}
	missing := serve(t, h, http.MethodGet, slotPath, "", nil)
	if missing.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d", missing.Code)
	}
	if body := decodeError(t, missing); body.Message != "Binding panel.table.toggle not found" {
		t.Fatalf("message = %q", body.Message)
	}
}

func TestBindingsPagination(t *testing.T) {
	h := newTestHandler(t)
	for _, slot := range []string{"a", "b", "c"} {
		rec := serve(t, h, http.MethodPut, routepath.BindingPath(slot), `{"icon_id":"close","decorative":true}`, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("put %s status = %d", slot, rec.Code)
		}
	}

	first := serve(t, h, http.MethodGet, routepath.Bindings+"?page_size=2", "", nil)
	var page bindingListResponse
	if err := json.Unmarshal(first.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(page.Bindings) != 2 || page.NextPageToken == "" {
		t.Fatalf("unexpected first page %+v", page)
	}

	second := serve(t, h, http.MethodGet, routepath.Bindings+"?page_size=2&page_token="+page.NextPageToken, "", nil)
	page = bindingListResponse{}
	if err := json.Unmarshal(second.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(page.Bindings) != 1 || page.Bindings[0].Slot != "c" || page.NextPageToken != "" {
		t.Fatalf("unexpected second page %+v", page)
	}

	bad := serve(t, h, http.MethodGet, routepath.Bindings+"?page_size=two", "", nil)
	if bad.Code != http.StatusBadRequest {
		t.Fatalf("bad page size status = %d", bad.Code)
	}
}

func TestBindingPutErrors(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name   string
		slot   string
		body   string
		status int
		code   string
	}{
		{name: "unknown icon", slot: "panel", body: `{"icon_id":"nope","decorative":true}`, status: http.StatusNotFound, code: "ICON_UNKNOWN"},
		{name: "missing label", slot: "panel", body: `{"icon_id":"close"}`, status: http.StatusBadRequest, code: "ICON_MISSING_LABEL"},
		{name: "invalid slot", slot: "Bad Slot!", body: `{"icon_id":"close","decorative":true}`, status: http.StatusBadRequest, code: "BINDING_SLOT_INVALID"},
		{name: "unknown field", slot: "panel", body: `{"icon_id":"close","decorative":true,"extra":1}`, status: http.StatusBadRequest, code: "INVALID_ARGUMENT"},
		{name: "malformed json", slot: "panel", body: `{"icon_id":`, status: http.StatusBadRequest, code: "INVALID_ARGUMENT"},
		{name: "markup color", slot: "panel", body: `{"icon_id":"close","decorative":true,"color":"red\"><script>"}`, status: http.StatusBadRequest, code: "INVALID_ARGUMENT"},
		{name: "oversized body", slot: "panel", body: `{"icon_id":"close","decorative":true,"label":"` + strings.Repeat("x", maxBindingBodyBytes) + `"}`, status: http.StatusRequestEntityTooLarge, code: "PAYLOAD_TOO_LARGE"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, h, http.MethodPut, routepath.BindingPath(tc.slot), tc.body, nil)
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.status, rec.Body.String())
			}
			if body := decodeError(t, rec); body.Code != tc.code {
				t.Fatalf("code = %q, want %q", body.Code, tc.code)
			}
		})
	}

	empty := serve(t, h, http.MethodPut, routepath.BindingPath("panel"), "", nil)
	if empty.Code != http.StatusBadRequest {
		t.Fatalf("empty body status = %d", empty.Code)
	}
}

func TestBindingsUnavailableWithoutStore(t *testing.T) {
	h := NewHandler(HandlerConfig{})
	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, routepath.Bindings},
		{http.MethodGet, routepath.BindingPath("panel")},
		{http.MethodDelete, routepath.BindingPath("panel")},
		{http.MethodGet, routepath.BindingSVGPath("panel")},
	} {
		rec := serve(t, h, tc.method, tc.target, "", nil)
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("%s %s status = %d, want 503", tc.method, tc.target, rec.Code)
		}
		if body := decodeError(t, rec); body.Message != "Binding store is temporarily unavailable" {
			t.Fatalf("message = %q", body.Message)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := serve(t, NewHandler(HandlerConfig{}), http.MethodPost, routepath.IconSVGPath("close"), "", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestETagMatches(t *testing.T) {
	etag := etagFor("<svg></svg>")
	tests := []struct {
		header string
		want   bool
	}{
		{"", false},
		{etag, true},
		{"W/" + etag, true},
		{`"other", ` + etag, true},
		{"*", true},
		{`"other"`, false},
	}
	for _, tc := range tests {
		if got := etagMatches(tc.header, etag); got != tc.want {
			t.Errorf("etagMatches(%q) = %v, want %v", tc.header, got, tc.want)
		}
	}
}
