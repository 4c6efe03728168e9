package iconhub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/louisbranch/iconhub/internal/platform/errors"
	"github.com/louisbranch/iconhub/internal/platform/icons"
	"github.com/louisbranch/iconhub/internal/platform/timeouts"
	"github.com/louisbranch/iconhub/internal/services/iconhub/binding"
)

// maxBindingBodyBytes bounds a PUT /bindings/{slot} body.
const maxBindingBodyBytes = 16 << 10

// bindingRequest is the PUT body. Width and Height override Size.
type bindingRequest struct {
	IconID     string  `json:"icon_id"`
	Label      string  `json:"label,omitempty"`
	Decorative bool    `json:"decorative,omitempty"`
	Color      string  `json:"color,omitempty"`
	Size       float64 `json:"size,omitempty"`
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
}

type bindingResponse struct {
	Slot       string    `json:"slot"`
	IconID     string    `json:"icon_id"`
	Label      string    `json:"label,omitempty"`
	Decorative bool      `json:"decorative"`
	Color      string    `json:"color,omitempty"`
	Width      float64   `json:"width,omitempty"`
	Height     float64   `json:"height,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type bindingListResponse struct {
	Bindings      []bindingResponse `json:"bindings"`
	NextPageToken string            `json:"next_page_token,omitempty"`
}

// HandleBindingsList returns one page of bindings.
func (h *Handler) HandleBindingsList(w http.ResponseWriter, r *http.Request) {
	if !h.requireBindings(w, r) {
		return
	}
	query := r.URL.Query()
	pageSize := 0
	if raw := strings.TrimSpace(query.Get("page_size")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.writeError(w, r, invalidArgument("page_size", "page_size must be a non-negative integer"))
			return
		}
		pageSize = n
	}

	ctx, cancel := requestContext(r)
	defer cancel()
	page, err := h.bindings.List(ctx, pageSize, query.Get("page_token"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := bindingListResponse{
		Bindings:      make([]bindingResponse, 0, len(page.Bindings)),
		NextPageToken: page.NextPageToken,
	}
	for _, b := range page.Bindings {
		resp.Bindings = append(resp.Bindings, toBindingResponse(b))
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleBindingGet returns the binding for one slot.
func (h *Handler) HandleBindingGet(w http.ResponseWriter, r *http.Request) {
	if !h.requireBindings(w, r) {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	b, err := h.bindings.Get(ctx, r.PathValue("slot"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBindingResponse(b))
}

// HandleBindingPut creates or replaces the binding for one slot.
func (h *Handler) HandleBindingPut(w http.ResponseWriter, r *http.Request) {
	if !h.requireBindings(w, r) {
		return
	}
	req, err := decodeBindingRequest(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	size := icons.Square(req.Size)
	if req.Width != 0 {
		size.Width = req.Width
	}
	if req.Height != 0 {
		size.Height = req.Height
	}

	ctx, cancel := requestContext(r)
	defer cancel()
	b, err := h.bindings.Put(ctx, binding.Binding{
		Slot:       r.PathValue("slot"),
		IconID:     icons.ID(req.IconID),
		Label:      req.Label,
		Decorative: req.Decorative,
		Color:      req.Color,
		Size:       size,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBindingResponse(b))
}

// HandleBindingDelete removes the binding for one slot.
func (h *Handler) HandleBindingDelete(w http.ResponseWriter, r *http.Request) {
	if !h.requireBindings(w, r) {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	if err := h.bindings.Delete(ctx, r.PathValue("slot")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleBindingSVG renders the icon bound to one slot. Bindings change, so
// the response is revalidated on every use.
func (h *Handler) HandleBindingSVG(w http.ResponseWriter, r *http.Request) {
	if !h.requireBindings(w, r) {
		return
	}
	ctx, cancel := requestContext(r)
	defer cancel()
	el, err := h.bindings.Render(ctx, r.PathValue("slot"))
	h.metrics.RecordRender(ctx, surfaceHTTP, el.ID.String(), err)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeSVG(w, r, el.String(), "no-cache")
}

func (h *Handler) requireBindings(w http.ResponseWriter, r *http.Request) bool {
	if h.bindings != nil {
		return true
	}
	h.writeError(w, r, apperrors.WithMetadata(
		apperrors.CodeUnavailable,
		"binding store is not configured",
		map[string]string{"Resource": "Binding store"},
	))
	return false
}

func decodeBindingRequest(w http.ResponseWriter, r *http.Request) (bindingRequest, error) {
	var req bindingRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBindingBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return bindingRequest{}, invalidArgument("body", "request body is required")
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return bindingRequest{}, apperrors.WithMetadata(
				apperrors.CodePayloadTooLarge,
				fmt.Sprintf("binding body exceeds %d bytes", tooLarge.Limit),
				map[string]string{"Limit": strconv.FormatInt(tooLarge.Limit, 10)},
			)
		}
		decodeErr := apperrors.Wrap(apperrors.CodeInvalidArgument, fmt.Sprintf("decode binding: %v", err), err)
		decodeErr.Metadata = map[string]string{"Field": "body"}
		return bindingRequest{}, decodeErr
	}
	if decoder.More() {
		return bindingRequest{}, invalidArgument("body", "request body must hold one JSON object")
	}
	return req, nil
}

func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), timeouts.Request)
}

func toBindingResponse(b binding.Binding) bindingResponse {
	return bindingResponse{
		Slot:       b.Slot,
		IconID:     b.IconID.String(),
		Label:      b.Label,
		Decorative: b.Decorative,
		Color:      b.Color,
		Width:      b.Size.Width,
		Height:     b.Size.Height,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
