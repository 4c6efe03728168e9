package iconhub

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	apperrors "github.com/louisbranch/iconhub/internal/platform/errors"
	"github.com/louisbranch/iconhub/internal/services/iconhub/i18n"
	"go.opentelemetry.io/otel/trace"
)

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError serializes err with a message localized for the request.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	tag, _ := i18n.ResolveTag(r)
	locale := i18n.Locale(tag)

	status := apperrors.HTTPStatus(err)
	body := errorResponse{Code: string(apperrors.CodeUnknown)}
	if domainErr, ok := apperrors.As(err); ok {
		body.Code = string(domainErr.Code)
		body.Message = domainErr.LocalizedMessage(locale)
	} else {
		body.Message = apperrors.New(apperrors.CodeUnknown, "").LocalizedMessage(locale)
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			status = http.StatusGatewayTimeout
		case errors.Is(err, context.Canceled):
			// The client went away; 499 has no constant in net/http.
			status = 499
		}
	}

	if status >= http.StatusInternalServerError {
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		trace.SpanFromContext(r.Context()).RecordError(err)
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encode json response: %v", err)
	}
}
