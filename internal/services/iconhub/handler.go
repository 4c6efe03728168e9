package iconhub

import (
	"context"
	"net/http"
	"time"

	"github.com/louisbranch/iconhub/internal/platform/icons"
	"github.com/louisbranch/iconhub/internal/platform/telemetry/metrics"
	"github.com/louisbranch/iconhub/internal/services/iconhub/binding"
	bindingsmodule "github.com/louisbranch/iconhub/internal/services/iconhub/module/bindings"
	iconsmodule "github.com/louisbranch/iconhub/internal/services/iconhub/module/icons"
	"github.com/louisbranch/iconhub/internal/services/iconhub/routepath"
	"github.com/louisbranch/iconhub/internal/services/shared/route"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/louisbranch/iconhub/internal/services/iconhub"
	// surfaceHTTP labels registry metrics recorded by this package.
	surfaceHTTP = "http"
	// unmatchedRoute labels requests no pattern matched.
	unmatchedRoute = "unmatched"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandlerConfig holds the collaborators of a Handler. Zero values are valid:
// the default registry is used, binding routes answer 503, and telemetry
// goes to the global providers.
type HandlerConfig struct {
	Registry *icons.Registry
	Bindings *binding.Service
	Health   Pinger
	Metrics  *metrics.Recorder
	Tracer   trace.Tracer
}

// Handler routes iconhub requests.
type Handler struct {
	registry *icons.Registry
	bindings *binding.Service
	health   Pinger
	metrics  *metrics.Recorder
	tracer   trace.Tracer
	mux      *http.ServeMux

	sprite     string
	spriteETag string
}

var (
	_ iconsmodule.Service    = (*Handler)(nil)
	_ bindingsmodule.Service = (*Handler)(nil)
)

// NewHandler builds a Handler with every route registered.
func NewHandler(cfg HandlerConfig) *Handler {
	registry := cfg.Registry
	if registry == nil {
		registry = icons.Default()
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(instrumentationName)
	}

	h := &Handler{
		registry: registry,
		bindings: cfg.Bindings,
		health:   cfg.Health,
		metrics:  cfg.Metrics,
		tracer:   tracer,
		mux:      http.NewServeMux(),
	}
	h.sprite = registry.Sprite()
	h.spriteETag = etagFor(h.sprite)

	h.mux.HandleFunc(routepath.GetRoot, h.handleRoot)
	h.mux.HandleFunc(routepath.GetHealthz, h.HandleHealthz)
	iconsmodule.RegisterRoutes(h.mux, h)
	bindingsmodule.RegisterRoutes(h.mux, h)
	return h
}

// ServeHTTP traces and measures the request, then dispatches it.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if route.RedirectTrailingSlash(w, r) {
		return
	}

	_, pattern := h.mux.Handler(r)
	if pattern == "" {
		pattern = unmatchedRoute
	}

	ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	ctx, span := h.tracer.Start(ctx, pattern,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.request.method", r.Method),
			attribute.String("http.route", pattern),
			attribute.String("url.path", r.URL.Path),
		),
	)
	defer span.End()

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	start := time.Now()
	h.mux.ServeHTTP(rec, r.WithContext(ctx))

	span.SetAttributes(attribute.Int("http.response.status_code", rec.status))
	if rec.status >= http.StatusInternalServerError {
		span.SetStatus(otelcodes.Error, http.StatusText(rec.status))
	}
	h.metrics.RecordRequest(ctx, pattern, rec.status, time.Since(start))
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.Icons, http.StatusFound)
}

// statusRecorder remembers the status written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(body []byte) (int, error) {
	r.wroteHeader = true
	return r.ResponseWriter.Write(body)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
