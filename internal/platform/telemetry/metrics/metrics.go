package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/louisbranch/iconhub/internal/platform/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// InstrumentationName scopes every instrument created by this package.
const InstrumentationName = "github.com/louisbranch/iconhub/internal/platform/telemetry/metrics"

// OutcomeOK labels operations that returned no error.
const OutcomeOK = "ok"

// Recorder owns the iconhub instruments.
type Recorder struct {
	lookups         metric.Int64Counter
	renders         metric.Int64Counter
	bindingWrites   metric.Int64Counter
	requestDuration metric.Float64Histogram
}

// New creates a Recorder on provider, or on the global provider when nil.
func New(provider metric.MeterProvider) (*Recorder, error) {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	meter := provider.Meter(InstrumentationName)

	lookups, err := meter.Int64Counter("iconhub.icon.lookups",
		metric.WithDescription("Icon definition lookups by surface and outcome."))
	if err != nil {
		return nil, fmt.Errorf("create lookup counter: %w", err)
	}
	renders, err := meter.Int64Counter("iconhub.icon.renders",
		metric.WithDescription("Icon renders by surface and outcome."))
	if err != nil {
		return nil, fmt.Errorf("create render counter: %w", err)
	}
	bindingWrites, err := meter.Int64Counter("iconhub.binding.writes",
		metric.WithDescription("Binding puts and deletes by outcome."))
	if err != nil {
		return nil, fmt.Errorf("create binding counter: %w", err)
	}
	requestDuration, err := meter.Float64Histogram("iconhub.request.duration",
		metric.WithDescription("Request latency by route and status."),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, fmt.Errorf("create request histogram: %w", err)
	}

	return &Recorder{
		lookups:         lookups,
		renders:         renders,
		bindingWrites:   bindingWrites,
		requestDuration: requestDuration,
	}, nil
}

// RecordLookup counts one Get or ParseID call.
func (r *Recorder) RecordLookup(ctx context.Context, surface string, err error) {
	if r == nil {
		return
	}
	r.lookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("surface", surface),
		attribute.String("outcome", Outcome(err)),
	))
}

// RecordRender counts one Render call for iconID.
func (r *Recorder) RecordRender(ctx context.Context, surface, iconID string, err error) {
	if r == nil {
		return
	}
	r.renders.Add(ctx, 1, metric.WithAttributes(
		attribute.String("surface", surface),
		attribute.String("icon", iconID),
		attribute.String("outcome", Outcome(err)),
	))
}

// RecordBindingWrite counts one binding mutation; op is "put" or "delete".
func (r *Recorder) RecordBindingWrite(ctx context.Context, op string, err error) {
	if r == nil {
		return
	}
	r.bindingWrites.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", op),
		attribute.String("outcome", Outcome(err)),
	))
}

// RecordRequest observes the latency of one handled request.
func (r *Recorder) RecordRequest(ctx context.Context, route string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.requestDuration.Record(ctx, float64(elapsed)/float64(time.Millisecond), metric.WithAttributes(
		attribute.String("route", route),
		attribute.Int("status", status),
	))
}

// Outcome maps err to a low-cardinality label: "ok" or the lowercased domain
// error code.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	return strings.ToLower(string(apperrors.CodeOf(err)))
}
