// Package metrics records operational counters for icon lookups, renders,
// binding writes, and request latency through the OpenTelemetry metric API.
//
// A nil *Recorder is valid and records nothing, so handlers can be built
// without a meter provider in tests.
package metrics
