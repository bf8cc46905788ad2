// Package observe provides the ambient logging and metrics stack used by
// the health package to report severity transitions.
//
// It is a pure instrumentation library: no execution and no transport; its
// only output is JSON log lines written by the Logger and measurements
// recorded through the OpenTelemetry meter. Consumers wire an Observer (or a bare Logger and
// Meter) into health.Component and health.Aggregator via functional
// options.
//
// # Overview
//
// observe provides two observability pillars:
//   - Metrics: OpenTelemetry counters and a latency histogram
//   - Logging: Structured JSON logging with automatic field redaction
//
// # Core Components
//
//   - [Observer]: Main facade providing Meter and Logger access
//   - [Metrics]: Records component/aggregator transitions and debounce latency
//   - [Logger]: Structured JSON logging with sensitive field redaction
//
// # Quick Start
//
//	cfg := observe.Config{
//	    ServiceName: "my-service",
//	    Version:     "1.0.0",
//	    Metrics:     observe.MetricsConfig{Enabled: true},
//	    Logging:     observe.LoggingConfig{Enabled: true, Level: "info"},
//	}
//
//	obs, err := observe.NewObserver(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer obs.Shutdown(ctx)
//
// # Metrics recorded
//
//   - apphealth.component.transitions (counter): Debounced component severity changes
//   - apphealth.aggregator.transitions (counter): Debounced aggregator severity changes
//   - apphealth.debounce.latency_ms (histogram): Time between a debounce trigger and its fire
//
// # Sensitive Field Redaction
//
// The logger automatically redacts these fields to prevent leaking sensitive
// attribute values through health signal logs:
//   - password, secret, token
//   - api_key, apiKey, credential
//
// See [RedactedFields] for the complete list.
//
// # Thread Safety
//
// All exported types are safe for concurrent use after construction:
//   - [Observer]: Meter(), Logger() are safe; Shutdown() is idempotent
//   - [Metrics]: RecordTransition() and RecordDebounceLatency() are safe for concurrent use
//   - [Logger]: All logging methods are mutex-protected
//
// # Error Handling
//
// Configuration errors (use errors.Is for checking):
//   - [ErrMissingServiceName]: Config.ServiceName is empty
//   - [ErrInvalidLogLevel]: Unknown log level
//
// Runtime errors:
//   - [ErrNilObserver]: Nil Observer passed to function
package observe
