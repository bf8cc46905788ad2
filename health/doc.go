// Package health implements an in-process health-monitoring pipeline built
// from three layers of actors: publishers feed signals into components,
// and components feed their aggregate state up into a single Aggregator.
//
// # Ecosystem Position
//
// health has no transport, no persistence, and no CLI of its own — it is a
// library other code embeds to track and query its own health:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│                      Health Pipeline                         │
//	├──────────────────────────────────────────────────────────────┤
//	│                                                                │
//	│   Publisher ──┐                                               │
//	│   Publisher ──┼──▶ Component ──┐                              │
//	│   Publisher ──┘      worker    │                              │
//	│                                 ├──▶ Aggregator                │
//	│   Publisher ──┐                │       worker                 │
//	│   Publisher ──┼──▶ Component ──┘                              │
//	│                   worker                                      │
//	│                                                                │
//	└──────────────────────────────────────────────────────────────┘
//
// Each Component and the Aggregator run their own goroutine ("worker") that
// owns its state exclusively; every interaction goes through a mailbox, so
// nothing inside a worker is ever touched from two goroutines at once.
//
// # Core Components
//
//   - [Publisher]: a single source of health signals, such as one
//     goroutine's view of a dependency.
//   - [Component]: aggregates the signals from all of its publishers into
//     one overall state, debounced against rapid changes.
//   - [Aggregator]: aggregates the state of every component it tracks into
//     one overall application state, also debounced.
//
// # Quick Start
//
//	agg := health.NewAggregator()
//	component := agg.Component("redis")
//	publisher := component.Publisher()
//
//	publisher.Publish(health.Degraded, health.NewAttribute("reason", health.StringValue("high latency")))
//
//	state := component.State()
//	report, ok := component.Report(ctx, health.FilterAll)
//
// # Debouncing
//
// Components debounce at 100ms, the Aggregator at 1s: a change arriving
// after a quiet window is published at once, and any further changes inside
// the window collapse into a single deferred publication at its end,
// trading immediacy for stability under noisy inputs.
//
// # Thread Safety
//
// [Component] (including its Clone()'d handles) and [Aggregator] are safe
// for concurrent use. A single [Publisher] is not: Publish and Close update
// its current signal without synchronization; Publisher.Clone creates an
// independent publisher for the same component. Close() must be called
// exactly once per handle; Go has no destructor to do it automatically.
//
// # Ambient Observability
//
// [WithLogger], [WithMeter], [WithAggregatorLogger], and
// [WithAggregatorMeter] wire a component or aggregator into the sibling
// observe package's structured logger and OpenTelemetry meter. Without
// them, both are no-ops.
package health
