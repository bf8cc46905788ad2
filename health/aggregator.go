package health

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/singleflight"

	"github.com/jonwraymond/apphealth/observe"
)

// monitorReportTimeout bounds how long the aggregator worker waits for a
// single component's reply while gathering reports internally, so that one
// wedged monitor can never stall the aggregator's single-goroutine mailbox
// loop indefinitely.
const monitorReportTimeout = 5 * time.Second

// minAggregatorDebounceInterval bounds how often the aggregator republishes
// its overall health state, regardless of how often components change.
const minAggregatorDebounceInterval = 1 * time.Second

// aggregatorMessage is the union of messages the aggregator worker accepts.
type aggregatorMessage struct {
	componentCreated       *componentMonitor
	componentDropped       bool
	componentHealthChanged bool
	getReport              *getReportsMsg
}

type getReportsMsg struct {
	filter Filter
	reply  chan []Report
}

// aggregatorCore is the shared state behind an Aggregator handle; its
// components hold it as a weak back-reference.
type aggregatorCore struct {
	mailbox *mailbox[aggregatorMessage]
	health  *healthSlot
	closed  atomic.Bool

	sf     singleflight.Group
	logger observe.Logger
	meter  observe.Metrics
}

// Aggregator aggregates health state from multiple components into a
// single overall application health.
type Aggregator struct {
	core *aggregatorCore
}

// AggregatorOption configures optional ambient-stack wiring for an
// Aggregator.
type AggregatorOption func(*aggregatorCore)

// WithAggregatorLogger attaches a structured logger that records debounced
// aggregate severity transitions.
func WithAggregatorLogger(logger observe.Logger) AggregatorOption {
	return func(a *aggregatorCore) { a.logger = logger }
}

// WithAggregatorMeter attaches an OpenTelemetry meter that records
// debounced aggregate severity transitions and debounce latency.
func WithAggregatorMeter(meter metric.Meter) AggregatorOption {
	return func(a *aggregatorCore) {
		if m, err := observe.NewMetrics(meter); err == nil {
			a.meter = m
		}
	}
}

// NewAggregator creates a new health aggregator and starts its worker
// goroutine.
func NewAggregator(opts ...AggregatorOption) *Aggregator {
	core := &aggregatorCore{
		mailbox: newMailbox[aggregatorMessage](),
		health:  newHealthSlot(Nominal),
		logger:  observe.NewNoopLogger(),
		meter:   observe.NewNoopMetrics(),
	}

	for _, opt := range opts {
		opt(core)
	}

	go aggregatorWorker(core)

	return &Aggregator{core: core}
}

// Component creates a new component tracked by this aggregator.
func (a *Aggregator) Component(name string, opts ...ComponentOption) *Component {
	return newComponent(name, a.core, opts...)
}

// Changed blocks until the aggregator's overall health state changes, or
// ctx is cancelled, or the aggregator has already exited — in which case it
// returns ErrObserverGone.
func (a *Aggregator) Changed(ctx context.Context) error {
	if a.core.closed.Load() {
		return ErrObserverGone
	}

	select {
	case <-a.core.health.Changed():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns the aggregator's current overall health: the most severe
// state reported by any of its components.
func (a *Aggregator) State() Health {
	return a.core.health.Load()
}

// Reports requests a health report for every live component, restricted to
// the severities selected by filter. It returns false if the aggregator's
// worker has already exited.
func (a *Aggregator) Reports(ctx context.Context, filter Filter) ([]Report, bool) {
	if a.core.closed.Load() {
		return nil, false
	}

	key := fmt.Sprintf("reports:%d", filter)
	v, err, _ := a.core.sf.Do(key, func() (any, error) {
		return aggregatorReports(ctx, a.core, filter)
	})
	if err != nil {
		return nil, false
	}
	return v.([]Report), true
}

func aggregatorReports(ctx context.Context, core *aggregatorCore, filter Filter) ([]Report, error) {
	reply := make(chan []Report, 1)
	core.mailbox.Send(aggregatorMessage{getReport: &getReportsMsg{filter: filter, reply: reply}})

	select {
	case r := <-reply:
		return r, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close shuts down the aggregator's worker. Components created from this
// aggregator keep running independently; they simply stop being able to
// notify an aggregator of health changes.
func (a *Aggregator) Close() {
	a.core.closed.Store(true)
	a.core.mailbox.Close()
}

// aggregatorWorker is the single goroutine that owns the set of component
// monitors and computes the application's overall health.
func aggregatorWorker(core *aggregatorCore) {
	var monitors []*componentMonitor
	debounce := newDebouncer(minAggregatorDebounceInterval)
	var triggeredAt time.Time

	for {
		sendUpdate := false

		select {
		case <-core.mailbox.Wake():
			msgs, closed := core.mailbox.Drain()
			for _, msg := range msgs {
				switch {
				case msg.componentCreated != nil:
					monitors = append(monitors, msg.componentCreated)

				case msg.getReport != nil:
					monitors = reapDeadMonitors(monitors)

					reports := make([]Report, 0, len(monitors))
					for _, mon := range monitors {
						reportCtx, cancel := context.WithTimeout(context.Background(), monitorReportTimeout)
						r, ok := mon.report(reportCtx, msg.getReport.filter)
						cancel()
						if ok {
							reports = append(reports, r)
						}
					}
					msg.getReport.reply <- reports

				case msg.componentHealthChanged:
					if debounce.Trigger() {
						sendUpdate = true
					} else {
						triggeredAt = time.Now()
					}

				case msg.componentDropped:
					monitors = reapDeadMonitors(monitors)
				}
			}
			if closed {
				return
			}

		case <-debounce.Ready():
			debounce.Fired()
			sendUpdate = true
			if !triggeredAt.IsZero() {
				core.meter.RecordDebounceLatency(context.Background(), "aggregator", "", time.Since(triggeredAt))
				triggeredAt = time.Time{}
			}
		}

		if sendUpdate {
			newState := aggregateHealthState(monitors)
			core.health.Store(newState)
			logTransition(core.logger, "aggregator", newState)
			core.meter.RecordTransition(context.Background(), "aggregator", "aggregator", newState.String())
		}
	}
}

func reapDeadMonitors(monitors []*componentMonitor) []*componentMonitor {
	live := monitors[:0]
	for _, m := range monitors {
		if m.alive() {
			live = append(live, m)
		}
	}
	return live
}

func aggregateHealthState(monitors []*componentMonitor) Health {
	state := Nominal
	for _, m := range monitors {
		if s := m.state(); s > state {
			state = s
		}
	}
	return state
}
