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

// componentMessage is the union of messages a component worker accepts.
type componentMessage struct {
	startPublishing *Signal
	changeHealth    *changeHealthMsg
	stopPublishing  *Signal
	getReport       *getReportMsg
}

type changeHealthMsg struct {
	old Signal
	new Signal
}

type getReportMsg struct {
	filter Filter
	reply  chan Report
}

// componentCore is the shared state behind every clone of a Component
// handle: the worker's mailbox, its broadcast health slot, a weak
// back-reference to the owning aggregator, and the refcount that decides
// when the worker should be torn down.
type componentCore struct {
	name       string
	mailbox    *mailbox[componentMessage]
	health     *healthSlot
	closed     atomic.Bool
	refCount   atomic.Int32
	aggregator *aggregatorCore // weak: checked via aggregator.closed before every send

	sf     singleflight.Group
	logger observe.Logger
	meter  observe.Metrics
}

// Component tracks the health of one feature of an application, aggregated
// from the signals of all of its active publishers.
type Component struct {
	core *componentCore
}

// ComponentOption configures optional ambient-stack wiring for a Component.
type ComponentOption func(*componentCore)

// WithLogger attaches a structured logger that records debounced severity
// transitions.
func WithLogger(logger observe.Logger) ComponentOption {
	return func(c *componentCore) { c.logger = logger }
}

// WithMeter attaches an OpenTelemetry meter that records debounced severity
// transitions and debounce latency.
func WithMeter(meter metric.Meter) ComponentOption {
	return func(c *componentCore) {
		if m, err := observe.NewMetrics(meter); err == nil {
			c.meter = m
		}
	}
}

// newComponent creates a component named name, with a weak back-reference
// to the aggregator that owns it, and starts its worker goroutine.
func newComponent(name string, aggCore *aggregatorCore, opts ...ComponentOption) *Component {
	core := &componentCore{
		name:       name,
		mailbox:    newMailbox[componentMessage](),
		health:     newHealthSlot(Nominal),
		aggregator: aggCore,
		logger:     observe.NewNoopLogger(),
		meter:      observe.NewNoopMetrics(),
	}
	core.refCount.Store(1)

	for _, opt := range opts {
		opt(core)
	}

	go componentWorker(core)

	c := &Component{core: core}

	if aggCore != nil && !aggCore.closed.Load() {
		aggCore.mailbox.Send(aggregatorMessage{componentCreated: newComponentMonitor(core)})
	}

	return c
}

// Publisher creates a new publisher for this component. A publisher is how
// health information is injected into a component: the component's overall
// health is the aggregate of all of its active publishers' signals.
func (c *Component) Publisher() *Publisher {
	return newPublisher(c.core)
}

// Clone returns a new handle over the same underlying component. The
// worker keeps running until every clone (including the original) has been
// closed.
func (c *Component) Clone() *Component {
	c.core.refCount.Add(1)
	return &Component{core: c.core}
}

// Close releases this handle. Every call sends the aggregator a hint to
// reap monitors of closed components. Once every clone has been closed, the
// worker drains its mailbox and exits.
func (c *Component) Close() {
	if c.core.aggregator != nil && !c.core.aggregator.closed.Load() {
		c.core.aggregator.mailbox.Send(aggregatorMessage{componentDropped: true})
	}

	if c.core.refCount.Add(-1) == 0 {
		c.core.closed.Store(true)
		c.core.mailbox.Close()
	}
}

// Changed blocks until the component's overall health state changes, or
// ctx is cancelled, or the component has already exited — in which case it
// returns ErrObserverGone.
//
// Not every intermediate state change is observed: rapid changes are
// debounced, so Changed may skip past transient states.
func (c *Component) Changed(ctx context.Context) error {
	if c.core.closed.Load() {
		return ErrObserverGone
	}

	select {
	case <-c.core.health.Changed():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns the component's current overall health.
func (c *Component) State() Health {
	return c.core.health.Load()
}

// Report requests a health report for the component, restricted to the
// severities selected by filter. It returns false if the component's
// worker has already exited.
func (c *Component) Report(ctx context.Context, filter Filter) (Report, bool) {
	if c.core.closed.Load() {
		return Report{}, false
	}

	key := fmt.Sprintf("report:%d", filter)
	v, err, _ := c.core.sf.Do(key, func() (any, error) {
		return componentReport(ctx, c.core, filter)
	})
	if err != nil {
		return Report{}, false
	}
	return v.(Report), true
}

func componentReport(ctx context.Context, core *componentCore, filter Filter) (Report, error) {
	reply := make(chan Report, 1)
	core.mailbox.Send(componentMessage{getReport: &getReportMsg{filter: filter, reply: reply}})

	select {
	case r := <-reply:
		return r, nil
	case <-ctx.Done():
		return Report{}, ctx.Err()
	}
}

// componentWorker is the single goroutine that owns a component's state.
// It processes mailbox messages and a debounce timer in the same select
// loop, so ComponentState and the Debouncer never need their own locks.
func componentWorker(core *componentCore) {
	state := newComponentState(core.name)
	healthState := Nominal
	debounce := newDebouncer(minDebounceInterval)
	var triggeredAt time.Time

	for {
		sendUpdate := false

		select {
		case <-core.mailbox.Wake():
			msgs, closed := core.mailbox.Drain()
			for _, msg := range msgs {
				switch {
				case msg.startPublishing != nil:
					state.addPublisherSignal(*msg.startPublishing)
					if debounce.Trigger() {
						sendUpdate = true
					} else {
						triggeredAt = time.Now()
					}

				case msg.changeHealth != nil:
					state.removePublisherSignal(msg.changeHealth.old)
					state.addPublisherSignal(msg.changeHealth.new)
					if debounce.Trigger() {
						sendUpdate = true
					} else {
						triggeredAt = time.Now()
					}

				case msg.stopPublishing != nil:
					state.removePublisherSignal(*msg.stopPublishing)
					if debounce.Trigger() {
						sendUpdate = true
					} else {
						triggeredAt = time.Now()
					}

				case msg.getReport != nil:
					msg.getReport.reply <- state.makeReport(msg.getReport.filter)
				}
			}
			if closed {
				return
			}

		case <-debounce.Ready():
			debounce.Fired()
			sendUpdate = true
			if !triggeredAt.IsZero() {
				core.meter.RecordDebounceLatency(context.Background(), "component", core.name, time.Since(triggeredAt))
				triggeredAt = time.Time{}
			}
		}

		if sendUpdate {
			newState := state.state()

			// Suppress a republish when the state was and remains Nominal;
			// any other transition is reported.
			if newState != healthState || newState != Nominal {
				healthState = newState
				core.health.Store(newState)
				logTransition(core.logger, core.name, newState)
				core.meter.RecordTransition(context.Background(), "component", core.name, newState.String())

				if core.aggregator != nil && !core.aggregator.closed.Load() {
					core.aggregator.mailbox.Send(aggregatorMessage{componentHealthChanged: true})
				}
			}
		}
	}
}

func logTransition(logger observe.Logger, name string, state Health) {
	ctx := context.Background()
	fields := []observe.Field{{Key: "component", Value: name}, {Key: "state", Value: state.String()}}
	if state == Nominal {
		logger.Debug(ctx, "health transition", fields...)
	} else {
		logger.Info(ctx, "health transition", fields...)
	}
}
