package health

// Publisher represents a single source of health information for a
// component. Each component typically has one publisher per independent
// activity it performs (for example, one per background goroutine); a
// component's overall health is the aggregate of all of its publishers'
// signals.
type Publisher struct {
	signal Signal
	core   *componentCore // weak: checked via core.closed before every send
}

// newPublisher registers a new Nominal publisher against core and returns
// its handle.
func newPublisher(core *componentCore) *Publisher {
	if !core.closed.Load() {
		sig := NominalSignal()
		core.mailbox.Send(componentMessage{startPublishing: &sig})
	}

	return &Publisher{signal: NominalSignal(), core: core}
}

// Signal returns the publisher's current signal.
func (p *Publisher) Signal() Signal {
	return p.signal
}

// Publish updates the publisher's signal to state with the given
// attributes. Publishing the same signal the publisher already holds is a
// no-op; the component is only notified of an actual change.
func (p *Publisher) Publish(state Health, attributes ...Attribute) {
	p.changeSignal(NewSignal(state, attributes))
}

func (p *Publisher) changeSignal(newSignal Signal) {
	if newSignal.Equal(p.signal) {
		return
	}

	old := p.signal
	p.signal = newSignal

	if !p.core.closed.Load() {
		p.core.mailbox.Send(componentMessage{changeHealth: &changeHealthMsg{old: old, new: newSignal}})
	}
}

// Clone creates a new, independent publisher against the same component.
// The new publisher always starts Nominal, regardless of this publisher's
// current signal — it is a fresh registration, not a copy.
func (p *Publisher) Clone() *Publisher {
	return newPublisher(p.core)
}

// Close retires the publisher, removing its current signal from the
// component's aggregate. It is the caller's responsibility to call Close
// exactly once per publisher (including clones); Go has no destructor to
// do this automatically.
func (p *Publisher) Close() {
	old := p.signal
	p.signal = NominalSignal()

	if !p.core.closed.Load() {
		p.core.mailbox.Send(componentMessage{stopPublishing: &old})
	}
}
