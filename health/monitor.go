package health

import "context"

// componentMonitor is the aggregator's weak reference to a component: it
// can query the component's cached health state and request a report, but
// never keeps the component's worker alive on its own.
type componentMonitor struct {
	core *componentCore // weak: checked via core.closed before every send
}

// newComponentMonitor creates a monitor over core.
func newComponentMonitor(core *componentCore) *componentMonitor {
	return &componentMonitor{core: core}
}

// alive reports whether the monitored component's worker is still running.
func (m *componentMonitor) alive() bool {
	return !m.core.closed.Load()
}

// state returns the component's last-published health state.
func (m *componentMonitor) state() Health {
	return m.core.health.Load()
}

// report requests a report from the component, returning false if it has
// already exited or ctx is cancelled first.
func (m *componentMonitor) report(ctx context.Context, filter Filter) (Report, bool) {
	if m.core.closed.Load() {
		return Report{}, false
	}

	reply := make(chan Report, 1)
	m.core.mailbox.Send(componentMessage{getReport: &getReportMsg{filter: filter, reply: reply}})

	select {
	case r := <-reply:
		return r, true
	case <-ctx.Done():
		return Report{}, false
	}
}
