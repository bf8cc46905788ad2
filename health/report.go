package health

import (
	"fmt"
	"strings"
)

// SignalCount pairs a signal with the number of active publishers
// currently reporting that exact signal.
type SignalCount struct {
	Signal Signal
	Count  int
}

// Report is a point-in-time snapshot of a single component's health: its
// aggregate state, how many publishers are in each severity, and — for the
// severities selected by the requested Filter — the distinct signals
// contributing to each count.
type Report struct {
	name    string
	state   Health
	counts  [NumHealthStates]int
	signals [NumHealthStates][]SignalCount
}

// Name returns the component's name.
func (r Report) Name() string { return r.name }

// State returns the component's overall health, the most severe state
// reported by any of its active publishers.
func (r Report) State() Health { return r.state }

// SignalCount returns the number of active publisher signals in the given
// severity.
func (r Report) SignalCount(state Health) int {
	if !state.valid() {
		return 0
	}
	return r.counts[state]
}

// Signals returns the distinct publisher signals in the given severity
// along with how many publishers are reporting each one. It is empty for
// severities not selected by the Filter the report was built with.
func (r Report) Signals(state Health) []SignalCount {
	if !state.valid() {
		return nil
	}
	return r.signals[state]
}

// String renders a multi-line dump of the report, grouped by severity.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Component %s: %s", r.name, r.state)

	for _, state := range AllHealthStates {
		signals := r.Signals(state)
		if len(signals) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n  %s\n", state)
		for _, sc := range signals {
			fmt.Fprintf(&b, "    %d x %s\n", sc.Count, sc.Signal)
		}
	}

	return b.String()
}
