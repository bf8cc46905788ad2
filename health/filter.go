package health

// Filter controls which publisher signals are included in a Report,
// selected per Health severity.
type Filter uint32

const (
	// FilterNominal includes publisher signals in the Nominal state.
	FilterNominal Filter = 1 << Filter(Nominal)

	// FilterDegraded includes publisher signals in the Degraded state.
	FilterDegraded Filter = 1 << Filter(Degraded)

	// FilterCritical includes publisher signals in the Critical state.
	FilterCritical Filter = 1 << Filter(Critical)

	// FilterDown includes publisher signals in the Down state.
	FilterDown Filter = 1 << Filter(Down)

	// FilterUnrecoverable includes publisher signals in the Unrecoverable state.
	FilterUnrecoverable Filter = 1 << Filter(Unrecoverable)

	// FilterAll includes publisher signals of every severity.
	FilterAll = FilterNominal | FilterDegraded | FilterCritical | FilterDown | FilterUnrecoverable
)

// Has reports whether the filter selects the given severity.
func (f Filter) Has(state Health) bool {
	return f&(1<<Filter(state)) != 0
}
