package health

import "fmt"

// Health represents the severity of an individual publisher, component, or
// of the entire aggregated application.
//
// Ordering reflects severity from best to worst: Nominal < Degraded <
// Critical < Down < Unrecoverable. Aggregation picks the maximum (most
// severe) state among its inputs.
type Health int

const (
	// Nominal means everything is functioning as expected: no errors
	// detected, performance and dependencies within normal ranges.
	Nominal Health = iota

	// Degraded means functionality is available but with minor impairment
	// or risk: reduced capacity, retries, non-critical warnings.
	Degraded

	// Critical means severe impairment that materially affects
	// functionality: critical paths failing, users impacted, SLAs violated.
	Critical

	// Down means the component is effectively unavailable but recoverable
	// through operational action such as a restart or failover.
	Down

	// Unrecoverable means failure requiring intervention beyond routine
	// recovery: corruption, irreversible configuration issues, data loss.
	Unrecoverable
)

// NumHealthStates is the number of distinct Health values.
const NumHealthStates = 5

// AllHealthStates lists every Health value from best to worst.
var AllHealthStates = [NumHealthStates]Health{Nominal, Degraded, Critical, Down, Unrecoverable}

// String returns the canonical name of h.
func (h Health) String() string {
	switch h {
	case Nominal:
		return "Nominal"
	case Degraded:
		return "Degraded"
	case Critical:
		return "Critical"
	case Down:
		return "Down"
	case Unrecoverable:
		return "Unrecoverable"
	default:
		return fmt.Sprintf("Health(%d)", int(h))
	}
}

// valid reports whether h is one of the defined Health constants.
func (h Health) valid() bool {
	return h >= Nominal && h <= Unrecoverable
}
