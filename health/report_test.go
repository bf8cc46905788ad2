package health

import "testing"

func TestReport_SignalCountAndSignals(t *testing.T) {
	cs := newComponentState("redis")
	cs.addPublisherSignal(NewSignal(Degraded, []Attribute{NewAttribute("reason", StringValue("timeout"))}))
	cs.addPublisherSignal(NewSignal(Degraded, []Attribute{NewAttribute("reason", StringValue("timeout"))}))
	cs.addPublisherSignal(NewSignal(Critical, nil))

	report := cs.makeReport(FilterAll)

	if report.Name() != "redis" {
		t.Errorf("Name() = %q, want redis", report.Name())
	}
	if report.State() != Critical {
		t.Errorf("State() = %v, want Critical", report.State())
	}
	if got := report.SignalCount(Degraded); got != 2 {
		t.Errorf("SignalCount(Degraded) = %d, want 2", got)
	}
	if got := report.SignalCount(Critical); got != 1 {
		t.Errorf("SignalCount(Critical) = %d, want 1", got)
	}

	degraded := report.Signals(Degraded)
	if len(degraded) != 1 || degraded[0].Count != 2 {
		t.Errorf("Signals(Degraded) = %+v, want one signal with count 2", degraded)
	}
}

func TestReport_FilterRestrictsSignals(t *testing.T) {
	cs := newComponentState("api")
	cs.addPublisherSignal(NewSignal(Degraded, nil))
	cs.addPublisherSignal(NewSignal(Critical, nil))

	report := cs.makeReport(FilterCritical)

	if len(report.Signals(Degraded)) != 0 {
		t.Error("Signals(Degraded) should be empty when filter excludes it")
	}
	if len(report.Signals(Critical)) != 1 {
		t.Error("Signals(Critical) should be populated when filter includes it")
	}
	// Counts are always populated regardless of filter.
	if report.SignalCount(Degraded) != 1 {
		t.Error("SignalCount should be unaffected by filter")
	}
}

func TestReport_String(t *testing.T) {
	cs := newComponentState("db")
	cs.addPublisherSignal(NewSignal(Down, []Attribute{NewAttribute("reason", StringValue("disk full"))}))
	report := cs.makeReport(FilterAll)

	s := report.String()
	if s == "" {
		t.Error("String() should not be empty")
	}
}

func TestReport_InvalidStateIsSafe(t *testing.T) {
	cs := newComponentState("x")
	report := cs.makeReport(FilterAll)

	if report.SignalCount(Health(99)) != 0 {
		t.Error("SignalCount with invalid state should return 0")
	}
	if report.Signals(Health(99)) != nil {
		t.Error("Signals with invalid state should return nil")
	}
}
