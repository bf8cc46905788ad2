package health

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestHealth_JSONRoundTrip(t *testing.T) {
	for _, hs := range AllHealthStates {
		data, err := json.Marshal(hs)
		if err != nil {
			t.Fatalf("Marshal(%v) error: %v", hs, err)
		}

		var got Health
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s) error: %v", data, err)
		}
		if got != hs {
			t.Errorf("round-trip %v -> %s -> %v", hs, data, got)
		}
	}
}

func TestHealth_MarshalInvalidFails(t *testing.T) {
	if _, err := json.Marshal(Health(99)); err == nil {
		t.Error("marshaling an invalid Health should fail")
	}
}

func TestHealth_UnmarshalUnknownTagFails(t *testing.T) {
	var h Health
	if err := json.Unmarshal([]byte(`"Bogus"`), &h); err == nil {
		t.Error("unmarshaling an unknown tag should fail")
	}
}

func TestFilter_JSONRoundTrip(t *testing.T) {
	filters := []Filter{FilterNominal, FilterAll, FilterDegraded | FilterCritical, 0}

	for _, f := range filters {
		data, err := json.Marshal(f)
		if err != nil {
			t.Fatalf("Marshal(%v) error: %v", f, err)
		}

		var got Filter
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s) error: %v", data, err)
		}
		if got != f {
			t.Errorf("round-trip %v -> %s -> %v", f, data, got)
		}
	}
}

func TestAttributeValue_JSONExternallyTagged(t *testing.T) {
	tests := []struct {
		name string
		attr Attribute
		want string
	}{
		{"int", NewAttribute("code", IntValue(42)), `"value":{"Int":42}`},
		{"float", NewAttribute("ratio", FloatValue(2.5)), `"value":{"Double":2.5}`},
		{"string", NewAttribute("reason", StringValue("x")), `"value":{"String":"x"}`},
		{"bool", NewAttribute("ok", BoolValue(true)), `"value":{"Boolean":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.attr)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			if got := string(data); !strings.Contains(got, tt.want) {
				t.Errorf("Marshal(%v) = %s, want substring %s", tt.attr, got, tt.want)
			}
		})
	}
}

func TestAttribute_JSONRoundTrip(t *testing.T) {
	attrs := []Attribute{
		NewAttribute("code", IntValue(-7)),
		NewAttribute("ratio", FloatValue(3.14)),
		NewAttribute("reason", StringValue("timeout")),
		NewAttribute("ready", BoolValue(false)),
	}

	for _, a := range attrs {
		data, err := json.Marshal(a)
		if err != nil {
			t.Fatalf("Marshal(%v) error: %v", a, err)
		}

		var got Attribute
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s) error: %v", data, err)
		}
		if !equalAttribute(got, a) {
			t.Errorf("round-trip %v -> %s -> %v", a, data, got)
		}
	}
}

func TestSignal_JSONRoundTrip(t *testing.T) {
	s := NewSignal(Degraded, []Attribute{NewAttribute("reason", StringValue("slow"))})

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var got Signal
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal(%s) error: %v", data, err)
	}
	if !got.Equal(s) {
		t.Errorf("round-trip %v -> %s -> %v", s, data, got)
	}
}

func TestSignal_JSONNilAttributesBecomeEmptyArray(t *testing.T) {
	s := NominalSignal()

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if !strings.Contains(string(data), `"attributes":[]`) {
		t.Errorf("Marshal(%v) = %s, want an empty attributes array, not null", s, data)
	}
}

func TestReport_JSONRoundTrip(t *testing.T) {
	cs := newComponentState("cache")
	cs.addPublisherSignal(NewSignal(Degraded, []Attribute{NewAttribute("reason", StringValue("slow"))}))
	cs.addPublisherSignal(NewSignal(Critical, nil))
	report := cs.makeReport(FilterAll)

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var got Report
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal(%s) error: %v", data, err)
	}

	if got.Name() != report.Name() || got.State() != report.State() {
		t.Errorf("round-trip mismatch: got %+v, want %+v", got, report)
	}
	if got.SignalCount(Degraded) != report.SignalCount(Degraded) {
		t.Errorf("SignalCount(Degraded) mismatch after round-trip")
	}
	if got.SignalCount(Critical) != report.SignalCount(Critical) {
		t.Errorf("SignalCount(Critical) mismatch after round-trip")
	}
}
