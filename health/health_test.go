package health

import "testing"

func TestHealth_String(t *testing.T) {
	tests := []struct {
		h    Health
		want string
	}{
		{Nominal, "Nominal"},
		{Degraded, "Degraded"},
		{Critical, "Critical"},
		{Down, "Down"},
		{Unrecoverable, "Unrecoverable"},
	}

	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("Health(%d).String() = %q, want %q", tt.h, got, tt.want)
		}
	}
}

func TestHealth_Ordering(t *testing.T) {
	states := AllHealthStates
	for i := 0; i < len(states)-1; i++ {
		if !(states[i] < states[i+1]) {
			t.Errorf("expected %s < %s", states[i], states[i+1])
		}
	}
}

func TestHealth_Valid(t *testing.T) {
	if !Nominal.valid() {
		t.Error("Nominal should be valid")
	}
	if Health(99).valid() {
		t.Error("Health(99) should be invalid")
	}
}
