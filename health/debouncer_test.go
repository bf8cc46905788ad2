package health

import (
	"testing"
	"time"
)

func TestDebouncer_TriggerRightAfterConstructionIsDeferred(t *testing.T) {
	d := newDebouncer(50 * time.Millisecond)

	if d.Trigger() {
		t.Error("Trigger right after construction should be deferred until the delay has elapsed")
	}
	if d.Ready() == nil {
		t.Error("Ready should be non-nil once a trigger has been deferred")
	}
}

func TestDebouncer_SubsequentTriggerIsDeferred(t *testing.T) {
	d := newDebouncer(50 * time.Millisecond)
	d.Trigger()

	if d.Trigger() {
		t.Error("Trigger within the delay window should not pass immediately")
	}
	if d.Ready() == nil {
		t.Fatal("Ready should be non-nil once a trigger has been deferred")
	}

	select {
	case <-d.Ready():
		d.Fired()
	case <-time.After(200 * time.Millisecond):
		t.Fatal("deferred trigger never fired")
	}

	if d.Ready() != nil {
		t.Error("Ready should be nil again after Fired")
	}
}

func TestDebouncer_TriggerAfterWindowPassesImmediately(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	d.Trigger()

	time.Sleep(30 * time.Millisecond)

	if !d.Trigger() {
		t.Error("Trigger after the delay has elapsed should pass immediately")
	}
	if d.Ready() != nil {
		t.Error("Ready should be nil after an immediate pass")
	}
}

func TestDebouncer_RepeatedTriggersCoalesce(t *testing.T) {
	d := newDebouncer(40 * time.Millisecond)
	d.Trigger()

	for i := 0; i < 5; i++ {
		d.Trigger()
	}

	select {
	case <-d.Ready():
		d.Fired()
	case <-time.After(200 * time.Millisecond):
		t.Fatal("deferred trigger never fired")
	}

	if d.Ready() != nil {
		t.Error("only a single deferred fire should be pending after repeated triggers")
	}
}
