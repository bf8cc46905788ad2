package health

import "time"

// minDebounceInterval is the debounce delay component workers use.
const minDebounceInterval = 100 * time.Millisecond

// debouncer rate-limits a stream of events down to at most one processing
// pass per delay window. It is owned exclusively by the worker goroutine
// that calls Trigger/Ready/Fired — it holds no lock of its own.
type debouncer struct {
	delay     time.Duration
	lastFired time.Time
	timer     *time.Timer
	timerLive bool
}

// newDebouncer creates a debouncer that allows at most one trigger to pass
// through immediately per delay window.
func newDebouncer(delay time.Duration) *debouncer {
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}

	return &debouncer{
		delay:     delay,
		lastFired: time.Now(),
		timer:     timer,
	}
}

// Trigger reports that a debounced event has occurred. It returns true if
// the event should be processed immediately, or false if it has instead
// been scheduled to fire later via Ready.
func (d *debouncer) Trigger() bool {
	now := time.Now()
	elapsed := now.Sub(d.lastFired)

	if elapsed >= d.delay {
		if d.timerLive && !d.timer.Stop() {
			<-d.timer.C
		}
		d.timerLive = false
		d.lastFired = now
		return true
	}

	if !d.timerLive {
		d.timer.Reset(d.delay - elapsed)
		d.timerLive = true
	}
	return false
}

// Ready returns the channel that fires when a deferred trigger should be
// processed. It returns nil whenever no trigger is pending, so a select
// that includes it simply blocks forever on this arm until Trigger
// schedules one.
func (d *debouncer) Ready() <-chan time.Time {
	if !d.timerLive {
		return nil
	}
	return d.timer.C
}

// Fired must be called once the caller has received off the channel
// returned by Ready, to clear the pending state and record the fire time.
func (d *debouncer) Fired() {
	d.timerLive = false
	d.lastFired = time.Now()
}
