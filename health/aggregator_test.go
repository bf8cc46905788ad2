package health

import (
	"context"
	"testing"
	"time"
)

func TestAggregator_AggregatesMostSevereComponent(t *testing.T) {
	agg := NewAggregator()
	defer agg.Close()

	cache := agg.Component("cache")
	defer cache.Close()
	db := agg.Component("db")
	defer db.Close()

	pCache := cache.Publisher()
	defer pCache.Close()
	pDB := db.Publisher()
	defer pDB.Close()

	pCache.Publish(Degraded)
	pDB.Publish(Critical)

	waitForAggregatorState(t, agg, Critical)
}

func TestAggregator_DroppedComponentIsExcluded(t *testing.T) {
	agg := NewAggregator()
	defer agg.Close()

	cache := agg.Component("cache")
	pCache := cache.Publisher()
	pCache.Publish(Critical)

	waitForAggregatorState(t, agg, Critical)

	pCache.Close()
	cache.Close()

	waitForAggregatorState(t, agg, Nominal)
}

func TestAggregator_ReportsAggregatesAllComponents(t *testing.T) {
	agg := NewAggregator()
	defer agg.Close()

	cache := agg.Component("cache")
	defer cache.Close()
	db := agg.Component("db")
	defer db.Close()

	pCache := cache.Publisher()
	defer pCache.Close()
	pCache.Publish(Degraded)

	waitForAggregatorState(t, agg, Degraded)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	reports, ok := agg.Reports(ctx, FilterAll)
	if !ok {
		t.Fatal("Reports() returned ok=false")
	}
	if len(reports) != 2 {
		t.Fatalf("Reports() returned %d reports, want 2", len(reports))
	}

	byName := map[string]Report{}
	for _, r := range reports {
		byName[r.Name()] = r
	}
	if byName["cache"].State() != Degraded {
		t.Errorf("cache report state = %v, want Degraded", byName["cache"].State())
	}
	if byName["db"].State() != Nominal {
		t.Errorf("db report state = %v, want Nominal", byName["db"].State())
	}
}

func TestAggregator_ChangedReturnsErrObserverGoneAfterClose(t *testing.T) {
	agg := NewAggregator()
	agg.Close()

	time.Sleep(20 * time.Millisecond)

	if err := agg.Changed(context.Background()); err != ErrObserverGone {
		t.Errorf("Changed() after Close = %v, want ErrObserverGone", err)
	}
}

func TestReapDeadMonitors_RemovesOnlyDead(t *testing.T) {
	agg := NewAggregator()
	defer agg.Close()

	alive := agg.Component("alive")
	defer alive.Close()
	dead := agg.Component("dead")
	dead.Close()

	time.Sleep(20 * time.Millisecond)

	aliveMonitor := newComponentMonitor(alive.core)
	deadMonitor := newComponentMonitor(dead.core)

	remaining := reapDeadMonitors([]*componentMonitor{aliveMonitor, deadMonitor})
	if len(remaining) != 1 || remaining[0] != aliveMonitor {
		t.Errorf("reapDeadMonitors() = %v, want only the alive monitor", remaining)
	}
}

func waitForAggregatorState(t *testing.T, agg *Aggregator, want Health) {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		if agg.State() == want {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("aggregator state never reached %v, last seen %v", want, agg.State())
		case <-time.After(10 * time.Millisecond):
		}
	}
}
