package engine

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-missile/event"
	"github.com/lixenwraith/vi-missile/status"
)

// recordingSystem logs its calls into a shared trace
type recordingSystem struct {
	name     string
	priority int
	trace    *[]string
	handled  int
}

func (r *recordingSystem) Name() string  { return r.name }
func (r *recordingSystem) Priority() int { return r.priority }
func (r *recordingSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventLevelClear}
}
func (r *recordingSystem) HandleEvent(event.GameEvent) {
	r.handled++
	*r.trace = append(*r.trace, r.name+":event")
}
func (r *recordingSystem) Update() { *r.trace = append(*r.trace, r.name+":update") }

func newSchedulerWorld() *World {
	return &World{Events: event.NewEventQueue(), Status: status.NewRegistry(), Log: zerolog.Nop()}
}

// TestSchedulerStepOrder verifies events route before updates and updates follow priority
func TestSchedulerStepOrder(t *testing.T) {
	w := newSchedulerWorld()
	var trace []string
	s := NewScheduler(w, time.Millisecond)
	s.Register(&recordingSystem{name: "late", priority: 20, trace: &trace})
	s.Register(&recordingSystem{name: "early", priority: 10, trace: &trace})

	w.Events.Push(event.GameEvent{Type: event.EventLevelClear})
	if n := s.Step(); n != 1 {
		t.Errorf("Expected 1 routed event, got %d", n)
	}

	want := []string{"late:event", "early:event", "early:update", "late:update"}
	if len(trace) != len(want) {
		t.Fatalf("Expected trace %v, got %v", want, trace)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("Step %d: expected %s, got %s", i, want[i], trace[i])
		}
	}
	if s.Ticks() != 1 {
		t.Errorf("Expected 1 tick, got %d", s.Ticks())
	}
}

// TestSchedulerRunStopsOnCancel verifies the loop ticks and exits with the context
func TestSchedulerRunStopsOnCancel(t *testing.T) {
	w := newSchedulerWorld()
	var trace []string
	s := NewScheduler(w, 2*time.Millisecond)
	s.Register(&recordingSystem{name: "sys", trace: &trace})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s.After = func(tick uint64) {
		if tick == 3 {
			cancel()
			close(done)
		}
	}

	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(ctx) }()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		cancel()
		t.Fatal("Expected three ticks within two seconds")
	}
	if err := <-errCh; err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

// TestSchedulerPause verifies no ticks run while paused
func TestSchedulerPause(t *testing.T) {
	w := newSchedulerWorld()
	s := NewScheduler(w, time.Millisecond)
	s.Pause()
	if !s.IsPaused() {
		t.Fatal("Expected paused scheduler")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_ = s.Run(ctx)

	if s.Ticks() != 0 {
		t.Errorf("Expected no ticks while paused, got %d", s.Ticks())
	}
}

// TestRouterSubscribers verifies handlers register under each declared type
func TestRouterSubscribers(t *testing.T) {
	w := newSchedulerWorld()
	var trace []string
	r := NewEventRouter(w.Events)
	r.Register(&recordingSystem{name: "a", trace: &trace})
	r.Register(&recordingSystem{name: "b", trace: &trace})

	if n := r.Subscribers(event.EventLevelClear); n != 2 {
		t.Errorf("Expected 2 subscribers, got %d", n)
	}
	if n := r.Subscribers(event.EventNetWarp); n != 0 {
		t.Errorf("Expected no warp subscribers, got %d", n)
	}

	w.Events.Push(event.GameEvent{Type: event.EventNetWarp})
	if n := r.DispatchAll(); n != 1 {
		t.Errorf("Expected 1 drained event, got %d", n)
	}
	if len(trace) != 0 {
		t.Errorf("Expected no deliveries, got %v", trace)
	}
}

// TestSchedulerRecordsTickCost verifies each step feeds the tick cost average
func TestSchedulerRecordsTickCost(t *testing.T) {
	w := newSchedulerWorld()
	s := NewScheduler(w, time.Millisecond)
	s.Register(&slowSystem{})
	s.Step()
	if ms := w.Status.Floats.Get(status.TickMillis).Load(); ms <= 0 {
		t.Errorf("Expected positive tick cost, got %v", ms)
	}
}

// slowSystem takes long enough per update to register in the tick cost
type slowSystem struct{}

func (slowSystem) Name() string                  { return "slow" }
func (slowSystem) Priority() int                 { return 0 }
func (slowSystem) EventTypes() []event.EventType { return nil }
func (slowSystem) HandleEvent(event.GameEvent)   {}
func (slowSystem) Update()                       { time.Sleep(2 * time.Millisecond) }
