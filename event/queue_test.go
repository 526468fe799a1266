package event

import (
	"testing"

	"github.com/lixenwraith/vi-missile/parameter"
)

// TestQueueFIFO verifies events come out in push order
func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventNetDamage, Tick: int64(i)})
	}
	if q.Len() != 5 {
		t.Errorf("Expected 5 pending, got %d", q.Len())
	}
	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(got))
	}
	for i, ev := range got {
		if ev.Tick != int64(i) {
			t.Errorf("Expected tick %d at %d, got %d", i, i, ev.Tick)
		}
	}
	if q.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

// TestQueueOverflow verifies the oldest events are dropped when full
func TestQueueOverflow(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Tick: int64(i)})
	}
	got := q.ConsumeInto(make([]GameEvent, 0, parameter.EventQueueSize))
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(got))
	}
	if got[0].Tick != 10 {
		t.Errorf("Expected first surviving tick 10, got %d", got[0].Tick)
	}
	if q.Dropped() != 10 {
		t.Errorf("Expected 10 dropped, got %d", q.Dropped())
	}
}

// TestEmitterStampsTick verifies helpers push typed payloads with the current tick
func TestEmitterStampsTick(t *testing.T) {
	q := NewEventQueue()
	e := &Emitter{Queue: q, Tick: func() int64 { return 42 }}
	e.SetReflect(1, 7)

	got := q.Consume()
	if len(got) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(got))
	}
	if got[0].Type != EventNetSetReflect || got[0].Tick != 42 {
		t.Errorf("Expected reflect at tick 42, got %v at %d", got[0].Type, got[0].Tick)
	}
	p, ok := got[0].Payload.(*NetReflectPayload)
	if !ok || p.Charges != 7 || p.Player != 1 {
		t.Errorf("Expected charges 7 for player 1, got %+v", got[0].Payload)
	}
	if !got[0].Type.IsNetCommand() {
		t.Error("Expected reflect to be a net command")
	}
}

// TestNilEmitter verifies a nil emitter is silent
func TestNilEmitter(t *testing.T) {
	var e *Emitter
	e.RemoveShield(0)
}

// TestRegistryNames verifies name lookup and payload construction
func TestRegistryNames(t *testing.T) {
	et, ok := ParseEventType("net.warp")
	if !ok || et != EventNetWarp {
		t.Errorf("Expected EventNetWarp, got %v %v", et, ok)
	}
	if EventCursorRequest.String() != "ui.cursor" {
		t.Errorf("Expected ui.cursor, got %q", EventCursorRequest.String())
	}
	if EventType(999).String() != "unknown" {
		t.Errorf("Expected unknown, got %q", EventType(999).String())
	}
	if _, ok := NewPayload(EventNetDisarm).(*NetDisarmPayload); !ok {
		t.Error("Expected *NetDisarmPayload")
	}
	if NewPayload(EventLevelClear) != nil {
		t.Error("Expected nil payload for level clear")
	}
}

// TestQueueConsumeIntoReusesBuffer verifies draining appends after existing entries
func TestQueueConsumeIntoReusesBuffer(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventLevelClear, Tick: 3})
	buf := []GameEvent{{Tick: 1}}
	buf = q.ConsumeInto(buf)
	if len(buf) != 2 || buf[1].Tick != 3 {
		t.Errorf("Expected appended event at tick 3, got %+v", buf)
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", q.Len())
	}
}
