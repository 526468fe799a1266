package event

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/vi-missile/parameter"
)

// EventQueue is a fixed ring of pending events
// Any goroutine may push; one consumer drains per tick
// When full, a push overwrites the oldest pending event
type EventQueue struct {
	mu    sync.Mutex
	ring  [parameter.EventQueueSize]GameEvent
	read  uint64
	write uint64

	dropped atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

func (q *EventQueue) Push(ev GameEvent) {
	q.mu.Lock()
	q.ring[q.write&parameter.EventBufferMask] = ev
	q.write++
	if q.write-q.read > parameter.EventQueueSize {
		q.read = q.write - parameter.EventQueueSize
		q.dropped.Add(1)
	}
	q.mu.Unlock()
}

// ConsumeInto drains pending events onto buf, oldest first
func (q *EventQueue) ConsumeInto(buf []GameEvent) []GameEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	for ; q.read < q.write; q.read++ {
		slot := &q.ring[q.read&parameter.EventBufferMask]
		buf = append(buf, *slot)
		*slot = GameEvent{} // release payload
	}
	return buf
}

// Consume drains into a fresh slice, nil when nothing is pending
func (q *EventQueue) Consume() []GameEvent {
	if q.Len() == 0 {
		return nil
	}
	return q.ConsumeInto(nil)
}

func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int(q.write - q.read)
}

// Dropped counts events overwritten before anyone consumed them
func (q *EventQueue) Dropped() uint64 {
	return q.dropped.Load()
}
