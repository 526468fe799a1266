package engine

import "github.com/lixenwraith/vi-missile/event"

// EventHandler receives the event types it subscribes to
// HandleEvent runs on the scheduler goroutine ahead of the tick's updates
type EventHandler interface {
	HandleEvent(ev event.GameEvent)
	EventTypes() []event.EventType
}

// EventRouter fans queued events out to subscribers
// Subscribers of one type are called in registration order
// Events pushed by a handler wait for the next dispatch
type EventRouter struct {
	queue *event.EventQueue
	subs  map[event.EventType][]EventHandler
	batch []event.GameEvent
}

func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		queue: queue,
		subs:  make(map[event.EventType][]EventHandler),
	}
}

// Register subscribes h to every type it declares
func (r *EventRouter) Register(h EventHandler) {
	for _, t := range h.EventTypes() {
		r.subs[t] = append(r.subs[t], h)
	}
}

// Subscribers reports how many handlers listen for t
func (r *EventRouter) Subscribers(t event.EventType) int {
	return len(r.subs[t])
}

// DispatchAll drains the queue and delivers each event to its subscribers
// Returns the number of events drained, delivered or not
func (r *EventRouter) DispatchAll() int {
	r.batch = r.queue.ConsumeInto(r.batch[:0])
	for i := range r.batch {
		ev := r.batch[i]
		for _, h := range r.subs[ev.Type] {
			h.HandleEvent(ev)
		}
		r.batch[i] = event.GameEvent{}
	}
	return len(r.batch)
}
