package engine

import "github.com/lixenwraith/vi-missile/event"

// System is a tick participant
// Systems receive routed events before their Update runs each tick
type System interface {
	Name() string
	Priority() int
	EventTypes() []event.EventType
	HandleEvent(ev event.GameEvent)
	Update()
}
