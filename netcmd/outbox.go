package netcmd

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-missile/event"
)

// Outbox collects framed network commands as the event router delivers them
// Take is safe to call from the transport goroutine
type Outbox struct {
	codec  *Codec
	log    zerolog.Logger
	mu     sync.Mutex
	frames [][]byte
	failed int
}

// NewOutbox frames routed commands with codec
func NewOutbox(codec *Codec, log zerolog.Logger) *Outbox {
	return &Outbox{codec: codec, log: log.With().Str("component", "netcmd").Logger()}
}

func (o *Outbox) EventTypes() []event.EventType {
	types := make([]event.EventType, 0, event.EventNetDisarm-event.EventNetDamage+1)
	for t := event.EventNetDamage; t <= event.EventNetDisarm; t++ {
		types = append(types, t)
	}
	return types
}

func (o *Outbox) HandleEvent(ev event.GameEvent) {
	b, err := o.codec.Encode(ev)
	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.failed++
		o.log.Warn().Err(err).Msg("Dropping network command")
		return
	}
	o.frames = append(o.frames, b)
}

// Take returns and clears the pending frames
func (o *Outbox) Take() [][]byte {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := o.frames
	o.frames = nil
	return out
}

// Pending returns the number of frames waiting
func (o *Outbox) Pending() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.frames)
}

// Failed returns the number of commands that could not be framed
func (o *Outbox) Failed() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.failed
}
