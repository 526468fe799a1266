package netcmd

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-missile/event"
)

func TestOutbox_SubscribesNetCommands(t *testing.T) {
	o := NewOutbox(NewCodec(uuid.New()), zerolog.Nop())
	types := o.EventTypes()
	require.Len(t, types, 7)
	for _, et := range types {
		assert.True(t, et.IsNetCommand(), "type %d", et)
	}
}

func TestOutbox_FramesAndTakes(t *testing.T) {
	c := NewCodec(uuid.New())
	o := NewOutbox(c, zerolog.Nop())

	o.HandleEvent(event.GameEvent{Type: event.EventNetSetShield, Tick: 3, Payload: &event.NetPlayerPayload{Player: 1}})
	o.HandleEvent(event.GameEvent{Type: event.EventLevelClear})
	assert.Equal(t, 1, o.Pending())
	assert.Equal(t, 1, o.Failed())

	frames := o.Take()
	require.Len(t, frames, 1)
	assert.Zero(t, o.Pending())

	_, ev, err := c.Decode(frames[0], true)
	require.NoError(t, err)
	assert.Equal(t, event.EventNetSetShield, ev.Type)
	assert.Equal(t, int64(3), ev.Tick)
}
