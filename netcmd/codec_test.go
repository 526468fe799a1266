package netcmd

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/event"
)

func TestEncodeDecode_Damage(t *testing.T) {
	c := NewCodec(uuid.Nil)
	require.NotEqual(t, uuid.Nil, c.Session())

	b, err := c.Encode(event.GameEvent{
		Type:    event.EventNetDamage,
		Tick:    42,
		Payload: &event.NetDamagePayload{Target: 2, Damage: 640, Resist: component.ResistFire},
	})
	require.NoError(t, err)

	env, ev, err := c.Decode(b, true)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), env.Seq)
	assert.Equal(t, int64(42), ev.Tick)
	assert.Equal(t, event.EventNetDamage, ev.Type)

	p, ok := ev.Payload.(*event.NetDamagePayload)
	require.True(t, ok)
	assert.Equal(t, 2, p.Target)
	assert.Equal(t, 640, p.Damage)
	assert.Equal(t, component.ResistFire, p.Resist)
}

func TestEncode_RejectsLocalEvents(t *testing.T) {
	c := NewCodec(uuid.New())
	_, err := c.Encode(event.GameEvent{Type: event.EventCursorRequest, Payload: &event.CursorRequestPayload{}})
	assert.ErrorIs(t, err, ErrNotNetCommand)
}

func TestDecode_ForeignSession(t *testing.T) {
	a := NewCodec(uuid.New())
	b := NewCodec(uuid.New())

	frame, err := a.Encode(event.GameEvent{Type: event.EventNetSetShield, Payload: &event.NetPlayerPayload{Player: 1}})
	require.NoError(t, err)

	_, _, err = b.Decode(frame, true)
	assert.ErrorIs(t, err, ErrForeignSession)

	_, ev, err := b.Decode(frame, false)
	require.NoError(t, err)
	assert.Equal(t, 1, ev.Payload.(*event.NetPlayerPayload).Player)
}

func TestDrain_SplitsCommands(t *testing.T) {
	q := event.NewEventQueue()
	em := &event.Emitter{Queue: q}
	em.DisarmAt(0, core.Point{X: 3, Y: 4})
	em.Cursor(0, event.CursorIdentify)
	em.SetReflect(0, 20)

	c := NewCodec(uuid.New())
	frames, rest, err := c.Drain(q)
	require.NoError(t, err)
	assert.Len(t, frames, 2)
	require.Len(t, rest, 1)
	assert.Equal(t, event.EventCursorRequest, rest[0].Type)

	env, ev, err := c.Decode(frames[0], true)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), env.Seq)
	assert.Equal(t, core.Point{X: 3, Y: 4}, ev.Payload.(*event.NetDisarmPayload).Tile)
}
