// Package netcmd frames authoritative network commands for the transport
// The transport itself is out of scope, frames stop at bytes
package netcmd

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/vi-missile/event"
)

var (
	// ErrNotNetCommand is returned when a non-network event is framed
	ErrNotNetCommand = errors.New("not a network command")
	// ErrForeignSession is returned for frames stamped with another session id
	ErrForeignSession = errors.New("frame from another session")
)

// Envelope is the wire frame around one command
type Envelope struct {
	Session string             `msgpack:"session"`
	Seq     uint64             `msgpack:"seq"`
	Tick    int64              `msgpack:"tick"`
	Type    event.EventType    `msgpack:"type"`
	Payload msgpack.RawMessage `msgpack:"payload"`
}

// Codec stamps outgoing commands with the session id and a sequence number
type Codec struct {
	session uuid.UUID
	seq     uint64
}

// NewCodec creates a codec for session, a zero id draws a fresh random one
func NewCodec(session uuid.UUID) *Codec {
	if session == uuid.Nil {
		session = uuid.New()
	}
	return &Codec{session: session}
}

// Session returns the id written on every frame
func (c *Codec) Session() uuid.UUID {
	return c.session
}

// Encode frames a network command
func (c *Codec) Encode(ev event.GameEvent) ([]byte, error) {
	if !ev.Type.IsNetCommand() {
		return nil, fmt.Errorf("encode %s: %w", ev.Type, ErrNotNetCommand)
	}
	payload, err := msgpack.Marshal(ev.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", ev.Type, err)
	}
	c.seq++
	env := Envelope{
		Session: c.session.String(),
		Seq:     c.seq,
		Tick:    ev.Tick,
		Type:    ev.Type,
		Payload: payload,
	}
	b, err := msgpack.Marshal(&env)
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}
	return b, nil
}

// Decode unwraps a frame into an event with its typed payload
// Frames from other sessions are rejected when the codec is strict
func (c *Codec) Decode(b []byte, strict bool) (Envelope, event.GameEvent, error) {
	var env Envelope
	if err := msgpack.Unmarshal(b, &env); err != nil {
		return env, event.GameEvent{}, fmt.Errorf("decode envelope: %w", err)
	}
	id, err := uuid.Parse(env.Session)
	if err != nil {
		return env, event.GameEvent{}, fmt.Errorf("decode session %q: %w", env.Session, err)
	}
	if strict && id != c.session {
		return env, event.GameEvent{}, fmt.Errorf("session %s: %w", id, ErrForeignSession)
	}
	if !env.Type.IsNetCommand() {
		return env, event.GameEvent{}, fmt.Errorf("decode type %d: %w", env.Type, ErrNotNetCommand)
	}

	payload := event.NewPayload(env.Type)
	if payload == nil {
		return env, event.GameEvent{}, fmt.Errorf("decode type %d: no payload registered", env.Type)
	}
	if err := msgpack.Unmarshal(env.Payload, payload); err != nil {
		return env, event.GameEvent{}, fmt.Errorf("decode %s payload: %w", env.Type, err)
	}
	return env, event.GameEvent{Type: env.Type, Payload: payload, Tick: env.Tick}, nil
}

// Drain empties the queue, framing network commands and returning everything else untouched
func (c *Codec) Drain(q *event.EventQueue) (frames [][]byte, rest []event.GameEvent, err error) {
	for _, ev := range q.Consume() {
		if !ev.Type.IsNetCommand() {
			rest = append(rest, ev)
			continue
		}
		b, encErr := c.Encode(ev)
		if encErr != nil {
			err = errors.Join(err, encErr)
			continue
		}
		frames = append(frames, b)
	}
	return frames, rest, err
}
