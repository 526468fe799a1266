package event

import (
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
)

// Emitter stamps events with the current tick before pushing them
// A nil Emitter or one without a queue drops everything, tests use this for silent worlds
type Emitter struct {
	Queue *EventQueue
	Tick  func() int64
}

func (e *Emitter) push(et EventType, payload any) {
	if e == nil || e.Queue == nil {
		return
	}
	var tick int64
	if e.Tick != nil {
		tick = e.Tick()
	}
	e.Queue.Push(GameEvent{Type: et, Payload: payload, Tick: tick})
}

// Damage sends player-versus-player damage
func (e *Emitter) Damage(target, damage int, resist component.Resist) {
	e.push(EventNetDamage, &NetDamagePayload{Target: target, Damage: damage, Resist: resist})
}

// ActivatePortal announces a town portal
func (e *Emitter) ActivatePortal(player int, tile core.Point, level int, typ component.DungeonType, setLevel bool) {
	e.push(EventNetActivatePortal, &NetPortalPayload{Player: player, Tile: tile, Level: level, Type: typ, SetLevel: setLevel})
}

// SetReflect announces reflect charges
func (e *Emitter) SetReflect(player int, charges uint16) {
	e.push(EventNetSetReflect, &NetReflectPayload{Player: player, Charges: charges})
}

// SetShield announces an active mana shield
func (e *Emitter) SetShield(player int) {
	e.push(EventNetSetShield, &NetPlayerPayload{Player: player})
}

// RemoveShield announces the mana shield dropping
func (e *Emitter) RemoveShield(player int) {
	e.push(EventNetRemoveShield, &NetPlayerPayload{Player: player})
}

// Warp sends the local player through a portal
func (e *Emitter) Warp(player, portal int) {
	e.push(EventNetWarp, &NetWarpPayload{Player: player, Portal: portal})
}

// DisarmAt disarms the trap at a tile
func (e *Emitter) DisarmAt(player int, tile core.Point) {
	e.push(EventNetDisarm, &NetDisarmPayload{Player: player, Tile: tile})
}

// Cursor asks the UI for a targeting cursor
func (e *Emitter) Cursor(player int, cursor CursorKind) {
	e.push(EventCursorRequest, &CursorRequestPayload{Player: player, Cursor: cursor})
}

// SpawnRequest queues a missile spawn for the next tick
func (e *Emitter) SpawnRequest(p MissileSpawnRequestPayload) {
	e.push(EventMissileSpawnRequest, &p)
}

// LevelClear queues a registry reset
func (e *Emitter) LevelClear() {
	e.push(EventLevelClear, nil)
}
