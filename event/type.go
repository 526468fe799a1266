package event

// EventType represents the type of simulation event
type EventType int

const (
	// === Engine Event ===

	// EventLevelClear drops every live missile on level change
	// Trigger: Level loader, sandbox reset
	// Consumer: MissileSystem | Payload: nil
	EventLevelClear EventType = iota

	// === Missile Event ===

	// EventMissileSpawnRequest requests a missile from outside the tick
	// Trigger: Spell casting, monster AI, trap triggers, sandbox input
	// Consumer: MissileSystem | Payload: *MissileSpawnRequestPayload
	EventMissileSpawnRequest

	// === Network Command ===
	// Pushed only by the authoritative peer, consumed by the transport

	// EventNetDamage applies player-versus-player damage on the remote target
	// Trigger: Combat resolver on a local player's hit | Payload: *NetDamagePayload
	EventNetDamage EventType = iota + 100 // Offset keeps wire ids stable

	// EventNetActivatePortal opens a town portal for all peers
	// Trigger: Town portal initializer | Payload: *NetPortalPayload
	EventNetActivatePortal

	// EventNetSetReflect announces the reflect charge count
	// Trigger: Reflect initializer | Payload: *NetReflectPayload
	EventNetSetReflect

	// EventNetSetShield announces an active mana shield
	// Trigger: Mana shield initializer | Payload: *NetPlayerPayload
	EventNetSetShield

	// EventNetRemoveShield announces the mana shield dropping
	// Trigger: Damage routing, per-tick shield check | Payload: *NetPlayerPayload
	EventNetRemoveShield

	// EventNetWarp moves the local player through a portal
	// Trigger: Town and red portal update | Payload: *NetWarpPayload
	EventNetWarp

	// EventNetDisarm disarms the trap at a tile
	// Trigger: Disarm initializer | Payload: *NetDisarmPayload
	EventNetDisarm

	// === UI Request ===

	// EventCursorRequest asks the UI for a targeting cursor
	// Trigger: Cursor-type instant spells | Consumer: UI | Payload: *CursorRequestPayload
	EventCursorRequest EventType = iota + 200
)

// IsNetCommand reports whether the event is an authoritative network command
func (t EventType) IsNetCommand() bool {
	return t >= EventNetDamage && t <= EventNetDisarm
}

// GameEvent represents a single simulation event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64
}
