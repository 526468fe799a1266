package event

import (
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
)

// MissileSpawnRequestPayload carries the Spawn arguments
type MissileSpawnRequestPayload struct {
	Origin     core.Point       `msgpack:"origin"`
	Dest       core.Point       `msgpack:"dest"`
	Dir        core.Direction   `msgpack:"dir"`
	Kind       component.Kind   `msgpack:"kind"`
	Target     component.Target `msgpack:"target"`
	Source     int              `msgpack:"source"`
	Damage     int              `msgpack:"damage"`
	SpellLevel int              `msgpack:"spell_level"`
	ParentID   uint64           `msgpack:"parent_id"`
}

// NetDamagePayload is damage dealt by the sender to another player
type NetDamagePayload struct {
	Target int              `msgpack:"target"`
	Damage int              `msgpack:"damage"` // 1/64 units
	Resist component.Resist `msgpack:"resist"`
}

// NetPortalPayload opens a town portal at a tile
type NetPortalPayload struct {
	Player   int                   `msgpack:"player"`
	Tile     core.Point            `msgpack:"tile"`
	Level    int                   `msgpack:"level"`
	Type     component.DungeonType `msgpack:"type"`
	SetLevel bool                  `msgpack:"set_level"`
}

// NetReflectPayload is the current reflect charge count
type NetReflectPayload struct {
	Player  int    `msgpack:"player"`
	Charges uint16 `msgpack:"charges"`
}

// NetPlayerPayload names the player a toggle applies to
type NetPlayerPayload struct {
	Player int `msgpack:"player"`
}

// NetWarpPayload names the portal owner the player travels through
type NetWarpPayload struct {
	Player int `msgpack:"player"`
	Portal int `msgpack:"portal"`
}

// NetDisarmPayload is the clicked trap tile
type NetDisarmPayload struct {
	Player int        `msgpack:"player"`
	Tile   core.Point `msgpack:"tile"`
}

// CursorKind is the targeting cursor a spell needs
type CursorKind uint8

const (
	CursorHealOther CursorKind = iota + 1
	CursorIdentify
	CursorRepair
	CursorRecharge
	CursorDisarm
	CursorResurrect
	CursorTelekinesis
)

// CursorRequestPayload asks the UI to enter a targeting mode
type CursorRequestPayload struct {
	Player int        `msgpack:"player"`
	Cursor CursorKind `msgpack:"cursor"`
}
