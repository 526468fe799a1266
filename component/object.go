package component

import "github.com/lixenwraith/vi-missile/core"

// Object is a dungeon object missiles interact with
type Object struct {
	ID              int
	Tile            core.Point
	Breakable       bool
	MissilePassable bool
	Shrine          bool
	Broken          bool
}

// BlocksMissiles reports whether the object stops projectiles
func (o *Object) BlocksMissiles() bool {
	return !o.MissilePassable
}

// TriggerKind is the destination of a level trigger
type TriggerKind uint8

const (
	TriggerOther TriggerKind = iota
	TriggerNextLevel
	TriggerPrevLevel
	TriggerTownWarp
	TriggerReturnLevel
)

// IsStairs reports whether warp may land next to the trigger
func (k TriggerKind) IsStairs() bool {
	return k != TriggerOther
}

// Trigger is a level transition tile
type Trigger struct {
	Tile core.Point
	Kind TriggerKind
}

// DungeonType is the tile set of the current level
type DungeonType uint8

const (
	DungeonTown DungeonType = iota
	DungeonCathedral
	DungeonCatacombs
	DungeonCaves
	DungeonHell
	DungeonNest
	DungeonCrypt
)
