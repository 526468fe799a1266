// FILE: component/missile.go
package component

import (
	"github.com/lixenwraith/vi-missile/core"
)

// Target selects which actors a missile can damage
type Target uint8

const (
	TargetMonsters Target = iota // Cast by a player
	TargetPlayers                // Cast by a monster
	TargetBoth                   // Traps, runes, walls
)

// SourceTrap is the Source value of environment-owned missiles
const SourceTrap = -1

// LightHandle identifies a dynamic light owned by a missile or actor
type LightHandle int

// NoLight is the handle sentinel for "no light held"
const NoLight LightHandle = -1

// Position is the fixed-point flight state
// Velocity and Traveled are Q16.16 screen pixels, Offset is whole pixels
type Position struct {
	Tile     core.Point
	Start    core.Point
	Offset   core.Displacement
	Velocity core.Displacement
	Traveled core.Displacement
}

// Stop zeroes the velocity, position is kept
func (p *Position) Stop() {
	p.Velocity = core.Displacement{}
}

// Animation is the sprite playback state
type Animation struct {
	Graphic     Graphic
	Facing      int // Sprite group, direction or phase depending on graphic
	Frame       int // 1-based
	Delay       int
	Count       int
	Len         int
	Add         int // +1 or -1
	NotAnimated bool
}

// Missile is a transient projectile, spell effect or area entity
type Missile struct {
	ID       uint64
	Kind     Kind
	Target   Target
	Source   int    // Player or monster index, SourceTrap for environment
	ParentID uint64 // Weak back-reference, 0 for none

	Position          Position
	LastCollisionHash int

	Range    int // Remaining lifetime in ticks, zero means expire
	Distance int // Ticks flown, feeds hit chance

	Anim       Animation
	Damage     int
	SpellLevel int
	Scratch    Scratch

	Deleted               bool
	PreDraw               bool
	HitActor              bool // Latched by an actor hit, cleared when a static tile blocks
	DontDeleteOnCollision bool
	LimitReached          bool
	LightNeeded           bool
	Visible               bool

	Light         LightHandle
	LightBorrowed bool // Light lent by a monster, handed back on removal
	UniqueTint    int  // Unique monster palette index + 1, 0 for none
}

// IsTrap reports whether the missile is owned by the environment
func (m *Missile) IsTrap() bool {
	return m.Source == SourceTrap
}

// Info returns the static metadata of the missile kind
func (m *Missile) Info() *KindInfo {
	return InfoOf(m.Kind)
}
