package component

import "github.com/lixenwraith/vi-missile/core"

// Scratch is the per-family working state of a missile
// The set of variants is closed, each kind family owns exactly one
type Scratch interface {
	scratch()
}

// TrailState remembers the last tile a light was moved to
type TrailState struct {
	Last core.Point
}

// HomingState drives missiles that fly to a point then re-aim at the closest monster
type HomingState struct {
	Last  core.Point
	Dest  core.Point
	Phase int // 0 outbound, 1 arrived, 2 re-aimed
}

// TargetState carries a destination captured at spawn
type TargetState struct {
	Dest  core.Point
	Level int
}

// FadeState drives timed effects with a closing animation and growing light
type FadeState struct {
	FadeAt    int // Range at which the closing animation starts
	LightStep int
}

// GuardianState tracks the turret fade point, shot cooldown and light radius
type GuardianState struct {
	FadeAt   int
	Cooldown int
	Light    int
}

// ExplosionState steps the light radius table of a blast
type ExplosionState struct {
	LightStep int
	Element   Resist
}

// FireMoveState tracks a flame wave segment
type FireMoveState struct {
	Age       int
	LightStep int
	Last      core.Point
}

// WallGrowthState holds the two growth cursors of a wall controller
type WallGrowthState struct {
	A, B       core.Point
	DirA, DirB core.Direction
	DoneB      bool
}

// ApocalypseState is the scan cursor over the blast rectangle
type ApocalypseState struct {
	Row, RowEnd           int
	Col, ColEnd, ColStart int
}

// PetrifyState remembers the monster turned to stone and its previous mode
type PetrifyState struct {
	PrevMode MonsterMode
	Monster  int
}

// FlameState counts down to the visible flame
type FlameState struct {
	Delay int
}

// FlameControlState emits flames along a short line
type FlameControlState struct {
	Last  core.Point
	Count int
}

// ChargedBoltState is the wandering bolt path state
type ChargedBoltState struct {
	Rnd         int
	LightRadius int
	Dir         core.Direction
	Steps       int
}

// BoomState latches after the first hit
type BoomState struct {
	Done bool
}

// FacingState keeps a direction for a deferred spawn
type FacingState struct {
	Facing core.Direction
}

// RuneState is the kind spawned when the rune triggers
type RuneState struct {
	Payload Kind
}

// RageState stores the hit point penalty applied when blood boil ends
type RageState struct {
	Penalty int
}

func (*TrailState) scratch()        {}
func (*HomingState) scratch()       {}
func (*TargetState) scratch()       {}
func (*FadeState) scratch()         {}
func (*GuardianState) scratch()     {}
func (*ExplosionState) scratch()    {}
func (*FireMoveState) scratch()     {}
func (*WallGrowthState) scratch()   {}
func (*ApocalypseState) scratch()   {}
func (*PetrifyState) scratch()      {}
func (*FlameState) scratch()        {}
func (*FlameControlState) scratch() {}
func (*ChargedBoltState) scratch()  {}
func (*BoomState) scratch()         {}
func (*FacingState) scratch()       {}
func (*RuneState) scratch()         {}
func (*RageState) scratch()         {}

// StateOf returns the scratch variant of type T, replacing any other variant with a zero T
func StateOf[T any, P interface {
	*T
	Scratch
}](m *Missile) P {
	if s, ok := m.Scratch.(P); ok {
		return s
	}
	s := P(new(T))
	m.Scratch = s
	return s
}
