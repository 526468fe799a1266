package engine

import (
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
)

// Dungeon is the tile grid the missiles fly over
// Occupant ids follow the grid convention: 0 empty, id+1 standing, -(id+1) moving in
type Dungeon interface {
	Bounds() core.Area
	IsWalkSolid(p core.Point) bool
	IsMissileSolid(p core.Point) bool
	ObjectAt(p core.Point) *component.Object
	BreakObject(o *component.Object, breaker int)
	MonsterAt(p core.Point) int
	SetMonsterAt(p core.Point, id int)
	PlayerAt(p core.Point) int
	SetMissileMark(p core.Point, on bool)
	MissileMarked(p core.Point) bool
	Triggers() []component.Trigger
}

// Actors resolves monster and player records by index
// Lookups return nil for unknown indices
type Actors interface {
	Monster(id int) *component.Monster
	Player(id int) *component.Player
	Players() []*component.Player
	LocalPlayer() int
}

// Speech is a player voice line
type Speech uint8

const (
	SpeechArghClang Speech = iota
	SpeechBloodBoilFail
	SpeechBloodBoil
)

// Reactions are the side effects combat and spells hand off to other subsystems
type Reactions interface {
	KillMonster(m *component.Monster, killer int)
	HitMonster(m *component.Monster, attacker, damage int)
	KnockbackMonster(m *component.Monster)
	MonsterResisted(m *component.Monster)
	AddCorpse(tile core.Point, m *component.Monster)
	SpawnMinion(parent int, tile core.Point, dir core.Direction) bool
	SpawnGolem(player int, tile core.Point, spellLevel int)
	MoveMonster(m *component.Monster, to core.Point)

	KillPlayer(p *component.Player, earflag bool)
	HitPlayer(p *component.Player, damage int)
	BlockPlayer(p *component.Player, dir core.Direction)
	PlayerSpeech(p *component.Player, s Speech)
	RecalcPlayer(p *component.Player)
	UseMana(p *component.Player, spell component.Spell)
	MovePlayer(p *component.Player, to core.Point)
}

// Lighting owns dynamic light handles
type Lighting interface {
	Add(tile core.Point, radius int) component.LightHandle
	Change(h component.LightHandle, tile core.Point, radius int)
	Move(h component.LightHandle, tile core.Point)
	SetOffset(h component.LightHandle, offset core.Displacement)
	Remove(h component.LightHandle)
}

// Sound plays an effect at a tile
type Sound interface {
	PlayAt(s core.SoundType, tile core.Point)
}

// NopSound discards every effect
type NopSound struct{}

func (NopSound) PlayAt(core.SoundType, core.Point) {}
