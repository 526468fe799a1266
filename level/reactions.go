package level

import (
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/engine"
	"github.com/lixenwraith/vi-missile/parameter"
)

// ReactionKind tags one recorded side effect
type ReactionKind uint8

const (
	ReactMonsterKilled ReactionKind = iota
	ReactMonsterHit
	ReactMonsterKnockback
	ReactMonsterResisted
	ReactCorpse
	ReactMinion
	ReactGolem
	ReactMonsterMoved
	ReactPlayerKilled
	ReactPlayerHit
	ReactPlayerBlocked
	ReactPlayerSpeech
	ReactPlayerRecalc
	ReactManaUsed
	ReactPlayerMoved
)

// Reaction is one side effect handed off by the missile engine
type Reaction struct {
	Kind  ReactionKind
	Actor int
	Other int // Attacker, killer, speech or spell depending on Kind
	Value int
	Tile  core.Point
}

// Reactions applies the minimal state changes a full game would and records every call
type Reactions struct {
	grid   *Grid
	roster *Roster
	Log    []Reaction
}

// NewReactions binds reactions to a grid and its roster
func NewReactions(grid *Grid, roster *Roster) *Reactions {
	return &Reactions{grid: grid, roster: roster}
}

func (r *Reactions) record(kind ReactionKind, actor, other, value int, tile core.Point) {
	r.Log = append(r.Log, Reaction{Kind: kind, Actor: actor, Other: other, Value: value, Tile: tile})
}

// Count returns the number of recorded reactions of kind
func (r *Reactions) Count(kind ReactionKind) int {
	n := 0
	for _, e := range r.Log {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops the recorded log
func (r *Reactions) Reset() {
	r.Log = r.Log[:0]
}

func (r *Reactions) KillMonster(m *component.Monster, killer int) {
	m.HitPoints = 0
	// Stone monsters stay petrified until the stone curse shatters them
	if m.Mode != component.MonsterPetrified {
		m.Mode = component.MonsterDeath
	}
	if r.grid.MonsterAt(m.Tile) == m.ID+1 {
		r.grid.SetMonsterAt(m.Tile, 0)
	}
	r.record(ReactMonsterKilled, m.ID, killer, 0, m.Tile)
}

func (r *Reactions) HitMonster(m *component.Monster, attacker, damage int) {
	if m.Mode != component.MonsterDeath {
		m.Mode = component.MonsterHit
	}
	r.record(ReactMonsterHit, m.ID, attacker, damage, m.Tile)
}

// KnockbackMonster pushes m one tile against its facing when the tile is free
func (r *Reactions) KnockbackMonster(m *component.Monster) {
	to := m.Tile.Step(m.Dir.Opposite())
	if r.grid.IsFree(to) {
		r.roster.moveMonster(m, to)
	}
	r.record(ReactMonsterKnockback, m.ID, 0, 0, m.Tile)
}

func (r *Reactions) MonsterResisted(m *component.Monster) {
	r.record(ReactMonsterResisted, m.ID, 0, 0, m.Tile)
}

func (r *Reactions) AddCorpse(tile core.Point, m *component.Monster) {
	r.record(ReactCorpse, m.ID, 0, 0, tile)
}

// SpawnMinion clones the parent's stats into a new monster on tile
func (r *Reactions) SpawnMinion(parent int, tile core.Point, dir core.Direction) bool {
	if !r.grid.IsFree(tile) {
		return false
	}
	src := r.roster.Monster(parent)
	m := &component.Monster{Tile: tile, Future: tile, Old: tile, Dir: dir, Mode: component.MonsterStand}
	if src != nil {
		m.MaxHitPoints = src.MaxHitPoints
		m.Level = src.Level
		m.Armor = src.Armor
		m.ToHit = src.ToHit
		m.MinDamage, m.MaxDamage = src.MinDamage, src.MaxDamage
		m.Class = src.Class
	}
	if m.MaxHitPoints == 0 {
		m.MaxHitPoints = 10 << parameter.DamageShift
	}
	m.HitPoints = m.MaxHitPoints
	id := r.roster.AddMonster(m)
	r.record(ReactMinion, id, parent, 0, tile)
	return true
}

// SpawnGolem builds the player's golem scaled by spell level and places it on tile
func (r *Reactions) SpawnGolem(player int, tile core.Point, spellLevel int) {
	p := r.roster.Player(player)
	if p == nil {
		return
	}
	hp := 2 * (320*spellLevel + p.MaxMana/3)
	g := &component.Monster{
		Tile:         tile,
		Future:       tile,
		Old:          tile,
		Mode:         component.MonsterStand,
		HitPoints:    hp,
		MaxHitPoints: hp,
		Armor:        25,
		ToHit:        5*(spellLevel+8) + 2*p.Level,
		MinDamage:    2 * (spellLevel + 4),
		MaxDamage:    2 * (spellLevel + 8),
		Species:      component.SpeciesGolem,
		Flags:        component.MonsterGolemFlag,
		Light:        component.NoLight,
	}
	r.roster.SetGolem(player, g)
	r.record(ReactGolem, player, spellLevel, hp, tile)
}

func (r *Reactions) MoveMonster(m *component.Monster, to core.Point) {
	r.roster.moveMonster(m, to)
	r.record(ReactMonsterMoved, m.ID, 0, 0, to)
}

func (r *Reactions) KillPlayer(p *component.Player, earflag bool) {
	p.Mode = component.PlayerDeath
	ear := 0
	if earflag {
		ear = 1
	}
	r.record(ReactPlayerKilled, p.ID, ear, 0, p.Tile)
}

func (r *Reactions) HitPlayer(p *component.Player, damage int) {
	p.Mode = component.PlayerGotHit
	r.record(ReactPlayerHit, p.ID, 0, damage, p.Tile)
}

func (r *Reactions) BlockPlayer(p *component.Player, dir core.Direction) {
	p.Mode = component.PlayerBlock
	p.Dir = dir
	r.record(ReactPlayerBlocked, p.ID, int(dir), 0, p.Tile)
}

func (r *Reactions) PlayerSpeech(p *component.Player, s engine.Speech) {
	r.record(ReactPlayerSpeech, p.ID, int(s), 0, p.Tile)
}

func (r *Reactions) RecalcPlayer(p *component.Player) {
	r.record(ReactPlayerRecalc, p.ID, 0, 0, p.Tile)
}

func (r *Reactions) UseMana(p *component.Player, spell component.Spell) {
	r.record(ReactManaUsed, p.ID, int(spell), 0, p.Tile)
}

func (r *Reactions) MovePlayer(p *component.Player, to core.Point) {
	r.roster.movePlayer(p, to)
	r.record(ReactPlayerMoved, p.ID, 0, 0, to)
}
