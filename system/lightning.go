package system

import (
	"github.com/lixenwraith/vi-missile/combat"
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/parameter"
	"github.com/lixenwraith/vi-missile/search"
)

// --- Lightning control ---

func initLightningControl(s *MissileSystem, m *component.Missile, args spawnArgs) {
	if m.Damage == 0 {
		s.useMana(m, component.SpellLightning)
	}
	m.Scratch = &component.TrailState{Last: m.Position.Start}
	s.updateVelocity(m, args.dst, parameter.SpeedLightningCtrl)
	m.Anim.Frame = s.world.Rnd(8) + 1
	m.Range = parameter.MissileFlightRange
}

func updateLightningControl(s *MissileSystem, m *component.Missile) {
	var dam int
	switch {
	case m.IsTrap():
		depth := s.world.Level.Depth
		dam = s.world.Rnd(depth) + 2*depth
	case m.Target == component.TargetMonsters:
		dam = s.world.Rnd(2) + s.world.Rnd(s.playerLevel(m, 1)) + 2
	default:
		if mon := s.world.Actors.Monster(m.Source); mon != nil {
			dam = 2 * s.rollMonster(mon)
		}
	}
	s.spawnLightning(m, dam<<parameter.DamageShift)
}

// lightningChild is the strike a control leaves along its path
func (s *MissileSystem) lightningChild(m *component.Missile) component.Kind {
	if m.Kind == component.KindLightningControlThin {
		return component.KindLightningThin
	}
	if mon := s.monster(m); mon != nil && mon.Species == component.SpeciesStorm {
		return component.KindLightningThin
	}
	return component.KindLightning
}

// spawnLightning flies a lightning control and drops a strike on every new tile
func (s *MissileSystem) spawnLightning(m *component.Missile, dam int) {
	m.Range--
	if s.travel(m, s.missileSolid) {
		m.Range = 0
	}

	tile := m.Position.Tile
	st := component.StateOf[component.TrailState](m)
	if !s.missileSolid(tile) {
		if tile != st.Last {
			s.Spawn(tile, m.Position.Start, core.South, s.lightningChild(m), m.Target, m.Source, dam, m.SpellLevel, m)
			st.Last = tile
		}
	} else {
		m.Range = 0
	}
	expire(m)
}

// --- Lightning strike ---

func initLightning(s *MissileSystem, m *component.Missile, args spawnArgs) {
	m.Position.Start = args.dst
	if p := args.parent; p != nil {
		m.Position.Offset = p.Position.Offset
	}
	m.Anim.Frame = s.world.Rnd(8) + 1

	switch {
	case m.Target == component.TargetPlayers || m.IsTrap():
		m.Range = 10
		if m.IsTrap() {
			m.Range = 8
		} else if mon := s.world.Actors.Monster(m.Source); mon != nil && mon.Species == component.SpeciesFamiliar {
			m.Range = 8
		}
	default:
		m.Range = m.SpellLevel/2 + 6
	}
	s.addLight(m, parameter.LightRadiusLightning)
}

func updateLightning(s *MissileSystem, m *component.Missile) {
	m.Range--
	j := m.Range
	if m.Position.Tile != m.Position.Start {
		s.CheckCollision(m, m.Damage, m.Damage, true, m.Position.Tile, false)
	}
	if m.HitActor {
		m.Range = j
	}
	if m.Range == 0 {
		m.Deleted = true
		s.releaseLight(m)
	}
}

// --- Lightball ---

func initLightball(s *MissileSystem, m *component.Missile, args spawnArgs) {
	s.updateVelocity(m, args.dst, parameter.SpeedBolt)
	m.Anim.Frame = s.world.Rnd(8) + 1
	m.Range = parameter.LightningWallRange
	dest := m.Position.Start
	if p := s.world.Actors.Player(m.Source); m.Source >= 0 && p != nil {
		dest = p.Tile
	}
	m.Scratch = &component.TargetState{Dest: dest}
}

func updateLightball(s *MissileSystem, m *component.Missile) {
	dest := component.StateOf[component.TargetState](m).Dest
	m.Range--
	j := m.Range
	s.MoveAndCollide(m, m.Damage, m.Damage, false, false)
	if m.HitActor {
		m.Range = j
	}
	// Shrines under the caster do not absorb their own nova
	if o := s.world.Dungeon.ObjectAt(m.Position.Tile); o != nil && o.Shrine && o.Tile == dest {
		m.Range = j
	}
	expire(m)
}

// --- Chain lightning ---

func initChainLightning(s *MissileSystem, m *component.Missile, args spawnArgs) {
	m.Scratch = &component.TargetState{Dest: args.dst}
	m.Range = 1
	s.useMana(m, component.SpellChainLightning)
}

func updateChainLightning(s *MissileSystem, m *component.Missile) {
	pos := m.Position.Tile
	dst := component.StateOf[component.TargetState](m).Dest
	s.Spawn(pos, dst, core.GetDirection(pos, dst), component.KindLightningControl,
		component.TargetMonsters, m.Source, 1, m.SpellLevel, m)

	rad := min(m.SpellLevel+3, parameter.SearchRadiusChainMax)
	for r := 1; r < rad; r++ {
		for _, d := range search.Ring(r) {
			t := pos.Add(d)
			if t == dst || !s.world.InBounds(t) || s.world.Dungeon.MonsterAt(t) <= 0 {
				continue
			}
			s.Spawn(pos, t, core.GetDirection(pos, t), component.KindLightningControl,
				component.TargetMonsters, m.Source, 1, m.SpellLevel, m)
		}
	}
	m.Range--
	expire(m)
}

// --- Nova ---

func initNova(s *MissileSystem, m *component.Missile, args spawnArgs) {
	m.Scratch = &component.TargetState{Dest: args.dst}
	if m.IsTrap() {
		m.Damage = s.world.Level.Depth/2 + s.rndSum(3, 3)
	} else {
		dmg := s.rndSum(6, 5) + s.playerLevel(m, s.world.Level.Depth) + 5
		m.Damage = combat.ScaleSpellEffect(dmg/2, m.SpellLevel)
		if m.Kind == component.KindImmolation {
			s.useMana(m, component.SpellImmolation)
		} else {
			s.useMana(m, component.SpellNova)
		}
	}
	m.Range = 1
}

// novaRing spawns one child per distinct ray point of the fan
func (s *MissileSystem) novaRing(m *component.Missile, kind component.Kind) {
	dir := core.South
	target := component.TargetPlayers
	if !m.IsTrap() {
		if p := s.world.Actors.Player(m.Source); p != nil {
			dir = p.Dir
		}
		target = component.TargetMonsters
	}
	src := m.Position.Tile
	for _, off := range search.FanOut(3) {
		s.Spawn(src, src.Add(off), dir, kind, target, m.Source, m.Damage, m.SpellLevel, m)
	}
	m.Range--
	expire(m)
}

func updateNova(s *MissileSystem, m *component.Missile) {
	s.novaRing(m, component.KindLightball)
}

func updateImmolation(s *MissileSystem, m *component.Missile) {
	s.novaRing(m, component.KindFireNova)
}
