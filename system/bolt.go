package system

import (
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/parameter"
)

// boltBursts maps each bolt to the explosion left where it stops
var boltBursts = map[component.Kind]component.Kind{
	component.KindFirebolt:       component.KindExplosion,
	component.KindMagmaBall:      component.KindExplosion,
	component.KindFlare:          component.KindFlareExplosion,
	component.KindAcid:           component.KindAcidSplat,
	component.KindLichBolt:       component.KindExplosionOrange,
	component.KindPsychOrb:       component.KindExplosionBlue,
	component.KindNecromancerOrb: component.KindExplosionRed,
	component.KindArchLichBolt:   component.KindExplosionYellow,
	component.KindBoneDemonBolt:  component.KindExplosionBlueLarge,
}

// launchBolt aims a sixteen-facing bolt and lights it
func (s *MissileSystem) launchBolt(m *component.Missile, dst core.Point, speed int) {
	s.updateVelocity(m, dst, speed)
	setFacing(m, int(core.GetDirection16(m.Position.Start, dst)))
	m.Range = parameter.MissileFlightRange
	m.Scratch = &component.TrailState{Last: m.Position.Start}
	s.addLight(m, parameter.LightRadiusBolt)
}

func initFirebolt(s *MissileSystem, m *component.Missile, args spawnArgs) {
	dst := destination(m, args)
	speed := parameter.SpeedFirebolt
	if m.Target == component.TargetMonsters {
		speed = parameter.SpeedFireboltBase + min(2*m.SpellLevel, parameter.SpeedFireboltMax)
		if args.parent == nil || args.parent.Kind != component.KindGuardian {
			s.useMana(m, component.SpellFirebolt)
		}
	}
	s.launchBolt(m, dst, speed)
}

func initMagmaBall(s *MissileSystem, m *component.Missile, args spawnArgs) {
	s.updateVelocity(m, args.dst, parameter.SpeedBolt)
	// Leaves the caster's tile before the first collision check
	m.Position.Traveled = m.Position.Traveled.Add(m.Position.Velocity.Scale(3))
	s.updatePos(m)
	m.Range = parameter.MissileFlightRange
	m.Scratch = &component.TrailState{Last: m.Position.Start}
	s.addLight(m, parameter.LightRadiusBolt)
}

// flareGraphic tints a monster flare by caster species
func flareGraphic(sp component.Species) component.Graphic {
	switch sp {
	case component.SpeciesSnowWitch:
		return component.GraphicSnowWitchBolt
	case component.SpeciesHellSpawn:
		return component.GraphicHellSpawnBolt
	case component.SpeciesSoulBurner:
		return component.GraphicSoulBurnerBolt
	}
	return component.GraphicFlare
}

func initFlare(s *MissileSystem, m *component.Missile, args spawnArgs) {
	s.launchBolt(m, destination(m, args), parameter.SpeedBolt)
	if m.Target == component.TargetMonsters {
		s.useMana(m, component.SpellFlare)
		if p := s.player(m); p != nil {
			s.combat.ApplyPlayerDamage(p, parameter.FlareSelfDamage, 0, 0, false)
		}
	}
	if mon := s.monster(m); mon != nil {
		setGraphic(m, flareGraphic(mon.Species))
	}
}

func initAcid(s *MissileSystem, m *component.Missile, args spawnArgs) {
	s.updateVelocity(m, args.dst, parameter.SpeedBolt)
	setFacing(m, int(core.GetDirection16(m.Position.Start, args.dst)))
	m.Range = parameter.MissileFlightRange
	if mon := s.monster(m); mon != nil {
		m.Range = 5 * (mon.Intelligence + 4)
	}
	m.Scratch = &component.TrailState{Last: m.Position.Start}
	s.put(m)
}

// boltDamage is the per-hit damage of a flying bolt
func (s *MissileSystem) boltDamage(m *component.Missile) int {
	if p := s.player(m); p != nil {
		switch m.Kind {
		case component.KindFirebolt:
			return s.world.Rnd(10) + p.Magic/8 + m.SpellLevel + 1
		case component.KindFlare:
			return 3*m.SpellLevel - p.Magic/8 + p.Magic/2
		}
		return m.Damage
	}
	if mon := s.monster(m); mon != nil {
		return s.rollMonster(mon)
	}
	if m.Source >= 0 {
		return m.Damage
	}
	depth := s.world.Level.Depth
	return depth + s.world.Rnd(2*depth)
}

// updateBolt flies any single-target bolt and leaves its explosion behind
func updateBolt(s *MissileSystem, m *component.Missile) {
	m.Range--
	d := s.boltDamage(m)
	s.MoveAndCollide(m, d, d, true, true)

	st := component.StateOf[component.TrailState](m)
	if m.Range != 0 {
		s.trailLight(m, &st.Last, parameter.LightRadiusBolt)
		return
	}

	m.Deleted = true
	s.releaseLight(m)
	if burst, ok := boltBursts[m.Kind]; ok {
		tile := m.Position.Tile
		s.Spawn(tile, tile, core.Direction(m.Anim.Facing%8), burst, m.Target, m.Source, 0, 0, m)
	}
}

// --- Holy bolt ---

func initHolyBolt(s *MissileSystem, m *component.Missile, args spawnArgs) {
	dst := destination(m, args)
	speed := parameter.SpeedBolt
	if !m.IsTrap() {
		speed = min(2*m.SpellLevel+parameter.SpeedBolt, 63)
	}
	s.launchBolt(m, dst, speed)
	m.Damage = s.world.Rnd(10) + s.playerLevel(m, s.world.Level.Depth) + 9
	s.useMana(m, component.SpellHolyBolt)
}

func updateHolyBolt(s *MissileSystem, m *component.Missile) {
	m.Range--
	if m.Anim.Graphic == component.GraphicHolyExplosion {
		s.changeLight(m, m.Anim.Frame+7)
		expire(m)
		return
	}

	s.MoveAndCollide(m, m.Damage, m.Damage, true, true)
	if m.Range == 0 {
		setFacing(m, 0)
		setGraphic(m, component.GraphicHolyExplosion)
		m.Range = m.Anim.Len - 1
		m.Position.Stop()
		return
	}
	s.trailLight(m, &component.StateOf[component.TrailState](m).Last, parameter.LightRadiusBolt)
}

// --- Charged bolt ---

// chargedBoltPath is the wander offset cycled through every sixteen ticks
var chargedBoltPath = [16]int{-1, 0, 1, -1, 0, 1, -1, -1, 0, 0, 1, 1, 0, 1, -1, 0}

func (s *MissileSystem) launchChargedBolt(m *component.Missile, args spawnArgs) {
	dst := destination(m, args)
	m.Anim.Frame = s.world.Rnd(8) + 1
	s.addLight(m, parameter.LightRadiusChargedBolt)
	s.updateVelocity(m, dst, parameter.SpeedChargedBolt)
	m.Scratch = &component.ChargedBoltState{
		Rnd:         s.world.Rnd(15) + 1,
		LightRadius: parameter.LightRadiusChargedBolt,
		Dir:         args.dir,
	}
	m.Range = parameter.MissileFlightRange
}

func initChargedBolt(s *MissileSystem, m *component.Missile, args spawnArgs) {
	if p := s.player(m); p != nil {
		m.Damage = s.world.Rnd(p.Magic/4) + 1
	} else {
		m.Damage = 15
	}
	s.launchChargedBolt(m, args)
}

func initChargedBoltArrow(s *MissileSystem, m *component.Missile, args spawnArgs) {
	if m.Target != component.TargetMonsters {
		m.Damage = 15
	}
	s.launchChargedBolt(m, args)
}

func updateChargedBolt(s *MissileSystem, m *component.Missile) {
	m.Range--
	if m.Anim.Graphic != component.GraphicLightning {
		st := component.StateOf[component.ChargedBoltState](m)
		if st.Steps == 0 {
			dir := core.Direction((int(st.Dir) + chargedBoltPath[st.Rnd] + 8) & 7)
			st.Rnd = (st.Rnd + 1) & 15
			s.updateVelocity(m, m.Position.Tile.Step(dir), parameter.SpeedChargedBolt)
			st.Steps = 16
		} else {
			st.Steps--
		}

		m.HitActor = false
		s.MoveAndCollide(m, m.Damage, m.Damage, false, false)
		if m.HitActor {
			st.LightRadius = parameter.LightRadiusChargedHit
			setFacing(m, 0)
			m.Position.Offset = core.Displacement{}
			setGraphic(m, component.GraphicLightning)
			m.Range = m.Anim.Len
		}
		s.changeLight(m, st.LightRadius)
	}
	expire(m)
}
