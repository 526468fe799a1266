package system

import (
	"github.com/lixenwraith/vi-missile/combat"
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/parameter"
)

// arrowSpeed is the launch speed of a player arrow
// Random velocity bows replace the base, class and attack speed add on top
func (s *MissileSystem) arrowSpeed(m *component.Missile) int {
	speed := parameter.SpeedArrow
	if m.Target != component.TargetMonsters {
		return speed
	}
	p := s.player(m)
	if p == nil {
		return speed
	}
	if p.HasEffect(component.EffectRandomArrowVelocity) {
		speed = s.world.Rnd(parameter.SpeedRandomArrowRnd) + parameter.SpeedRandomArrowMin
	}
	return speed + classArrowBonus(p) + p.AttackSpeedBonus()
}

func classArrowBonus(p *component.Player) int {
	switch p.Class {
	case component.ClassRogue:
		return (p.Level - 1) / 4
	case component.ClassWarrior, component.ClassBard:
		return (p.Level - 1) / 8
	}
	return 0
}

// arrowDamage is the physical damage range of the shooter
func (s *MissileSystem) arrowDamage(m *component.Missile) (int, int) {
	if p := s.player(m); p != nil {
		return p.MinDamage, p.MaxDamage
	}
	if mon := s.monster(m); mon != nil {
		return mon.MinDamage, mon.MaxDamage
	}
	depth := s.world.Level.Depth
	return depth, 2 * depth
}

func initArrow(s *MissileSystem, m *component.Missile, args spawnArgs) {
	dst := destination(m, args)
	s.updateVelocity(m, dst, s.arrowSpeed(m))
	m.Anim.Frame = int(core.GetDirection16(m.Position.Start, dst)) + 1
	m.Range = parameter.MissileFlightRange
}

func updateArrow(s *MissileSystem, m *component.Missile) {
	m.Range--
	m.Distance++
	lo, hi := s.arrowDamage(m)
	s.MoveAndCollide(m, lo, hi, true, false)
	expire(m)
}

// --- Elemental arrows ---

func initElementalArrow(s *MissileSystem, m *component.Missile, args spawnArgs) {
	dst := destination(m, args)
	s.updateVelocity(m, dst, s.arrowSpeed(m))
	setFacing(m, int(core.GetDirection16(m.Position.Start, dst)))
	m.Range = parameter.MissileFlightRange
	m.Scratch = &component.TrailState{Last: m.Position.Start}
	s.addLight(m, parameter.LightRadiusArrow)
}

// elementalArrowBurst returns the blast graphic and element of a fire or lightning arrow
func elementalArrowBurst(k component.Kind) (component.Graphic, component.Resist) {
	if k == component.KindLightningArrow {
		return component.GraphicMiniLightning, component.ResistLightning
	}
	return component.GraphicFireArrowExplosion, component.ResistFire
}

// elementalDamage is the element damage range carried by the arrow
func (s *MissileSystem) elementalDamage(m *component.Missile) (int, int) {
	if p := s.player(m); p != nil {
		if m.Kind == component.KindLightningArrow {
			return p.LightningMinDamage, p.LightningMaxDamage
		}
		return p.FireMinDamage, p.FireMaxDamage
	}
	if mon := s.monster(m); mon != nil {
		return mon.MinDamage, mon.MaxDamage
	}
	depth := s.world.Level.Depth
	return s.world.Rnd(10) + 1 + depth, s.world.Rnd(10) + 1 + 2*depth
}

func updateElementalArrow(s *MissileSystem, m *component.Missile) {
	m.Range--
	burst, element := elementalArrowBurst(m.Kind)

	if m.Anim.Graphic == burst {
		s.changeLight(m, m.Anim.Frame+parameter.LightRadiusArrow)
		lo, hi := s.elementalDamage(m)
		a := combat.AttackOf(m, lo, hi, false)
		a.Class = component.ClassMagic
		a.Resist = element
		s.collide(m, a, m.Position.Tile, true)
	} else {
		m.Distance++
		lo, hi := s.arrowDamage(m)
		a := combat.AttackOf(m, lo, hi, false)
		a.Resist = component.ResistNone
		s.moveAttack(m, a, true, false)

		if m.Range == 0 {
			// Blast one step back from where the flight ended
			m.Position.Traveled = m.Position.Traveled.Sub(m.Position.Velocity)
			s.updatePos(m)
			setFacing(m, 0)
			setGraphic(m, burst)
			m.Range = m.Anim.Len - 1
		} else {
			s.trailLight(m, &component.StateOf[component.TrailState](m).Last, parameter.LightRadiusArrow)
		}
	}
	expire(m)
}

// --- Special arrows ---

func initSpecialArrow(s *MissileSystem, m *component.Missile, args spawnArgs) {
	bonus := 0
	if p := s.player(m); p != nil {
		bonus = classArrowBonus(p) + p.AttackSpeedBonus()
	}
	m.Range = 1
	m.Scratch = &component.TargetState{Dest: args.dst, Level: bonus}
}

// specialArrowKind picks the projectile an elemental bow fires
func specialArrowKind(p *component.Player) component.Kind {
	switch p.LightningMinDamage {
	case 0:
		return component.KindFireNova
	case 1:
		return component.KindLightningTrailArrow
	case 2:
		return component.KindChargedBoltArrow
	case 3:
		return component.KindHolyBoltArrow
	}
	return component.KindArrow
}

func updateSpecialArrow(s *MissileSystem, m *component.Missile) {
	st := component.StateOf[component.TargetState](m)
	kind := component.KindArrow
	dir := core.South
	target := component.TargetPlayers
	if p := s.world.Actors.Player(m.Source); m.Source >= 0 && p != nil {
		kind = specialArrowKind(p)
		dir = p.Dir
		target = component.TargetMonsters
	}

	src := m.Position.Tile
	s.Spawn(src, st.Dest, dir, kind, target, m.Source, m.Damage, st.Level, m)
	if kind == component.KindChargedBoltArrow {
		s.Spawn(src, st.Dest, dir, kind, target, m.Source, m.Damage, st.Level, m)
		s.Spawn(src, st.Dest, dir, kind, target, m.Source, m.Damage, st.Level, m)
	}

	m.Range--
	expire(m)
}

// --- Lightning trail arrow ---

func initLightningTrailArrow(s *MissileSystem, m *component.Missile, args spawnArgs) {
	s.updateVelocity(m, destination(m, args), parameter.SpeedLightningCtrl)
	m.Anim.Frame = s.world.Rnd(8) + 1
	m.Range = parameter.LightningWallRange
	m.Damage <<= parameter.DamageShift
	last := m.Position.Start
	if p := s.player(m); p != nil {
		last = p.Tile
	}
	m.Scratch = &component.TrailState{Last: last}
}

func updateLightningTrailArrow(s *MissileSystem, m *component.Missile) {
	s.spawnLightning(m, m.Damage)
}
