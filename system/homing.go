package system

import (
	"github.com/lixenwraith/vi-missile/combat"
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/parameter"
	"github.com/lixenwraith/vi-missile/search"
)

// boneSpiritImpactFacing is the sprite group of the bone spirit burst
const boneSpiritImpactFacing = 8

// findClosestMonster returns the nearest standing monster reachable on foot from tile
func (s *MissileSystem) findClosestMonster(tile core.Point, radius int) (core.Point, bool) {
	w := s.world
	return search.ClosestValid(tile, 1, radius-1, func(t core.Point) bool {
		return w.InBounds(t) && w.Dungeon.MonsterAt(t) > 0 && !w.CheckBlock(tile, t)
	})
}

// launchHoming sends the missile at dst, it re-aims once it gets there
func (s *MissileSystem) launchHoming(m *component.Missile, args spawnArgs) {
	dst := destination(m, args)
	s.updateVelocity(m, dst, parameter.SpeedBolt)
	setFacing(m, int(core.GetDirection(m.Position.Start, dst)))
	m.Range = parameter.MissileFlightRange
	m.Scratch = &component.HomingState{Last: m.Position.Start, Dest: dst}
	s.addLight(m, parameter.LightRadiusBolt)
}

// steerHoming advances the homing phases, it returns the monster picked on re-aim
func (s *MissileSystem) steerHoming(m *component.Missile, st *component.HomingState) *component.Monster {
	tile := m.Position.Tile
	if st.Phase == 0 && tile == st.Dest {
		st.Phase = 1
	}
	if st.Phase != 1 {
		return nil
	}
	st.Phase = 2
	m.Range = parameter.LightningWallRange

	if target, ok := s.findClosestMonster(tile, parameter.SearchRadiusHoming); ok {
		setFacing(m, int(core.GetDirection(tile, target)))
		s.updateVelocity(m, target, parameter.SpeedBolt)
		return s.monsterOn(target)
	}
	dir := s.playerDir(m)
	setFacing(m, int(dir))
	s.updateVelocity(m, tile.Step(dir), parameter.SpeedBolt)
	return nil
}

// --- Elemental ---

func initElemental(s *MissileSystem, m *component.Missile, args spawnArgs) {
	lvl := s.playerLevel(m, s.world.Level.Depth)
	m.Damage = combat.ScaleSpellEffect(2*(lvl+s.rndSum(10, 2))+4, m.SpellLevel) / 2
	s.launchHoming(m, args)
	s.useMana(m, component.SpellElemental)
}

func updateElemental(s *MissileSystem, m *component.Missile) {
	m.Range--
	st := component.StateOf[component.HomingState](m)
	dam := m.Damage

	if m.Anim.Graphic == component.GraphicBigExplosion {
		tile := m.Position.Tile
		s.changeLight(m, m.Anim.Frame)
		origin := m.Position.Start
		if st.Phase == 2 {
			origin = st.Dest
		}
		for _, off := range blastOffsets {
			if t := tile.Add(off); !s.world.CheckBlock(origin, t) {
				s.CheckCollision(m, dam, dam, true, t, true)
			}
		}
		if m.Range == 0 {
			m.Deleted = true
			s.releaseLight(m)
		}
		return
	}

	s.MoveAndCollide(m, dam, dam, false, false)
	s.steerHoming(m, st)
	s.trailLight(m, &st.Last, parameter.LightRadiusBolt)
	if m.Range == 0 {
		setFacing(m, 0)
		setGraphic(m, component.GraphicBigExplosion)
		m.Range = m.Anim.Len - 1
		m.Position.Stop()
	}
}

// --- Bone spirit ---

func initBoneSpirit(s *MissileSystem, m *component.Missile, args spawnArgs) {
	m.Damage = 0
	s.launchHoming(m, args)
	if m.Target == component.TargetMonsters && m.ParentID == 0 {
		s.useMana(m, component.SpellBoneSpirit)
		if p := s.player(m); p != nil {
			s.combat.ApplyPlayerDamage(p, parameter.BoneSpiritSelfDamage, 0, 0, false)
		}
	}
}

func updateBoneSpirit(s *MissileSystem, m *component.Missile) {
	m.Range--
	if m.Anim.Facing == boneSpiritImpactFacing {
		s.changeLight(m, m.Anim.Frame)
		if m.Range == 0 {
			m.Deleted = true
			s.releaseLight(m)
		}
		s.put(m)
		return
	}

	st := component.StateOf[component.HomingState](m)
	s.MoveAndCollide(m, m.Damage, m.Damage, false, false)
	if mon := s.steerHoming(m, st); mon != nil {
		m.Damage = mon.HitPoints >> 7
	}
	s.trailLight(m, &st.Last, parameter.LightRadiusBolt)
	if m.Range == 0 {
		setFacing(m, boneSpiritImpactFacing)
		m.Position.Stop()
		m.Range = parameter.BoneSpiritImpact
	}
}
