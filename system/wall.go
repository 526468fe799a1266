package system

import (
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/parameter"
	"github.com/lixenwraith/vi-missile/search"
)

// wallLight is the radius curve of a burning wall segment
var wallLight = [...]int{2, 3, 4, 5, 5, 6, 7, 8, 9, 10, 11, 12, 12}

// --- Firewall ---

func initFirewall(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	w := s.world
	ownerPlayer := m.Target != component.TargetPlayers && m.Source >= 0

	lvl := w.Level.Depth
	if p := w.Actors.Player(m.Source); ownerPlayer && p != nil {
		lvl = p.Level
	}
	m.Damage = (s.rndSum(10, 2) + 2 + lvl) << 3

	m.Range = 10
	if m.SpellLevel > 0 {
		m.Range *= m.SpellLevel + 1
	}
	if ownerPlayer {
		m.Range += s.spellDurationOf(m.Source) * m.Range / 128
	} else {
		m.Range += w.Level.Depth
	}
	m.Range *= 16
	m.Scratch = &component.FadeState{FadeAt: m.Range - m.Anim.Len}
}

// spellDurationOf reads the duration bonus of a player by index
func (s *MissileSystem) spellDurationOf(player int) int {
	if p := s.world.Actors.Player(player); player >= 0 && p != nil {
		return p.SpellDuration
	}
	return 0
}

func updateFirewall(s *MissileSystem, m *component.Missile) {
	m.Range--
	st := component.StateOf[component.FadeState](m)
	if m.Range == st.FadeAt {
		setFacing(m, 1)
		m.Anim.Frame = s.world.Rnd(11) + 1
	}
	if m.Range == m.Anim.Len-1 {
		setFacing(m, 0)
		m.Anim.Frame = 13
		m.Anim.Add = -1
	}
	s.CheckCollision(m, m.Damage, m.Damage, true, m.Position.Tile, true)
	if m.Range == 0 {
		m.Deleted = true
		s.releaseLight(m)
		return
	}
	if m.Anim.Facing != 0 && m.Anim.Add != -1 && st.LightStep < len(wallLight)-1 {
		s.stepLight(m, wallLight[:], &st.LightStep)
	}
}

// --- Lightning wall ---

func initLightningWall(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	m.Anim.Frame = s.world.Rnd(8) + 1
	m.Range = parameter.LightningWallRange * (m.SpellLevel + 1)
}

func updateLightningWall(s *MissileSystem, m *component.Missile) {
	m.Range--
	r := m.Range
	s.CheckCollision(m, m.Damage, m.Damage, true, m.Position.Tile, false)
	if m.HitActor {
		m.Range = r
	}
	expire(m)
}

// --- Wall controllers ---

func initWallControl(s *MissileSystem, m *component.Missile, args spawnArgs) {
	w := s.world
	start := m.Position.Start
	spread, ok := search.ClosestValid(args.dst, 0, parameter.SearchRadiusLanding, func(t core.Point) bool {
		return t != start && w.InBounds(t) && !w.Dungeon.IsWalkSolid(t) &&
			w.Dungeon.ObjectAt(t) == nil && w.LineClear(start, t)
	})
	if !ok {
		m.Deleted = true
		return
	}
	m.Scratch = &component.WallGrowthState{
		A: spread, B: spread,
		DirA: args.dir.Left().Left(),
		DirB: args.dir.Right().Right(),
	}
	m.Range = 7
	if m.Kind == component.KindLightningWallControl {
		s.useMana(m, component.SpellLightningWall)
	} else {
		s.useMana(m, component.SpellFirewall)
	}
}

// growWall places one segment at pos when the cursor can still advance to next
func (s *MissileSystem) growWall(m *component.Missile, pos, next core.Point, kind component.Kind, dmg int) bool {
	if s.missileSolid(pos) || !s.world.InBounds(next) {
		return false
	}
	s.Spawn(pos, pos, s.playerDir(m), kind, component.TargetBoth, m.Source, dmg, m.SpellLevel, m)
	return true
}

func (s *MissileSystem) updateWallControl(m *component.Missile, kind component.Kind, dmg int) {
	st := component.StateOf[component.WallGrowthState](m)
	if next := st.A.Step(st.DirA); !m.LimitReached && s.growWall(m, st.A, next, kind, dmg) {
		st.A = next
	} else {
		m.LimitReached = true
	}
	if next := st.B.Step(st.DirB); !st.DoneB && s.growWall(m, st.B, next, kind, dmg) {
		st.B = next
	} else {
		st.DoneB = true
	}
}

func updateFirewallControl(s *MissileSystem, m *component.Missile) {
	m.Range--
	if m.Range == 0 {
		m.Deleted = true
		return
	}
	s.updateWallControl(m, component.KindFirewall, 0)
}

func updateLightningWallControl(s *MissileSystem, m *component.Missile) {
	m.Range--
	if m.Range == 0 {
		m.Deleted = true
		return
	}
	lvl := 0
	if !m.IsTrap() {
		lvl = s.playerLevel(m, 0)
	}
	s.updateWallControl(m, component.KindLightningWall, 16*(s.rndSum(10, 2)+lvl+2))
}

// --- Fire ring ---

func initFireRing(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	s.useMana(m, component.SpellFireRing)
	m.Scratch = &component.TargetState{Dest: m.Position.Start}
	m.Range = 7
}

func updateFireRing(s *MissileSystem, m *component.Missile) {
	w := s.world
	m.Deleted = true
	lvl := w.Level.Depth
	if m.Target == component.TargetMonsters {
		lvl = s.playerLevel(m, lvl)
	}
	dmg := 16 * (s.rndSum(10, 2) + lvl + 2) / 2
	if m.LimitReached {
		return
	}

	center := component.StateOf[component.TargetState](m).Dest
	for _, d := range search.Ring(3) {
		t := center.Add(d)
		if !w.InBounds(t) || w.Dungeon.IsWalkSolid(t) || w.Dungeon.ObjectAt(t) != nil {
			continue
		}
		if !w.LineClear(m.Position.Tile, t) {
			continue
		}
		if w.Dungeon.IsMissileSolid(t) {
			m.LimitReached = true
			return
		}
		s.Spawn(t, t, core.South, component.KindFirewall, component.TargetBoth, m.Source, dmg, m.SpellLevel, m)
	}
}

// --- Flame wave ---

func initFireMove(s *MissileSystem, m *component.Missile, args spawnArgs) {
	m.Damage = s.world.Rnd(10) + s.playerLevel(m, s.world.Level.Depth) + 1
	s.updateVelocity(m, args.dst, parameter.SpeedBolt)
	m.Range = parameter.LightningWallRange
	m.Scratch = &component.FireMoveState{Last: m.Position.Start}
	shiftSouth(m)
}

func updateFireMove(s *MissileSystem, m *component.Missile) {
	st := component.StateOf[component.FireMoveState](m)
	m.Position.Tile = m.Position.Tile.Add(core.Displacement{DX: -1, DY: -1})
	m.Position.Offset.DY += 32

	st.Age++
	if st.Age == m.Anim.Len {
		setFacing(m, 1)
		m.Anim.Frame = s.world.Rnd(11) + 1
	}
	j := m.Range
	s.MoveAndCollide(m, m.Damage, m.Damage, false, false)
	if m.HitActor {
		m.Range = j
	}
	if m.Range == 0 {
		m.Deleted = true
		s.releaseLight(m)
	}
	if m.Anim.Facing != 0 || m.Range == 0 {
		s.trailLight(m, &st.Last, parameter.LightRadiusBolt)
	} else {
		s.stepLight(m, wallLight[:], &st.LightStep)
	}
	shiftSouth(m)
}

func initFlameWave(s *MissileSystem, m *component.Missile, args spawnArgs) {
	m.Scratch = &component.TargetState{Dest: args.dst}
	m.Range = 1
	m.Anim.Frame = 4
	s.useMana(m, component.SpellFlameWave)
}

func updateFlameWave(s *MissileSystem, m *component.Missile) {
	src := m.Position.Tile
	sd := core.GetDirection(src, component.StateOf[component.TargetState](m).Dest)
	dirA, dirB := sd.Left().Left(), sd.Right().Right()
	pdir := s.playerDir(m)

	na := src.Step(sd)
	if !s.missileSolid(na) {
		s.Spawn(na, na.Step(sd), pdir, component.KindFireMove, component.TargetMonsters, m.Source, 0, m.SpellLevel, m)
		a, b := na.Step(dirA), na.Step(dirB)
		stopA, stopB := false, false
		for j := 0; j < m.SpellLevel/2+2; j++ {
			if !stopA && !s.missileSolid(a) {
				s.Spawn(a, a.Step(sd), pdir, component.KindFireMove, component.TargetMonsters, m.Source, 0, m.SpellLevel, m)
				a = a.Step(dirA)
			} else {
				stopA = true
			}
			if !stopB && !s.missileSolid(b) {
				s.Spawn(b, b.Step(sd), pdir, component.KindFireMove, component.TargetMonsters, m.Source, 0, m.SpellLevel, m)
				b = b.Step(dirB)
			} else {
				stopB = true
			}
		}
	}
	m.Range--
	expire(m)
}
