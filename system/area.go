package system

import (
	"github.com/lixenwraith/vi-missile/combat"
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/parameter"
	"github.com/lixenwraith/vi-missile/search"
)

// Flash covers the caster's row and the one below, the back flash the row above
var (
	flashOffsets = []core.Displacement{
		{DX: -1, DY: 0}, {DX: 0, DY: 0}, {DX: 1, DY: 0},
		{DX: -1, DY: 1}, {DX: 0, DY: 1}, {DX: 1, DY: 1},
	}
	flashBackOffsets = []core.Displacement{
		{DX: -1, DY: -1}, {DX: 0, DY: -1}, {DX: 1, DY: -1},
	}
)

const flashRange = 19

// --- Flash ---

func initFlash(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	switch {
	case m.IsTrap():
		m.Damage = s.world.Level.Depth / 2
	case m.Target == component.TargetMonsters:
		lvl := s.playerLevel(m, 1)
		dmg := combat.ScaleSpellEffect(s.rndSum(20, lvl+1)+lvl+1, m.SpellLevel)
		m.Damage = dmg + dmg/2
		s.useMana(m, component.SpellFlash)
	default:
		if mon := s.world.Actors.Monster(m.Source); mon != nil {
			m.Damage = mon.Level * 2
		}
	}
	m.Range = flashRange
}

func initFlashBack(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	if m.Target == component.TargetMonsters {
		if m.IsTrap() {
			m.Damage = s.world.Level.Depth / 2
		} else {
			dmg := s.playerLevel(m, 1) + 1
			dmg += s.rndSum(20, dmg)
			dmg = combat.ScaleSpellEffect(dmg, m.SpellLevel)
			m.Damage = dmg + dmg/2
		}
	}
	m.PreDraw = true
	m.Range = flashRange
}

func updateFlash(s *MissileSystem, m *component.Missile) {
	var caster *component.Player
	if m.Target == component.TargetMonsters && !m.IsTrap() {
		caster = s.player(m)
	}
	if caster != nil {
		caster.Invincible = true
	}

	offsets := flashOffsets
	if m.Kind == component.KindFlashBack {
		offsets = flashBackOffsets
	}
	m.Range--
	for _, off := range offsets {
		s.CheckCollision(m, m.Damage, m.Damage, true, m.Position.Tile.Add(off), true)
	}

	if m.Range == 0 {
		m.Deleted = true
		if caster != nil {
			caster.Invincible = false
		}
	}
}

// --- Guardian ---

func initGuardian(s *MissileSystem, m *component.Missile, args spawnArgs) {
	w := s.world
	p := s.player(m)
	if p == nil {
		m.Deleted = true
		return
	}
	m.Damage = combat.ScaleSpellEffect(w.Rnd(10)+p.Level/2+1, m.SpellLevel)

	start := m.Position.Start
	tile, ok := search.ClosestValid(args.dst, 0, parameter.SearchRadiusLanding, func(t core.Point) bool {
		if !w.InBounds(t) || w.Dungeon.MonsterAt(t) != 0 || w.Dungeon.ObjectAt(t) != nil || w.Dungeon.MissileMarked(t) {
			return false
		}
		return !w.Dungeon.IsWalkSolid(t) && !w.Dungeon.IsMissileSolid(t) && w.LineClear(start, t)
	})
	if !ok {
		m.Deleted = true
		return
	}

	s.useMana(m, component.SpellGuardian)
	m.Position.Tile = tile
	m.Position.Start = tile
	s.addLight(m, 1)

	r := m.SpellLevel + p.Level/2
	r += r * p.SpellDuration / 128
	r = min(r, parameter.GuardianMaxRange) << 4
	m.Range = max(r, parameter.GuardianMaxRange)
	m.Scratch = &component.GuardianState{FadeAt: m.Range - m.Anim.Len, Light: 1}
}

// guardianTryFireAt shoots a firebolt at a living monster standing in clear sight
func (s *MissileSystem) guardianTryFireAt(m *component.Missile, st *component.GuardianState, target core.Point) bool {
	w := s.world
	pos := m.Position.Tile
	if !w.InBounds(target) || !w.LineClear(pos, target) {
		return false
	}
	mid := w.Dungeon.MonsterAt(target) - 1
	if mid < 0 {
		return false
	}
	mon := w.Actors.Monster(mid)
	if mon == nil || mon.Species == component.SpeciesGolem || !mon.IsAlive() || mon.Talking {
		return false
	}
	spl := combat.SpellLevel(w, m.Source, component.SpellFirebolt)
	s.Spawn(pos, target, core.GetDirection(pos, target), component.KindFirebolt,
		component.TargetMonsters, m.Source, m.Damage, spl, m)
	setFacing(m, 2)
	st.Cooldown = 3
	return true
}

func updateGuardian(s *MissileSystem, m *component.Missile) {
	st := component.StateOf[component.GuardianState](m)
	m.Range--
	if st.Cooldown > 0 {
		st.Cooldown--
	}
	if m.Range == st.FadeAt || (m.Anim.Facing == 2 && st.Cooldown == 0) {
		setFacing(m, 1)
	}

	if m.Range%16 == 0 {
		pos := m.Position.Tile
		search.RayScan(6, func(d core.Displacement) bool {
			return s.guardianTryFireAt(m, st, pos.Add(d))
		})
	}

	if m.Range == 14 {
		setFacing(m, 0)
		m.Anim.Frame = 15
		m.Anim.Add = -1
	}
	st.Light += m.Anim.Add
	if st.Light > parameter.LightRadiusGuardianMax {
		st.Light = parameter.LightRadiusGuardianMax
	} else if st.Light > 0 {
		s.changeLight(m, st.Light)
	}
	if m.Range == 0 {
		m.Deleted = true
		s.releaseLight(m)
	}
}

// --- Apocalypse ---

func initApocalypse(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	b := s.world.Dungeon.Bounds()
	start := m.Position.Start
	st := &component.ApocalypseState{
		Row:    max(start.Y-8, b.Y+1),
		RowEnd: min(start.Y+8, b.Y+b.Height-1),
		Col:    max(start.X-8, b.X+1),
		ColEnd: min(start.X+8, b.X+b.Width-1),
	}
	st.ColStart = st.Col
	m.Scratch = st

	lvl := s.playerLevel(m, s.world.Level.Depth)
	m.Damage = s.rndSum(6, lvl) + lvl
	m.Range = parameter.LightningWallRange
	s.useMana(m, component.SpellApocalypse)
}

// updateApocalypse drops at most one boom per tick, resuming the scan where it stopped
func updateApocalypse(s *MissileSystem, m *component.Missile) {
	w := s.world
	st := component.StateOf[component.ApocalypseState](m)
	dir := s.playerDir(m)

	for ; st.Row < st.RowEnd; st.Row++ {
		for ; st.Col < st.ColEnd; st.Col++ {
			t := core.Point{X: st.Col, Y: st.Row}
			mid := w.Dungeon.MonsterAt(t) - 1
			if mid < 0 {
				continue
			}
			if mon := w.Actors.Monster(mid); mon == nil || mon.Species == component.SpeciesGolem {
				continue
			}
			if w.Dungeon.IsWalkSolid(t) {
				continue
			}
			if w.Level.Hellfire && !w.LineClear(m.Position.Tile, t) {
				continue
			}
			s.Spawn(t, t, dir, component.KindBoom, component.TargetMonsters, m.Source, m.Damage, 0, m)
			st.Col++
			return
		}
		st.Col = st.ColStart
	}
	m.Deleted = true
}

func initDiabloApocalypse(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	w := s.world
	src := m.Position.Start
	for _, p := range w.Actors.Players() {
		if p == nil || !p.Active || p.DungeonLevel != w.Level.Depth {
			continue
		}
		if !w.LineClear(src, p.Future) {
			continue
		}
		s.Spawn(p.Future, p.Future, core.South, component.KindDiabloBoom, m.Target, m.Source, m.Damage, 0, m)
	}
	m.Deleted = true
}

// --- Inferno ---

func initFlame(s *MissileSystem, m *component.Missile, args spawnArgs) {
	st := &component.FlameState{Delay: 5 * m.Damage}
	m.Scratch = st
	m.Position.Start = args.dst
	if p := args.parent; p != nil {
		m.Position.Offset = p.Position.Offset
	}
	m.Range = st.Delay + parameter.FlameExtraRange
	m.Light = s.world.Lights.Add(m.Position.Start, 1)
	m.Visible = st.Delay <= 0

	if p := s.player(m); p != nil && m.Target == component.TargetMonsters {
		i := s.world.Rnd(p.Level) + s.world.Rnd(2)
		m.Damage = 8*i + 16 + (8*i+16)/2
	} else if mon := s.world.Actors.Monster(m.Source); m.Source >= 0 && mon != nil {
		m.Damage = s.rollMonster(mon)
	}
}

func updateFlame(s *MissileSystem, m *component.Missile) {
	st := component.StateOf[component.FlameState](m)
	m.Range--
	st.Delay--
	k := m.Range
	s.CheckCollision(m, m.Damage, m.Damage, true, m.Position.Tile, false)
	if m.Range == 0 && m.HitActor {
		m.Range = k
	}
	if st.Delay == 0 {
		m.Anim.Frame = 20
	}
	if st.Delay <= 0 {
		r := m.Anim.Frame
		if r > 11 {
			r = 24 - r
		}
		s.changeLight(m, r)
		m.Visible = true
	}
	if m.Range == 0 {
		m.Deleted = true
		s.releaseLight(m)
	}
}

func initFlameControl(s *MissileSystem, m *component.Missile, args spawnArgs) {
	s.updateVelocity(m, destination(m, args), parameter.SpeedLightningCtrl)
	s.useMana(m, component.SpellInferno)
	m.Scratch = &component.FlameControlState{Last: m.Position.Start}
	m.Range = parameter.MissileFlightRange
}

func updateFlameControl(s *MissileSystem, m *component.Missile) {
	st := component.StateOf[component.FlameControlState](m)
	m.Range--
	s.advance(m)
	if tile := m.Position.Tile; tile != st.Last {
		if !s.missileSolid(tile) {
			s.Spawn(tile, m.Position.Start, core.South, component.KindFlame, m.Target, m.Source, st.Count, m.SpellLevel, m)
		} else {
			m.Range = 0
		}
		st.Last = tile
		st.Count++
	}
	if m.Range == 0 || st.Count == 3 {
		m.Deleted = true
	}
}
