package system

import (
	"github.com/lixenwraith/vi-missile/combat"
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/parameter"
)

// Light radius curves stepped once per tick while a blast plays
var (
	explosionLight = [...]int{9, 10, 11, 12, 11, 10, 8, 6, 4, 2, 1, 0, 0, 0, 0}
	weaponLight    = [...]int{9, 10, 11, 12, 11, 10, 8, 6, 4, 2}
)

// blastOffsets are the nine tiles a large blast covers
var blastOffsets = [9]core.Displacement{
	{DX: -1, DY: -1}, {DX: 0, DY: -1}, {DX: 1, DY: -1},
	{DX: -1, DY: 0}, {DX: 0, DY: 0}, {DX: 1, DY: 0},
	{DX: -1, DY: 1}, {DX: 0, DY: 1}, {DX: 1, DY: 1},
}

// stepLight walks a radius table, the first step creates the light
func (s *MissileSystem) stepLight(m *component.Missile, table []int, step *int) {
	r := table[min(*step, len(table)-1)]
	if *step == 0 {
		s.addLight(m, r)
	} else {
		s.changeLight(m, r)
	}
	*step++
}

// flareBurstGraphic tints a monster flare explosion by caster species
func flareBurstGraphic(sp component.Species) component.Graphic {
	switch sp {
	case component.SpeciesSnowWitch:
		return component.GraphicSnowWitchExplosion
	case component.SpeciesHellSpawn:
		return component.GraphicHellSpawnExplosion
	case component.SpeciesSoulBurner:
		return component.GraphicSoulBurnerExplosion
	}
	return component.GraphicFlareExplosion
}

// initExplosion takes over the parent's screen position for the blast animation
func initExplosion(s *MissileSystem, m *component.Missile, args spawnArgs) {
	if m.Kind == component.KindFlareExplosion {
		if mon := s.monster(m); mon != nil {
			setGraphic(m, flareBurstGraphic(mon.Species))
		}
	}
	if p := args.parent; p != nil {
		m.Position.Tile = p.Position.Tile
		m.Position.Start = p.Position.Start
		m.Position.Offset = p.Position.Offset
		m.Position.Traveled = p.Position.Traveled
	}
	m.Range = m.Anim.Len
	m.Scratch = &component.ExplosionState{}
}

func updateExplosion(s *MissileSystem, m *component.Missile) {
	m.Range--
	if m.Range == 0 {
		m.Deleted = true
		s.releaseLight(m)
		return
	}
	st := component.StateOf[component.ExplosionState](m)
	s.stepLight(m, explosionLight[:], &st.LightStep)
}

// --- Acid ---

func updateAcidSplat(s *MissileSystem, m *component.Missile) {
	if m.Range == m.Anim.Len {
		shiftSouth(m)
	}
	m.Range--
	if m.Range != 0 {
		return
	}
	m.Deleted = true
	dam := 1
	if mon := s.world.Actors.Monster(m.Source); m.Source >= 0 && mon != nil && mon.Level >= 2 {
		dam = 2
	}
	s.Spawn(m.Position.Tile, m.Position.Tile, core.South, component.KindAcidPuddle,
		component.TargetPlayers, m.Source, dam, m.SpellLevel, m)
}

func initAcidPuddle(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	m.Position.Offset = core.Displacement{}
	intelligence := 0
	if mon := s.world.Actors.Monster(m.Source); m.Source >= 0 && mon != nil {
		intelligence = mon.Intelligence
	}
	m.Range = 40*(intelligence+1) + s.world.Rnd(15)
	m.PreDraw = true
}

func updateAcidPuddle(s *MissileSystem, m *component.Missile) {
	m.Range--
	r := m.Range
	s.CheckCollision(m, m.Damage, m.Damage, true, m.Position.Tile, false)
	m.Range = r
	if m.Range != 0 {
		return
	}
	if m.Anim.Facing != 0 {
		m.Deleted = true
		return
	}
	setFacing(m, 1)
	m.Range = m.Anim.Len
}

// --- Weapon explosion ---

// initWeaponExplosion reads the element from the damage argument, fire or lightning
func initWeaponExplosion(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	element := component.ResistLightning
	g := component.GraphicMiniLightning
	if component.Resist(m.Damage) == component.ResistFire {
		element = component.ResistFire
		g = component.GraphicMagicBlast
	}
	m.Damage = 0
	setGraphic(m, g)
	m.Range = m.Anim.Len - 1
	m.Scratch = &component.ExplosionState{Element: element}
}

func updateWeaponExplosion(s *MissileSystem, m *component.Missile) {
	m.Range--
	st := component.StateOf[component.ExplosionState](m)

	var lo, hi int
	if p := s.world.Actors.Player(m.Source); m.Source >= 0 && p != nil {
		if st.Element == component.ResistFire {
			lo, hi = p.FireMinDamage, p.FireMaxDamage
		} else {
			lo, hi = p.LightningMinDamage, p.LightningMaxDamage
		}
	}
	a := combat.AttackOf(m, lo, hi, false)
	a.Resist = st.Element
	s.collide(m, a, m.Position.Tile, false)

	if st.LightStep == 0 {
		s.addLight(m, weaponLight[0])
	} else if m.Range != 0 {
		s.changeLight(m, weaponLight[min(st.LightStep, len(weaponLight)-1)])
	}
	st.LightStep++

	if m.Range == 0 {
		m.Deleted = true
		s.releaseLight(m)
	}
}

// --- Fireball ---

func initFireball(s *MissileSystem, m *component.Missile, args spawnArgs) {
	dst := destination(m, args)
	speed := parameter.SpeedBolt
	if m.Target == component.TargetMonsters {
		speed += min(2*m.SpellLevel, parameter.SpeedFireballMax)
		lvl := s.playerLevel(m, s.world.Level.Depth)
		m.Damage = combat.ScaleSpellEffect(2*(lvl+s.rndSum(10, 2))+4, m.SpellLevel)
		s.useMana(m, component.SpellFireball)
	}
	s.launchBolt(m, dst, speed)
}

func initFireNova(s *MissileSystem, m *component.Missile, args spawnArgs) {
	dst := destination(m, args)
	speed := parameter.SpeedBolt
	if m.Target == component.TargetMonsters {
		speed += min(m.SpellLevel, parameter.SpeedFireballMax)
	}
	s.launchBolt(m, dst, speed)
}

func updateFireball(s *MissileSystem, m *component.Missile) {
	m.Range--
	if m.Anim.Graphic == component.GraphicBigExplosion {
		if m.Range == 0 {
			m.Deleted = true
			s.releaseLight(m)
		}
		return
	}

	lo, hi := m.Damage, m.Damage
	if mon := s.monster(m); mon != nil {
		lo, hi = mon.MinDamage, mon.MaxDamage
	}
	s.MoveAndCollide(m, lo, hi, true, false)

	st := component.StateOf[component.TrailState](m)
	if m.Range != 0 {
		s.trailLight(m, &st.Last, parameter.LightRadiusBolt)
		return
	}

	tile := m.Position.Tile
	s.changeLight(m, m.Anim.Frame)
	for _, off := range blastOffsets {
		t := tile.Add(off)
		if !s.world.CheckBlock(st.Last, t) {
			s.CheckCollision(m, lo, hi, false, t, true)
		}
	}
	setFacing(m, 0)
	setGraphic(m, component.GraphicBigExplosion)
	m.Range = m.Anim.Len - 1
	m.Position.Stop()
}

// --- Rune blasts ---

func initRuneExplosion(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	if m.Target == component.TargetMonsters || m.Target == component.TargetBoth {
		lvl := s.playerLevel(m, s.world.Level.Depth)
		dmg := combat.ScaleSpellEffect(2*(lvl+s.rndSum(10, 2))+4, m.SpellLevel)
		m.Damage = dmg
		for _, off := range blastOffsets {
			s.CheckCollision(m, dmg, dmg, false, m.Position.Tile.Add(off), true)
		}
	}
	m.Light = s.world.Lights.Add(m.Position.Start, parameter.LightRadiusBolt)
	setFacing(m, 0)
	m.Range = m.Anim.Len - 1
}

// updateBurst holds a one-shot blast until its animation ends
func updateBurst(s *MissileSystem, m *component.Missile) {
	m.Range--
	if m.Range <= 0 {
		m.Deleted = true
		s.releaseLight(m)
	}
}

// initHiveExplosion sets off four rune blasts in a square anchored at the origin
func initHiveExplosion(s *MissileSystem, m *component.Missile, args spawnArgs) {
	m.Deleted = true
	origin := m.Position.Tile
	for _, off := range [4]core.Displacement{{}, {DX: 1}, {DY: 1}, {DX: 1, DY: 1}} {
		t := origin.Add(off)
		s.Spawn(t, t, core.South, component.KindRuneExplosion, m.Target, m.Source, m.Damage, m.SpellLevel, m)
	}
}

// --- Boom ---

func initBoom(s *MissileSystem, m *component.Missile, args spawnArgs) {
	m.Position.Tile = args.dst
	m.Position.Start = args.dst
	m.Range = m.Anim.Len
	m.Scratch = &component.BoomState{}
}

func updateBoom(s *MissileSystem, m *component.Missile) {
	m.Range--
	st := component.StateOf[component.BoomState](m)
	if !st.Done {
		s.CheckCollision(m, m.Damage, m.Damage, false, m.Position.Tile, true)
		if m.HitActor {
			st.Done = true
		}
	}
	expire(m)
}

// rndSum adds iterations rolls in [0, n)
func (s *MissileSystem) rndSum(n, iterations int) int {
	return combat.GenerateRndSum(s.world.Rng, n, iterations)
}
