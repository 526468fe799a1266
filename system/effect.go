package system

import (
	"math"

	"github.com/lixenwraith/vi-missile/combat"
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/engine"
	"github.com/lixenwraith/vi-missile/parameter"
	"github.com/lixenwraith/vi-missile/search"
)

// holdingCell is where an unsummoned golem waits off the map
var holdingCell = core.Point{X: parameter.HoldingCellX, Y: parameter.HoldingCellY}

// durationRange extends a base duration by the caster's item bonus, caps it, and converts it to ticks
func (s *MissileSystem) durationRange(m *component.Missile, base, cap int) int {
	base += base * s.spellDuration(m) / 128
	return min(base, cap) << 4
}

// --- Charges ---

func initRhino(s *MissileSystem, m *component.Missile, args spawnArgs) {
	mon := s.world.Actors.Monster(m.Source)
	if m.Source < 0 || mon == nil {
		m.Deleted = true
		return
	}
	s.updateVelocity(m, args.dst, parameter.SpeedRhino)
	// The monster sprite is drawn in place of the missile, facing carries the charge direction
	m.Anim.Facing = int(args.dir)
	if mon.Species == component.SpeciesSnake {
		m.Anim.Frame = 7
	}
	if mon.Unique && mon.Light != component.NoLight {
		m.Light = mon.Light
		m.LightBorrowed = true
		m.LightNeeded = true
		mon.Light = component.NoLight
	}
	m.Range = parameter.MissileFlightRange
	s.put(m)
}

func updateRhino(s *MissileSystem, m *component.Missile) {
	w := s.world
	mon := w.Actors.Monster(m.Source)
	if mon == nil || mon.Mode != component.MonsterCharge {
		m.Deleted = true
		return
	}

	pos := &m.Position
	s.updatePos(m)
	prev := pos.Tile
	w.Dungeon.SetMonsterAt(prev, 0)

	snake := mon.Species == component.SpeciesSnake
	var snakeTile core.Point
	if snake {
		pos.Traveled = pos.Traveled.Add(pos.Velocity.Scale(2))
		s.updatePos(m)
		snakeTile = pos.Tile
		pos.Traveled = pos.Traveled.Sub(pos.Velocity)
	} else {
		pos.Traveled = pos.Traveled.Add(pos.Velocity)
	}
	s.updatePos(m)

	next := pos.Tile
	if !s.tileAvailable(mon, next) || (snake && !s.tileAvailable(mon, snakeTile)) {
		w.Reactions.MoveMonster(mon, prev)
		m.Deleted = true
		return
	}
	mon.Future, mon.Old, mon.Tile = next, next, next
	w.Dungeon.SetMonsterAt(next, -(mon.ID + 1))
	if m.LightBorrowed {
		w.Lights.Move(m.Light, next)
	}
	s.moveChargePos(m, mon)
}

func initHorkSpawn(s *MissileSystem, m *component.Missile, args spawnArgs) {
	s.updateVelocity(m, args.dst, parameter.SpeedHorkSpawn)
	m.Range = 9
	m.Scratch = &component.FacingState{Facing: args.dir}
	s.put(m)
}

func updateHorkSpawn(s *MissileSystem, m *component.Missile) {
	m.Range--
	s.CheckCollision(m, 0, 0, false, m.Position.Tile, false)
	if m.Range > 0 {
		m.Distance++
		s.advance(m)
		return
	}

	m.Deleted = true
	tile, ok := search.ClosestValid(m.Position.Tile, 0, 1, func(t core.Point) bool {
		return !s.tileOccupied(t)
	})
	if ok {
		s.world.Reactions.SpawnMinion(m.Source, tile, component.StateOf[component.FacingState](m).Facing)
	}
}

// --- Caster buffs ---

func initManaShield(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	m.Deleted = true
	p := s.casterPlayer(m)
	if p == nil || p.ManaShield {
		return
	}
	p.ManaShield = true
	if s.world.IsLocal(p.ID) {
		s.world.Net.SetShield(p.ID)
	}
	s.useMana(m, component.SpellManaShield)
}

func initReflect(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	m.Deleted = true
	p := s.casterPlayer(m)
	if p == nil {
		return
	}
	per := m.SpellLevel
	if per == 0 {
		per = 2
	}
	add := per * p.Level
	if int(p.Reflections)+add >= parameter.ReflectMaxCharges {
		add = 0
	}
	p.Reflections += uint16(add)
	if s.world.IsLocal(p.ID) {
		s.world.Net.SetReflect(p.ID, p.Reflections)
	}
	s.useMana(m, component.SpellReflect)
}

func initInfravision(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	r := combat.ScaleSpellEffect(1584, m.SpellLevel)
	m.Range = r + r*s.spellDuration(m)/128
	s.useMana(m, component.SpellInfravision)
}

func updateInfravision(s *MissileSystem, m *component.Missile) {
	p := s.casterPlayer(m)
	if p == nil {
		m.Deleted = true
		return
	}
	m.Range--
	p.Infravision = true
	if m.Range == 0 {
		m.Deleted = true
		p.Infravision = false
		s.world.Reactions.RecalcPlayer(p)
	}
}

func initSearch(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	w := s.world
	if w.IsLocal(m.Source) {
		w.Automap = true
	}
	lvl := 2
	if p := s.casterPlayer(m); p != nil {
		lvl = 2 * p.Level
	}
	m.Range = lvl + 10*m.SpellLevel + parameter.SearchBaseRange
	s.useMana(m, component.SpellSearch)

	for _, other := range s.missiles {
		if other == m || other.Deleted || other.Kind != component.KindSearch || other.Source != m.Source {
			continue
		}
		if other.Range <= math.MaxInt32-m.Range {
			other.Range += m.Range
		}
		m.Deleted = true
		return
	}
}

func updateSearch(s *MissileSystem, m *component.Missile) {
	m.Range--
	if m.Range != 0 {
		return
	}
	m.Deleted = true
	w := s.world
	if p := s.casterPlayer(m); p != nil {
		w.Sound.PlayAt(core.SoundSearchEnd, p.Tile)
	}
	if w.IsLocal(m.Source) {
		w.Automap = false
	}
}

func initBloodBoil(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	p := s.casterPlayer(m)
	rage := component.FlagRageActive | component.FlagRageCooldown
	if p == nil || p.SpellFlags&rage != 0 || p.HitPoints <= p.Level<<parameter.DamageShift {
		m.Deleted = true
		return
	}
	s.useMana(m, component.SpellBloodBoil)
	m.Scratch = &component.RageState{Penalty: 3 * p.Level << 7}
	p.SpellFlags |= component.FlagRageActive
	m.Range = 2*p.Level + 10*m.SpellLevel + parameter.SearchBaseRange
	s.world.Reactions.RecalcPlayer(p)
	s.world.Reactions.PlayerSpeech(p, engine.SpeechBloodBoil)
}

// updateBloodBoil runs the rage then the cooldown, the missing hit points are paid when it ends
func updateBloodBoil(s *MissileSystem, m *component.Missile) {
	m.Range--
	if m.Range != 0 {
		return
	}
	p := s.casterPlayer(m)
	if p == nil {
		m.Deleted = true
		return
	}

	missing := p.MaxHitPoints - p.HitPoints
	if p.SpellFlags&component.FlagRageActive != 0 {
		p.SpellFlags &^= component.FlagRageActive
		p.SpellFlags |= component.FlagRageCooldown
		m.Range = 2*p.Level + 10*m.SpellLevel + parameter.SearchBaseRange
	} else {
		p.SpellFlags &^= component.FlagRageCooldown
		m.Deleted = true
		missing += component.StateOf[component.RageState](m).Penalty
	}
	s.world.Reactions.RecalcPlayer(p)
	s.combat.ApplyPlayerDamage(p, 0, 1, missing, false)
	s.world.Reactions.PlayerSpeech(p, engine.SpeechBloodBoilFail)
	if info := m.Info(); m.Deleted && info.ImpactSound != core.SoundNone {
		s.world.Sound.PlayAt(info.ImpactSound, p.Tile)
	}
}

// --- Monster curses ---

func initBerserk(s *MissileSystem, m *component.Missile, args spawnArgs) {
	m.Deleted = true
	if m.Source < 0 {
		return
	}
	w := s.world
	tile, ok := search.ClosestValid(args.dst, 0, parameter.SearchRadiusLanding, func(t core.Point) bool {
		mon := s.monsterOn(t)
		if mon == nil || mon.Species == component.SpeciesGolem || mon.Species == component.SpeciesDiablo || mon.Unique {
			return false
		}
		if mon.Flags&component.MonsterBerserk != 0 {
			return false
		}
		switch mon.Mode {
		case component.MonsterFadeIn, component.MonsterFadeOut, component.MonsterCharge:
			return false
		}
		if mon.Resistance&component.ImmuneMagic != 0 {
			return false
		}
		return mon.Resistance&component.ResistsMagic == 0 || w.Rnd(2) == 0
	})
	if !ok {
		return
	}

	mon := s.monsterOn(tile)
	slvl := combat.SpellLevel(w, m.Source, component.SpellBerserk)
	boost := func(v int) int { return (w.Rnd(10)+120)*v/100 + slvl }
	mon.Flags |= component.MonsterBerserk | component.MonsterGolemFlag
	mon.MinDamage = boost(mon.MinDamage)
	mon.MaxDamage = boost(mon.MaxDamage)
	mon.MinDamage2 = boost(mon.MinDamage2)
	mon.MaxDamage2 = boost(mon.MaxDamage2)

	r := parameter.LightRadiusBerserk
	if d := w.Level.Depth; d >= parameter.HellfireDepthMin && d <= parameter.HellfireDepthMin+3 {
		r = parameter.LightRadiusBerserkHell
	}
	mon.Light = w.Lights.Add(mon.Tile, r)
	s.useMana(m, component.SpellBerserk)
}

func initStone(s *MissileSystem, m *component.Missile, args spawnArgs) {
	tile, ok := search.ClosestValid(args.dst, 0, parameter.SearchRadiusLanding, func(t core.Point) bool {
		mon := s.monsterOn(t)
		if mon == nil {
			return false
		}
		switch mon.Species {
		case component.SpeciesGolem, component.SpeciesDiablo, component.SpeciesNakrul:
			return false
		}
		switch mon.Mode {
		case component.MonsterFadeIn, component.MonsterFadeOut, component.MonsterCharge:
			return false
		}
		return true
	})
	if !ok {
		m.Deleted = true
		return
	}

	mon := s.monsterOn(tile)
	m.Scratch = &component.PetrifyState{PrevMode: mon.Mode, Monster: mon.ID}
	mon.Petrify()
	m.Position.Tile = tile
	m.Position.Start = tile
	m.Range = s.durationRange(m, m.SpellLevel+6, parameter.StoneMaxDuration)
	s.useMana(m, component.SpellStone)
}

func updateStone(s *MissileSystem, m *component.Missile) {
	m.Range--
	st := component.StateOf[component.PetrifyState](m)
	mon := s.world.Actors.Monster(st.Monster)
	if mon == nil {
		m.Deleted = true
		return
	}
	if !mon.IsAlive() && m.Anim.Graphic != component.GraphicShatter {
		setFacing(m, 0)
		m.Visible = true
		setGraphic(m, component.GraphicShatter)
		m.Range = parameter.ShatterRange
	}
	if mon.Mode != component.MonsterPetrified {
		m.Deleted = true
		return
	}
	if m.Range != 0 {
		return
	}
	m.Deleted = true
	if mon.IsAlive() {
		mon.Mode = st.PrevMode
		mon.Petrified = false
	} else {
		s.world.Reactions.AddCorpse(mon.Tile, mon)
	}
}

// --- Summons ---

func initGolem(s *MissileSystem, m *component.Missile, args spawnArgs) {
	m.Deleted = true
	w := s.world
	for _, other := range s.missiles {
		if other != m && other.Kind == component.KindGolem && other.Source == m.Source {
			return
		}
	}
	p := s.casterPlayer(m)
	if p == nil {
		return
	}

	golem := w.Actors.Monster(m.Source)
	summoned := golem != nil && golem.Tile != holdingCell && golem.IsAlive()
	if summoned && w.IsLocal(p.ID) {
		w.Reactions.KillMonster(golem, p.ID)
	}
	s.useMana(m, component.SpellGolem)
	if summoned {
		return
	}

	start := m.Position.Start
	tile, ok := search.ClosestValid(args.dst, 0, parameter.SearchRadiusLanding, func(t core.Point) bool {
		return !s.tileOccupied(t) && w.LineClear(start, t)
	})
	if ok {
		w.Reactions.SpawnGolem(p.ID, tile, m.SpellLevel)
	}
}

// --- Traps ---

// stolenPotion is what a thief leaves in a belt slot
func (s *MissileSystem) stolenPotion(b component.BeltItem) component.BeltItem {
	switch b {
	case component.BeltFullHealing:
		return component.BeltHealing
	case component.BeltHealing, component.BeltMana:
		return component.BeltEmpty
	case component.BeltFullMana:
		return component.BeltMana
	case component.BeltRejuvenation:
		if s.world.Rnd(2) != 0 {
			return component.BeltMana
		}
		return component.BeltHealing
	case component.BeltFullRejuvenation:
		switch s.world.Rnd(3) {
		case 0:
			return component.BeltFullMana
		case 1:
			return component.BeltFullHealing
		default:
			return component.BeltRejuvenation
		}
	}
	return b
}

func initStealPotions(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	w := s.world
	m.Deleted = true
	for r := 0; r <= parameter.SearchRadiusPotions; r++ {
		for _, d := range search.Ring(r) {
			t := m.Position.Start.Add(d)
			if !w.InBounds(t) {
				continue
			}
			pid := w.Dungeon.PlayerAt(t)
			if pid == 0 {
				continue
			}
			p := w.Actors.Player(abs(pid) - 1)
			if p == nil {
				continue
			}
			popped := false
			for i, item := range p.Belt {
				if !item.IsMisc() || w.Rnd(2) == 0 {
					continue
				}
				stolen := s.stolenPotion(item)
				if stolen == item {
					continue
				}
				p.Belt[i] = stolen
				if !popped {
					w.Sound.PlayAt(core.SoundPotionPop, t)
					popped = true
				}
			}
		}
	}
}

func initManaTrap(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	w := s.world
	m.Deleted = true
	tile, ok := search.ClosestValid(m.Position.Start, 0, parameter.SearchRadiusManaTrap, func(t core.Point) bool {
		return w.InBounds(t) && w.Dungeon.PlayerAt(t) != 0
	})
	if !ok {
		return
	}
	p := w.Actors.Player(abs(w.Dungeon.PlayerAt(tile)) - 1)
	if p == nil {
		return
	}
	p.Mana = 0
	p.BaseMana = p.MaxBaseMana - p.MaxMana
	w.Sound.PlayAt(core.SoundManaTrap, tile)
}

// --- Jester ---

// jesterTable is the spell a jester roll of 0 to 9 casts
var jesterTable = [10]component.Kind{
	component.KindFirebolt,
	component.KindFirebolt,
	component.KindFireball,
	component.KindFirewallControl,
	component.KindGuardian,
	component.KindChainLightning,
	component.KindTownPortal,
	component.KindTeleport,
	component.KindApocalypse,
	component.KindStone,
}

func initJester(s *MissileSystem, m *component.Missile, args spawnArgs) {
	m.Deleted = true
	kind := jesterTable[s.world.Rnd(len(jesterTable))]
	if kind == component.KindTownPortal {
		s.useMana(m, component.SpellTownPortal)
	}
	s.Spawn(m.Position.Start, args.dst, args.dir, kind, m.Target, m.Source, 0, m.SpellLevel, nil)
}

// --- Visuals ---

func initResurrectBeam(s *MissileSystem, m *component.Missile, args spawnArgs) {
	m.Position.Tile = args.dst
	m.Position.Start = args.dst
	m.Range = component.GraphicOf(component.GraphicResurrect).LenOf(0)
}

func updateResurrectBeam(s *MissileSystem, m *component.Missile) {
	m.Range--
	expire(m)
}
