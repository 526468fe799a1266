package system

import (
	"github.com/lixenwraith/vi-missile/combat"
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/event"
	"github.com/lixenwraith/vi-missile/parameter"
)

// Instant spells resolve in their initializer and never reach the tick

func initHeal(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	m.Deleted = true
	p := s.casterPlayer(m)
	if p == nil {
		return
	}
	w := s.world
	hp := w.Rnd(10) + 1
	hp += s.rndSum(4, p.Level) + p.Level
	hp += s.rndSum(6, m.SpellLevel) + m.SpellLevel
	hp = combat.ClassHealingBonus(hp<<parameter.DamageShift, p.Class)

	p.HitPoints = min(p.HitPoints+hp, p.MaxHitPoints)
	p.BaseHitPoints = min(p.BaseHitPoints+hp, p.MaxBaseHitPoints)
	s.useMana(m, component.SpellHeal)
}

// restoreMana is the mana potion spell amount in 1/64 units
func (s *MissileSystem) restoreMana(p *component.Player, spellLevel int) int {
	w := s.world
	amount := (w.Rnd(10) + 1) << parameter.DamageShift
	for range p.Level {
		amount += (w.Rnd(4) + 1) << parameter.DamageShift
	}
	for range spellLevel {
		amount += (w.Rnd(6) + 1) << parameter.DamageShift
	}
	switch p.Class {
	case component.ClassSorcerer:
		amount *= 2
	case component.ClassRogue, component.ClassBard:
		amount += amount / 2
	}
	return amount
}

func initMana(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	m.Deleted = true
	p := s.casterPlayer(m)
	if p == nil {
		return
	}
	amount := s.restoreMana(p, m.SpellLevel)
	p.Mana = min(p.Mana+amount, p.MaxMana)
	p.BaseMana = min(p.BaseMana+amount, p.MaxBaseMana)
	s.useMana(m, component.SpellMana)
}

func initMagi(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	m.Deleted = true
	p := s.casterPlayer(m)
	if p == nil {
		return
	}
	p.Mana = p.MaxMana
	p.BaseMana = p.MaxBaseMana
	s.useMana(m, component.SpellMagi)
}

// cursorSpell charges the spell and hands the local caster a targeting cursor
func (s *MissileSystem) cursorSpell(m *component.Missile, spell component.Spell, cursor event.CursorKind) {
	m.Deleted = true
	s.useMana(m, spell)
	if m.Source >= 0 && s.world.IsLocal(m.Source) {
		s.world.Net.Cursor(m.Source, cursor)
	}
}

func initHealOther(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	s.cursorSpell(m, component.SpellHealOther, event.CursorHealOther)
}

func initIdentify(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	s.cursorSpell(m, component.SpellIdentify, event.CursorIdentify)
}

func initRepair(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	s.cursorSpell(m, component.SpellRepair, event.CursorRepair)
}

func initRecharge(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	s.cursorSpell(m, component.SpellRecharge, event.CursorRecharge)
}

func initDisarm(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	s.cursorSpell(m, component.SpellDisarm, event.CursorDisarm)
}

func initResurrect(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	s.cursorSpell(m, component.SpellResurrect, event.CursorResurrect)
}

func initTelekinesis(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	s.cursorSpell(m, component.SpellTelekinesis, event.CursorTelekinesis)
}
