package combat

import (
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/engine"
	"github.com/lixenwraith/vi-missile/vmath"
)

// ScaleSpellEffect grows base by one eighth per spell level, compounding
func ScaleSpellEffect(base, spellLevel int) int {
	for i := 0; i < spellLevel; i++ {
		base += base / 8
	}
	return base
}

// GenerateRndSum adds iterations rolls in [0, n)
func GenerateRndSum(rng *vmath.FastRand, n, iterations int) int {
	sum := 0
	for i := 0; i < iterations; i++ {
		sum += rng.Intn(n)
	}
	return sum
}

// ClassHealingBonus applies the class multiplier to healing
func ClassHealingBonus(hp int, class component.HeroClass) int {
	switch class {
	case component.ClassWarrior, component.ClassMonk, component.ClassBarbarian:
		return hp * 2
	case component.ClassRogue, component.ClassBard:
		return hp + hp/2
	default:
		return hp
	}
}

// SpellLevel returns the effective spell level of a caster
// Remote casters report level 1, their books are not replicated
func SpellLevel(w *engine.World, player int, spell component.Spell) int {
	if !w.IsLocal(player) {
		return 1
	}
	p := w.Actors.Player(player)
	if p == nil || spell >= component.SpellCount {
		return 1
	}
	return max(p.SpellLevelBonus+p.SpellLevels[spell], 0)
}

// DamageRange is the spell book damage display range for a player
// Spells without damage return -1, -1
func DamageRange(p *component.Player, spell component.Spell) (int, int) {
	var sl int
	if spell < component.SpellCount {
		sl = p.SpellLevels[spell] + p.SpellLevelBonus
	}
	lvl := p.Level

	switch spell {
	case component.SpellFirebolt:
		lo := p.Magic/8 + sl + 1
		return lo, lo + 9
	case component.SpellHeal, component.SpellHealOther:
		// Shown in the book but never used by the heal initializer
		return ClassHealingBonus(lvl+sl+1, p.Class) - 1,
			ClassHealingBonus(4*lvl+6*sl+10, p.Class) - 1
	case component.SpellLightning, component.SpellRuneOfLight:
		return 2, 2 + lvl
	case component.SpellFlash:
		lo := ScaleSpellEffect(lvl, sl)
		lo += lo / 2
		return lo, lo * 2
	case component.SpellFirewall, component.SpellLightningWall, component.SpellFireRing:
		lo := 2*lvl + 4
		return lo, lo + 36
	case component.SpellFireball, component.SpellRuneOfFire:
		base := 2*lvl + 4
		return ScaleSpellEffect(base, sl), ScaleSpellEffect(base+36, sl)
	case component.SpellGuardian:
		base := lvl/2 + 1
		return ScaleSpellEffect(base, sl), ScaleSpellEffect(base+9, sl)
	case component.SpellChainLightning:
		return 4, 4 + 2*lvl
	case component.SpellFlameWave:
		lo := 6 * (lvl + 1)
		return lo, lo + 54
	case component.SpellNova, component.SpellImmolation, component.SpellRuneOfImmolation, component.SpellRuneOfNova:
		return ScaleSpellEffect((lvl+5)/2, sl) * 5, ScaleSpellEffect((lvl+30)/2, sl) * 5
	case component.SpellInferno:
		hi := lvl + 4
		return 3, hi + hi/2
	case component.SpellGolem:
		return 11, 17
	case component.SpellApocalypse:
		return lvl, lvl * 6
	case component.SpellElemental:
		// Displayed range is twice what the initializer deals
		return ScaleSpellEffect(2*lvl+4, sl), ScaleSpellEffect(2*lvl+40, sl)
	case component.SpellChargedBolt:
		return 1, 1 + p.Magic/4
	case component.SpellHolyBolt:
		return lvl + 9, lvl + 18
	case component.SpellFlare:
		v := p.Magic/2 + 3*sl - p.Magic/8
		return v, v
	default:
		return -1, -1
	}
}
