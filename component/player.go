package component

import "github.com/lixenwraith/vi-missile/core"

// HeroClass is the player character class
type HeroClass uint8

const (
	ClassWarrior HeroClass = iota
	ClassRogue
	ClassSorcerer
	ClassMonk
	ClassBard
	ClassBarbarian
)

// PlayerMode is the player state machine mode
type PlayerMode uint8

const (
	PlayerStand PlayerMode = iota
	PlayerWalk
	PlayerAttack
	PlayerRangedAttack
	PlayerBlock
	PlayerGotHit
	PlayerDeath
	PlayerSpell
	PlayerNewLevel
)

// SpellFlags is a bitmask of spell-driven player states
type SpellFlags uint8

const (
	FlagEtherealize SpellFlags = 1 << iota
	FlagRageActive
	FlagRageCooldown
)

// ItemEffect is a bitmask of equipment special effects
type ItemEffect uint32

const (
	EffectRandomArrowVelocity ItemEffect = 1 << iota
	EffectFireArrows
	EffectLightningArrows
	EffectKnockback
	EffectTripleDemonDamage
	EffectNoHealOnMonsters
	EffectHalfTrapDamage
	EffectQuickAttack
	EffectFastAttack
	EffectFasterAttack
	EffectFastestAttack
)

// Spell is a spell book entry
type Spell uint8

const (
	SpellNone Spell = iota
	SpellFirebolt
	SpellHeal
	SpellLightning
	SpellFlash
	SpellIdentify
	SpellFirewall
	SpellTownPortal
	SpellStone
	SpellInfravision
	SpellRandomTeleport
	SpellManaShield
	SpellFireball
	SpellGuardian
	SpellChainLightning
	SpellFlameWave
	SpellNova
	SpellInferno
	SpellGolem
	SpellBloodBoil
	SpellTeleport
	SpellApocalypse
	SpellEtherealize
	SpellRepair
	SpellRecharge
	SpellDisarm
	SpellElemental
	SpellChargedBolt
	SpellHolyBolt
	SpellResurrect
	SpellTelekinesis
	SpellHealOther
	SpellFlare
	SpellBoneSpirit
	SpellMana
	SpellMagi
	SpellJester
	SpellLightningWall
	SpellImmolation
	SpellWarp
	SpellReflect
	SpellBerserk
	SpellFireRing
	SpellSearch
	SpellRuneOfFire
	SpellRuneOfLight
	SpellRuneOfNova
	SpellRuneOfImmolation
	SpellRuneOfStone
	SpellCount
)

// BeltItem is the content of a quick belt slot
type BeltItem uint8

const (
	BeltEmpty BeltItem = iota
	BeltHealing
	BeltMana
	BeltFullHealing
	BeltFullMana
	BeltRejuvenation
	BeltFullRejuvenation
	BeltScroll
)

// BeltSize is the number of quick belt slots
const BeltSize = 8

// IsMisc reports whether the slot holds a consumable
func (b BeltItem) IsMisc() bool {
	return b != BeltEmpty
}

// Player is the combat-relevant player record
// Hit points and mana are stored in 1/64 units
type Player struct {
	ID            int
	Active        bool
	Tile          core.Point
	Future        core.Point
	Old           core.Point
	Dir           core.Direction
	Mode          PlayerMode
	Class         HeroClass
	Level         int
	DungeonLevel  int
	LevelChanging bool

	Magic            int
	HitPoints        int
	MaxHitPoints     int
	BaseHitPoints    int
	MaxBaseHitPoints int
	Mana             int
	MaxMana          int
	BaseMana         int
	MaxBaseMana      int

	Armor       int
	BlockChance int
	BlockFlag   bool
	RangedToHit int
	MagicToHit  int
	ArmorPierce int // Percent of target armor ignored

	MinDamage          int
	MaxDamage          int
	FireMinDamage      int
	FireMaxDamage      int
	LightningMinDamage int // Also selects the special arrow element
	LightningMaxDamage int
	BonusDamage        int // Percent
	BonusDamageMod     int
	DamageMod          int
	GetHit             int

	FireResist      int
	LightningResist int
	MagicResist     int

	SpellLevels     [SpellCount]int
	SpellLevelBonus int
	SpellDuration   int
	SpellFlags      SpellFlags
	ItemEffects     ItemEffect

	Invincible   bool
	ManaShield   bool
	Infravision  bool
	FriendlyMode bool
	Reflections  uint16

	Belt  [BeltSize]BeltItem
	Light LightHandle
}

// IsAlive reports whether the player has at least one whole hit point
func (p *Player) IsAlive() bool {
	return p.HitPoints>>6 > 0
}

// HasEffect reports whether any of the given item effects is active
func (p *Player) HasEffect(e ItemEffect) bool {
	return p.ItemEffects&e != 0
}

// ArmorAfterPierce returns the target armor left after this player's piercing
func (p *Player) ArmorAfterPierce(armor int) int {
	if p.ArmorPierce <= 0 {
		return armor
	}
	return max(armor-armor*p.ArmorPierce/100, 0)
}

// ManaShieldReduction is the divisor of damage absorbed by the shield
func (p *Player) ManaShieldReduction() int {
	return 24 - min(p.SpellLevels[SpellManaShield], 7)*2
}

// AttackSpeedBonus sums the velocity bonus of attack speed effects
func (p *Player) AttackSpeedBonus() int {
	bonus := 0
	if p.HasEffect(EffectQuickAttack) {
		bonus++
	}
	if p.HasEffect(EffectFastAttack) {
		bonus += 2
	}
	if p.HasEffect(EffectFasterAttack) {
		bonus += 4
	}
	if p.HasEffect(EffectFastestAttack) {
		bonus += 8
	}
	return bonus
}
