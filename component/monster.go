package component

import "github.com/lixenwraith/vi-missile/core"

// MonsterMode is the monster state machine mode
type MonsterMode uint8

const (
	MonsterStand MonsterMode = iota
	MonsterWalk
	MonsterMeleeAttack
	MonsterHit
	MonsterDeath
	MonsterSpecialMeleeAttack
	MonsterFadeIn
	MonsterFadeOut
	MonsterRangedAttack
	MonsterSpecialStand
	MonsterSpecialRangedAttack
	MonsterDelay
	MonsterCharge
	MonsterPetrified
	MonsterHeal
	MonsterTalk
)

// Species selects per-type missile behaviour, most monsters are SpeciesGeneric
type Species uint8

const (
	SpeciesGeneric Species = iota
	SpeciesGolem
	SpeciesDiablo
	SpeciesNakrul
	SpeciesFamiliar
	SpeciesStorm      // Storm riders and maelstroms, thin lightning
	SpeciesSuccubus   // Flare tinted red
	SpeciesSnowWitch  // Flare tinted blue
	SpeciesHellSpawn  // Flare tinted green
	SpeciesSoulBurner // Flare tinted purple
	SpeciesSnake      // Charges two tiles per tick
	SpeciesHorned     // Charges with the special animation
	SpeciesGargoyle   // Dormant until struck
)

// MonsterClass is the broad creature category
type MonsterClass uint8

const (
	ClassUndead MonsterClass = iota
	ClassDemon
	ClassAnimal
)

// Resistance is a bitmask of elemental resistances and immunities
type Resistance uint8

const (
	ResistsMagic Resistance = 1 << iota
	ResistsFire
	ResistsLightning
	ImmuneMagic
	ImmuneFire
	ImmuneLightning
	ImmuneAcid
)

// MonsterFlags is a bitmask of monster state flags
type MonsterFlags uint16

const (
	MonsterNoHeal MonsterFlags = 1 << iota
	MonsterTargetsMonster
	MonsterGolemFlag
	MonsterBerserk
	MonsterAllowSpecial
)

// Monster is the combat-relevant monster record
// Hit points are stored in 1/64 units
type Monster struct {
	ID     int
	Tile   core.Point
	Future core.Point
	Old    core.Point
	Last   core.Point // Last known enemy position
	Dir    core.Direction
	Mode   MonsterMode

	HitPoints    int
	MaxHitPoints int
	Level        int
	Armor        int
	ToHit        int
	MinDamage    int
	MaxDamage    int
	MinDamage2   int
	MaxDamage2   int
	Intelligence int

	Species    Species
	Class      MonsterClass
	Resistance Resistance
	Flags      MonsterFlags

	Squelch    int
	Unique     bool
	UniqueTint int
	Talking    bool
	Evasive    bool // Retreating casters that cannot be targeted
	Petrified  bool
	Light      LightHandle
}

// IsAlive reports whether the monster has at least one whole hit point
func (m *Monster) IsAlive() bool {
	return m.HitPoints>>6 > 0
}

// IsPossibleToHit reports whether missiles can currently strike the monster
func (m *Monster) IsPossibleToHit() bool {
	return m.IsAlive() && !m.Talking && !m.Evasive && m.Mode != MonsterCharge
}

// IsImmune reports full immunity to a missile of kind k damaging with element r
func (m *Monster) IsImmune(k Kind, r Resist) bool {
	switch {
	case m.Resistance&ImmuneMagic != 0 && r == ResistMagic,
		m.Resistance&ImmuneFire != 0 && r == ResistFire,
		m.Resistance&ImmuneLightning != 0 && r == ResistLightning,
		m.Resistance&ImmuneAcid != 0 && r == ResistAcid:
		return true
	}
	// Holy bolt only harms undead and Diablo
	return k == KindHolyBolt && m.Species != SpeciesDiablo && m.Class != ClassUndead
}

// IsResistant reports partial resistance, damage is quartered
func (m *Monster) IsResistant(k Kind, r Resist) bool {
	switch {
	case m.Resistance&ResistsMagic != 0 && r == ResistMagic,
		m.Resistance&ResistsFire != 0 && r == ResistFire,
		m.Resistance&ResistsLightning != 0 && r == ResistLightning:
		return true
	}
	return k == KindHolyBolt && m.Species == SpeciesDiablo
}

// TryLiftDormant wakes a dormant gargoyle, returns true when it was lifted
func (m *Monster) TryLiftDormant() bool {
	if m.Species != SpeciesGargoyle || m.Flags&MonsterAllowSpecial == 0 {
		return false
	}
	m.Flags &^= MonsterAllowSpecial
	m.Mode = MonsterSpecialMeleeAttack
	return true
}

// Petrify turns the monster to stone
func (m *Monster) Petrify() {
	m.Mode = MonsterPetrified
	m.Petrified = true
}
