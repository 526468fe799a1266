package component

import "github.com/lixenwraith/vi-missile/core"

// Kind identifies the missile behaviour
type Kind uint8

const (
	KindArrow Kind = iota
	KindFirebolt
	KindGuardian
	KindRandomTeleport
	KindLightball
	KindFirewall
	KindFireball
	KindLightningControl
	KindLightning
	KindExplosion
	KindTownPortal
	KindFlash
	KindFlashBack
	KindManaShield
	KindFireMove
	KindChainLightning
	KindRhino
	KindMagmaBall
	KindLightningControlThin
	KindLightningThin
	KindFlare
	KindFlareExplosion
	KindTeleport
	KindFireArrow
	KindStone
	KindGolem
	KindBoom
	KindHeal
	KindFirewallControl
	KindInfravision
	KindIdentify
	KindFlameWave
	KindNova
	KindBloodBoil
	KindApocalypse
	KindRepair
	KindRecharge
	KindDisarm
	KindFlame
	KindFlameControl
	KindChargedBolt
	KindHolyBolt
	KindResurrect
	KindTelekinesis
	KindLightningArrow
	KindAcid
	KindAcidSplat
	KindAcidPuddle
	KindHealOther
	KindElemental
	KindResurrectBeam
	KindBoneSpirit
	KindWeaponExplosion
	KindRedPortal
	KindDiabloBoom
	KindDiabloApocalypse
	KindMana
	KindMagi
	KindLightningWall
	KindLightningWallControl
	KindImmolation
	KindSpecialArrow
	KindFireNova
	KindLightningTrailArrow
	KindChargedBoltArrow
	KindHolyBoltArrow
	KindWarp
	KindReflect
	KindBerserk
	KindFireRing
	KindStealPotions
	KindManaTrap
	KindSearch
	KindFireRune
	KindLightningRune
	KindGreatLightningRune
	KindImmolationRune
	KindStoneRune
	KindRuneExplosion
	KindHorkSpawn
	KindJester
	KindHiveExplosion
	KindLichBolt
	KindPsychOrb
	KindNecromancerOrb
	KindArchLichBolt
	KindBoneDemonBolt
	KindExplosionYellow
	KindExplosionRed
	KindExplosionBlue
	KindExplosionBlueLarge
	KindExplosionOrange
	KindCount
)

// DamageClass separates physical projectiles from spells
type DamageClass uint8

const (
	ClassPhysical DamageClass = iota // Arrows, uses ranged to-hit
	ClassMagic                       // Spells, uses magic to-hit
	ClassEffect                      // Visual-only explosions
)

// Resist is the element a missile damages with
type Resist uint8

const (
	ResistNone Resist = iota
	ResistFire
	ResistLightning
	ResistMagic
	ResistAcid
)

// Movement controls how sub-tile collision reacts to hits
type Movement uint8

const (
	MovementDisabled    Movement = iota // Does not travel through collision
	MovementBlockable                   // Stops at the first actor hit
	MovementUnblockable                 // Passes through actors
)

// KindInfo is the static per-kind metadata
type KindInfo struct {
	Name        string
	Graphic     Graphic
	Class       DamageClass
	Resist      Resist
	Movement    Movement
	Visible     bool
	CastSound   core.SoundType
	ImpactSound core.SoundType
}

var kindInfo = [KindCount]KindInfo{
	KindArrow:                {"arrow", GraphicArrows, ClassPhysical, ResistNone, MovementBlockable, true, core.SoundNone, core.SoundNone},
	KindFirebolt:             {"firebolt", GraphicFireball, ClassMagic, ResistFire, MovementBlockable, true, core.SoundFirebolt, core.SoundFireImpact},
	KindGuardian:             {"guardian", GraphicGuardian, ClassMagic, ResistNone, MovementDisabled, true, core.SoundGuardian, core.SoundGuardianEnd},
	KindRandomTeleport:       {"random_teleport", GraphicNone, ClassMagic, ResistNone, MovementDisabled, false, core.SoundTeleport, core.SoundNone},
	KindLightball:            {"lightball", GraphicLightning, ClassMagic, ResistLightning, MovementUnblockable, true, core.SoundNone, core.SoundNone},
	KindFirewall:             {"firewall", GraphicFirewall, ClassMagic, ResistFire, MovementDisabled, true, core.SoundWallLoop, core.SoundFireImpactLarge},
	KindFireball:             {"fireball", GraphicFireball, ClassMagic, ResistFire, MovementBlockable, true, core.SoundFirebolt, core.SoundFireImpact},
	KindLightningControl:     {"lightning_control", GraphicLightning, ClassMagic, ResistLightning, MovementDisabled, false, core.SoundNone, core.SoundNone},
	KindLightning:            {"lightning", GraphicLightning, ClassMagic, ResistLightning, MovementDisabled, true, core.SoundLightning, core.SoundElectricImpact},
	KindExplosion:            {"explosion", GraphicMagicBlast, ClassEffect, ResistNone, MovementDisabled, true, core.SoundNone, core.SoundNone},
	KindTownPortal:           {"town_portal", GraphicPortal, ClassMagic, ResistMagic, MovementDisabled, true, core.SoundPortal, core.SoundElemental},
	KindFlash:                {"flash", GraphicBlueFlash, ClassMagic, ResistMagic, MovementDisabled, true, core.SoundNova, core.SoundElectricImpact},
	KindFlashBack:            {"flash_back", GraphicBlueFlashBack, ClassMagic, ResistMagic, MovementDisabled, true, core.SoundNone, core.SoundNone},
	KindManaShield:           {"mana_shield", GraphicManaShield, ClassMagic, ResistMagic, MovementDisabled, false, core.SoundManaShield, core.SoundNone},
	KindFireMove:             {"fire_move", GraphicFirewall, ClassMagic, ResistFire, MovementUnblockable, true, core.SoundNone, core.SoundNone},
	KindChainLightning:       {"chain_lightning", GraphicLightning, ClassMagic, ResistLightning, MovementDisabled, false, core.SoundLightning, core.SoundElectricImpact},
	KindRhino:                {"rhino", GraphicNone, ClassPhysical, ResistNone, MovementBlockable, true, core.SoundNone, core.SoundNone},
	KindMagmaBall:            {"magma_ball", GraphicMagmaBall, ClassMagic, ResistFire, MovementBlockable, true, core.SoundNone, core.SoundNone},
	KindLightningControlThin: {"lightning_control_thin", GraphicThinLightning, ClassMagic, ResistLightning, MovementDisabled, false, core.SoundNone, core.SoundNone},
	KindLightningThin:        {"lightning_thin", GraphicThinLightning, ClassMagic, ResistLightning, MovementDisabled, true, core.SoundLightning, core.SoundElectricImpact},
	KindFlare:                {"flare", GraphicFlare, ClassMagic, ResistMagic, MovementBlockable, true, core.SoundNone, core.SoundNone},
	KindFlareExplosion:       {"flare_explosion", GraphicFlareExplosion, ClassMagic, ResistMagic, MovementDisabled, true, core.SoundNone, core.SoundNone},
	KindTeleport:             {"teleport", GraphicNone, ClassMagic, ResistMagic, MovementDisabled, false, core.SoundElemental, core.SoundNone},
	KindFireArrow:            {"fire_arrow", GraphicFireArrow, ClassPhysical, ResistFire, MovementBlockable, true, core.SoundNone, core.SoundNone},
	KindStone:                {"stone", GraphicNone, ClassMagic, ResistMagic, MovementDisabled, false, core.SoundStone, core.SoundNone},
	KindGolem:                {"golem", GraphicNone, ClassMagic, ResistNone, MovementDisabled, false, core.SoundGolem, core.SoundNone},
	KindBoom:                 {"boom", GraphicBigExplosion, ClassMagic, ResistNone, MovementDisabled, true, core.SoundNone, core.SoundNone},
	KindHeal:                 {"heal", GraphicNone, ClassMagic, ResistNone, MovementDisabled, false, core.SoundNone, core.SoundNone},
	KindFirewallControl:      {"firewall_control", GraphicFirewall, ClassMagic, ResistFire, MovementDisabled, false, core.SoundNone, core.SoundNone},
	KindInfravision:          {"infravision", GraphicNone, ClassMagic, ResistNone, MovementDisabled, false, core.SoundInfravision, core.SoundNone},
	KindIdentify:             {"identify", GraphicNone, ClassMagic, ResistNone, MovementDisabled, false, core.SoundNone, core.SoundNone},
	KindFlameWave:            {"flame_wave", GraphicFirewall, ClassMagic, ResistFire, MovementDisabled, true, core.SoundFlameWave, core.SoundNone},
	KindNova:                 {"nova", GraphicLightning, ClassMagic, ResistLightning, MovementDisabled, false, core.SoundNova, core.SoundNone},
	KindBloodBoil:            {"blood_boil", GraphicNone, ClassMagic, ResistNone, MovementDisabled, false, core.SoundNone, core.SoundBloodBoil},
	KindApocalypse:           {"apocalypse", GraphicNewExplosion, ClassMagic, ResistMagic, MovementDisabled, true, core.SoundApocalypse, core.SoundNone},
	KindRepair:               {"repair", GraphicNone, ClassMagic, ResistNone, MovementDisabled, false, core.SoundNone, core.SoundNone},
	KindRecharge:             {"recharge", GraphicNone, ClassMagic, ResistNone, MovementDisabled, false, core.SoundNone, core.SoundNone},
	KindDisarm:               {"disarm", GraphicNone, ClassMagic, ResistNone, MovementDisabled, false, core.SoundTrapDisarm, core.SoundNone},
	KindFlame:                {"flame", GraphicInferno, ClassMagic, ResistFire, MovementDisabled, true, core.SoundFlameSpout, core.SoundNone},
	KindFlameControl:         {"flame_control", GraphicNone, ClassMagic, ResistFire, MovementDisabled, false, core.SoundNone, core.SoundNone},
	KindChargedBolt:          {"charged_bolt", GraphicMiniLightning, ClassMagic, ResistLightning, MovementBlockable, true, core.SoundChargedBolt, core.SoundNone},
	KindHolyBolt:             {"holy_bolt", GraphicHolyBolt, ClassMagic, ResistMagic, MovementBlockable, true, core.SoundHolyBolt, core.SoundElectricImpact},
	KindResurrect:            {"resurrect", GraphicNone, ClassMagic, ResistMagic, MovementDisabled, false, core.SoundNone, core.SoundResurrect},
	KindTelekinesis:          {"telekinesis", GraphicNone, ClassMagic, ResistNone, MovementDisabled, false, core.SoundEthereal, core.SoundNone},
	KindLightningArrow:       {"lightning_arrow", GraphicLightningArrow, ClassPhysical, ResistLightning, MovementBlockable, true, core.SoundNone, core.SoundNone},
	KindAcid:                 {"acid", GraphicAcid, ClassMagic, ResistAcid, MovementBlockable, true, core.SoundAcid, core.SoundNone},
	KindAcidSplat:            {"acid_splat", GraphicAcidSplash, ClassMagic, ResistAcid, MovementDisabled, true, core.SoundNone, core.SoundNone},
	KindAcidPuddle:           {"acid_puddle", GraphicAcidPuddle, ClassMagic, ResistAcid, MovementDisabled, true, core.SoundPuddle, core.SoundNone},
	KindHealOther:            {"heal_other", GraphicNone, ClassMagic, ResistNone, MovementDisabled, false, core.SoundNone, core.SoundNone},
	KindElemental:            {"elemental", GraphicFireRune, ClassMagic, ResistFire, MovementBlockable, true, core.SoundElemental, core.SoundNone},
	KindResurrectBeam:        {"resurrect_beam", GraphicResurrect, ClassMagic, ResistNone, MovementDisabled, true, core.SoundResurrect, core.SoundNone},
	KindBoneSpirit:           {"bone_spirit", GraphicSkullBall, ClassMagic, ResistMagic, MovementBlockable, true, core.SoundBoneSpirit, core.SoundBoneSpiritImpact},
	KindWeaponExplosion:      {"weapon_explosion", GraphicNone, ClassEffect, ResistNone, MovementDisabled, true, core.SoundNone, core.SoundNone},
	KindRedPortal:            {"red_portal", GraphicRedPortal, ClassMagic, ResistMagic, MovementDisabled, true, core.SoundPortal, core.SoundElemental},
	KindDiabloBoom:           {"diablo_boom", GraphicBigExplosion, ClassMagic, ResistNone, MovementDisabled, true, core.SoundNone, core.SoundNone},
	KindDiabloApocalypse:     {"diablo_apocalypse", GraphicNone, ClassMagic, ResistMagic, MovementDisabled, false, core.SoundNone, core.SoundNone},
	KindMana:                 {"mana", GraphicNone, ClassMagic, ResistNone, MovementDisabled, false, core.SoundNone, core.SoundNone},
	KindMagi:                 {"magi", GraphicNone, ClassMagic, ResistNone, MovementDisabled, false, core.SoundNone, core.SoundNone},
	KindLightningWall:        {"lightning_wall", GraphicLightning, ClassMagic, ResistLightning, MovementDisabled, true, core.SoundLightning, core.SoundElectricImpact},
	KindLightningWallControl: {"lightning_wall_control", GraphicLightning, ClassMagic, ResistLightning, MovementDisabled, false, core.SoundNone, core.SoundNone},
	KindImmolation:           {"immolation", GraphicFireball, ClassMagic, ResistFire, MovementDisabled, true, core.SoundFirebolt, core.SoundFireImpact},
	KindSpecialArrow:         {"special_arrow", GraphicArrows, ClassPhysical, ResistNone, MovementDisabled, true, core.SoundNone, core.SoundNone},
	KindFireNova:             {"fire_nova", GraphicFireball, ClassMagic, ResistFire, MovementBlockable, true, core.SoundFirebolt, core.SoundFireImpact},
	KindLightningTrailArrow:  {"lightning_trail_arrow", GraphicLightning, ClassMagic, ResistLightning, MovementDisabled, true, core.SoundLightning, core.SoundElectricImpact},
	KindChargedBoltArrow:     {"charged_bolt_arrow", GraphicMiniLightning, ClassMagic, ResistLightning, MovementBlockable, true, core.SoundChargedBolt, core.SoundNone},
	KindHolyBoltArrow:        {"holy_bolt_arrow", GraphicHolyBolt, ClassMagic, ResistMagic, MovementBlockable, true, core.SoundHolyBolt, core.SoundElectricImpact},
	KindWarp:                 {"warp", GraphicNone, ClassMagic, ResistNone, MovementDisabled, false, core.SoundEthereal, core.SoundNone},
	KindReflect:              {"reflect", GraphicReflect, ClassMagic, ResistNone, MovementDisabled, false, core.SoundMagic, core.SoundNone},
	KindBerserk:              {"berserk", GraphicNone, ClassMagic, ResistNone, MovementDisabled, false, core.SoundNone, core.SoundNone},
	KindFireRing:             {"fire_ring", GraphicFirewall, ClassMagic, ResistFire, MovementDisabled, false, core.SoundNone, core.SoundNone},
	KindStealPotions:         {"steal_potions", GraphicNone, ClassMagic, ResistNone, MovementDisabled, false, core.SoundNone, core.SoundNone},
	KindManaTrap:             {"mana_trap", GraphicNone, ClassMagic, ResistNone, MovementDisabled, false, core.SoundNone, core.SoundNone},
	KindSearch:               {"search", GraphicNone, ClassMagic, ResistNone, MovementDisabled, false, core.SoundNone, core.SoundNone},
	KindFireRune:             {"fire_rune", GraphicRuneGlow, ClassMagic, ResistNone, MovementDisabled, true, core.SoundNone, core.SoundNone},
	KindLightningRune:        {"lightning_rune", GraphicRuneGlow, ClassMagic, ResistNone, MovementDisabled, true, core.SoundNone, core.SoundNone},
	KindGreatLightningRune:   {"great_lightning_rune", GraphicRuneGlow, ClassMagic, ResistNone, MovementDisabled, true, core.SoundNone, core.SoundNone},
	KindImmolationRune:       {"immolation_rune", GraphicRuneGlow, ClassMagic, ResistNone, MovementDisabled, true, core.SoundNone, core.SoundNone},
	KindStoneRune:            {"stone_rune", GraphicRuneGlow, ClassMagic, ResistNone, MovementDisabled, true, core.SoundNone, core.SoundNone},
	KindRuneExplosion:        {"rune_explosion", GraphicBigExplosion, ClassMagic, ResistFire, MovementDisabled, true, core.SoundHiveExplode, core.SoundNone},
	KindHorkSpawn:            {"hork_spawn", GraphicSpawns, ClassMagic, ResistNone, MovementDisabled, true, core.SoundNone, core.SoundNone},
	KindJester:               {"jester", GraphicNone, ClassMagic, ResistNone, MovementDisabled, false, core.SoundNone, core.SoundNone},
	KindHiveExplosion:        {"hive_explosion", GraphicBigExplosion, ClassMagic, ResistFire, MovementDisabled, true, core.SoundHiveExplode, core.SoundNone},
	KindLichBolt:             {"lich_bolt", GraphicOrangeOrb, ClassMagic, ResistMagic, MovementBlockable, true, core.SoundNone, core.SoundNone},
	KindPsychOrb:             {"psych_orb", GraphicBlackOrb, ClassMagic, ResistMagic, MovementBlockable, true, core.SoundNone, core.SoundNone},
	KindNecromancerOrb:       {"necromancer_orb", GraphicRedOrb, ClassMagic, ResistMagic, MovementBlockable, true, core.SoundNone, core.SoundNone},
	KindArchLichBolt:         {"arch_lich_bolt", GraphicYellowOrb, ClassMagic, ResistMagic, MovementBlockable, true, core.SoundNone, core.SoundNone},
	KindBoneDemonBolt:        {"bone_demon_bolt", GraphicBlueOrb, ClassMagic, ResistMagic, MovementBlockable, true, core.SoundNone, core.SoundNone},
	KindExplosionYellow:      {"explosion_yellow", GraphicExplosionYellow, ClassMagic, ResistNone, MovementDisabled, true, core.SoundNone, core.SoundNone},
	KindExplosionRed:         {"explosion_red", GraphicExplosionRed, ClassMagic, ResistNone, MovementDisabled, true, core.SoundNone, core.SoundNone},
	KindExplosionBlue:        {"explosion_blue", GraphicExplosionBlue, ClassMagic, ResistNone, MovementDisabled, true, core.SoundNone, core.SoundNone},
	KindExplosionBlueLarge:   {"explosion_blue_large", GraphicExplosionBlueLarge, ClassMagic, ResistNone, MovementDisabled, true, core.SoundNone, core.SoundNone},
	KindExplosionOrange:      {"explosion_orange", GraphicExplosionOrange, ClassMagic, ResistNone, MovementDisabled, true, core.SoundNone, core.SoundNone},
}

// InfoOf returns the metadata for k, clamping unknown kinds to the arrow entry
func InfoOf(k Kind) *KindInfo {
	if k >= KindCount {
		return &kindInfo[KindArrow]
	}
	return &kindInfo[k]
}

func (k Kind) String() string {
	if k >= KindCount {
		return "unknown"
	}
	return kindInfo[k].Name
}

// KindByName resolves a kind from its metadata name
func KindByName(name string) (Kind, bool) {
	for k := Kind(0); k < KindCount; k++ {
		if kindInfo[k].Name == name {
			return k, true
		}
	}
	return 0, false
}

// IsPhysical reports whether the kind uses ranged to-hit and weapon damage bonuses
func (k Kind) IsPhysical() bool {
	return InfoOf(k).Class == ClassPhysical
}
