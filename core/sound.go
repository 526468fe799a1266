package core

// SoundType identifies a positional sound effect requested by the simulation
type SoundType int

const (
	SoundNone             SoundType = iota
	SoundFirebolt                   // Bolt launch
	SoundFireImpact                 // Small fire hit
	SoundFireImpactLarge            // Fireball burst
	SoundGuardian                   // Guardian summon
	SoundGuardianEnd                // Guardian fade
	SoundTeleport                   // Teleport and warp
	SoundWallLoop                   // Fire wall crackle
	SoundLightning                  // Lightning launch
	SoundElectricImpact             // Lightning hit
	SoundPortal                     // Portal open
	SoundElemental                  // Elemental impact and portal hum
	SoundNova                       // Nova and flash
	SoundManaShield                 // Shield up
	SoundEthereal                   // Warp
	SoundStone                      // Petrify
	SoundGolem                      // Golem summon
	SoundFlameWave                  // Flame wave
	SoundBloodBoil                  // Rage ends
	SoundApocalypse                 // Apocalypse cast
	SoundTrapDisarm                 // Disarm cast
	SoundFlameSpout                 // Inferno
	SoundChargedBolt                // Charged bolt launch
	SoundHolyBolt                   // Holy bolt launch
	SoundResurrect                  // Resurrect beam
	SoundAcid                       // Acid spit
	SoundPuddle                     // Acid puddle
	SoundMagic                      // Generic magic hum
	SoundBoneSpirit                 // Bone spirit launch
	SoundBoneSpiritImpact           // Bone spirit burst
	SoundHiveExplode                // Rune and hive burst
	SoundSearchEnd                  // Search expires
	SoundPotionPop                  // Potion stolen
	SoundManaTrap                   // Mana drained
	SoundInfravision                // Infravision cast
	SoundTypeCount
)
