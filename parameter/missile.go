package parameter

// Registry
const (
	// MissileCapacity is the maximum number of live missiles, Spawn fails beyond it
	MissileCapacity = 125

	// MissileFlightRange is the range budget of every free-flying projectile
	MissileFlightRange = 256

	// MissileSubstepScale is the sub-tick divisor used when a move crosses several tiles
	// One sub-step advances velocity/(MissileSubstepScale*(n-1))
	MissileSubstepScale = 100
)

// Projectile Speeds (pixels per tick before Q16.16 scaling)
const (
	SpeedArrow          = 32
	SpeedFirebolt       = 26
	SpeedFireboltBase   = 16 // Monster casters, grows with spell level
	SpeedFireboltMax    = 47 // Cap of the per-level firebolt bonus
	SpeedFireballMax    = 34 // Cap of the per-level fireball bonus
	SpeedBolt           = 16
	SpeedChargedBolt    = 8
	SpeedLightningCtrl  = 32
	SpeedRhino          = 18
	SpeedHorkSpawn      = 8
	SpeedRandomArrowMin = 16
	SpeedRandomArrowRnd = 32
)

// Light Radii
const (
	LightRadiusBolt        = 8
	LightRadiusChargedBolt = 5
	LightRadiusChargedHit  = 8
	LightRadiusArrow       = 5
	LightRadiusLightning   = 4
	LightRadiusGuardianMax = 15
	LightRadiusBerserk     = 3
	LightRadiusBerserkHell = 9 // Depths 17 to 20
)

// Search Radii for closest valid position
const (
	SearchRadiusLanding  = 5  // Teleport, stone, golem, guardian, portal
	SearchRadiusRune     = 9  // Rune placement from the cursor
	SearchRadiusPotions  = 2  // Potion theft rings
	SearchRadiusManaTrap = 2
	SearchRadiusHoming   = 19 // Elemental and bone spirit re-aim
	SearchRadiusChainMax = 19
	SearchRadiusTeleport = 49 // Random teleport fallback scan for traps
)

// Durations
const (
	GuardianMaxRange   = 30  // In 16-tick units before the shift
	StoneMaxDuration   = 15  // In 16-tick units before the shift
	PortalRange        = 100 // Town and red portal lifetime
	LightningWallRange = 255
	SearchBaseRange    = 245
	FlameExtraRange    = 20
	ShatterRange       = 11
	BoneSpiritImpact   = 7
)

// Reflect
const (
	// ReflectMaxCharges is the largest reflect count a player may hold
	ReflectMaxCharges = 0xFFFF
)
