package parameter

// Hit Chance Bounds
const (
	// HitChanceMin is the lowest hit chance percent against monsters and in player duels
	HitChanceMin = 5

	// HitChanceMax is the highest hit chance percent against monsters and in player duels
	HitChanceMax = 95

	// PlayerHitChanceMax caps monster and trap hits against players
	PlayerHitChanceMax = 100

	// PlayerHitBase is the starting hit chance of monster and trap missiles against players
	PlayerHitBase = 40

	// TrapHitBase is the trap-versus-monster starting hit chance
	TrapHitBase = 90
)

// PlayerHitFloors maps dungeon depth to the minimum chance of being hit
// Depths below the first entry use PlayerHitFloorDefault
var PlayerHitFloors = [...]struct {
	Depth int
	Floor int
}{
	{14, 20},
	{15, 25},
	{16, 30},
}

// PlayerHitFloorDefault is the floor applied above depth 14
const PlayerHitFloorDefault = 10

// Damage
const (
	// DamageShift converts whole hit points to the 1/64 units of the health pool
	DamageShift = 6

	// PlayerMinimumDamage is the smallest shifted hit a player can take
	PlayerMinimumDamage = 64

	// ManaShieldBase is the absorption divisor of an unlevelled mana shield
	ManaShieldBase = 24
)

// Self Damage of blood spells, in whole hit points
const (
	FlareSelfDamage      = 5
	BoneSpiritSelfDamage = 6
)
