package parameter

// Update order within a tick, ascending
const (
	PriorityMissile = 100
)
