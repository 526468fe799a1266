package parameter

import "time"

// GameUpdateInterval is one simulation tick, 20 per second
const GameUpdateInterval = 50 * time.Millisecond

// Event ring capacity, a power of two so EventBufferMask can wrap indices
const (
	EventQueueSize  = 2048
	EventBufferMask = EventQueueSize - 1
)

// DefaultSeed seeds the shared simulation generator when config provides none
const DefaultSeed uint64 = 0x5EED_D1AB_0000_0001
