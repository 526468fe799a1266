package status

import "sync/atomic"

// Metric keys written by the simulation
const (
	MissileLive     = "missile.live"
	MissileSpawned  = "missile.spawned"
	MissileRejected = "missile.rejected"
	MissileSwept    = "missile.swept"
	LightLive       = "light.live"
	CombatHits      = "combat.hits"
	CombatBlocks    = "combat.blocks"
	CombatResisted  = "combat.resisted"
	TickCount       = "tick.count"
	TickMillis      = "tick.ms"
	LastSpawnKind   = "missile.last_kind"
	SelectedKind    = "sandbox.kind"
)

// Registry groups the metric tables shared by systems and the HUD
// Writers resolve their cells once at construction
type Registry struct {
	Ints   Table[atomic.Int64]
	Floats Table[Float]
	Labels Table[Label]
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Counter is one integer metric reading
type Counter struct {
	Key   string
	Value int64
}

// Counters reads every integer metric in key order
func (r *Registry) Counters() []Counter {
	keys := r.Ints.Keys()
	out := make([]Counter, len(keys))
	for i, k := range keys {
		out[i] = Counter{Key: k, Value: r.Ints.Get(k).Load()}
	}
	return out
}
