package engine

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/event"
	"github.com/lixenwraith/vi-missile/parameter"
	"github.com/lixenwraith/vi-missile/status"
	"github.com/lixenwraith/vi-missile/vmath"
)

// LevelInfo is the per-level state missiles read
type LevelInfo struct {
	Depth        int
	Type         component.DungeonType
	SetLevel     bool
	SetLevelNum  int
	Hellfire     bool // Expansion rules
	Multiplayer  bool
	FriendlyFire bool
}

// IsTown reports whether the current level is the town
func (l LevelInfo) IsTown() bool {
	return l.Type == DungeonTown
}

// DungeonTown aliases the component value for brevity at call sites
const DungeonTown = component.DungeonTown

// World is the simulation state passed to every system and collaborator
// It replaces process globals: one World per simulated session
type World struct {
	Dungeon   Dungeon
	Actors    Actors
	Reactions Reactions
	Lights    Lighting
	Sound     Sound

	Events *event.EventQueue
	Net    *event.Emitter
	Status *status.Registry
	Log    zerolog.Logger
	Rng    *vmath.FastRand

	Level   LevelInfo
	Tick    int64
	PreDraw bool // Some missile must draw before monsters this frame
	Automap bool // Search reveals items on the automap
}

// Options configures NewWorld
type Options struct {
	Seed   uint64
	Level  LevelInfo
	Log    zerolog.Logger
	Events *event.EventQueue
	Status *status.Registry
}

// NewWorld builds a World around the given collaborators
// Nil queue or registry are created, a zero seed falls back to parameter.DefaultSeed
func NewWorld(d Dungeon, a Actors, r Reactions, l Lighting, s Sound, opts Options) *World {
	if opts.Seed == 0 {
		opts.Seed = parameter.DefaultSeed
	}
	if opts.Events == nil {
		opts.Events = event.NewEventQueue()
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	if s == nil {
		s = NopSound{}
	}
	w := &World{
		Dungeon:   d,
		Actors:    a,
		Reactions: r,
		Lights:    l,
		Sound:     s,
		Events:    opts.Events,
		Status:    opts.Status,
		Log:       opts.Log,
		Rng:       vmath.NewFastRand(opts.Seed),
		Level:     opts.Level,
	}
	w.Net = &event.Emitter{Queue: w.Events, Tick: func() int64 { return w.Tick }}
	return w
}

// Rnd returns a value in [0, n), 0 when n <= 0
func (w *World) Rnd(n int) int {
	return w.Rng.Intn(n)
}

// InBounds reports whether p lies on the level grid
func (w *World) InBounds(p core.Point) bool {
	return w.Dungeon.Bounds().Contains(p)
}

// IsLocal reports whether the player index is the peer running this simulation
func (w *World) IsLocal(player int) bool {
	return player == w.Actors.LocalPlayer()
}

// LocalPlayer returns the record of the peer's own player
func (w *World) LocalPlayer() *component.Player {
	return w.Actors.Player(w.Actors.LocalPlayer())
}

// IsBlockedForMissile reports out-of-bounds, missile-solid or a missile-blocking object
func (w *World) IsBlockedForMissile(p core.Point) bool {
	if !w.InBounds(p) {
		return true
	}
	if w.Dungeon.IsMissileSolid(p) {
		return true
	}
	if o := w.Dungeon.ObjectAt(p); o != nil && o.BlocksMissiles() {
		return true
	}
	return false
}

// LineClear reports whether a missile can travel from a to b without hitting a solid tile
func (w *World) LineClear(a, b core.Point) bool {
	return vmath.LineClear(a, b, func(p core.Point) bool {
		return !w.IsBlockedForMissile(p)
	})
}

// CheckBlock walks 8-way from a toward b and reports whether any stepped tile is walk-solid
func (w *World) CheckBlock(a, b core.Point) bool {
	for a != b {
		a = a.Step(core.GetDirection(a, b))
		if !w.InBounds(a) || w.Dungeon.IsWalkSolid(a) {
			return true
		}
	}
	return false
}
