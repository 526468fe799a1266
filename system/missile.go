package system

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-missile/combat"
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/engine"
	"github.com/lixenwraith/vi-missile/event"
	"github.com/lixenwraith/vi-missile/parameter"
	"github.com/lixenwraith/vi-missile/status"
)

// MissileSystem owns every live missile of a level
// Registry order is insertion order and is the processing order
type MissileSystem struct {
	world    *engine.World
	combat   *combat.Resolver
	log      zerolog.Logger
	missiles []*component.Missile
	nextID   uint64
	capacity int
	enabled  bool

	statLive     *atomic.Int64
	statSpawned  *atomic.Int64
	statRejected *atomic.Int64
	statSwept    *atomic.Int64
	statTicks    *atomic.Int64
	statLastKind *status.Label
}

// NewMissileSystem creates an empty registry, capacity <= 0 selects parameter.MissileCapacity
func NewMissileSystem(world *engine.World, capacity int) *MissileSystem {
	if capacity <= 0 {
		capacity = parameter.MissileCapacity
	}
	reg := world.Status
	s := &MissileSystem{
		world:        world,
		combat:       combat.NewResolver(world),
		log:          world.Log.With().Str("system", "missile").Logger(),
		missiles:     make([]*component.Missile, 0, capacity),
		capacity:     capacity,
		enabled:      true,
		statLive:     reg.Ints.Get(status.MissileLive),
		statSpawned:  reg.Ints.Get(status.MissileSpawned),
		statRejected: reg.Ints.Get(status.MissileRejected),
		statSwept:    reg.Ints.Get(status.MissileSwept),
		statTicks:    reg.Ints.Get(status.TickCount),
		statLastKind: reg.Labels.Get(status.LastSpawnKind),
	}
	return s
}

func (s *MissileSystem) Name() string { return "missile" }

func (s *MissileSystem) Priority() int { return parameter.PriorityMissile }

func (s *MissileSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMissileSpawnRequest,
		event.EventLevelClear,
	}
}

func (s *MissileSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventLevelClear:
		s.Clear()
	case event.EventMissileSpawnRequest:
		if !s.enabled {
			return
		}
		p, ok := ev.Payload.(*event.MissileSpawnRequestPayload)
		if !ok {
			return
		}
		var parent *component.Missile
		if p.ParentID != 0 {
			parent = s.Find(p.ParentID)
		}
		s.Spawn(p.Origin, p.Dest, p.Dir, p.Kind, p.Target, p.Source, p.Damage, p.SpellLevel, parent)
	}
}

// Update runs one simulation tick
func (s *MissileSystem) Update() {
	if !s.enabled {
		return
	}
	s.Tick()
}

// SetEnabled pauses or resumes the tick and spawn requests
func (s *MissileSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Resolver exposes the combat resolver bound to this system's world
func (s *MissileSystem) Resolver() *combat.Resolver {
	return s.combat
}

// Missiles returns the live registry in processing order
// The slice is owned by the system and only valid until the next tick
func (s *MissileSystem) Missiles() []*component.Missile {
	return s.missiles
}

// Count returns the number of registry entries, including ones flagged for deletion
func (s *MissileSystem) Count() int {
	return len(s.missiles)
}

// Find returns the missile with the given id, nil when it is gone
func (s *MissileSystem) Find(id uint64) *component.Missile {
	for _, m := range s.missiles {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Clear drops every missile on level change
// Local player spell state driven by live missiles is restored first
func (s *MissileSystem) Clear() {
	w := s.world
	w.Automap = false

	if p := w.LocalPlayer(); p != nil {
		local := p.ID
		p.SpellFlags &^= component.FlagEtherealize

		if p.Infravision {
			for _, m := range s.missiles {
				if m.Kind == component.KindInfravision && m.Source == local {
					p.Infravision = false
					w.Reactions.RecalcPlayer(p)
				}
			}
		}

		if p.SpellFlags&(component.FlagRageActive|component.FlagRageCooldown) != 0 {
			p.SpellFlags &^= component.FlagRageActive | component.FlagRageCooldown
			for _, m := range s.missiles {
				if m.Kind != component.KindBloodBoil || m.Source != local {
					continue
				}
				missing := p.MaxHitPoints - p.HitPoints
				w.Reactions.RecalcPlayer(p)
				penalty := component.StateOf[component.RageState](m).Penalty
				s.combat.ApplyPlayerDamage(p, 0, 1, missing+penalty, false)
			}
		}
	}

	for _, m := range s.missiles {
		if w.InBounds(m.Position.Tile) {
			w.Dungeon.SetMissileMark(m.Position.Tile, false)
		}
		s.releaseLight(m)
	}
	clear(s.missiles)
	s.missiles = s.missiles[:0]
	s.statLive.Store(0)
	s.log.Debug().Msg("registry cleared")
}
