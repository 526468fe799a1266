package system

import (
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
)

// spawnArgs are the initializer inputs that are not stored on the missile
type spawnArgs struct {
	dst    core.Point
	dir    core.Direction
	parent *component.Missile
}

// Spawn creates a missile of kind at origin and runs its initializer
// Returns nil when the registry is full, the returned missile may already be flagged deleted
func (s *MissileSystem) Spawn(origin, dst core.Point, dir core.Direction, kind component.Kind, target component.Target,
	source, damage, spellLevel int, parent *component.Missile) *component.Missile {
	if kind >= component.KindCount {
		s.log.Warn().Uint8("kind", uint8(kind)).Msg("spawn of unknown kind")
		return nil
	}
	if len(s.missiles) >= s.capacity {
		s.statRejected.Add(1)
		s.log.Debug().Str("kind", kind.String()).Int("capacity", s.capacity).Msg("spawn rejected")
		return nil
	}

	info := component.InfoOf(kind)
	s.nextID++
	m := &component.Missile{
		ID:         s.nextID,
		Kind:       kind,
		Target:     target,
		Source:     source,
		Damage:     damage,
		SpellLevel: spellLevel,
		Position:   component.Position{Tile: origin, Start: origin},
		Visible:    info.Visible,
		Light:      component.NoLight,
	}
	if parent != nil {
		m.ParentID = parent.ID
	}
	if target == component.TargetPlayers && source >= 0 {
		if mon := s.world.Actors.Monster(source); mon != nil && mon.Unique {
			m.UniqueTint = mon.UniqueTint + 1
		}
	}

	m.Anim.Add = 1
	m.Anim.Graphic = info.Graphic
	if info.Graphic == component.GraphicNone || component.GraphicOf(info.Graphic).Facings < 8 {
		m.Anim.SetFacing(0)
	} else {
		m.Anim.SetFacing(int(dir))
	}

	s.missiles = append(s.missiles, m)
	s.statSpawned.Add(1)
	s.statLastKind.Store(kind.String())

	if info.CastSound != core.SoundNone {
		s.world.Sound.PlayAt(info.CastSound, origin)
	}
	if h := catalog[kind].init; h != nil {
		h(s, m, spawnArgs{dst: dst, dir: dir, parent: parent})
	}
	return m
}
