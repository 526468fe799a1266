package system

import (
	"github.com/lixenwraith/vi-missile/component"
)

// Tick advances every missile by one simulation step
func (s *MissileSystem) Tick() {
	w := s.world
	w.Tick++
	s.statTicks.Add(1)

	for _, m := range s.missiles {
		if w.InBounds(m.Position.Tile) {
			w.Dungeon.SetMissileMark(m.Position.Tile, false)
		} else {
			m.Deleted = true
		}
	}
	s.sweep()

	w.PreDraw = false

	// Index loop, children spawned during the pass are processed in the same pass
	for i := 0; i < len(s.missiles); i++ {
		m := s.missiles[i]
		if h := catalog[m.Kind].update; h != nil {
			h(s, m)
		}
		m.Anim.Advance()
	}

	s.checkManaShield()
	s.sweep()

	for _, m := range s.missiles {
		s.put(m)
	}
	s.statLive.Store(int64(len(s.missiles)))
}

// put marks the missile tile and raises the world pre-draw flag
// Out-of-bounds survivors are flagged for the next sweep
func (s *MissileSystem) put(m *component.Missile) {
	w := s.world
	if !w.InBounds(m.Position.Tile) {
		m.Deleted = true
	}
	if m.Deleted {
		return
	}
	w.Dungeon.SetMissileMark(m.Position.Tile, true)
	if m.PreDraw {
		w.PreDraw = true
	}
}

// sweep compacts the registry in place, releasing the light of every removed missile
func (s *MissileSystem) sweep() {
	n := 0
	for _, m := range s.missiles {
		if !m.Deleted {
			s.missiles[n] = m
			n++
			continue
		}
		s.releaseLight(m)
		s.log.Trace().Uint64("id", m.ID).Str("kind", m.Kind.String()).Msg("swept")
	}
	if removed := len(s.missiles) - n; removed > 0 {
		s.statSwept.Add(int64(removed))
	}
	clear(s.missiles[n:])
	s.missiles = s.missiles[:n]
}

// checkManaShield drops the local shield once mana runs out
func (s *MissileSystem) checkManaShield() {
	p := s.world.LocalPlayer()
	if p == nil || !p.ManaShield || p.Mana > 0 {
		return
	}
	p.ManaShield = false
	s.world.Net.RemoveShield(p.ID)
}

// releaseLight gives up the missile's light, a borrowed light goes back to its monster
func (s *MissileSystem) releaseLight(m *component.Missile) {
	if m.Light == component.NoLight {
		return
	}
	if m.LightBorrowed {
		if mon := s.world.Actors.Monster(m.Source); mon != nil {
			mon.Light = m.Light
		}
	} else {
		s.world.Lights.Remove(m.Light)
	}
	m.Light = component.NoLight
	m.LightBorrowed = false
}
