package system

import (
	"math"

	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/parameter"
	"github.com/lixenwraith/vi-missile/search"
)

// portalLight is the opening radius curve of a portal in the dungeon
var portalLight = [...]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 15, 15}

// casterPlayer resolves the player index in Source regardless of target side
func (s *MissileSystem) casterPlayer(m *component.Missile) *component.Player {
	if m.Source < 0 {
		return nil
	}
	return s.world.Actors.Player(m.Source)
}

// --- Portals ---

func initTownPortal(s *MissileSystem, m *component.Missile, args spawnArgs) {
	w := s.world
	if w.Level.Depth == 0 {
		m.Position.Tile = args.dst
		m.Position.Start = args.dst
	} else {
		tile, ok := search.ClosestValid(args.dst, 0, parameter.SearchRadiusLanding, func(t core.Point) bool {
			if !w.InBounds(t) || w.Dungeon.ObjectAt(t) != nil || w.Dungeon.PlayerAt(t) != 0 || w.Dungeon.MissileMarked(t) {
				return false
			}
			return !w.Dungeon.IsWalkSolid(t) && !w.Dungeon.IsMissileSolid(t) && !s.nearTrigger(t)
		})
		if !ok {
			m.Deleted = true
			return
		}
		m.Position.Tile = tile
		m.Position.Start = tile
	}

	m.Range = parameter.PortalRange
	m.Scratch = &component.FadeState{FadeAt: parameter.PortalRange - m.Anim.Len}
	for _, other := range s.missiles {
		if other != m && other.Kind == component.KindTownPortal && other.Source == m.Source {
			other.Range = 0
		}
	}
	s.put(m)

	if w.IsLocal(m.Source) && w.Level.Depth != 0 {
		lvl := w.Level.Depth
		if w.Level.SetLevel {
			lvl = w.Level.SetLevelNum
		}
		w.Net.ActivatePortal(m.Source, m.Position.Tile, lvl, w.Level.Type, w.Level.SetLevel)
	}
}

func initRedPortal(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	m.Range = parameter.PortalRange
	m.Scratch = &component.FadeState{FadeAt: parameter.PortalRange - m.Anim.Len}
	s.put(m)
}

// updatePortal opens the portal light and, for town portals, carries standing players away
func updatePortal(s *MissileSystem, m *component.Missile) {
	w := s.world
	st := component.StateOf[component.FadeState](m)
	if m.Range > 1 {
		m.Range--
	}
	if m.Range == st.FadeAt {
		setFacing(m, 1)
	}
	if w.Level.Depth != 0 && m.Anim.Facing != 1 && m.Range != 0 {
		s.stepLight(m, portalLight[:], &st.LightStep)
	}

	if m.Kind == component.KindTownPortal {
		for _, p := range w.Actors.Players() {
			if p == nil || !p.Active || p.DungeonLevel != w.Level.Depth || p.LevelChanging {
				continue
			}
			if p.Mode != component.PlayerStand || p.Tile != m.Position.Tile {
				continue
			}
			if w.IsLocal(p.ID) {
				w.Net.Warp(p.ID, m.Source)
				p.Mode = component.PlayerNewLevel
			}
		}
	}

	if m.Range == 0 {
		m.Deleted = true
		s.releaseLight(m)
	}
}

// --- Teleports ---

func initTeleport(s *MissileSystem, m *component.Missile, args spawnArgs) {
	p := s.casterPlayer(m)
	if p == nil {
		m.Deleted = true
		return
	}
	tile, ok := search.ClosestValid(args.dst, 0, parameter.SearchRadiusLanding, func(t core.Point) bool {
		return s.posOkPlayer(p, t)
	})
	if !ok {
		m.Deleted = true
		return
	}
	m.Position.Tile = tile
	m.Position.Start = tile
	s.useMana(m, component.SpellTeleport)
	m.Range = 2
}

func initRandomTeleport(s *MissileSystem, m *component.Missile, args spawnArgs) {
	p := s.casterPlayer(m)
	m.Range = 2

	if m.Target == component.TargetBoth {
		tile := args.dst
		if !s.posOkPlayer(p, tile) {
			found, ok := search.ClosestValid(args.dst, 1, parameter.SearchRadiusTeleport, func(t core.Point) bool {
				return s.posOkPlayer(p, t)
			})
			if !ok {
				m.Deleted = true
				return
			}
			tile = found
		}
		m.Position.Tile = tile
		return
	}

	var candidates []core.Point
	for x := -6; x <= 6; x++ {
		for y := -6; y <= 6; y++ {
			if x >= -3 && x <= 3 && y >= -3 && y <= 3 {
				continue
			}
			t := m.Position.Start.Add(core.Displacement{DX: x, DY: y})
			if s.posOkPlayer(p, t) {
				candidates = append(candidates, t)
			}
		}
	}
	if len(candidates) == 0 {
		m.Deleted = true
		return
	}
	m.Position.Tile = candidates[s.world.Rnd(len(candidates))]
	s.useMana(m, component.SpellRandomTeleport)
}

// warpLanding is the tile beside a stairs trigger where warp puts the player
func warpLanding(t component.Trigger, typ component.DungeonType) core.Point {
	switch t.Kind {
	case component.TriggerNextLevel, component.TriggerPrevLevel, component.TriggerReturnLevel:
		if typ == component.DungeonCathedral || typ == component.DungeonCatacombs {
			return t.Tile.Add(core.Displacement{DY: 1})
		}
	}
	return t.Tile.Add(core.Displacement{DX: 1})
}

func initWarp(s *MissileSystem, m *component.Missile, _ spawnArgs) {
	src := m.Position.Start
	if p := s.casterPlayer(m); p != nil {
		src = p.Tile
	}
	best := math.MaxInt
	tile := src
	for _, t := range s.world.Dungeon.Triggers() {
		if !t.Kind.IsStairs() {
			continue
		}
		candidate := warpLanding(t, s.world.Level.Type)
		if d := candidate.ExactDistanceSq(src); d < best {
			best = d
			tile = candidate
		}
	}
	m.Range = 2
	m.Position.Tile = tile
	s.useMana(m, component.SpellWarp)
}

func updateTeleport(s *MissileSystem, m *component.Missile) {
	m.Range--
	if m.Range <= 0 {
		m.Deleted = true
		return
	}
	if p := s.casterPlayer(m); p != nil {
		s.world.Reactions.MovePlayer(p, m.Position.Tile)
	}
}
