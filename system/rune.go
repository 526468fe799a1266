package system

import (
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/parameter"
	"github.com/lixenwraith/vi-missile/search"
)

const runeLight = 8

// placeRune settles the rune on the closest free floor tile around dst
func (s *MissileSystem) placeRune(m *component.Missile, dst core.Point, payload component.Kind) {
	w := s.world
	if !w.LineClear(m.Position.Start, dst) {
		m.Deleted = true
		return
	}
	tile, ok := search.ClosestValid(dst, 0, parameter.SearchRadiusRune, func(t core.Point) bool {
		return w.InBounds(t) && w.Dungeon.ObjectAt(t) == nil && !w.Dungeon.MissileMarked(t) && !w.Dungeon.IsWalkSolid(t)
	})
	if !ok {
		m.Deleted = true
		return
	}
	m.Position.Tile = tile
	m.Scratch = &component.RuneState{Payload: payload}
	s.addLight(m, runeLight)
	m.Range = 1
}

// runeOf builds the initializer of a rune that releases payload when stepped on
func runeOf(payload component.Kind) func(*MissileSystem, *component.Missile, spawnArgs) {
	return func(s *MissileSystem, m *component.Missile, args spawnArgs) {
		s.placeRune(m, args.dst, payload)
	}
}

func initLightningRune(s *MissileSystem, m *component.Missile, args spawnArgs) {
	lvl := 0
	if m.Source >= 0 {
		lvl = s.playerLevel(m, 0)
	}
	m.Damage = 16 * (s.rndSum(10, 2) + lvl + 2)
	s.placeRune(m, args.dst, component.KindLightningWall)
}

// updateRune waits for any actor to step on the tile, then fires the payload at it
func updateRune(s *MissileSystem, m *component.Missile) {
	w := s.world
	tile := m.Position.Tile
	var target core.Point
	found := false
	if mid := w.Dungeon.MonsterAt(tile); mid != 0 {
		if mon := w.Actors.Monster(abs(mid) - 1); mon != nil {
			target, found = mon.Tile, true
		}
	} else if pid := w.Dungeon.PlayerAt(tile); pid != 0 {
		if p := w.Actors.Player(abs(pid) - 1); p != nil {
			target, found = p.Tile, true
		}
	}

	if found {
		m.Deleted = true
		s.releaseLight(m)
		payload := component.StateOf[component.RuneState](m).Payload
		s.Spawn(tile, tile, core.GetDirection(tile, target), payload, component.TargetBoth, m.Source, m.Damage, m.SpellLevel, m)
	}
	s.put(m)
}
