package system

import (
	"github.com/lixenwraith/vi-missile/combat"
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/parameter"
	"github.com/lixenwraith/vi-missile/vmath"
)

// updateVelocity aims the missile from its tile at dest with the given pixel speed
func (s *MissileSystem) updateVelocity(m *component.Missile, dest core.Point, speed int) {
	m.Position.Velocity = vmath.Velocity(m.Position.Tile, dest, speed)
}

// updatePos projects the traveled distance back onto the grid and moves the light offset
func (s *MissileSystem) updatePos(m *component.Missile) {
	pos := &m.Position
	pixels := pos.Traveled.Shr(vmath.Shift)
	tileOff := vmath.ScreenToMissile(pixels)
	pos.Tile = pos.Start.Add(tileOff)
	pos.Offset = pixels.Add(vmath.WorldToScreen(tileOff))
	if m.Light != component.NoLight {
		s.world.Lights.SetOffset(m.Light, vmath.ScreenToLight(pixels).Sub(tileOff.Scale(8)))
	}
}

// advance integrates one tick of velocity without collision
func (s *MissileSystem) advance(m *component.Missile) {
	m.Position.Traveled = m.Position.Traveled.Add(m.Position.Velocity)
	s.updatePos(m)
}

// collisionHash fingerprints the actors standing on tile
func (s *MissileSystem) collisionHash(tile core.Point) int {
	if !s.world.InBounds(tile) {
		return -1
	}
	return s.world.Dungeon.MonsterAt(tile) ^ s.world.Dungeon.PlayerAt(tile)
}

// MoveAndCollide advances m one tick and resolves collisions against every tile it crossed
// ignoreStart skips the terminal check while still on the start tile,
// stopBefore rewinds to the last clear position when the flight ends on a hit
func (s *MissileSystem) MoveAndCollide(m *component.Missile, minDamage, maxDamage int, ignoreStart, stopBefore bool) {
	s.moveAttack(m, combat.AttackOf(m, minDamage, maxDamage, false), ignoreStart, stopBefore)
}

func (s *MissileSystem) moveAttack(m *component.Missile, a combat.Attack, ignoreStart, stopBefore bool) {
	a.Shifted = false
	pos := &m.Position
	prev := pos.Tile
	s.advance(m)

	var visits int
	if pos.Velocity.DX == 0 || pos.Velocity.DY == 0 {
		visits = prev.WalkingDistance(pos.Tile)
	} else {
		visits = prev.ManhattanDistance(pos.Tile)
	}

	// Slow missiles strike an occupant once while they linger on its tile
	hash := s.collisionHash(pos.Tile)
	if visits == 0 && hash == m.LastCollisionHash {
		return
	}
	m.LastCollisionHash = hash

	if visits > 1 {
		steps := parameter.MissileSubstepScale * (visits - 1)
		inc := core.Displacement{DX: pos.Velocity.DX / steps, DY: pos.Velocity.DY / steps}
		traveled := pos.Traveled.Sub(pos.Velocity)
		for i := 0; i <= steps && !inc.IsZero(); i++ {
			traveled = traveled.Add(inc)
			tile := pos.Start.Add(vmath.ScreenToMissile(traveled.Shr(vmath.Shift)))
			if tile == pos.Tile {
				break
			}
			if tile == prev {
				continue
			}
			prev = tile

			s.collide(m, a, tile, false)
			if m.Range != 0 {
				continue
			}
			blockable := m.Info().Movement == component.MovementBlockable
			if (m.HitActor && blockable) || s.world.IsBlockedForMissile(tile) {
				pos.Traveled = traveled
				if stopBefore && m.Range == 0 {
					pos.Traveled = pos.Traveled.Sub(inc)
					s.updatePos(m)
					pos.Stop()
				} else {
					s.updatePos(m)
				}
				return
			}
		}
	}

	if ignoreStart && pos.Start == pos.Tile {
		return
	}
	s.collide(m, a, pos.Tile, false)
	if stopBefore && m.Range == 0 {
		pos.Traveled = pos.Traveled.Sub(pos.Velocity)
		s.updatePos(m)
		pos.Stop()
	}
}

// travel advances m one tick without damage and stops on the first crossed tile blocked accepts
func (s *MissileSystem) travel(m *component.Missile, blocked func(core.Point) bool) bool {
	pos := &m.Position
	prev := pos.Tile
	s.advance(m)
	if prev == pos.Tile {
		return false
	}

	steps := parameter.MissileSubstepScale * prev.WalkingDistance(pos.Tile)
	inc := core.Displacement{DX: pos.Velocity.DX / steps, DY: pos.Velocity.DY / steps}
	traveled := pos.Traveled.Sub(pos.Velocity)
	for i := 0; i < steps && !inc.IsZero(); i++ {
		traveled = traveled.Add(inc)
		tile := pos.Start.Add(vmath.ScreenToMissile(traveled.Shr(vmath.Shift)))
		if tile == prev {
			continue
		}
		prev = tile
		if blocked(tile) {
			pos.Traveled = traveled
			s.updatePos(m)
			return true
		}
		if tile == pos.Tile {
			return false
		}
	}
	return prev != pos.Tile && blocked(pos.Tile)
}

// shiftSouth nudges a ground effect one tile down keeping its screen position
func shiftSouth(m *component.Missile) {
	m.Position.Tile = m.Position.Tile.Add(core.Displacement{DX: 1, DY: 1})
	m.Position.Offset.DY -= 32
}

// moveChargePos corrects a charging monster's tile toward the south
func (s *MissileSystem) moveChargePos(m *component.Missile, mon *component.Monster) {
	var dir core.Direction
	switch core.Direction(m.Anim.Facing) {
	case core.East:
		dir = core.SouthEast
	case core.West:
		dir = core.SouthWest
	case core.South, core.SouthWest, core.SouthEast:
		dir = core.South
	default:
		return
	}
	target := m.Position.Tile.Step(dir)
	if s.tileAvailable(mon, target) {
		m.Position.Tile = target
		m.Position.Offset = m.Position.Offset.Add(vmath.WorldToScreen(dir.Offset()))
	}
}
