package system

import (
	"github.com/lixenwraith/vi-missile/combat"
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
)

// CheckCollision resolves m against the actors and static blockers on tile
func (s *MissileSystem) CheckCollision(m *component.Missile, minDamage, maxDamage int, shifted bool, tile core.Point, dontDelete bool) {
	s.collide(m, combat.AttackOf(m, minDamage, maxDamage, shifted), tile, dontDelete)
}

func (s *MissileSystem) collide(m *component.Missile, a combat.Attack, tile core.Point, dontDelete bool) {
	w := s.world
	if !w.InBounds(tile) {
		return
	}
	dontDelete = dontDelete || m.DontDeleteOnCollision
	owned := m.Target != component.TargetBoth && !m.IsTrap()

	monsterHit := false
	mid := w.Dungeon.MonsterAt(tile)
	switch {
	case owned && m.Target == component.TargetMonsters:
		// Charging monsters are registered negative and only stone ones are struck
		if mid > 0 {
			monsterHit = s.combat.MonsterHitByPlayer(a, mid-1)
		} else if mid < 0 {
			if mon := w.Actors.Monster(-mid - 1); mon != nil && mon.Mode == component.MonsterPetrified {
				monsterHit = s.combat.MonsterHitByPlayer(a, -mid-1)
			}
		}
	case owned:
		attacker := w.Actors.Monster(m.Source)
		if attacker != nil && attacker.Flags&component.MonsterTargetsMonster != 0 && mid > 0 {
			if t := w.Actors.Monster(mid - 1); t != nil && t.Flags&component.MonsterGolemFlag != 0 {
				monsterHit = s.combat.MonsterHitByTrap(a, mid-1)
			}
		}
	case mid > 0:
		if m.Target == component.TargetBoth {
			monsterHit = s.combat.MonsterHitByPlayer(a, mid-1)
		} else {
			monsterHit = s.combat.MonsterHitByTrap(a, mid-1)
		}
	}
	if monsterHit {
		if !dontDelete {
			m.Range = 0
		}
		m.HitActor = true
	}

	playerHit, blocked := false, false
	if pid := w.Dungeon.PlayerAt(tile); pid > 0 {
		switch {
		case owned && m.Target == component.TargetMonsters:
			if pid-1 != m.Source {
				playerHit, blocked = s.combat.PlayerHitByPlayer(a, pid-1)
			}
		case owned:
			playerHit, blocked = s.combat.PlayerHitByMonster(a, pid-1, w.Actors.Monster(m.Source), false)
		default:
			ear := m.Anim.Graphic == component.GraphicFirewall || m.Anim.Graphic == component.GraphicLightning
			playerHit, blocked = s.combat.PlayerHitByMonster(a, pid-1, nil, ear)
		}
	}
	if playerHit {
		if w.Level.Hellfire && blocked {
			s.rotateBlocked(m)
		} else if !dontDelete {
			m.Range = 0
		}
		m.HitActor = true
	}

	if w.IsBlockedForMissile(tile) {
		if o := w.Dungeon.ObjectAt(tile); o != nil && o.Breakable && !o.Broken {
			w.Dungeon.BreakObject(o, -1)
		}
		if !dontDelete {
			m.Range = 0
		}
		m.HitActor = false
	}

	if m.Range == 0 {
		if snd := m.Info().ImpactSound; snd != core.SoundNone {
			w.Sound.PlayAt(snd, m.Position.Tile)
		}
	}
}

// rotateBlocked deflects a missile a shield turned away
func (s *MissileSystem) rotateBlocked(m *component.Missile) {
	rot := -1
	if s.world.Rnd(2) != 0 {
		rot = 1
	}
	if m.Anim.Graphic == component.GraphicArrows {
		m.Anim.Frame = (m.Anim.Frame+rot+15)%16 + 1
		return
	}
	facings := component.GraphicOf(m.Anim.Graphic).Facings
	dir := m.Anim.Facing + rot
	if dir < 0 {
		dir = facings - 1
	} else if dir >= facings {
		dir = 0
	}
	m.Anim.SetFacing(dir)
}

// --- Tile predicates ---

// missileSolid treats out-of-bounds tiles as solid
func (s *MissileSystem) missileSolid(p core.Point) bool {
	return !s.world.InBounds(p) || s.world.Dungeon.IsMissileSolid(p)
}

// tileOccupied reports walls, actors and blocking objects
func (s *MissileSystem) tileOccupied(p core.Point) bool {
	w := s.world
	if !w.InBounds(p) || w.Dungeon.IsWalkSolid(p) {
		return true
	}
	if w.Dungeon.MonsterAt(p) != 0 || w.Dungeon.PlayerAt(p) != 0 {
		return true
	}
	o := w.Dungeon.ObjectAt(p)
	return o != nil && !o.Broken
}

// posOkPlayer reports whether player p may stand on tile
func (s *MissileSystem) posOkPlayer(p *component.Player, tile core.Point) bool {
	w := s.world
	if !w.InBounds(tile) || w.Dungeon.IsWalkSolid(tile) {
		return false
	}
	if id := w.Dungeon.PlayerAt(tile); id != 0 && (p == nil || abs(id)-1 != p.ID) {
		return false
	}
	if w.Dungeon.MonsterAt(tile) != 0 {
		return false
	}
	o := w.Dungeon.ObjectAt(tile)
	return o == nil || o.MissilePassable
}

// tileAvailable reports whether a charging monster may move onto tile
func (s *MissileSystem) tileAvailable(mon *component.Monster, tile core.Point) bool {
	w := s.world
	if !w.InBounds(tile) || w.Dungeon.IsWalkSolid(tile) {
		return false
	}
	if id := w.Dungeon.MonsterAt(tile); id != 0 && abs(id)-1 != mon.ID {
		return false
	}
	if w.Dungeon.PlayerAt(tile) != 0 {
		return false
	}
	o := w.Dungeon.ObjectAt(tile)
	return o == nil || o.MissilePassable
}

// nearTrigger reports a level trigger within one step of p
func (s *MissileSystem) nearTrigger(p core.Point) bool {
	for _, t := range s.world.Dungeon.Triggers() {
		if t.Tile.WalkingDistance(p) < 2 {
			return true
		}
	}
	return false
}

// monsterOn resolves the monster registered on tile, standing or moving in
func (s *MissileSystem) monsterOn(tile core.Point) *component.Monster {
	if !s.world.InBounds(tile) {
		return nil
	}
	id := s.world.Dungeon.MonsterAt(tile)
	if id == 0 {
		return nil
	}
	return s.world.Actors.Monster(abs(id) - 1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
