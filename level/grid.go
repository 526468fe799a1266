package level

import (
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
)

// Grid is a dense in-memory dungeon level
// All per-tile layers are 1D arrays: index = y*Width + x
type Grid struct {
	Width  int
	Height int

	walkSolid    []bool
	missileSolid []bool
	monsters     []int
	players      []int
	marks        []bool
	objects      []*component.Object
	triggers     []component.Trigger
}

// NewGrid creates an open level of the given size
func NewGrid(width, height int) *Grid {
	n := width * height
	return &Grid{
		Width:        width,
		Height:       height,
		walkSolid:    make([]bool, n),
		missileSolid: make([]bool, n),
		monsters:     make([]int, n),
		players:      make([]int, n),
		marks:        make([]bool, n),
		objects:      make([]*component.Object, n),
	}
}

func (g *Grid) index(p core.Point) (int, bool) {
	if p.X < 0 || p.X >= g.Width || p.Y < 0 || p.Y >= g.Height {
		return 0, false
	}
	return p.Y*g.Width + p.X, true
}

func (g *Grid) Bounds() core.Area {
	return core.Area{Width: g.Width, Height: g.Height}
}

// SetWall makes p solid for walking and missiles
func (g *Grid) SetWall(p core.Point) {
	g.SetSolid(p, true, true)
}

// SetSolid sets the walk and missile solidity of p independently
// Pillars and grates block walking but let missiles through
func (g *Grid) SetSolid(p core.Point, walk, missile bool) {
	if i, ok := g.index(p); ok {
		g.walkSolid[i] = walk
		g.missileSolid[i] = missile
	}
}

func (g *Grid) IsWalkSolid(p core.Point) bool {
	i, ok := g.index(p)
	return !ok || g.walkSolid[i]
}

func (g *Grid) IsMissileSolid(p core.Point) bool {
	i, ok := g.index(p)
	return !ok || g.missileSolid[i]
}

// PlaceObject puts o on its tile, replacing any previous object
func (g *Grid) PlaceObject(o *component.Object) {
	if i, ok := g.index(o.Tile); ok {
		g.objects[i] = o
	}
}

func (g *Grid) ObjectAt(p core.Point) *component.Object {
	if i, ok := g.index(p); ok {
		return g.objects[i]
	}
	return nil
}

// BreakObject smashes a breakable object, the debris no longer blocks missiles
func (g *Grid) BreakObject(o *component.Object, breaker int) {
	if o == nil || !o.Breakable || o.Broken {
		return
	}
	o.Broken = true
	o.MissilePassable = true
}

func (g *Grid) MonsterAt(p core.Point) int {
	if i, ok := g.index(p); ok {
		return g.monsters[i]
	}
	return 0
}

func (g *Grid) SetMonsterAt(p core.Point, id int) {
	if i, ok := g.index(p); ok {
		g.monsters[i] = id
	}
}

func (g *Grid) PlayerAt(p core.Point) int {
	if i, ok := g.index(p); ok {
		return g.players[i]
	}
	return 0
}

// SetPlayerAt writes the player occupant of p using the grid id convention
func (g *Grid) SetPlayerAt(p core.Point, id int) {
	if i, ok := g.index(p); ok {
		g.players[i] = id
	}
}

func (g *Grid) SetMissileMark(p core.Point, on bool) {
	if i, ok := g.index(p); ok {
		g.marks[i] = on
	}
}

func (g *Grid) MissileMarked(p core.Point) bool {
	if i, ok := g.index(p); ok {
		return g.marks[i]
	}
	return false
}

// AddTrigger registers a level transition
func (g *Grid) AddTrigger(t component.Trigger) {
	g.triggers = append(g.triggers, t)
}

func (g *Grid) Triggers() []component.Trigger {
	return g.triggers
}

// IsFree reports an in-bounds walkable tile with no actor or object
func (g *Grid) IsFree(p core.Point) bool {
	i, ok := g.index(p)
	if !ok {
		return false
	}
	return !g.walkSolid[i] && g.monsters[i] == 0 && g.players[i] == 0 && g.objects[i] == nil
}
