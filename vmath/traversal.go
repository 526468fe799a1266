package vmath

import (
	"math"

	"github.com/lixenwraith/vi-missile/core"
)

// GridTraverser is a zero-allocation Supercover DDA iterator over the tiles a line crosses
// The line runs between tile centers so every corner-touching tile is visited
type GridTraverser struct {
	curr, target core.Point
	stepX, stepY int

	tMaxX, tMaxY     int64
	tDeltaX, tDeltaY int64

	started bool
	done    bool
}

// NewGridTraverser creates an iterator from tile a to tile b, both included
func NewGridTraverser(a, b core.Point) GridTraverser {
	t := GridTraverser{curr: a, target: b, stepX: 1, stepY: 1}

	dx := int64(b.X - a.X)
	dy := int64(b.Y - a.Y)
	if dx < 0 {
		t.stepX = -1
		dx = -dx
	}
	if dy < 0 {
		t.stepY = -1
		dy = -dy
	}

	// Start from the tile center, half a tile from either edge
	if dx == 0 {
		t.tMaxX = math.MaxInt64
	} else {
		t.tDeltaX = (Scale << Shift) / (dx << Shift)
		t.tMaxX = t.tDeltaX / 2
	}
	if dy == 0 {
		t.tMaxY = math.MaxInt64
	} else {
		t.tDeltaY = (Scale << Shift) / (dy << Shift)
		t.tMaxY = t.tDeltaY / 2
	}
	return t
}

// Next advances the traverser, returns true while a tile is available via Pos
func (t *GridTraverser) Next() bool {
	if t.done {
		return false
	}
	if !t.started {
		t.started = true
		return true
	}
	if t.curr == t.target {
		t.done = true
		return false
	}

	switch {
	case t.tMaxX < t.tMaxY:
		if t.curr.X != t.target.X {
			t.curr.X += t.stepX
			t.tMaxX += t.tDeltaX
		} else {
			t.curr.Y += t.stepY
			t.tMaxY += t.tDeltaY
		}
	case t.tMaxX > t.tMaxY:
		if t.curr.Y != t.target.Y {
			t.curr.Y += t.stepY
			t.tMaxY += t.tDeltaY
		} else {
			t.curr.X += t.stepX
			t.tMaxX += t.tDeltaX
		}
	default:
		// Diagonal step through a shared corner
		if t.curr.X != t.target.X {
			t.curr.X += t.stepX
			t.tMaxX += t.tDeltaX
		}
		if t.curr.Y != t.target.Y {
			t.curr.Y += t.stepY
			t.tMaxY += t.tDeltaY
		}
	}
	return true
}

// Pos returns the current tile
func (t *GridTraverser) Pos() core.Point {
	return t.curr
}

// LineClear reports whether every tile strictly between a and b passes clear
func LineClear(a, b core.Point, clear func(core.Point) bool) bool {
	t := NewGridTraverser(a, b)
	for t.Next() {
		p := t.Pos()
		if p == a || p == b {
			continue
		}
		if !clear(p) {
			return false
		}
	}
	return true
}
