package vmath

import (
	"testing"

	"github.com/lixenwraith/vi-missile/core"
)

// TestScreenToMissileRoundTrip verifies whole-tile pixel offsets map back to the same tiles
func TestScreenToMissileRoundTrip(t *testing.T) {
	for _, d := range []core.Displacement{{DX: 1}, {DY: 1}, {DX: -2, DY: 3}, {DX: 4, DY: 4}} {
		pixels := WorldToScreen(d).Scale(-1)
		got := ScreenToMissile(pixels)
		if got != d {
			t.Errorf("Expected %+v, got %+v", d, got)
		}
	}
}

// TestScreenToMissileTruncates verifies partial tiles do not round up
func TestScreenToMissileTruncates(t *testing.T) {
	got := ScreenToMissile(core.Displacement{DX: 31, DY: 15})
	if !got.IsZero() {
		t.Errorf("Expected zero displacement, got %+v", got)
	}
	got = ScreenToMissile(core.Displacement{DX: -31, DY: -15})
	if !got.IsZero() {
		t.Errorf("Expected truncation toward zero, got %+v", got)
	}
}

// TestVelocityDirection verifies velocity moves toward the destination tile
func TestVelocityDirection(t *testing.T) {
	origin := core.Point{X: 10, Y: 10}
	for d := core.South; d < core.DirectionCount; d++ {
		dest := origin.Add(d.Offset().Scale(5))
		v := Velocity(origin, dest, 32)
		// Enough ticks to cross several tiles
		pixels := v.Scale(8).Shr(Shift)
		step := ScreenToMissile(pixels)
		if step.IsZero() {
			t.Errorf("Expected movement toward %d, got none", d)
			continue
		}
		got := core.GetDirection(origin, origin.Add(step))
		if got != d {
			t.Errorf("Expected direction %d, got %d (step %+v)", d, got, step)
		}
	}
}

// TestVelocitySameTile verifies a zero vector for identical endpoints
func TestVelocitySameTile(t *testing.T) {
	p := core.Point{X: 3, Y: 3}
	if v := Velocity(p, p, 16); !v.IsZero() {
		t.Errorf("Expected zero velocity, got %+v", v)
	}
}

// TestISqrt verifies floor semantics
func TestISqrt(t *testing.T) {
	cases := map[int64]int64{0: 0, 1: 1, 3: 1, 4: 2, 99: 9, 100: 10, -5: 0}
	for in, want := range cases {
		if got := ISqrt(in); got != want {
			t.Errorf("ISqrt(%d): expected %d, got %d", in, want, got)
		}
	}
}

// TestFastRandDeterministic verifies identical seeds give identical streams
func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("Expected identical streams at step %d", i)
		}
	}
	if a.Intn(0) != 0 {
		t.Errorf("Expected Intn(0) to be 0")
	}
}

// TestGridTraverserEndpoints verifies the walk includes both endpoints and stays connected
func TestGridTraverserEndpoints(t *testing.T) {
	a := core.Point{X: 0, Y: 0}
	b := core.Point{X: 5, Y: 2}
	tr := NewGridTraverser(a, b)
	var visited []core.Point
	for tr.Next() {
		visited = append(visited, tr.Pos())
	}
	if visited[0] != a {
		t.Errorf("Expected first tile %+v, got %+v", a, visited[0])
	}
	if visited[len(visited)-1] != b {
		t.Errorf("Expected last tile %+v, got %+v", b, visited[len(visited)-1])
	}
	for i := 1; i < len(visited); i++ {
		if visited[i].WalkingDistance(visited[i-1]) != 1 {
			t.Errorf("Expected adjacent tiles, got %+v then %+v", visited[i-1], visited[i])
		}
	}
}

// TestLineClear verifies blockers between endpoints are detected
func TestLineClear(t *testing.T) {
	wall := core.Point{X: 3, Y: 0}
	clear := func(p core.Point) bool { return p != wall }
	if LineClear(core.Point{}, core.Point{X: 6, Y: 0}, clear) {
		t.Errorf("Expected blocked line")
	}
	if !LineClear(core.Point{}, core.Point{X: 0, Y: 6}, clear) {
		t.Errorf("Expected clear line")
	}
	if !LineClear(core.Point{}, wall, clear) {
		t.Errorf("Expected endpoint to be ignored")
	}
}
