package search

import (
	"testing"

	"github.com/lixenwraith/vi-missile/core"
)

// TestRingSizes verifies each ring holds exactly the tiles at its distance
func TestRingSizes(t *testing.T) {
	if len(Ring(0)) != 1 {
		t.Errorf("Expected 1 offset at radius 0, got %d", len(Ring(0)))
	}
	for r := 1; r <= 10; r++ {
		ring := Ring(r)
		if len(ring) != 8*r {
			t.Errorf("Expected %d offsets at radius %d, got %d", 8*r, r, len(ring))
		}
		seen := map[core.Displacement]bool{}
		for _, d := range ring {
			if seen[d] {
				t.Errorf("Duplicate offset %v at radius %d", d, r)
			}
			seen[d] = true
			if got := (core.Point{}).WalkingDistance(core.Point{}.Add(d)); got != r {
				t.Errorf("Expected distance %d for %v, got %d", r, d, got)
			}
		}
	}
	if Ring(-1) != nil || Ring(MaxRadius+1) != nil {
		t.Error("Expected nil for out-of-range radius")
	}
}

// TestClosestValidOrder verifies the first accepted tile in scan order wins
func TestClosestValidOrder(t *testing.T) {
	start := core.Point{X: 10, Y: 10}

	p, ok := ClosestValid(start, 0, 5, func(core.Point) bool { return true })
	if !ok || p != start {
		t.Errorf("Expected start tile, got %v %v", p, ok)
	}

	p, ok = ClosestValid(start, 1, 5, func(core.Point) bool { return true })
	if !ok || p != (core.Point{X: 9, Y: 9}) {
		t.Errorf("Expected top-left of first ring, got %v %v", p, ok)
	}

	target := core.Point{X: 13, Y: 8}
	p, ok = ClosestValid(start, 0, 5, func(q core.Point) bool { return q == target })
	if !ok || p != target {
		t.Errorf("Expected %v, got %v %v", target, p, ok)
	}

	_, ok = ClosestValid(start, 0, 2, func(q core.Point) bool { return q == target })
	if ok {
		t.Error("Expected no tile inside radius 2")
	}

	_, ok = ClosestValid(start, 3, 2, func(core.Point) bool { return true })
	if ok {
		t.Error("Expected failure when min exceeds max")
	}
}

// TestVisionRayEndpoints verifies the first ray runs along +x and the last along +y
func TestVisionRayEndpoints(t *testing.T) {
	for k := 0; k < RayLength; k++ {
		if VisionRays[0][k] != (core.Displacement{DX: k + 1}) {
			t.Errorf("Expected (%d,0) on first ray, got %v", k+1, VisionRays[0][k])
		}
		if VisionRays[RayCount-1][k] != (core.Displacement{DY: k + 1}) {
			t.Errorf("Expected (0,%d) on last ray, got %v", k+1, VisionRays[RayCount-1][k])
		}
	}
	// The diagonal ray
	if VisionRays[11][2] != (core.Displacement{DX: 3, DY: 3}) {
		t.Errorf("Expected (3,3) on diagonal, got %v", VisionRays[11][2])
	}
}

// TestFanOutDistinct verifies the mirrored fan has no duplicate offsets
func TestFanOutDistinct(t *testing.T) {
	fan := FanOut(3)
	if len(fan) == 0 {
		t.Fatal("Expected offsets")
	}
	seen := map[core.Displacement]bool{}
	for _, d := range fan {
		if seen[d] {
			t.Errorf("Duplicate offset %v", d)
		}
		seen[d] = true
	}
	for _, want := range []core.Displacement{{DX: 4}, {DX: -4}, {DY: 4}, {DY: -4}, {DX: 4, DY: 4}, {DX: -4, DY: -4}} {
		if !seen[want] {
			t.Errorf("Expected %v in fan", want)
		}
	}
}

// TestRayScanStops verifies the scan ends at the first accepted offset
func TestRayScanStops(t *testing.T) {
	visits := 0
	found := RayScan(6, func(d core.Displacement) bool {
		visits++
		return d == core.Displacement{DX: -6}
	})
	if !found {
		t.Error("Expected the mirrored axis point to be found")
	}
	if visits != 2 {
		t.Errorf("Expected 2 visits, got %d", visits)
	}
}
