package core

import "testing"

// TestDirectionOffsetsRoundTrip verifies GetDirection recovers every unit step
func TestDirectionOffsetsRoundTrip(t *testing.T) {
	origin := Point{X: 10, Y: 10}
	for d := South; d < DirectionCount; d++ {
		got := GetDirection(origin, origin.Step(d))
		if got != d {
			t.Errorf("Expected direction %d for offset %+v, got %d", d, d.Offset(), got)
		}
	}
}

// TestLeftRightInverse verifies rotation helpers are inverse and wrap
func TestLeftRightInverse(t *testing.T) {
	for d := South; d < DirectionCount; d++ {
		if d.Left().Right() != d {
			t.Errorf("Expected Left then Right to restore %d", d)
		}
	}
	if South.Left() != SouthEast {
		t.Errorf("Expected South.Left() to wrap to SouthEast, got %d", South.Left())
	}
	if North.Opposite() != South {
		t.Errorf("Expected North opposite to be South, got %d", North.Opposite())
	}
}

// TestGetDirection16Axes verifies the sixteen-way resolver on the eight unit steps
func TestGetDirection16Axes(t *testing.T) {
	origin := Point{X: 0, Y: 0}
	for d := South; d < DirectionCount; d++ {
		got := GetDirection16(origin, origin.Step(d))
		if got != d.To16() {
			t.Errorf("Expected %d for step %d, got %d", d.To16(), d, got)
		}
	}
}

// TestGetDirection16Intermediate verifies a shallow offset resolves to a half-step sector
func TestGetDirection16Intermediate(t *testing.T) {
	got := GetDirection16(Point{}, Point{X: 2, Y: 3})
	if got != SouthSouthWest16 {
		t.Errorf("Expected SouthSouthWest16, got %d", got)
	}
}

// TestDistances verifies walking and manhattan metrics
func TestDistances(t *testing.T) {
	a := Point{X: 1, Y: 1}
	b := Point{X: 4, Y: -1}
	if a.WalkingDistance(b) != 3 {
		t.Errorf("Expected walking distance 3, got %d", a.WalkingDistance(b))
	}
	if a.ManhattanDistance(b) != 5 {
		t.Errorf("Expected manhattan distance 5, got %d", a.ManhattanDistance(b))
	}
}
