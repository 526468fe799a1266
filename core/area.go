package core

// Area represents a rectangular tile region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions (minimum 1x1)
}

// Contains reports whether p lies inside the area
func (a Area) Contains(p Point) bool {
	return p.X >= a.X && p.Y >= a.Y && p.X < a.X+a.Width && p.Y < a.Y+a.Height
}

// Clamp pulls p inside the area
func (a Area) Clamp(p Point) Point {
	p.X = min(max(p.X, a.X), a.X+a.Width-1)
	p.Y = min(max(p.Y, a.Y), a.Y+a.Height-1)
	return p
}
