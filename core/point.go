package core

// Point is a dungeon tile coordinate
type Point struct {
	X, Y int
}

// Displacement is a relative offset in tiles or pixels depending on context
type Displacement struct {
	DX, DY int
}

func (p Point) Add(d Displacement) Point { return Point{X: p.X + d.DX, Y: p.Y + d.DY} }
func (p Point) Sub(q Point) Displacement { return Displacement{DX: p.X - q.X, DY: p.Y - q.Y} }

// Step returns the neighbouring tile in direction d
func (p Point) Step(d Direction) Point { return p.Add(d.Offset()) }

func (d Displacement) Add(o Displacement) Displacement {
	return Displacement{DX: d.DX + o.DX, DY: d.DY + o.DY}
}

func (d Displacement) Sub(o Displacement) Displacement {
	return Displacement{DX: d.DX - o.DX, DY: d.DY - o.DY}
}

func (d Displacement) Scale(n int) Displacement { return Displacement{DX: d.DX * n, DY: d.DY * n} }

// Shr arithmetic-shifts both components, used to drop the fractional part of Q16.16 values
func (d Displacement) Shr(n uint) Displacement { return Displacement{DX: d.DX >> n, DY: d.DY >> n} }

func (d Displacement) IsZero() bool { return d.DX == 0 && d.DY == 0 }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// WalkingDistance is the Chebyshev distance, the number of 8-way steps between tiles
func (p Point) WalkingDistance(q Point) int {
	return max(abs(p.X-q.X), abs(p.Y-q.Y))
}

// ManhattanDistance is the number of 4-way steps between tiles
func (p Point) ManhattanDistance(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// ExactDistanceSq returns the squared euclidean distance in tiles
func (p Point) ExactDistanceSq(q Point) int {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}
