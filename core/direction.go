package core

// Direction is one of the eight isometric facings, clockwise from South
type Direction uint8

const (
	South Direction = iota
	SouthWest
	West
	NorthWest
	North
	NorthEast
	East
	SouthEast
	DirectionCount
)

var directionOffsets = [DirectionCount]Displacement{
	South:     {DX: 1, DY: 1},
	SouthWest: {DX: 0, DY: 1},
	West:      {DX: -1, DY: 1},
	NorthWest: {DX: -1, DY: 0},
	North:     {DX: -1, DY: -1},
	NorthEast: {DX: 0, DY: -1},
	East:      {DX: 1, DY: -1},
	SouthEast: {DX: 1, DY: 0},
}

// Offset returns the unit tile step for the direction
func (d Direction) Offset() Displacement {
	return directionOffsets[d%DirectionCount]
}

// Left rotates one step counter-clockwise
func (d Direction) Left() Direction { return (d + DirectionCount - 1) % DirectionCount }

// Right rotates one step clockwise
func (d Direction) Right() Direction { return (d + 1) % DirectionCount }

// Opposite returns the reversed facing
func (d Direction) Opposite() Direction { return (d + 4) % DirectionCount }

// GetDirection approximates the facing from start toward dest
// Same-tile input yields SouthWest
func GetDirection(start, dest Point) Direction {
	mx := dest.X - start.X
	my := dest.Y - start.Y
	var md Direction

	if mx >= 0 {
		if my >= 0 {
			// mx/my <= 0.4, tan(22.5) approximation
			if 5*mx <= my*2 {
				return SouthWest
			}
			md = South
		} else {
			my = -my
			if 5*mx <= my*2 {
				return NorthEast
			}
			md = East
		}
		if 5*my <= mx*2 {
			md = SouthEast
		}
		return md
	}

	mx = -mx
	if my >= 0 {
		if 5*mx <= my*2 {
			return SouthWest
		}
		md = West
	} else {
		my = -my
		if 5*mx <= my*2 {
			return NorthEast
		}
		md = North
	}
	if 5*my <= mx*2 {
		md = NorthWest
	}
	return md
}

// Direction16 is a sixteen-way facing used by bolt and arrow graphics
type Direction16 uint8

const (
	South16 Direction16 = iota
	SouthSouthWest16
	SouthWest16
	SouthWestWest16
	West16
	WestNorthWest16
	NorthWest16
	NorthWestNorth16
	North16
	NorthNorthEast16
	NorthEast16
	NorthEastEast16
	East16
	EastSouthEast16
	SouthEast16
	SouthEastSouth16
	Direction16Count
)

// flip16 mirrors x across the pivot axis
func flip16(x, pivot Direction16) Direction16 {
	return (2*pivot + Direction16Count - x) % Direction16Count
}

// GetDirection16 resolves the facing from p1 toward p2 to one of sixteen sectors
func GetDirection16(p1, p2 Point) Direction16 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	ax, ay := abs(dx), abs(dy)

	flipY := dx != ax
	flipX := dy != ay

	flipMedian := false
	if ax > ay {
		ax, ay = ay, ax
		flipMedian = true
	}

	ret := South16
	// 2/3 approximates tan(33.75), 1/5 approximates tan(11.25)
	if 3*ax <= ay*2 {
		if 5*ax < ay {
			ret = SouthWest16
		} else {
			ret = SouthSouthWest16
		}
	}

	medianPivot := South16
	if flipY {
		ret = flip16(ret, SouthWest16)
		medianPivot = flip16(medianPivot, SouthWest16)
	}
	if flipX {
		ret = flip16(ret, SouthEast16)
		medianPivot = flip16(medianPivot, SouthEast16)
	}
	if flipMedian {
		ret = flip16(ret, medianPivot)
	}
	return ret
}

// To16 widens an eight-way facing to the sixteen-way index
func (d Direction) To16() Direction16 { return Direction16(d%DirectionCount) * 2 }
