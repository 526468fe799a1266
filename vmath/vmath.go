package vmath

import "github.com/lixenwraith/vi-missile/core"

// Q16.16 fixed point, used for missile velocity and distance traveled
const (
	Shift = 16
	Scale = 1 << Shift
	Mask  = Scale - 1
)

// --- Arithmetic ---

func FromInt(i int) int { return i << Shift }
func ToInt(f int) int   { return f >> Shift }

// Mul multiplies two Q16.16 values with a 64-bit intermediate
func Mul(a, b int) int {
	return int((int64(a) * int64(b)) >> Shift)
}

// Div divides two Q16.16 values, zero divisor yields 0
func Div(a, b int) int {
	if b == 0 {
		return 0
	}
	return int((int64(a) << Shift) / int64(b))
}

// ISqrt returns floor(sqrt(n)) for n >= 0, 0 otherwise
func ISqrt(n int64) int64 {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// --- Isometric projections ---

// ScreenToMissile converts a pixel displacement into whole tiles, truncating toward zero
func ScreenToMissile(d core.Displacement) core.Displacement {
	return core.Displacement{
		DX: (d.DX + 2*d.DY) / 64,
		DY: (2*d.DY - d.DX) / 64,
	}
}

// WorldToScreen returns the pixel compensation for a tile displacement
func WorldToScreen(d core.Displacement) core.Displacement {
	return core.Displacement{
		DX: (d.DY - d.DX) * 32,
		DY: (d.DY + d.DX) * -16,
	}
}

// ScreenToLight converts a pixel displacement to light sub-tile units (eight per tile)
func ScreenToLight(d core.Displacement) core.Displacement {
	return core.Displacement{
		DX: (2*d.DY + d.DX) / 8,
		DY: (2*d.DY - d.DX) / 8,
	}
}

// WorldToNormalScreen rotates a tile displacement into screen space and normalizes it to Q16.16
// The y component is halved to account for the 2:1 isometric aspect
func WorldToNormalScreen(d core.Displacement) core.Displacement {
	rx := int64(d.DY - d.DX)
	ry := int64(-(d.DY + d.DX))
	length := ISqrt((rx*rx + ry*ry) << (2 * Shift))
	if length == 0 {
		return core.Displacement{}
	}
	return core.Displacement{
		DX: int((rx << (2 * Shift)) / length),
		DY: int((ry<<(2*Shift))/length) / 2,
	}
}

// Velocity returns the Q16.16 per-tick velocity moving from tile toward dest at the given pixel speed
// Same-tile input yields zero velocity
func Velocity(tile, dest core.Point, pixelsPerTick int) core.Displacement {
	if tile == dest {
		return core.Displacement{}
	}
	return WorldToNormalScreen(tile.Sub(dest)).Scale(pixelsPerTick)
}

// --- Randomness ---

// FastRand is a seeded xorshift generator, the only randomness source of a simulation
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), 0 when n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Seed resets the generator state
func (r *FastRand) Seed(seed uint64) {
	if seed == 0 {
		seed = 1
	}
	r.state = seed
}

// State exposes the raw state for replay digests
func (r *FastRand) State() uint64 {
	return r.state
}
