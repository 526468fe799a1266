package search

import "github.com/lixenwraith/vi-missile/core"

// Vision ray geometry: rays sweep the first quadrant from +x to +y
const (
	RayCount    = 23
	RayLength   = 15
	raySegments = RayCount - 1
)

// VisionRays holds RayLength points per ray, point k at major-axis distance k+1
var VisionRays [RayCount][RayLength]core.Displacement

func init() {
	for i := 0; i < RayCount; i++ {
		a := raySegments - i
		b := i
		m := max(a, b)
		for k := 0; k < RayLength; k++ {
			n := k + 1
			VisionRays[i][k] = core.Displacement{
				DX: (2*n*a + m) / (2 * m),
				DY: (2*n*b + m) / (2 * m),
			}
		}
	}
}

// Mirrors returns d reflected into all four quadrants
// Order is (+,+), (-,-), (-,+), (+,-)
func Mirrors(d core.Displacement) [4]core.Displacement {
	return [4]core.Displacement{
		{DX: d.DX, DY: d.DY},
		{DX: -d.DX, DY: -d.DY},
		{DX: -d.DX, DY: d.DY},
		{DX: d.DX, DY: -d.DY},
	}
}

// FanOut collects the distinct mirrored offsets at point index k of every ray
// Consecutive rays sharing a point are skipped, mirrored duplicates on an axis are dropped
func FanOut(k int) []core.Displacement {
	if k < 0 || k >= RayLength {
		return nil
	}
	out := make([]core.Displacement, 0, RayCount*4)
	seen := make(map[core.Displacement]struct{}, RayCount*4)
	prev := core.Displacement{DX: -1, DY: -1}
	for i := 0; i < RayCount; i++ {
		d := VisionRays[i][k]
		if d == prev {
			continue
		}
		prev = d
		for _, m := range Mirrors(d) {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}

// RayScan visits mirrored ray points from distance start down to 1, ray by ray
// A repeated point within a ray is skipped, visit returning true stops the scan
func RayScan(start int, visit func(core.Displacement) bool) bool {
	start = min(start, RayLength)
	for i := 0; i < RayCount; i++ {
		prev := core.Displacement{}
		for k := start - 1; k >= 0; k-- {
			d := VisionRays[i][k]
			if d.IsZero() {
				break
			}
			if d == prev {
				continue
			}
			for _, m := range Mirrors(d) {
				if visit(m) {
					return true
				}
			}
			prev = d
		}
	}
	return false
}
