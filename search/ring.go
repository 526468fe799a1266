// Package search provides the expanding-ring and vision-ray tile scans used by spells
package search

import "github.com/lixenwraith/vi-missile/core"

// MaxRadius bounds every ring scan
const MaxRadius = 50

var rings [MaxRadius + 1][]core.Displacement

func init() {
	rings[0] = []core.Displacement{{}}
	for r := 1; r <= MaxRadius; r++ {
		ring := make([]core.Displacement, 0, 8*r)
		for dx := -r; dx <= r; dx++ {
			ring = append(ring, core.Displacement{DX: dx, DY: -r})
		}
		for dy := -r + 1; dy < r; dy++ {
			ring = append(ring,
				core.Displacement{DX: -r, DY: dy},
				core.Displacement{DX: r, DY: dy},
			)
		}
		for dx := -r; dx <= r; dx++ {
			ring = append(ring, core.Displacement{DX: dx, DY: r})
		}
		rings[r] = ring
	}
}

// Ring returns the offsets at Chebyshev distance r in scan order
// Top row left to right, then both sides top to bottom, then the bottom row
// The slice is shared and must not be modified
func Ring(r int) []core.Displacement {
	if r < 0 || r > MaxRadius {
		return nil
	}
	return rings[r]
}

// ClosestValid scans rings minRadius..maxRadius around start and returns the first tile ok accepts
// Ties within a ring resolve by scan order so every peer picks the same tile
func ClosestValid(start core.Point, minRadius, maxRadius int, ok func(core.Point) bool) (core.Point, bool) {
	if minRadius > maxRadius || minRadius < 0 {
		return core.Point{}, false
	}
	maxRadius = min(maxRadius, MaxRadius)
	for r := minRadius; r <= maxRadius; r++ {
		for _, d := range rings[r] {
			if p := start.Add(d); ok(p) {
				return p, true
			}
		}
	}
	return core.Point{}, false
}
