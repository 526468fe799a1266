package level

import (
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/vmath"
)

// Cell types
const (
	wall    = true
	passage = false
)

// generateMaze carves a braided spanning-tree maze and puts stairs at its two ends
func generateMaze(g *Grid, cfg Config) {
	rows := ensureOdd(g.Height)
	cols := ensureOdd(g.Width)

	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
		for j := range cells[i] {
			cells[i][j] = wall
		}
	}

	rng := vmath.NewFastRand(uint64(cfg.Seed))
	start := core.Point{X: 1, Y: 1}
	end := core.Point{X: cols - 2, Y: rows - 2}

	recursiveBacktracker(cells, start, rng)
	if cfg.Braiding > 0 {
		applyBraiding(cells, cfg.Braiding, rng)
	}
	cells[start.Y][start.X] = passage
	cells[end.Y][end.X] = passage

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if y >= rows || x >= cols || cells[y][x] == wall {
				g.SetWall(core.Point{X: x, Y: y})
			}
		}
	}
	g.AddTrigger(component.Trigger{Tile: start, Kind: component.TriggerPrevLevel})
	g.AddTrigger(component.Trigger{Tile: end, Kind: component.TriggerNextLevel})
}

var (
	jumpDirs  = [4]core.Displacement{{DY: -2}, {DY: 2}, {DX: -2}, {DX: 2}}
	orthoDirs = [4]core.Displacement{{DY: -1}, {DY: 1}, {DX: -1}, {DX: 1}}
)

// recursiveBacktracker generates a uniform spanning tree over the odd cells
func recursiveBacktracker(cells [][]bool, start core.Point, rng *vmath.FastRand) {
	rows, cols := len(cells), len(cells[0])

	stack := []core.Point{start}
	cells[start.Y][start.X] = passage

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]core.Displacement, 0, 4)

		for _, d := range jumpDirs {
			n := curr.Add(d)
			// Leave 1 cell border for walls
			if n.X > 0 && n.X < cols-1 && n.Y > 0 && n.Y < rows-1 && cells[n.Y][n.X] == wall {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := candidates[rng.Intn(len(candidates))]
		cells[curr.Y+d.DY/2][curr.X+d.DX/2] = passage
		next := curr.Add(d)
		cells[next.Y][next.X] = passage
		stack = append(stack, next)
	}
}

// applyBraiding opens a wall at dead ends with the given probability, creating loops
func applyBraiding(cells [][]bool, probability float64, rng *vmath.FastRand) {
	rows, cols := len(cells), len(cells[0])
	threshold := int(probability * 1000)

	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if cells[y][x] == wall {
				continue
			}

			exits := 0
			for _, d := range orthoDirs {
				if cells[y+d.DY][x+d.DX] == passage {
					exits++
				}
			}
			if exits != 1 || rng.Intn(1000) >= threshold {
				continue
			}

			candidates := make([]core.Point, 0, 4)
			for _, jd := range jumpDirs {
				nx, ny := x+jd.DX, y+jd.DY
				wx, wy := x+jd.DX/2, y+jd.DY/2
				if nx < 0 || nx >= cols || ny < 0 || ny >= rows {
					continue
				}
				if cells[ny][nx] == passage && cells[wy][wx] == wall && canSafelyRemoveWall(cells, wx, wy) {
					candidates = append(candidates, core.Point{X: wx, Y: wy})
				}
			}
			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				cells[c.Y][c.X] = passage
			}
		}
	}
}

// canSafelyRemoveWall rejects openings that create a 2x2 plaza or an isolated pillar
func canSafelyRemoveWall(cells [][]bool, x, y int) bool {
	rows, cols := len(cells), len(cells[0])

	isP := func(tx, ty int) bool {
		if tx < 0 || tx >= cols || ty < 0 || ty >= rows {
			return false
		}
		return cells[ty][tx] == passage
	}

	if isP(x-1, y-1) && isP(x, y-1) && isP(x-1, y) ||
		isP(x, y-1) && isP(x+1, y-1) && isP(x+1, y) ||
		isP(x-1, y) && isP(x-1, y+1) && isP(x, y+1) ||
		isP(x+1, y) && isP(x, y+1) && isP(x+1, y+1) {
		return false
	}

	for _, d := range orthoDirs {
		nx, ny := x+d.DX, y+d.DY
		if nx < 0 || nx >= cols || ny < 0 || ny >= rows || cells[ny][nx] != wall {
			continue
		}
		connections := 0
		for _, d2 := range orthoDirs {
			nnx, nny := nx+d2.DX, ny+d2.DY
			// (x,y) is about to open
			if nnx == x && nny == y {
				continue
			}
			if nnx >= 0 && nnx < cols && nny >= 0 && nny < rows && cells[nny][nnx] == wall {
				connections++
			}
		}
		if connections == 0 {
			return false
		}
	}
	return true
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
