package level

import (
	"fmt"

	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/parameter"
)

// Config selects the layout Generate builds
type Config struct {
	Width, Height int
	Type          component.DungeonType
	Seed          int64

	// Braiding: 0.0 (Perfect Maze/Tree) to 1.0 (No dead ends/Graph), catacombs only
	Braiding float64

	// Scale of the cave noise, smaller is smoother
	NoiseScale float64
}

// Generate builds a sandbox level
// Caves use perlin noise, catacombs a braided maze, anything else an open walled room
func Generate(cfg Config) (*Grid, error) {
	if cfg.Width < 3 || cfg.Height < 3 {
		return nil, fmt.Errorf("level size %dx%d: minimum is 3x3", cfg.Width, cfg.Height)
	}
	g := NewGrid(cfg.Width, cfg.Height)

	switch cfg.Type {
	case component.DungeonCaves, component.DungeonNest:
		generateCaves(g, cfg)
	case component.DungeonCatacombs, component.DungeonCrypt:
		generateMaze(g, cfg)
	default:
		walls(g)
	}
	return g, nil
}

// walls closes the outer border
func walls(g *Grid) {
	for x := 0; x < g.Width; x++ {
		g.SetWall(core.Point{X: x, Y: 0})
		g.SetWall(core.Point{X: x, Y: g.Height - 1})
	}
	for y := 0; y < g.Height; y++ {
		g.SetWall(core.Point{X: 0, Y: y})
		g.SetWall(core.Point{X: g.Width - 1, Y: y})
	}
}

func generateCaves(g *Grid, cfg Config) {
	scale := cfg.NoiseScale
	if scale <= 0 {
		scale = 0.08
	}
	p := perlin.NewPerlin(parameter.PerlinAlpha, parameter.PerlinBeta, parameter.PerlinOctaves, cfg.Seed)
	center := core.Point{X: g.Width / 2, Y: g.Height / 2}

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			pt := core.Point{X: x, Y: y}
			// Keep the arrival area open
			if pt.WalkingDistance(center) <= 2 {
				continue
			}
			v := p.Noise2D(float64(x)*scale, float64(y)*scale)
			if v > parameter.PerlinWallThreshold {
				g.SetWall(pt)
			}
		}
	}
	walls(g)
	g.AddTrigger(component.Trigger{Tile: center.Add(core.Displacement{DX: 1}), Kind: component.TriggerPrevLevel})
}
