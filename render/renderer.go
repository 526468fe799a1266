package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/engine"
	"github.com/lixenwraith/vi-missile/lighting"
	"github.com/lixenwraith/vi-missile/status"
)

// ambient is the brightness of unlit explored tiles
const ambient = 0.35

// Frame is the state drawn in one pass
type Frame struct {
	Dungeon  engine.Dungeon
	Monsters []*component.Monster
	Players  []*component.Player
	Missiles []*component.Missile
	Lights   *lighting.Pool
	Status   *status.Registry
	Focus    core.Point // Tile kept centered when the level is larger than the screen
	Tick     int64
}

// Renderer draws the missile sandbox onto a tcell screen
// The bottom row is reserved for the status line
type Renderer struct {
	screen tcell.Screen
	light  []float64
	lightW int
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Origin returns the level tile drawn at the top-left cell
func (r *Renderer) Origin(f Frame) core.Point {
	sw, sh := r.screen.Size()
	sh--
	b := f.Dungeon.Bounds()
	return core.Point{
		X: originAxis(f.Focus.X, sw, b.X, b.Width),
		Y: originAxis(f.Focus.Y, sh, b.Y, b.Height),
	}
}

// originAxis centers focus in a view of size, clamped to the level extent
func originAxis(focus, size, lo, extent int) int {
	if extent <= size {
		return lo
	}
	o := focus - size/2
	return max(lo, min(o, lo+extent-size))
}

// Draw renders f and shows the screen
func (r *Renderer) Draw(f Frame) {
	r.screen.Clear()
	sw, sh := r.screen.Size()
	if sh < 2 || f.Dungeon == nil {
		r.screen.Show()
		return
	}
	origin := r.Origin(f)
	b := f.Dungeon.Bounds()
	r.buildLight(f, b)

	put := func(p core.Point, ch rune, c RGB) {
		x, y := p.X-origin.X, p.Y-origin.Y
		if x < 0 || y < 0 || x >= sw || y >= sh-1 || !b.Contains(p) {
			return
		}
		r.screen.SetContent(x, y, ch, nil, tcell.StyleDefault.Foreground(c.Scale(r.lightAt(p, b)).Tcell()).Background(tcell.ColorBlack))
	}

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			p := core.Point{X: b.X + x, Y: b.Y + y}
			if f.Dungeon.IsWalkSolid(p) {
				put(p, '#', RGBWall)
			} else {
				put(p, '.', RGBFloor)
			}
			if o := f.Dungeon.ObjectAt(p); o != nil && !o.Broken {
				put(p, objectGlyph(o), RGBObject)
			}
		}
	}
	for _, t := range f.Dungeon.Triggers() {
		ch := '>'
		if t.Kind == component.TriggerPrevLevel {
			ch = '<'
		}
		put(t.Tile, ch, RGBStairs)
	}

	for _, m := range f.Monsters {
		if m == nil || !m.IsAlive() {
			continue
		}
		switch {
		case m.Petrified:
			put(m.Tile, 'M', RGBPetrified)
		case m.Flags&component.MonsterGolemFlag != 0:
			put(m.Tile, 'g', RGBGolem)
		default:
			put(m.Tile, 'M', RGBMonster)
		}
	}
	for _, p := range f.Players {
		if p == nil || !p.Active || !p.IsAlive() {
			continue
		}
		put(p.Tile, '@', RGBPlayer)
	}

	for _, m := range f.Missiles {
		if m.Deleted || !m.Visible {
			continue
		}
		put(m.Position.Tile, glyphOf(m), colorOfResist(m.Info().Resist).Lerp(RGBPlayer, 0.1))
	}

	r.drawStatus(f, sw, sh-1)
	r.screen.Show()
}

// buildLight accumulates light radii into a per-tile brightness map
func (r *Renderer) buildLight(f Frame, b core.Area) {
	n := b.Width * b.Height
	if cap(r.light) < n {
		r.light = make([]float64, n)
	}
	r.light = r.light[:n]
	r.lightW = b.Width
	for i := range r.light {
		r.light[i] = ambient
	}
	if f.Lights == nil {
		return
	}
	f.Lights.Each(func(_ component.LightHandle, l lighting.Light) {
		for dy := -l.Radius; dy <= l.Radius; dy++ {
			for dx := -l.Radius; dx <= l.Radius; dx++ {
				p := core.Point{X: l.Tile.X + dx, Y: l.Tile.Y + dy}
				if !b.Contains(p) {
					continue
				}
				d := max(abs(dx), abs(dy))
				v := 1 - float64(d)/float64(l.Radius+1)
				i := (p.Y-b.Y)*b.Width + (p.X - b.X)
				r.light[i] = max(r.light[i], v)
			}
		}
	})
}

func (r *Renderer) lightAt(p core.Point, b core.Area) float64 {
	i := (p.Y-b.Y)*r.lightW + (p.X - b.X)
	if i < 0 || i >= len(r.light) {
		return ambient
	}
	// Actors stay readable in the dark
	return max(r.light[i], ambient)
}

// drawStatus writes the counter line on row y
func (r *Renderer) drawStatus(f Frame, width, y int) {
	line := fmt.Sprintf("tick %d", f.Tick)
	if f.Status != nil {
		line += fmt.Sprintf("  missiles %d  spawned %d  rejected %d  lights %d  hits %d  blocks %d",
			f.Status.Ints.Get(status.MissileLive).Load(),
			f.Status.Ints.Get(status.MissileSpawned).Load(),
			f.Status.Ints.Get(status.MissileRejected).Load(),
			f.Status.Ints.Get(status.LightLive).Load(),
			f.Status.Ints.Get(status.CombatHits).Load(),
			f.Status.Ints.Get(status.CombatBlocks).Load(),
		)
		if ms := f.Status.Floats.Get(status.TickMillis).Load(); ms > 0 {
			line += fmt.Sprintf("  %.2fms", ms)
		}
		if k := f.Status.Labels.Get(status.SelectedKind).Load(); k != "" {
			line += "  [" + k + "]"
		}
	}
	style := tcell.StyleDefault.Foreground(RGBHUD.Tcell()).Background(tcell.ColorBlack)
	x := 0
	for _, ch := range line {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func objectGlyph(o *component.Object) rune {
	switch {
	case o.Shrine:
		return '$'
	case o.Breakable:
		return '0'
	default:
		return '+'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
