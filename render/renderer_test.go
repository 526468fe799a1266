package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/level"
	"github.com/lixenwraith/vi-missile/lighting"
	"github.com/lixenwraith/vi-missile/status"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Expected simulation screen, got %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(s tcell.SimulationScreen, x, y int) rune {
	ch, _, _, _ := s.GetContent(x, y)
	return ch
}

func rowText(s tcell.SimulationScreen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		sb.WriteRune(runeAt(s, x, y))
	}
	return sb.String()
}

// TestDrawLevelActorsAndMissiles verifies each layer lands on its tile
func TestDrawLevelActorsAndMissiles(t *testing.T) {
	screen := newScreen(t, 40, 20)
	grid, err := level.Generate(level.Config{Width: 20, Height: 12, Type: component.DungeonCathedral})
	if err != nil {
		t.Fatalf("Expected level, got %v", err)
	}
	roster := level.NewRoster(grid, 0)
	roster.AddPlayer(&component.Player{Tile: core.Point{X: 3, Y: 3}, HitPoints: 64})
	roster.AddMonster(&component.Monster{Tile: core.Point{X: 8, Y: 3}, HitPoints: 64})

	reg := status.NewRegistry()
	reg.Ints.Get(status.MissileLive).Store(1)

	bolt := &component.Missile{Kind: component.KindFirebolt, Visible: true}
	bolt.Anim.Graphic = component.GraphicFireball
	bolt.Position.Tile = core.Point{X: 5, Y: 3}
	hidden := &component.Missile{Kind: component.KindFirebolt, Visible: false}
	hidden.Position.Tile = core.Point{X: 6, Y: 3}

	r := NewRenderer(screen)
	r.Draw(Frame{
		Dungeon:  grid,
		Monsters: roster.Monsters(),
		Players:  roster.Players(),
		Missiles: []*component.Missile{bolt, hidden},
		Lights:   lighting.NewPool(reg, zerolog.Nop()),
		Status:   reg,
		Tick:     7,
	})

	checks := []struct {
		x, y int
		want rune
	}{
		{0, 0, '#'},
		{1, 1, '.'},
		{3, 3, '@'},
		{8, 3, 'M'},
		{5, 3, '*'},
		{6, 3, '.'},
	}
	for _, c := range checks {
		if got := runeAt(screen, c.x, c.y); got != c.want {
			t.Errorf("At (%d,%d): expected %q, got %q", c.x, c.y, c.want, got)
		}
	}

	hud := rowText(screen, 19, 40)
	if !strings.HasPrefix(hud, "tick 7  missiles 1") {
		t.Errorf("Expected status line, got %q", hud)
	}
}

// TestOriginFollowsFocus verifies large levels scroll and clamp at their edges
func TestOriginFollowsFocus(t *testing.T) {
	screen := newScreen(t, 20, 11)
	grid := level.NewGrid(100, 100)
	r := NewRenderer(screen)

	if got := r.Origin(Frame{Dungeon: grid, Focus: core.Point{X: 50, Y: 50}}); got != (core.Point{X: 40, Y: 45}) {
		t.Errorf("Expected centered origin (40,45), got %v", got)
	}
	if got := r.Origin(Frame{Dungeon: grid, Focus: core.Point{X: 2, Y: 98}}); got != (core.Point{X: 0, Y: 90}) {
		t.Errorf("Expected clamped origin (0,90), got %v", got)
	}

	small := level.NewGrid(10, 5)
	if got := r.Origin(Frame{Dungeon: small, Focus: core.Point{X: 9, Y: 4}}); got != (core.Point{}) {
		t.Errorf("Expected zero origin for a small level, got %v", got)
	}
}

// TestLightBrightensTiles verifies a lit floor is drawn brighter than ambient
func TestLightBrightensTiles(t *testing.T) {
	screen := newScreen(t, 20, 10)
	grid := level.NewGrid(20, 9)
	reg := status.NewRegistry()
	lights := lighting.NewPool(reg, zerolog.Nop())
	lights.Add(core.Point{X: 5, Y: 5}, 3)

	r := NewRenderer(screen)
	r.Draw(Frame{Dungeon: grid, Lights: lights})

	_, _, lit, _ := screen.GetContent(5, 5)
	_, _, dark, _ := screen.GetContent(15, 1)
	litFg, _, _ := lit.Decompose()
	darkFg, _, _ := dark.Decompose()
	lr, _, _ := litFg.RGB()
	dr, _, _ := darkFg.RGB()
	if lr <= dr {
		t.Errorf("Expected lit tile brighter, got red %d vs %d", lr, dr)
	}
}

// TestShaftGlyph verifies arrows are drawn along their flight line
func TestShaftGlyph(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   rune
	}{
		{3, 0, '-'},
		{0, -2, '|'},
		{2, 2, '\\'},
		{-2, 2, '/'},
		{0, 0, '*'},
	}
	for _, tc := range tests {
		if got := shaftGlyph(tc.dx, tc.dy); got != tc.want {
			t.Errorf("shaftGlyph(%d,%d): expected %q, got %q", tc.dx, tc.dy, tc.want, got)
		}
	}
}
