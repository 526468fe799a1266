package level

import (
	"testing"

	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
)

// TestGenerateRejectsTinyLevels verifies the minimum size check
func TestGenerateRejectsTinyLevels(t *testing.T) {
	if _, err := Generate(Config{Width: 2, Height: 10}); err == nil {
		t.Error("Expected error for a 2x10 level")
	}
}

// TestGenerateWallsBorder verifies every layout closes its outer edge
func TestGenerateWallsBorder(t *testing.T) {
	types := []component.DungeonType{
		component.DungeonCathedral,
		component.DungeonCaves,
		component.DungeonCatacombs,
	}
	for _, typ := range types {
		g, err := Generate(Config{Width: 21, Height: 15, Type: typ, Seed: 4, Braiding: 0.5})
		if err != nil {
			t.Fatalf("Type %d: expected level, got %v", typ, err)
		}
		for x := 0; x < g.Width; x++ {
			if !g.IsWalkSolid(core.Point{X: x, Y: 0}) || !g.IsWalkSolid(core.Point{X: x, Y: g.Height - 1}) {
				t.Errorf("Type %d: expected wall on row edges at x=%d", typ, x)
			}
		}
		for y := 0; y < g.Height; y++ {
			if !g.IsWalkSolid(core.Point{X: 0, Y: y}) || !g.IsWalkSolid(core.Point{X: g.Width - 1, Y: y}) {
				t.Errorf("Type %d: expected wall on column edges at y=%d", typ, y)
			}
		}
	}
}

// TestMazeStairsAreOpen verifies the catacomb stairs sit on passages
func TestMazeStairsAreOpen(t *testing.T) {
	g, err := Generate(Config{Width: 21, Height: 21, Type: component.DungeonCatacombs, Seed: 9})
	if err != nil {
		t.Fatalf("Expected level, got %v", err)
	}
	trig := g.Triggers()
	if len(trig) != 2 {
		t.Fatalf("Expected 2 stairs, got %d", len(trig))
	}
	for _, tr := range trig {
		if g.IsWalkSolid(tr.Tile) {
			t.Errorf("Expected open stairs at %v", tr.Tile)
		}
		if !tr.Kind.IsStairs() {
			t.Errorf("Expected stairs trigger, got %d", tr.Kind)
		}
	}
}

// TestGenerateIsSeeded verifies the same seed yields the same caves
func TestGenerateIsSeeded(t *testing.T) {
	cfg := Config{Width: 30, Height: 20, Type: component.DungeonCaves, Seed: 77}
	a, _ := Generate(cfg)
	b, _ := Generate(cfg)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			p := core.Point{X: x, Y: y}
			if a.IsWalkSolid(p) != b.IsWalkSolid(p) {
				t.Fatalf("Expected identical layouts, differ at %v", p)
			}
		}
	}
}

// TestRosterReservesGolemSlots verifies regular monsters start past the player slots
func TestRosterReservesGolemSlots(t *testing.T) {
	g := NewGrid(10, 10)
	r := NewRoster(g, 0)

	id := r.AddMonster(&component.Monster{Tile: core.Point{X: 2, Y: 2}})
	if id != MaxPlayers {
		t.Errorf("Expected first monster id %d, got %d", MaxPlayers, id)
	}
	if got := g.MonsterAt(core.Point{X: 2, Y: 2}); got != id+1 {
		t.Errorf("Expected grid entry %d, got %d", id+1, got)
	}

	golem := &component.Monster{Tile: core.Point{X: 4, Y: 4}}
	r.SetGolem(1, golem)
	if golem.ID != 1 || r.Monster(1) != golem {
		t.Errorf("Expected golem in slot 1, got id %d", golem.ID)
	}

	next := &component.Monster{Tile: core.Point{X: 5, Y: 5}}
	r.SetGolem(1, next)
	if g.MonsterAt(core.Point{X: 4, Y: 4}) != 0 {
		t.Error("Expected replaced golem cleared from the grid")
	}
	if g.MonsterAt(core.Point{X: 5, Y: 5}) != 2 {
		t.Errorf("Expected new golem on the grid, got %d", g.MonsterAt(core.Point{X: 5, Y: 5}))
	}
}

// TestReactionsSpawnMinion verifies minions inherit the parent and need a free tile
func TestReactionsSpawnMinion(t *testing.T) {
	g := NewGrid(10, 10)
	r := NewRoster(g, 0)
	react := NewReactions(g, r)

	parent := r.AddMonster(&component.Monster{Tile: core.Point{X: 3, Y: 3}, MaxHitPoints: 640, Level: 7})

	if react.SpawnMinion(parent, core.Point{X: 3, Y: 3}, core.South) {
		t.Error("Expected spawn on an occupied tile to fail")
	}
	if !react.SpawnMinion(parent, core.Point{X: 4, Y: 3}, core.South) {
		t.Fatal("Expected spawn on a free tile to succeed")
	}
	mons := r.Monsters()
	child := mons[len(mons)-1]
	if child.Level != 7 || child.HitPoints != 640 {
		t.Errorf("Expected level 7 with 640 hp, got level %d with %d hp", child.Level, child.HitPoints)
	}
	if react.Count(ReactMinion) != 1 {
		t.Errorf("Expected 1 minion reaction, got %d", react.Count(ReactMinion))
	}

	react.Reset()
	if len(react.Log) != 0 {
		t.Errorf("Expected empty log after reset, got %d", len(react.Log))
	}
}

// TestReactionsMoveMonster verifies the grid follows the monster
func TestReactionsMoveMonster(t *testing.T) {
	g := NewGrid(10, 10)
	r := NewRoster(g, 0)
	react := NewReactions(g, r)

	id := r.AddMonster(&component.Monster{Tile: core.Point{X: 1, Y: 1}})
	m := r.Monster(id)
	react.MoveMonster(m, core.Point{X: 2, Y: 1})

	if g.MonsterAt(core.Point{X: 1, Y: 1}) != 0 {
		t.Error("Expected old tile cleared")
	}
	if g.MonsterAt(core.Point{X: 2, Y: 1}) != id+1 {
		t.Error("Expected monster on new tile")
	}
	if m.Old != (core.Point{X: 1, Y: 1}) {
		t.Errorf("Expected old tile (1,1), got %v", m.Old)
	}
}
