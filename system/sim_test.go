package system

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/engine"
	"github.com/lixenwraith/vi-missile/level"
	"github.com/lixenwraith/vi-missile/lighting"
	"github.com/lixenwraith/vi-missile/parameter"
	"github.com/lixenwraith/vi-missile/status"
)

// testSim wires a missile system to an in-memory level
type testSim struct {
	sys       *MissileSystem
	world     *engine.World
	grid      *level.Grid
	roster    *level.Roster
	reactions *level.Reactions
	lights    *lighting.Pool
}

// newTestSim builds a walled open level with the local player at caster
func newTestSim(t *testing.T, width, height, capacity int, seed uint64, caster core.Point) *testSim {
	t.Helper()
	grid, err := level.Generate(level.Config{Width: width, Height: height, Type: component.DungeonCathedral})
	if err != nil {
		t.Fatalf("Expected level, got error %v", err)
	}
	roster := level.NewRoster(grid, 0)
	reactions := level.NewReactions(grid, roster)
	reg := status.NewRegistry()
	lights := lighting.NewPool(reg, zerolog.Nop())

	world := engine.NewWorld(grid, roster, reactions, lights, nil, engine.Options{
		Seed:   seed,
		Log:    zerolog.Nop(),
		Status: reg,
		Level:  engine.LevelInfo{Depth: 5, Type: component.DungeonCathedral},
	})

	roster.AddPlayer(&component.Player{
		Tile:             caster,
		Future:           caster,
		Mode:             component.PlayerStand,
		Level:            10,
		HitPoints:        100 << parameter.DamageShift,
		MaxHitPoints:     100 << parameter.DamageShift,
		BaseHitPoints:    100 << parameter.DamageShift,
		MaxBaseHitPoints: 100 << parameter.DamageShift,
		Mana:             50 << parameter.DamageShift,
		MaxMana:          50 << parameter.DamageShift,
		BaseMana:         50 << parameter.DamageShift,
		MaxBaseMana:      50 << parameter.DamageShift,
	})

	return &testSim{
		sys:       NewMissileSystem(world, capacity),
		world:     world,
		grid:      grid,
		roster:    roster,
		reactions: reactions,
		lights:    lights,
	}
}

// addMonster places a sturdy monster, petrified ones are always struck
func (ts *testSim) addMonster(tile core.Point, petrified bool) *component.Monster {
	m := &component.Monster{
		Tile:         tile,
		Future:       tile,
		Old:          tile,
		Mode:         component.MonsterStand,
		HitPoints:    1000 << parameter.DamageShift,
		MaxHitPoints: 1000 << parameter.DamageShift,
		Level:        5,
		MinDamage:    2,
		MaxDamage:    4,
	}
	if petrified {
		m.Petrify()
	}
	ts.roster.AddMonster(m)
	return m
}

// run ticks n times
func (ts *testSim) run(n int) {
	for i := 0; i < n; i++ {
		ts.sys.Tick()
	}
}

// countKind returns the live missiles of kind
func (ts *testSim) countKind(kind component.Kind) int {
	n := 0
	for _, m := range ts.sys.Missiles() {
		if m.Kind == kind && !m.Deleted {
			n++
		}
	}
	return n
}
