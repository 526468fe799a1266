package system

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/level"
	"github.com/lixenwraith/vi-missile/parameter"
	"github.com/lixenwraith/vi-missile/status"
	"github.com/lixenwraith/vi-missile/vmath"
)

// TestSpawnRejectedAtCapacity verifies a full registry refuses new missiles
func TestSpawnRejectedAtCapacity(t *testing.T) {
	ts := newTestSim(t, 20, 20, 2, 1, core.Point{X: 5, Y: 5})
	tile := core.Point{X: 10, Y: 10}

	for i := 0; i < 2; i++ {
		if m := ts.sys.Spawn(tile, tile, core.South, component.KindFirewall, component.TargetBoth,
			component.SourceTrap, 0, 0, nil); m == nil {
			t.Fatalf("Expected spawn %d to succeed", i)
		}
	}
	if m := ts.sys.Spawn(tile, tile, core.South, component.KindFirewall, component.TargetBoth,
		component.SourceTrap, 0, 0, nil); m != nil {
		t.Errorf("Expected nil at capacity, got missile %d", m.ID)
	}
	if ts.sys.Count() != 2 {
		t.Errorf("Expected 2 missiles, got %d", ts.sys.Count())
	}
	if got := ts.world.Status.Ints.Get(status.MissileRejected).Load(); got != 1 {
		t.Errorf("Expected 1 rejection, got %d", got)
	}
}

// TestRangeNeverIncreases verifies a bolt's lifetime only counts down
func TestRangeNeverIncreases(t *testing.T) {
	caster := core.Point{X: 5, Y: 10}
	ts := newTestSim(t, 40, 20, 0, 7, caster)

	m := ts.sys.Spawn(caster, core.Point{X: 35, Y: 10}, core.East, component.KindFirebolt,
		component.TargetMonsters, 0, 0, 1, nil)
	if m == nil || m.Deleted {
		t.Fatal("Expected live firebolt")
	}
	prev := m.Range
	for i := 0; i < 300 && ts.sys.Find(m.ID) != nil; i++ {
		ts.sys.Tick()
		if m.Range > prev {
			t.Fatalf("Expected range <= %d at tick %d, got %d", prev, i, m.Range)
		}
		prev = m.Range
	}
	if ts.sys.Find(m.ID) != nil {
		t.Error("Expected firebolt to expire")
	}
}

// TestOutOfBoundsReleasesLightOnce verifies an escaped missile is dropped and its light freed exactly once
func TestOutOfBoundsReleasesLightOnce(t *testing.T) {
	caster := core.Point{X: 5, Y: 5}
	ts := newTestSim(t, 20, 20, 0, 3, caster)

	m := ts.sys.Spawn(caster, core.Point{X: 15, Y: 5}, core.East, component.KindFirebolt,
		component.TargetMonsters, 0, 0, 1, nil)
	if m.Light == component.NoLight {
		t.Fatal("Expected firebolt to hold a light")
	}
	if ts.lights.Live() != 1 {
		t.Fatalf("Expected 1 live light, got %d", ts.lights.Live())
	}

	m.Position.Tile = core.Point{X: -3, Y: 5}
	ts.sys.Tick()

	if ts.sys.Find(m.ID) != nil {
		t.Error("Expected out-of-bounds missile to be removed within one tick")
	}
	if ts.lights.Live() != 0 {
		t.Errorf("Expected 0 live lights, got %d", ts.lights.Live())
	}
	if ts.lights.Misuse() != 0 {
		t.Errorf("Expected no double release, got %d misuses", ts.lights.Misuse())
	}

	ts.run(3)
	if ts.lights.Misuse() != 0 {
		t.Errorf("Expected no release after removal, got %d misuses", ts.lights.Misuse())
	}
}

// TestMultiTileMoveCollidesEveryCrossedTile verifies an N-tile step checks the N-1 tiles in between
func TestMultiTileMoveCollidesEveryCrossedTile(t *testing.T) {
	caster := core.Point{X: 5, Y: 10}
	ts := newTestSim(t, 30, 20, 0, 11, caster)

	var mons []*component.Monster
	for x := 6; x <= 10; x++ {
		mons = append(mons, ts.addMonster(core.Point{X: x, Y: 10}, true))
	}

	m := ts.sys.Spawn(caster, core.Point{X: 20, Y: 10}, core.East, component.KindArrow,
		component.TargetMonsters, 0, 0, 0, nil)
	m.DontDeleteOnCollision = true

	// Exactly four tiles along +X in one tick
	const n = 4
	m.Position.Velocity = core.Displacement{DX: 32 * n << vmath.Shift, DY: 16 * n << vmath.Shift}
	m.Position.Traveled = core.Displacement{}
	m.Position.Tile = caster

	ts.sys.MoveAndCollide(m, 1, 1, false, false)

	if want := (core.Point{X: 9, Y: 10}); m.Position.Tile != want {
		t.Fatalf("Expected tile %v, got %v", want, m.Position.Tile)
	}
	full := 1000 << parameter.DamageShift
	for i, mon := range mons[:n] {
		if mon.HitPoints >= full {
			t.Errorf("Expected monster %d at %v to be struck", i, mon.Tile)
		}
	}
	if mons[n].HitPoints != full {
		t.Errorf("Expected monster past the landing tile untouched, got %d hp", mons[n].HitPoints)
	}
}

// TestChainLightningSkipsPrimaryTarget verifies the aimed monster gets a single bolt
func TestChainLightningSkipsPrimaryTarget(t *testing.T) {
	caster := core.Point{X: 10, Y: 10}
	ts := newTestSim(t, 30, 30, 0, 5, caster)

	primary := core.Point{X: 13, Y: 10}
	ts.addMonster(primary, false)
	ts.addMonster(core.Point{X: 11, Y: 12}, false)
	// Out of reach at spell level 2
	ts.addMonster(core.Point{X: 20, Y: 20}, false)

	chain := ts.sys.Spawn(caster, primary, core.East, component.KindChainLightning,
		component.TargetMonsters, 0, 0, 2, nil)
	updateChainLightning(ts.sys, chain)

	if got := ts.countKind(component.KindLightningControl); got != 2 {
		t.Errorf("Expected 2 lightning bolts, got %d", got)
	}
	if !chain.Deleted {
		t.Error("Expected chain lightning to finish in one update")
	}
}

// TestFireballStopsAtWall verifies a fireball bursts on the first solid tile and the wall shields tiles behind it
func TestFireballStopsAtWall(t *testing.T) {
	caster := core.Point{X: 10, Y: 10}
	ts := newTestSim(t, 30, 20, 0, 9, caster)

	wall := core.Point{X: 13, Y: 10}
	ts.grid.SetWall(wall)
	behind := ts.addMonster(core.Point{X: 14, Y: 10}, true)
	full := behind.HitPoints

	m := ts.sys.Spawn(caster, core.Point{X: 15, Y: 10}, core.East, component.KindFireball,
		component.TargetMonsters, 0, 0, 0, nil)
	for i := 0; i < 60 && m.Anim.Graphic != component.GraphicBigExplosion; i++ {
		ts.sys.Tick()
	}

	if m.Anim.Graphic != component.GraphicBigExplosion {
		t.Fatal("Expected fireball to explode")
	}
	if m.Position.Tile != wall {
		t.Errorf("Expected burst at %v, got %v", wall, m.Position.Tile)
	}
	if !m.Position.Velocity.IsZero() {
		t.Errorf("Expected stopped burst, got velocity %+v", m.Position.Velocity)
	}
	if behind.HitPoints != full {
		t.Errorf("Expected monster behind the wall untouched, got %d of %d hp", behind.HitPoints, full)
	}
}

// TestStoneRestoresLivingMonster verifies the curse hands back the previous mode when it runs out
func TestStoneRestoresLivingMonster(t *testing.T) {
	caster := core.Point{X: 10, Y: 10}
	ts := newTestSim(t, 30, 30, 0, 13, caster)
	mon := ts.addMonster(core.Point{X: 12, Y: 12}, false)
	mon.Mode = component.MonsterWalk

	m := ts.sys.Spawn(caster, mon.Tile, core.SouthEast, component.KindStone,
		component.TargetMonsters, 0, 0, 1, nil)
	if m.Deleted {
		t.Fatal("Expected stone curse to find the monster")
	}
	if mon.Mode != component.MonsterPetrified {
		t.Fatalf("Expected petrified mode, got %d", mon.Mode)
	}

	want := min(1+6, parameter.StoneMaxDuration) << 4
	if m.Range != want {
		t.Errorf("Expected range %d, got %d", want, m.Range)
	}
	ts.run(want)

	if mon.Mode != component.MonsterWalk {
		t.Errorf("Expected walk mode restored, got %d", mon.Mode)
	}
	if mon.Petrified {
		t.Error("Expected petrified flag cleared")
	}
	if ts.sys.Find(m.ID) != nil {
		t.Error("Expected stone curse removed")
	}
	if ts.reactions.Count(level.ReactCorpse) != 0 {
		t.Error("Expected no corpse for a surviving monster")
	}
}

// TestStoneShattersDeadMonster verifies a monster killed while stoned leaves a corpse after the shatter
func TestStoneShattersDeadMonster(t *testing.T) {
	caster := core.Point{X: 10, Y: 10}
	ts := newTestSim(t, 30, 30, 0, 17, caster)
	mon := ts.addMonster(core.Point{X: 12, Y: 12}, false)

	m := ts.sys.Spawn(caster, mon.Tile, core.SouthEast, component.KindStone,
		component.TargetMonsters, 0, 0, 1, nil)
	ts.run(2)

	ts.reactions.KillMonster(mon, 0)
	ts.sys.Tick()

	if m.Anim.Graphic != component.GraphicShatter {
		t.Fatalf("Expected shatter graphic, got %v", m.Anim.Graphic)
	}
	if !m.Visible {
		t.Error("Expected shatter to be visible")
	}

	ts.run(parameter.ShatterRange)
	if ts.reactions.Count(level.ReactCorpse) != 1 {
		t.Errorf("Expected 1 corpse, got %d", ts.reactions.Count(level.ReactCorpse))
	}
	if ts.sys.Find(m.ID) != nil {
		t.Error("Expected stone curse removed")
	}
}

// TestReplayIsDeterministic verifies two sessions with the same seed and inputs end byte-identical
func TestReplayIsDeterministic(t *testing.T) {
	dump := func() string {
		caster := core.Point{X: 10, Y: 10}
		ts := newTestSim(t, 40, 40, 0, 42, caster)
		for _, p := range []core.Point{{X: 15, Y: 10}, {X: 14, Y: 14}, {X: 8, Y: 16}, {X: 20, Y: 12}} {
			ts.addMonster(p, false)
		}

		ts.sys.Spawn(caster, core.Point{X: 15, Y: 10}, core.East, component.KindFireball, component.TargetMonsters, 0, 0, 3, nil)
		ts.sys.Spawn(caster, core.Point{X: 14, Y: 14}, core.SouthEast, component.KindChainLightning, component.TargetMonsters, 0, 0, 4, nil)
		ts.sys.Spawn(caster, caster, core.South, component.KindNova, component.TargetMonsters, 0, 0, 2, nil)
		ts.run(5)
		ts.sys.Spawn(caster, core.Point{X: 8, Y: 16}, core.SouthWest, component.KindFirewallControl, component.TargetMonsters, 0, 0, 2, nil)
		ts.sys.Spawn(caster, core.Point{X: 20, Y: 12}, core.East, component.KindElemental, component.TargetMonsters, 0, 0, 1, nil)
		ts.run(40)

		cfg := spew.ConfigState{Indent: " ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
		return cfg.Sdump(ts.sys.Missiles(), ts.roster.Monsters(), ts.reactions.Log, ts.world.Rng.State())
	}

	a, b := dump(), dump()
	if a != b {
		t.Errorf("Expected identical replays, got divergent dumps of %d and %d bytes", len(a), len(b))
	}
}
