package sandbox

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/config"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/journal"
	"github.com/lixenwraith/vi-missile/status"
)

type recordingListener struct {
	tiles []core.Point
}

func (r *recordingListener) PlayAt(core.SoundType, core.Point) {}
func (r *recordingListener) SetListener(tile core.Point)      { r.tiles = append(r.tiles, tile) }

func newTestSession(t *testing.T, journaled bool) *Session {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Journal.Enabled = journaled
	cfg.Journal.Path = ""

	s, err := New(cfg, nil, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestDungeonTypeFor(t *testing.T) {
	assert.Equal(t, component.DungeonTown, DungeonTypeFor(0, false))
	assert.Equal(t, component.DungeonCathedral, DungeonTypeFor(3, false))
	assert.Equal(t, component.DungeonCatacombs, DungeonTypeFor(8, false))
	assert.Equal(t, component.DungeonCaves, DungeonTypeFor(9, false))
	assert.Equal(t, component.DungeonHell, DungeonTypeFor(20, false))
	assert.Equal(t, component.DungeonNest, DungeonTypeFor(17, true))
	assert.Equal(t, component.DungeonCrypt, DungeonTypeFor(24, true))
}

func TestNew_PlacesActors(t *testing.T) {
	s := newTestSession(t, false)

	p := s.Player()
	require.NotNil(t, p)
	assert.False(t, s.Grid.IsWalkSolid(p.Tile))
	assert.Equal(t, p.ID+1, s.Grid.PlayerAt(p.Tile))

	mons := 0
	for _, m := range s.Roster.Monsters() {
		if m != nil {
			mons++
		}
	}
	assert.Positive(t, mons)
	assert.LessOrEqual(t, mons, 4)
}

func TestCast_SpawnsOnNextTick(t *testing.T) {
	s := newTestSession(t, false)
	p := s.Player()

	s.Cast(component.KindFirebolt, core.Point{X: p.Tile.X + 5, Y: p.Tile.Y}, 3)
	assert.Zero(t, s.Missiles.Count())

	s.Step()
	spawned := s.World.Status.Ints.Get(status.MissileSpawned).Load()
	assert.Equal(t, int64(1), spawned)
	assert.Equal(t, int64(1), s.World.Tick)
	assert.Equal(t, uint64(1), s.Scheduler.Ticks())
}

func TestCast_IgnoresUnknownKind(t *testing.T) {
	s := newTestSession(t, false)
	s.Cast(component.KindCount, core.Point{}, 1)
	s.Step()
	assert.Zero(t, s.World.Status.Ints.Get(status.MissileSpawned).Load())
}

func TestJournal_RecordsSpawnsAndTicks(t *testing.T) {
	s := newTestSession(t, true)
	require.NotNil(t, s.Journal)
	p := s.Player()

	s.Cast(component.KindFirebolt, core.Point{X: p.Tile.X + 5, Y: p.Tile.Y}, 3)
	for i := 0; i < 3; i++ {
		s.Step()
	}
	require.NoError(t, s.JournalErr())

	spawns, err := s.Journal.Spawns(s.Journal.Current())
	require.NoError(t, err)
	require.Len(t, spawns, 1)
	assert.Equal(t, "firebolt", spawns[0].KindName)
	assert.Equal(t, int64(1), spawns[0].Tick)
}

func TestSnapshot_SameSeedSameDigest(t *testing.T) {
	run := func() string {
		s := newTestSession(t, false)
		p := s.Player()
		s.Cast(component.KindFirebolt, core.Point{X: p.Tile.X + 5, Y: p.Tile.Y + 2}, 5)
		s.Cast(component.KindChainLightning, core.Point{X: p.Tile.X - 4, Y: p.Tile.Y}, 5)
		for i := 0; i < 12; i++ {
			s.Step()
		}
		return journal.Digest(Snapshot(s.Missiles.Missiles()), s.actorHealth())
	}
	assert.Equal(t, run(), run())
}

func TestAfterTick_FollowsListener(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	l := &recordingListener{}

	s, err := New(cfg, l, zerolog.Nop())
	require.NoError(t, err)
	s.Step()
	s.Step()

	require.Len(t, l.tiles, 2)
	assert.Equal(t, s.Player().Tile, l.tiles[1])
}

func TestFrame_FocusesPlayer(t *testing.T) {
	s := newTestSession(t, false)
	f := s.Frame()
	assert.Equal(t, s.Player().Tile, f.Focus)
	assert.Same(t, s.Lights, f.Lights)
	assert.Len(t, f.Players, 1)
}
