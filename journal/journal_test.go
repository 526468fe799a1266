package journal

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
)

type sample struct {
	Tick  int
	Tiles []core.Point
	Names map[string]int
}

func openTest(t *testing.T) *Journal {
	t.Helper()
	j, err := Open("", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestDigest_StableAcrossMapOrder(t *testing.T) {
	a := sample{Tick: 3, Tiles: []core.Point{{X: 1, Y: 2}}, Names: map[string]int{"a": 1, "b": 2, "c": 3}}
	b := sample{Tick: 3, Tiles: []core.Point{{X: 1, Y: 2}}, Names: map[string]int{"c": 3, "b": 2, "a": 1}}

	assert.Equal(t, Digest(&a), Digest(&b))
	assert.Len(t, Digest(&a), 64)

	b.Tiles[0].X = 9
	assert.NotEqual(t, Digest(&a), Digest(&b))
}

func TestRecordTick_RequiresRun(t *testing.T) {
	j := openTest(t)
	_, err := j.RecordTick(1, 0, "state")
	require.Error(t, err)
}

func TestCompare_MatchingRuns(t *testing.T) {
	j := openTest(t)

	first, err := j.Begin(uuid.Nil, 7, 3, false)
	require.NoError(t, err)
	for tick := int64(1); tick <= 5; tick++ {
		_, err := j.RecordTick(tick, 2, sample{Tick: int(tick)})
		require.NoError(t, err)
	}

	second, err := j.Begin(uuid.New(), 7, 3, false)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
	for tick := int64(1); tick <= 5; tick++ {
		_, err := j.RecordTick(tick, 2, sample{Tick: int(tick)})
		require.NoError(t, err)
	}

	assert.NoError(t, j.Compare(first, second))
}

func TestCompare_ReportsDesync(t *testing.T) {
	j := openTest(t)

	first, err := j.Begin(uuid.Nil, 7, 3, false)
	require.NoError(t, err)
	for tick := int64(1); tick <= 4; tick++ {
		_, err := j.RecordTick(tick, 1, sample{Tick: int(tick)})
		require.NoError(t, err)
	}

	second, err := j.Begin(uuid.Nil, 7, 3, false)
	require.NoError(t, err)
	for tick := int64(1); tick <= 4; tick++ {
		s := sample{Tick: int(tick)}
		if tick == 3 {
			s.Tiles = []core.Point{{X: 5, Y: 5}}
		}
		_, err := j.RecordTick(tick, 1, s)
		require.NoError(t, err)
	}

	err = j.Compare(first, second)
	require.ErrorIs(t, err, ErrDesync)
	assert.Contains(t, err.Error(), "tick 3")
}

func TestRecordSpawn(t *testing.T) {
	j := openTest(t)
	run, err := j.Begin(uuid.Nil, 1, 1, false)
	require.NoError(t, err)

	m := &component.Missile{ID: 11, Kind: component.KindFirebolt, Source: 0, SpellLevel: 4}
	m.Position.Start = core.Point{X: 2, Y: 3}
	require.NoError(t, j.RecordSpawn(9, m))

	spawns, err := j.Spawns(run)
	require.NoError(t, err)
	require.Len(t, spawns, 1)
	assert.Equal(t, uint64(11), spawns[0].MissileID)
	assert.Equal(t, "firebolt", spawns[0].KindName)
	assert.Equal(t, 3, spawns[0].StartY)
	assert.Equal(t, int64(9), spawns[0].Tick)
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := Open(path, zerolog.Nop())
	require.NoError(t, err)

	run, err := j.Begin(uuid.Nil, 5, 2, true)
	require.NoError(t, err)
	_, err = j.RecordTick(1, 0, "x")
	require.NoError(t, err)
	require.NoError(t, j.Close())

	j2, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	defer j2.Close()
	assert.NoError(t, j2.Compare(run, run))
}

func TestDump_MatchesDigest(t *testing.T) {
	state := map[string]int{"b": 2, "a": 1}
	var buf bytes.Buffer
	Dump(&buf, state)
	require.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), "\"a\": (int) 1")

	sum := sha256.Sum256(buf.Bytes())
	assert.Equal(t, hex.EncodeToString(sum[:]), Digest(state))
}
