// Package journal records per-tick state digests so two peers of a lockstep session can find the first tick they diverged
package journal

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lixenwraith/vi-missile/component"
)

// ErrDesync is returned when two runs disagree on a tick digest
var ErrDesync = errors.New("desync")

// dumper renders state without addresses so equal states hash equal
var dumper = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump writes the same deterministic dump Digest hashes
func Dump(w io.Writer, state ...any) {
	dumper.Fdump(w, state...)
}

// Digest hashes a deterministic dump of state
func Digest(state ...any) string {
	sum := sha256.Sum256([]byte(dumper.Sdump(state...)))
	return hex.EncodeToString(sum[:])
}

// Journal writes runs to a sqlite database
type Journal struct {
	db  *gorm.DB
	log zerolog.Logger
	run string
}

// Open connects to the database at path, an empty path uses memory
func Open(path string, log zerolog.Logger) (*Journal, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open journal %q: %w", dsn, err)
	}
	if path == "" {
		// Each connection would get its own memory database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("journal sql handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(models...); err != nil {
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	log.Info().Str("path", dsn).Msg("Journal open")
	return &Journal{db: db, log: log.With().Str("system", "journal").Logger()}, nil
}

// Close releases the connection
func (j *Journal) Close() error {
	sqlDB, err := j.db.DB()
	if err != nil {
		return fmt.Errorf("journal sql handle: %w", err)
	}
	return sqlDB.Close()
}

// Begin starts a new run and makes it current, a nil id draws a fresh one
func (j *Journal) Begin(id uuid.UUID, seed uint64, depth int, hellfire bool) (string, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	run := Run{ID: id.String(), Seed: seed, Depth: depth, Hellfire: hellfire, StartedAt: time.Now().UTC()}
	if err := j.db.Create(&run).Error; err != nil {
		return "", fmt.Errorf("begin run: %w", err)
	}
	j.run = run.ID
	j.log.Debug().Str("run", run.ID).Uint64("seed", seed).Msg("Run started")
	return run.ID, nil
}

// Current returns the active run id, empty before Begin
func (j *Journal) Current() string {
	return j.run
}

// RecordTick stores the digest of state for tick under the current run
func (j *Journal) RecordTick(tick int64, live int, state ...any) (string, error) {
	if j.run == "" {
		return "", errors.New("record tick: no run started")
	}
	d := Digest(state...)
	rec := TickDigest{RunID: j.run, Tick: tick, Live: live, Digest: d}
	if err := j.db.Create(&rec).Error; err != nil {
		return "", fmt.Errorf("record tick %d: %w", tick, err)
	}
	return d, nil
}

// RecordSpawn stores an accepted missile under the current run
func (j *Journal) RecordSpawn(tick int64, m *component.Missile) error {
	if j.run == "" || m == nil {
		return nil
	}
	rec := SpawnRecord{
		RunID:     j.run,
		Tick:      tick,
		MissileID: m.ID,
		Kind:      int(m.Kind),
		KindName:  m.Info().Name,
		Source:    m.Source,
		StartX:    m.Position.Start.X,
		StartY:    m.Position.Start.Y,
		Damage:    m.Damage,
		Level:     m.SpellLevel,
	}
	if err := j.db.Create(&rec).Error; err != nil {
		return fmt.Errorf("record spawn %d: %w", m.ID, err)
	}
	return nil
}

// Spawns returns the spawn log of a run in tick order
func (j *Journal) Spawns(run string) ([]SpawnRecord, error) {
	var out []SpawnRecord
	if err := j.db.Where("run_id = ?", run).Order("tick, id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("load spawns: %w", err)
	}
	return out, nil
}

// Compare walks the digests of two runs and reports the first tick they disagree on
// A run that stops early is compared only up to its last tick
func (j *Journal) Compare(a, b string) error {
	var da, db []TickDigest
	if err := j.db.Where("run_id = ?", a).Order("tick").Find(&da).Error; err != nil {
		return fmt.Errorf("load run %s: %w", a, err)
	}
	if err := j.db.Where("run_id = ?", b).Order("tick").Find(&db).Error; err != nil {
		return fmt.Errorf("load run %s: %w", b, err)
	}

	n := min(len(da), len(db))
	for i := 0; i < n; i++ {
		if da[i].Tick != db[i].Tick {
			return fmt.Errorf("tick %d vs %d: %w", da[i].Tick, db[i].Tick, ErrDesync)
		}
		if da[i].Digest != db[i].Digest {
			j.log.Warn().Int64("tick", da[i].Tick).Int("live_a", da[i].Live).Int("live_b", db[i].Live).Msg("Digest mismatch")
			return fmt.Errorf("tick %d: %w", da[i].Tick, ErrDesync)
		}
	}
	return nil
}
