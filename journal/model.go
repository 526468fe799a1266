package journal

import "time"

// Run is one simulation session
type Run struct {
	ID        string `gorm:"primaryKey;size:36"`
	Seed      uint64
	Depth     int
	Hellfire  bool
	StartedAt time.Time
}

// TickDigest is the state hash at the end of a tick
type TickDigest struct {
	ID     uint   `gorm:"primaryKey"`
	RunID  string `gorm:"size:36;uniqueIndex:idx_run_tick"`
	Tick   int64  `gorm:"uniqueIndex:idx_run_tick"`
	Live   int
	Digest string `gorm:"size:64"`
}

// SpawnRecord is an accepted missile spawn
type SpawnRecord struct {
	ID        uint   `gorm:"primaryKey"`
	RunID     string `gorm:"size:36;index"`
	Tick      int64
	MissileID uint64
	Kind      int
	KindName  string `gorm:"size:32"`
	Source    int
	StartX    int
	StartY    int
	Damage    int
	Level     int
}

var models = []any{&Run{}, &TickDigest{}, &SpawnRecord{}}
