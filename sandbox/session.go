// Package sandbox assembles a playable missile world from configuration
package sandbox

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/config"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/engine"
	"github.com/lixenwraith/vi-missile/event"
	"github.com/lixenwraith/vi-missile/journal"
	"github.com/lixenwraith/vi-missile/level"
	"github.com/lixenwraith/vi-missile/lighting"
	"github.com/lixenwraith/vi-missile/netcmd"
	"github.com/lixenwraith/vi-missile/parameter"
	"github.com/lixenwraith/vi-missile/render"
	"github.com/lixenwraith/vi-missile/search"
	"github.com/lixenwraith/vi-missile/status"
	"github.com/lixenwraith/vi-missile/system"
)

// ErrNoFloor is returned when a generated level has nowhere to stand
var ErrNoFloor = errors.New("level has no free floor")

// Listener follows the local player, the audio engine implements it
type Listener interface {
	SetListener(tile core.Point)
}

// Session is one simulated level with its collaborators
type Session struct {
	Config    config.Config
	World     *engine.World
	Grid      *level.Grid
	Roster    *level.Roster
	Reactions *level.Reactions
	Lights    *lighting.Pool
	Missiles  *system.MissileSystem
	Scheduler *engine.Scheduler
	Outbox    *netcmd.Outbox
	Journal   *journal.Journal

	log      zerolog.Logger
	listener Listener
	lastID   uint64
	journErr error
}

// DungeonTypeFor maps a depth to its tile set, hellfire depths 17-24 are the nest and crypt
func DungeonTypeFor(depth int, hellfire bool) component.DungeonType {
	switch {
	case depth <= 0:
		return component.DungeonTown
	case hellfire && depth >= parameter.HellfireDepthMin+4:
		return component.DungeonCrypt
	case hellfire && depth >= parameter.HellfireDepthMin:
		return component.DungeonNest
	case depth <= 4:
		return component.DungeonCathedral
	case depth <= 8:
		return component.DungeonCatacombs
	case depth <= 12:
		return component.DungeonCaves
	default:
		return component.DungeonHell
	}
}

// New builds a session, sound may be nil
// When sound also implements Listener it follows the local player every tick
func New(cfg config.Config, sound engine.Sound, log zerolog.Logger) (*Session, error) {
	typ := DungeonTypeFor(cfg.Sim.Depth, cfg.Sim.Hellfire)
	grid, err := level.Generate(level.Config{
		Width:    cfg.Level.Width,
		Height:   cfg.Level.Height,
		Type:     typ,
		Seed:     cfg.Level.NoiseSeed,
		Braiding: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("generate level: %w", err)
	}

	reg := status.NewRegistry()
	roster := level.NewRoster(grid, 0)
	reactions := level.NewReactions(grid, roster)
	lights := lighting.NewPool(reg, log)

	world := engine.NewWorld(grid, roster, reactions, lights, sound, engine.Options{
		Seed:   cfg.Sim.Seed,
		Log:    log,
		Status: reg,
		Level: engine.LevelInfo{
			Depth:        cfg.Sim.Depth,
			Type:         typ,
			Hellfire:     cfg.Sim.Hellfire,
			FriendlyFire: cfg.Sim.FriendlyFire,
		},
	})

	s := &Session{
		Config:    cfg,
		World:     world,
		Grid:      grid,
		Roster:    roster,
		Reactions: reactions,
		Lights:    lights,
		Missiles:  system.NewMissileSystem(world, cfg.Sim.Capacity),
		Outbox:    netcmd.NewOutbox(netcmd.NewCodec(uuid.New()), log),
		log:       log.With().Str("component", "sandbox").Logger(),
	}
	if l, ok := sound.(Listener); ok {
		s.listener = l
	}

	if err := s.populate(); err != nil {
		return nil, err
	}

	s.Scheduler = engine.NewScheduler(world, time.Duration(cfg.Sim.TickMillis)*time.Millisecond)
	s.Scheduler.Register(s.Missiles)
	s.Scheduler.RegisterHandler(s.Outbox)
	s.Scheduler.After = s.afterTick

	if cfg.Journal.Enabled {
		if err := s.openJournal(cfg.Journal.Path); err != nil {
			return nil, err
		}
	}

	s.log.Info().
		Int("width", grid.Width).
		Int("height", grid.Height).
		Int("depth", cfg.Sim.Depth).
		Int("monsters", len(roster.Monsters())).
		Msg("Sandbox ready")
	return s, nil
}

// populate places the local player near the center and a ring of target dummies
func (s *Session) populate() error {
	b := s.Grid.Bounds()
	center := core.Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
	start, ok := search.ClosestValid(center, 0, max(b.Width, b.Height), s.Grid.IsFree)
	if !ok {
		return ErrNoFloor
	}

	hp := 200 << parameter.DamageShift
	mana := 400 << parameter.DamageShift
	s.Roster.AddPlayer(&component.Player{
		Tile:             start,
		Future:           start,
		Old:              start,
		Mode:             component.PlayerStand,
		Level:            20,
		HitPoints:        hp,
		MaxHitPoints:     hp,
		BaseHitPoints:    hp,
		MaxBaseHitPoints: hp,
		Mana:             mana,
		MaxMana:          mana,
		BaseMana:         mana,
		MaxBaseMana:      mana,
	})

	for d := core.Direction(0); d < core.DirectionCount; d += 2 {
		off := d.Offset()
		want := core.Point{X: start.X + off.DX*4, Y: start.Y + off.DY*4}
		tile, ok := search.ClosestValid(want, 0, 3, s.Grid.IsFree)
		if !ok {
			continue
		}
		s.Roster.AddMonster(newDummy(tile, s.Config.Sim.Depth))
	}
	return nil
}

// newDummy returns a standing monster scaled to depth
func newDummy(tile core.Point, depth int) *component.Monster {
	hp := (40 + depth*20) << parameter.DamageShift
	return &component.Monster{
		Tile:         tile,
		Future:       tile,
		Old:          tile,
		Mode:         component.MonsterStand,
		HitPoints:    hp,
		MaxHitPoints: hp,
		Level:        max(depth*2, 1),
		Armor:        depth * 3,
	}
}

func (s *Session) openJournal(path string) error {
	j, err := journal.Open(path, s.log)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	sim := s.Config.Sim
	if _, err := j.Begin(uuid.New(), sim.Seed, sim.Depth, sim.Hellfire); err != nil {
		_ = j.Close()
		return fmt.Errorf("begin journal run: %w", err)
	}
	s.Journal = j
	return nil
}

// Player returns the local player
func (s *Session) Player() *component.Player {
	return s.World.LocalPlayer()
}

// Cast queues a spell from the local player toward dst, applied on the next tick
func (s *Session) Cast(kind component.Kind, dst core.Point, spellLevel int) {
	p := s.Player()
	if p == nil || kind >= component.KindCount {
		return
	}
	s.World.Net.SpawnRequest(event.MissileSpawnRequestPayload{
		Origin:     p.Tile,
		Dest:       dst,
		Dir:        core.GetDirection(p.Tile, dst),
		Kind:       kind,
		Target:     component.TargetMonsters,
		Source:     p.ID,
		SpellLevel: spellLevel,
	})
}

// ClearLevel queues a registry reset
func (s *Session) ClearLevel() {
	s.World.Net.LevelClear()
}

// Step runs one tick synchronously
func (s *Session) Step() {
	s.Scheduler.Step()
}

// afterTick follows the listener and journals the finished tick
func (s *Session) afterTick(uint64) {
	w := s.World
	if s.listener != nil {
		if p := s.Player(); p != nil {
			s.listener.SetListener(p.Tile)
		}
	}
	if s.Journal != nil && s.journErr == nil {
		s.journErr = s.journalTick()
		if s.journErr != nil {
			s.log.Error().Err(s.journErr).Int64("tick", w.Tick).Msg("Journal disabled")
		}
	}
}

// journalTick records new spawns and the digest of the registry
func (s *Session) journalTick() error {
	tick := s.World.Tick
	missiles := s.Missiles.Missiles()
	for _, m := range missiles {
		if m.ID <= s.lastID {
			continue
		}
		if err := s.Journal.RecordSpawn(tick, m); err != nil {
			return err
		}
		s.lastID = m.ID
	}
	_, err := s.Journal.RecordTick(tick, len(missiles), Snapshot(missiles), s.actorHealth())
	return err
}

// MissileState is the digested part of a missile
type MissileState struct {
	ID       uint64
	Kind     component.Kind
	Tile     core.Point
	Traveled core.Displacement
	Range    int
	Deleted  bool
}

// Snapshot reduces the registry to its deterministic state
func Snapshot(missiles []*component.Missile) []MissileState {
	out := make([]MissileState, 0, len(missiles))
	for _, m := range missiles {
		out = append(out, MissileState{
			ID:       m.ID,
			Kind:     m.Kind,
			Tile:     m.Position.Tile,
			Traveled: m.Position.Traveled,
			Range:    m.Range,
			Deleted:  m.Deleted,
		})
	}
	return out
}

func (s *Session) actorHealth() []int {
	var hp []int
	for _, p := range s.Roster.Players() {
		hp = append(hp, p.HitPoints)
	}
	for _, m := range s.Roster.Monsters() {
		if m != nil {
			hp = append(hp, m.HitPoints)
		}
	}
	return hp
}

// JournalErr returns the error that stopped journaling, if any
func (s *Session) JournalErr() error {
	return s.journErr
}

// Frame captures what the renderer needs, focused on the local player
func (s *Session) Frame() render.Frame {
	f := render.Frame{
		Dungeon:  s.Grid,
		Monsters: s.Roster.Monsters(),
		Players:  s.Roster.Players(),
		Missiles: s.Missiles.Missiles(),
		Lights:   s.Lights,
		Status:   s.World.Status,
		Tick:     s.World.Tick,
	}
	if p := s.Player(); p != nil {
		f.Focus = p.Tile
	}
	return f
}

// Close releases the journal
func (s *Session) Close() error {
	if s.Journal == nil {
		return nil
	}
	return s.Journal.Close()
}
