package engine

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-missile/parameter"
	"github.com/lixenwraith/vi-missile/status"
)

// Scheduler drives systems on a fixed tick
// Each tick routes queued events first, then runs Update in ascending priority
// Handles pause-aware scheduling without busy-wait
type Scheduler struct {
	world    *World
	router   *EventRouter
	systems  []System
	interval time.Duration
	log      zerolog.Logger

	paused   atomic.Bool
	running  atomic.Bool
	ticks    atomic.Uint64
	stepLock sync.Mutex
	tickCost *status.Float

	// After runs on the scheduler goroutine once a tick completes
	After func(tick uint64)
}

// NewScheduler creates a scheduler routing the world's event queue
// A non-positive interval selects parameter.GameUpdateInterval
func NewScheduler(world *World, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = parameter.GameUpdateInterval
	}
	return &Scheduler{
		world:    world,
		router:   NewEventRouter(world.Events),
		interval: interval,
		log:      world.Log.With().Str("system", "scheduler").Logger(),
		tickCost: world.Status.Floats.Get(status.TickMillis),
	}
}

// Register adds a system and its event subscriptions, must be called before Run
func (s *Scheduler) Register(sys System) {
	s.router.Register(sys)
	s.systems = append(s.systems, sys)
	sort.SliceStable(s.systems, func(i, j int) bool {
		return s.systems[i].Priority() < s.systems[j].Priority()
	})
}

// RegisterHandler subscribes a non-ticking handler to routed events
func (s *Scheduler) RegisterHandler(h EventHandler) {
	s.router.Register(h)
}

// Step runs one tick synchronously and returns the number of events routed
func (s *Scheduler) Step() int {
	s.stepLock.Lock()
	defer s.stepLock.Unlock()

	start := time.Now()
	n := s.router.DispatchAll()
	for _, sys := range s.systems {
		sys.Update()
	}
	s.tickCost.Average(float64(time.Since(start).Microseconds())/1000, 0.1)
	tick := s.ticks.Add(1)
	if s.After != nil {
		s.After(tick)
	}
	return n
}

// Ticks returns the number of completed steps
func (s *Scheduler) Ticks() uint64 {
	return s.ticks.Load()
}

// Pause stops ticking until Resume, routed events wait in the queue
func (s *Scheduler) Pause() { s.paused.Store(true) }

// Resume continues ticking from the current time without catching up
func (s *Scheduler) Resume() { s.paused.Store(false) }

func (s *Scheduler) IsPaused() bool { return s.paused.Load() }

// Run ticks until ctx is done
// Deadlines advance by the interval for drift correction, falling more than two ticks behind resets them
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return nil
	}
	defer s.running.Store(false)

	s.log.Debug().Dur("interval", s.interval).Int("systems", len(s.systems)).Msg("Scheduler started")
	next := time.Now().Add(s.interval)
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Debug().Uint64("ticks", s.ticks.Load()).Msg("Scheduler stopped")
			return ctx.Err()
		case <-timer.C:
		}

		now := time.Now()
		if s.paused.Load() {
			next = now.Add(s.interval)
			timer.Reset(s.interval * 2)
			continue
		}

		if !now.Before(next) {
			s.Step()
			next = next.Add(s.interval)
			if now.Sub(next) > s.interval*2 {
				next = now.Add(s.interval)
			}
		}
		timer.Reset(max(time.Until(next), 0))
	}
}
