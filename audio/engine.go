package audio

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/parameter"
)

type engineState uint32

const (
	stateStopped engineState = iota
	stateSilent              // Started without a working output, effects are dropped
	stateLive
)

// AudioEngine plays positional effects through a system player binary
// It satisfies engine.Sound
type AudioEngine struct {
	config *AudioConfig
	cache  *soundCache
	mixer  *Mixer
	out    *output
	log    zerolog.Logger

	state atomic.Uint32
	muted atomic.Bool

	mu       sync.RWMutex // Guards config volumes and listener
	listener core.Point
	done     chan struct{}
	wg       sync.WaitGroup
}

// NewAudioEngine creates an engine, a nil config uses the defaults
func NewAudioEngine(cfg *AudioConfig, log zerolog.Logger) *AudioEngine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	ae := &AudioEngine{
		config: cfg,
		cache:  newSoundCache(),
		log:    log.With().Str("system", "audio").Logger(),
	}
	ae.muted.Store(!cfg.Enabled)
	return ae
}

// Start detects a backend and begins mixing
// Without a usable backend the engine runs silent and Start still succeeds
func (ae *AudioEngine) Start() error {
	if engineState(ae.state.Load()) != stateStopped {
		return ErrRunning
	}
	ae.cache.preload()

	b, err := DetectBackend()
	if err == nil {
		ae.out, err = openOutput(b)
	}
	if err != nil {
		ae.log.Info().Err(err).Msg("Audio disabled")
		ae.state.Store(uint32(stateSilent))
		return nil
	}
	ae.log.Info().Stringer("backend", b.Kind).Str("path", b.Path).Msg("Audio started")
	ae.run(ae.out.w, ae.out.exited)
	return nil
}

// StartWithWriter mixes into w instead of a detected backend
func (ae *AudioEngine) StartWithWriter(w io.Writer) error {
	if engineState(ae.state.Load()) != stateStopped {
		return ErrRunning
	}
	ae.run(w, nil)
	return nil
}

// run mixes into w and drops to silent when the write fails or the player exits
func (ae *AudioEngine) run(w io.Writer, exited <-chan error) {
	ae.mixer = NewMixer(w, ae.cache)
	ae.mixer.Start()
	ae.done = make(chan struct{})
	ae.state.Store(uint32(stateLive))

	ae.wg.Add(1)
	go func() {
		defer ae.wg.Done()
		var err error
		select {
		case <-ae.done:
			return
		case err = <-ae.mixer.Errors():
		case err = <-exited:
			if err == nil {
				err = ErrPipeClosed
			}
		}
		ae.log.Warn().Err(err).Msg("Audio output lost")
		ae.state.CompareAndSwap(uint32(stateLive), uint32(stateSilent))
	}()
}

func (ae *AudioEngine) Stop() {
	if engineState(ae.state.Swap(uint32(stateStopped))) == stateStopped {
		return
	}
	if ae.done != nil {
		close(ae.done)
	}
	if ae.mixer != nil {
		ae.mixer.Stop()
	}
	if ae.out != nil {
		ae.out.close()
	}
	ae.wg.Wait()
}

// SetListener moves the point effects are heard from, usually the local player
func (ae *AudioEngine) SetListener(tile core.Point) {
	ae.mu.Lock()
	ae.listener = tile
	ae.mu.Unlock()
}

// PlayAt queues an effect heard from the listener position
func (ae *AudioEngine) PlayAt(st core.SoundType, tile core.Point) {
	if st == core.SoundNone || !ae.IsEnabled() {
		return
	}
	ae.mu.RLock()
	left, right, ok := ae.gains(st, tile)
	ae.mu.RUnlock()
	if ok {
		ae.mixer.Play(st, left, right)
	}
}

// gains returns the per-channel volume of an effect, false when it is out of earshot
// Caller holds mu
func (ae *AudioEngine) gains(st core.SoundType, tile core.Point) (left, right float64, ok bool) {
	vol := ae.config.MasterVolume * ae.config.volumeOf(st)
	if !ae.config.Positional {
		return vol, vol, vol > 0
	}

	d := tile.Sub(ae.listener)
	dist := max(abs(d.DX), abs(d.DY))
	if dist >= parameter.AudioHearingRadius {
		return 0, 0, false
	}
	vol *= 1 - float64(dist)/float64(parameter.AudioHearingRadius)

	pan := max(min(float64(d.DX)/float64(parameter.AudioPanWidth), 1), -1)
	return vol * min(1, 1-pan), vol * min(1, 1+pan), vol > 0
}

// ToggleMute flips mute and reports whether effects now play
func (ae *AudioEngine) ToggleMute() bool {
	muted := !ae.muted.Load()
	ae.muted.Store(muted)
	return !muted
}

func (ae *AudioEngine) IsMuted() bool {
	return ae.muted.Load()
}

// IsEnabled reports whether PlayAt reaches the mixer
func (ae *AudioEngine) IsEnabled() bool {
	return engineState(ae.state.Load()) == stateLive && !ae.muted.Load()
}

// IsRunning reports whether Start succeeded, silent engines included
func (ae *AudioEngine) IsRunning() bool {
	return engineState(ae.state.Load()) != stateStopped
}

// SetVolume clamps vol to [0, 1] and applies it to every effect
func (ae *AudioEngine) SetVolume(vol float64) {
	ae.mu.Lock()
	ae.config.MasterVolume = max(min(vol, 1), 0)
	ae.mu.Unlock()
}

// Stats returns the mixer counters, zero before Start
func (ae *AudioEngine) Stats() MixerStats {
	if ae.mixer == nil {
		return MixerStats{}
	}
	return ae.mixer.Stats()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
