package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/parameter"
)

// cue is a queued effect with its channel gains
type cue struct {
	sound        core.SoundType
	gainL, gainR float64
}

// voice is one effect being mixed
type voice struct {
	samples      floatBuffer
	at           int
	gainL, gainR float64
}

// MixerStats counts effects started and effects dropped on a full queue
type MixerStats struct {
	Played  uint64
	Dropped uint64
}

// Mixer sums active voices into interleaved s16le stereo every buffer period
type Mixer struct {
	w     io.Writer
	cache *soundCache

	cues   chan cue
	quit   chan struct{}
	closed atomic.Bool
	failed chan error

	// Owned by the mix goroutine
	voices      []voice
	left, right []float64
	frame       []byte

	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewMixer creates a mixer writing to w
func NewMixer(w io.Writer, cache *soundCache) *Mixer {
	return &Mixer{
		w:      w,
		cache:  cache,
		cues:   make(chan cue, parameter.AudioQueueSize),
		quit:   make(chan struct{}),
		failed: make(chan error, 1),
		voices: make([]voice, 0, parameter.AudioMaxVoices),
		left:   make([]float64, parameter.AudioBufferSamples),
		right:  make([]float64, parameter.AudioBufferSamples),
		frame:  make([]byte, parameter.AudioBufferSamples*parameter.AudioBytesPerFrame),
	}
}

func (m *Mixer) Start() {
	go m.loop()
}

func (m *Mixer) Stop() {
	if m.closed.CompareAndSwap(false, true) {
		close(m.quit)
	}
}

// Play queues an effect, a full queue drops it
func (m *Mixer) Play(st core.SoundType, gainL, gainR float64) {
	if m.closed.Load() {
		return
	}
	select {
	case m.cues <- cue{sound: st, gainL: gainL, gainR: gainR}:
	default:
		m.dropped.Add(1)
	}
}

// Errors delivers the write error that stopped the loop
func (m *Mixer) Errors() <-chan error {
	return m.failed
}

func (m *Mixer) Stats() MixerStats {
	return MixerStats{Played: m.played.Load(), Dropped: m.dropped.Load()}
}

func (m *Mixer) loop() {
	period := time.NewTicker(parameter.AudioBufferDuration)
	defer period.Stop()

	for {
		select {
		case <-m.quit:
			return
		case c := <-m.cues:
			m.start(c)
		case <-period.C:
			m.takeCues()
			if err := m.step(); err != nil {
				m.failed <- err
				return
			}
		}
	}
}

// takeCues starts everything queued since the last period
func (m *Mixer) takeCues() {
	for {
		select {
		case c := <-m.cues:
			m.start(c)
		default:
			return
		}
	}
}

// start adds a voice, the oldest voice is cut when the budget is spent
func (m *Mixer) start(c cue) {
	samples := m.cache.get(c.sound)
	if len(samples) == 0 {
		return
	}
	if len(m.voices) == parameter.AudioMaxVoices {
		m.voices = append(m.voices[:0], m.voices[1:]...)
	}
	m.voices = append(m.voices, voice{samples: samples, gainL: c.gainL, gainR: c.gainR})
	m.played.Add(1)
}

// step mixes and writes one period, silence is written too so the player does not underrun
func (m *Mixer) step() error {
	clear(m.left)
	clear(m.right)
	live := m.voices[:0]
	for _, v := range m.voices {
		n := min(len(m.left), len(v.samples)-v.at)
		for j, s := range v.samples[v.at : v.at+n] {
			m.left[j] += s * v.gainL
			m.right[j] += s * v.gainR
		}
		v.at += n
		if v.at < len(v.samples) {
			live = append(live, v)
		}
	}
	m.voices = live

	encodePCM(m.left, m.right, m.frame)
	if _, err := m.w.Write(m.frame); err != nil {
		return fmt.Errorf("%w: %v", ErrPipeClosed, err)
	}
	return nil
}

// softClip compresses peaks above 0.8 before the hard clip at 1
func softClip(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign, v = -1, -v
	}
	if v > 0.8 {
		v = 0.8 + 0.2*(1-1/(1+(v-0.8)*5))
	}
	return sign * min(v, 1)
}

// encodePCM interleaves the channels as little-endian int16
func encodePCM(left, right []float64, out []byte) {
	for i := range left {
		at := i * parameter.AudioBytesPerFrame
		binary.LittleEndian.PutUint16(out[at:], uint16(int16(softClip(left[i])*32767)))
		binary.LittleEndian.PutUint16(out[at+2:], uint16(int16(softClip(right[i])*32767)))
	}
}
