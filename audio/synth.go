package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-missile/parameter"
	"github.com/lixenwraith/vi-missile/vmath"
)

// WaveType selects an oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// floatBuffer holds mono samples in [-1, 1]
type floatBuffer []float64

// shape returns the wave value at phase p in [0, 1)
func (w WaveType) shape(p float64) float64 {
	switch w {
	case WaveSquare:
		return math.Copysign(1, 0.5-p)
	case WaveSaw:
		return 2*p - 1
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// newSweep glides from freq to endFreq over d
// For noise, freq is the sample-and-hold rate and zero means white noise
func newSweep(wave WaveType, freq, endFreq float64, d time.Duration, seed uint64) beep.Streamer {
	length := sampleRate.N(d)
	rng := vmath.NewFastRand(seed)
	rate := float64(sampleRate)
	pos, phase, held := 0, 0.0, 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n := min(len(samples), length-pos)
		if n <= 0 {
			return 0, false
		}
		for i := 0; i < n; i++ {
			var v float64
			if wave == WaveNoise {
				if freq == 0 || phase < freq/rate {
					held = float64(rng.Intn(65536))/32768 - 1
				}
				v = held
			} else {
				v = wave.shape(phase)
			}
			samples[i] = [2]float64{v, v}

			f := freq + (endFreq-freq)*float64(pos)/float64(length)
			_, phase = math.Modf(phase + f/rate)
			pos++
		}
		return n, true
	})
}

// newEnvelope ramps s up over attack and down over the last release of duration
func newEnvelope(s beep.Streamer, duration, attack, release time.Duration) beep.Streamer {
	total := sampleRate.N(duration)
	up := sampleRate.N(attack)
	down := sampleRate.N(release)
	fadeAt := max(total-down, up)
	pos := 0

	level := func() float64 {
		switch {
		case up > 0 && pos < up:
			return float64(pos) / float64(up)
		case down > 0 && pos >= fadeAt:
			return max(float64(total-pos)/float64(down), 0)
		}
		return 1
	}
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := range samples[:n] {
			g := level()
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// newVolume scales s linearly by vol
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: max(vol, 0) - 1}
}

// render pulls at most limit samples from s into a mono buffer
func render(s beep.Streamer, limit int) floatBuffer {
	out := make(floatBuffer, 0, limit)
	chunk := make([][2]float64, 512)
	s = beep.Take(limit, s)
	for {
		n, ok := s.Stream(chunk)
		for _, frame := range chunk[:n] {
			out = append(out, frame[0])
		}
		if !ok || n == 0 || len(out) >= limit {
			return out
		}
	}
}
