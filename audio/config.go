package audio

import (
	"github.com/lixenwraith/vi-missile/core"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64
	// EffectVolumes scales individual effects, missing entries play at 1.0
	EffectVolumes map[core.SoundType]float64
	// Positional disables distance fade and pan when false
	Positional bool
}

// DefaultAudioConfig returns an enabled positional config
// Looping and frequent impact sounds start quieter
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.6,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundWallLoop:       0.4,
			core.SoundFireImpact:     0.7,
			core.SoundElectricImpact: 0.7,
			core.SoundMagic:          0.5,
		},
		Positional: true,
	}
}

// volumeOf returns the effect scale
func (c *AudioConfig) volumeOf(st core.SoundType) float64 {
	if v, ok := c.EffectVolumes[st]; ok {
		return v
	}
	return 1.0
}
