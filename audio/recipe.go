package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-missile/core"
)

// layer is one oscillator of an effect
type layer struct {
	wave    WaveType
	freq    float64
	endFreq float64
	delay   time.Duration
	dur     time.Duration
	attack  time.Duration
	release time.Duration
	gain    float64
}

const ms = time.Millisecond

// recipes maps each effect to its layers, unlisted sounds are silent
var recipes = [core.SoundTypeCount][]layer{
	core.SoundFirebolt: {
		{WaveNoise, 0, 0, 0, 180 * ms, 20 * ms, 120 * ms, 0.5},
		{WaveSaw, 220, 110, 0, 180 * ms, 5 * ms, 120 * ms, 0.4},
	},
	core.SoundFireImpact: {
		{WaveNoise, 0, 0, 0, 120 * ms, 2 * ms, 100 * ms, 0.8},
	},
	core.SoundFireImpactLarge: {
		{WaveNoise, 0, 0, 0, 400 * ms, 5 * ms, 350 * ms, 0.9},
		{WaveSine, 90, 40, 0, 400 * ms, 5 * ms, 300 * ms, 0.6},
	},
	core.SoundGuardian: {
		{WaveSquare, 110, 220, 0, 300 * ms, 20 * ms, 100 * ms, 0.4},
	},
	core.SoundGuardianEnd: {
		{WaveSquare, 220, 110, 0, 250 * ms, 5 * ms, 200 * ms, 0.4},
	},
	core.SoundTeleport: {
		{WaveSine, 300, 1200, 0, 200 * ms, 10 * ms, 80 * ms, 0.6},
	},
	core.SoundWallLoop: {
		{WaveNoise, 900, 900, 0, 300 * ms, 50 * ms, 100 * ms, 0.5},
	},
	core.SoundLightning: {
		{WaveNoise, 3000, 3000, 0, 250 * ms, 3 * ms, 60 * ms, 0.6},
		{WaveSaw, 60, 60, 0, 250 * ms, 3 * ms, 60 * ms, 0.3},
	},
	core.SoundElectricImpact: {
		{WaveNoise, 2000, 500, 0, 90 * ms, 1 * ms, 70 * ms, 0.7},
	},
	core.SoundPortal: {
		{WaveSine, 220, 220, 0, 500 * ms, 100 * ms, 200 * ms, 0.5},
		{WaveSine, 330, 330, 100 * ms, 400 * ms, 100 * ms, 200 * ms, 0.3},
	},
	core.SoundElemental: {
		{WaveSaw, 140, 70, 0, 350 * ms, 10 * ms, 250 * ms, 0.6},
	},
	core.SoundNova: {
		{WaveSine, 800, 200, 0, 450 * ms, 5 * ms, 350 * ms, 0.6},
		{WaveNoise, 0, 0, 0, 450 * ms, 5 * ms, 400 * ms, 0.3},
	},
	core.SoundManaShield: {
		{WaveSine, 440, 660, 0, 350 * ms, 30 * ms, 150 * ms, 0.5},
	},
	core.SoundEthereal: {
		{WaveSine, 660, 330, 0, 400 * ms, 80 * ms, 200 * ms, 0.4},
	},
	core.SoundStone: {
		{WaveNoise, 400, 100, 0, 300 * ms, 2 * ms, 250 * ms, 0.7},
	},
	core.SoundGolem: {
		{WaveSquare, 55, 80, 0, 500 * ms, 20 * ms, 300 * ms, 0.5},
	},
	core.SoundFlameWave: {
		{WaveNoise, 0, 0, 0, 600 * ms, 100 * ms, 300 * ms, 0.6},
	},
	core.SoundBloodBoil: {
		{WaveSaw, 80, 50, 0, 300 * ms, 5 * ms, 200 * ms, 0.5},
	},
	core.SoundApocalypse: {
		{WaveNoise, 0, 0, 0, 800 * ms, 20 * ms, 600 * ms, 0.8},
		{WaveSine, 60, 30, 0, 800 * ms, 20 * ms, 600 * ms, 0.7},
	},
	core.SoundTrapDisarm: {
		{WaveSquare, 1200, 1200, 0, 40 * ms, 1 * ms, 20 * ms, 0.3},
		{WaveSquare, 900, 900, 60 * ms, 40 * ms, 1 * ms, 20 * ms, 0.3},
	},
	core.SoundFlameSpout: {
		{WaveNoise, 0, 0, 0, 250 * ms, 30 * ms, 150 * ms, 0.5},
	},
	core.SoundChargedBolt: {
		{WaveNoise, 4000, 4000, 0, 150 * ms, 1 * ms, 80 * ms, 0.5},
	},
	core.SoundHolyBolt: {
		{WaveSine, 880, 880, 0, 250 * ms, 5 * ms, 200 * ms, 0.5},
		{WaveSine, 1320, 1320, 0, 250 * ms, 5 * ms, 120 * ms, 0.3},
	},
	core.SoundResurrect: {
		{WaveSine, 523, 1046, 0, 600 * ms, 50 * ms, 300 * ms, 0.5},
	},
	core.SoundAcid: {
		{WaveNoise, 1500, 600, 0, 150 * ms, 5 * ms, 100 * ms, 0.5},
	},
	core.SoundPuddle: {
		{WaveNoise, 300, 300, 0, 200 * ms, 20 * ms, 150 * ms, 0.3},
	},
	core.SoundMagic: {
		{WaveSine, 500, 700, 0, 200 * ms, 10 * ms, 120 * ms, 0.4},
	},
	core.SoundBoneSpirit: {
		{WaveSaw, 180, 360, 0, 300 * ms, 10 * ms, 150 * ms, 0.4},
	},
	core.SoundBoneSpiritImpact: {
		{WaveNoise, 600, 200, 0, 200 * ms, 2 * ms, 150 * ms, 0.6},
	},
	core.SoundHiveExplode: {
		{WaveNoise, 0, 0, 0, 300 * ms, 2 * ms, 250 * ms, 0.8},
	},
	core.SoundSearchEnd: {
		{WaveSine, 660, 440, 0, 150 * ms, 5 * ms, 100 * ms, 0.3},
	},
	core.SoundPotionPop: {
		{WaveSine, 1200, 300, 0, 80 * ms, 1 * ms, 60 * ms, 0.5},
	},
	core.SoundManaTrap: {
		{WaveSaw, 400, 100, 0, 350 * ms, 5 * ms, 250 * ms, 0.4},
	},
	core.SoundInfravision: {
		{WaveSine, 200, 400, 0, 300 * ms, 50 * ms, 150 * ms, 0.4},
	},
}

// streamerOf builds the layered streamer of an effect and its length in samples
func streamerOf(st core.SoundType) (beep.Streamer, int) {
	if st <= core.SoundNone || st >= core.SoundTypeCount {
		return nil, 0
	}
	layers := recipes[st]
	if len(layers) == 0 {
		return nil, 0
	}

	parts := make([]beep.Streamer, 0, len(layers))
	total := 0
	for i, l := range layers {
		var s beep.Streamer = newSweep(l.wave, l.freq, l.endFreq, l.dur, uint64(st)<<8|uint64(i+1))
		s = newEnvelope(s, l.dur, l.attack, l.release)
		s = newVolume(s, l.gain)
		if l.delay > 0 {
			s = beep.Seq(beep.Silence(sampleRate.N(l.delay)), s)
		}
		parts = append(parts, s)
		total = max(total, sampleRate.N(l.delay+l.dur))
	}
	if len(parts) == 1 {
		return parts[0], total
	}
	return beep.Mix(parts...), total
}

// generateSound renders an effect at unity gain
func generateSound(st core.SoundType) floatBuffer {
	s, n := streamerOf(st)
	if s == nil {
		return nil
	}
	return render(s, n)
}
