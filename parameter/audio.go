package parameter

import "time"

// PCM output format, signed 16-bit little-endian stereo
const (
	AudioSampleRate    = 44100
	AudioChannels      = 2
	AudioBitDepth      = 16
	AudioBytesPerFrame = AudioChannels * AudioBitDepth / 8
)

// Mixer
const (
	// AudioBufferDuration is one mixer period, matched to the simulation tick
	AudioBufferDuration = GameUpdateInterval

	// AudioBufferSamples is frames rendered per mixer period
	AudioBufferSamples = AudioSampleRate * int(AudioBufferDuration/time.Millisecond) / 1000

	// AudioQueueSize bounds pending play requests, extra requests are dropped
	AudioQueueSize = 32

	// AudioMaxVoices caps concurrent effects, starting one more cuts the oldest
	AudioMaxVoices = 16
)

// Positional audio, in tiles
const (
	// AudioHearingRadius is where an effect fades to silence
	AudioHearingRadius = 20

	// AudioPanWidth is the horizontal offset that pans fully to one side
	AudioPanWidth = 10
)
