package audio

import (
	"sync"

	"github.com/lixenwraith/vi-missile/core"
)

// soundCache renders each effect once at unity gain
type soundCache struct {
	once [core.SoundTypeCount]sync.Once
	bufs [core.SoundTypeCount]floatBuffer
}

func newSoundCache() *soundCache {
	return &soundCache{}
}

func (c *soundCache) get(st core.SoundType) floatBuffer {
	if st <= core.SoundNone || st >= core.SoundTypeCount {
		return nil
	}
	c.once[st].Do(func() { c.bufs[st] = generateSound(st) })
	return c.bufs[st]
}

// preload renders the bolt launch and impact pairs so the first cast does not stall the mixer
func (c *soundCache) preload() {
	for _, st := range []core.SoundType{
		core.SoundFirebolt,
		core.SoundFireImpact,
		core.SoundLightning,
		core.SoundElectricImpact,
	} {
		c.get(st)
	}
}
