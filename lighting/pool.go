package lighting

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/parameter"
	"github.com/lixenwraith/vi-missile/status"
)

// ErrUnknownHandle is returned for handles that were never issued or already released
var ErrUnknownHandle = errors.New("unknown light handle")

// Light is one dynamic light source
type Light struct {
	Tile   core.Point
	Radius int
	Offset core.Displacement // Sub-tile offset in eighths of a tile
	Active bool
}

// Pool is a fixed-size light table
// Handles are slot index + 1 so the zero value of a record never aliases a live light
type Pool struct {
	lights [parameter.LightPoolSize]Light
	free   []int

	log      zerolog.Logger
	statLive *atomic.Int64
	misuse   int
}

// NewPool creates an empty pool reporting live count to reg
func NewPool(reg *status.Registry, log zerolog.Logger) *Pool {
	p := &Pool{
		free:     make([]int, 0, parameter.LightPoolSize),
		log:      log,
		statLive: reg.Ints.Get(status.LightLive),
	}
	for i := parameter.LightPoolSize - 1; i >= 0; i-- {
		p.free = append(p.free, i)
	}
	p.statLive.Store(0)
	return p
}

func (p *Pool) slot(h component.LightHandle) (*Light, error) {
	i := int(h) - 1
	if i < 0 || i >= len(p.lights) || !p.lights[i].Active {
		return nil, fmt.Errorf("light %d: %w", h, ErrUnknownHandle)
	}
	return &p.lights[i], nil
}

func clampRadius(r int) int {
	return max(0, min(r, parameter.LightMaxRadius))
}

// Add allocates a light, returns NoLight when the pool is exhausted
func (p *Pool) Add(tile core.Point, radius int) component.LightHandle {
	if len(p.free) == 0 {
		p.log.Debug().Int("radius", radius).Msg("light pool exhausted")
		return component.NoLight
	}
	i := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.lights[i] = Light{Tile: tile, Radius: clampRadius(radius), Active: true}
	p.statLive.Add(1)
	return component.LightHandle(i + 1)
}

func (p *Pool) Change(h component.LightHandle, tile core.Point, radius int) {
	l, err := p.slot(h)
	if err != nil {
		p.report("change", err)
		return
	}
	l.Tile = tile
	l.Radius = clampRadius(radius)
}

func (p *Pool) Move(h component.LightHandle, tile core.Point) {
	l, err := p.slot(h)
	if err != nil {
		p.report("move", err)
		return
	}
	l.Tile = tile
}

func (p *Pool) SetOffset(h component.LightHandle, offset core.Displacement) {
	l, err := p.slot(h)
	if err != nil {
		p.report("offset", err)
		return
	}
	l.Offset = offset
}

// Remove releases h, misuse is logged and counted
func (p *Pool) Remove(h component.LightHandle) {
	if err := p.Release(h); err != nil {
		p.report("remove", err)
	}
}

// Release frees h, a second release of the same handle fails with ErrUnknownHandle
func (p *Pool) Release(h component.LightHandle) error {
	l, err := p.slot(h)
	if err != nil {
		return err
	}
	*l = Light{}
	p.free = append(p.free, int(h)-1)
	p.statLive.Add(-1)
	return nil
}

func (p *Pool) report(op string, err error) {
	p.misuse++
	p.log.Warn().Err(err).Str("op", op).Msg("light misuse")
}

// Get returns a copy of the light behind h
func (p *Pool) Get(h component.LightHandle) (Light, error) {
	l, err := p.slot(h)
	if err != nil {
		return Light{}, err
	}
	return *l, nil
}

// Live returns the number of allocated lights
func (p *Pool) Live() int {
	return len(p.lights) - len(p.free)
}

// Misuse returns the number of calls made with stale or unknown handles
func (p *Pool) Misuse() int {
	return p.misuse
}

// Each visits every active light in slot order
func (p *Pool) Each(fn func(h component.LightHandle, l Light)) {
	for i := range p.lights {
		if p.lights[i].Active {
			fn(component.LightHandle(i+1), p.lights[i])
		}
	}
}
