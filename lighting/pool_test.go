package lighting

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/parameter"
	"github.com/lixenwraith/vi-missile/status"
)

// TestDoubleReleaseFails verifies a handle can only be released once
func TestDoubleReleaseFails(t *testing.T) {
	reg := status.NewRegistry()
	p := NewPool(reg, zerolog.Nop())

	h := p.Add(core.Point{X: 3, Y: 4}, 5)
	if h == component.NoLight {
		t.Fatal("Expected a handle")
	}
	if err := p.Release(h); err != nil {
		t.Fatalf("Expected first release to succeed, got %v", err)
	}
	if err := p.Release(h); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("Expected ErrUnknownHandle, got %v", err)
	}
	if got := reg.Ints.Get(status.LightLive).Load(); got != 0 {
		t.Errorf("Expected 0 live lights, got %d", got)
	}
}

// TestRemoveCountsMisuse verifies stale handles are logged and counted, not applied
func TestRemoveCountsMisuse(t *testing.T) {
	p := NewPool(status.NewRegistry(), zerolog.Nop())

	h := p.Add(core.Point{}, 3)
	p.Remove(h)
	p.Remove(h)
	p.Change(h, core.Point{X: 1}, 4)

	if p.Misuse() != 2 {
		t.Errorf("Expected 2 misuses, got %d", p.Misuse())
	}
	if p.Live() != 0 {
		t.Errorf("Expected 0 live lights, got %d", p.Live())
	}
}

// TestRadiusClamped verifies radii are kept within the light table
func TestRadiusClamped(t *testing.T) {
	p := NewPool(status.NewRegistry(), zerolog.Nop())

	h := p.Add(core.Point{}, parameter.LightMaxRadius+10)
	l, err := p.Get(h)
	if err != nil {
		t.Fatalf("Expected light, got %v", err)
	}
	if l.Radius != parameter.LightMaxRadius {
		t.Errorf("Expected radius %d, got %d", parameter.LightMaxRadius, l.Radius)
	}

	p.Change(h, core.Point{X: 2, Y: 2}, -4)
	l, _ = p.Get(h)
	if l.Radius != 0 || l.Tile != (core.Point{X: 2, Y: 2}) {
		t.Errorf("Expected radius 0 at (2,2), got %d at %v", l.Radius, l.Tile)
	}
}

// TestPoolExhaustion verifies a full pool hands out NoLight
func TestPoolExhaustion(t *testing.T) {
	p := NewPool(status.NewRegistry(), zerolog.Nop())
	for i := 0; i < parameter.LightPoolSize; i++ {
		if p.Add(core.Point{}, 1) == component.NoLight {
			t.Fatalf("Expected handle %d", i)
		}
	}
	if h := p.Add(core.Point{}, 1); h != component.NoLight {
		t.Errorf("Expected NoLight, got %d", h)
	}
}
