package combat

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/engine"
	"github.com/lixenwraith/vi-missile/event"
	"github.com/lixenwraith/vi-missile/level"
	"github.com/lixenwraith/vi-missile/lighting"
	"github.com/lixenwraith/vi-missile/parameter"
	"github.com/lixenwraith/vi-missile/status"
)

func newTestWorld(t *testing.T) (*engine.World, *level.Roster) {
	t.Helper()
	grid := level.NewGrid(20, 20)
	roster := level.NewRoster(grid, 0)
	reg := status.NewRegistry()
	w := engine.NewWorld(grid, roster, level.NewReactions(grid, roster), lighting.NewPool(reg, zerolog.Nop()), nil,
		engine.Options{Seed: 99, Log: zerolog.Nop(), Status: reg})
	return w, roster
}

func shieldedPlayer(mana int) *component.Player {
	p := &component.Player{
		Tile:             core.Point{X: 5, Y: 5},
		HitPoints:        100 << parameter.DamageShift,
		MaxHitPoints:     100 << parameter.DamageShift,
		BaseHitPoints:    100 << parameter.DamageShift,
		MaxBaseHitPoints: 100 << parameter.DamageShift,
		Mana:             mana,
		MaxMana:          200 << parameter.DamageShift,
		BaseMana:         mana,
		MaxBaseMana:      200 << parameter.DamageShift,
		ManaShield:       true,
	}
	return p
}

// TestScaleSpellEffect verifies the compounding one-eighth growth
func TestScaleSpellEffect(t *testing.T) {
	tests := []struct {
		base, level, want int
	}{
		{100, 0, 100},
		{100, 1, 112},
		{100, 2, 126},
		{8, 3, 11},
		{7, 5, 7},
	}
	for _, tc := range tests {
		if got := ScaleSpellEffect(tc.base, tc.level); got != tc.want {
			t.Errorf("ScaleSpellEffect(%d, %d): expected %d, got %d", tc.base, tc.level, tc.want, got)
		}
	}
}

// TestHitChanceBounds verifies monster and duel chances stay within 5..95
func TestHitChanceBounds(t *testing.T) {
	strong := &component.Player{RangedToHit: 500, MagicToHit: 500, Level: 50}
	weak := &component.Player{RangedToHit: -500, MagicToHit: -500, Level: 1}
	mon := &component.Monster{Armor: 40, Level: 20}
	phys := Attack{Class: component.ClassPhysical, Distance: 3}
	magic := Attack{Class: component.ClassMagic, Distance: 3}

	for _, a := range []Attack{phys, magic} {
		if got := MonsterHitChance(strong, mon, a); got != parameter.HitChanceMax {
			t.Errorf("Expected %d for a strong player, got %d", parameter.HitChanceMax, got)
		}
		if got := MonsterHitChance(weak, mon, a); got != parameter.HitChanceMin {
			t.Errorf("Expected %d for a weak player, got %d", parameter.HitChanceMin, got)
		}
		if got := PvPHitChance(strong, weak, a); got != parameter.HitChanceMax {
			t.Errorf("Expected duel chance %d, got %d", parameter.HitChanceMax, got)
		}
		if got := PvPHitChance(weak, strong, a); got != parameter.HitChanceMin {
			t.Errorf("Expected duel chance %d, got %d", parameter.HitChanceMin, got)
		}
	}

	if got := TrapHitChance(&component.Monster{Armor: 200}, 10); got != parameter.HitChanceMin {
		t.Errorf("Expected trap chance %d, got %d", parameter.HitChanceMin, got)
	}
}

// TestPlayerHitFloorByDepth verifies deep levels raise the minimum chance of being hit
func TestPlayerHitFloorByDepth(t *testing.T) {
	armored := &component.Player{Armor: 1000, Level: 50}
	a := Attack{Class: component.ClassPhysical, Distance: 10}

	for _, f := range parameter.PlayerHitFloors {
		if got := PlayerHitChance(armored, nil, a, f.Depth); got != f.Floor {
			t.Errorf("Depth %d: expected floor %d, got %d", f.Depth, f.Floor, got)
		}
	}
	if got := PlayerHitChance(armored, nil, a, 3); got != parameter.PlayerHitFloorDefault {
		t.Errorf("Expected default floor %d, got %d", parameter.PlayerHitFloorDefault, got)
	}

	exposed := &component.Player{Armor: -1000}
	if got := PlayerHitChance(exposed, nil, a, 3); got != parameter.PlayerHitChanceMax {
		t.Errorf("Expected cap %d, got %d", parameter.PlayerHitChanceMax, got)
	}
}

// TestManaShieldAbsorbs verifies damage is paid from mana while it lasts
func TestManaShieldAbsorbs(t *testing.T) {
	w, roster := newTestWorld(t)
	r := NewResolver(w)
	p := shieldedPlayer(100 << parameter.DamageShift)
	roster.AddPlayer(p)

	r.ApplyPlayerDamage(p, 10, 0, 0, false)

	if p.HitPoints != p.MaxHitPoints {
		t.Errorf("Expected full hit points, got %d", p.HitPoints)
	}
	if want := 90 << parameter.DamageShift; p.Mana != want {
		t.Errorf("Expected mana %d, got %d", want, p.Mana)
	}
	if !p.ManaShield {
		t.Error("Expected shield to stay up")
	}
}

// TestManaShieldBreaks verifies overflow damage reaches hit points and the shield drop is announced
func TestManaShieldBreaks(t *testing.T) {
	w, roster := newTestWorld(t)
	r := NewResolver(w)
	p := shieldedPlayer(4 << parameter.DamageShift)
	roster.AddPlayer(p)

	r.ApplyPlayerDamage(p, 10, 0, 0, false)

	if p.Mana != 0 {
		t.Errorf("Expected empty mana, got %d", p.Mana)
	}
	if want := 94 << parameter.DamageShift; p.HitPoints != want {
		t.Errorf("Expected %d hit points, got %d", want, p.HitPoints)
	}

	found := false
	for _, ev := range w.Events.Consume() {
		if ev.Type == event.EventNetRemoveShield {
			found = true
		}
	}
	if !found {
		t.Error("Expected a shield removal command")
	}
}

// TestApplyPlayerDamageFloor verifies minHP keeps the player standing
func TestApplyPlayerDamageFloor(t *testing.T) {
	w, roster := newTestWorld(t)
	r := NewResolver(w)
	p := shieldedPlayer(0)
	p.ManaShield = false
	roster.AddPlayer(p)

	r.ApplyPlayerDamage(p, 500, 1, 0, false)

	if want := 1 << parameter.DamageShift; p.HitPoints != want {
		t.Errorf("Expected %d hit points, got %d", want, p.HitPoints)
	}
	if !p.IsAlive() {
		t.Error("Expected player alive at the floor")
	}
}

// TestClassHealingBonus verifies class multipliers
func TestClassHealingBonus(t *testing.T) {
	tests := []struct {
		class component.HeroClass
		want  int
	}{
		{component.ClassWarrior, 200},
		{component.ClassBarbarian, 200},
		{component.ClassRogue, 150},
		{component.ClassSorcerer, 100},
	}
	for _, tc := range tests {
		if got := ClassHealingBonus(100, tc.class); got != tc.want {
			t.Errorf("Class %d: expected %d, got %d", tc.class, tc.want, got)
		}
	}
}
