package status

import (
	"sync"
	"testing"
)

// TestTableReturnsSameCell verifies repeated Get resolves one cell
func TestTableReturnsSameCell(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(MissileLive)
	b := r.Ints.Get(MissileLive)
	if a != b {
		t.Error("Expected the same cell")
	}
	a.Store(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
}

// TestTableConcurrentGet verifies racing first requests share one cell
func TestTableConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get(CombatHits).Add(1)
		}()
	}
	wg.Wait()
	if got := r.Ints.Get(CombatHits).Load(); got != 16 {
		t.Errorf("Expected 16, got %d", got)
	}
	if r.Ints.Len() != 1 {
		t.Errorf("Expected 1 metric, got %d", r.Ints.Len())
	}
}

// TestCountersSorted verifies counters come back in key order
func TestCountersSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(TickCount).Store(2)
	r.Ints.Get(CombatBlocks).Store(1)
	r.Ints.Get(MissileSpawned).Store(5)

	got := r.Counters()
	want := []string{CombatBlocks, MissileSpawned, TickCount}
	if len(got) != len(want) {
		t.Fatalf("Expected %d counters, got %d", len(want), len(got))
	}
	for i, k := range want {
		if got[i].Key != k {
			t.Errorf("Expected key %s at %d, got %s", k, i, got[i].Key)
		}
	}
	if got[1].Value != 5 {
		t.Errorf("Expected 5, got %d", got[1].Value)
	}
}

// TestLabelTruncates verifies long values are cut to one column
func TestLabelTruncates(t *testing.T) {
	var l Label
	if l.Load() != "" {
		t.Error("Expected empty zero value")
	}
	l.Store("lightning_control_thin_extra_long")
	if len(l.Load()) != LabelWidth {
		t.Errorf("Expected length %d, got %d", LabelWidth, len(l.Load()))
	}
}

// TestFloatAverage verifies the first sample seeds the average
func TestFloatAverage(t *testing.T) {
	var f Float
	if got := f.Average(10, 0.5); got != 10 {
		t.Errorf("Expected 10, got %v", got)
	}
	if got := f.Average(20, 0.5); got != 15 {
		t.Errorf("Expected 15, got %v", got)
	}
}
