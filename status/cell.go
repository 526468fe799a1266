package status

import (
	"math"
	"slices"
	"sync"
	"sync/atomic"
)

// LabelWidth bounds label metrics to one HUD column
const LabelWidth = 24

// Table hands out one stable cell per key; the zero value is ready to use
// Cells are allocated once and then read and written without the table
type Table[T any] struct {
	cells sync.Map // string -> *T
	size  atomic.Int32
}

// Get returns the cell for key, creating it on first request
func (t *Table[T]) Get(key string) *T {
	if c, ok := t.cells.Load(key); ok {
		return c.(*T)
	}
	c, loaded := t.cells.LoadOrStore(key, new(T))
	if !loaded {
		t.size.Add(1)
	}
	return c.(*T)
}

func (t *Table[T]) Len() int {
	return int(t.size.Load())
}

// Keys lists registered keys in sorted order
func (t *Table[T]) Keys() []string {
	keys := make([]string, 0, t.Len())
	t.cells.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	slices.Sort(keys)
	return keys
}

// Float is a float64 cell
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Store(v float64) { f.bits.Store(math.Float64bits(v)) }

func (f *Float) Load() float64 { return math.Float64frombits(f.bits.Load()) }

// Average folds sample into an exponential moving average, the first sample seeds it
func (f *Float) Average(sample, weight float64) float64 {
	for {
		raw := f.bits.Load()
		avg := sample
		if raw != 0 {
			cur := math.Float64frombits(raw)
			avg = cur + weight*(sample-cur)
		}
		if f.bits.CompareAndSwap(raw, math.Float64bits(avg)) {
			return avg
		}
	}
}

// Label is a short text cell, cut to LabelWidth bytes
type Label struct {
	v atomic.Value
}

func (l *Label) Store(s string) {
	if len(s) > LabelWidth {
		s = s[:LabelWidth]
	}
	l.v.Store(s)
}

func (l *Label) Load() string {
	s, _ := l.v.Load().(string)
	return s
}
