// Package status keeps session counters that the host loop writes every tick
// and other goroutines read without locking.
package status

import "sync/atomic"

// Metric keys written by the game host
const (
	Ticks           = "ticks"
	Pickups         = "pickups"
	Releases        = "releases"
	VerdictMatch    = "verdict.match"
	VerdictMismatch = "verdict.mismatch"
	VerdictUnset    = "verdict.unset"
	Resets          = "resets"
	FrameMillis     = "frame_ms"
)

// Registry is the metrics facade
// Callers cache pointers once; per-tick writes go straight to the atomics
type Registry struct {
	Ints   *Map[atomic.Int64]
	Floats *Map[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMap[atomic.Int64](),
		Floats: NewMap[AtomicFloat](),
	}
}

// Each visits integer metrics then float metrics, each group in key order
func (r *Registry) Each(fn func(key string, value any)) {
	r.Ints.Range(func(key string, v *atomic.Int64) { fn(key, v.Load()) })
	r.Floats.Range(func(key string, v *AtomicFloat) { fn(key, v.Get()) })
}
