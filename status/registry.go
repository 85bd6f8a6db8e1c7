// Package status holds live counters read by the debug overlay.
// Writers cache metric pointers once and update atomics on the hot path.
package status

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"sync/atomic"
)

// Gauge is an atomic float64, zero value ready to use
type Gauge struct {
	bits atomic.Uint64
}

// Store sets the gauge value
func (g *Gauge) Store(v float64) {
	g.bits.Store(math.Float64bits(v))
}

// Load returns the gauge value
func (g *Gauge) Load() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Registry maps metric names to counters and gauges
// Registration takes the lock; reads and writes through cached pointers do not
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
	gauges   map[string]*Gauge
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]*atomic.Int64),
		gauges:   make(map[string]*Gauge),
	}
}

// Counter returns the counter for name, creating it on first use
func (r *Registry) Counter(name string) *atomic.Int64 {
	r.mu.RLock()
	c, ok := r.counters[name]
	r.mu.RUnlock()
	if ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.counters[name]; ok {
		return c
	}
	c = new(atomic.Int64)
	r.counters[name] = c
	return c
}

// Gauge returns the gauge for name, creating it on first use
func (r *Registry) Gauge(name string) *Gauge {
	r.mu.RLock()
	g, ok := r.gauges[name]
	r.mu.RUnlock()
	if ok {
		return g
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if g, ok := r.gauges[name]; ok {
		return g
	}
	g = new(Gauge)
	r.gauges[name] = g
	return g
}

// Count returns the number of registered metrics
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.counters) + len(r.gauges)
}

// Lines formats every metric as "name: value", sorted by name
func (r *Registry) Lines() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines := make([]string, 0, len(r.counters)+len(r.gauges))
	for name, c := range r.counters {
		lines = append(lines, fmt.Sprintf("%s: %d", name, c.Load()))
	}
	for name, g := range r.gauges {
		lines = append(lines, fmt.Sprintf("%s: %.2f", name, g.Load()))
	}
	sort.Strings(lines)
	return lines
}
