// Package status is a lock-free metrics registry for frame loop counters.
package status

import (
	"fmt"
	"io"
	"sync/atomic"
)

// Registry is the central metrics facade
// Canvases cache pointers at construction; frame bodies write directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// WriteTo prints every metric as "key value", ints first, each group in key order
func (r *Registry) WriteTo(w io.Writer) (int64, error) {
	var total int64
	var err error
	emit := func(format string, args ...any) {
		if err != nil {
			return
		}
		var n int
		n, err = fmt.Fprintf(w, format, args...)
		total += int64(n)
	}

	r.Ints.Range(func(key string, v *atomic.Int64) {
		emit("%s %d\n", key, v.Load())
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		emit("%s %.3f\n", key, v.Get())
	})
	return total, err
}
