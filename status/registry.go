package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry is the central metrics facade
// The driver caches pointers once; the frame loop writes directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
	Labels *MetricMap[atomic.Pointer[string]]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
		Labels: NewMetricMap[atomic.Pointer[string]](),
	}
}

// SetLabel stores a string metric
func (r *Registry) SetLabel(key, val string) {
	r.Labels.Get(key).Store(&val)
}

// Label returns a string metric, empty if unset; reading does not register key
func (r *Registry) Label(key string) string {
	if !r.Labels.Has(key) {
		return ""
	}
	if p := r.Labels.Get(key).Load(); p != nil {
		return *p
	}
	return ""
}

// Summary renders every metric as sorted key=value pairs for logging
func (r *Registry) Summary() string {
	var parts []string
	r.Labels.Range(func(k string, p *atomic.Pointer[string]) {
		if s := p.Load(); s != nil {
			parts = append(parts, fmt.Sprintf("%s=%s", k, *s))
		}
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.3f", k, v.Get()))
	})
	return strings.Join(parts, " ")
}
