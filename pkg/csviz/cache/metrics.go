package cache

import "github.com/prometheus/client_golang/prometheus"

// storeMetrics exposes cache behavior as Prometheus counters. A nil receiver
// is valid and records nothing, so metrics stay optional.
type storeMetrics struct {
	hits        prometheus.Counter
	misses      prometheus.Counter
	rebuilds    prometheus.Counter
	buildErrors prometheus.Counter
}

// WithMetrics registers hit/miss/rebuild counters on reg, named under
// prefix. Registration conflicts panic, so a store should be constructed
// once per registry and prefix.
func WithMetrics(reg prometheus.Registerer, prefix string) Option {
	return func(s *Store) {
		m := &storeMetrics{
			hits: prometheus.NewCounter(prometheus.CounterOpts{
				Name: prefix + "_cache_hits_total",
				Help: "Number of lookups served from the cache.",
			}),
			misses: prometheus.NewCounter(prometheus.CounterOpts{
				Name: prefix + "_cache_misses_total",
				Help: "Number of lookups that found no fresh entry.",
			}),
			rebuilds: prometheus.NewCounter(prometheus.CounterOpts{
				Name: prefix + "_cache_rebuilds_total",
				Help: "Number of successful pipeline rebuilds.",
			}),
			buildErrors: prometheus.NewCounter(prometheus.CounterOpts{
				Name: prefix + "_cache_build_errors_total",
				Help: "Number of failed pipeline rebuilds.",
			}),
		}
		reg.MustRegister(m.hits, m.misses, m.rebuilds, m.buildErrors)
		s.metrics = m
	}
}

func (m *storeMetrics) hit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *storeMetrics) miss() {
	if m != nil {
		m.misses.Inc()
	}
}

func (m *storeMetrics) rebuild() {
	if m != nil {
		m.rebuilds.Inc()
	}
}

func (m *storeMetrics) buildError() {
	if m != nil {
		m.buildErrors.Inc()
	}
}
