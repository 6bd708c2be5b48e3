package prometheus

import (
	"errors"
	"fmt"

	"github.com/kentcdodds/clientprint"
	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics is a Prometheus-backed implementation of
// clientprint.Metrics.
type PrometheusMetrics struct {
	resolveTotal   *prom.CounterVec
	recoveryEvents *prom.CounterVec
}

// WithMetrics returns a clientprint option that installs Prometheus-backed
// metrics using prom.DefaultRegisterer.
func WithMetrics() clientprint.Option {
	return withMetricsFactory(New)
}

// WithRegisterer returns a clientprint option that installs Prometheus-backed
// metrics using the provided registerer.
//
// If registerer is nil, prom.DefaultRegisterer is used.
func WithRegisterer(registerer prom.Registerer) clientprint.Option {
	return withMetricsFactory(func() (*PrometheusMetrics, error) {
		return NewWithRegisterer(registerer)
	})
}

// withMetricsFactory adapts a PrometheusMetrics constructor into a
// clientprint option.
func withMetricsFactory(factory func() (*PrometheusMetrics, error)) clientprint.Option {
	return clientprint.WithMetricsFactory(func() (clientprint.Metrics, error) {
		return factory()
	})
}

// New creates PrometheusMetrics and registers its collectors on
// prom.DefaultRegisterer.
func New() (*PrometheusMetrics, error) {
	return NewWithRegisterer(prom.DefaultRegisterer)
}

// NewWithRegisterer creates PrometheusMetrics and registers its collectors on
// the given registerer.
//
// If registerer is nil, prom.DefaultRegisterer is used. If the metrics are
// already registered, existing compatible collectors are reused.
func NewWithRegisterer(registerer prom.Registerer) (*PrometheusMetrics, error) {
	if registerer == nil {
		registerer = prom.DefaultRegisterer
	}

	resolveTotalCollector := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "client_ip_resolve_total",
			Help: "Total number of client IP resolution attempts by source (x-forwarded-for, forwarded, x-real-ip) and result (resolved, miss).",
		},
		[]string{"source", "result"},
	)
	recoveryEventsCollector := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "client_ip_parse_recovery_events_total",
			Help: "Malformed-header recoveries during client IP resolution, labeled by event.",
		},
		[]string{"event"},
	)

	resolveTotal, err := registerCounterVec(registerer, resolveTotalCollector, "client_ip_resolve_total")
	if err != nil {
		return nil, err
	}

	recoveryEvents, err := registerCounterVec(registerer, recoveryEventsCollector, "client_ip_parse_recovery_events_total")
	if err != nil {
		return nil, err
	}

	return &PrometheusMetrics{
		resolveTotal:   resolveTotal,
		recoveryEvents: recoveryEvents,
	}, nil
}

func registerCounterVec(registerer prom.Registerer, collector *prom.CounterVec, metricName string) (*prom.CounterVec, error) {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prom.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(*prom.CounterVec)
			if ok {
				return existing, nil
			}
			return nil, fmt.Errorf("metric %q already registered with incompatible collector type %T", metricName, alreadyRegistered.ExistingCollector)
		}

		return nil, fmt.Errorf("register metric %q: %w", metricName, err)
	}

	return collector, nil
}

// RecordResolveSuccess increments client_ip_resolve_total with
// result="resolved" for the provided source.
func (m *PrometheusMetrics) RecordResolveSuccess(source string) {
	m.resolveTotal.WithLabelValues(source, "resolved").Inc()
}

// RecordResolveMiss increments client_ip_resolve_total with result="miss"
// for the provided source.
func (m *PrometheusMetrics) RecordResolveMiss(source string) {
	m.resolveTotal.WithLabelValues(source, "miss").Inc()
}

// RecordRecoveryEvent increments client_ip_parse_recovery_events_total for
// the provided event label.
func (m *PrometheusMetrics) RecordRecoveryEvent(event string) {
	m.recoveryEvents.WithLabelValues(event).Inc()
}
