package clientprint

import "fmt"

// MaxChainLength sets the maximum number of candidates accepted from one
// request's headers.
func MaxChainLength(max int) Option {
	return func(c *config) error {
		c.maxChainLength = max
		return nil
	}
}

// MaxNestedDepth sets how many levels of nested quoting and comma
// re-tokenization a single candidate value may unfold into.
func MaxNestedDepth(max int) Option {
	return func(c *config) error {
		c.maxNestedDepth = max
		return nil
	}
}

// WithLogger sets the logger implementation used for parse-recovery
// warnings.
func WithLogger(logger Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithMetrics sets a concrete metrics implementation.
//
// If previously configured, a metrics factory is disabled.
func WithMetrics(metrics Metrics) Option {
	return func(c *config) error {
		c.metrics = metrics
		c.metricsFactory = nil
		c.useMetricsFactory = false
		return nil
	}
}

// WithMetricsFactory configures a lazy metrics constructor.
//
// The factory is invoked only for the final winning metrics option after
// option validation succeeds.
func WithMetricsFactory(factory func() (Metrics, error)) Option {
	return func(c *config) error {
		if factory == nil {
			return fmt.Errorf("metrics factory cannot be nil")
		}

		c.metricsFactory = factory
		c.useMetricsFactory = true
		return nil
	}
}
