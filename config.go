package clientprint

import "fmt"

const (
	// DefaultMaxChainLength is the maximum number of candidates accepted from
	// one request's headers. This prevents DoS attacks using extremely long
	// header values that could cause excessive memory allocation during
	// parsing. 100 accommodates complex multi-region, multi-CDN setups;
	// typical chains rarely exceed 5-10 entries. Excess candidates are
	// ignored, never an error.
	DefaultMaxChainLength = 100

	// DefaultMaxNestedDepth bounds how many levels of nested quoting and
	// comma re-tokenization one candidate value may unfold into. Adversarial
	// inputs observed in the wild nest about 5 levels deep; 10 leaves
	// headroom while keeping pathological input linear in header length.
	DefaultMaxNestedDepth = 10
)

// typicalChainCapacity is the initial capacity used when collecting
// candidates. Most chains have 1-5 entries; preallocating 8 avoids
// reallocations in common cases without meaningful memory overhead.
const typicalChainCapacity = 8

// Option configures a Resolver.
//
// Construct options using package-provided option builder functions.
type Option func(*config) error

// config holds resolver configuration state.
//
// It is mutated by Option functions during construction.
type config struct {
	maxChainLength int
	maxNestedDepth int

	logger  Logger
	metrics Metrics

	metricsFactory    func() (Metrics, error)
	useMetricsFactory bool
}

func newDefaultConfig() *config {
	return &config{
		maxChainLength: DefaultMaxChainLength,
		maxNestedDepth: DefaultMaxNestedDepth,
		logger:         noopLogger{},
		metrics:        noopMetrics{},
	}
}

func configFromOptions(opts ...Option) (*config, error) {
	cfg := newDefaultConfig()

	if err := applyOptions(cfg, opts...); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.useMetricsFactory && cfg.metricsFactory != nil {
		metrics, err := cfg.metricsFactory()
		if err != nil {
			return nil, fmt.Errorf("metrics factory failed: %w", err)
		}
		if isNilMetrics(metrics) {
			return nil, fmt.Errorf("metrics factory returned nil metrics")
		}
		cfg.metrics = metrics
	}

	return cfg, nil
}

func applyOptions(cfg *config, opts ...Option) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return err
		}
	}
	return nil
}
