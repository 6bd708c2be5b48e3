package clientprint

// Metrics records resolution outcomes and parse-recovery events emitted by
// Resolver.
//
// Implementations should be safe for concurrent use, as a single Resolver
// instance is typically shared across many goroutines.
type Metrics interface {
	// RecordResolveSuccess is called when a header source yields a client
	// address.
	RecordResolveSuccess(source string)
	// RecordResolveMiss is called when a header source is present but none
	// of its candidates survives normalization.
	RecordResolveMiss(source string)
	// RecordRecoveryEvent is called when the resolver recovers from
	// malformed header input.
	RecordRecoveryEvent(event string)
}

// noopMetrics is the default Metrics implementation when metrics are not
// explicitly configured.
type noopMetrics struct{}

func (noopMetrics) RecordResolveSuccess(string) {}

func (noopMetrics) RecordResolveMiss(string) {}

func (noopMetrics) RecordRecoveryEvent(string) {}
