package clientprint

import (
	"context"
	"fmt"
	"net/http"
)

// Resolver resolves client IP addresses and analytics fingerprints from
// forwarding headers.
//
// Resolution is pure and allocation-only; Resolver instances are safe for
// concurrent reuse across request handlers.
type Resolver struct {
	config *config
}

// New creates a Resolver from zero or more Option builders.
func New(opts ...Option) (*Resolver, error) {
	cfg, err := configFromOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Resolver{config: cfg}, nil
}

// Resolve extracts a single best-effort client address from the given
// forwarding headers.
//
// Precedence is strict and header-level: X-Forwarded-For, then Forwarded,
// then X-Real-IP. A present header whose candidates all fail normalization
// falls through to the next header; candidates are never intermixed across
// headers. Malformed input degrades to the next candidate, never to an
// error.
func (e *Resolver) Resolve(ctx context.Context, headers RawHeaders) Resolution {
	if headers.XForwardedFor != "" {
		candidates := e.chainCandidates(ctx, SourceXForwardedFor, headers.XForwardedFor)
		if res, ok := e.firstValid(SourceXForwardedFor, candidates); ok {
			return res
		}
	}

	if headers.Forwarded != "" {
		candidates := e.forwardedCandidates(ctx, headers.Forwarded)
		if res, ok := e.firstValid(SourceForwarded, candidates); ok {
			return res
		}
	}

	if headers.XRealIP != "" {
		candidates := e.chainCandidates(ctx, SourceXRealIP, headers.XRealIP)
		if res, ok := e.firstValid(SourceXRealIP, candidates); ok {
			return res
		}
	}

	return Resolution{}
}

// ResolveRequest resolves the client address for an inbound HTTP request.
func (e *Resolver) ResolveRequest(r *http.Request) Resolution {
	return e.Resolve(requestContext(r), HeadersFromRequest(r))
}

// Visit resolves the request and builds the analytics record: canonical
// client IP (possibly absent) plus the fingerprint derived from it and the
// User-Agent.
func (e *Resolver) Visit(r *http.Request) Visit {
	res := e.ResolveRequest(r)

	userAgent := ""
	if r != nil {
		userAgent = r.UserAgent()
	}

	return Visit{
		ClientIP:    res.String(),
		Fingerprint: Fingerprint(res.String(), userAgent),
		Source:      res.Source,
	}
}

// chainCandidates extracts ordered candidates from a comma-separated address
// chain (X-Forwarded-For, X-Real-IP).
//
// A whole-value quoted chain, including one that itself contains further
// commas, is recovered through the same lenient-unwrap-then-split path as
// nested Forwarded for= values.
func (e *Resolver) chainCandidates(ctx context.Context, source, header string) []string {
	tokens, balanced := tokenize(header, ',')
	if !balanced {
		e.recordRecovery(ctx, source, eventUnbalancedQuotes,
			"header quoting never balances, using naive split")
	}

	candidates := make([]string, 0, typicalChainCapacity)
	for _, token := range tokens {
		candidates = e.appendCandidateValues(candidates, token, 0)
	}

	return candidates
}

// firstValid normalizes candidates in order and returns the first that
// survives as a resolution for source.
func (e *Resolver) firstValid(source string, candidates []string) (Resolution, bool) {
	for _, candidate := range candidates {
		if addr, ok := normalizeToken(candidate); ok {
			e.config.metrics.RecordResolveSuccess(source)
			return Resolution{IP: addr, Source: source}, true
		}
	}

	e.config.metrics.RecordResolveMiss(source)
	return Resolution{}, false
}

// recordRecovery counts a parse-recovery event and emits a structured
// warning.
func (e *Resolver) recordRecovery(ctx context.Context, source, event, msg string) {
	e.config.metrics.RecordRecoveryEvent(event)
	e.config.logger.WarnContext(ctx, msg,
		"event", event,
		"source", source,
	)
}

// ResolveWithOptions is a one-shot convenience helper.
//
// It constructs a temporary resolver from opts and resolves the given
// headers.
func ResolveWithOptions(ctx context.Context, headers RawHeaders, opts ...Option) (Resolution, error) {
	resolver, err := New(opts...)
	if err != nil {
		return Resolution{}, err
	}

	return resolver.Resolve(ctx, headers), nil
}

// VisitWithOptions is a one-shot convenience helper.
//
// It constructs a temporary resolver from opts and builds the analytics
// record for r.
func VisitWithOptions(r *http.Request, opts ...Option) (Visit, error) {
	resolver, err := New(opts...)
	if err != nil {
		return Visit{}, err
	}

	return resolver.Visit(r), nil
}

func requestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}

	return r.Context()
}
