// Package clientprint resolves a best-effort client IP address from
// mutually-inconsistent forwarding headers and derives a stable analytics
// fingerprint from it.
//
// # Overview
//
// Proxies and CDNs report the original client through three competing,
// client-controllable headers: X-Forwarded-For, Forwarded (RFC 7239), and
// X-Real-IP. Real-world values are frequently damaged by naive header
// concatenation: dangling quotes, commas inside quoted values, nested
// for=for= injection, bracketed ports, IPv4-mapped IPv6 literals. The
// resolver tolerates all of it without failing: malformed candidates degrade
// to the next candidate, exhausted headers fall through to the next header,
// and a request that yields nothing resolves to an empty Resolution rather
// than an error.
//
// The package is deliberately proxy-agnostic. It parses what the reporting
// proxy claims and never verifies that the proxy is trusted; the result is a
// best-effort analytics signal, not a security boundary.
//
// # Basic Usage
//
//	resolver, err := clientprint.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res := resolver.ResolveRequest(req)
//	if res.Found() {
//	    fmt.Printf("Client IP: %s from %s\n", res.IP, res.Source)
//	}
//
// # Analytics Fingerprinting
//
// Visit combines the resolved address with the User-Agent into a short
// deterministic token for deduplicated counting without storing raw PII:
//
//	visit := resolver.Visit(req)
//	recorder.Record(visit.ClientIP, visit.Fingerprint)
//
// The fingerprint is a fast non-cryptographic hash. It is a deduplication
// key only; never use it for authentication or abuse decisions.
//
// # Precedence
//
// Header precedence is strict and auditable: X-Forwarded-For wins over
// Forwarded, which wins over X-Real-IP. Within a header, candidates are
// tried in wire order and the first that normalizes to a literal IP wins.
// RFC 7239 "unknown" tokens and _obfuscated identifiers never match.
//
// # Observability
//
// Parse recoveries (unbalanced quoting, segment re-merges) can be logged and
// counted. The logger receives the request context, allowing trace and span
// IDs to flow through.
// (Prometheus adapter package: github.com/kentcdodds/clientprint/prometheus)
//
//	import clientprintprom "github.com/kentcdodds/clientprint/prometheus"
//
//	resolver, err := clientprint.New(
//	    clientprint.WithLogger(slog.Default()),
//	    clientprintprom.WithMetrics(),
//	)
//
// # Thread Safety
//
// Resolution is pure and allocation-only. Resolver instances are typically
// created once at application startup and shared across all request-handling
// goroutines without coordination.
package clientprint
