package clientprint

import "net/netip"

const (
	// SourceXForwardedFor resolves from the X-Forwarded-For header.
	SourceXForwardedFor = "x_forwarded_for"
	// SourceForwarded resolves from the RFC7239 Forwarded header.
	SourceForwarded = "forwarded"
	// SourceXRealIP resolves from the X-Real-IP header.
	SourceXRealIP = "x_real_ip"
)

// RawHeaders carries the raw forwarding-header values of one request, taken
// verbatim from the wire. A zero field means the header was absent.
type RawHeaders struct {
	XForwardedFor string
	Forwarded     string
	XRealIP       string
}

// Resolution is the outcome of resolving one request's forwarding headers.
type Resolution struct {
	// IP is the resolved client address, canonical and with IPv4-mapped IPv6
	// collapsed to IPv4. The zero Addr means no header yielded an address.
	IP netip.Addr

	// Source names the header the address came from.
	Source string
}

// Found reports whether a client address was resolved.
func (r Resolution) Found() bool {
	return r.IP.IsValid()
}

// String returns the canonical text form of the resolved address, or the
// empty string when nothing was resolved.
func (r Resolution) String() string {
	if !r.Found() {
		return ""
	}
	return r.IP.String()
}

// Visit is the per-request record handed to the analytics collaborator.
// Empty strings mean absence; a Visit is never an error.
type Visit struct {
	// ClientIP is the canonical resolved address, or "" when unresolved.
	ClientIP string

	// Fingerprint is the deduplication token derived from ClientIP and the
	// User-Agent, or "" when both were absent.
	Fingerprint string

	// Source names the winning header, or "" when unresolved.
	Source string
}
