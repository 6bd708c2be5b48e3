package clientprint

import (
	"net/netip"
	"strings"
	"unicode"
)

// normalizeToken validates that a candidate string is a literal IP address,
// strips decoration (quotes, brackets, ports), and returns the canonical
// address.
//
// IPv6 addresses canonicalize to RFC 5952 compressed lowercase form via
// netip.Addr.String, and IPv4-mapped IPv6 addresses (::ffff:a.b.c.d or the
// 16-bit hex-pair equivalent) collapse to their dotted IPv4 form. The
// returned Addr is invalid when the token is not an acceptable address.
func normalizeToken(token string) (netip.Addr, bool) {
	s := stripDecoration(token)
	if s == "" {
		return netip.Addr{}, false
	}

	s, ok := stripPort(s)
	if !ok {
		return netip.Addr{}, false
	}

	if isRejectedToken(s) {
		return netip.Addr{}, false
	}

	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, false
	}

	if addr.Is4In6() {
		addr = addr.Unmap()
	}

	return addr, true
}

// stripDecoration trims whitespace and removes quote decoration, alternating
// balanced unwrapping with dangling-quote healing until the token is stable.
//
// Iterating to a fixpoint handles stacked decoration like ""x"" that a single
// unwrap-then-heal pass would leave quoted.
func stripDecoration(token string) string {
	s := strings.TrimSpace(token)

	for s != "" {
		prev := s

		if unwrapped, ok := unquoteStrict(s); ok {
			s = unwrapped
		}
		s = healDanglingQuotes(s)
		s = strings.TrimSpace(s)

		if s == prev {
			break
		}
	}

	return s
}

// stripPort removes a trailing port from bracketed IPv6 ([2001:db8::17]:4711)
// and IPv4:port (198.51.100.77:8443) forms.
//
// A bare IPv6 address has multiple colons and no dot before the first one, so
// it passes through untouched. Malformed bracketing rejects the token.
func stripPort(s string) (string, bool) {
	if s[0] == '[' {
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return "", false
		}

		rest := s[end+1:]
		if rest != "" {
			if rest[0] != ':' || !allDigits(rest[1:]) {
				return "", false
			}
		}

		return s[1:end], true
	}

	colon := strings.IndexByte(s, ':')
	if colon >= 0 && strings.IndexByte(s[colon+1:], ':') < 0 {
		if strings.Contains(s[:colon], ".") && allDigits(s[colon+1:]) {
			return s[:colon], true
		}
	}

	return s, true
}

// isRejectedToken filters values that can never be a client address: the
// RFC 7239 "unknown" identifier (optionally carrying a port), obfuscated
// identifiers, and tokens still containing separator or quote characters
// after decoration stripping.
func isRejectedToken(s string) bool {
	lower := strings.ToLower(s)
	if lower == "unknown" || strings.HasPrefix(lower, "unknown:") {
		return true
	}

	if strings.HasPrefix(s, "_") {
		return true
	}

	if strings.ContainsAny(s, `",;`) {
		return true
	}

	return strings.ContainsFunc(s, unicode.IsSpace)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
