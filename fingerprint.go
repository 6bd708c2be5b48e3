package clientprint

import (
	"fmt"
	"strings"
)

// fingerprintSeed is the classic djb2 starting value.
const fingerprintSeed = 5381

// Fingerprint derives a short, stable deduplication token from a resolved
// client IP and the request's User-Agent.
//
// Identical (ip, userAgent) pairs always produce identical tokens. An absent
// side contributes the empty string; when both sides are absent there is no
// fingerprint and "" is returned rather than a sentinel token.
//
// The token is a non-cryptographic hash (djb2 xor variant over the UTF-8
// bytes of "ip|userAgent", truncated to unsigned 32 bits) rendered as fp_
// plus eight lowercase hex digits. It is a deduplication key, not a security
// boundary.
func Fingerprint(ip, userAgent string) string {
	userAgent = strings.TrimSpace(userAgent)
	if ip == "" && userAgent == "" {
		return ""
	}

	return fmt.Sprintf("fp_%08x", fingerprintHash(ip+"|"+userAgent))
}

func fingerprintHash(s string) uint32 {
	h := uint32(fingerprintSeed)
	for i := 0; i < len(s); i++ {
		h = h*33 ^ uint32(s[i])
	}
	return h
}
