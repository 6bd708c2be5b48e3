package clientprint

import (
	"net/http"
	"strings"
)

// HeadersFromRequest reads the three forwarding headers from an inbound
// request.
//
// Header names are matched case-insensitively by net/http's canonical form.
// Repeated header lines are joined with ", " in wire order, which is
// equivalent to the comma-separated single-line form the resolver tokenizes.
func HeadersFromRequest(r *http.Request) RawHeaders {
	if r == nil {
		return RawHeaders{}
	}

	return RawHeaders{
		XForwardedFor: joinHeaderValues(r.Header.Values("X-Forwarded-For")),
		Forwarded:     joinHeaderValues(r.Header.Values("Forwarded")),
		XRealIP:       joinHeaderValues(r.Header.Values("X-Real-IP")),
	}
}

func joinHeaderValues(values []string) string {
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ", ")
	}
}
