package clientprint

import (
	"context"
	"strings"
)

// forwardedCandidates extracts the ordered for= candidates from a Forwarded
// (RFC 7239) header value.
//
// Header elements are processed in wire order. Elements without a for
// parameter contribute nothing. Malformed input never fails the call: damaged
// segments are re-merged with their predecessor, unbalanced quoting degrades
// to a naive split, and nested or prefix-injected for= values are recovered
// as additional candidates.
func (e *Resolver) forwardedCandidates(ctx context.Context, header string) []string {
	segments, balanced := tokenize(header, ',')
	if !balanced {
		e.recordRecovery(ctx, SourceForwarded, eventUnbalancedQuotes,
			"Forwarded header quoting never balances, using naive split")
	}

	segments = e.mergeDamagedSegments(ctx, segments)

	candidates := make([]string, 0, typicalChainCapacity)
	for _, segment := range segments {
		candidates = e.appendSegmentForValue(candidates, segment)
	}

	return candidates
}

// mergeDamagedSegments re-joins adjacent comma-split segments that belong to
// one original element.
//
// A client-supplied comma inside a quoted for="..., ..." value is
// indistinguishable from an element separator without look-back. A segment is
// folded into its predecessor when it carries no key=value structure at all,
// or when it lacks a for parameter and the predecessor shows quote damage
// (unbalanced quoting, or a for value with an embedded quote).
func (e *Resolver) mergeDamagedSegments(ctx context.Context, segments []string) []string {
	if len(segments) < 2 {
		return segments
	}

	merged := make([]string, 0, len(segments))
	for _, segment := range segments {
		if len(merged) > 0 && mergeWithPrevious(merged[len(merged)-1], segment) {
			merged[len(merged)-1] += ", " + segment
			e.recordRecovery(ctx, SourceForwarded, eventSegmentMerge,
				"re-merged Forwarded segment split by quoted comma")
			continue
		}

		merged = append(merged, segment)
	}

	return merged
}

func mergeWithPrevious(prev, segment string) bool {
	if !hasParameterShape(segment) {
		return true
	}

	if segmentHasForParameter(segment) {
		return false
	}

	return hasUnbalancedQuotes(prev) || forValueHasEmbeddedQuote(prev)
}

// hasParameterShape reports whether the segment contains at least one
// key=value parameter.
func hasParameterShape(segment string) bool {
	params, _ := tokenize(segment, ';')
	for _, param := range params {
		if eq := strings.IndexByte(param, '='); eq > 0 {
			if strings.TrimSpace(param[:eq]) != "" {
				return true
			}
		}
	}
	return false
}

func segmentHasForParameter(segment string) bool {
	_, ok := rawForValue(segment)
	return ok
}

// rawForValue returns the raw, still-quoted value of the first for parameter
// in segment.
//
// The parameter name is matched case-insensitively with whitespace tolerated
// around the equals sign. Other parameters (by, proto, host, ...) are
// consumed by the semicolon split but otherwise ignored, so for is found
// regardless of parameter order.
func rawForValue(segment string) (string, bool) {
	params, _ := tokenize(segment, ';')
	for _, param := range params {
		eq := strings.IndexByte(param, '=')
		if eq <= 0 {
			continue
		}

		if strings.EqualFold(strings.TrimSpace(param[:eq]), "for") {
			return strings.TrimSpace(param[eq+1:]), true
		}
	}

	return "", false
}

// forValueHasEmbeddedQuote reports whether the segment's for value carries a
// quote character inside its content, a tell-tale of a quoted value that was
// severed at a comma.
func forValueHasEmbeddedQuote(segment string) bool {
	value, ok := rawForValue(segment)
	if !ok {
		return false
	}

	if inner, wrapped := unquoteStrict(value); wrapped {
		return strings.Contains(inner, `"`)
	}

	return strings.Contains(value, `"`)
}

// appendSegmentForValue scans one merged segment for its for parameter and
// appends the recovered candidate values. The first for parameter in a
// segment wins.
func (e *Resolver) appendSegmentForValue(candidates []string, segment string) []string {
	value, ok := rawForValue(segment)
	if !ok {
		return candidates
	}

	return e.appendCandidateValues(candidates, value, 0)
}

// appendCandidateValues turns one raw candidate value into zero or more
// cleaned candidates, preserving order.
//
// The value is leniently unwrapped, truncated at the first unescaped
// semicolon (a trailing parameter erroneously folded into a quoted value),
// boundary-healed, and stripped of repeated for= prefixes. A value that still
// contains commas after cleaning is a nested chain and is re-tokenized
// recursively. Depth is capped by maxNestedDepth and every recursion level
// operates on a strictly smaller input, so termination does not depend on the
// shape of the input.
func (e *Resolver) appendCandidateValues(candidates []string, value string, depth int) []string {
	value = strings.TrimSpace(value)
	if value == "" || depth > e.config.maxNestedDepth {
		return candidates
	}

	cleaned := unquoteLenient(value)
	cleaned = cutUnescaped(cleaned, ';')
	cleaned = healDanglingQuotes(strings.TrimSpace(cleaned))
	cleaned = stripForPrefixes(cleaned)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return candidates
	}

	if strings.Contains(cleaned, ",") {
		parts, _ := tokenize(cleaned, ',')
		// Recurse only when splitting makes progress; a single token
		// identical to the input would re-tokenize forever.
		if len(parts) > 1 || (len(parts) == 1 && parts[0] != value) {
			for _, part := range parts {
				candidates = e.appendCandidateValues(candidates, part, depth+1)
			}
			return candidates
		}
	}

	if len(candidates) >= e.config.maxChainLength {
		return candidates
	}

	return append(candidates, cleaned)
}

// stripForPrefixes removes repeated leading for= prefixes of arbitrary depth,
// e.g. "FOR = for = 1.2.3.4" becomes "1.2.3.4".
//
// Each iteration removes at least one byte, so the loop is bounded by the
// input length rather than a fixed depth constant.
func stripForPrefixes(s string) string {
	for i := 0; i < len(s); i++ {
		trimmed := strings.TrimSpace(s)
		rest, ok := stripOneForPrefix(trimmed)
		if !ok {
			return trimmed
		}
		s = rest
	}

	return strings.TrimSpace(s)
}

func stripOneForPrefix(s string) (string, bool) {
	if len(s) < 4 || !strings.EqualFold(s[:3], "for") {
		return s, false
	}

	rest := strings.TrimLeft(s[3:], " \t")
	if !strings.HasPrefix(rest, "=") {
		return s, false
	}

	return strings.TrimLeft(rest[1:], " \t"), true
}
