package clientprint

import "strings"

// healDanglingQuotes repairs strings that carry a quote character on exactly
// one side, a common leftover of naive header concatenation by intermediate
// proxies.
//
// One dangling quote (plain `"` or escaped `\"`) is stripped per iteration,
// from whichever side is unmatched, until the string is symmetric or empty.
// Fully balanced quoting (`"x"`) is left alone; unwrapping balanced quotes is
// unquoteStrict's job.
func healDanglingQuotes(s string) string {
	for s != "" {
		// A lone quote token is its own unmatched side.
		if s == `"` || s == `\"` {
			return ""
		}

		leading := quotePrefixLen(s)
		trailing := quoteSuffixLen(s)

		switch {
		case leading > 0 && trailing == 0:
			s = s[leading:]
		case trailing > 0 && leading == 0:
			s = s[:len(s)-trailing]
		default:
			return s
		}
	}

	return s
}

// quotePrefixLen returns the byte length of a leading quote token: 2 for an
// escaped quote, 1 for a plain quote, 0 otherwise.
func quotePrefixLen(s string) int {
	if strings.HasPrefix(s, `\"`) {
		return 2
	}
	if strings.HasPrefix(s, `"`) {
		return 1
	}
	return 0
}

// quoteSuffixLen returns the byte length of a trailing quote token: 2 for an
// escaped quote, 1 for a plain quote, 0 otherwise.
func quoteSuffixLen(s string) int {
	if strings.HasSuffix(s, `\"`) {
		return 2
	}
	if strings.HasSuffix(s, `"`) {
		return 1
	}
	return 0
}

// unquoteStrict removes surrounding quotes from a fully wrapped quoted string
// and resolves backslash escapes in the inner content.
//
// The second return value reports whether s actually was a quoted string, so
// callers can distinguish "not quoted" from "quoted but empty".
func unquoteStrict(s string) (string, bool) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s, false
	}

	// A trailing escaped quote means the closing quote belongs to the inner
	// content, not the wrapper.
	if len(s) >= 3 && s[len(s)-2] == '\\' {
		return s, false
	}

	return unescapeQuotes(s[1 : len(s)-1]), true
}

// unquoteLenient unwraps quoted values that may have lost their closing
// quote, recovering candidates from truncated chains.
//
// A string that opens with `"` but never closes yields everything after the
// leading quote with escapes undone. Anything else defers to unquoteStrict.
func unquoteLenient(s string) string {
	if unquoted, ok := unquoteStrict(s); ok {
		return unquoted
	}

	if strings.HasPrefix(s, `"`) {
		return unescapeQuotes(s[1:])
	}

	return s
}

// unescapeQuotes replaces escaped quotes (`\"`) with plain quotes.
func unescapeQuotes(s string) string {
	if strings.IndexByte(s, '\\') == -1 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == '"' {
			continue
		}
		b.WriteByte(s[i])
	}

	return b.String()
}
