package clientprint

import "strings"

// scanState tracks the tokenizer position relative to quoting.
type scanState int

const (
	scanDefault scanState = iota
	scanQuoted
)

// tokenize splits value on sep while respecting quoted spans and escaped
// quotes, trimming tokens and dropping empty ones.
//
// The second return value reports whether quoting balanced. When the scan
// ends inside an open quote the input is malformed; rather than returning one
// giant unsplit token (which would discard every later candidate), tokenize
// degrades to a naive split that ignores quote state entirely.
func tokenize(value string, sep byte) ([]string, bool) {
	tokens := make([]string, 0, typicalChainCapacity)
	state := scanDefault
	escaped := false
	start := 0

	for i := 0; i < len(value); i++ {
		if escaped {
			escaped = false
			continue
		}

		switch value[i] {
		case '\\':
			escaped = true
		case '"':
			if state == scanQuoted {
				state = scanDefault
			} else {
				state = scanQuoted
			}
		case sep:
			if state == scanDefault {
				tokens = appendToken(tokens, value[start:i])
				start = i + 1
			}
		}
	}

	if state == scanQuoted {
		return naiveSplit(value, sep), false
	}

	return appendToken(tokens, value[start:]), true
}

// naiveSplit is the unbalanced-quote fallback: a plain separator split with
// the same trim-and-drop-empty behavior as the quote-aware path.
func naiveSplit(value string, sep byte) []string {
	tokens := make([]string, 0, typicalChainCapacity)
	for _, part := range strings.Split(value, string(sep)) {
		tokens = appendToken(tokens, part)
	}
	return tokens
}

func appendToken(tokens []string, token string) []string {
	if trimmed := strings.TrimSpace(token); trimmed != "" {
		tokens = append(tokens, trimmed)
	}
	return tokens
}

// cutUnescaped truncates s at the first occurrence of sep that is neither
// escaped nor inside a quoted span.
func cutUnescaped(s string, sep byte) string {
	state := scanDefault
	escaped := false

	for i := 0; i < len(s); i++ {
		if escaped {
			escaped = false
			continue
		}

		switch s[i] {
		case '\\':
			escaped = true
		case '"':
			if state == scanQuoted {
				state = scanDefault
			} else {
				state = scanQuoted
			}
		case sep:
			if state == scanDefault {
				return s[:i]
			}
		}
	}

	return s
}

// hasUnbalancedQuotes reports whether s ends a scan with an open unescaped
// quote span.
func hasUnbalancedQuotes(s string) bool {
	state := scanDefault
	escaped := false

	for i := 0; i < len(s); i++ {
		if escaped {
			escaped = false
			continue
		}

		switch s[i] {
		case '\\':
			escaped = true
		case '"':
			if state == scanQuoted {
				state = scanDefault
			} else {
				state = scanQuoted
			}
		}
	}

	return state == scanQuoted
}
