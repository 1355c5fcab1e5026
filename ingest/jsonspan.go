package ingest

import "strings"

// FirstJSONObject returns the first balanced {...} span in s.
// AI completion responses are free text that may wrap the JSON value in
// prose or code fences, so the span is located structurally rather than
// by assuming a clean response.
func FirstJSONObject(s string) (string, bool) {
	span, _, ok := firstSpan(s, '{', '}')
	return span, ok
}

// FirstJSONArray returns the first balanced [...] span in s.
func FirstJSONArray(s string) (string, bool) {
	span, _, ok := firstSpan(s, '[', ']')
	return span, ok
}

// firstSpan scans for the first balanced open..close span, tracking JSON
// string literals so that brackets inside strings don't affect nesting.
// The returned start index lets callers resume the scan past a span that
// turned out not to be JSON (prose can contain balanced brackets too).
func firstSpan(s string, open, close byte) (span string, start int, ok bool) {
	start = strings.IndexByte(s, open)
	if start < 0 {
		return "", -1, false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1], start, true
			}
		}
	}

	return "", -1, false
}
