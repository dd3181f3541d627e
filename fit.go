package drawtext

// ellipsis replaces the tail of a truncated run.
const ellipsis = "..."

// truncateToLimit returns the longest prefix of text that is at most limit
// bytes and does not end inside a multi-byte codepoint.
func truncateToLimit(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	end := 0
	for end < limit {
		_, n := decodeRuneInString(text[end:])
		if n == 0 || end+n > limit {
			break
		}
		end += n
	}
	return text[:end]
}

// dropLastRune removes the final codepoint from s. Continuation bytes are
// skipped backwards so the cut always lands on a codepoint boundary.
func dropLastRune(s string) string {
	i := len(s) - 1
	for i > 0 && s[i]&0xC0 == 0x80 {
		i--
	}
	return s[:i]
}

// fitRun shrinks the run text until its measured width fits within avail,
// keeping a margin (the base font height, matching the drawing inset)
// reserved. Shrinking drops one decoded codepoint at a time with a
// re-measure per step: linear and worst-case quadratic, acceptable because
// runs are bounded by limit bytes.
//
// The returned render string is what should be drawn: when truncation
// occurred and at least 3 bytes remain, the last 3 bytes are overwritten
// with "..." — replaced, not appended. The returned width is the measured
// advance of the kept prefix before dot substitution; the cursor advances
// by that amount. An empty render string contributes zero width and draws
// nothing.
func fitRun(f *Font, text string, avail, margin, limit int) (render string, width int, truncated bool) {
	prefix := truncateToLimit(text, limit)
	width = f.advance(prefix)
	for len(prefix) > 0 && (width > avail-margin || avail < margin) {
		prefix = dropLastRune(prefix)
		width = f.advance(prefix)
	}

	if len(prefix) == len(text) {
		return prefix, width, false
	}
	if len(prefix) >= 3 {
		return prefix[:len(prefix)-3] + ellipsis, width, true
	}
	// Too short for dots: the bare prefix is used as-is.
	return prefix, width, true
}
