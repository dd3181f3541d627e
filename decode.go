package drawtext

// RuneInvalid is the replacement codepoint substituted for malformed,
// overlong, surrogate or out-of-range UTF-8 sequences.
const RuneInvalid rune = '�'

// utfSize is the longest UTF-8 sequence handled, in bytes.
const utfSize = 4

// Per-class leading/continuation byte tables, indexed by sequence length.
// Index 0 describes continuation bytes.
var (
	utfByte = [utfSize + 1]byte{0x80, 0x00, 0xC0, 0xE0, 0xF0}
	utfMask = [utfSize + 1]byte{0xC0, 0x80, 0xE0, 0xF0, 0xF8}
	utfMin  = [utfSize + 1]rune{0, 0, 0x80, 0x800, 0x10000}
	utfMax  = [utfSize + 1]rune{0x10FFFF, 0x7F, 0x7FF, 0xFFFF, 0x10FFFF}
)

// decodeByte classifies a single byte and extracts its payload bits.
// The returned class is 0 for a continuation byte, 1..4 for a leading byte
// of that sequence length, and utfSize+1 if the byte matches no pattern.
func decodeByte(c byte) (payload rune, class int) {
	for i := 0; i < utfSize+1; i++ {
		if c&utfMask[i] == utfByte[i] {
			return rune(c &^ utfMask[i]), i
		}
	}
	return 0, utfSize + 1
}

// validateRune normalizes u for its encoded length class.
// Codepoints outside the legal range for their length (overlong or beyond
// U+10FFFF) and UTF-16 surrogates become RuneInvalid, and the returned
// length is recomputed from the replacement value's own range rather than
// the raw encoding.
func validateRune(u rune, class int) (rune, int) {
	if u < utfMin[class] || u > utfMax[class] || (u >= 0xD800 && u <= 0xDFFF) {
		u = RuneInvalid
	}
	n := 1
	for u > utfMax[n] {
		n++
	}
	return u, n
}

// DecodeRune decodes the first UTF-8 codepoint in b.
//
// The return contract distinguishes three failure shapes:
//   - An unrecognized leading byte yields (RuneInvalid, 1).
//   - A sequence interrupted by a non-continuation byte yields RuneInvalid
//     and the number of bytes that formed the partial sequence; the
//     offending byte is not consumed and resyncs as a new leading byte.
//   - A sequence cut short by the end of b yields a length of 0, signalling
//     that more input is needed.
//
// Complete but invalid sequences (overlong encodings, surrogates, values
// above U+10FFFF) decode to RuneInvalid with the length recomputed for the
// replacement value. DecodeRune never reads past len(b) and performs no
// allocation.
func DecodeRune(b []byte) (r rune, size int) {
	if len(b) == 0 {
		return RuneInvalid, 0
	}
	u, class := decodeByte(b[0])
	if class < 1 || class > utfSize {
		return RuneInvalid, 1
	}
	j := 1
	for i := 1; i < len(b) && j < class; i, j = i+1, j+1 {
		payload, c := decodeByte(b[i])
		if c != 0 {
			return RuneInvalid, j
		}
		u = u<<6 | payload
	}
	if j < class {
		return RuneInvalid, 0
	}
	return validateRune(u, class)
}

// decodeRuneInString is DecodeRune over a string tail, avoiding a copy.
func decodeRuneInString(s string) (r rune, size int) {
	if len(s) == 0 {
		return RuneInvalid, 0
	}
	u, class := decodeByte(s[0])
	if class < 1 || class > utfSize {
		return RuneInvalid, 1
	}
	j := 1
	for i := 1; i < len(s) && j < class; i, j = i+1, j+1 {
		payload, c := decodeByte(s[i])
		if c != 0 {
			return RuneInvalid, j
		}
		u = u<<6 | payload
	}
	if j < class {
		return RuneInvalid, 0
	}
	return validateRune(u, class)
}
