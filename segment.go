package drawtext

import "iter"

// Run is a maximal contiguous piece of input text whose codepoints are all
// drawn with the same font. Runs are ephemeral: they are computed fresh for
// every draw or measure call and borrow their Text from the input string.
type Run struct {
	Font  *Font
	Text  string
	Start int // byte offset of Text within the input
	End   int
}

// segState names the phases of the segmentation state machine.
type segState uint8

const (
	// segScanning: extending the current run with codepoints covered by
	// the current font.
	segScanning segState = iota
	// segSwitchPending: a codepoint covered by a different loaded font
	// ended the run; that font takes over for the next run.
	segSwitchPending
	// segResolveFallback: a codepoint covered by no loaded font ended the
	// run; dynamic fallback resolution decides which font continues.
	segResolveFallback
)

// segmenter walks the byte stream once, grouping codepoints into runs by
// coverage. It guarantees forward progress: a codepoint no font can render
// is still consumed, drawn with the base font as a missing-glyph box.
type segmenter struct {
	backend Backend
	cache   *fontCache
	text    string

	pos   int
	cur   *Font
	state segState

	// force marks the codepoint that just went through fallback
	// resolution: it is consumed with cur on the next scan step whether
	// or not cur covers it.
	force bool
}

func newSegmenter(b Backend, cache *fontCache, text string) *segmenter {
	return &segmenter{
		backend: b,
		cache:   cache,
		text:    text,
		cur:     cache.base(),
	}
}

// next produces the next non-empty run, or ok=false once input is exhausted.
func (s *segmenter) next() (run Run, ok bool) {
	for s.pos < len(s.text) {
		start := s.pos
		var pending *Font
		blocked := false
		var blockedRune rune

		s.state = segScanning
		for s.pos < len(s.text) {
			r, n := decodeRuneInString(s.text[s.pos:])
			if n == 0 {
				// Sequence cut short by the end of input: fold the
				// trailing bytes into one replacement codepoint so the
				// stream still terminates.
				r, n = RuneInvalid, len(s.text)-s.pos
			}
			if s.force {
				s.force = false
				s.pos += n
				continue
			}
			f, covered := s.cache.findSupporting(r)
			if !covered {
				blocked, blockedRune = true, r
				s.state = segResolveFallback
				break
			}
			if f == s.cur {
				s.pos += n
				continue
			}
			pending = f
			s.state = segSwitchPending
			break
		}

		run = Run{Font: s.cur, Text: s.text[start:s.pos], Start: start, End: s.pos}

		switch {
		case s.pos >= len(s.text):
			// Input exhausted; run (if any) is the last.
		case pending != nil:
			s.cur = pending
		case blocked:
			s.cur = s.resolve(blockedRune)
			s.force = true
		}

		if run.End > run.Start {
			return run, true
		}
	}
	return Run{}, false
}

// resolve finds a font for a codepoint no loaded font covers. On success
// the new font joins the cache and becomes current; on any failure the base
// font takes over and the codepoint renders as its missing-glyph box.
func (s *segmenter) resolve(r rune) *Font {
	base := s.cache.base()
	if s.cache.full() {
		Logger().Debug("font cache full, skipping fallback resolution",
			"rune", string(r))
		return base
	}
	if base.pattern == nil {
		// Unreachable: fontCache.add rejects a patternless base font.
		panic("drawtext: base font has no pattern")
	}

	desc, err := s.backend.Match(*base.pattern, r)
	if err != nil {
		Logger().Warn("no fallback font matched",
			"rune", string(r), "err", err)
		return base
	}
	f, err := openFallback(s.backend, desc)
	if err != nil {
		Logger().Warn("cannot open matched fallback font",
			"font", desc.String(), "err", err)
		return base
	}
	if !f.handle.HasGlyph(r) {
		f.close()
		Logger().Debug("matched font lacks glyph, using base font",
			"font", desc.String(), "rune", string(r))
		return base
	}
	if err := s.cache.add(f); err != nil {
		f.close()
		return base
	}
	return f
}

// Runs returns an iterator over the font-homogeneous runs of text, in
// input order. Iterating may grow the context's font cache as fallback
// fonts are discovered. With no fonts loaded the sequence is empty.
func (c *Context) Runs(text string) iter.Seq[Run] {
	return func(yield func(Run) bool) {
		if c == nil || c.closed || c.fonts.len() == 0 || text == "" {
			return
		}
		s := newSegmenter(c.backend, c.fonts, text)
		for {
			run, ok := s.next()
			if !ok {
				return
			}
			if !yield(run) {
				return
			}
		}
	}
}
