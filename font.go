package drawtext

// Font is a loaded font together with the metrics the layout code needs.
// Fonts are owned by the Context that loaded them and are released when the
// Context closes (or immediately, for fallback candidates that fail their
// post-match coverage check).
type Font struct {
	handle  FontHandle
	ascent  int
	descent int

	// pattern is non-nil only for fonts opened by name. The base font's
	// pattern drives fallback matching; fallback-discovered fonts carry
	// none and are never used as a match reference.
	pattern *Pattern
}

// Ascent returns the distance from the baseline to the top of the font,
// in pixels.
func (f *Font) Ascent() int { return f.ascent }

// Descent returns the distance from the baseline to the bottom of the
// font, in pixels.
func (f *Font) Descent() int { return f.descent }

// Height returns the line height, ascent plus descent. Line height is a
// property of the font, not of any particular string.
func (f *Font) Height() int { return f.ascent + f.descent }

// Pattern returns the parsed name pattern for fonts opened by name, or nil
// for fallback-discovered fonts.
func (f *Font) Pattern() *Pattern { return f.pattern }

// openNamed opens a font by its Xft-style name. The backend resource and
// the parsed pattern must both come up; if either fails the other is
// released and the whole open fails, so a Font never exists half-valid.
func openNamed(b Backend, name string) (*Font, error) {
	if name == "" {
		return nil, ErrNoFontSpecified
	}
	handle, err := b.OpenFont(name)
	if err != nil {
		return nil, &FontLoadError{Name: name, Err: err}
	}
	pattern, err := ParsePattern(name)
	if err != nil {
		handle.Close()
		return nil, &FontLoadError{Name: name, Err: err}
	}
	ascent, descent := handle.Metrics()
	return &Font{
		handle:  handle,
		ascent:  ascent,
		descent: descent,
		pattern: &pattern,
	}, nil
}

// openFallback opens a font from a match descriptor. The resulting Font
// owns no pattern.
func openFallback(b Backend, desc Descriptor) (*Font, error) {
	handle, err := b.OpenDescriptor(desc)
	if err != nil {
		return nil, &FontLoadError{Err: err}
	}
	ascent, descent := handle.Metrics()
	return &Font{
		handle:  handle,
		ascent:  ascent,
		descent: descent,
	}, nil
}

// close releases the backend font resource. Safe on a nil Font.
func (f *Font) close() {
	if f == nil || f.handle == nil {
		return
	}
	f.handle.Close()
	f.handle = nil
}

// fontCache is an ordered, bounded, append-only collection of loaded fonts.
// Index 0 is the base font and must own a pattern; add enforces this so the
// fallback path never has to re-check it. Insertion order is the coverage
// search order and is a deliberate, observable policy: a later-loaded font
// is never preferred over an earlier one that also covers a codepoint.
type fontCache struct {
	fonts    []*Font
	capacity int
}

func newFontCache(capacity int) *fontCache {
	return &fontCache{capacity: capacity}
}

// add appends f, rejecting additions past capacity and a patternless base.
func (c *fontCache) add(f *Font) error {
	if len(c.fonts) >= c.capacity {
		return ErrFontCacheFull
	}
	if len(c.fonts) == 0 && f.pattern == nil {
		return ErrNoFontSpecified
	}
	c.fonts = append(c.fonts, f)
	return nil
}

// base returns the base font, or nil when the cache is empty.
func (c *fontCache) base() *Font {
	if len(c.fonts) == 0 {
		return nil
	}
	return c.fonts[0]
}

func (c *fontCache) len() int   { return len(c.fonts) }
func (c *fontCache) full() bool { return len(c.fonts) >= c.capacity }

// findSupporting scans loaded fonts in insertion order and returns the
// first one covering r. First match wins; the scan never looks for a
// "better" font past the first capable one.
func (c *fontCache) findSupporting(r rune) (*Font, bool) {
	for _, f := range c.fonts {
		if f.handle.HasGlyph(r) {
			return f, true
		}
	}
	return nil, false
}

// close releases every font, front to back, and empties the cache.
func (c *fontCache) close() {
	for _, f := range c.fonts {
		f.close()
	}
	c.fonts = nil
}
