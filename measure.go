package drawtext

// Extents returns the pixel advance width of text in this font and the
// font's line height. A nil font or empty text yields (0, 0); these are
// defensive guards, not error conditions. The height is always
// ascent+descent regardless of which glyphs text contains.
func (f *Font) Extents(text string) (width, height int) {
	if f == nil || f.handle == nil || text == "" {
		return 0, 0
	}
	return f.handle.Advance(text), f.Height()
}

// advance is the width half of Extents, used by the fit loop where the
// height is already known.
func (f *Font) advance(text string) int {
	if f == nil || f.handle == nil || text == "" {
		return 0
	}
	return f.handle.Advance(text)
}
