package drawtext

// Defaults for Context configuration.
const (
	// DefaultFontCapacity is the maximum number of fonts a context keeps,
	// base font and discovered fallbacks included.
	DefaultFontCapacity = 32

	// DefaultRunLimit bounds how many bytes of a single run are measured
	// and drawn in one pass. Runs longer than this are hard-truncated to
	// the largest codepoint boundary at or below the limit before the
	// fit loop runs.
	DefaultRunLimit = 1023
)

// Option configures a Context.
type Option func(*config)

// config holds Context configuration.
type config struct {
	fontCapacity int
	runLimit     int
}

// defaultConfig returns the default Context configuration.
func defaultConfig() config {
	return config{
		fontCapacity: DefaultFontCapacity,
		runLimit:     DefaultRunLimit,
	}
}

// WithFontCapacity sets the maximum number of fonts the context's cache
// holds. Values below 1 are clamped to 1. Once the cache is full no more
// fallback fonts are discovered; unresolvable codepoints render with the
// base font's missing-glyph box.
func WithFontCapacity(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.fontCapacity = n
	}
}

// WithRunLimit sets the per-run measurement bound in bytes.
// Values below 4 are clamped to 4 so at least one codepoint always fits.
func WithRunLimit(n int) Option {
	return func(c *config) {
		if n < 4 {
			n = 4
		}
		c.runLimit = n
	}
}
