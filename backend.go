package drawtext

import (
	"image"
	"image/color"
	"image/draw"
)

// Backend is the rendering and font discovery capability a Context consumes.
// It abstracts the rasterizer, allowing the library to run against a CPU
// image backend, a GPU surface, or a test double.
//
// Backends are used from a single goroutine per Context; implementations do
// not need internal locking unless they are shared between contexts.
type Backend interface {
	// NewSurface creates a drawing surface of the given pixel size.
	NewSurface(width, height int) (Surface, error)

	// OpenFont opens a font from an Xft-style name string
	// ("Family:size=N"). The same string must be parseable by
	// ParsePattern; callers treat a handle without a pattern (or the
	// reverse) as a total failure.
	OpenFont(name string) (FontHandle, error)

	// OpenDescriptor opens a font from a Descriptor previously returned
	// by Match on the same backend.
	OpenDescriptor(desc Descriptor) (FontHandle, error)

	// Match finds a font able to render r, using ref — the base font's
	// parsed pattern — as the match reference for family, size and style.
	// The returned Descriptor is opaque to the core and only meaningful
	// to the backend that produced it.
	Match(ref Pattern, r rune) (Descriptor, error)
}

// Surface is a drawing target owned by a Context.
type Surface interface {
	// Bounds returns the surface extent.
	Bounds() image.Rectangle

	// Fill fills r with c.
	Fill(r image.Rectangle, c color.Color)

	// Outline strokes the one-pixel border of r with c.
	Outline(r image.Rectangle, c color.Color)

	// DrawText draws text with its baseline origin at (x, y).
	DrawText(x, y int, c color.Color, f FontHandle, text string)

	// CopyTo copies the region r of the surface onto dst at the same
	// coordinates.
	CopyTo(dst draw.Image, r image.Rectangle) error

	// Close releases the surface. The surface must not be used after Close.
	Close() error
}

// FontHandle is an opened backend font resource.
type FontHandle interface {
	// Metrics returns the font ascent and descent in pixels.
	Metrics() (ascent, descent int)

	// HasGlyph reports whether the font has a real glyph for r
	// (not the missing-glyph box).
	HasGlyph(r rune) bool

	// Advance returns the pixel advance width of text.
	Advance(text string) int

	// Close releases the font resource.
	Close() error
}

// Descriptor is an opaque, backend-specific font match result.
// Descriptors produced by one backend must not be passed to another.
type Descriptor interface {
	// String describes the matched font for diagnostics.
	String() string
}
