package drawtext

import (
	"fmt"
	"image"
	"image/draw"
	"io"
)

// Context is a text drawing context. It owns a backend surface, the font
// cache that grows as fallback fonts are discovered, and a reference to the
// current color scheme.
//
// A Context is not safe for concurrent use. Independent contexts share no
// mutable state.
type Context struct {
	backend Backend
	surface Surface
	width   int
	height  int

	fonts    *fontCache
	scheme   *Scheme
	runLimit int

	closed bool
}

// Context implements io.Closer.
var _ io.Closer = (*Context)(nil)

// New creates a Context with a surface of the given pixel size.
func New(backend Backend, width, height int, opts ...Option) (*Context, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	surface, err := backend.NewSurface(width, height)
	if err != nil {
		return nil, fmt.Errorf("drawtext: cannot create surface: %w", err)
	}

	return &Context{
		backend:  backend,
		surface:  surface,
		width:    width,
		height:   height,
		fonts:    newFontCache(cfg.fontCapacity),
		runLimit: cfg.runLimit,
	}, nil
}

// Resize replaces the surface with one of the new size.
// The previous contents are discarded.
func (c *Context) Resize(width, height int) error {
	if c == nil {
		return nil
	}
	if c.closed {
		return ErrClosed
	}
	surface, err := c.backend.NewSurface(width, height)
	if err != nil {
		return fmt.Errorf("drawtext: cannot resize surface: %w", err)
	}
	c.surface.Close()
	c.surface = surface
	c.width, c.height = width, height
	return nil
}

// Close releases every loaded font and then the surface, in that order, so
// the backend never sees a font outliving its surface's owner. Close is
// idempotent.
func (c *Context) Close() error {
	if c == nil || c.closed {
		return nil
	}
	c.closed = true
	c.fonts.close()
	return c.surface.Close()
}

// Surface exposes the context's drawing surface, for consumers that need
// to read pixels back or compose further drawing.
func (c *Context) Surface() Surface {
	if c == nil {
		return nil
	}
	return c.surface
}

// Size returns the current surface size in pixels.
func (c *Context) Size() (width, height int) {
	if c == nil {
		return 0, 0
	}
	return c.width, c.height
}

// SetScheme makes s the scheme used by subsequent drawing calls.
// A nil scheme is ignored.
func (c *Context) SetScheme(s *Scheme) {
	if c == nil || s == nil {
		return
	}
	c.scheme = s
}

// LoadFont opens a single font by name and appends it to the font cache.
// The first loaded font becomes the base font anchoring fallback matching.
func (c *Context) LoadFont(name string) (*Font, error) {
	if c == nil {
		return nil, ErrNoFontSpecified
	}
	if c.closed {
		return nil, ErrClosed
	}
	f, err := openNamed(c.backend, name)
	if err != nil {
		return nil, err
	}
	if err := c.fonts.add(f); err != nil {
		f.close()
		return nil, err
	}
	return f, nil
}

// LoadFonts attempts each name independently and returns how many loaded.
// A font that fails to open is logged and skipped; running out of cache
// capacity stops the load and returns ErrFontCacheFull alongside the count,
// since it indicates a configuration error rather than a runtime condition.
func (c *Context) LoadFonts(names ...string) (int, error) {
	loaded := 0
	for _, name := range names {
		_, err := c.LoadFont(name)
		switch {
		case err == nil:
			loaded++
		case err == ErrFontCacheFull || err == ErrClosed:
			return loaded, err
		default:
			Logger().Warn("cannot load font", "name", name, "err", err)
		}
	}
	return loaded, nil
}

// FontCount returns the number of loaded fonts, fallbacks included.
func (c *Context) FontCount() int {
	if c == nil {
		return 0
	}
	return c.fonts.len()
}

// BaseFont returns the base font, or nil if no font has been loaded.
func (c *Context) BaseFont() *Font {
	if c == nil {
		return nil
	}
	return c.fonts.base()
}

// DrawRect draws a small status indicator square at (x, y), sized from the
// base font height, filled or outlined. With invert set the background
// color is used instead of the foreground.
func (c *Context) DrawRect(x, y int, filled, invert bool) {
	if c == nil || c.closed || c.fonts.len() == 0 || c.scheme == nil {
		return
	}
	col := c.scheme.Fg
	if invert {
		col = c.scheme.Bg
	}
	dx := (c.fonts.base().Height() + 2) / 4
	if filled {
		c.surface.Fill(image.Rect(x+1, y+1, x+1+dx+1, y+1+dx+1), col)
	} else {
		c.surface.Outline(image.Rect(x+1, y+1, x+1+dx, y+1+dx), col)
	}
}

// CopyTo copies the rectangle (x, y, w, h) of the surface onto dst at the
// same coordinates.
func (c *Context) CopyTo(dst draw.Image, x, y, w, h int) error {
	if c == nil || c.closed {
		return nil
	}
	return c.surface.CopyTo(dst, image.Rect(x, y, x+w, y+h))
}
