package drawtext

import (
	"image"
	"math"
)

// cursor is the render position threaded through the runs of one DrawText
// call: x advances by each run's measured width, avail shrinks by the same
// amount.
type cursor struct {
	x, y  int
	avail int
}

// DrawText draws text into the box (x, y, w, h) and returns the final x
// position of the cursor after the last run.
//
// When all four geometry arguments are zero the call is measure-only: no
// pixels are touched, the width budget is unlimited, and the return value
// is the total advance width of text.
//
// When rendering, the box is first filled with the background color, each
// run is baseline-centered vertically within the box and inset by h/2 from
// the left, and runs are truncated with a "..." tail once the width budget
// runs out. The invert flag swaps foreground and background for both the
// fill and the text.
//
// A nil context or missing scheme is a silent no-op returning 0, as is
// rendering with no fonts loaded.
func (c *Context) DrawText(x, y, w, h int, text string, invert bool) int {
	render := x != 0 || y != 0 || w != 0 || h != 0
	if !render {
		w = math.MaxInt32
	}

	if c == nil || c.closed || c.scheme == nil {
		return 0
	}

	fg, bg := c.scheme.Fg, c.scheme.Bg
	if invert {
		fg, bg = bg, fg
	}
	if render {
		c.surface.Fill(image.Rect(x, y, x+w, y+h), bg)
	}

	if text == "" || c.fonts.len() == 0 {
		return 0
	}

	margin := c.fonts.base().Height()
	cur := cursor{x: x, y: y, avail: w}

	for run := range c.Runs(text) {
		rendered, ew, _ := fitRun(run.Font, run.Text, cur.avail, margin, c.runLimit)
		if rendered == "" {
			continue
		}
		if render {
			th := run.Font.Height()
			ty := cur.y + (h-th)/2 + run.Font.Ascent()
			tx := cur.x + h/2
			c.surface.DrawText(tx, ty, fg, run.Font.handle, rendered)
		}
		cur.x += ew
		cur.avail -= ew
	}

	return cur.x
}

// TextWidth returns the advance width of text across the whole fallback
// chain, without drawing. Equivalent to DrawText in measure-only mode.
func (c *Context) TextWidth(text string) int {
	return c.DrawText(0, 0, 0, 0, text, false)
}
