// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/drawtext"
)

// errSurfaceClosed is returned by operations on a closed surface.
var errSurfaceClosed = errors.New("software: surface is closed")

// imageSurface renders into an *image.RGBA.
type imageSurface struct {
	img    *image.RGBA
	closed bool
}

var _ drawtext.Surface = (*imageSurface)(nil)

func newImageSurface(width, height int) *imageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &imageSurface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the underlying pixels. The image is live: further drawing
// through the surface mutates it.
func (s *imageSurface) Image() *image.RGBA { return s.img }

// Bounds implements drawtext.Surface.
func (s *imageSurface) Bounds() image.Rectangle {
	if s.closed {
		return image.Rectangle{}
	}
	return s.img.Bounds()
}

// Fill implements drawtext.Surface.
func (s *imageSurface) Fill(r image.Rectangle, c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, r.Intersect(s.img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

// Outline implements drawtext.Surface as four one-pixel edge fills.
func (s *imageSurface) Outline(r image.Rectangle, c color.Color) {
	if s.closed || r.Empty() {
		return
	}
	s.Fill(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	s.Fill(image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	s.Fill(image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	s.Fill(image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// DrawText implements drawtext.Surface. (x, y) is the baseline origin.
func (s *imageSurface) DrawText(x, y int, c color.Color, f drawtext.FontHandle, text string) {
	if s.closed || text == "" {
		return
	}
	h, ok := f.(*fontHandle)
	if !ok || h.face == nil {
		return
	}
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: h.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// CopyTo implements drawtext.Surface.
func (s *imageSurface) CopyTo(dst draw.Image, r image.Rectangle) error {
	if s.closed {
		return errSurfaceClosed
	}
	draw.Draw(dst, r.Intersect(s.img.Bounds()), s.img, r.Min, draw.Src)
	return nil
}

// Close implements drawtext.Surface. Close is idempotent.
func (s *imageSurface) Close() error {
	s.closed = true
	return nil
}
