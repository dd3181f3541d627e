// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/drawtext"
)

// fontHandle is an opened font: a rasterizing face at a fixed size plus the
// parsed sfnt font for coverage queries.
//
// A fontHandle is not safe for concurrent use (the sfnt buffer and the
// opentype face both carry per-call scratch state), matching the
// single-goroutine contract of drawtext.Context.
type fontHandle struct {
	font *opentype.Font
	face font.Face
	buf  sfnt.Buffer

	ascent  int
	descent int
}

var _ drawtext.FontHandle = (*fontHandle)(nil)

func newFontHandle(f *opentype.Font, size, dpi float64) (*fontHandle, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("software: cannot create face: %w", err)
	}
	m := face.Metrics()
	return &fontHandle{
		font:    f,
		face:    face,
		ascent:  m.Ascent.Ceil(),
		descent: m.Descent.Ceil(),
	}, nil
}

// Metrics implements drawtext.FontHandle.
func (h *fontHandle) Metrics() (ascent, descent int) {
	return h.ascent, h.descent
}

// HasGlyph implements drawtext.FontHandle. Glyph index 0 is the
// missing-glyph box and does not count as coverage.
func (h *fontHandle) HasGlyph(r rune) bool {
	return fontCoversBuf(h.font, &h.buf, r)
}

// Advance implements drawtext.FontHandle.
func (h *fontHandle) Advance(text string) int {
	return font.MeasureString(h.face, text).Round()
}

// Close implements drawtext.FontHandle.
func (h *fontHandle) Close() error {
	if h.face == nil {
		return nil
	}
	err := h.face.Close()
	h.face = nil
	return err
}

// fontCovers reports whether f has a real glyph for r.
func fontCovers(f *opentype.Font, r rune) bool {
	var buf sfnt.Buffer
	return fontCoversBuf(f, &buf, r)
}

func fontCoversBuf(f *opentype.Font, buf *sfnt.Buffer, r rune) bool {
	idx, err := f.GlyphIndex(buf, r)
	return err == nil && idx != 0
}
