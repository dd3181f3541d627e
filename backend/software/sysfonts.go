// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/drawtext"
)

// systemMatcher resolves fallback fonts against the operating system's font
// database using go-text's fontscan index. It plays the role fontconfig
// plays for Xft: given a reference pattern and a codepoint, it returns the
// best installed font covering that codepoint.
type systemMatcher struct {
	cacheDir string

	once sync.Once
	fm   *fontscan.FontMap
	err  error
}

func newSystemMatcher(cacheDir string) *systemMatcher {
	return &systemMatcher{cacheDir: cacheDir}
}

// init builds the font index on first use. Scanning every installed font is
// slow, so fontscan persists a footprint cache under cacheDir.
func (m *systemMatcher) init() {
	logger := slog.NewLogLogger(drawtext.Logger().Handler(), slog.LevelDebug)
	m.fm = fontscan.NewFontMap(logger)
	m.err = m.fm.UseSystemFonts(m.cacheDir)
}

// match finds an installed font covering r, preferring the reference
// pattern's families and aspect.
func (m *systemMatcher) match(ref drawtext.Pattern, size float64, r rune) (drawtext.Descriptor, error) {
	m.once.Do(m.init)
	if m.err != nil {
		return nil, fmt.Errorf("software: system font index unavailable: %w", m.err)
	}

	m.fm.SetQuery(fontscan.Query{
		Families: ref.Families,
		Aspect:   aspectOf(ref),
	})
	face := m.fm.ResolveFace(r)
	if face == nil {
		return nil, fmt.Errorf("%w: %U", ErrNoMatch, r)
	}
	if _, ok := face.NominalGlyph(r); !ok {
		// fontscan returns a last-resort face even without coverage;
		// treat that as no match so the caller falls back to the base font.
		return nil, fmt.Errorf("%w: %U", ErrNoMatch, r)
	}

	loc := m.fm.FontLocation(face.Font)
	data, err := os.ReadFile(loc.File)
	if err != nil {
		return nil, fmt.Errorf("software: cannot read matched font: %w", err)
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("software: cannot parse matched font %s: %w", loc.File, err)
	}
	return &matchDescriptor{
		family: filepath.Base(loc.File),
		size:   size,
		font:   parsed,
	}, nil
}

// aspectOf converts a pattern's style flags to a fontscan aspect.
func aspectOf(ref drawtext.Pattern) font.Aspect {
	aspect := font.Aspect{Style: font.StyleNormal, Weight: font.WeightNormal}
	if ref.Italic {
		aspect.Style = font.StyleItalic
	}
	if ref.Bold {
		aspect.Weight = font.WeightBold
	}
	return aspect
}
