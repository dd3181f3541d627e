// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/font/opentype"

	"github.com/gogpu/drawtext"
)

// Common backend errors.
var (
	// ErrUnknownFamily is returned when none of a pattern's families are
	// registered with the backend.
	ErrUnknownFamily = errors.New("software: unknown font family")

	// ErrNoMatch is returned when no registered or system font covers the
	// requested codepoint.
	ErrNoMatch = errors.New("software: no font matches codepoint")

	// ErrBadDescriptor is returned when a Descriptor from another backend
	// is passed to OpenDescriptor.
	ErrBadDescriptor = errors.New("software: descriptor was not produced by this backend")
)

// Backend is the CPU rendering backend. It implements drawtext.Backend.
//
// Fonts are served from an ordered in-process registry; the registration
// order is the match scan order. A Backend may be shared by multiple
// contexts as long as RegisterFont is not called concurrently with use.
type Backend struct {
	registry []*registeredFont
	byFamily map[string]*registeredFont

	sys *systemMatcher

	dpi         float64
	defaultSize float64
}

// registeredFont is one parsed entry in the font registry.
type registeredFont struct {
	family string
	data   []byte
	font   *opentype.Font
}

// Option configures a Backend.
type Option func(*Backend)

// WithDPI sets the rasterization density. The default is 72, which makes
// point sizes equal to pixel sizes.
func WithDPI(dpi float64) Option {
	return func(b *Backend) {
		if dpi > 0 {
			b.dpi = dpi
		}
	}
}

// WithDefaultSize sets the point size used when a font name carries none.
// The default is 12.
func WithDefaultSize(size float64) Option {
	return func(b *Backend) {
		if size > 0 {
			b.defaultSize = size
		}
	}
}

// WithSystemFonts extends fallback matching to the operating system's font
// database. The index is built lazily on the first match and cached under
// cacheDir; an empty cacheDir uses the platform default cache location.
func WithSystemFonts(cacheDir string) Option {
	return func(b *Backend) {
		b.sys = newSystemMatcher(cacheDir)
	}
}

// New creates a software backend.
func New(opts ...Option) *Backend {
	b := &Backend{
		byFamily:    make(map[string]*registeredFont),
		dpi:         72,
		defaultSize: 12,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return "software" }

// RegisterFont parses TTF/OTF data and adds it to the registry under the
// given family name. Registering the same family again replaces the entry
// for by-name opens but keeps the original's position in the match order.
func (b *Backend) RegisterFont(family string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("software: cannot parse font %q: %w", family, err)
	}
	rf := &registeredFont{family: family, data: data, font: f}
	b.registry = append(b.registry, rf)
	b.byFamily[strings.ToLower(family)] = rf
	return nil
}

// NewSurface implements drawtext.Backend.
func (b *Backend) NewSurface(width, height int) (drawtext.Surface, error) {
	return newImageSurface(width, height), nil
}

// OpenFont implements drawtext.Backend. The name is an Xft-style pattern;
// the first registered family in its family list wins.
func (b *Backend) OpenFont(name string) (drawtext.FontHandle, error) {
	pat, err := drawtext.ParsePattern(name)
	if err != nil {
		return nil, err
	}
	for _, family := range pat.Families {
		rf, ok := b.byFamily[strings.ToLower(family)]
		if !ok {
			continue
		}
		return newFontHandle(rf.font, b.sizeFor(pat), b.dpi)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}

// OpenDescriptor implements drawtext.Backend.
func (b *Backend) OpenDescriptor(desc drawtext.Descriptor) (drawtext.FontHandle, error) {
	d, ok := desc.(*matchDescriptor)
	if !ok {
		return nil, ErrBadDescriptor
	}
	return newFontHandle(d.font, d.size, b.dpi)
}

// Match implements drawtext.Backend. Registered fonts are scanned first in
// registration order; when none covers r and system fonts are enabled, the
// platform font database is consulted.
func (b *Backend) Match(ref drawtext.Pattern, r rune) (drawtext.Descriptor, error) {
	size := b.sizeFor(ref)
	for _, rf := range b.registry {
		if fontCovers(rf.font, r) {
			return &matchDescriptor{family: rf.family, size: size, font: rf.font}, nil
		}
	}
	if b.sys != nil {
		return b.sys.match(ref, size, r)
	}
	return nil, fmt.Errorf("%w: %U", ErrNoMatch, r)
}

// sizeFor resolves the point size of a pattern, falling back to the
// backend default.
func (b *Backend) sizeFor(pat drawtext.Pattern) float64 {
	if pat.Size > 0 {
		return pat.Size
	}
	return b.defaultSize
}

// matchDescriptor is this backend's opaque match result: a parsed font and
// the size it should open at.
type matchDescriptor struct {
	family string
	size   float64
	font   *opentype.Font
}

func (d *matchDescriptor) String() string {
	return fmt.Sprintf("%s:size=%g", d.family, d.size)
}
