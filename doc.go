// Package drawtext draws single-line text with automatic font fallback.
//
// # Overview
//
// drawtext is a small immediate-mode text drawing library for the GoGPU
// ecosystem. It decodes UTF-8, splits text into runs covered by a single
// font, discovers fallback fonts for codepoints the loaded fonts cannot
// render, measures and truncates runs to a pixel budget, and hands the
// resulting draw calls to a pluggable rendering backend.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/drawtext"
//		"github.com/gogpu/drawtext/backend/software"
//	)
//
//	be := software.New()
//	dc, err := drawtext.New(be, 800, 24)
//	if err != nil { ... }
//	defer dc.Close()
//
//	dc.LoadFonts("Go Regular:size=12", "Go Mono:size=12")
//	dc.SetScheme(&drawtext.Scheme{Fg: color.Black, Bg: color.White})
//
//	// Draw into the 800x24 bar, truncating with "..." if it does not fit.
//	x := dc.DrawText(0, 0, 800, 24, "hello, 世界", false)
//
// Passing zeros for all four geometry arguments puts DrawText in
// measure-only mode: nothing is drawn and the return value is the total
// advance width.
//
// # Fonts and fallback
//
// Fonts are loaded by Xft-style name strings ("Family:size=N") and kept in
// an ordered, bounded cache. The first font is the base font: when a
// codepoint is not covered by any loaded font, the base font's parsed
// pattern anchors a backend match query (on the software backend this is a
// registry scan, optionally extended to the system font database). Matched
// fonts are appended to the cache and reused for the rest of the context's
// lifetime. When the cache is full or matching fails, the base font draws
// the codepoint as its missing-glyph box instead — text always makes
// forward progress.
//
// # Concurrency
//
// A Context is not safe for concurrent use; callers must serialize access.
// Two independent contexts share no mutable state and may be used from
// different goroutines.
package drawtext
