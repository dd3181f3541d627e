// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package software is the CPU backend for drawtext.
//
// It renders into an *image.RGBA using golang.org/x/image/font, opens fonts
// from an in-process registry of TTF/OTF data, and can optionally extend
// fallback matching to the operating system's font database via
// go-text/typesetting's fontscan.
//
// Typical setup:
//
//	be := software.New()
//	be.RegisterFont("Go Regular", goregular.TTF)
//	be.RegisterFont("Go Mono", gomono.TTF)
//
//	dc, err := drawtext.New(be, 800, 24)
//
// With system fonts enabled, codepoints not covered by any registered font
// are resolved against the platform font database, mirroring what
// fontconfig does for Xft:
//
//	be := software.New(software.WithSystemFonts(""))
package software
