package drawtext

import (
	"fmt"
	"image/color"
)

// Scheme is a foreground/background color pair used for text and fills.
// Schemes are owned by the caller: a Context only references the scheme it
// was given and never retains or frees anything on its behalf.
type Scheme struct {
	Fg color.Color
	Bg color.Color
}

// ParseScheme builds a Scheme from two hex color names.
// Supported formats: "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA" (the leading
// '#' is optional).
func ParseScheme(fg, bg string) (*Scheme, error) {
	f, err := ParseColor(fg)
	if err != nil {
		return nil, err
	}
	b, err := ParseColor(bg)
	if err != nil {
		return nil, err
	}
	return &Scheme{Fg: f, Bg: b}, nil
}

// ParseColor parses a hex color name into a color.
func ParseColor(name string) (color.Color, error) {
	hex := name
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	var ok bool
	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) &&
			parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) &&
			parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	}
	if !ok {
		return nil, fmt.Errorf("drawtext: cannot parse color %q", name)
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
