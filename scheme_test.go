package drawtext

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want color.RGBA
	}{
		{"rrggbb", "#bbbbbb", color.RGBA{0xBB, 0xBB, 0xBB, 0xFF}},
		{"no hash", "222222", color.RGBA{0x22, 0x22, 0x22, 0xFF}},
		{"short rgb", "#fa0", color.RGBA{0xFF, 0xAA, 0x00, 0xFF}},
		{"short rgba", "#fa08", color.RGBA{0xFF, 0xAA, 0x00, 0x88}},
		{"rrggbbaa", "#11223344", color.RGBA{0x11, 0x22, 0x33, 0x44}},
		{"uppercase", "#AABBCC", color.RGBA{0xAA, 0xBB, 0xCC, 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12345", "#gggggg", "notacolor", "#12"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) succeeded, want error", in)
		}
	}
}

func TestParseScheme(t *testing.T) {
	s, err := ParseScheme("#bbbbbb", "#222222")
	if err != nil {
		t.Fatalf("ParseScheme: %v", err)
	}
	if s.Fg != (color.RGBA{0xBB, 0xBB, 0xBB, 0xFF}) || s.Bg != (color.RGBA{0x22, 0x22, 0x22, 0xFF}) {
		t.Errorf("scheme = %+v", s)
	}

	if _, err := ParseScheme("#bbbbbb", "bogus"); err == nil {
		t.Error("bad background accepted")
	}
	if _, err := ParseScheme("bogus", "#222222"); err == nil {
		t.Error("bad foreground accepted")
	}
}
