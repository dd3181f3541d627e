package drawtext

import (
	"strconv"
	"strings"
)

// Pattern is the parsed form of an Xft-style font name. It records what the
// caller asked for when opening a font by name, and anchors fallback
// matching: when no loaded font covers a codepoint, the base font's Pattern
// is combined with that codepoint and handed to Backend.Match.
//
// Only fonts opened by name own a Pattern. Fallback-discovered fonts do
// not, and are never themselves used as a match reference.
type Pattern struct {
	// Families lists requested font families in preference order.
	Families []string

	// Size is the requested point size, 0 when unspecified.
	Size float64

	// Bold and Italic carry the requested aspect.
	Bold   bool
	Italic bool
}

// ParsePattern parses an Xft-style font name:
//
//	"Go Regular:size=12"
//	"Go Mono,monospace:size=11:style=Bold"
//	"Go Regular-12"
//
// The leading segment is a comma-separated family list; an optional
// trailing "-N" on it is shorthand for size=N. The remaining colon-separated
// segments are key=value properties; recognized keys are size, pixelsize,
// style, weight and slant. Unknown properties are ignored, matching
// fontconfig's tolerance. A name with no family yields ErrEmptyPattern.
func ParsePattern(name string) (Pattern, error) {
	var p Pattern

	segs := strings.Split(name, ":")
	familyPart := strings.TrimSpace(segs[0])

	// "Family-12" shorthand: only when the suffix is numeric, so family
	// names containing dashes still parse.
	if i := strings.LastIndexByte(familyPart, '-'); i > 0 {
		if size, err := strconv.ParseFloat(familyPart[i+1:], 64); err == nil {
			p.Size = size
			familyPart = strings.TrimSpace(familyPart[:i])
		}
	}

	for fam := range strings.SplitSeq(familyPart, ",") {
		fam = strings.TrimSpace(fam)
		if fam != "" {
			p.Families = append(p.Families, fam)
		}
	}
	if len(p.Families) == 0 {
		return Pattern{}, ErrEmptyPattern
	}

	for _, seg := range segs[1:] {
		key, val, ok := strings.Cut(seg, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		val = strings.TrimSpace(val)
		switch key {
		case "size", "pixelsize":
			if size, err := strconv.ParseFloat(val, 64); err == nil {
				p.Size = size
			}
		case "style":
			low := strings.ToLower(val)
			if strings.Contains(low, "bold") {
				p.Bold = true
			}
			if strings.Contains(low, "italic") || strings.Contains(low, "oblique") {
				p.Italic = true
			}
		case "weight":
			if strings.EqualFold(val, "bold") {
				p.Bold = true
			}
		case "slant":
			if strings.EqualFold(val, "italic") || strings.EqualFold(val, "oblique") {
				p.Italic = true
			}
		}
	}

	return p, nil
}

// String returns the pattern in canonical Xft name form.
func (p Pattern) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(p.Families, ","))
	if p.Size > 0 {
		b.WriteString(":size=")
		b.WriteString(strconv.FormatFloat(p.Size, 'g', -1, 64))
	}
	switch {
	case p.Bold && p.Italic:
		b.WriteString(":style=Bold Italic")
	case p.Bold:
		b.WriteString(":style=Bold")
	case p.Italic:
		b.WriteString(":style=Italic")
	}
	return b.String()
}
