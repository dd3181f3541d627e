package drawtext

import (
	"errors"
	"fmt"
)

// Sentinel errors for the drawtext package.
var (
	// ErrFontCacheFull is returned when loading a font would exceed the
	// context's font cache capacity.
	ErrFontCacheFull = errors.New("drawtext: font cache full")

	// ErrNoFontSpecified is returned when a font is requested with neither
	// a name nor a match descriptor.
	ErrNoFontSpecified = errors.New("drawtext: no font specified")

	// ErrClosed is returned when an operation is attempted on a closed Context.
	ErrClosed = errors.New("drawtext: context is closed")

	// ErrEmptyPattern is returned by ParsePattern for a name with no family.
	ErrEmptyPattern = errors.New("drawtext: font pattern has no family")
)

// FontLoadError reports a failure to open a single font.
// LoadFonts skips fonts that fail with this error and continues.
type FontLoadError struct {
	Name string // the font name as given, empty for descriptor-opened fonts
	Err  error
}

func (e *FontLoadError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("drawtext: cannot load font from match descriptor: %v", e.Err)
	}
	return fmt.Sprintf("drawtext: cannot load font %q: %v", e.Name, e.Err)
}

func (e *FontLoadError) Unwrap() error { return e.Err }
