package drawtext

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"
)

// stubHandle is a scripted font: fixed metrics, an explicit coverage set,
// and a constant per-codepoint advance so expected widths are trivial to
// compute in tests.
type stubHandle struct {
	name    string
	covers  map[rune]bool
	adv     int
	ascent  int
	descent int
	closed  bool

	// closeLog, when set, receives the handle name on Close so tests can
	// assert release ordering.
	closeLog *[]string
}

func newStubHandle(name string, adv int, covers ...rune) *stubHandle {
	set := make(map[rune]bool, len(covers))
	for _, r := range covers {
		set[r] = true
	}
	return &stubHandle{name: name, covers: set, adv: adv, ascent: 8, descent: 2}
}

// coverASCII extends the coverage set with printable ASCII.
func (h *stubHandle) coverASCII() *stubHandle {
	for r := rune(0x20); r < 0x7F; r++ {
		h.covers[r] = true
	}
	return h
}

func (h *stubHandle) Metrics() (int, int) { return h.ascent, h.descent }

func (h *stubHandle) HasGlyph(r rune) bool { return h.covers[r] }

func (h *stubHandle) Advance(text string) int {
	n := 0
	for range text {
		n++
	}
	return n * h.adv
}

func (h *stubHandle) Close() error {
	h.closed = true
	if h.closeLog != nil {
		*h.closeLog = append(*h.closeLog, h.name)
	}
	return nil
}

// surfaceOp records one drawing call issued to a stubSurface.
type surfaceOp struct {
	kind  string // "fill", "outline", "draw", "copy"
	rect  image.Rectangle
	color color.Color
	x, y  int
	text  string
	font  FontHandle
}

type stubSurface struct {
	bounds image.Rectangle
	ops    []surfaceOp
	closed bool

	closeLog *[]string
}

func (s *stubSurface) Bounds() image.Rectangle { return s.bounds }

func (s *stubSurface) Fill(r image.Rectangle, c color.Color) {
	s.ops = append(s.ops, surfaceOp{kind: "fill", rect: r, color: c})
}

func (s *stubSurface) Outline(r image.Rectangle, c color.Color) {
	s.ops = append(s.ops, surfaceOp{kind: "outline", rect: r, color: c})
}

func (s *stubSurface) DrawText(x, y int, c color.Color, f FontHandle, text string) {
	s.ops = append(s.ops, surfaceOp{kind: "draw", x: x, y: y, color: c, font: f, text: text})
}

func (s *stubSurface) CopyTo(dst draw.Image, r image.Rectangle) error {
	s.ops = append(s.ops, surfaceOp{kind: "copy", rect: r})
	return nil
}

func (s *stubSurface) Close() error {
	s.closed = true
	if s.closeLog != nil {
		*s.closeLog = append(*s.closeLog, "surface")
	}
	return nil
}

// drawOps filters the recorded operations by kind.
func (s *stubSurface) opsOf(kind string) []surfaceOp {
	var out []surfaceOp
	for _, op := range s.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// stubDescriptor wraps the handle Match selected.
type stubDescriptor struct {
	handle *stubHandle
}

func (d *stubDescriptor) String() string { return d.handle.name }

// stubBackend serves scripted fonts by exact name and scripted match
// results by codepoint.
type stubBackend struct {
	fonts      map[string]*stubHandle
	matches    map[rune]*stubHandle
	surface    *stubSurface
	matchCalls int
	openErr    error

	closeLog []string
}

func newStubBackend() *stubBackend {
	return &stubBackend{
		fonts:   make(map[string]*stubHandle),
		matches: make(map[rune]*stubHandle),
	}
}

func (b *stubBackend) addFont(name string, h *stubHandle) *stubHandle {
	h.closeLog = &b.closeLog
	b.fonts[name] = h
	return h
}

func (b *stubBackend) addMatch(r rune, h *stubHandle) *stubHandle {
	h.closeLog = &b.closeLog
	b.matches[r] = h
	return h
}

func (b *stubBackend) NewSurface(w, h int) (Surface, error) {
	b.surface = &stubSurface{
		bounds:   image.Rect(0, 0, w, h),
		closeLog: &b.closeLog,
	}
	return b.surface, nil
}

func (b *stubBackend) OpenFont(name string) (FontHandle, error) {
	if b.openErr != nil {
		return nil, b.openErr
	}
	h, ok := b.fonts[name]
	if !ok {
		return nil, errors.New("stub: no such font")
	}
	return h, nil
}

func (b *stubBackend) OpenDescriptor(desc Descriptor) (FontHandle, error) {
	d, ok := desc.(*stubDescriptor)
	if !ok {
		return nil, errors.New("stub: bad descriptor")
	}
	return d.handle, nil
}

func (b *stubBackend) Match(ref Pattern, r rune) (Descriptor, error) {
	b.matchCalls++
	h, ok := b.matches[r]
	if !ok {
		return nil, errors.New("stub: no match")
	}
	return &stubDescriptor{handle: h}, nil
}

// newTestContext builds a context over the stub backend with a loaded base
// font covering printable ASCII, 10px per codepoint, height 10.
func newTestContext(t *testing.T, be *stubBackend, opts ...Option) *Context {
	t.Helper()
	be.addFont("base:size=12", newStubHandle("base", 10).coverASCII())
	c, err := New(be, 400, 20, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	if _, err := c.LoadFont("base:size=12"); err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	return c
}
