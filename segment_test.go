package drawtext

import (
	"slices"
	"testing"
)

// collectRuns drains the run iterator into a slice.
func collectRuns(c *Context, text string) []Run {
	var runs []Run
	for run := range c.Runs(text) {
		runs = append(runs, run)
	}
	return runs
}

func runTexts(runs []Run) []string {
	out := make([]string, len(runs))
	for i, r := range runs {
		out[i] = r.Text
	}
	return out
}

func TestRunsSingleFont(t *testing.T) {
	c := newTestContext(t, newStubBackend())
	runs := collectRuns(c, "hello world")
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Text != "hello world" || runs[0].Start != 0 || runs[0].End != 11 {
		t.Errorf("run = %+v", runs[0])
	}
	if runs[0].Font != c.BaseFont() {
		t.Error("run font is not the base font")
	}
}

func TestRunsEmptyText(t *testing.T) {
	c := newTestContext(t, newStubBackend())
	if runs := collectRuns(c, ""); runs != nil {
		t.Errorf("got %d runs for empty text, want none", len(runs))
	}
}

func TestRunsNoFontsLoaded(t *testing.T) {
	be := newStubBackend()
	c, err := New(be, 100, 20)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()
	if runs := collectRuns(c, "abc"); runs != nil {
		t.Errorf("got runs with no fonts loaded: %v", runTexts(runs))
	}
}

// A codepoint covered by a different loaded font splits the run, and the
// segmenter switches back when coverage returns to the base font.
func TestRunsFontSwitch(t *testing.T) {
	be := newStubBackend()
	be.addFont("greek:size=12", newStubHandle("greek", 12, 'α', 'β'))
	c := newTestContext(t, be)
	if _, err := c.LoadFont("greek:size=12"); err != nil {
		t.Fatalf("LoadFont: %v", err)
	}

	runs := collectRuns(c, "abαβc")
	want := []string{"ab", "αβ", "c"}
	if !slices.Equal(runTexts(runs), want) {
		t.Fatalf("runs = %v, want %v", runTexts(runs), want)
	}
	if runs[0].Font != c.BaseFont() || runs[2].Font != c.BaseFont() {
		t.Error("ASCII runs not drawn with base font")
	}
	if runs[1].Font == c.BaseFont() {
		t.Error("greek run drawn with base font")
	}
	// Byte ranges tile the input.
	if runs[0].End != runs[1].Start || runs[1].End != runs[2].Start {
		t.Errorf("runs do not tile: %+v", runs)
	}
}

// The first loaded font covering a codepoint wins even when a later font
// also covers it.
func TestRunsTieBreakPrefersEarlierFont(t *testing.T) {
	be := newStubBackend()
	// Second font also covers ASCII letters.
	be.addFont("mono:size=12", newStubHandle("mono", 12).coverASCII())
	c := newTestContext(t, be)
	if _, err := c.LoadFont("mono:size=12"); err != nil {
		t.Fatalf("LoadFont: %v", err)
	}

	runs := collectRuns(c, "abc")
	if len(runs) != 1 || runs[0].Font != c.BaseFont() {
		t.Errorf("runs = %v, want one base-font run", runTexts(runs))
	}
}

// A codepoint no loaded font covers resolves a fallback font dynamically;
// the font joins the cache and later occurrences reuse it.
func TestRunsFallbackResolution(t *testing.T) {
	be := newStubBackend()
	emoji := be.addMatch('😀', newStubHandle("emoji", 20, '😀'))
	c := newTestContext(t, be)

	runs := collectRuns(c, "A😀B")
	want := []string{"A", "😀", "B"}
	if !slices.Equal(runTexts(runs), want) {
		t.Fatalf("runs = %v, want %v", runTexts(runs), want)
	}
	if runs[1].Font.handle != emoji {
		t.Error("emoji run not drawn with the matched font")
	}
	if runs[1].Font.Pattern() != nil {
		t.Error("fallback font owns a pattern")
	}
	if c.FontCount() != 2 {
		t.Errorf("FontCount = %d, want 2", c.FontCount())
	}

	// Second pass: the cached fallback is found by the coverage scan, no
	// further match calls are made.
	calls := be.matchCalls
	collectRuns(c, "😀😀")
	if be.matchCalls != calls {
		t.Errorf("match calls grew from %d to %d on cached codepoint", calls, be.matchCalls)
	}
}

// Match failure falls back to the base font; the blocking codepoint is
// consumed anyway, so the following covered text joins the same base run.
func TestRunsFallbackMatchFails(t *testing.T) {
	be := newStubBackend()
	c := newTestContext(t, be)

	runs := collectRuns(c, "A😀B")
	want := []string{"A", "😀B"}
	if !slices.Equal(runTexts(runs), want) {
		t.Fatalf("runs = %v, want %v", runTexts(runs), want)
	}
	for _, run := range runs {
		if run.Font != c.BaseFont() {
			t.Error("run not drawn with base font after failed match")
		}
	}
	if c.FontCount() != 1 {
		t.Errorf("FontCount = %d, want 1", c.FontCount())
	}
}

// A matched font that does not actually cover the codepoint is discarded,
// not cached.
func TestRunsFallbackMatchedFontLacksGlyph(t *testing.T) {
	be := newStubBackend()
	bogus := be.addMatch('😀', newStubHandle("bogus", 20, 'x'))
	c := newTestContext(t, be)

	runs := collectRuns(c, "A😀")
	if len(runs) != 2 {
		t.Fatalf("runs = %v", runTexts(runs))
	}
	if runs[1].Font != c.BaseFont() {
		t.Error("uncovered codepoint not drawn with base font")
	}
	if !bogus.closed {
		t.Error("rejected fallback candidate was not released")
	}
	if c.FontCount() != 1 {
		t.Errorf("FontCount = %d, want 1", c.FontCount())
	}
}

// With the cache at capacity, resolution is skipped entirely: no match
// query is issued and the base font renders the missing-glyph box.
func TestRunsCacheAtCapacitySkipsResolution(t *testing.T) {
	be := newStubBackend()
	be.addMatch('😀', newStubHandle("emoji", 20, '😀'))
	c := newTestContext(t, be, WithFontCapacity(1))

	runs := collectRuns(c, "A😀B")
	for _, run := range runs {
		if run.Font != c.BaseFont() {
			t.Error("run not drawn with base font while cache full")
		}
	}
	if be.matchCalls != 0 {
		t.Errorf("matchCalls = %d, want 0", be.matchCalls)
	}
	if c.FontCount() != 1 {
		t.Errorf("FontCount = %d, want 1", c.FontCount())
	}
}

// Input consisting solely of unresolvable codepoints still terminates.
func TestRunsForwardProgress(t *testing.T) {
	be := newStubBackend()
	c := newTestContext(t, be)

	runs := collectRuns(c, "😀😀😀")
	total := 0
	for _, run := range runs {
		total += len(run.Text)
	}
	if total != len("😀😀😀") {
		t.Errorf("consumed %d bytes, want %d", total, len("😀😀😀"))
	}
}

// The state machine reports why each run ended: a pending font switch, a
// fallback resolution, or plain input exhaustion.
func TestSegmenterStates(t *testing.T) {
	be := newStubBackend()
	be.addFont("greek:size=12", newStubHandle("greek", 12, 'α'))
	c := newTestContext(t, be)
	if _, err := c.LoadFont("greek:size=12"); err != nil {
		t.Fatalf("LoadFont: %v", err)
	}

	s := newSegmenter(be, c.fonts, "abαc😀")
	steps := []struct {
		text  string
		state segState
	}{
		{"ab", segSwitchPending},
		{"α", segSwitchPending},
		{"c", segResolveFallback},
		{"😀", segScanning}, // forced consumption, then input exhausted
	}
	for i, want := range steps {
		run, ok := s.next()
		if !ok {
			t.Fatalf("step %d: next() exhausted early", i)
		}
		if run.Text != want.text || s.state != want.state {
			t.Errorf("step %d: run %q state %d, want %q state %d",
				i, run.Text, s.state, want.text, want.state)
		}
	}
	if _, ok := s.next(); ok {
		t.Error("next() returned a run past the end of input")
	}
}

// Malformed bytes decode to the replacement codepoint and go through the
// normal coverage machinery.
func TestRunsInvalidBytes(t *testing.T) {
	be := newStubBackend()
	base := newStubHandle("base", 10, RuneInvalid).coverASCII()
	be.fonts["base:size=12"] = base
	base.closeLog = &be.closeLog
	c, err := New(be, 400, 20)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()
	if _, err := c.LoadFont("base:size=12"); err != nil {
		t.Fatalf("LoadFont: %v", err)
	}

	// Surrogate sequence, then ASCII, then a truncated trailing sequence.
	runs := collectRuns(c, "\xED\xA0\x80ok\xE2\x82")
	total := 0
	for _, run := range runs {
		if run.Font != c.BaseFont() {
			t.Error("replacement codepoints not drawn with base font")
		}
		total += len(run.Text)
	}
	if total != len("\xED\xA0\x80ok\xE2\x82") {
		t.Errorf("consumed %d bytes, want %d", total, len("\xED\xA0\x80ok\xE2\x82"))
	}
}
