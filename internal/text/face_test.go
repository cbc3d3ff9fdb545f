package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestParseFaceEmpty(t *testing.T) {
	if _, err := ParseFace("x", nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("ParseFace(nil) err = %v, want ErrEmptyFontData", err)
	}
}

func TestParseFaceGarbage(t *testing.T) {
	if _, err := ParseFace("x", []byte("not a font")); err == nil {
		t.Error("ParseFace(garbage) err = nil, want error")
	}
}

func TestFaceMetricsScale(t *testing.T) {
	f := testFace(t)
	m40 := f.Metrics(40)
	m80 := f.Metrics(80)
	if m40.Ascent <= 0 || m40.Descent <= 0 {
		t.Fatalf("Metrics(40) = %+v, want positive ascent and descent", m40)
	}
	if d := m80.Ascent - 2*m40.Ascent; d > 0.1 || d < -0.1 {
		t.Errorf("Metrics(80).Ascent = %v, want about %v", m80.Ascent, 2*m40.Ascent)
	}
}

func TestFaceCovers(t *testing.T) {
	f, err := ParseFace("regular", goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Covers('A') {
		t.Error("Covers('A') = false, want true")
	}
	if f.Covers('\U0001F525') {
		t.Error("Covers(fire emoji) = true, want false")
	}
}

func TestAppendGlyphClosesContours(t *testing.T) {
	f := testFace(t)
	run := NewShaper(8).Shape(f, "O", 40)
	if len(run.Glyphs) != 1 {
		t.Fatalf("len(Glyphs) = %d, want 1", len(run.Glyphs))
	}
	p := &Path{}
	if err := f.AppendGlyph(p, run.Glyphs[0].ID, 40, 10, 50); err != nil {
		t.Fatal(err)
	}

	// "O" has an outer and an inner contour.
	moves, closes := 0, 0
	for _, s := range p.Segments {
		switch s.Op {
		case OpMoveTo:
			moves++
		case OpClose:
			closes++
		}
	}
	if moves != 2 || closes != 2 {
		t.Errorf("moves, closes = %d, %d, want 2, 2", moves, closes)
	}

	// The glyph sits above the baseline at y = 50.
	_, y0, _, y1 := p.Bounds()
	if y1 > 51 || y0 > 40 {
		t.Errorf("Bounds y = [%v, %v], want glyph above baseline 50", y0, y1)
	}
}
