package text

import (
	"testing"
)

func TestShapeAdvanceScales(t *testing.T) {
	f := testFace(t)
	s := NewShaper(16)
	a := s.Shape(f, "Hello", 40).Advance
	b := s.Shape(f, "Hello", 80).Advance
	if a <= 0 {
		t.Fatalf("Advance = %v, want > 0", a)
	}
	if d := b - 2*a; d > 0.5 || d < -0.5 {
		t.Errorf("Advance at 80 = %v, want about %v", b, 2*a)
	}
}

func TestShapeCachesRuns(t *testing.T) {
	f := testFace(t)
	s := NewShaper(16)
	r1 := s.Shape(f, "cache", 30)
	r2 := s.Shape(f, "cache", 30)
	if r1 != r2 {
		t.Error("Shape returned distinct runs for identical input")
	}
	st := s.Stats()
	if st.Hits != 1 || st.Misses != 1 {
		t.Errorf("Stats = %+v, want 1 hit and 1 miss", st)
	}
}

func TestShapeNormalizes(t *testing.T) {
	f := testFace(t)
	s := NewShaper(16)
	composed := s.Shape(f, "\u00e9", 40)
	decomposed := s.Shape(f, "e\u0301", 40)
	if len(composed.Glyphs) != len(decomposed.Glyphs) {
		t.Fatalf("glyph counts %d and %d differ", len(composed.Glyphs), len(decomposed.Glyphs))
	}
	if composed.Advance != decomposed.Advance {
		t.Errorf("Advance = %v and %v, want equal", composed.Advance, decomposed.Advance)
	}
}

func TestShapeEmpty(t *testing.T) {
	s := NewShaper(4)
	tests := []struct {
		name string
		face *Face
		str  string
		size float64
	}{
		{"empty text", testFace(t), "", 40},
		{"zero size", testFace(t), "x", 0},
		{"nil face", nil, "x", 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := s.Shape(tt.face, tt.str, tt.size)
			if len(r.Glyphs) != 0 || r.Advance != 0 {
				t.Errorf("Shape = %d glyphs, advance %v, want empty", len(r.Glyphs), r.Advance)
			}
			if !r.Outline(0, 0).Empty() {
				t.Error("Outline of empty run is not empty")
			}
		})
	}
}

func TestGlyphsAdvanceMonotonic(t *testing.T) {
	r := NewShaper(4).Shape(testFace(t), "AVATAR", 60)
	for i := 1; i < len(r.Glyphs); i++ {
		if r.Glyphs[i].X <= r.Glyphs[i-1].X {
			t.Errorf("Glyphs[%d].X = %v, not right of %v", i, r.Glyphs[i].X, r.Glyphs[i-1].X)
		}
	}
}
