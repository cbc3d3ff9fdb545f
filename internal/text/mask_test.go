package text

import (
	"image"
	"image/color"
	"testing"
)

func TestFillMaskSquare(t *testing.T) {
	p := squarePath(12, 22, 6)
	r := image.Rect(10, 20, 20, 30)
	m := FillMask(p, r)

	if m.Rect != r {
		t.Fatalf("Rect = %v, want %v", m.Rect, r)
	}
	if a := m.AlphaAt(14, 24).A; a != 255 {
		t.Errorf("inside AlphaAt(14,24) = %d, want 255", a)
	}
	if a := m.AlphaAt(11, 21).A; a != 0 {
		t.Errorf("outside AlphaAt(11,21) = %d, want 0", a)
	}
	if got, want := coverage(m), 36*255; got != want {
		t.Errorf("coverage = %d, want %d", got, want)
	}
}

func TestStrokeMaskRing(t *testing.T) {
	p := squarePath(10, 10, 20)
	r := PathRect(p, StrokeReach(4))
	m := StrokeMask(p, 4, r)

	if a := m.AlphaAt(10, 20).A; a < 200 {
		t.Errorf("on-edge AlphaAt(10,20) = %d, want near full", a)
	}
	if a := m.AlphaAt(20, 20).A; a != 0 {
		t.Errorf("center AlphaAt(20,20) = %d, want 0", a)
	}
	if a := m.AlphaAt(5, 20).A; a != 0 {
		t.Errorf("far outside AlphaAt(5,20) = %d, want 0", a)
	}
}

func TestStrokeMaskMiterCorners(t *testing.T) {
	p := squarePath(10, 10, 20)
	m := StrokeMask(p, 8, PathRect(p, StrokeReach(8)))

	// A round join would leave the outer corner pixel empty.
	if a := m.AlphaAt(6, 6).A; a < 200 {
		t.Errorf("outer corner AlphaAt(6,6) = %d, want near full", a)
	}
	if a := m.AlphaAt(4, 4).A; a != 0 {
		t.Errorf("beyond the miter AlphaAt(4,4) = %d, want 0", a)
	}
}

func TestStrokeMaskZeroWidth(t *testing.T) {
	p := squarePath(0, 0, 10)
	m := StrokeMask(p, 0, image.Rect(0, 0, 10, 10))
	if coverage(m) != 0 {
		t.Error("zero-width stroke produced coverage")
	}
}

func TestPathRect(t *testing.T) {
	p := squarePath(1.5, 2.5, 3)
	if got, want := PathRect(p, 2), image.Rect(-1, 0, 7, 8); got != want {
		t.Errorf("PathRect = %v, want %v", got, want)
	}
	if got := PathRect(&Path{}, 5); !got.Empty() {
		t.Errorf("PathRect(empty) = %v, want empty", got)
	}
}

func TestCompositeClipsToDst(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	m := image.NewAlpha(image.Rect(2, 2, 8, 8))
	for i := range m.Pix {
		m.Pix[i] = 255
	}
	Composite(dst, m, image.NewUniform(color.RGBA{255, 0, 0, 255}))

	if got := dst.RGBAAt(3, 3); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("RGBAAt(3,3) = %v, want red", got)
	}
	if got := dst.RGBAAt(1, 1); got.A != 0 {
		t.Errorf("RGBAAt(1,1) = %v, want transparent", got)
	}
}

func TestRunOutlineDrawsText(t *testing.T) {
	run := NewShaper(4).Shape(testFace(t), "Hi", 40)
	p := run.Outline(5, 5+run.Metrics.Ascent)
	m := FillMask(p, image.Rect(0, 0, 120, 60))
	if coverage(m) == 0 {
		t.Error("FillMask of shaped run has no coverage")
	}
}
