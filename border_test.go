package thumbkit

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func nearly(a, b color.RGBA, tol int) bool {
	return abs(int(a.R)-int(b.R)) <= tol && abs(int(a.G)-int(b.G)) <= tol &&
		abs(int(a.B)-int(b.B)) <= tol && abs(int(a.A)-int(b.A)) <= tol
}

func TestDefaultBorderOptions(t *testing.T) {
	o := DefaultBorderOptions()
	if o.Type != BorderNone || o.Width != 16 {
		t.Errorf("defaults = %+v", o)
	}
	if o.Color1 != Hex("#4F46E5") || o.Color2 != Hex("#EC4899") {
		t.Errorf("default colors = %v, %v", o.Color1, o.Color2)
	}
}

func TestFrameNone(t *testing.T) {
	base := solidImage(20, 10, Hex("#FF0000"))
	for _, o := range []BorderOptions{
		{Type: BorderNone, Width: 10},
		{Type: "", Width: 10},
		{Type: BorderSolid, Width: 0},
	} {
		got, err := Frame(base, o)
		if err != nil {
			t.Fatalf("Frame(%+v) error: %v", o, err)
		}
		if got != image.Image(base) {
			t.Errorf("Frame(%+v) did not return base unchanged", o)
		}
	}
}

func TestFrameSolid(t *testing.T) {
	base := solidImage(20, 10, Hex("#FF0000"))
	o := BorderOptions{Type: BorderSolid, Color1: Hex("#00FF00"), Width: 5}
	img, err := Frame(base, o)
	if err != nil {
		t.Fatal(err)
	}
	dst := img.(*image.RGBA)
	if got := dst.Rect.Size(); got != image.Pt(30, 20) {
		t.Fatalf("size = %v, want 30x20", got)
	}
	tests := []struct {
		p    image.Point
		want Color
	}{
		{image.Pt(0, 0), Hex("#00FF00")},
		{image.Pt(29, 19), Hex("#00FF00")},
		{image.Pt(4, 10), Hex("#00FF00")},
		{image.Pt(5, 5), Hex("#FF0000")},
		{image.Pt(24, 14), Hex("#FF0000")},
		{image.Pt(25, 14), Hex("#00FF00")},
	}
	for _, tt := range tests {
		if got := dst.RGBAAt(tt.p.X, tt.p.Y); got != premul(tt.want) {
			t.Errorf("pixel %v = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestFrameGradientIsDiagonal(t *testing.T) {
	base := solidImage(60, 60, Hex("#FFFFFF"))
	o := DefaultBorderOptions()
	o.Type = BorderGradient
	o.Width = 10
	img, err := Frame(base, o)
	if err != nil {
		t.Fatal(err)
	}
	dst := img.(*image.RGBA)
	if got := dst.Rect.Size(); got != image.Pt(80, 80) {
		t.Fatalf("size = %v, want 80x80", got)
	}
	if got := dst.RGBAAt(0, 0); !nearly(got, premul(o.Color1), 3) {
		t.Errorf("top-left = %v, want about %v", got, o.Color1)
	}
	if got := dst.RGBAAt(79, 79); !nearly(got, premul(o.Color2), 3) {
		t.Errorf("bottom-right = %v, want about %v", got, o.Color2)
	}
	// On a square frame the other two corners sit halfway.
	mid := premul(o.Color1.Lerp(o.Color2, 0.5))
	if got := dst.RGBAAt(79, 0); !nearly(got, mid, 6) {
		t.Errorf("top-right = %v, want about %v", got, mid)
	}
	if got := dst.RGBAAt(40, 40); got != premul(White) {
		t.Errorf("center = %v, want base", got)
	}
}

func TestFrameNoBase(t *testing.T) {
	if _, err := Frame(nil, DefaultBorderOptions()); !errors.Is(err, ErrSurfaceUnavailable) {
		t.Errorf("Frame(nil) = %v, want ErrSurfaceUnavailable", err)
	}
}

func TestFrameVector(t *testing.T) {
	half := `<svg viewBox="0 0 10 10" xmlns="http://www.w3.org/2000/svg"><rect width="5" height="10" fill="#ff0000"/></svg>`
	img, err := FrameVector([]byte(half), BorderOptions{Type: BorderSolid, Color1: White, Width: 2})
	if err != nil {
		t.Fatal(err)
	}
	dst := img.(*image.RGBA)
	if got := dst.Rect.Size(); got != image.Pt(14, 14) {
		t.Fatalf("size = %v, want 14x14", got)
	}
	if got := dst.RGBAAt(4, 7); got != premul(Hex("#FF0000")) {
		t.Errorf("art pixel = %v, want red", got)
	}
	if got := dst.RGBAAt(10, 7); got != premul(Black) {
		t.Errorf("transparent art pixel = %v, want black backing", got)
	}
	if got := dst.RGBAAt(0, 0); got != premul(White) {
		t.Errorf("frame pixel = %v, want white", got)
	}

	if _, err := FrameVector(nil, DefaultBorderOptions()); err == nil {
		t.Error("FrameVector(nil) succeeded")
	}
}
