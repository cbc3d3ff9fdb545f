package filter

import (
	"image/color"
	"testing"
)

func TestApplyChainIdentity(t *testing.T) {
	img := solidRGBA(4, 4, color.RGBA{R: 10, G: 120, B: 200, A: 255})
	want := append([]uint8(nil), img.Pix...)

	ApplyChain(img, img.Rect, Brightness(1), Contrast(1), Saturate(1))

	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix[%d] = %d, want %d", i, img.Pix[i], want[i])
		}
	}
}

func TestApplyChain(t *testing.T) {
	tests := []struct {
		name  string
		in    color.RGBA
		chain []ColorMatrix
		want  color.RGBA
	}{
		{"brightness 150", color.RGBA{100, 100, 100, 255}, []ColorMatrix{Brightness(1.5)}, color.RGBA{150, 150, 150, 255}},
		{"brightness 0", color.RGBA{100, 50, 10, 255}, []ColorMatrix{Brightness(0)}, color.RGBA{0, 0, 0, 255}},
		{"brightness clamps", color.RGBA{200, 200, 200, 255}, []ColorMatrix{Brightness(2)}, color.RGBA{255, 255, 255, 255}},
		{"contrast 0 is mid gray", color.RGBA{10, 240, 90, 255}, []ColorMatrix{Contrast(0)}, color.RGBA{128, 128, 128, 255}},
		{"contrast 200", color.RGBA{160, 100, 128, 255}, []ColorMatrix{Contrast(2)}, color.RGBA{193, 73, 129, 255}},
		{"saturate 0 on gray", color.RGBA{90, 90, 90, 255}, []ColorMatrix{Saturate(0)}, color.RGBA{90, 90, 90, 255}},
		{"saturate 0 on red", color.RGBA{255, 0, 0, 255}, []ColorMatrix{Saturate(0)}, color.RGBA{54, 54, 54, 255}},
		// Brightness overflows before contrast reads it; the clamp in
		// between makes the order observable.
		{"clamped between steps", color.RGBA{200, 200, 200, 255}, []ColorMatrix{Brightness(2), Contrast(0.5)}, color.RGBA{191, 191, 191, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := solidRGBA(1, 1, tt.in)
			ApplyChain(img, img.Rect, tt.chain...)
			got := color.RGBA{img.Pix[0], img.Pix[1], img.Pix[2], img.Pix[3]}
			if absDiff(got.R, tt.want.R) > 1 || absDiff(got.G, tt.want.G) > 1 ||
				absDiff(got.B, tt.want.B) > 1 || got.A != tt.want.A {
				t.Errorf("ApplyChain = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyChainSkipsTransparent(t *testing.T) {
	img := solidRGBA(2, 2, color.RGBA{})
	ApplyChain(img, img.Rect, Contrast(0))
	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %d, want 0", i, v)
		}
	}
}

func TestApplyChainRestrictedToRect(t *testing.T) {
	img := solidRGBA(4, 1, color.RGBA{100, 100, 100, 255})
	r := img.Rect
	r.Max.X = 2
	ApplyChain(img, r, Brightness(0))

	if img.Pix[0] != 0 {
		t.Errorf("inside pixel R = %d, want 0", img.Pix[0])
	}
	if img.Pix[3*4] != 100 {
		t.Errorf("outside pixel R = %d, want 100", img.Pix[3*4])
	}
}

func TestIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false, want true")
	}
	if !Saturate(1).IsIdentity() {
		t.Error("Saturate(1).IsIdentity() = false, want true")
	}
	if Brightness(0.5).IsIdentity() {
		t.Error("Brightness(0.5).IsIdentity() = true, want false")
	}
}
