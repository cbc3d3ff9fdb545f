package svg

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

const redSquare = `<svg viewBox="0 0 100 50" xmlns="http://www.w3.org/2000/svg">
<rect x="0" y="0" width="50" height="50" fill="#ff0000"/>
</svg>`

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "   \n"} {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrEmptyMarkup) {
			t.Errorf("Parse(%q) err = %v, want ErrEmptyMarkup", in, err)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("<svg><rect")); err == nil {
		t.Error("Parse(truncated) err = nil, want error")
	}
}

func TestNaturalSize(t *testing.T) {
	d, err := Parse([]byte(redSquare))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.NaturalSize(), image.Pt(100, 50); got != want {
		t.Errorf("NaturalSize() = %v, want %v", got, want)
	}
}

func TestMinSize(t *testing.T) {
	d, err := Parse([]byte(redSquare))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		side int
		want image.Point
	}{
		{512, image.Pt(512, 256)},
		{80, image.Pt(100, 50)},
	}
	for _, tt := range tests {
		if got := d.MinSize(tt.side); got != tt.want {
			t.Errorf("MinSize(%d) = %v, want %v", tt.side, got, tt.want)
		}
	}
}

func TestDecodeDrawsShapes(t *testing.T) {
	img, err := Decode([]byte(redSquare))
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got != image.Pt(100, 50) {
		t.Fatalf("size = %v, want 100x50", got)
	}
	if got := img.RGBAAt(25, 25); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("RGBAAt(25,25) = %v, want opaque red", got)
	}
	if got := img.RGBAAt(75, 25); got.A != 0 {
		t.Errorf("RGBAAt(75,25) = %v, want transparent", got)
	}
}

func TestDecodeMinStretches(t *testing.T) {
	img, err := DecodeMin([]byte(redSquare), 200)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got != image.Pt(200, 100) {
		t.Fatalf("size = %v, want 200x100", got)
	}
	if got := img.RGBAAt(50, 50); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("RGBAAt(50,50) = %v, want opaque red", got)
	}
}
