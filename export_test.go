package thumbkit

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"testing"
)

func TestExportImageMatchesScaledRender(t *testing.T) {
	e, _ := warmEngine(t)
	bg := solidImage(800, 450, gray)
	layers := richLayers()

	got, err := e.ExportImage(bg, DefaultFilters(), layers, 400)
	if err != nil {
		t.Fatal(err)
	}
	if got.Rect.Size() != image.Pt(800, 450) {
		t.Fatalf("export size = %v, want the background's 800x450", got.Rect.Size())
	}

	want := image.NewRGBA(image.Rect(0, 0, 800, 450))
	if err := e.Render(want, bg, DefaultFilters(), layers, 2); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got.Pix, want.Pix) {
		t.Error("export differs from a 2x render at native size")
	}
}

func TestScaleTextDoublesPreset(t *testing.T) {
	p, ok := LookupPreset("ps_magma")
	if !ok {
		t.Fatal("ps_magma missing")
	}
	l := p.Patch.Apply(NewTextLayer(1)).(TextLayer)
	one, two := scaleText(l, 1), scaleText(l, 2)
	if two.FontSize != 2*one.FontSize || two.StrokeWidth != 2*one.StrokeWidth {
		t.Errorf("2x size, stroke = %v, %v, want %v, %v",
			two.FontSize, two.StrokeWidth, 2*one.FontSize, 2*one.StrokeWidth)
	}
	if two.Shadow.Blur != 40 || one.Shadow.Blur != 20 {
		t.Errorf("shadow blur = %v at 1x, %v at 2x, want 20, 40", one.Shadow.Blur, two.Shadow.Blur)
	}
}

func TestExportJPEG(t *testing.T) {
	e, _ := warmEngine(t)
	var buf bytes.Buffer
	bg := solidImage(320, 180, gray)
	if err := e.Export(&buf, bg, DefaultFilters(), richLayers(), 160); err != nil {
		t.Fatal(err)
	}
	img, err := jpeg.Decode(&buf)
	if err != nil {
		t.Fatalf("jpeg.Decode: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(320, 180) {
		t.Errorf("decoded size = %v, want 320x180", got)
	}
}

func TestExportErrors(t *testing.T) {
	e, _ := warmEngine(t)
	bg := solidImage(10, 10, gray)
	tests := []struct {
		name  string
		bg    image.Image
		width int
	}{
		{"no background", nil, 100},
		{"zero preview", bg, 0},
		{"negative preview", bg, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := e.Export(&buf, tt.bg, DefaultFilters(), nil, tt.width)
			if !errors.Is(err, ErrSurfaceUnavailable) {
				t.Errorf("Export = %v, want ErrSurfaceUnavailable", err)
			}
			if buf.Len() != 0 {
				t.Errorf("Export wrote %d bytes on error", buf.Len())
			}
		})
	}
}
