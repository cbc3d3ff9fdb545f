package thumbkit

import (
	"image"
	"image/color"
	"time"
)

// testFonts is shared so shaped runs are cached across tests.
var testFonts = NewFontCatalog()

// solidImage returns a w x h image filled with c.
func solidImage(w, h int, c Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	p := premul(c)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = p.R, p.G, p.B, p.A
	}
	return img
}

// gray is an opaque mid gray used as a neutral background.
var gray = Color{100, 100, 100, 255}

// boundsWhere returns the smallest rectangle holding every pixel of img
// for which keep is true.
func boundsWhere(img *image.RGBA, keep func(color.RGBA) bool) image.Rectangle {
	var r image.Rectangle
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			if keep(img.RGBAAt(x, y)) {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func differsFrom(c Color) func(color.RGBA) bool {
	p := premul(c)
	return func(got color.RGBA) bool { return got != p }
}

func isColor(c Color) func(color.RGBA) bool {
	p := premul(c)
	return func(got color.RGBA) bool { return got == p }
}

// stoppedClock always returns the same instant.
func stoppedClock(ms int64) func() time.Time {
	t := time.UnixMilli(ms)
	return func() time.Time { return t }
}

// plainText returns a default text layer without stroke or shadow.
func plainText(id LayerID) TextLayer {
	l := NewTextLayer(id)
	l.StrokeWidth = 0
	return l
}

// redSticker is a small opaque red square SVG.
const redSticker = `<svg viewBox="0 0 10 10" xmlns="http://www.w3.org/2000/svg"><rect width="10" height="10" fill="#ff0000"/></svg>`

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
