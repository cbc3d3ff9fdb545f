package filter

import (
	"image"
	"image/color"
)

// solidRGBA returns a w x h surface filled with c.
func solidRGBA(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

// squareMask returns a mask with a fully covered square of side n at
// (x, y) inside a w x h rect.
func squareMask(w, h, x, y, n int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	for j := y; j < y+n; j++ {
		for i := x; i < x+n; i++ {
			m.SetAlpha(i, j, color.Alpha{A: 255})
		}
	}
	return m
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func sumAlpha(m *image.Alpha) int {
	s := 0
	for _, v := range m.Pix {
		s += int(v)
	}
	return s
}
