package thumbkit

import (
	"image"
	"image/color"

	"github.com/gogpu/thumbkit/internal/filter"
	"github.com/gogpu/thumbkit/internal/text"
)

// premul converts a straight-alpha color to a premultiplied color.RGBA.
func premul(c Color) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8((uint32(c.R)*a + 127) / 255),
		G: uint8((uint32(c.G)*a + 127) / 255),
		B: uint8((uint32(c.B)*a + 127) / 255),
		A: c.A,
	}
}

// tiled materializes tile repeated over r, with a tile corner at origin.
func tiled(r image.Rectangle, tile *image.RGBA, origin image.Point) *image.RGBA {
	img := image.NewRGBA(r)
	tb := tile.Bounds()
	tw, th := tb.Dx(), tb.Dy()
	if tw == 0 || th == 0 {
		return img
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		ty := tb.Min.Y + mod(y-origin.Y, th)
		for x := r.Min.X; x < r.Max.X; x++ {
			tx := tb.Min.X + mod(x-origin.X, tw)
			si := tile.PixOffset(tx, ty)
			di := img.PixOffset(x, y)
			copy(img.Pix[di:di+4], tile.Pix[si:si+4])
		}
	}
	return img
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// painter draws coverage masks onto a surface, casting a shadow under
// each paint when one is configured.
type painter struct {
	dst    *image.RGBA
	shadow filter.DropShadow
	color  color.RGBA
	active bool
}

// newPainter uses the color and activity of s with the scaled
// magnitudes of ds.
func newPainter(dst *image.RGBA, s Shadow, ds filter.DropShadow) painter {
	return painter{
		dst:    dst,
		shadow: ds,
		color:  premul(s.Color.Or(DefaultShadowColor)),
		active: s.Active(),
	}
}

// clip returns the region masks must cover: the surface, grown by how far
// a shadow can pull coverage in from outside it.
func (p painter) clip() image.Rectangle {
	if !p.active {
		return p.dst.Rect
	}
	return p.dst.Rect.Inset(-p.shadow.Margin())
}

// paint composites src through mask, shadow first.
func (p painter) paint(mask *image.Alpha, src image.Image) {
	if mask == nil || mask.Rect.Empty() {
		return
	}
	if p.active {
		text.Composite(p.dst, p.shadow.Cast(mask), image.NewUniform(p.color))
	}
	text.Composite(p.dst, mask, src)
}
