package text

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// MiterLimit is the stroke miter limit, the canvas default.
const MiterLimit = 10

// StrokeReach returns how far a stroke of width w can extend beyond the
// outline with miter joins.
func StrokeReach(w float64) int {
	if w <= 0 {
		return 0
	}
	return int(math.Ceil(w*MiterLimit/2)) + 1
}

// PathRect returns the integer pixel rectangle covering p's bounds grown
// by margin pixels on every side.
func PathRect(p *Path, margin int) image.Rectangle {
	if p.Empty() {
		return image.Rectangle{}
	}
	x0, y0, x1, y1 := p.Bounds()
	r := image.Rect(
		int(math.Floor(float64(x0))), int(math.Floor(float64(y0))),
		int(math.Ceil(float64(x1))), int(math.Ceil(float64(y1))),
	)
	return r.Inset(-margin)
}

// FillMask rasterizes the interior of p into a coverage mask with bounds r.
// Pixels of p outside r are discarded.
func FillMask(p *Path, r image.Rectangle) *image.Alpha {
	if p.Empty() || r.Empty() {
		return image.NewAlpha(r)
	}
	w, h := r.Dx(), r.Dy()
	mask := image.NewAlpha(image.Rect(0, 0, w, h))

	z := vector.NewRasterizer(w, h)
	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	for _, s := range p.Segments {
		a, b, c := s.Pts[0], s.Pts[1], s.Pts[2]
		switch s.Op {
		case OpMoveTo:
			z.MoveTo(a.X-ox, a.Y-oy)
		case OpLineTo:
			z.LineTo(a.X-ox, a.Y-oy)
		case OpQuadTo:
			z.QuadTo(a.X-ox, a.Y-oy, b.X-ox, b.Y-oy)
		case OpCubeTo:
			z.CubeTo(a.X-ox, a.Y-oy, b.X-ox, b.Y-oy, c.X-ox, c.Y-oy)
		case OpClose:
			z.ClosePath()
		}
	}
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	mask.Rect = mask.Rect.Add(r.Min)
	return mask
}

// StrokeMask rasterizes the outline of p stroked with the given width,
// butt caps and miter joins, into a coverage mask with bounds r.
func StrokeMask(p *Path, width float64, r image.Rectangle) *image.Alpha {
	if p.Empty() || r.Empty() || width <= 0 {
		return image.NewAlpha(r)
	}
	w, h := r.Dx(), r.Dy()
	mask := image.NewAlpha(image.Rect(0, 0, w, h))

	scanner := rasterx.NewScannerGV(w, h, mask, mask.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	dasher.SetStroke(
		fixed.Int26_6(width*64),
		fixed.Int26_6(MiterLimit*64),
		rasterx.ButtCap, nil, nil, rasterx.Miter,
		nil, 0)

	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	fp := func(q Point) fixed.Point26_6 {
		return fixed.Point26_6{
			X: fixed.Int26_6((float64(q.X) - ox) * 64),
			Y: fixed.Int26_6((float64(q.Y) - oy) * 64),
		}
	}

	open := false
	for _, s := range p.Segments {
		a, b, c := s.Pts[0], s.Pts[1], s.Pts[2]
		switch s.Op {
		case OpMoveTo:
			if open {
				dasher.Stop(false)
			}
			dasher.Start(fp(a))
			open = true
		case OpLineTo:
			dasher.Line(fp(a))
		case OpQuadTo:
			dasher.QuadBezier(fp(a), fp(b))
		case OpCubeTo:
			dasher.CubeBezier(fp(a), fp(b), fp(c))
		case OpClose:
			dasher.Stop(true)
			open = false
		}
	}
	if open {
		dasher.Stop(false)
	}

	dasher.SetColor(color.Alpha{A: 0xff})
	dasher.Draw()
	dasher.Clear()

	mask.Rect = mask.Rect.Add(r.Min)
	return mask
}

// Composite paints src through mask onto dst with source-over.
// src is sampled in dst coordinates.
func Composite(dst draw.Image, mask *image.Alpha, src image.Image) {
	if mask == nil {
		return
	}
	r := mask.Rect.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.DrawMask(dst, r, src, r.Min, mask, r.Min, draw.Over)
}
