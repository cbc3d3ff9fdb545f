package filter

import (
	"image"
	"math"
)

// DropShadow describes a canvas-style shadow cast by a coverage mask.
// Magnitudes are in surface pixels.
type DropShadow struct {
	// Blur is the canvas shadowBlur value; the Gaussian sigma is Blur/2.
	Blur float64

	// OffsetX and OffsetY displace the shadow from the shape.
	OffsetX, OffsetY float64
}

// Sigma returns the Gaussian standard deviation for the shadow blur.
func (s DropShadow) Sigma() float64 {
	if s.Blur <= 0 {
		return 0
	}
	return s.Blur / 2
}

// Active reports whether the shadow would be visible at all.
func (s DropShadow) Active() bool {
	return s.Blur != 0 || s.OffsetX != 0 || s.OffsetY != 0
}

// Cast returns the shadow coverage of mask: the mask blurred by Sigma and
// translated by the offsets rounded to whole pixels. The returned mask's
// bounds already include the translation.
func (s DropShadow) Cast(mask *image.Alpha) *image.Alpha {
	out := BlurAlpha(mask, s.Sigma())
	if out == nil {
		return nil
	}
	d := image.Pt(int(math.Round(s.OffsetX)), int(math.Round(s.OffsetY)))
	out.Rect = out.Rect.Add(d)
	return out
}

// Margin returns how far Cast can move coverage outside the source mask.
func (s DropShadow) Margin() int {
	m := KernelRadius(s.Sigma())
	dx := int(math.Ceil(math.Abs(s.OffsetX)))
	dy := int(math.Ceil(math.Abs(s.OffsetY)))
	return m + max(dx, dy)
}
