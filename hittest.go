package thumbkit

import "image"

// Point is a position on the surface in pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Rect is an axis-aligned rectangle in surface pixels.
type Rect struct {
	Min, Max Point
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// HitTester maps surface points to layers. It measures text with the same
// shaped runs the Engine draws, so a layer is hit exactly where it
// appears.
type HitTester struct {
	fonts *FontCatalog
}

// NewHitTester creates a hit tester. A nil fonts uses a fresh FontCatalog.
func NewHitTester(fonts *FontCatalog) *HitTester {
	if fonts == nil {
		fonts = NewFontCatalog()
	}
	return &HitTester{fonts: fonts}
}

// LayerBounds returns the selectable rectangle of l on a surface of the
// given size at scale.
//
// Text covers the measured run width and one font size of height below
// its anchor. Visual layers cover their square footprint centered on the
// anchor.
func (h *HitTester) LayerBounds(l Layer, size image.Point, scale float64) Rect {
	w, ht := float64(size.X), float64(size.Y)
	switch v := l.(type) {
	case TextLayer:
		x, y := v.X/100*w, v.Y/100*ht
		fs := v.FontSize * scale
		width := 0.0
		if fs > 0 && v.Text != "" {
			width = h.fonts.textRun(v.FontFamily, v.Text, fs).Advance
		}
		return Rect{Min: Point{x, y}, Max: Point{x + width, y + fs}}
	case VisualLayer:
		cx, cy := v.X/100*w, v.Y/100*ht
		half := v.Size / 100 * w / 2
		return Rect{Min: Point{cx - half, cy - half}, Max: Point{cx + half, cy + half}}
	default:
		panic(unknownLayer(l))
	}
}

// HitTest returns the topmost layer containing pt. Layers are checked from
// the end of the list, which is painted last.
func (h *HitTester) HitTest(pt Point, layers []Layer, size image.Point, scale float64) (Layer, bool) {
	for i := len(layers) - 1; i >= 0; i-- {
		if h.LayerBounds(layers[i], size, scale).Contains(pt) {
			return layers[i], true
		}
	}
	return nil, false
}
