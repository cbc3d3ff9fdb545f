package thumbkit

import (
	"image"
	"math"
	"slices"
	"sort"
)

// ExtendMode defines how a gradient continues past its end stops.
type ExtendMode int

const (
	// ExtendPad repeats the edge colors beyond the gradient (default).
	ExtendPad ExtendMode = iota
	// ExtendRepeat restarts the gradient every period.
	ExtendRepeat
	// ExtendReflect mirrors the gradient every other period.
	ExtendReflect
)

// ColorStop is a color at an offset, 0 to 1, along a gradient.
type ColorStop struct {
	Offset float64
	Color  Color
}

// LinearGradient is a color transition between two points. Colors are
// interpolated in straight-alpha sRGB, the way canvas gradients blend.
//
//	g := thumbkit.NewLinearGradient(0, 0, 0, 100).
//	    AddColorStop(0, thumbkit.Hex("#FFD700")).
//	    AddColorStop(1, thumbkit.Hex("#B8860B"))
type LinearGradient struct {
	Start  Point
	End    Point
	Stops  []ColorStop
	Extend ExtendMode
}

// NewLinearGradient creates a gradient from (x0, y0) to (x1, y1) with no
// stops and ExtendPad.
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{Start: Pt(x0, y0), End: Pt(x1, y1)}
}

// AddColorStop adds a stop at offset and returns g for chaining.
func (g *LinearGradient) AddColorStop(offset float64, c Color) *LinearGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// ColorAt returns the color at (x, y), the projection of the point onto
// the gradient line. A zero-length gradient takes its first stop.
func (g *LinearGradient) ColorAt(x, y float64) Color {
	s := *g
	s.Stops = sortedStops(g.Stops)
	return s.at(x, y)
}

// Fill materializes g over r, sampling pixel centers.
func (g *LinearGradient) Fill(r image.Rectangle) *image.RGBA {
	s := *g
	s.Stops = sortedStops(g.Stops)
	img := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, premul(s.at(float64(x)+0.5, float64(y)+0.5)))
		}
	}
	return img
}

// at is ColorAt for a gradient whose stops are sorted.
func (g *LinearGradient) at(x, y float64) Color {
	dx, dy := g.End.X-g.Start.X, g.End.Y-g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		if len(g.Stops) == 0 {
			return Transparent
		}
		return g.Stops[0].Color
	}
	t := ((x-g.Start.X)*dx + (y-g.Start.Y)*dy) / lengthSq
	return colorAtOffset(g.Stops, t, g.Extend)
}

func sortedStops(stops []ColorStop) []ColorStop {
	if slices.IsSortedFunc(stops, compareStops) {
		return stops
	}
	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, compareStops)
	return sorted
}

func compareStops(a, b ColorStop) int {
	switch {
	case a.Offset < b.Offset:
		return -1
	case a.Offset > b.Offset:
		return 1
	}
	return 0
}

// applyExtend maps t into [0, 1] according to mode.
func applyExtend(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = math.Max(0, math.Min(1, t))
	}
	return t
}

// colorAtOffset interpolates sorted stops at t.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode) Color {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}
	t = applyExtend(t, mode)

	i := sort.Search(len(stops), func(i int) bool { return stops[i].Offset >= t })
	if i == 0 {
		return stops[0].Color
	}
	if i == len(stops) {
		return stops[len(stops)-1].Color
	}
	a, b := stops[i-1], stops[i]
	if b.Offset == a.Offset {
		return a.Color
	}
	return a.Color.Lerp(b.Color, (t-a.Offset)/(b.Offset-a.Offset))
}
