package text

import "math"

// Point is a 2D point in pixels.
type Point struct {
	X, Y float32
}

// Op is a path segment operation.
type Op uint8

// Path segment operations.
const (
	OpMoveTo Op = iota
	OpLineTo
	OpQuadTo
	OpCubeTo
	OpClose
)

// Segment is one path element. Pts holds the control and end points:
// one for MoveTo and LineTo, two for QuadTo, three for CubeTo, none for
// Close.
type Segment struct {
	Op  Op
	Pts [3]Point
}

// Path is a sequence of closed contours built from glyph outlines.
type Path struct {
	Segments []Segment
}

func (p *Path) MoveTo(a Point) {
	p.Segments = append(p.Segments, Segment{Op: OpMoveTo, Pts: [3]Point{a}})
}

func (p *Path) LineTo(a Point) {
	p.Segments = append(p.Segments, Segment{Op: OpLineTo, Pts: [3]Point{a}})
}

func (p *Path) QuadTo(b, c Point) {
	p.Segments = append(p.Segments, Segment{Op: OpQuadTo, Pts: [3]Point{b, c}})
}

func (p *Path) CubeTo(b, c, d Point) {
	p.Segments = append(p.Segments, Segment{Op: OpCubeTo, Pts: [3]Point{b, c, d}})
}

func (p *Path) Close() {
	p.Segments = append(p.Segments, Segment{Op: OpClose})
}

// Empty reports whether p has no drawable segments.
func (p *Path) Empty() bool {
	return p == nil || len(p.Segments) == 0
}

// Bounds returns the control-point bounding box of p as
// (minX, minY, maxX, maxY). It is conservative: curves never leave the
// hull of their control points. Empty paths return all zeros.
func (p *Path) Bounds() (minX, minY, maxX, maxY float32) {
	if p.Empty() {
		return 0, 0, 0, 0
	}
	minX, minY = math.MaxFloat32, math.MaxFloat32
	maxX, maxY = -math.MaxFloat32, -math.MaxFloat32
	for _, s := range p.Segments {
		n := pointCount(s.Op)
		for _, q := range s.Pts[:n] {
			minX = min(minX, q.X)
			minY = min(minY, q.Y)
			maxX = max(maxX, q.X)
			maxY = max(maxY, q.Y)
		}
	}
	if minX > maxX {
		return 0, 0, 0, 0
	}
	return minX, minY, maxX, maxY
}

func pointCount(op Op) int {
	switch op {
	case OpMoveTo, OpLineTo:
		return 1
	case OpQuadTo:
		return 2
	case OpCubeTo:
		return 3
	default:
		return 0
	}
}
