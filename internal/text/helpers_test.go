package text

import (
	"image"
	"testing"
)

var testCatalog = NewCatalog()

func testFace(t *testing.T) *Face {
	t.Helper()
	return testCatalog.Lookup(FamilyGo)
}

func coverage(m *image.Alpha) int {
	n := 0
	for _, v := range m.Pix {
		n += int(v)
	}
	return n
}

func squarePath(x, y, s float32) *Path {
	p := &Path{}
	p.MoveTo(Point{x, y})
	p.LineTo(Point{x + s, y})
	p.LineTo(Point{x + s, y + s})
	p.LineTo(Point{x, y + s})
	p.Close()
	return p
}
