package text

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/text/unicode/norm"
)

// Line is text laid out as consecutive runs, each shaped with the first
// face of a fallback chain that covers its runes.
type Line struct {
	Runs []*Run
	// Offsets holds the pen position of each run relative to the line
	// origin.
	Offsets []float64
	Advance float64
	// Metrics is the largest ascent and descent over the runs.
	Metrics Metrics
}

func (l *Line) add(r *Run) {
	l.Runs = append(l.Runs, r)
	l.Offsets = append(l.Offsets, l.Advance)
	l.Advance += r.Advance
	l.Metrics.Ascent = math.Max(l.Metrics.Ascent, r.Metrics.Ascent)
	l.Metrics.Descent = math.Max(l.Metrics.Descent, r.Metrics.Descent)
}

// Draw paints the line with its origin (the left end of the baseline) at
// (x, y). See Run.Draw.
func (l *Line) Draw(dst *image.RGBA, x, y float64, src image.Image) {
	for i, r := range l.Runs {
		r.Draw(dst, x+l.Offsets[i], y, src)
	}
}

// ShapeFallback shapes str across faces. Each rune goes to the first face
// that covers it; joiners, variation selectors and emoji modifiers stay
// with the rune before them. Runes no face covers go to faces[0].
func (s *Shaper) ShapeFallback(faces []*Face, str string, size float64) *Line {
	line := &Line{}
	if len(faces) == 0 {
		return line
	}
	runes := []rune(norm.NFC.String(str))

	start, cur := 0, -1
	for i, r := range runes {
		fi := cur
		if cur < 0 || !extendsCluster(r) {
			fi = coveringFace(faces, r)
		}
		if cur >= 0 && fi != cur {
			line.add(s.Shape(faces[cur], string(runes[start:i]), size))
			start = i
		}
		cur = fi
	}
	if cur >= 0 {
		line.add(s.Shape(faces[cur], string(runes[start:]), size))
	}
	return line
}

func coveringFace(faces []*Face, r rune) int {
	for i, f := range faces {
		if f.Covers(r) {
			return i
		}
	}
	return 0
}

// extendsCluster reports whether r modifies the preceding emoji rather
// than starting a new one.
func extendsCluster(r rune) bool {
	switch {
	case r == 0x200D, // zero width joiner
		r == 0x20E3, // combining keycap
		r >= 0xFE00 && r <= 0xFE0F,
		r >= 0x1F3FB && r <= 0x1F3FF, // skin tones
		r >= 0xE0020 && r <= 0xE007F: // tag sequences
		return true
	}
	return false
}

// Draw paints r onto dst with the run origin at (x, y). Glyphs with a
// color bitmap are scaled into their em box and drawn as is. The other
// glyphs are filled with src. Missing glyphs (.notdef) are skipped.
func (r *Run) Draw(dst *image.RGBA, x, y float64, src image.Image) {
	if r == nil || r.Face == nil {
		return
	}
	p := &Path{}
	for _, g := range r.Glyphs {
		if g.ID == 0 {
			logger().Debug("text: no glyph in face", "face", r.Face.name)
			continue
		}
		if img, ok := r.Face.Bitmap(g.ID, r.Size); ok {
			drawBitmap(dst, img, bitmapRect(img.Bounds(), r.Metrics, x+g.X, y+g.Y, g.Advance))
			continue
		}
		r.appendGlyph(p, g, x, y)
	}
	if p.Empty() {
		return
	}
	mask := FillMask(p, PathRect(p, 1).Intersect(dst.Rect))
	Composite(dst, mask, src)
}

// bitmapRect fits a bitmap of bounds b to the em box of a glyph whose
// origin is (x, y), keeping its aspect ratio and centering it on the
// advance.
func bitmapRect(b image.Rectangle, m Metrics, x, y, advance float64) image.Rectangle {
	h := m.Ascent + m.Descent
	if b.Empty() || h <= 0 {
		return image.Rectangle{}
	}
	w := h * float64(b.Dx()) / float64(b.Dy())
	left := x + (advance-w)/2
	top := y - m.Ascent
	return image.Rect(
		int(math.Round(left)), int(math.Round(top)),
		int(math.Round(left+w)), int(math.Round(top+h)),
	)
}

func drawBitmap(dst *image.RGBA, img image.Image, r image.Rectangle) {
	if r.Empty() || r.Intersect(dst.Rect).Empty() {
		return
	}
	xdraw.CatmullRom.Scale(dst, r, img, img.Bounds(), draw.Over, nil)
}
