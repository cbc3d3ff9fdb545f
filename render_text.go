package thumbkit

import (
	"image"

	"github.com/gogpu/thumbkit/internal/filter"
	"github.com/gogpu/thumbkit/internal/text"
)

// textMetrics are the pixel magnitudes of a text layer at a render scale.
type textMetrics struct {
	FontSize    float64
	StrokeWidth float64
	Shadow      filter.DropShadow
}

func scaleText(l TextLayer, scale float64) textMetrics {
	return textMetrics{
		FontSize:    l.FontSize * scale,
		StrokeWidth: l.StrokeWidth * scale,
		Shadow: filter.DropShadow{
			Blur:    l.Shadow.Blur * scale,
			OffsetX: l.Shadow.OffsetX * scale,
			OffsetY: l.Shadow.OffsetY * scale,
		},
	}
}

// drawText paints a text layer: its stroke first, then its fill, each
// casting its own shadow when the layer has one. The anchor is the top of
// the em box at the left edge of the run.
func (e *Engine) drawText(dst *image.RGBA, l TextLayer, scale float64) {
	m := scaleText(l, scale)
	if m.FontSize <= 0 || l.Text == "" {
		return
	}
	run := e.fonts.textRun(l.FontFamily, l.Text, m.FontSize)
	ax, ay := anchor(dst, l.X, l.Y)
	path := run.Outline(ax, ay+run.Metrics.Ascent)
	if path.Empty() {
		return
	}

	p := newPainter(dst, l.Shadow, m.Shadow)
	clip := p.clip()

	if w := m.StrokeWidth; w > 0 {
		r := text.PathRect(path, text.StrokeReach(w)).Intersect(clip)
		p.paint(text.StrokeMask(path, w, r), image.NewUniform(premul(l.StrokeColor)))
	}

	r := text.PathRect(path, 1).Intersect(clip)
	if r.Empty() {
		return
	}
	p.paint(text.FillMask(path, r), e.fillSource(dst, l, r, ay, m.FontSize))
}

// fillSource returns the paint for a text fill over r.
func (e *Engine) fillSource(dst *image.RGBA, l TextLayer, r image.Rectangle, top, size float64) image.Image {
	switch l.Fill.Kind {
	case FillGradient:
		// Always vertical across one font size, whatever the direction.
		return NewLinearGradient(0, top, 0, top+size).
			AddColorStop(0, l.Fill.Color).
			AddColorStop(1, l.Fill.Color2.Or(Black)).
			Fill(r)
	case FillPattern:
		if tile, ok := e.assets.Get(l.Fill.PatternID); ok {
			return tiled(r, tile, dst.Rect.Min)
		}
		Logger().Debug("thumbkit: pattern not ready, using solid fill", "pattern", l.Fill.PatternID)
	}
	return image.NewUniform(premul(l.Fill.Color))
}
