package thumbkit

import (
	"image"
	"image/draw"
	"math"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/thumbkit/internal/filter"
)

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	scaler xdraw.Scaler
}

// WithScaler sets the resampler used for the background and stickers.
// The default is bilinear.
func WithScaler(s xdraw.Scaler) EngineOption {
	return func(o *engineOptions) {
		if s != nil {
			o.scaler = s
		}
	}
}

// Engine rasterizes a background and a layer list onto a surface.
//
// Rendering is deterministic: with the same fonts, a warmed asset cache
// and unchanged input, two renders produce identical pixels.
type Engine struct {
	fonts  *FontCatalog
	assets *AssetCache
	scaler xdraw.Scaler
}

// NewEngine creates an engine. A nil fonts uses a fresh FontCatalog; a nil
// assets uses an empty cache (patterns fall back to their solid color and
// stickers are skipped).
func NewEngine(fonts *FontCatalog, assets *AssetCache, opts ...EngineOption) *Engine {
	o := engineOptions{scaler: xdraw.BiLinear}
	for _, opt := range opts {
		opt(&o)
	}
	if fonts == nil {
		fonts = NewFontCatalog()
	}
	if assets == nil {
		assets = NewAssetCache()
	}
	return &Engine{fonts: fonts, assets: assets, scaler: o.scaler}
}

// Render draws bg, filtered by f, and then layers bottom to top onto dst.
//
// bg is stretched to fill dst. Layer positions are percentages of dst's
// size; pixel magnitudes (font size, stroke width, shadow) are multiplied
// by scale. Filters apply to the background only.
//
// The only error is ErrSurfaceUnavailable, for a nil or empty dst; nothing
// is drawn in that case. Missing assets and unknown fonts degrade
// silently.
func (e *Engine) Render(dst *image.RGBA, bg image.Image, f Filters, layers []Layer, scale float64) error {
	if dst == nil || dst.Rect.Empty() {
		Logger().Warn("thumbkit: render skipped", "err", ErrSurfaceUnavailable)
		return ErrSurfaceUnavailable
	}
	start := time.Now()

	clear(dst.Pix)
	e.drawBackground(dst, bg, f)
	for _, l := range layers {
		switch v := l.(type) {
		case TextLayer:
			e.drawText(dst, v, scale)
		case VisualLayer:
			e.drawVisual(dst, v, scale)
		default:
			panic(unknownLayer(l))
		}
	}

	Logger().Debug("thumbkit: render",
		"size", dst.Rect.Size(), "layers", len(layers),
		"scale", scale, "elapsed", time.Since(start))
	return nil
}

func (e *Engine) drawBackground(dst *image.RGBA, bg image.Image, f Filters) {
	if bg == nil || bg.Bounds().Empty() {
		return
	}
	e.scaler.Scale(dst, dst.Rect, bg, bg.Bounds(), draw.Src, nil)
	if !f.IsIdentity() {
		filter.ApplyChain(dst, dst.Rect, f.chain()...)
	}
}

// anchor converts percentage coordinates to surface pixels.
func anchor(dst *image.RGBA, x, y float64) (float64, float64) {
	w, h := float64(dst.Rect.Dx()), float64(dst.Rect.Dy())
	return float64(dst.Rect.Min.X) + x/100*w, float64(dst.Rect.Min.Y) + y/100*h
}

func (e *Engine) drawVisual(dst *image.RGBA, l VisualLayer, scale float64) {
	side := l.Size / 100 * float64(dst.Rect.Dx())
	if side <= 0 {
		return
	}
	cx, cy := anchor(dst, l.X, l.Y)

	switch l.Kind {
	case VisualEmoji:
		line := e.fonts.emojiLine(l.Content, side)
		// Centered horizontally and on the middle of the em box.
		x := cx - line.Advance/2
		baseline := cy + (line.Metrics.Ascent-line.Metrics.Descent)/2
		line.Draw(dst, x, baseline, image.Black)
	case VisualSticker:
		img, ok := e.assets.Get(l.Content)
		if !ok {
			return
		}
		r := image.Rect(
			int(math.Round(cx-side/2)), int(math.Round(cy-side/2)),
			int(math.Round(cx+side/2)), int(math.Round(cy+side/2)),
		)
		e.scaler.Scale(dst, r, img, img.Bounds(), draw.Over, nil)
	}
}
