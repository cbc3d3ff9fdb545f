package thumbkit

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/gogpu/thumbkit/internal/svg"
)

// BorderType selects the frame drawn around a generated image.
type BorderType string

const (
	BorderNone     BorderType = "none"
	BorderSolid    BorderType = "solid"
	BorderGradient BorderType = "gradient"
)

// Border width range offered by the generator UI.
const (
	BorderWidthMin = 2
	BorderWidthMax = 50
)

// BorderOptions configures Frame.
type BorderOptions struct {
	Type BorderType

	// Color1 fills a solid frame and starts a gradient frame.
	Color1 Color

	// Color2 ends a gradient frame.
	Color2 Color

	// Width is the frame thickness in pixels on each side.
	Width int

	// Backing is painted under transparent vector artwork before framing.
	// The zero value means black.
	Backing Color
}

// DefaultBorderOptions returns the generator defaults: no frame, with
// indigo to pink colors and a 16px width ready for when one is chosen.
func DefaultBorderOptions() BorderOptions {
	return BorderOptions{
		Type:   BorderNone,
		Color1: Hex("#4F46E5"),
		Color2: Hex("#EC4899"),
		Width:  16,
	}
}

// Frame returns base surrounded by a border of opts.Width pixels. The
// result is (W+2w) x (H+2w) with base drawn at (w, w). A gradient frame
// runs diagonally from the top-left to the bottom-right corner.
//
// BorderNone or a non-positive width returns base itself.
func Frame(base image.Image, opts BorderOptions) (image.Image, error) {
	if base == nil || base.Bounds().Empty() {
		return nil, fmt.Errorf("%w: no base image", ErrSurfaceUnavailable)
	}
	if opts.Type == BorderNone || opts.Type == "" || opts.Width <= 0 {
		return base, nil
	}

	w := opts.Width
	b := base.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()+2*w, b.Dy()+2*w))

	switch opts.Type {
	case BorderSolid:
		draw.Draw(dst, dst.Rect, image.NewUniform(premul(opts.Color1)), image.Point{}, draw.Src)
	case BorderGradient:
		// Top-left corner to bottom-right corner.
		r := dst.Rect
		g := NewLinearGradient(float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y)).
			AddColorStop(0, opts.Color1).
			AddColorStop(1, opts.Color2)
		draw.Draw(dst, dst.Rect, g.Fill(dst.Rect), image.Point{}, draw.Src)
	default:
		return nil, fmt.Errorf("thumbkit: unknown border type %q", opts.Type)
	}

	draw.Draw(dst, b.Sub(b.Min).Add(image.Pt(w, w)), base, b.Min, draw.Over)
	return dst, nil
}

// FrameVector rasterizes SVG markup at its declared size over an opaque
// backing and frames the result.
func FrameVector(markup []byte, opts BorderOptions) (image.Image, error) {
	art, err := svg.Decode(markup)
	if err != nil {
		return nil, fmt.Errorf("thumbkit: vector thumbnail: %w", err)
	}
	flat := image.NewRGBA(art.Rect)
	draw.Draw(flat, flat.Rect, image.NewUniform(premul(opts.Backing.Or(Black))), image.Point{}, draw.Src)
	draw.Draw(flat, flat.Rect, art, art.Rect.Min, draw.Over)
	return Frame(flat, opts)
}
