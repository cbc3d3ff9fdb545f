// Package svg decodes SVG markup into rasters.
//
// Decoding is best effort: elements the decoder does not support, such as
// filters, are skipped and the rest of the document still draws.
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Size browsers assume for an SVG image that declares no dimensions.
const (
	DefaultWidth  = 300
	DefaultHeight = 150
)

// ErrEmptyMarkup is returned for empty input.
var ErrEmptyMarkup = errors.New("svg: empty markup")

// Document is parsed SVG markup.
type Document struct {
	icon *oksvg.SvgIcon
}

// Parse parses markup.
func Parse(markup []byte) (*Document, error) {
	if len(bytes.TrimSpace(markup)) == 0 {
		return nil, ErrEmptyMarkup
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(markup), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("svg: %w", err)
	}
	return &Document{icon: icon}, nil
}

// Size returns the declared size of the document: its viewBox, or
// DefaultWidth x DefaultHeight when none is declared.
func (d *Document) Size() (w, h float64) {
	w, h = d.icon.ViewBox.W, d.icon.ViewBox.H
	if w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}

// NaturalSize returns the declared size rounded to whole pixels.
func (d *Document) NaturalSize() image.Point {
	w, h := d.Size()
	return image.Pt(max(1, int(math.Round(w))), max(1, int(math.Round(h))))
}

// MinSize returns the declared size scaled up, preserving aspect ratio,
// until the longer side is at least side pixels. Documents already that
// large keep their natural size.
func (d *Document) MinSize(side int) image.Point {
	w, h := d.Size()
	long := max(w, h)
	if long >= float64(side) {
		return d.NaturalSize()
	}
	k := float64(side) / long
	return image.Pt(max(1, int(math.Round(w*k))), max(1, int(math.Round(h*k))))
}

// Rasterize draws the document stretched to size onto a transparent
// raster. A Document must not be rasterized concurrently.
func (d *Document) Rasterize(size image.Point) *image.RGBA {
	w, h := max(1, size.X), max(1, size.Y)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	vbw, vbh := d.Size()
	saved := d.icon.ViewBox
	d.icon.ViewBox.W, d.icon.ViewBox.H = vbw, vbh
	d.icon.SetTarget(0, 0, float64(w), float64(h))

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	d.icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	d.icon.ViewBox = saved
	return img
}

// Decode parses markup and rasterizes it at its natural size.
func Decode(markup []byte) (*image.RGBA, error) {
	d, err := Parse(markup)
	if err != nil {
		return nil, err
	}
	return d.Rasterize(d.NaturalSize()), nil
}

// DecodeMin parses markup and rasterizes it with the longer side at least
// side pixels.
func DecodeMin(markup []byte, side int) (*image.RGBA, error) {
	d, err := Parse(markup)
	if err != nil {
		return nil, err
	}
	return d.Rasterize(d.MinSize(side)), nil
}
