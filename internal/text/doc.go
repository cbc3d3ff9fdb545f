// Package text shapes and rasterizes single-line text runs.
//
// A Face pairs two views of the same font file: go-text/typesetting for
// HarfBuzz shaping (advances, kerning, ligatures) and x/image/font/sfnt for
// glyph outlines and metrics. Shaped runs are turned into a Path, which is
// rasterized to coverage masks with FillMask and StrokeMask. The compositor
// paints colors, gradients and patterns through those masks.
//
// Color emoji fonts carry bitmap glyphs in sbix or CBDT strikes. Run.Draw
// scales those bitmaps into the glyph's em box and fills only the
// remaining outline glyphs. ShapeFallback splits text across a chain of
// faces by rune coverage.
//
// Measuring and drawing share the same Run, so hit testing and rendering
// agree on text extents to the pixel.
package text
