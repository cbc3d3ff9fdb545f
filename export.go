package thumbkit

import (
	"fmt"
	"image"
	"image/jpeg"
	"io"
)

// Export settings.
const (
	ExportFilename = "thumbnail_editada.jpg"
	ExportQuality  = 90
)

// ExportImage renders the composition at the native resolution of bg.
//
// Layers are authored on a preview surface previewWidth pixels wide; pixel
// magnitudes are scaled by bgWidth/previewWidth so the export looks like
// an enlarged preview.
func (e *Engine) ExportImage(bg image.Image, f Filters, layers []Layer, previewWidth int) (*image.RGBA, error) {
	if bg == nil || bg.Bounds().Empty() {
		return nil, fmt.Errorf("%w: no base image", ErrSurfaceUnavailable)
	}
	if previewWidth <= 0 {
		return nil, fmt.Errorf("%w: preview width %d", ErrSurfaceUnavailable, previewWidth)
	}
	size := bg.Bounds().Size()
	dst := image.NewRGBA(image.Rectangle{Max: size})
	scale := float64(size.X) / float64(previewWidth)
	if err := e.Render(dst, bg, f, layers, scale); err != nil {
		return nil, err
	}
	return dst, nil
}

// Export renders like ExportImage and writes a JPEG at ExportQuality.
// Transparent pixels flatten to black.
func (e *Engine) Export(w io.Writer, bg image.Image, f Filters, layers []Layer, previewWidth int) error {
	img, err := e.ExportImage(bg, f, layers, previewWidth)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: ExportQuality}); err != nil {
		return fmt.Errorf("thumbkit: encode export: %w", err)
	}
	Logger().Info("thumbkit: exported", "size", img.Rect.Size(), "layers", len(layers))
	return nil
}
