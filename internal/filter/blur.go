package filter

import "image"

// BlurAlpha returns a Gaussian-blurred copy of mask.
//
// The result is larger than mask by KernelRadius(sigma) on every side so
// that no coverage is cut off; pixels outside mask count as zero. For
// sigma <= 0 the result is a copy of mask with the same bounds.
func BlurAlpha(mask *image.Alpha, sigma float64) *image.Alpha {
	if mask == nil {
		return nil
	}
	radius := KernelRadius(sigma)
	bounds := mask.Rect.Inset(-radius)
	dst := image.NewAlpha(bounds)
	if mask.Rect.Empty() {
		return dst
	}
	if radius == 0 {
		for y := mask.Rect.Min.Y; y < mask.Rect.Max.Y; y++ {
			copy(dst.Pix[dst.PixOffset(mask.Rect.Min.X, y):], mask.Pix[mask.PixOffset(mask.Rect.Min.X, y):mask.PixOffset(mask.Rect.Max.X, y)])
		}
		return dst
	}

	kernel := CachedGaussianKernel(sigma)
	w, h := bounds.Dx(), bounds.Dy()
	temp := make([]float32, w*h)

	// Horizontal pass: mask -> temp, over the expanded bounds.
	for y := mask.Rect.Min.Y; y < mask.Rect.Max.Y; y++ {
		ty := (y - bounds.Min.Y) * w
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var sum float32
			for k, weight := range kernel {
				sx := x + k - radius
				if sx < mask.Rect.Min.X || sx >= mask.Rect.Max.X {
					continue
				}
				sum += float32(mask.Pix[mask.PixOffset(sx, y)]) * weight
			}
			temp[ty+x-bounds.Min.X] = sum
		}
	}

	// Vertical pass: temp -> dst.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float32
			for k, weight := range kernel {
				sy := y + k - radius
				if sy < 0 || sy >= h {
					continue
				}
				sum += temp[sy*w+x] * weight
			}
			dst.Pix[y*dst.Stride+x] = roundUint8(sum)
		}
	}
	return dst
}
