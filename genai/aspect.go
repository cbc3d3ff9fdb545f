package genai

import "image"

// AspectRatio is the shape of a generated image.
type AspectRatio string

const (
	Aspect16x9 AspectRatio = "16:9"
	Aspect9x16 AspectRatio = "9:16"
	Aspect1x1  AspectRatio = "1:1"
	Aspect4x3  AspectRatio = "4:3"
)

// AspectRatios returns the ratios offered by the generator, YouTube first.
func AspectRatios() []AspectRatio {
	return []AspectRatio{Aspect16x9, Aspect9x16, Aspect1x1, Aspect4x3}
}

// Dimensions returns the pixel size generated for a. Unknown ratios get
// the 16:9 size.
func (a AspectRatio) Dimensions() image.Point {
	switch a {
	case Aspect9x16:
		return image.Pt(1080, 1920)
	case Aspect1x1:
		return image.Pt(1080, 1080)
	case Aspect4x3:
		return image.Pt(1440, 1080)
	default:
		return image.Pt(1920, 1080)
	}
}
