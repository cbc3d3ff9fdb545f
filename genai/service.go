package genai

import (
	"context"
	"image"
)

// Service generates and describes images.
//
// Methods that fail return an *Error whose Kind tells the caller how to
// react. EnhancePrompt never fails: on any error it returns its input.
type Service interface {
	// GenerateImage returns a raster image of a's dimensions.
	GenerateImage(ctx context.Context, prompt string, a AspectRatio) (image.Image, error)

	// GenerateVector returns SVG markup sized for a.
	GenerateVector(ctx context.Context, prompt string, a AspectRatio) ([]byte, error)

	// EnhancePrompt rewrites prompt into a more detailed English prompt.
	EnhancePrompt(ctx context.Context, prompt string) string

	// DescribeImage returns a description of an image suitable as a
	// prompt for recreating it.
	DescribeImage(ctx context.Context, data []byte, mimeType string) (string, error)
}
