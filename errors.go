package thumbkit

import "errors"

// Sentinel errors for the thumbkit package.
var (
	// ErrSurfaceUnavailable is returned when there is no drawable surface:
	// a nil or empty destination, or a missing base image.
	ErrSurfaceUnavailable = errors.New("thumbkit: surface unavailable")

	// ErrInvalidColor is returned when a CSS color string cannot be parsed.
	ErrInvalidColor = errors.New("thumbkit: invalid color")

	// ErrUnknownAsset is returned when an asset id is not in any catalog.
	ErrUnknownAsset = errors.New("thumbkit: unknown asset")
)
