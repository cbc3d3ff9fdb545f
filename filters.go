package thumbkit

import "github.com/gogpu/thumbkit/internal/filter"

// Filters are CSS-style adjustments applied to the background image only.
// Values are percentages; 100 leaves the image unchanged.
type Filters struct {
	Brightness float64 `json:"brightness" msgpack:"brightness"`
	Contrast   float64 `json:"contrast" msgpack:"contrast"`
	Saturation float64 `json:"saturation" msgpack:"saturation"`
}

// Slider ranges offered by the editor.
const (
	FilterMin = 0
	FilterMax = 200
)

// DefaultFilters returns the identity filters.
func DefaultFilters() Filters {
	return Filters{Brightness: 100, Contrast: 100, Saturation: 100}
}

// IsIdentity reports whether f leaves the background unchanged.
func (f Filters) IsIdentity() bool {
	return f == DefaultFilters()
}

// chain returns the color matrices in CSS application order.
func (f Filters) chain() []filter.ColorMatrix {
	return []filter.ColorMatrix{
		filter.Brightness(float32(f.Brightness / 100)),
		filter.Contrast(float32(f.Contrast / 100)),
		filter.Saturate(float32(f.Saturation / 100)),
	}
}
