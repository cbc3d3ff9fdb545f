// Package filter provides the pixel filters used by the compositor:
//   - CSS filter-function color matrices (brightness, contrast, saturate)
//     applied to the background image
//   - separable Gaussian blur of coverage masks
//   - drop shadows cast by text coverage masks
//
// Filters operate on standard library image types: color matrices on
// premultiplied *image.RGBA surfaces, blur and shadow on *image.Alpha
// coverage masks.
package filter
