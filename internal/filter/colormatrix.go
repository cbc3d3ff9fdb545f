package filter

import "image"

// ColorMatrix is a 4x5 color transformation matrix in row-major order:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// Channels are straight-alpha values in [0, 255]; the fifth column is a
// bias in the same range.
type ColorMatrix [20]float32

// Identity returns the matrix that leaves every pixel unchanged.
func Identity() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Brightness returns the CSS brightness() matrix.
// factor: 0 = black, 1 = unchanged, 1.5 = 150%.
func Brightness(factor float32) ColorMatrix {
	return ColorMatrix{
		factor, 0, 0, 0, 0,
		0, factor, 0, 0, 0,
		0, 0, factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Contrast returns the CSS contrast() matrix: (c - 0.5) * factor + 0.5.
func Contrast(factor float32) ColorMatrix {
	offset := 127.5 * (1 - factor)
	return ColorMatrix{
		factor, 0, 0, 0, offset,
		0, factor, 0, 0, offset,
		0, 0, factor, 0, offset,
		0, 0, 0, 1, 0,
	}
}

// Saturate returns the CSS saturate() matrix.
// factor: 0 = grayscale, 1 = unchanged, 2 = oversaturated.
func Saturate(factor float32) ColorMatrix {
	s := factor
	return ColorMatrix{
		0.213 + 0.787*s, 0.715 - 0.715*s, 0.072 - 0.072*s, 0, 0,
		0.213 - 0.213*s, 0.715 + 0.285*s, 0.072 - 0.072*s, 0, 0,
		0.213 - 0.213*s, 0.715 - 0.715*s, 0.072 + 0.928*s, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// IsIdentity reports whether m leaves every pixel unchanged.
func (m ColorMatrix) IsIdentity() bool {
	id := Identity()
	for i := range m {
		d := m[i] - id[i]
		if d > 1e-6 || d < -1e-6 {
			return false
		}
	}
	return true
}

// transform applies m to a straight-alpha pixel and clamps the result.
func (m *ColorMatrix) transform(r, g, b, a float32) (float32, float32, float32, float32) {
	nr := m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]
	ng := m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]
	nb := m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]
	na := m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]
	return clamp255(nr), clamp255(ng), clamp255(nb), clamp255(na)
}

// ApplyChain applies the matrices in order to the pixels of img inside r.
// Like a CSS filter list, each step's output is clamped before the next
// step reads it. img holds premultiplied pixels; they are unpremultiplied
// for the transform and premultiplied again on write.
func ApplyChain(img *image.RGBA, r image.Rectangle, chain ...ColorMatrix) {
	if img == nil || len(chain) == 0 {
		return
	}
	r = r.Intersect(img.Rect)
	if r.Empty() {
		return
	}

	active := chain[:0:0]
	for _, m := range chain {
		if !m.IsIdentity() {
			active = append(active, m)
		}
	}
	if len(active) == 0 {
		return
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			p := img.Pix[row : row+4 : row+4]
			row += 4

			a := float32(p[3])
			if a == 0 {
				continue
			}
			cr := float32(p[0]) * 255 / a
			cg := float32(p[1]) * 255 / a
			cb := float32(p[2]) * 255 / a

			for i := range active {
				cr, cg, cb, a = active[i].transform(cr, cg, cb, a)
			}

			p[0] = roundUint8(cr * a / 255)
			p[1] = roundUint8(cg * a / 255)
			p[2] = roundUint8(cb * a / 255)
			p[3] = roundUint8(a)
		}
	}
}

func clamp255(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// roundUint8 clamps v to [0, 255] and rounds to the nearest integer.
func roundUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
