package thumbkit

// Patch is a partial layer update. Nil fields are left unchanged; fields
// that do not exist on the target's kind are ignored.
type Patch struct {
	X *float64 `json:"x,omitempty" msgpack:"x,omitempty"`
	Y *float64 `json:"y,omitempty" msgpack:"y,omitempty"`

	// Text layer fields.
	Text          *string   `json:"text,omitempty" msgpack:"text,omitempty"`
	FontFamily    *string   `json:"fontFamily,omitempty" msgpack:"fontFamily,omitempty"`
	FontSize      *float64  `json:"fontSize,omitempty" msgpack:"fontSize,omitempty"`
	FillKind      *FillKind `json:"fillKind,omitempty" msgpack:"fillKind,omitempty"`
	Color         *Color    `json:"color,omitempty" msgpack:"color,omitempty"`
	Color2        *Color    `json:"color2,omitempty" msgpack:"color2,omitempty"`
	Direction     *float64  `json:"direction,omitempty" msgpack:"direction,omitempty"`
	PatternID     *string   `json:"patternId,omitempty" msgpack:"patternId,omitempty"`
	StrokeColor   *Color    `json:"strokeColor,omitempty" msgpack:"strokeColor,omitempty"`
	StrokeWidth   *float64  `json:"strokeWidth,omitempty" msgpack:"strokeWidth,omitempty"`
	ShadowColor   *Color    `json:"shadowColor,omitempty" msgpack:"shadowColor,omitempty"`
	ShadowBlur    *float64  `json:"shadowBlur,omitempty" msgpack:"shadowBlur,omitempty"`
	ShadowOffsetX *float64  `json:"shadowOffsetX,omitempty" msgpack:"shadowOffsetX,omitempty"`
	ShadowOffsetY *float64  `json:"shadowOffsetY,omitempty" msgpack:"shadowOffsetY,omitempty"`

	// Visual layer fields.
	Content *string  `json:"content,omitempty" msgpack:"content,omitempty"`
	Size    *float64 `json:"size,omitempty" msgpack:"size,omitempty"`
}

// Ptr returns a pointer to v, for building patches.
func Ptr[T any](v T) *T { return &v }

// Apply returns l with the set fields of p merged in. The identity and
// kind of l never change.
func (p Patch) Apply(l Layer) Layer {
	switch v := l.(type) {
	case TextLayer:
		set(&v.X, p.X)
		set(&v.Y, p.Y)
		set(&v.Text, p.Text)
		set(&v.FontFamily, p.FontFamily)
		set(&v.FontSize, p.FontSize)
		set(&v.Fill.Kind, p.FillKind)
		set(&v.Fill.Color, p.Color)
		set(&v.Fill.Color2, p.Color2)
		set(&v.Fill.Direction, p.Direction)
		set(&v.Fill.PatternID, p.PatternID)
		set(&v.StrokeColor, p.StrokeColor)
		set(&v.StrokeWidth, p.StrokeWidth)
		set(&v.Shadow.Color, p.ShadowColor)
		set(&v.Shadow.Blur, p.ShadowBlur)
		set(&v.Shadow.OffsetX, p.ShadowOffsetX)
		set(&v.Shadow.OffsetY, p.ShadowOffsetY)
		return v
	case VisualLayer:
		set(&v.X, p.X)
		set(&v.Y, p.Y)
		set(&v.Content, p.Content)
		set(&v.Size, p.Size)
		return v
	default:
		panic(unknownLayer(l))
	}
}

// IsEmpty reports whether p changes nothing.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// MergeByID returns a copy of layers with p applied to the layer whose id
// is id. When no layer matches, layers is returned unchanged.
func MergeByID(layers []Layer, id LayerID, p Patch) []Layer {
	i := indexOf(layers, id)
	if i < 0 {
		return layers
	}
	out := make([]Layer, len(layers))
	copy(out, layers)
	out[i] = p.Apply(out[i])
	return out
}
