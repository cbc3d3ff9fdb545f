package thumbkit

import "fmt"

// LayerID identifies a layer for the lifetime of an editor.
type LayerID int64

// Layer is one element of the composition. The list order is the z-order:
// index 0 is painted first (bottom).
//
// Layer is implemented by exactly TextLayer and VisualLayer.
type Layer interface {
	// LayerID returns the layer's identifier.
	LayerID() LayerID

	// Position returns the anchor as percentages of the surface size.
	Position() (x, y float64)

	layer()
}

// Base holds the fields shared by every layer kind.
type Base struct {
	ID LayerID `json:"id" msgpack:"id"`

	// X and Y are percentages of the surface width and height. They are
	// not clamped; values outside [0, 100] place the layer off-surface.
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

func (b Base) LayerID() LayerID          { return b.ID }
func (b Base) Position() (x, y float64) { return b.X, b.Y }

// FillKind selects how text glyphs are filled.
type FillKind string

const (
	FillSolid    FillKind = "solid"
	FillGradient FillKind = "gradient"
	FillPattern  FillKind = "pattern"
)

// Fill describes the paint of text glyphs.
type Fill struct {
	Kind FillKind `json:"kind" msgpack:"kind"`

	// Color is the solid color, the gradient's first stop, and the
	// fallback while a pattern is not yet decoded.
	Color Color `json:"color" msgpack:"color"`

	// Color2 is the gradient's second stop. The zero value means black.
	Color2 Color `json:"color2,omitzero" msgpack:"color2,omitempty"`

	// Direction is the authored gradient angle in degrees. Gradients
	// always run top to bottom; the value is kept for round-tripping.
	Direction float64 `json:"direction,omitzero" msgpack:"direction,omitempty"`

	// PatternID names a pattern asset.
	PatternID string `json:"patternId,omitzero" msgpack:"patternId,omitempty"`
}

// Shadow is a drop shadow cast by each paint operation of a text layer.
// Magnitudes are pixels at preview scale.
type Shadow struct {
	// Color is the shadow color. The zero value means DefaultShadowColor.
	Color   Color   `json:"color,omitzero" msgpack:"color,omitempty"`
	Blur    float64 `json:"blur,omitzero" msgpack:"blur,omitempty"`
	OffsetX float64 `json:"offsetX,omitzero" msgpack:"offsetX,omitempty"`
	OffsetY float64 `json:"offsetY,omitzero" msgpack:"offsetY,omitempty"`
}

// Active reports whether the shadow casts anything.
func (s Shadow) Active() bool {
	return s.Blur != 0 || s.OffsetX != 0 || s.OffsetY != 0
}

// TextLayer is a single line of text.
type TextLayer struct {
	Base `msgpack:",inline"`

	Text       string `json:"text" msgpack:"text"`
	FontFamily string `json:"fontFamily" msgpack:"fontFamily"`

	// FontSize is in pixels at preview scale.
	FontSize float64 `json:"fontSize" msgpack:"fontSize"`

	Fill Fill `json:"fill" msgpack:"fill"`

	StrokeColor Color `json:"strokeColor" msgpack:"strokeColor"`

	// StrokeWidth is in pixels at preview scale; 0 disables the stroke.
	StrokeWidth float64 `json:"strokeWidth" msgpack:"strokeWidth"`

	Shadow Shadow `json:"shadow" msgpack:"shadow"`
}

func (TextLayer) layer() {}

// VisualKind distinguishes the visual layer variants.
type VisualKind string

const (
	VisualEmoji   VisualKind = "emoji"
	VisualSticker VisualKind = "sticker"
)

// VisualLayer is an emoji or a sticker drawn in a square footprint
// centered on its anchor.
type VisualLayer struct {
	Base `msgpack:",inline"`

	Kind VisualKind `json:"type" msgpack:"type"`

	// Content is the emoji text or the sticker asset id.
	Content string `json:"content" msgpack:"content"`

	// Size is the footprint side as a percentage of the surface width.
	Size float64 `json:"size" msgpack:"size"`
}

func (VisualLayer) layer() {}

// Defaults for new layers.
const (
	DefaultText        = "Texto Editável"
	DefaultFontFamily  = "Anton"
	DefaultFontSize    = 80
	DefaultStrokeWidth = 5
	DefaultVisualSize  = 25
)

// NewTextLayer returns a text layer with the editor defaults: white text
// with a black 5px stroke, anchored at (20%, 40%).
func NewTextLayer(id LayerID) TextLayer {
	return TextLayer{
		Base:       Base{ID: id, X: 20, Y: 40},
		Text:       DefaultText,
		FontFamily: DefaultFontFamily,
		FontSize:   DefaultFontSize,
		Fill: Fill{
			Kind:   FillSolid,
			Color:  White,
			Color2: Black,
		},
		StrokeColor: Black,
		StrokeWidth: DefaultStrokeWidth,
		Shadow:      Shadow{Color: DefaultShadowColor},
	}
}

// NewVisualLayer returns a visual layer centered on the surface.
func NewVisualLayer(id LayerID, kind VisualKind, content string) VisualLayer {
	return VisualLayer{
		Base:    Base{ID: id, X: 50, Y: 50},
		Kind:    kind,
		Content: content,
		Size:    DefaultVisualSize,
	}
}

// withPosition returns l moved to (x, y).
func withPosition(l Layer, x, y float64) Layer {
	switch v := l.(type) {
	case TextLayer:
		v.X, v.Y = x, y
		return v
	case VisualLayer:
		v.X, v.Y = x, y
		return v
	default:
		panic(unknownLayer(l))
	}
}

func unknownLayer(l Layer) string {
	return fmt.Sprintf("thumbkit: unknown layer type %T", l)
}

// indexOf returns the index of the layer with id, or -1.
func indexOf(layers []Layer, id LayerID) int {
	for i, l := range layers {
		if l.LayerID() == id {
			return i
		}
	}
	return -1
}
