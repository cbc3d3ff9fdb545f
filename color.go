package thumbkit

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a straight-alpha 8-bit RGBA color, written in documents and
// presets as a CSS color string.
//
// The zero value is transparent black. Some layer attributes treat the
// zero value as "use the default" (see Shadow and Fill).
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Transparent = Color{}

	// DefaultShadowColor is rgba(0,0,0,0.5).
	DefaultShadowColor = Color{0, 0, 0, 128}
)

// RGBA implements color.Color with premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// IsZero reports whether c is the zero value.
func (c Color) IsZero() bool { return c == Color{} }

// Or returns c, or def when c is the zero value.
func (c Color) Or(def Color) Color {
	if c.IsZero() {
		return def
	}
	return c
}

// Lerp interpolates between c and other in straight-alpha space.
func (c Color) Lerp(other Color, t float64) Color {
	l := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return Color{l(c.R, other.R), l(c.G, other.G), l(c.B, other.B), l(c.A, other.A)}
}

// String returns #rrggbb for opaque colors and rgba(...) otherwise.
func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	a := strconv.FormatFloat(float64(c.A)/255, 'f', -1, 64)
	if len(a) > 5 {
		a = strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, a)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty string
// decodes to the zero value.
func (c *Color) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*c = Color{}
		return nil
	}
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseColor parses a CSS color: #rgb, #rgba, #rrggbb, #rrggbbaa,
// rgb(), rgba(), transparent, or a named color.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return Color{}, fmt.Errorf("%w: empty", ErrInvalidColor)
	case s == "transparent":
		return Transparent, nil
	case s[0] == '#':
		if c, ok := parseHexColor(s[1:]); ok {
			return c, nil
		}
	case strings.HasPrefix(s, "rgb"):
		if c, ok := parseRGBFunc(s); ok {
			return c, nil
		}
	default:
		if n, ok := colornames.Map[s]; ok {
			return Color{n.R, n.G, n.B, n.A}, nil
		}
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// MustParseColor is like ParseColor but panics on error. It is meant for
// static tables.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex parses a hex color with or without the leading '#'. Invalid input
// yields opaque black.
func Hex(hex string) Color {
	hex = strings.TrimPrefix(hex, "#")
	if c, ok := parseHexColor(hex); ok {
		return c
	}
	return Black
}

func parseHexColor(hex string) (Color, bool) {
	var v [4]uint8
	v[3] = 255
	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			d, ok := hexDigit(hex[i])
			if !ok {
				return Color{}, false
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := hexDigit(hex[i])
			lo, ok2 := hexDigit(hex[i+1])
			if !ok1 || !ok2 {
				return Color{}, false
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return Color{}, false
	}
	return Color{v[0], v[1], v[2], v[3]}, true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// parseRGBFunc parses rgb(r,g,b), rgba(r,g,b,a) and the space separated
// rgb(r g b / a) form. Channels are 0-255 or percentages; alpha is 0-1
// or a percentage.
func parseRGBFunc(s string) (Color, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Color{}, false
	}
	name, body := s[:open], s[open+1:len(s)-1]
	if name != "rgb" && name != "rgba" {
		return Color{}, false
	}
	body = strings.NewReplacer(",", " ", "/", " ").Replace(body)
	parts := strings.Fields(body)
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, false
	}

	var c Color
	ch := []*uint8{&c.R, &c.G, &c.B}
	for i, p := range parts[:3] {
		v, ok := parseComponent(p, 255)
		if !ok {
			return Color{}, false
		}
		*ch[i] = v
	}
	c.A = 255
	if len(parts) == 4 {
		v, ok := parseComponent(parts[3], 1)
		if !ok {
			return Color{}, false
		}
		c.A = v
	}
	return c, true
}

// parseComponent parses a number in [0, scale] or a percentage and maps
// it to 0-255.
func parseComponent(p string, scale float64) (uint8, bool) {
	var f float64
	var err error
	if pct, ok := strings.CutSuffix(p, "%"); ok {
		f, err = strconv.ParseFloat(pct, 64)
		f = f / 100 * scale
	} else {
		f, err = strconv.ParseFloat(p, 64)
	}
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	f = math.Round(f / scale * 255)
	return uint8(max(0, min(255, f))), true
}
