package thumbkit

import (
	"errors"
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", White},
		{"#FFFFFF", White},
		{"#000000", Black},
		{"#4F46E5", Color{0x4f, 0x46, 0xe5, 255}},
		{"#f008", Color{255, 0, 0, 0x88}},
		{"#ff000080", Color{255, 0, 0, 128}},
		{"rgb(10, 20, 30)", Color{10, 20, 30, 255}},
		{"rgba(0,0,0,0.5)", DefaultShadowColor},
		{"rgba(255, 255, 255, 0.8)", Color{255, 255, 255, 204}},
		{"rgb(100% 0% 50% / 25%)", Color{255, 0, 128, 64}},
		{"transparent", Transparent},
		{"  Gold ", Color{255, 215, 0, 255}},
		{"hotpink", Color{255, 105, 180, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) err = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#ggg", "rgb(1,2)", "hsl(0,0%,0%)", "notacolor", "rgba(1,2,3,x)"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) err = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{White, "#ffffff"},
		{Color{0x4f, 0x46, 0xe5, 255}, "#4f46e5"},
		{DefaultShadowColor, "rgba(0,0,0,0.502)"},
		{Transparent, "rgba(0,0,0,0)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", [4]uint8{tt.c.R, tt.c.G, tt.c.B, tt.c.A}, got, tt.want)
		}
	}
}

func TestColorTextRoundTrip(t *testing.T) {
	for _, c := range []Color{White, Black, {1, 2, 3, 4}, DefaultShadowColor} {
		b, err := c.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Color
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q) err = %v", b, err)
		}
		if got != c {
			t.Errorf("round trip of %v via %q = %v", c, b, got)
		}
	}
}

func TestColorOr(t *testing.T) {
	if got := (Color{}).Or(Black); got != Black {
		t.Errorf("zero.Or(Black) = %v, want Black", got)
	}
	if got := White.Or(Black); got != White {
		t.Errorf("White.Or(Black) = %v, want White", got)
	}
}

func TestColorLerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	if got != (Color{128, 128, 128, 255}) {
		t.Errorf("Lerp = %v, want mid gray", got)
	}
}

func TestHexInvalidIsBlack(t *testing.T) {
	if got := Hex("zz"); got != Black {
		t.Errorf("Hex(zz) = %v, want Black", got)
	}
}
