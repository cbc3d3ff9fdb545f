package thumbkit

import (
	"fmt"
	"os"

	"github.com/gogpu/thumbkit/internal/text"
)

// DefaultRunCacheSize is the number of shaped text runs a FontCatalog
// keeps.
const DefaultRunCacheSize = 256

// FontCatalog resolves font families for text and emoji layers and shapes
// text. An Engine and a HitTester built on the same catalog share shaped
// runs, so measured and drawn extents agree.
//
// The catalog starts with the Go fonts. Text is drawn bold; unregistered
// families (including the editor's FontOptions) fall back to Go Bold.
//
// FontCatalog is safe for concurrent use.
type FontCatalog struct {
	faces  *text.Catalog
	shaper *text.Shaper
}

// NewFontCatalog returns a catalog holding the built-in Go fonts.
func NewFontCatalog() *FontCatalog {
	return &FontCatalog{
		faces:  text.NewCatalog(),
		shaper: text.NewShaper(DefaultRunCacheSize),
	}
}

// Register makes TrueType or OpenType data available as family.
func (c *FontCatalog) Register(family string, data []byte) error {
	if err := c.faces.Register(family, data); err != nil {
		return fmt.Errorf("thumbkit: register font %q: %w", family, err)
	}
	return nil
}

// RegisterFile reads a font file and registers it as family.
func (c *FontCatalog) RegisterFile(family, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("thumbkit: register font %q: %w", family, err)
	}
	return c.Register(family, data)
}

// SetEmojiFont sets the face used by emoji layers. Color bitmap glyphs
// (sbix, CBDT) are drawn in color. Runes the face lacks fall back to the
// sans-serif face, and runes neither covers are not drawn.
func (c *FontCatalog) SetEmojiFont(data []byte) error {
	if err := c.faces.SetEmoji(data); err != nil {
		return fmt.Errorf("thumbkit: emoji font: %w", err)
	}
	return nil
}

// Has reports whether family was registered.
func (c *FontCatalog) Has(family string) bool { return c.faces.Has(family) }

// Families returns the registered family names.
func (c *FontCatalog) Families() []string { return c.faces.Families() }

// textRun shapes the text of a layer at size px.
func (c *FontCatalog) textRun(family, s string, size float64) *text.Run {
	return c.shaper.Shape(c.faces.Lookup(family), s, size)
}

// emojiLine shapes an emoji at size px, falling back from the emoji face
// to sans-serif rune by rune.
func (c *FontCatalog) emojiLine(s string, size float64) *text.Line {
	return c.shaper.ShapeFallback(c.faces.EmojiFaces(), s, size)
}
