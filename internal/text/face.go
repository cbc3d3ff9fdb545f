package text

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // bitmap glyph formats
	_ "image/png"
	"math"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	_ "golang.org/x/image/tiff"

	"github.com/gogpu/thumbkit/internal/cache"
)

// bitmapCacheSize bounds the decoded color glyphs kept per face.
const bitmapCacheSize = 64

// GlyphID is a glyph index within a font.
type GlyphID uint16

// Metrics holds vertical font metrics at a given size, in pixels.
// Both values are positive distances from the baseline.
type Metrics struct {
	Ascent  float64
	Descent float64
}

// Face is a parsed font usable for shaping and outline extraction.
// Face is safe for concurrent use.
type Face struct {
	name string
	sf   *sfnt.Font

	// gt is read-only and shared; shaping wraps it in a per-call font.Face.
	gt *font.Font

	// sfnt.Buffer is scratch space that must not be shared between
	// concurrent calls.
	bufs sync.Pool

	// Decoded color glyphs; nil values record glyphs without one.
	bitmaps *cache.Cache[bitmapKey, image.Image]
}

type bitmapKey struct {
	gid  GlyphID
	ppem uint16
}

// ParseFace parses TrueType or OpenType data.
func ParseFace(name string, data []byte) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse %q: %w", name, err)
	}
	gt, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse %q for shaping: %w", name, err)
	}
	return &Face{
		name: name,
		sf:   sf,
		gt:   gt.Font,
		bufs:    sync.Pool{New: func() any { return new(sfnt.Buffer) }},
		bitmaps: cache.New[bitmapKey, image.Image](bitmapCacheSize),
	}, nil
}

// Name returns the name the face was parsed under.
func (f *Face) Name() string { return f.name }

// Metrics returns the ascent and descent at size px.
func (f *Face) Metrics(size float64) Metrics {
	buf := f.bufs.Get().(*sfnt.Buffer)
	defer f.bufs.Put(buf)

	m, err := f.sf.Metrics(buf, toFixed(size), xfont.HintingNone)
	if err != nil {
		// Fall back to typical Latin proportions.
		return Metrics{Ascent: size * 0.8, Descent: size * 0.2}
	}
	return Metrics{Ascent: fromFixed(m.Ascent), Descent: fromFixed(m.Descent)}
}

// Covers reports whether the font maps r to a real glyph.
func (f *Face) Covers(r rune) bool {
	buf := f.bufs.Get().(*sfnt.Buffer)
	defer f.bufs.Put(buf)

	gid, err := f.sf.GlyphIndex(buf, r)
	return err == nil && gid != 0
}

// AppendGlyph appends the outline of gid at size px to p, with the glyph
// origin (on the baseline) at (x, y). Coordinates are y-down.
func (f *Face) AppendGlyph(p *Path, gid GlyphID, size, x, y float64) error {
	buf := f.bufs.Get().(*sfnt.Buffer)
	defer f.bufs.Put(buf)

	segs, err := f.sf.LoadGlyph(buf, sfnt.GlyphIndex(gid), toFixed(size), nil)
	if err != nil {
		return err
	}

	ox, oy := float32(x), float32(y)
	pt := func(q fixed.Point26_6) Point {
		return Point{X: ox + float32(q.X)/64, Y: oy + float32(q.Y)/64}
	}

	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(pt(s.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p.QuadTo(pt(s.Args[0]), pt(s.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p.CubeTo(pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2]))
		}
	}
	if open {
		p.Close()
	}
	return nil
}

// Bitmap returns the color bitmap of gid for drawing at size px, taken
// from the closest sbix, CBDT or EBDT strike. It reports false for
// outline-only glyphs.
func (f *Face) Bitmap(gid GlyphID, size float64) (image.Image, bool) {
	ppem := uint16(math.Min(math.Max(math.Round(size), 1), math.MaxUint16))
	img := f.bitmaps.GetOrCreate(bitmapKey{gid: gid, ppem: ppem}, func() image.Image {
		return f.loadBitmap(gid, ppem)
	})
	return img, img != nil
}

func (f *Face) loadBitmap(gid GlyphID, ppem uint16) image.Image {
	// font.Face carries the strike selection and is not safe to share.
	gf := font.NewFace(f.gt)
	gf.SetPpem(ppem, ppem)

	g, ok := gf.GlyphDataBitmap(tables.GlyphID(gid))
	if !ok {
		if _, ok := gf.GlyphDataColor(tables.GlyphID(gid)); ok {
			logger().Debug("text: COLR glyph drawn as outline", "face", f.name, "glyph", gid)
		}
		return nil
	}
	img, err := decodeBitmap(g)
	if err != nil {
		logger().Debug("text: bitmap glyph", "face", f.name, "glyph", gid, "err", err)
		return nil
	}
	return img
}

func decodeBitmap(g font.GlyphBitmap) (image.Image, error) {
	switch g.Format {
	case font.PNG, font.JPG, font.TIFF:
		img, _, err := image.Decode(bytes.NewReader(g.Data))
		return img, err
	case font.BlackAndWhite:
		// One bit per pixel, rows packed without padding.
		img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
		for i := 0; i < g.Width*g.Height && i/8 < len(g.Data); i++ {
			if g.Data[i/8]&(0x80>>(i%8)) != 0 {
				img.Pix[4*i+3] = 0xff
			}
		}
		return img, nil
	}
	return nil, fmt.Errorf("unsupported bitmap format %d", g.Format)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
