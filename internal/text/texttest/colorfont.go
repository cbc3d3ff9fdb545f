// Package texttest builds fonts for tests of color glyph rendering.
package texttest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"maps"
	"math/bits"
	"slices"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/gofont/goregular"
)

// Ppem is the size of the single sbix strike in ColorFont fonts.
const Ppem = 16

var be = binary.BigEndian

// ColorFont returns a TrueType font derived from Go Regular whose cmap
// maps only the runes of glyphs. Each of them is drawn by a solid square
// PNG of its color, stored in an sbix strike. Outlines come from the Latin
// capitals A, B, C and so on, in rune order.
func ColorFont(glyphs map[rune]color.Color) ([]byte, error) {
	ld, err := ot.NewLoader(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	base, err := font.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}

	tables := make(map[ot.Tag][]byte)
	for _, tag := range ld.Tables() {
		if tables[tag], err = ld.RawTable(tag); err != nil {
			return nil, err
		}
	}
	maxp := tables[ot.MustNewTag("maxp")]
	if len(maxp) < 6 {
		return nil, fmt.Errorf("texttest: short maxp table")
	}
	numGlyphs := int(be.Uint16(maxp[4:]))

	runes := slices.Sorted(maps.Keys(glyphs))
	gids := make([]uint16, len(runes))
	pngs := make(map[uint16][]byte, len(runes))
	for i, r := range runes {
		gid, ok := base.NominalGlyph(rune('A' + i))
		if !ok {
			return nil, fmt.Errorf("texttest: too many glyphs")
		}
		gids[i] = uint16(gid)
		if pngs[gids[i]], err = solidPNG(glyphs[r]); err != nil {
			return nil, err
		}
	}

	tables[ot.MustNewTag("cmap")] = cmap12(runes, gids)
	tables[ot.MustNewTag("sbix")] = sbix(numGlyphs, pngs)
	return writeFont(tables), nil
}

func solidPNG(c color.Color) ([]byte, error) {
	img := image.NewNRGBA(image.Rect(0, 0, Ppem, Ppem))
	draw.Draw(img, img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// cmap12 builds a cmap with one Windows full repertoire subtable of
// format 12, one group per rune.
func cmap12(runes []rune, gids []uint16) []byte {
	sub := 16 + 12*len(runes)
	b := make([]byte, 12+sub)
	be.PutUint16(b[2:], 1)  // numTables
	be.PutUint16(b[4:], 3)  // platform Windows
	be.PutUint16(b[6:], 10) // encoding UCS-4
	be.PutUint32(b[8:], 12)

	s := b[12:]
	be.PutUint16(s[0:], 12)
	be.PutUint32(s[4:], uint32(sub))
	be.PutUint32(s[12:], uint32(len(runes)))
	for i, r := range runes {
		g := s[16+12*i:]
		be.PutUint32(g[0:], uint32(r))
		be.PutUint32(g[4:], uint32(r))
		be.PutUint32(g[8:], uint32(gids[i]))
	}
	return b
}

// sbix builds a table with a single strike. Glyph data offsets are
// relative to the strike, and equal consecutive offsets mean no bitmap.
func sbix(numGlyphs int, pngs map[uint16][]byte) []byte {
	const strikeAt = 12
	header := 4 + 4*(numGlyphs+1)

	var data bytes.Buffer
	offsets := make([]uint32, numGlyphs+1)
	for gid := range numGlyphs {
		offsets[gid] = uint32(header + data.Len())
		if p, ok := pngs[uint16(gid)]; ok {
			data.Write([]byte{0, 0, 0, 0}) // origin offsets
			data.WriteString("png ")
			data.Write(p)
		}
	}
	offsets[numGlyphs] = uint32(header + data.Len())

	b := make([]byte, strikeAt+header, strikeAt+header+data.Len())
	be.PutUint16(b[0:], 1) // version
	be.PutUint16(b[2:], 1) // flags
	be.PutUint32(b[4:], 1) // numStrikes
	be.PutUint32(b[8:], strikeAt)
	be.PutUint16(b[strikeAt:], Ppem)
	be.PutUint16(b[strikeAt+2:], 72)
	for i, off := range offsets {
		be.PutUint32(b[strikeAt+4+4*i:], off)
	}
	return append(b, data.Bytes()...)
}

// writeFont lays out an sfnt file with tables sorted by tag and each
// table starting on a four byte boundary.
func writeFont(tables map[ot.Tag][]byte) []byte {
	tags := slices.Sorted(maps.Keys(tables))
	n := len(tags)
	sel := bits.Len(uint(n)) - 1
	searchRange := 16 << sel

	dirLen := 12 + 16*n
	out := make([]byte, dirLen)
	copy(out, "\x00\x01\x00\x00")
	be.PutUint16(out[4:], uint16(n))
	be.PutUint16(out[6:], uint16(searchRange))
	be.PutUint16(out[8:], uint16(sel))
	be.PutUint16(out[10:], uint16(16*n-searchRange))

	for i, tag := range tags {
		data := tables[tag]
		rec := out[12+16*i:]
		be.PutUint32(rec[0:], uint32(tag))
		be.PutUint32(rec[8:], uint32(len(out)))
		be.PutUint32(rec[12:], uint32(len(data)))
		out = append(out, data...)
		for len(out)%4 != 0 {
			out = append(out, 0)
		}
	}
	return out
}
