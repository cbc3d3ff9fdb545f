package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/thumbkit/internal/cache"
)

// Glyph is a positioned glyph within a Run. X and Y are the glyph origin
// relative to the run origin on the baseline, y-down.
type Glyph struct {
	ID      GlyphID
	X, Y    float64
	Advance float64
}

// Run is a shaped, single-line text run at a fixed size.
// Runs are shared through the shaper cache and must not be modified.
type Run struct {
	Face    *Face
	Size    float64
	Glyphs  []Glyph
	Advance float64
	Metrics Metrics
}

// Outline returns the glyph outlines of r with the run origin (the left
// end of the baseline) at (x, y).
func (r *Run) Outline(x, y float64) *Path {
	p := &Path{}
	if r == nil || r.Face == nil {
		return p
	}
	for _, g := range r.Glyphs {
		r.appendGlyph(p, g, x, y)
	}
	return p
}

// appendGlyph adds the outline of g to p. A glyph that fails to load is
// skipped and the rest of the run still draws.
func (r *Run) appendGlyph(p *Path, g Glyph, x, y float64) {
	if err := r.Face.AppendGlyph(p, g.ID, r.Size, x+g.X, y+g.Y); err != nil {
		logger().Debug("text: glyph outline", "face", r.Face.name, "glyph", g.ID, "err", err)
	}
}

type runKey struct {
	face *Face
	text string
	size float64
}

// Shaper shapes text with HarfBuzz and memoizes the resulting runs.
// Shaper is safe for concurrent use.
type Shaper struct {
	// HarfbuzzShaper holds mutable buffers; each call borrows one.
	pool  sync.Pool
	cache *cache.Cache[runKey, *Run]
}

// NewShaper creates a shaper keeping up to cacheSize runs.
func NewShaper(cacheSize int) *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		cache: cache.New[runKey, *Run](cacheSize),
	}
}

// Shape returns the run for s in face at size px. The text is NFC
// normalized first so that composed and decomposed input shape alike.
func (s *Shaper) Shape(face *Face, str string, size float64) *Run {
	key := runKey{face: face, text: str, size: size}
	return s.cache.GetOrCreate(key, func() *Run {
		return s.shape(face, str, size)
	})
}

// Stats reports the run cache counters.
func (s *Shaper) Stats() cache.Stats {
	return s.cache.Stats()
}

func (s *Shaper) shape(face *Face, str string, size float64) *Run {
	run := &Run{Face: face, Size: size}
	if face == nil || size <= 0 {
		return run
	}
	run.Metrics = face.Metrics(size)

	runes := []rune(norm.NFC.String(str))
	if len(runes) == 0 {
		return run
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(face.gt),
		Size:      toFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)

	run.Glyphs = make([]Glyph, len(out.Glyphs))
	var pen float64
	for i, g := range out.Glyphs {
		run.Glyphs[i] = Glyph{
			ID:      GlyphID(g.GlyphID),
			X:       pen + fromFixed(g.XOffset),
			// HarfBuzz offsets point up.
			Y:       -fromFixed(g.YOffset),
			Advance: fromFixed(g.Advance),
		}
		pen += fromFixed(g.Advance)
	}
	run.Advance = pen
	return run
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
