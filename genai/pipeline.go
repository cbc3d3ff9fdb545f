package genai

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/gogpu/thumbkit"
)

// Request is one generation request from the generator form.
type Request struct {
	Prompt  string
	Style   string // Styles id
	Palette string // Palettes id
	Aspect  AspectRatio

	// Vector asks for SVG artwork, rasterized over an opaque backing,
	// instead of a raster image.
	Vector bool

	Border thumbkit.BorderOptions
}

// Pipeline turns requests into framed base images for the editor.
//
// Only the latest request matters: starting a new one cancels the one in
// flight, which then fails with ErrSuperseded. Pipeline is safe for
// concurrent use.
type Pipeline struct {
	svc Service

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// NewPipeline creates a pipeline over svc.
func NewPipeline(svc Service) *Pipeline {
	return &Pipeline{svc: svc}
}

// Generate builds the prompt, calls the service and frames the result.
func (p *Pipeline) Generate(ctx context.Context, r Request) (image.Image, error) {
	ctx, seq := p.begin(ctx)
	defer p.end(seq)

	prompt := BuildPrompt(r.Style, r.Palette, r.Prompt)
	if prompt == "" {
		return nil, errors.New("genai: empty prompt")
	}
	start := time.Now()
	thumbkit.Logger().Info("genai: generation started", "seq", seq, "vector", r.Vector, "aspect", r.Aspect)

	var (
		base image.Image
		err  error
	)
	if r.Vector {
		var markup []byte
		if markup, err = p.svc.GenerateVector(ctx, prompt, r.Aspect); err == nil {
			base, err = thumbkit.FrameVector(markup, r.Border)
			if err != nil {
				err = &Error{Op: "generate vector", Kind: KindMalformedResponse, Err: err}
			}
		}
	} else {
		if base, err = p.svc.GenerateImage(ctx, prompt, r.Aspect); err == nil {
			base, err = thumbkit.Frame(base, r.Border)
		}
	}

	if p.superseded(seq) {
		thumbkit.Logger().Info("genai: generation superseded", "seq", seq)
		return nil, ErrSuperseded
	}
	if err != nil {
		thumbkit.Logger().Warn("genai: generation failed", "seq", seq, "kind", KindOf(err), "err", err)
		return nil, fmt.Errorf("genai: generate: %w", err)
	}
	thumbkit.Logger().Info("genai: generation finished", "seq", seq,
		"size", base.Bounds().Size(), "elapsed", time.Since(start))
	return base, nil
}

// Cancel cancels the request in flight, if any.
func (p *Pipeline) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.seq++
}

func (p *Pipeline) begin(ctx context.Context) (context.Context, uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	p.seq++
	p.cancel = cancel
	return ctx, p.seq
}

func (p *Pipeline) end(seq uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.seq == seq && p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func (p *Pipeline) superseded(seq uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seq != seq
}
