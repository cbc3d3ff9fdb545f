package thumbkit

import (
	"image"
	"io"
	"sync/atomic"
)

// Preview keeps a rendered surface in step with an Editor.
//
// Editor changes and finished asset decodes mark the preview dirty; Flush
// repaints at most once however many changes happened since the last
// frame. A UI shell calls Flush once per frame.
type Preview struct {
	engine  *Engine
	editor  *Editor
	surface *image.RGBA
	dirty   atomic.Bool
	frames  int
}

// NewPreview wires a preview to editor changes and to the engine's asset
// cache. The surface starts at the editor's surface size and dirty. An
// editor created without WithHitTester hit-tests with the engine's fonts
// from then on.
func NewPreview(engine *Engine, editor *Editor) *Preview {
	if editor.ownHit {
		editor.hit = NewHitTester(engine.fonts)
		editor.ownHit = false
	}
	p := &Preview{
		engine:  engine,
		editor:  editor,
		surface: image.NewRGBA(image.Rectangle{Max: editor.SurfaceSize()}),
	}
	editor.OnChange(p.Invalidate)
	// A sticker or pattern that finishes decoding after the first paint
	// shows up on the next frame.
	engine.assets.OnReady(func(string) { p.Invalidate() })
	p.dirty.Store(true)
	return p
}

// Invalidate marks the surface for repaint. It is safe to call from any
// goroutine.
func (p *Preview) Invalidate() { p.dirty.Store(true) }

// Dirty reports whether a repaint is pending.
func (p *Preview) Dirty() bool { return p.dirty.Load() }

// Flush repaints the surface if it is dirty and reports whether it did.
func (p *Preview) Flush() (bool, error) {
	if !p.dirty.Swap(false) {
		return false, nil
	}
	ed := p.editor
	if err := p.engine.Render(p.surface, ed.Base(), ed.Filters(), ed.Layers(), 1); err != nil {
		return false, err
	}
	p.frames++
	return true, nil
}

// Frames returns the number of repaints so far.
func (p *Preview) Frames() int { return p.frames }

// Resize changes the surface size, for example when the UI layout
// changes, and tells the editor so pointer input maps correctly.
func (p *Preview) Resize(size image.Point) {
	if p.surface.Rect.Size() == size {
		return
	}
	p.surface = image.NewRGBA(image.Rectangle{Max: size})
	p.editor.SetSurfaceSize(size)
	p.Invalidate()
}

// Surface returns the last painted surface. It is overwritten by the next
// Flush.
func (p *Preview) Surface() *image.RGBA { return p.surface }

// Export writes the composition at the base image's resolution as JPEG,
// scaled relative to the preview width.
func (p *Preview) Export(w io.Writer) error {
	ed := p.editor
	return p.engine.Export(w, ed.Base(), ed.Filters(), ed.Layers(), p.surface.Rect.Dx())
}
