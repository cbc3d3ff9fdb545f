package thumbkit

import (
	"image"
	"slices"
	"time"
)

// Control ranges offered by the editor UI. The model does not clamp.
const (
	FontSizeMin    = 10
	FontSizeMax    = 200
	StrokeWidthMax = 20
	VisualSizeMin  = 5
	VisualSizeMax  = 100
)

// EditorOption configures an Editor.
type EditorOption func(*editorOptions)

type editorOptions struct {
	clock func() time.Time
	hit   *HitTester
	size  image.Point
}

// WithClock sets the clock layer ids are derived from.
func WithClock(now func() time.Time) EditorOption {
	return func(o *editorOptions) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithHitTester sets the hit tester used for pointer input. Share the
// Engine's FontCatalog with it so text is hit where it is drawn. Without
// one, NewPreview installs a hit tester over its engine's fonts.
func WithHitTester(h *HitTester) EditorOption {
	return func(o *editorOptions) {
		o.hit = h
	}
}

// WithSurfaceSize sets the initial preview surface size. It defaults to
// the base image size.
func WithSurfaceSize(size image.Point) EditorOption {
	return func(o *editorOptions) {
		o.size = size
	}
}

// Editor owns the layer list of one editing session and turns user
// intents and pointer input into layer changes.
//
// Every operation is a local state transition without an error result;
// requests that make no sense in the current state (no selection,
// reordering past an end) are ignored.
//
// Editor is not safe for concurrent use; drive it from the UI goroutine.
type Editor struct {
	base    image.Image
	layers  []Layer
	filters Filters
	size    image.Point
	hit     *HitTester
	// ownHit is set while hit is the default tester, which NewPreview
	// replaces with one over the engine's fonts.
	ownHit bool

	selected LayerID
	hasSel   bool

	dragging bool
	last     Point

	clock  func() time.Time
	lastID LayerID

	hooks  []func()
	closed bool
}

// NewEditor starts a session over base with an empty layer list.
func NewEditor(base image.Image, opts ...EditorOption) *Editor {
	o := editorOptions{clock: time.Now}
	if base != nil {
		o.size = base.Bounds().Size()
	}
	for _, opt := range opts {
		opt(&o)
	}
	ownHit := o.hit == nil
	if ownHit {
		o.hit = NewHitTester(nil)
	}
	return &Editor{
		base:    base,
		filters: DefaultFilters(),
		size:    o.size,
		hit:     o.hit,
		ownHit:  ownHit,
		clock:   o.clock,
	}
}

// OnChange registers fn to run after every change that affects the
// rendered picture.
func (e *Editor) OnChange(fn func()) {
	e.hooks = append(e.hooks, fn)
}

func (e *Editor) changed() {
	if e.closed {
		return
	}
	for _, fn := range e.hooks {
		fn()
	}
}

// nextID returns a millisecond timestamp, bumped past the last id so ids
// stay unique when layers are added within the same millisecond.
func (e *Editor) nextID() LayerID {
	id := LayerID(e.clock().UnixMilli())
	if id <= e.lastID {
		id = e.lastID + 1
	}
	e.lastID = id
	return id
}

// AddText appends a default text layer and selects it.
func (e *Editor) AddText() LayerID {
	l := NewTextLayer(e.nextID())
	e.add(l)
	return l.ID
}

// AddVisual appends an emoji or sticker layer and selects it.
func (e *Editor) AddVisual(kind VisualKind, content string) LayerID {
	l := NewVisualLayer(e.nextID(), kind, content)
	e.add(l)
	return l.ID
}

func (e *Editor) add(l Layer) {
	if e.closed {
		return
	}
	e.layers = append(e.layers, l)
	e.selected, e.hasSel = l.LayerID(), true
	e.changed()
}

// Update merges p into the selected layer.
func (e *Editor) Update(p Patch) {
	if !e.hasSel || e.closed {
		return
	}
	e.layers = MergeByID(e.layers, e.selected, p)
	e.changed()
}

// Delete removes the selected layer and clears the selection.
func (e *Editor) Delete() {
	if !e.hasSel || e.closed {
		return
	}
	if i := indexOf(e.layers, e.selected); i >= 0 {
		e.layers = slices.Delete(e.layers, i, i+1)
	}
	e.hasSel = false
	e.dragging = false
	e.changed()
}

// MoveForward swaps the selected layer with the one above it.
func (e *Editor) MoveForward() { e.swap(+1) }

// MoveBackward swaps the selected layer with the one below it.
func (e *Editor) MoveBackward() { e.swap(-1) }

func (e *Editor) swap(dir int) {
	if !e.hasSel || e.closed {
		return
	}
	i := indexOf(e.layers, e.selected)
	j := i + dir
	if i < 0 || j < 0 || j >= len(e.layers) {
		return
	}
	e.layers[i], e.layers[j] = e.layers[j], e.layers[i]
	e.changed()
}

// ApplyPreset merges the named style into the selected text layer. It
// reports whether anything was applied.
func (e *Editor) ApplyPreset(id string) bool {
	if !e.hasSel || e.closed {
		return false
	}
	p, ok := LookupPreset(id)
	if !ok {
		return false
	}
	i := indexOf(e.layers, e.selected)
	if i < 0 {
		return false
	}
	if _, isText := e.layers[i].(TextLayer); !isText {
		return false
	}
	e.layers[i] = p.Patch.Apply(e.layers[i])
	e.changed()
	return true
}

// PointerDown selects the topmost layer under pt and starts dragging it.
// A press on empty canvas clears the selection.
func (e *Editor) PointerDown(pt Point) {
	if e.closed {
		return
	}
	l, ok := e.hit.HitTest(pt, e.layers, e.size, 1)
	if !ok {
		e.hasSel = false
		e.dragging = false
		return
	}
	e.selected, e.hasSel = l.LayerID(), true
	e.dragging = true
	e.last = pt
}

// PointerMove drags the selected layer by the pointer delta, converted to
// surface percentages.
func (e *Editor) PointerMove(pt Point) {
	if !e.dragging || !e.hasSel || e.closed {
		return
	}
	if e.size.X <= 0 || e.size.Y <= 0 {
		return
	}
	i := indexOf(e.layers, e.selected)
	if i < 0 {
		e.dragging = false
		return
	}
	dx := (pt.X - e.last.X) / float64(e.size.X) * 100
	dy := (pt.Y - e.last.Y) / float64(e.size.Y) * 100
	x, y := e.layers[i].Position()
	e.layers[i] = withPosition(e.layers[i], x+dx, y+dy)
	e.last = pt
	e.changed()
}

// PointerUp ends a drag.
func (e *Editor) PointerUp() { e.dragging = false }

// PointerLeave ends a drag when the pointer leaves the surface.
func (e *Editor) PointerLeave() { e.dragging = false }

// Dragging reports whether a drag is in progress.
func (e *Editor) Dragging() bool { return e.dragging }

// Select selects the layer with id, if present.
func (e *Editor) Select(id LayerID) {
	if indexOf(e.layers, id) >= 0 {
		e.selected, e.hasSel = id, true
	}
}

// Deselect clears the selection.
func (e *Editor) Deselect() {
	e.hasSel = false
	e.dragging = false
}

// Selected returns the selected layer.
func (e *Editor) Selected() (Layer, bool) {
	if !e.hasSel {
		return nil, false
	}
	i := indexOf(e.layers, e.selected)
	if i < 0 {
		return nil, false
	}
	return e.layers[i], true
}

// Layers returns a copy of the layer list, bottom first.
func (e *Editor) Layers() []Layer {
	return slices.Clone(e.layers)
}

// SetFilters replaces the background filters.
func (e *Editor) SetFilters(f Filters) {
	if e.closed || e.filters == f {
		return
	}
	e.filters = f
	e.changed()
}

// Filters returns the background filters.
func (e *Editor) Filters() Filters { return e.filters }

// SetSurfaceSize records the size of the preview surface that pointer
// coordinates refer to.
func (e *Editor) SetSurfaceSize(size image.Point) {
	if e.size == size {
		return
	}
	e.size = size
	e.changed()
}

// SurfaceSize returns the preview surface size.
func (e *Editor) SurfaceSize() image.Point { return e.size }

// Base returns the base image.
func (e *Editor) Base() image.Image { return e.base }

// Close ends the session and discards the layer list. Later calls are
// ignored.
func (e *Editor) Close() {
	e.closed = true
	e.layers = nil
	e.hasSel = false
	e.dragging = false
	e.hooks = nil
}
