package thumbkit

import (
	"image"
	"testing"

	"golang.org/x/image/font/gofont/gomonobold"
)

func newTestPreview(t *testing.T, assets *AssetCache) (*Preview, *Editor) {
	t.Helper()
	ed := newTestEditor(WithClock(stoppedClock(1)))
	return NewPreview(NewEngine(testFonts, assets), ed), ed
}

func TestPreviewCoalesces(t *testing.T) {
	p, ed := newTestPreview(t, nil)
	if !p.Dirty() {
		t.Fatal("new preview is not dirty")
	}
	if ok, err := p.Flush(); !ok || err != nil {
		t.Fatalf("first Flush = %v, %v", ok, err)
	}
	if ok, _ := p.Flush(); ok {
		t.Error("Flush without changes repainted")
	}

	ed.AddText()
	ed.Update(Patch{Text: Ptr("um")})
	ed.Update(Patch{Text: Ptr("dois")})
	if ok, _ := p.Flush(); !ok {
		t.Error("Flush after changes did not repaint")
	}
	if ok, _ := p.Flush(); ok {
		t.Error("second Flush repainted")
	}
	if got := p.Frames(); got != 2 {
		t.Errorf("Frames = %d, want 2", got)
	}
}

func TestPreviewShowsEdits(t *testing.T) {
	p, ed := newTestPreview(t, nil)
	p.Flush()
	if !boundsWhere(p.Surface(), differsFrom(gray)).Empty() {
		t.Fatal("empty composition drew over the background")
	}
	ed.AddText()
	p.Flush()
	if boundsWhere(p.Surface(), differsFrom(gray)).Empty() {
		t.Error("added text not visible after Flush")
	}
}

func TestPreviewResize(t *testing.T) {
	p, ed := newTestPreview(t, nil)
	p.Flush()
	p.Resize(image.Pt(200, 150))
	if got := ed.SurfaceSize(); got != image.Pt(200, 150) {
		t.Errorf("editor surface size = %v, want 200x150", got)
	}
	if !p.Dirty() {
		t.Error("Resize did not invalidate")
	}
	p.Flush()
	if got := p.Surface().Rect.Size(); got != image.Pt(200, 150) {
		t.Errorf("surface size = %v, want 200x150", got)
	}
}

func TestPreviewLateSticker(t *testing.T) {
	assets := NewAssetCache()
	p, ed := newTestPreview(t, assets)
	ed.AddVisual(VisualSticker, "red")
	p.Flush()
	red := isColor(Hex("#FF0000"))
	if !boundsWhere(p.Surface(), red).Empty() {
		t.Fatal("sticker drawn before it was loaded")
	}

	assets.Preload("red", redSticker)
	waitAssets(t, assets)
	if !p.Dirty() {
		t.Fatal("finished decode did not invalidate the preview")
	}
	p.Flush()
	got := boundsWhere(p.Surface(), red)
	if want := image.Rect(150, 100, 250, 200); got != want {
		t.Errorf("sticker bounds = %v, want %v", got, want)
	}
}

func TestPreviewExport(t *testing.T) {
	p, ed := newTestPreview(t, nil)
	ed.AddText()
	p.Resize(image.Pt(200, 150))
	var buf writeCounter
	if err := p.Export(&buf); err != nil {
		t.Fatal(err)
	}
	if buf == 0 {
		t.Error("Export wrote nothing")
	}
}

type writeCounter int

func (w *writeCounter) Write(p []byte) (int, error) {
	*w += writeCounter(len(p))
	return len(p), nil
}

func TestPreviewHitTestsWithEngineFonts(t *testing.T) {
	fonts := NewFontCatalog()
	if err := fonts.Register("Wide", gomonobold.TTF); err != nil {
		t.Fatal(err)
	}
	ed := NewEditor(solidImage(400, 300, gray), WithClock(stoppedClock(1)))
	NewPreview(NewEngine(fonts, nil), ed)

	// "iiii" in Go Mono runs to about x=176; in the default Go Bold it
	// stops near x=125.
	id := ed.AddText()
	ed.Update(Patch{Text: Ptr("iiii"), FontFamily: Ptr("Wide"), FontSize: Ptr(40.0)})
	ed.Deselect()

	ed.PointerDown(Pt(160, 130))
	if l, ok := ed.Selected(); !ok || l.LayerID() != id {
		t.Error("press inside the text drawn with the engine's font missed")
	}
}

func TestPreviewKeepsExplicitHitTester(t *testing.T) {
	h := NewHitTester(testFonts)
	ed := NewEditor(solidImage(400, 300, gray), WithHitTester(h))
	NewPreview(NewEngine(NewFontCatalog(), nil), ed)
	if ed.hit != h {
		t.Error("NewPreview replaced a hit tester set with WithHitTester")
	}
}
