package thumbkit

import (
	"context"
	"image"
	"sync/atomic"
	"testing"
	"time"
)

func waitAssets(t *testing.T, c *AssetCache) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := c.Wait(ctx); err != nil {
		t.Fatalf("Wait() = %v", err)
	}
}

func TestAssetCachePreload(t *testing.T) {
	var ready atomic.Int32
	c := NewAssetCache(WithStickerResolution(64), WithOnReady(func(string) { ready.Add(1) }))

	if _, ok := c.Get("red"); ok {
		t.Fatal("Get before Preload reported ready")
	}
	c.Preload("red", redSticker)
	c.Preload("red", redSticker) // duplicate is a no-op
	waitAssets(t, c)

	img, ok := c.Get("red")
	if !ok {
		t.Fatalf("Get after Wait: not ready, status %v", c.Status("red"))
	}
	if got := img.Bounds().Size(); got != image.Pt(64, 64) {
		t.Errorf("sticker size = %v, want 64x64", got)
	}
	if got := ready.Load(); got != 1 {
		t.Errorf("OnReady calls = %d, want 1", got)
	}
}

func TestAssetCacheFailureIsRecorded(t *testing.T) {
	var ready atomic.Int32
	c := NewAssetCache()
	c.OnReady(func(string) { ready.Add(1) })

	c.Preload("broken", "<svg><rect")
	waitAssets(t, c)

	if got := c.Status("broken"); got != AssetFailed {
		t.Errorf("Status = %v, want failed", got)
	}
	if _, ok := c.Get("broken"); ok {
		t.Error("Get of failed asset reported ready")
	}
	if ready.Load() != 0 {
		t.Error("OnReady fired for a failed decode")
	}

	// A failed id is known; preloading it again does not retry.
	c.Preload("broken", redSticker)
	waitAssets(t, c)
	if got := c.Status("broken"); got != AssetFailed {
		t.Errorf("Status after retry = %v, want failed", got)
	}
}

func TestAssetCachePatternNaturalSize(t *testing.T) {
	c := NewAssetCache(WithStickerResolution(512))
	c.PreloadAsset(Asset{ID: "tile", Kind: AssetPattern, Markup: redSticker})
	waitAssets(t, c)

	img, ok := c.Get("tile")
	if !ok {
		t.Fatal("pattern not ready")
	}
	if got := img.Bounds().Size(); got != image.Pt(10, 10) {
		t.Errorf("pattern size = %v, want natural 10x10", got)
	}
}

func TestAssetCachePreloadAll(t *testing.T) {
	c := NewAssetCache(WithStickerResolution(16))
	assets := []Asset{
		{ID: "a", Kind: AssetSticker, Markup: redSticker},
		{ID: "b", Kind: AssetPattern, Markup: redSticker},
		{ID: "c", Kind: AssetSticker, Markup: "not svg at all <"},
	}
	if err := c.PreloadAll(context.Background(), assets); err != nil {
		t.Fatalf("PreloadAll() = %v", err)
	}
	want := map[string]AssetStatus{"a": AssetReady, "b": AssetReady, "c": AssetFailed, "d": AssetMissing}
	for id, st := range want {
		if got := c.Status(id); got != st {
			t.Errorf("Status(%q) = %v, want %v", id, got, st)
		}
	}
}

func TestAssetCachePreloadAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewAssetCache()
	if err := c.PreloadAll(ctx, Stickers()); err == nil {
		t.Error("PreloadAll with canceled context = nil, want error")
	}
}

func TestAssetCacheStore(t *testing.T) {
	c := NewAssetCache()
	img := solidImage(2, 2, White)
	c.Store("x", img)
	got, ok := c.Get("x")
	if !ok || got != img {
		t.Errorf("Get after Store = %v, %v", got, ok)
	}
	// Known ids are not decoded again.
	c.Preload("x", redSticker)
	if got, _ := c.Get("x"); got != img {
		t.Error("Preload replaced a stored asset")
	}
}

func TestAssetCachePreloadPicksPatternKind(t *testing.T) {
	c := NewAssetCache(WithStickerResolution(300))
	c.Preload("noise", redSticker)
	waitAssets(t, c)
	img, ok := c.Get("noise")
	if !ok {
		t.Fatal("not ready")
	}
	if got := img.Bounds().Size(); got != image.Pt(10, 10) {
		t.Errorf("size = %v, want natural size for a pattern id", got)
	}
}

func TestAssetStatusString(t *testing.T) {
	if AssetReady.String() != "ready" || AssetPending.String() != "pending" {
		t.Error("unexpected AssetStatus strings")
	}
}
