package thumbkit

import (
	"context"
	"image"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/thumbkit/internal/svg"
)

// AssetStatus is the decode state of a cached asset.
type AssetStatus uint8

const (
	AssetMissing AssetStatus = iota
	AssetPending
	AssetReady
	AssetFailed
)

func (s AssetStatus) String() string {
	switch s {
	case AssetMissing:
		return "missing"
	case AssetPending:
		return "pending"
	case AssetReady:
		return "ready"
	case AssetFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DefaultStickerResolution is the minimum long side, in pixels, at which
// stickers are rasterized.
const DefaultStickerResolution = 512

// AssetOption configures an AssetCache.
type AssetOption func(*assetOptions)

type assetOptions struct {
	stickerRes int
	onReady    []func(id string)
}

// WithStickerResolution sets the minimum long side of decoded stickers.
func WithStickerResolution(px int) AssetOption {
	return func(o *assetOptions) {
		if px > 0 {
			o.stickerRes = px
		}
	}
}

// WithOnReady adds a hook called after an asset finishes decoding.
func WithOnReady(fn func(id string)) AssetOption {
	return func(o *assetOptions) {
		o.onReady = append(o.onReady, fn)
	}
}

type assetEntry struct {
	status AssetStatus
	img    *image.RGBA
}

// AssetCache decodes SVG artwork into rasters in the background and hands
// them to the renderer once ready. Entries are never evicted.
//
// AssetCache is safe for concurrent use.
type AssetCache struct {
	stickerRes int

	mu      sync.Mutex
	entries map[string]*assetEntry
	onReady []func(id string)

	inflight sync.WaitGroup
}

// NewAssetCache creates an empty cache.
func NewAssetCache(opts ...AssetOption) *AssetCache {
	o := assetOptions{stickerRes: DefaultStickerResolution}
	for _, opt := range opts {
		opt(&o)
	}
	return &AssetCache{
		stickerRes: o.stickerRes,
		entries:    make(map[string]*assetEntry),
		onReady:    o.onReady,
	}
}

// OnReady adds a hook called after an asset finishes decoding. Hooks run
// on the decoding goroutine.
func (c *AssetCache) OnReady(fn func(id string)) {
	c.mu.Lock()
	c.onReady = append(c.onReady, fn)
	c.mu.Unlock()
}

// Preload starts decoding markup under id in the background. Built-in
// pattern ids decode at natural size; anything else decodes as a
// sticker. Calls for an id that is already known are no-ops.
func (c *AssetCache) Preload(id, markup string) {
	kind := AssetSticker
	if isPattern(id) {
		kind = AssetPattern
	}
	c.PreloadAsset(Asset{ID: id, Kind: kind, Markup: markup})
}

// PreloadAsset is like Preload with an explicit kind.
func (c *AssetCache) PreloadAsset(a Asset) {
	if !c.claim(a.ID) {
		return
	}
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		c.decode(a)
	}()
}

// PreloadAll decodes every asset not yet known, using up to GOMAXPROCS
// goroutines, and waits for them and for any decode already in flight.
// Decode failures are recorded per asset, not returned; the only error is
// ctx's.
func (c *AssetCache) PreloadAll(ctx context.Context, assets []Asset) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, a := range assets {
		if gctx.Err() != nil {
			break
		}
		if !c.claim(a.ID) {
			continue
		}
		c.inflight.Add(1)
		g.Go(func() error {
			defer c.inflight.Done()
			c.decode(a)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.Wait(ctx)
}

// Wait blocks until every decode in flight has finished or ctx is done.
func (c *AssetCache) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Get returns the decoded raster for id. It never blocks; ok is false
// until the decode has succeeded. The raster must not be modified.
func (c *AssetCache) Get(id string) (img *image.RGBA, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, found := c.entries[id]
	if !found || e.status != AssetReady {
		return nil, false
	}
	return e.img, true
}

// Status returns the decode state of id.
func (c *AssetCache) Status(id string) AssetStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[id]; ok {
		return e.status
	}
	return AssetMissing
}

// Store inserts an already decoded raster, replacing any entry for id.
func (c *AssetCache) Store(id string, img *image.RGBA) {
	c.mu.Lock()
	c.entries[id] = &assetEntry{status: AssetReady, img: img}
	c.mu.Unlock()
}

// claim records a pending entry for id and reports whether the caller
// should decode it.
func (c *AssetCache) claim(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[id]; ok {
		return false
	}
	c.entries[id] = &assetEntry{status: AssetPending}
	return true
}

func (c *AssetCache) decode(a Asset) {
	start := time.Now()
	var (
		img *image.RGBA
		err error
	)
	switch a.Kind {
	case AssetPattern:
		img, err = svg.Decode([]byte(a.Markup))
	default:
		img, err = svg.DecodeMin([]byte(a.Markup), c.stickerRes)
	}

	c.mu.Lock()
	e := c.entries[a.ID]
	if e.status != AssetPending {
		// Replaced by Store while decoding.
		c.mu.Unlock()
		return
	}
	if err != nil {
		e.status = AssetFailed
	} else {
		e.status, e.img = AssetReady, img
	}
	hooks := c.onReady
	c.mu.Unlock()

	if err != nil {
		Logger().Warn("thumbkit: asset decode failed", "id", a.ID, "kind", a.Kind, "err", err)
		return
	}
	Logger().Debug("thumbkit: asset decoded",
		"id", a.ID, "kind", a.Kind,
		"size", img.Bounds().Size(), "elapsed", time.Since(start))
	for _, fn := range hooks {
		fn(a.ID)
	}
}
