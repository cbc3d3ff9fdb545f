package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gogpu/thumbkit"
)

// fontFlags collects repeated -font Family=path flags.
type fontFlags map[string]string

func (f fontFlags) String() string { return fmt.Sprint(map[string]string(f)) }

func (f fontFlags) Set(v string) error {
	family, path, ok := strings.Cut(v, "=")
	if !ok || family == "" || path == "" {
		return fmt.Errorf("want Family=path, got %q", v)
	}
	f[family] = path
	return nil
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	fonts := fontFlags{}
	var (
		docPath = fs.String("doc", "", "layer document (.json, .msgpack or .mpk)")
		bgPath  = fs.String("bg", "", "base image (PNG, JPEG or WebP)")
		preview = fs.Int("preview-width", 0, "width of the surface the layers were authored on (default: base width)")
		output  = fs.String("o", thumbkit.ExportFilename, "output JPEG file")
		emoji   = fs.String("emoji-font", "", "font file used for emoji layers (default: a system color emoji font)")
		verbose = fs.Bool("v", false, "debug logging")
	)
	fs.Var(fonts, "font", "register a font family, Family=path (repeatable)")
	fs.Parse(args)
	setupLogging(*verbose)

	if *docPath == "" || *bgPath == "" {
		return errors.New("render needs -doc and -bg")
	}
	bg, err := loadImage(*bgPath)
	if err != nil {
		return err
	}
	doc, err := readDocument(*docPath)
	if err != nil {
		return err
	}

	catalog := thumbkit.NewFontCatalog()
	for family, path := range fonts {
		if err := catalog.RegisterFile(family, path); err != nil {
			return err
		}
	}
	if *emoji != "" {
		data, err := os.ReadFile(*emoji)
		if err != nil {
			return err
		}
		if err := catalog.SetEmojiFont(data); err != nil {
			return err
		}
	} else {
		loadSystemEmoji(catalog)
	}

	assets := thumbkit.NewAssetCache()
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := assets.PreloadAll(ctx, referencedAssets(doc)); err != nil {
		return err
	}

	width := *preview
	if width <= 0 {
		width = bg.Bounds().Dx()
	}
	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	engine := thumbkit.NewEngine(catalog, assets)
	if err := engine.Export(f, bg, doc.Filters, doc.Layers, width); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func readDocument(path string) (thumbkit.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return thumbkit.Document{}, err
	}
	defer f.Close()
	return thumbkit.DecodeDocument(f, thumbkit.FormatOf(path))
}

// referencedAssets returns the built-in assets the document's layers use.
func referencedAssets(doc thumbkit.Document) []thumbkit.Asset {
	seen := map[string]bool{}
	var out []thumbkit.Asset
	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		a, err := thumbkit.LookupAsset(id)
		if err != nil {
			thumbkit.Logger().Warn("thumbkit: layer references an unknown asset", "err", err)
			return
		}
		out = append(out, a)
	}
	for _, l := range doc.Layers {
		switch v := l.(type) {
		case thumbkit.TextLayer:
			if v.Fill.Kind == thumbkit.FillPattern {
				add(v.Fill.PatternID)
			}
		case thumbkit.VisualLayer:
			if v.Kind == thumbkit.VisualSticker {
				add(v.Content)
			}
		}
	}
	return out
}

// systemEmojiFonts lists color emoji fonts shipped by common distributions.
var systemEmojiFonts = []string{
	"/usr/share/fonts/truetype/noto/NotoColorEmoji.ttf",
	"/usr/share/fonts/noto/NotoColorEmoji.ttf",
	"/usr/share/fonts/google-noto-emoji/NotoColorEmoji.ttf",
	"/usr/share/fonts/noto-emoji/NotoColorEmoji.ttf",
}

// loadSystemEmoji installs the first system emoji font that parses.
func loadSystemEmoji(catalog *thumbkit.FontCatalog) {
	for _, path := range systemEmojiFonts {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := catalog.SetEmojiFont(data); err != nil {
			thumbkit.Logger().Warn("thumbkit: system emoji font", "path", path, "err", err)
			continue
		}
		thumbkit.Logger().Debug("thumbkit: emoji font", "path", path)
		return
	}
}
