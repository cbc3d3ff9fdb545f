// Package thumbkit composites editable overlays onto generated thumbnails.
//
// # Overview
//
// A thumbnail starts as a base image, usually produced by a generative
// model (see package genai) and optionally framed with a border. On top of
// it the user stacks layers: text with fill, stroke and shadow, and visual
// elements (emoji and stickers). Background filters adjust brightness,
// contrast and saturation of the base image only.
//
// # Quick Start
//
//	fonts := thumbkit.NewFontCatalog()
//	assets := thumbkit.NewAssetCache()
//	assets.PreloadAll(ctx, thumbkit.Stickers())
//
//	ed := thumbkit.NewEditor(base)
//	ed.AddText()
//	ed.ApplyPreset("neon_pink")
//
//	eng := thumbkit.NewEngine(fonts, assets)
//	f, _ := os.Create(thumbkit.ExportFilename)
//	err := eng.Export(f, base, ed.Filters(), ed.Layers(), 800)
//
// # Coordinates
//
// Layer positions are percentages of the surface, so the same layer list
// renders proportionally on a small preview and on a full-resolution
// export. Pixel magnitudes (font size, stroke width, shadow) are authored
// at preview resolution and multiplied by the render scale.
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Architecture
//
//   - Layer model: Layer, TextLayer, VisualLayer, Patch, Filters
//   - Rendering: Engine, AssetCache, FontCatalog, Preview
//   - Interaction: Editor, HitTester
//   - Framing: Frame, FrameVector
package thumbkit
