// Command thumbkit generates thumbnail base images and renders layer
// documents over them.
//
// Usage:
//
//	thumbkit generate -prompt "a cat hacker" -style cyberpunk -o base.png
//	thumbkit render -doc layers.json -bg base.png -o thumbnail_editada.jpg
//	thumbkit key set <api-key> | thumbkit key clear
//	thumbkit list
package main

import (
	"fmt"
	"image"
	_ "image/jpeg" // background decoders
	"image/png"
	"log/slog"
	"os"

	_ "golang.org/x/image/webp"

	"github.com/gogpu/thumbkit"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "generate":
		err = runGenerate(args)
	case "render":
		err = runRender(args)
	case "key":
		err = runKey(args)
	case "list":
		runList(os.Stdout)
	case "-h", "-help", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "thumbkit: unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "thumbkit: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: thumbkit <command> [flags]

commands:
  generate   create a base image from a prompt
  render     draw a layer document over a base image and export JPEG
  key        set or clear the stored API key
  list       print presets, styles, palettes, fonts and assets
`)
}

// setupLogging installs a text logger on stderr.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	thumbkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
