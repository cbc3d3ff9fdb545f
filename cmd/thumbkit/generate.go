package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gogpu/thumbkit"
	"github.com/gogpu/thumbkit/genai"
)

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var (
		prompt   = fs.String("prompt", "", "what to draw (empty picks a random example)")
		style    = fs.String("style", "none", "art style id, see 'thumbkit list'")
		palette  = fs.String("palette", "none", "color palette id, see 'thumbkit list'")
		aspect   = fs.String("aspect", string(genai.Aspect16x9), "aspect ratio: 16:9, 9:16, 1:1 or 4:3")
		vector   = fs.Bool("vector", true, "generate SVG artwork with the text model")
		enhance  = fs.Bool("enhance", false, "let the model improve the prompt first")
		describe = fs.String("describe", "", "derive the prompt from this image file")
		border   = fs.String("border", "none", "frame type: none, solid or gradient")
		width    = fs.Int("border-width", 16, "frame width in pixels")
		color1   = fs.String("color1", "#4F46E5", "frame color, or gradient start")
		color2   = fs.String("color2", "#EC4899", "gradient end color")
		key      = fs.String("key", "", "API key (default $GEMINI_API_KEY or the stored key)")
		model    = fs.String("model", genai.DefaultModel, "text model for SVG, prompts and descriptions")
		imgModel = fs.String("image-model", genai.DefaultImageModel, "image model for raster output")
		timeout  = fs.Duration("timeout", genai.DefaultTimeout, "limit for each service call")
		output   = fs.String("o", "base.png", "output PNG file")
		verbose  = fs.Bool("v", false, "debug logging")
	)
	fs.Parse(args)
	setupLogging(*verbose)

	opts := thumbkit.DefaultBorderOptions()
	opts.Type = thumbkit.BorderType(*border)
	opts.Width = *width
	var err error
	if opts.Color1, err = thumbkit.ParseColor(*color1); err != nil {
		return err
	}
	if opts.Color2, err = thumbkit.ParseColor(*color2); err != nil {
		return err
	}
	if opts.Type != thumbkit.BorderNone && (opts.Width < thumbkit.BorderWidthMin || opts.Width > thumbkit.BorderWidthMax) {
		return fmt.Errorf("border width %d outside [%d, %d]", opts.Width, thumbkit.BorderWidthMin, thumbkit.BorderWidthMax)
	}

	apiKey, err := resolveKey(*key)
	if err != nil {
		return err
	}
	client := genai.NewClient(apiKey,
		genai.WithModel(*model),
		genai.WithImageModel(*imgModel),
		genai.WithTimeout(*timeout),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	text := *prompt
	if *describe != "" {
		data, err := os.ReadFile(*describe)
		if err != nil {
			return err
		}
		if text, err = client.DescribeImage(ctx, data, mimeOf(data)); err != nil {
			return explain(err)
		}
		fmt.Fprintf(os.Stderr, "prompt: %s\n", text)
	}
	if text == "" {
		text = genai.RandomPrompt()
		fmt.Fprintf(os.Stderr, "prompt: %s\n", text)
	}
	if *enhance {
		text = client.EnhancePrompt(ctx, text)
		fmt.Fprintf(os.Stderr, "prompt: %s\n", text)
	}

	base, err := genai.NewPipeline(client).Generate(ctx, genai.Request{
		Prompt:  text,
		Style:   *style,
		Palette: *palette,
		Aspect:  genai.AspectRatio(*aspect),
		Vector:  *vector,
		Border:  opts,
	})
	if err != nil {
		return explain(err)
	}
	return savePNG(*output, base)
}

// explain turns classified service failures into user-facing advice.
func explain(err error) error {
	switch genai.KindOf(err) {
	case genai.KindInvalidCredential:
		if s, serr := genai.DefaultCredentialStore(); serr == nil {
			_ = s.Clear()
		}
		return fmt.Errorf("the API key looks invalid; set a new one with 'thumbkit key set': %w", err)
	case genai.KindQuotaExceeded:
		return fmt.Errorf("API quota exceeded, try again in a moment: %w", err)
	}
	if errors.Is(err, context.Canceled) {
		return errors.New("interrupted")
	}
	return err
}

// resolveKey returns the flag value, $GEMINI_API_KEY or the stored key.
func resolveKey(flagKey string) (string, error) {
	if flagKey != "" {
		return flagKey, nil
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		return k, nil
	}
	s, err := genai.DefaultCredentialStore()
	if err != nil {
		return "", err
	}
	k, err := s.Load()
	if errors.Is(err, genai.ErrNoCredential) {
		return "", errors.New("no API key: pass -key, set GEMINI_API_KEY or run 'thumbkit key set'")
	}
	return k, err
}
