package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gogpu/thumbkit"
	"github.com/gogpu/thumbkit/genai"
)

func runList(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	section := func(title string) { fmt.Fprintf(w, "\n%s\n", title) }

	section("PRESETS")
	for _, p := range thumbkit.Presets() {
		fmt.Fprintf(w, "  %s\t%s\n", p.ID, p.Name)
	}
	section("STYLES")
	for _, o := range genai.Styles() {
		fmt.Fprintf(w, "  %s\t%s\n", o.ID, o.Name)
	}
	section("PALETTES")
	for _, o := range genai.Palettes() {
		fmt.Fprintf(w, "  %s\t%s\n", o.ID, o.Name)
	}
	section("FONTS")
	for _, f := range thumbkit.FontOptions() {
		fmt.Fprintf(w, "  %s\t%s\n", f.Family, f.Label)
	}
	section("PATTERNS")
	for _, a := range thumbkit.Patterns() {
		fmt.Fprintf(w, "  %s\t%s\n", a.ID, a.Name)
	}
	section("STICKERS")
	for _, a := range thumbkit.Stickers() {
		fmt.Fprintf(w, "  %s\t%s\n", a.ID, a.Name)
	}
	w.Flush()
}
