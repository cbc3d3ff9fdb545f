package genai

import (
	"regexp"
	"strings"
)

var svgElement = regexp.MustCompile(`(?is)<svg[\s\S]*?</svg>`)

var fenceReplacer = strings.NewReplacer("```xml", "", "```svg", "", "```", "")

// ExtractSVG pulls SVG markup out of model text. The first complete
// <svg>...</svg> element wins; otherwise markdown fences are stripped and
// the remaining text is used if it contains an opening <svg tag.
func ExtractSVG(text string) ([]byte, error) {
	if m := svgElement.FindString(text); m != "" {
		return []byte(m), nil
	}
	s := strings.TrimSpace(fenceReplacer.Replace(text))
	if !strings.Contains(strings.ToLower(s), "<svg") {
		return nil, ErrNoPayload
	}
	return []byte(s), nil
}
