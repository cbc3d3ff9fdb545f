package thumbkit

import "slices"

// Preset is a named text style applied to the selected text layer.
type Preset struct {
	ID    string
	Name  string
	Patch Patch
}

// Presets returns the built-in text style presets.
func Presets() []Preset { return slices.Clone(presets) }

// LookupPreset finds a preset by id.
func LookupPreset(id string) (Preset, bool) {
	i := slices.IndexFunc(presets, func(p Preset) bool { return p.ID == id })
	if i < 0 {
		return Preset{}, false
	}
	return presets[i], true
}

func solidPreset(id, name, color, stroke string, width float64, shadow string, blur, dx, dy float64) Preset {
	return Preset{ID: id, Name: name, Patch: Patch{
		FillKind:      Ptr(FillSolid),
		Color:         Ptr(MustParseColor(color)),
		StrokeColor:   Ptr(MustParseColor(stroke)),
		StrokeWidth:   Ptr(width),
		ShadowColor:   shadowPtr(shadow),
		ShadowBlur:    Ptr(blur),
		ShadowOffsetX: Ptr(dx),
		ShadowOffsetY: Ptr(dy),
	}}
}

func patternPreset(id, name, pattern, stroke string, width float64, shadow string, blur, dx, dy float64) Preset {
	return Preset{ID: id, Name: name, Patch: Patch{
		FillKind:      Ptr(FillPattern),
		PatternID:     Ptr(pattern),
		StrokeColor:   Ptr(MustParseColor(stroke)),
		StrokeWidth:   Ptr(width),
		ShadowColor:   shadowPtr(shadow),
		ShadowBlur:    Ptr(blur),
		ShadowOffsetX: Ptr(dx),
		ShadowOffsetY: Ptr(dy),
	}}
}

func gradientPreset(id, name, from, to, stroke string, width float64, shadow string, blur, dx, dy float64) Preset {
	return Preset{ID: id, Name: name, Patch: Patch{
		FillKind:      Ptr(FillGradient),
		Color:         Ptr(MustParseColor(from)),
		Color2:        Ptr(MustParseColor(to)),
		Direction:     Ptr(90.0),
		StrokeColor:   Ptr(MustParseColor(stroke)),
		StrokeWidth:   Ptr(width),
		ShadowColor:   shadowPtr(shadow),
		ShadowBlur:    Ptr(blur),
		ShadowOffsetX: Ptr(dx),
		ShadowOffsetY: Ptr(dy),
	}}
}

// shadowPtr returns nil for "", leaving the layer's shadow color alone.
func shadowPtr(s string) *Color {
	if s == "" {
		return nil
	}
	return Ptr(MustParseColor(s))
}

var presets = []Preset{
	solidPreset("clean_white", "Padrão", "#FFFFFF", "#000000", 4, "", 0, 0, 0),
	patternPreset("ps_gold", "Ouro Luxo", "gold_foil", "#4E342E", 4, "#000000", 8, 3, 3),
	patternPreset("ps_stone", "Pedra", "stone", "#212121", 3, "rgba(0,0,0,0.8)", 4, 4, 4),
	patternPreset("ps_glitter", "Glitter Roxo", "glitter_purple", "#FFFFFF", 3, "#7B1FA2", 15, 0, 0),
	patternPreset("ps_magma", "Magma", "magma", "#FFEB3B", 2, "#D50000", 20, 0, 0),
	patternPreset("ps_ice", "Congelado", "ice", "#0277BD", 4, "#81D4FA", 10, 0, 0),
	patternPreset("ps_tech", "Tech Carbono", "carbon", "#00E676", 2, "#00E676", 10, 0, 0),
	gradientPreset("gold_gradient", "Ouro Liso", "#FFFF00", "#FFA500", "#443300", 4, "#000000", 10, 2, 5),
	gradientPreset("silver", "Prata Liso", "#FFFFFF", "#999999", "#000000", 3, "rgba(0,0,0,0.8)", 5, 2, 3),
	gradientPreset("fire", "Fogo Liso", "#FFFF00", "#FF0000", "#330000", 5, "#FF4500", 15, 0, 0),
	solidPreset("neon_cyan", "Neon Ciano", "#00FFFF", "#FFFFFF", 2, "#00FFFF", 20, 0, 0),
	solidPreset("neon_pink", "Neon Rosa", "#FF00FF", "#FFFFFF", 2, "#FF00FF", 20, 0, 0),
	patternPreset("jungle_text", "Selva", "leaves", "#1B5E20", 4, "#000000", 5, 2, 2),
	patternPreset("metal_plate", "Metálico", "metal", "#000000", 3, "rgba(0,0,0,0.8)", 2, 2, 2),
}
