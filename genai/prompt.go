package genai

import (
	"math/rand/v2"
	"slices"
	"strings"
)

// PromptOption is a style or palette choice that prefixes the prompt.
type PromptOption struct {
	ID     string
	Name   string
	Prefix string
}

// Styles returns the art styles offered by the generator. The first,
// "none", adds nothing.
func Styles() []PromptOption { return slices.Clone(styles) }

// Palettes returns the color palettes offered by the generator. The
// first, "none", adds nothing.
func Palettes() []PromptOption { return slices.Clone(palettes) }

// BuildPrompt prefixes prompt with the style and palette prefixes,
// separated by single spaces. Unknown ids contribute nothing.
func BuildPrompt(style, palette, prompt string) string {
	parts := []string{prefixOf(styles, style), prefixOf(palettes, palette), strings.TrimSpace(prompt)}
	parts = slices.DeleteFunc(parts, func(s string) bool { return s == "" })
	return strings.Join(parts, " ")
}

func prefixOf(opts []PromptOption, id string) string {
	i := slices.IndexFunc(opts, func(o PromptOption) bool { return o.ID == id })
	if i < 0 {
		return ""
	}
	return opts[i].Prefix
}

// RandomPrompt returns one of the built-in example prompts.
func RandomPrompt() string {
	return randomPrompts[rand.IntN(len(randomPrompts))]
}

// RandomPrompts returns every built-in example prompt.
func RandomPrompts() []string { return slices.Clone(randomPrompts) }

var styles = []PromptOption{
	{ID: "none", Name: "Nenhum", Prefix: ""},
	{ID: "photorealistic", Name: "Fotorrealista", Prefix: "photorealistic, 8k, ultra detailed, sharp focus,"},
	{ID: "cinematic", Name: "Cinematográfico", Prefix: "cinematic still, epic lighting, dramatic, high contrast,"},
	{ID: "gaming", Name: "Gaming / E-sports", Prefix: "epic gaming thumbnail, dynamic action, vibrant colors, digital art, esports style,"},
	{ID: "anime", Name: "Anime Vibrante", Prefix: "vibrant anime style, detailed background, dynamic pose, trending on pixiv,"},
	{ID: "cyberpunk", Name: "Cyberpunk / Neon", Prefix: "cyberpunk style, neon lights, futuristic, high tech, night city background, glowing effects,"},
	{ID: "comic", Name: "HQs / Pop Art", Prefix: "comic book style, pop art, bold outlines, halftone dots, vibrant colors, expressive,"},
	{ID: "horror", Name: "Terror / Horror", Prefix: "horror theme, spooky atmosphere, dark shadows, ominous lighting, scary, high contrast,"},
	{ID: "gta", Name: "Estilo GTA", Prefix: "GTA loading screen art style, grand theft auto artwork, cel shaded, realistic characters with bold outlines, digital painting,"},
	{ID: "minecraft", Name: "Minecraft / Voxel", Prefix: "minecraft style, voxel art, blocky world, ray tracing shaders, bright colors, 3d render,"},
	{ID: "roblox", Name: "Roblox 3D", Prefix: "roblox game style, 3d character render, smooth plastic texture, bright studio lighting, fun atmosphere,"},
	{ID: "lego", Name: "LEGO", Prefix: "lego style, plastic bricks, macro photography, depth of field, playful,"},
	{ID: "vaporwave", Name: "Vaporwave / Retrô 80s", Prefix: "vaporwave aesthetic, synthwave, 80s retro style, neon pink and blue, nostalgic, glitch art elements,"},
	{ID: "claymation", Name: "Massinha / Claymation", Prefix: "claymation style, plasticine texture, stop motion animation look, soft rounded shapes, studio lighting,"},
	{ID: "pixel_art", Name: "Pixel Art", Prefix: "pixel art style, 16-bit graphics, retro game aesthetic, blocky details,"},
	{ID: "oil_painting", Name: "Pintura a Óleo", Prefix: "oil painting style, thick brushstrokes, artistic texture, classical art style, masterpiece,"},
	{ID: "vector", Name: "Arte Vetorial / Flat", Prefix: "vector art, flat design, clean lines, solid colors, minimalist illustrator style, corporate memphis,"},
	{ID: "minimalist", Name: "Minimalista", Prefix: "minimalist design, clean background, simple shapes, elegant,"},
	{ID: "3d_render", Name: "Render 3D Profissional", Prefix: "3d render, octane render, trending on artstation, isometric, cinema 4d,"},
}

var palettes = []PromptOption{
	{ID: "none", Name: "Nenhuma", Prefix: ""},
	{ID: "vibrant", Name: "Vibrante e Contrastante", Prefix: "vibrant color scheme, high contrast, neon accents,"},
	{ID: "dark_moody", Name: "Escuro e Intimista", Prefix: "dark and moody color palette, deep shadows, dramatic lighting,"},
	{ID: "bright_clean", Name: "Claro e Limpo", Prefix: "bright and clean color palette, soft lighting, airy feel,"},
	{ID: "retro", Name: "Retrô", Prefix: "retro color palette, 80s synthwave aesthetic, vintage feel,"},
	{ID: "pastel", Name: "Tons Pastel", Prefix: "soft pastel color palette, gentle colors, dreamy atmosphere,"},
	{ID: "golden_hour", Name: "Golden Hour (Pôr do Sol)", Prefix: "golden hour lighting, warm tones, sun flare, orange and teal,"},
}

var randomPrompts = []string{
	"Um astronauta jogando xadrez com um alienígena na superfície de Marte, realista, alta definição.",
	"Um gato hacker invadindo a matrix, estilo cyberpunk, luzes neon, óculos escuros, código verde caindo.",
	"Um castelo flutuante feito de doces e sorvete, céu azul vibrante, estilo Pixar, 3d render.",
	"Um detetive particular noir em uma cidade chuvosa, preto e branco com um guarda-chuva vermelho brilhante.",
	"Um dragão mecânico soltando fogo azul, detalhes complexos, fundo industrial, steampunk.",
	"Uma lhama surfando em uma onda gigante de arco-íris, estilo cartoon vibrante, sol brilhante.",
	"Um laboratório de cientista maluco explodindo com poções coloridas, expressão de choque, fumaça colorida.",
	"Um guerreiro viking lutando contra um robô futurista, épico, cinematográfico, raios e trovões.",
	"Uma pizza gigante flutuando no espaço sideral como um OVNI, planetas de pepperoni, estrelas brilhantes.",
	"Um escritório moderno onde todos os funcionários são cachorros de terno, sérios, trabalhando em computadores.",
	"Uma floresta mágica brilhante à noite, cogumelos gigantes fluorescentes, fadas, atmosfera mística.",
	"Um carro esportivo futurista voando sobre uma cidade cyberpunk, motion blur, luzes de velocidade.",
	"Um zumbi gamer jogando videogame com raiva, headset, controle quebrado, quarto bagunçado com luz led.",
	"Uma paisagem de montanhas feitas de polígonos low poly, pôr do sol roxo e rosa, estilo vaporwave.",
	"Um close-up extremo de um olho humano refletindo uma galáxia inteira, detalhado, macro.",
}
