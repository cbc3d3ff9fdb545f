package thumbkit

import (
	"fmt"
	"slices"
)

// AssetKind selects how an asset is rasterized.
type AssetKind uint8

const (
	// AssetSticker is drawn stretched into a layer footprint, so it is
	// decoded at a generous resolution.
	AssetSticker AssetKind = iota

	// AssetPattern is tiled at its natural size.
	AssetPattern
)

func (k AssetKind) String() string {
	switch k {
	case AssetSticker:
		return "sticker"
	case AssetPattern:
		return "pattern"
	default:
		return fmt.Sprintf("AssetKind(%d)", uint8(k))
	}
}

// Asset is a piece of SVG artwork addressable by id.
type Asset struct {
	ID     string
	Name   string
	Kind   AssetKind
	Markup string
}

// Patterns returns the built-in text fill patterns.
func Patterns() []Asset { return slices.Clone(patternAssets) }

// Stickers returns the built-in stickers.
func Stickers() []Asset { return slices.Clone(stickerAssets) }

// LookupAsset finds a built-in pattern or sticker by id.
func LookupAsset(id string) (Asset, error) {
	for _, list := range [][]Asset{patternAssets, stickerAssets} {
		for _, a := range list {
			if a.ID == id {
				return a, nil
			}
		}
	}
	return Asset{}, fmt.Errorf("%w: %q", ErrUnknownAsset, id)
}

// isPattern reports whether id names a built-in pattern.
func isPattern(id string) bool {
	return slices.ContainsFunc(patternAssets, func(a Asset) bool { return a.ID == id })
}

// Emojis returns the emoji offered by the editor.
func Emojis() []string { return slices.Clone(emojiList) }

var emojiList = []string{
	"😂", "❤️", "🔥", "👍", "🤯", "😱", "💰", "🚀", "⭐", "🎉", "💯", "✅",
	"🤔", "😲", "😭", "🙏", "🙌", "😮", "😡", "🙄", "😏", "😇", "🥳", "🥺",
	"📈", "💎", "🏆", "🎁", "➡️", "❓", "❗", "❌", "⚠️", "🛑", "💔", "😠",
	"😎", "😜", "😨", "😢", "🤩", "🤑", "🤐", "🤫", "🧐", "😈", "🤡", "💀",
	"👽", "🤖", "👾", "👀", "🧠", "💪", "👈", "👉", "👆", "👇", "👊", "👋",
	"✍️", "👑", "💡", "💣", "💥", "💸", "📞", "💻", "🖥️", "⌨️", "🖱️", "🎮",
	"📸", "🎥", "📺", "🔔", "🚫", "❎", "➕", "➖", "➗", "✖️", "🔜", "🔝", "🔞",
}

// FontOption is a font family offered by the editor. Families that have
// not been registered with a FontCatalog render in the default face.
type FontOption struct {
	Family string
	Label  string
}

// FontOptions returns the families offered by the editor.
func FontOptions() []FontOption { return slices.Clone(fontOptions) }

var fontOptions = []FontOption{
	{"Anton", "Anton (Impacto)"},
	{"Bebas Neue", "Bebas Neue (Alto)"},
	{"Oswald", "Oswald (Moderno)"},
	{"Montserrat", "Montserrat (Geométrico)"},
	{"Poppins", "Poppins (Redondo)"},
	{"Roboto", "Roboto (Padrão)"},
	{"Open Sans", "Open Sans (Limpo)"},
	{"Lato", "Lato (Amigável)"},
	{"Bangers", "Bangers (Quadrinhos)"},
	{"Permanent Marker", "Permanent Marker (Canetão)"},
	{"Press Start 2P", "Press Start 2P (Pixel)"},
	{"Creepster", "Creepster (Terror)"},
	{"Lobster", "Lobster (Cursiva)"},
	{"Pacifico", "Pacifico (Manuscrito)"},
	{"Abril Fatface", "Abril Fatface (Elegante)"},
	{"Righteous", "Righteous (Tech)"},
	{"Fredoka", "Fredoka (Divertido)"},
	{"Merriweather", "Merriweather (Serifa)"},
	{"Raleway", "Raleway (Fino/Elegante)"},
	{"Impact", "Impact (Clássico)"},
}
