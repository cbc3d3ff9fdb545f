package text

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// Built-in family names.
const (
	FamilyGo          = "Go"
	FamilyGoMedium    = "Go Medium"
	FamilyGoMono      = "Go Mono"
	FamilyGoSmallcaps = "Go Smallcaps"
	FamilySans        = "sans-serif"
)

// Catalog maps family names to faces. Text is always drawn bold, so the
// default family is Go Bold. Unknown families resolve to the default.
// Catalog is safe for concurrent use.
type Catalog struct {
	mu    sync.RWMutex
	faces map[string]*Face
	def   *Face
	sans  *Face
	emoji *Face
}

var builtins = []struct {
	family string
	data   []byte
}{
	{FamilyGo, gobold.TTF},
	{FamilyGoMedium, gomedium.TTF},
	{FamilyGoMono, gomonobold.TTF},
	{FamilyGoSmallcaps, gosmallcaps.TTF},
	{FamilySans, goregular.TTF},
}

// NewCatalog returns a catalog holding the Go font family.
func NewCatalog() *Catalog {
	c := &Catalog{faces: make(map[string]*Face, len(builtins))}
	for _, b := range builtins {
		f, err := ParseFace(b.family, b.data)
		if err != nil {
			panic(fmt.Sprintf("text: built-in font %q: %v", b.family, err))
		}
		c.faces[b.family] = f
	}
	c.def = c.faces[FamilyGo]
	c.sans = c.faces[FamilySans]
	return c
}

// Register parses data and makes it available as family, replacing any
// previous face of that name.
func (c *Catalog) Register(family string, data []byte) error {
	if family == "" {
		return ErrEmptyFamily
	}
	f, err := ParseFace(family, data)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.faces[family] = f
	if family == FamilySans {
		c.sans = f
	}
	c.mu.Unlock()
	return nil
}

// SetEmoji parses data as the face used for emoji layers.
func (c *Catalog) SetEmoji(data []byte) error {
	f, err := ParseFace("emoji", data)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.emoji = f
	c.mu.Unlock()
	return nil
}

// Lookup returns the face for family, or the default face.
func (c *Catalog) Lookup(family string) *Face {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if f, ok := c.faces[family]; ok {
		return f
	}
	return c.def
}

// Has reports whether family is registered.
func (c *Catalog) Has(family string) bool {
	c.mu.RLock()
	_, ok := c.faces[family]
	c.mu.RUnlock()
	return ok
}

// EmojiFaces returns the fallback chain for emoji: the emoji face, when
// one is set, followed by the sans-serif face.
func (c *Catalog) EmojiFaces() []*Face {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.emoji != nil {
		return []*Face{c.emoji, c.sans}
	}
	return []*Face{c.sans}
}

// Families returns the registered family names, sorted.
func (c *Catalog) Families() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.faces))
	for name := range c.faces {
		names = append(names, name)
	}
	c.mu.RUnlock()
	slices.Sort(names)
	return names
}
