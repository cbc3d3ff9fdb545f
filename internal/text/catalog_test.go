package text

import (
	"errors"
	"slices"
	"testing"

	"golang.org/x/image/font/gofont/goitalic"
)

func TestCatalogLookupFallsBack(t *testing.T) {
	c := NewCatalog()
	def := c.Lookup(FamilyGo)
	if got := c.Lookup("Anton"); got != def {
		t.Errorf("Lookup(unknown) = %q, want default %q", got.Name(), def.Name())
	}
	if got := c.Lookup(FamilyGoMono); got == def {
		t.Error("Lookup(Go Mono) returned the default face")
	}
}

func TestCatalogRegister(t *testing.T) {
	c := NewCatalog()
	if err := c.Register("Anton", goitalic.TTF); err != nil {
		t.Fatal(err)
	}
	if !c.Has("Anton") {
		t.Error("Has(Anton) = false after Register")
	}
	if got := c.Lookup("Anton").Name(); got != "Anton" {
		t.Errorf("Lookup(Anton).Name() = %q, want Anton", got)
	}
	if !slices.Contains(c.Families(), "Anton") {
		t.Errorf("Families() = %v, missing Anton", c.Families())
	}

	if err := c.Register("", goitalic.TTF); !errors.Is(err, ErrEmptyFamily) {
		t.Errorf("Register(\"\") err = %v, want ErrEmptyFamily", err)
	}
}

func TestCatalogEmojiFallback(t *testing.T) {
	c := NewCatalog()
	if got := c.EmojiFaces(); len(got) != 1 || got[0] != c.Lookup(FamilySans) {
		t.Errorf("EmojiFaces() = %d faces, want the sans-serif face alone", len(got))
	}
	if err := c.SetEmoji(goitalic.TTF); err != nil {
		t.Fatal(err)
	}
	got := c.EmojiFaces()
	if len(got) != 2 || got[0].Name() != "emoji" || got[1] != c.Lookup(FamilySans) {
		t.Errorf("EmojiFaces() = %d faces, want emoji then sans-serif", len(got))
	}
}
