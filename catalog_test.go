package thumbkit

import (
	"errors"
	"testing"
)

func TestCatalogCounts(t *testing.T) {
	if got := len(Patterns()); got != 12 {
		t.Errorf("len(Patterns()) = %d, want 12", got)
	}
	if got := len(Stickers()); got == 0 {
		t.Error("no stickers")
	}
	if got := len(Presets()); got != 14 {
		t.Errorf("len(Presets()) = %d, want 14", got)
	}
	if got := len(FontOptions()); got != 20 {
		t.Errorf("len(FontOptions()) = %d, want 20", got)
	}
	if len(Emojis()) == 0 {
		t.Error("no emoji")
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range append(Patterns(), Stickers()...) {
		if seen[a.ID] {
			t.Errorf("duplicate asset id %q", a.ID)
		}
		seen[a.ID] = true
		if a.Markup == "" {
			t.Errorf("asset %q has no markup", a.ID)
		}
	}
	for _, a := range Patterns() {
		if a.Kind != AssetPattern {
			t.Errorf("pattern %q kind = %v", a.ID, a.Kind)
		}
	}
}

func TestLookupAsset(t *testing.T) {
	a, err := LookupAsset("gold_foil")
	if err != nil || a.Kind != AssetPattern {
		t.Errorf("LookupAsset(gold_foil) = %+v, %v", a, err)
	}
	if _, err := LookupAsset("nope"); !errors.Is(err, ErrUnknownAsset) {
		t.Errorf("LookupAsset(nope) = %v, want ErrUnknownAsset", err)
	}
}

func TestPresetsReferToKnownPatterns(t *testing.T) {
	for _, p := range Presets() {
		if p.Patch.PatternID == nil {
			continue
		}
		if _, err := LookupAsset(*p.Patch.PatternID); err != nil {
			t.Errorf("preset %s: %v", p.ID, err)
		}
	}
	if _, ok := LookupPreset("clean_white"); !ok {
		t.Error("LookupPreset(clean_white) not found")
	}
	if _, ok := LookupPreset("missing"); ok {
		t.Error("LookupPreset(missing) found")
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	p := Patterns()
	p[0].ID = "changed"
	if Patterns()[0].ID == "changed" {
		t.Error("Patterns exposes the catalog")
	}
}
