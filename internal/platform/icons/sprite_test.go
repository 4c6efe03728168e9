package icons

import (
	"strings"
	"testing"
)

func TestSpriteHoldsOneSymbolPerIcon(t *testing.T) {
	svg := parseSVG(t, Sprite())
	if got := attr(svg, "style"); got != "display:none" {
		t.Fatalf("style = %q", got)
	}

	symbols := findElements(svg, "symbol")
	ids := IDs()
	if len(symbols) != len(ids) {
		t.Fatalf("sprite has %d symbols, want %d", len(symbols), len(ids))
	}
	for i, symbol := range symbols {
		def, err := Get(ids[i])
		if err != nil {
			t.Fatalf("Get(%s): %v", ids[i], err)
		}
		if got := attr(symbol, "id"); got != SymbolID(def.ID) {
			t.Fatalf("symbol %d id = %q, want %q", i, got, SymbolID(def.ID))
		}
		if got := attr(symbol, "viewBox"); got != def.ViewBox.String() {
			t.Fatalf("symbol %s viewBox = %q", def.ID, got)
		}
		if got := len(findElements(symbol, "path")); got != len(def.Paths) {
			t.Fatalf("symbol %s has %d paths, want %d", def.ID, got, len(def.Paths))
		}
	}
}

func TestSpriteIsStable(t *testing.T) {
	if Sprite() != Sprite() {
		t.Fatal("expected deterministic sprite output")
	}
}

func TestSymbolID(t *testing.T) {
	if got := SymbolID(ArrowDropDown); got != "icon-arrow-drop-down" {
		t.Fatalf("SymbolID = %q", got)
	}
}

func TestSpriteOfCustomRegistry(t *testing.T) {
	r := MustNew(Definition{ID: "dot", ViewBox: ViewBox{0, 0, 4, 4}, Paths: []Path{{D: "M0 0h4v4H0z"}}})
	sprite := r.Sprite()
	if !strings.Contains(sprite, `<symbol id="icon-dot" viewBox="0 0 4 4">`) {
		t.Fatalf("unexpected sprite: %s", sprite)
	}
}
