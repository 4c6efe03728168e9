package icons

import (
	"errors"
	"math"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/iconhub/internal/platform/errors"
)

func TestDefaultRegistryDefinitionsAreWellFormed(t *testing.T) {
	ids := IDs()
	if len(ids) == 0 {
		t.Fatal("expected registered icons")
	}
	for _, id := range ids {
		def, err := Get(id)
		if err != nil {
			t.Fatalf("Get(%q) = %v", id, err)
		}
		if def.ID != id {
			t.Errorf("Get(%q).ID = %q", id, def.ID)
		}
		if len(def.ViewBox) != 4 {
			t.Errorf("icon %s view box has %d components", id, len(def.ViewBox))
		}
		for _, n := range def.ViewBox {
			if math.IsNaN(n) || math.IsInf(n, 0) {
				t.Errorf("icon %s view box %v is not finite", id, def.ViewBox)
			}
		}
		if len(def.Paths) == 0 {
			t.Errorf("icon %s has no paths", id)
		}
		if strings.TrimSpace(def.Name) == "" {
			t.Errorf("icon %s missing name", id)
		}
		if strings.TrimSpace(def.Description) == "" {
			t.Errorf("icon %s missing description", id)
		}
	}
}

func TestIDsHaveNoDuplicates(t *testing.T) {
	seen := make(map[ID]struct{})
	for _, id := range IDs() {
		if _, ok := seen[id]; ok {
			t.Errorf("duplicate icon id: %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestIDsKeepCatalogOrder(t *testing.T) {
	ids := IDs()
	defs := Catalog()
	if len(ids) != len(defs) {
		t.Fatalf("len(IDs()) = %d, len(Catalog()) = %d", len(ids), len(defs))
	}
	for i, def := range defs {
		if ids[i] != def.ID {
			t.Fatalf("IDs()[%d] = %q, want %q", i, ids[i], def.ID)
		}
	}
	if ids[0] != LogoFull {
		t.Fatalf("first id = %q, want %q", ids[0], LogoFull)
	}
}

func TestPublishedIDsAreStable(t *testing.T) {
	published := map[ID]string{
		Close:         "close",
		Warning:       "warning",
		ArrowDown:     "arrow-down",
		ArrowDropDown: "arrow-drop-down",
		VisibilityOff: "visibility-off",
	}
	for id, raw := range published {
		if string(id) != raw {
			t.Errorf("identifier %q was renamed to %q", raw, id)
		}
		if !Default().Has(id) {
			t.Errorf("identifier %q is not registered", raw)
		}
	}
}

func TestIDsReturnsCopy(t *testing.T) {
	ids := IDs()
	ids[0] = "mutated"
	if IDs()[0] == "mutated" {
		t.Fatal("expected IDs to return an independent slice")
	}
}

func TestGetUnknownIcon(t *testing.T) {
	_, err := Get("__nonexistent__")
	if err == nil {
		t.Fatal("expected unknown icon error")
	}
	if !errors.Is(err, ErrUnknownIcon) {
		t.Fatalf("expected ErrUnknownIcon, got %v", err)
	}
	domainErr, ok := apperrors.As(err)
	if !ok {
		t.Fatalf("expected domain error, got %T", err)
	}
	if domainErr.Metadata["IconID"] != "__nonexistent__" {
		t.Fatalf("metadata IconID = %q", domainErr.Metadata["IconID"])
	}
}

func TestGetReturnsIndependentCopy(t *testing.T) {
	first, err := Get(Clock)
	if err != nil {
		t.Fatalf("Get(clock): %v", err)
	}
	original := first.Paths[0].D
	first.Paths[0].D = "M0 0"

	second, err := Get(Clock)
	if err != nil {
		t.Fatalf("Get(clock): %v", err)
	}
	if second.Paths[0].D != original {
		t.Fatal("expected registry data to be unaffected by caller mutation")
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    ID
		wantErr bool
	}{
		{raw: "close", want: Close},
		{raw: "  Arrow-Down ", want: ArrowDown},
		{raw: "CLOSE", want: Close},
		{raw: "", wantErr: true},
		{raw: "closed", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseID(tc.raw)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownIcon) {
				t.Errorf("ParseID(%q) error = %v, want ErrUnknownIcon", tc.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseID(%q) = %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseID(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNewRejectsInvalidDefinitions(t *testing.T) {
	valid := Definition{ID: "dot", ViewBox: ViewBox{0, 0, 4, 4}, Paths: []Path{{D: "M0 0h4v4H0z"}}}

	tests := []struct {
		name   string
		mutate func(*Definition)
	}{
		{name: "empty id", mutate: func(d *Definition) { d.ID = "" }},
		{name: "uppercase id", mutate: func(d *Definition) { d.ID = "Dot" }},
		{name: "spaced id", mutate: func(d *Definition) { d.ID = "big dot" }},
		{name: "zero width", mutate: func(d *Definition) { d.ViewBox = ViewBox{0, 0, 0, 4} }},
		{name: "negative height", mutate: func(d *Definition) { d.ViewBox = ViewBox{0, 0, 4, -1} }},
		{name: "nan", mutate: func(d *Definition) { d.ViewBox = ViewBox{math.NaN(), 0, 4, 4} }},
		{name: "infinite", mutate: func(d *Definition) { d.ViewBox = ViewBox{0, math.Inf(1), 4, 4} }},
		{name: "no paths", mutate: func(d *Definition) { d.Paths = nil }},
		{name: "blank path", mutate: func(d *Definition) { d.Paths = []Path{{D: "  "}} }},
		{name: "bad paint", mutate: func(d *Definition) { d.Paths = []Path{{D: "M0 0", Paint: Paint(9)}} }},
		{name: "bad fill rule", mutate: func(d *Definition) { d.Paths = []Path{{D: "M0 0", FillRule: "odd"}} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			def := valid.clone()
			tc.mutate(&def)
			_, err := New(def)
			if err == nil {
				t.Fatal("expected invalid definition error")
			}
			if got := apperrors.CodeOf(err); got != apperrors.CodeIconInvalidDefinition {
				t.Fatalf("code = %q, want %q", got, apperrors.CodeIconInvalidDefinition)
			}
		})
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	def := Definition{ID: "dot", ViewBox: ViewBox{0, 0, 4, 4}, Paths: []Path{{D: "M0 0h4v4H0z"}}}
	_, err := New(def, def)
	if got := apperrors.CodeOf(err); got != apperrors.CodeIconDuplicateID {
		t.Fatalf("code = %q, want %q", got, apperrors.CodeIconDuplicateID)
	}
}

func TestNewCopiesInputPaths(t *testing.T) {
	paths := []Path{{D: "M0 0h4v4H0z"}}
	r, err := New(Definition{ID: "dot", ViewBox: ViewBox{0, 0, 4, 4}, Paths: paths})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	paths[0].D = "M1 1"

	def, err := r.Get("dot")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if def.Paths[0].D != "M0 0h4v4H0z" {
		t.Fatal("expected registry to own a copy of the input paths")
	}
}

func TestMustNewPanicsOnInvalidDefinition(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustNew(Definition{ID: "dot"})
}

func TestViewBoxString(t *testing.T) {
	tests := []struct {
		box  ViewBox
		want string
	}{
		{box: ViewBox{0, 0, 24, 24}, want: "0 0 24 24"},
		{box: ViewBox{-2, -2.5, 28, 20}, want: "-2 -2.5 28 20"},
		{box: ViewBox{0, 0, 74, 24}, want: "0 0 74 24"},
	}
	for _, tc := range tests {
		if got := tc.box.String(); got != tc.want {
			t.Errorf("ViewBox(%v).String() = %q, want %q", [4]float64(tc.box), got, tc.want)
		}
	}
}

func TestNonSquareViewBoxesAreKept(t *testing.T) {
	def, err := Get(LogoFull)
	if err != nil {
		t.Fatalf("Get(logo-full): %v", err)
	}
	if def.ViewBox.Width() == def.ViewBox.Height() {
		t.Fatalf("expected non-square view box, got %v", def.ViewBox)
	}
}
