package domain

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/iconhub/internal/platform/errors"
	"github.com/louisbranch/iconhub/internal/platform/icons"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestIconListHandler(t *testing.T) {
	handler := IconListHandler(icons.Default(), nil)

	t.Run("all icons", func(t *testing.T) {
		_, result, err := handler(context.Background(), nil, IconListInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ids := icons.IDs()
		if len(result.Icons) != len(ids) {
			t.Fatalf("icons = %d, want %d", len(result.Icons), len(ids))
		}
		for i, id := range ids {
			if result.Icons[i].ID != id.String() {
				t.Fatalf("icon %d = %q, want %q", i, result.Icons[i].ID, id)
			}
		}
	})

	t.Run("query", func(t *testing.T) {
		_, result, err := handler(context.Background(), nil, IconListInput{Query: " ARROW "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Icons) == 0 {
			t.Fatal("expected arrow icons")
		}
		for _, icon := range result.Icons {
			if !strings.Contains(icon.ID, "arrow") && !strings.Contains(strings.ToLower(icon.Name), "arrow") {
				t.Fatalf("unexpected match %+v", icon)
			}
		}
	})

	t.Run("no match is empty not nil", func(t *testing.T) {
		_, result, err := handler(context.Background(), nil, IconListInput{Query: "zzz-none"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Icons == nil || len(result.Icons) != 0 {
			t.Fatalf("expected empty list, got %#v", result.Icons)
		}
	})

	t.Run("nil registry", func(t *testing.T) {
		if _, _, err := IconListHandler(nil, nil)(context.Background(), nil, IconListInput{}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestIconGetHandler(t *testing.T) {
	handler := IconGetHandler(icons.Default(), nil)

	_, result, err := handler(context.Background(), nil, IconGetInput{ID: " Close "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def, err := icons.Get("close")
	if err != nil {
		t.Fatalf("get close: %v", err)
	}
	if result.ID != "close" || result.Name != def.Name {
		t.Fatalf("unexpected result %+v", result)
	}
	if result.ViewBox != [4]float64(def.ViewBox) {
		t.Fatalf("view box = %v, want %v", result.ViewBox, def.ViewBox)
	}
	if len(result.Paths) != len(def.Paths) {
		t.Fatalf("paths = %d, want %d", len(result.Paths), len(def.Paths))
	}

	_, _, err = handler(context.Background(), nil, IconGetInput{ID: "__nonexistent__"})
	if !errors.Is(err, icons.ErrUnknownIcon) {
		t.Fatalf("expected unknown icon error, got %v", err)
	}
}

func TestIconRenderHandler(t *testing.T) {
	handler := IconRenderHandler(icons.Default(), nil)

	tests := []struct {
		name     string
		input    IconRenderInput
		wantErr  error
		wantName string
		contains []string
	}{
		{
			name:     "decorative",
			input:    IconRenderInput{ID: "close", Decorative: true, Label: "ignored"},
			contains: []string{`aria-hidden="true"`},
		},
		{
			name:     "labeled",
			input:    IconRenderInput{ID: "close", Label: "Close dialog", Size: 16, Color: "#333"},
			wantName: "Close dialog",
			contains: []string{`aria-label="Close dialog"`, `width="16"`, `fill="#333"`},
		},
		{
			name:    "missing label",
			input:   IconRenderInput{ID: "close"},
			wantErr: icons.ErrMissingLabel,
		},
		{
			name:    "unknown icon",
			input:   IconRenderInput{ID: "nope", Decorative: true},
			wantErr: icons.ErrUnknownIcon,
		},
		{
			name:    "markup color",
			input:   IconRenderInput{ID: "close", Decorative: true, Color: `red"><script>`},
			wantErr: apperrors.New(apperrors.CodeInvalidArgument, "invalid color"),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, result, err := handler(context.Background(), nil, tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.AccessibleName != tc.wantName {
				t.Fatalf("accessible name = %q, want %q", result.AccessibleName, tc.wantName)
			}
			for _, want := range tc.contains {
				if !strings.Contains(result.SVG, want) {
					t.Fatalf("expected %s in %q", want, result.SVG)
				}
			}
		})
	}
}

func TestIconCatalogResourceHandler(t *testing.T) {
	handler := IconCatalogResourceHandler(icons.Default())

	result, err := handler(context.Background(), &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: CatalogURI}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(result.Contents))
	}
	content := result.Contents[0]
	if content.URI != CatalogURI || content.MIMEType != "application/json" {
		t.Fatalf("unexpected content metadata %+v", content)
	}
	var payload IconCatalogPayload
	if err := json.Unmarshal([]byte(content.Text), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if len(payload.Icons) != len(icons.IDs()) {
		t.Fatalf("icons = %d, want %d", len(payload.Icons), len(icons.IDs()))
	}

	if _, err := handler(context.Background(), &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: "icons://other"}}); err == nil {
		t.Fatal("expected error for unknown uri")
	}
	if _, err := handler(context.Background(), nil); err != nil {
		t.Fatalf("nil request should read the catalog: %v", err)
	}
}
