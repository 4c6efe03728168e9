package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/louisbranch/iconhub/internal/platform/icons"
	"github.com/louisbranch/iconhub/internal/platform/telemetry/metrics"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// CatalogURI addresses the full icon catalog resource.
	CatalogURI = "icons://catalog"
	// surfaceMCP labels registry metrics recorded by MCP handlers.
	surfaceMCP = "mcp"
)

// IconListInput filters the icon listing.
type IconListInput struct {
	Query string `json:"query,omitempty" jsonschema:"optional case-insensitive substring matched against icon id and name"`
}

// IconSummary is one entry of an icon listing.
type IconSummary struct {
	ID          string `json:"id" jsonschema:"stable icon identifier"`
	Name        string `json:"name" jsonschema:"human readable name"`
	Description string `json:"description,omitempty" jsonschema:"what the icon represents"`
}

// IconListResult is the icon_list output.
type IconListResult struct {
	Icons []IconSummary `json:"icons" jsonschema:"icons in catalog order"`
}

// IconGetInput names one icon.
type IconGetInput struct {
	ID string `json:"id" jsonschema:"icon identifier, e.g. close"`
}

// IconPath is one drawing instruction of an icon.
type IconPath struct {
	D        string `json:"d" jsonschema:"SVG path data"`
	Paint    string `json:"paint" jsonschema:"fill or stroke"`
	FillRule string `json:"fill_rule,omitempty" jsonschema:"SVG fill-rule"`
}

// IconDefinition is the icon_get output and one entry of the catalog
// resource.
type IconDefinition struct {
	ID          string     `json:"id" jsonschema:"stable icon identifier"`
	Name        string     `json:"name" jsonschema:"human readable name"`
	Description string     `json:"description,omitempty" jsonschema:"what the icon represents"`
	ViewBox     [4]float64 `json:"view_box" jsonschema:"min-x, min-y, width, height"`
	Paths       []IconPath `json:"paths" jsonschema:"ordered path list"`
}

// IconRenderInput selects an icon and its presentation.
type IconRenderInput struct {
	ID         string  `json:"id" jsonschema:"icon identifier"`
	Label      string  `json:"label,omitempty" jsonschema:"accessible label; required unless decorative"`
	Decorative bool    `json:"decorative,omitempty" jsonschema:"hide the icon from assistive technology"`
	Color      string  `json:"color,omitempty" jsonschema:"SVG paint; defaults to currentColor"`
	Size       float64 `json:"size,omitempty" jsonschema:"square edge in pixels; omitted inherits layout size"`
}

// IconRenderResult is the icon_render output.
type IconRenderResult struct {
	ID             string `json:"id" jsonschema:"icon identifier"`
	SVG            string `json:"svg" jsonschema:"inline SVG markup"`
	AccessibleName string `json:"accessible_name,omitempty" jsonschema:"name exposed to assistive technology"`
}

// IconCatalogPayload is the icons://catalog resource body.
type IconCatalogPayload struct {
	Icons []IconDefinition `json:"icons"`
}

// IconListTool defines the MCP tool schema for listing icons.
func IconListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "icon_list",
		Description: "Lists registered icons, optionally filtered by a query",
	}
}

// IconGetTool defines the MCP tool schema for reading one icon definition.
func IconGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "icon_get",
		Description: "Returns the vector definition of one icon",
	}
}

// IconRenderTool defines the MCP tool schema for rendering an icon to SVG.
func IconRenderTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "icon_render",
		Description: "Renders one icon as inline SVG markup",
	}
}

// IconCatalogResource defines the MCP resource holding every definition.
func IconCatalogResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "icon_catalog",
		Title:       "Icon catalog",
		Description: "Every registered icon definition in catalog order",
		MIMEType:    "application/json",
		URI:         CatalogURI,
	}
}

// IconListHandler lists icons whose id or name contains the query.
func IconListHandler(registry *icons.Registry, recorder *metrics.Recorder) mcp.ToolHandlerFor[IconListInput, IconListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input IconListInput) (*mcp.CallToolResult, IconListResult, error) {
		if registry == nil {
			return nil, IconListResult{}, fmt.Errorf("icon registry is not configured")
		}
		needle := strings.ToLower(strings.TrimSpace(input.Query))
		result := IconListResult{Icons: []IconSummary{}}
		for _, def := range registry.Definitions() {
			if needle != "" &&
				!strings.Contains(def.ID.String(), needle) &&
				!strings.Contains(strings.ToLower(def.Name), needle) {
				continue
			}
			result.Icons = append(result.Icons, IconSummary{
				ID:          def.ID.String(),
				Name:        def.Name,
				Description: def.Description,
			})
		}
		recorder.RecordLookup(ctx, surfaceMCP, nil)
		return nil, result, nil
	}
}

// IconGetHandler returns one icon definition.
func IconGetHandler(registry *icons.Registry, recorder *metrics.Recorder) mcp.ToolHandlerFor[IconGetInput, IconDefinition] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input IconGetInput) (*mcp.CallToolResult, IconDefinition, error) {
		if registry == nil {
			return nil, IconDefinition{}, fmt.Errorf("icon registry is not configured")
		}
		def, err := lookup(registry, input.ID)
		recorder.RecordLookup(ctx, surfaceMCP, err)
		if err != nil {
			return nil, IconDefinition{}, fmt.Errorf("icon get: %w", err)
		}
		return nil, toDefinition(def), nil
	}
}

// IconRenderHandler renders one icon. Non-decorative renders need a label.
func IconRenderHandler(registry *icons.Registry, recorder *metrics.Recorder) mcp.ToolHandlerFor[IconRenderInput, IconRenderResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input IconRenderInput) (*mcp.CallToolResult, IconRenderResult, error) {
		if registry == nil {
			return nil, IconRenderResult{}, fmt.Errorf("icon registry is not configured")
		}
		id, err := registry.ParseID(input.ID)
		if err != nil {
			recorder.RecordLookup(ctx, surfaceMCP, err)
			return nil, IconRenderResult{}, fmt.Errorf("icon render: %w", err)
		}
		if err := icons.ValidateColor(strings.TrimSpace(input.Color)); err != nil {
			return nil, IconRenderResult{}, fmt.Errorf("icon render: %w", err)
		}
		el, err := registry.Render(id, icons.Options{
			Size:       icons.Square(input.Size),
			Color:      strings.TrimSpace(input.Color),
			Decorative: input.Decorative,
			Label:      input.Label,
		})
		recorder.RecordRender(ctx, surfaceMCP, id.String(), err)
		if err != nil {
			return nil, IconRenderResult{}, fmt.Errorf("icon render: %w", err)
		}
		return nil, IconRenderResult{
			ID:             id.String(),
			SVG:            el.String(),
			AccessibleName: el.AccessibleName(),
		}, nil
	}
}

// IconCatalogResourceHandler serves every definition as JSON.
func IconCatalogResourceHandler(registry *icons.Registry) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if registry == nil {
			return nil, fmt.Errorf("icon registry is not configured")
		}
		uri := CatalogURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		if uri != CatalogURI {
			return nil, mcp.ResourceNotFoundError(uri)
		}

		definitions := registry.Definitions()
		payload := IconCatalogPayload{Icons: make([]IconDefinition, 0, len(definitions))}
		for _, def := range definitions {
			payload.Icons = append(payload.Icons, toDefinition(def))
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal icon catalog: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}

func lookup(registry *icons.Registry, raw string) (icons.Definition, error) {
	id, err := registry.ParseID(raw)
	if err != nil {
		return icons.Definition{}, err
	}
	return registry.Get(id)
}

func toDefinition(def icons.Definition) IconDefinition {
	paths := make([]IconPath, 0, len(def.Paths))
	for _, p := range def.Paths {
		paths = append(paths, IconPath{D: p.D, Paint: p.Paint.String(), FillRule: p.FillRule})
	}
	return IconDefinition{
		ID:          def.ID.String(),
		Name:        def.Name,
		Description: def.Description,
		ViewBox:     [4]float64(def.ViewBox),
		Paths:       paths,
	}
}
