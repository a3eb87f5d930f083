package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/truestock/truestock/internal/application"
)

// registerResources registers all TrueStock MCP resources on the given server.
func registerResources(s *server.MCPServer, svc *application.InventoryService) {
	// truestock://catalog - the whole catalog in insertion order
	s.AddResource(
		mcplib.NewResource(
			"truestock://catalog",
			"Catalog",
			mcplib.WithResourceDescription("Every product currently in the catalog"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCatalogResource(svc),
	)

	// truestock://products/{id} - a single product
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"truestock://products/{id}",
			"Product",
			mcplib.WithTemplateDescription("A single product looked up by id"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleProductResource(svc),
	)
}

func handleCatalogResource(svc *application.InventoryService) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents(request.Params.URI, svc.List())
	}
}

func handleProductResource(svc *application.InventoryService) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		id := templateArg(request.Params.Arguments, "id")
		if id == "" {
			return nil, fmt.Errorf("product id is required")
		}

		p, err := svc.Get(id)
		if err != nil {
			return nil, err
		}
		return jsonContents(request.Params.URI, p)
	}
}

// templateArg reads a URI template variable. Matched variables arrive as
// []string; tests and older clients pass plain strings.
func templateArg(args map[string]any, name string) string {
	switch v := args[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
