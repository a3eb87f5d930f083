package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/truestock/truestock/internal/application"
)

// registerTools registers all TrueStock MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.InventoryService) {
	s.AddTool(
		mcplib.NewTool("truestock_search",
			mcplib.WithDescription("Search the catalog by case-insensitive name and category substrings. Empty filters match everything."),
			mcplib.WithString("name", mcplib.Description("Substring of the product name")),
			mcplib.WithString("category", mcplib.Description("Substring of the product category")),
		),
		handleSearch(svc),
	)

	s.AddTool(
		mcplib.NewTool("truestock_add_product",
			mcplib.WithDescription("Add a product. The id is stored upper-case and must be unique; price and quantity must be greater than 0."),
			mcplib.WithString("id", mcplib.Required(), mcplib.Description("Product id, e.g. M002")),
			mcplib.WithString("category", mcplib.Required(), mcplib.Description("Category, e.g. monitor")),
			mcplib.WithString("name", mcplib.Required(), mcplib.Description("Product name")),
			mcplib.WithString("price", mcplib.Required(), mcplib.Description("Unit price as a decimal number, e.g. 1000.0")),
			mcplib.WithString("quantity", mcplib.Required(), mcplib.Description("Initial stock as an integer")),
		),
		handleAdd(svc),
	)

	s.AddTool(
		mcplib.NewTool("truestock_remove_product",
			mcplib.WithDescription("Remove a product by id (case-insensitive)"),
			mcplib.WithString("id", mcplib.Required(), mcplib.Description("Product id")),
		),
		handleRemove(svc),
	)

	s.AddTool(
		mcplib.NewTool("truestock_restock_product",
			mcplib.WithDescription("Increase a product's stock"),
			mcplib.WithString("id", mcplib.Required(), mcplib.Description("Product id")),
			mcplib.WithString("quantity", mcplib.Required(), mcplib.Description("Units to add, an integer greater than 0")),
		),
		handleRestock(svc),
	)

	s.AddTool(
		mcplib.NewTool("truestock_reserve_product",
			mcplib.WithDescription("Reserve units of a product. Fails without changing stock when fewer units are available."),
			mcplib.WithString("id", mcplib.Required(), mcplib.Description("Product id")),
			mcplib.WithString("quantity", mcplib.Required(), mcplib.Description("Units to reserve, an integer greater than 0")),
		),
		handleReserve(svc),
	)

	s.AddTool(
		mcplib.NewTool("truestock_summary",
			mcplib.WithDescription("Returns product count, total units and total stock value"),
		),
		handleSummary(svc),
	)
}

func handleSearch(svc *application.InventoryService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		products := svc.Search(request.GetString("name", ""), request.GetString("category", ""))
		return jsonResult(products)
	}
}

func handleAdd(svc *application.InventoryService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args, err := requireStrings(request, "id", "category", "name", "price", "quantity")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		p, err := svc.AddProduct(args[0], args[1], args[2], args[3], args[4])
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(p)
	}
}

func handleRemove(svc *application.InventoryService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if err := svc.RemoveProduct(id); err != nil {
			return errorResult(err.Error()), nil
		}
		return textResult(fmt.Sprintf("Product %s removed", id)), nil
	}
}

func handleRestock(svc *application.InventoryService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args, err := requireStrings(request, "id", "quantity")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		p, err := svc.RestockProduct(args[0], args[1])
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(p)
	}
}

func handleReserve(svc *application.InventoryService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args, err := requireStrings(request, "id", "quantity")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		p, err := svc.ReserveProduct(args[0], args[1])
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(p)
	}
}

func handleSummary(svc *application.InventoryService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(svc.Summary())
	}
}

// requireStrings fetches the named arguments in order.
func requireStrings(request mcplib.CallToolRequest, keys ...string) ([]string, error) {
	values := make([]string, 0, len(keys))
	for _, k := range keys {
		v, err := request.RequireString(k)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// jsonResult marshals v to indented JSON and wraps it in a CallToolResult.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
