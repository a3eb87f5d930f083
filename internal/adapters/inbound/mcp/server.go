package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/truestock/truestock/internal/application"
)

// NewTrueStockMCPServer creates a new MCP server with all TrueStock tools and
// resources registered against svc. Every tool call goes through the same
// service, so the catalog lives as long as the server does.
func NewTrueStockMCPServer(svc *application.InventoryService, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"truestock",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc)
	registerResources(s, svc)

	return s
}
