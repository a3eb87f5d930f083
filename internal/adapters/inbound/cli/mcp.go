package cli

import (
	mcpadapter "github.com/truestock/truestock/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the TrueStock MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(s))
	return cmd
}

func newMCPServeCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start TrueStock MCP server (stdio)",
		Long:  "Start the TrueStock MCP server using stdio transport. This lets AI assistants search the catalog and add, remove, restock and reserve products.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := s.service(cmd)
			if err != nil {
				return err
			}
			return server.ServeStdio(mcpadapter.NewTrueStockMCPServer(svc, version))
		},
	}
}
