// Package service hosts the MCP server exposing the wand generator tools.
package service

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Rand Wand MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// NewServer builds the MCP server with every wand tool registered.
func NewServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(server, GenerateTool(), GenerateHandler())
	mcp.AddTool(server, PresetsTool(), PresetsHandler())
	mcp.AddTool(server, FrequenciesTool(), FrequenciesHandler())
	return server
}

// Run serves the MCP server over stdio until ctx is cancelled.
func Run(ctx context.Context) error {
	return NewServer().Run(ctx, &mcp.StdioTransport{})
}
