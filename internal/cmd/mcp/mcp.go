// Package mcp parses MCP command flags and starts the stdio tool server.
package mcp

import (
	"context"
	"flag"

	entrypoint "github.com/NathanSnail/rand-wand/internal/platform/cmd"
	"github.com/NathanSnail/rand-wand/internal/services/mcp/service"
)

// Config holds MCP command configuration. The server speaks stdio, so there
// is nothing to configure yet beyond environment-driven telemetry.
type Config struct{}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP tool server.
func Run(ctx context.Context, _ Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return service.Run(ctx)
	})
}
