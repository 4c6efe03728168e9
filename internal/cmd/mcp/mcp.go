// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/iconhub/internal/platform/cmd"
	"github.com/louisbranch/iconhub/internal/platform/icons"
	"github.com/louisbranch/iconhub/internal/platform/telemetry/metrics"
	mcpservice "github.com/louisbranch/iconhub/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	HTTPAddr  string `env:"ICONHUB_MCP_HTTP_ADDR" envDefault:"localhost:8091"`
	Transport string `env:"ICONHUB_MCP_TRANSPORT" envDefault:"stdio"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	err := entrypoint.LoadConfig(&cfg, fs, args, func(fs *flag.FlagSet, cfg *Config) {
		fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
		fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		recorder, err := metrics.New(nil)
		if err != nil {
			return fmt.Errorf("init metrics: %w", err)
		}
		return mcpservice.Run(ctx, mcpservice.Config{
			Transport: mcpservice.TransportKind(cfg.Transport),
			HTTPAddr:  cfg.HTTPAddr,
			Registry:  icons.Default(),
			Metrics:   recorder,
		})
	})
}
