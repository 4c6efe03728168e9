// Package iconhub parses iconhub HTTP service flags and launches the server.
package iconhub

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/iconhub/internal/platform/cmd"
	"github.com/louisbranch/iconhub/internal/services/iconhub"
)

// Config holds iconhub command configuration.
type Config struct {
	HTTPAddr string `env:"ICONHUB_HTTP_ADDR" envDefault:":8090"`
	DBPath   string `env:"ICONHUB_DB_PATH"   envDefault:"data/iconhub.db"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	err := entrypoint.LoadConfig(&cfg, fs, args, func(fs *flag.FlagSet, cfg *Config) {
		fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
		fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "bindings database path (empty disables bindings)")
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the iconhub HTTP server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceIconHub, func(ctx context.Context) error {
		server, err := iconhub.NewServer(ctx, iconhub.Config{
			HTTPAddr: cfg.HTTPAddr,
			DBPath:   cfg.DBPath,
		})
		if err != nil {
			return fmt.Errorf("init iconhub server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve iconhub: %w", err)
		}
		return nil
	})
}
