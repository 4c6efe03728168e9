package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/louisbranch/iconhub/internal/platform/config"
	"github.com/louisbranch/iconhub/internal/platform/otel"
	"github.com/louisbranch/iconhub/internal/platform/timeouts"
)

// Service identifiers name each process in traces and log prefixes.
const (
	ServiceIconHub = "iconhub"
	ServiceMCP     = "iconhub-mcp"
)

// LogPrefix returns the bracketed log prefix for a service, e.g. "[ICONHUB] ".
func LogPrefix(service string) string {
	return "[" + strings.ToUpper(strings.TrimSpace(service)) + "] "
}

// LoadConfig fills cfg from the environment, lets bind register flags whose
// defaults are the env values, and then parses args. Flags win over env.
func LoadConfig[T any](cfg *T, fs *flag.FlagSet, args []string, bind func(fs *flag.FlagSet, cfg *T)) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if err := config.ParseEnv(cfg); err != nil {
		return err
	}
	if bind != nil {
		bind(fs, cfg)
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry installs the trace and meter providers for service, runs
// the loop, and flushes spans and metrics once it returns.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
