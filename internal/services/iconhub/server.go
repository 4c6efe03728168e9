package iconhub

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/iconhub/internal/platform/icons"
	"github.com/louisbranch/iconhub/internal/platform/telemetry/metrics"
	"github.com/louisbranch/iconhub/internal/platform/timeouts"
	"github.com/louisbranch/iconhub/internal/services/iconhub/binding"
	iconsqlite "github.com/louisbranch/iconhub/internal/services/iconhub/storage/sqlite"
)

// Config defines the inputs for the iconhub HTTP process.
type Config struct {
	HTTPAddr string
	// DBPath locates the bindings database. Empty disables binding routes.
	DBPath string
}

// Server hosts the icon gallery, SVG assets, and bindings API.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      *iconsqlite.Store
}

// NewServer builds a configured iconhub server.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	recorder, err := metrics.New(nil)
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}

	handlerConfig := HandlerConfig{
		Registry: icons.Default(),
		Metrics:  recorder,
	}

	var store *iconsqlite.Store
	if dbPath := strings.TrimSpace(config.DBPath); dbPath != "" {
		store, err = openStore(ctx, dbPath)
		if err != nil {
			return nil, err
		}
		handlerConfig.Bindings = binding.NewService(store,
			binding.WithRegistry(handlerConfig.Registry),
			binding.WithMetrics(recorder),
		)
		handlerConfig.Health = store
	} else {
		log.Printf("iconhub bindings disabled: no database path")
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           NewHandler(handlerConfig),
		ReadHeaderTimeout: timeouts.ReadHeader,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		store:      store,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("iconhub server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("iconhub listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the bindings store.
func (s *Server) Close() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("close iconhub store: %v", err)
	}
	s.store = nil
}

func openStore(ctx context.Context, path string) (*iconsqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	openCtx, cancel := context.WithTimeout(ctx, timeouts.StoreOpen)
	defer cancel()
	store, err := iconsqlite.Open(openCtx, path)
	if err != nil {
		return nil, fmt.Errorf("open iconhub sqlite store: %w", err)
	}
	return store, nil
}
