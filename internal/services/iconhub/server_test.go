package iconhub

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewServerRequiresAddress(t *testing.T) {
	if _, err := NewServer(context.Background(), Config{HTTPAddr: "  "}); err == nil {
		t.Fatal("expected error for blank address")
	}
}

func TestNewServerCreatesStorageDir(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "iconhub.db")
	server, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0", DBPath: dbPath})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer server.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected database file: %v", err)
	}
	if server.store == nil {
		t.Fatal("expected store to be opened")
	}
}

func TestNewServerWithoutDatabase(t *testing.T) {
	server, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	if server.store != nil {
		t.Fatal("expected no store")
	}
	server.Close()
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	server, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.ListenAndServe(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("listen and serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServerNilSafe(t *testing.T) {
	var server *Server
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
	server.Close()
}
