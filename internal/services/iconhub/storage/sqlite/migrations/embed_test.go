package migrations

import (
	"io/fs"
	"strings"
	"testing"
)

func TestFSContainsBindingsMigration(t *testing.T) {
	entries, err := fs.ReadDir(FS, ".")
	if err != nil {
		t.Fatalf("read embedded migrations: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected embedded migrations")
	}
	if entries[0].Name() != "001_bindings.sql" {
		t.Fatalf("first migration = %q, want 001_bindings.sql", entries[0].Name())
	}

	content, err := fs.ReadFile(FS, "001_bindings.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	if !strings.Contains(string(content), "-- +migrate Up") {
		t.Fatal("expected up marker in bindings migration")
	}
}
