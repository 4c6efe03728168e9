// Package sqlite provides a SQLite-backed binding storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/iconhub/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/iconhub/internal/services/iconhub/storage"
	"github.com/louisbranch/iconhub/internal/services/iconhub/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

const bindingColumns = `slot, icon_id, label, decorative, color, width, height, created_at, updated_at`

// Store persists bindings in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite binding store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Ping reports whether the database answers.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return s.sqlDB.PingContext(ctx)
}

// PutBinding inserts or replaces one binding.
func (s *Store) PutBinding(ctx context.Context, binding storage.Binding) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	slot := strings.TrimSpace(binding.Slot)
	iconID := strings.TrimSpace(binding.IconID)
	if slot == "" {
		return fmt.Errorf("slot is required")
	}
	if iconID == "" {
		return fmt.Errorf("icon id is required")
	}
	updatedAt := binding.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	createdAt := binding.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = updatedAt
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO icon_bindings (`+bindingColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (slot) DO UPDATE SET
		   icon_id = excluded.icon_id,
		   label = excluded.label,
		   decorative = excluded.decorative,
		   color = excluded.color,
		   width = excluded.width,
		   height = excluded.height,
		   updated_at = excluded.updated_at`,
		slot,
		iconID,
		strings.TrimSpace(binding.Label),
		boolToInt(binding.Decorative),
		strings.TrimSpace(binding.Color),
		binding.Width,
		binding.Height,
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("put binding %s: constraint violated: %w", slot, err)
		}
		return fmt.Errorf("put binding: %w", err)
	}
	return nil
}

// GetBinding returns one binding by slot.
func (s *Store) GetBinding(ctx context.Context, slot string) (storage.Binding, error) {
	if err := ctx.Err(); err != nil {
		return storage.Binding{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Binding{}, fmt.Errorf("storage is not configured")
	}
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return storage.Binding{}, fmt.Errorf("slot is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+bindingColumns+` FROM icon_bindings WHERE slot = ?`,
		slot,
	)
	binding, err := scanBinding(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Binding{}, storage.ErrNotFound
		}
		return storage.Binding{}, fmt.Errorf("get binding: %w", err)
	}
	return binding, nil
}

// ListBindings returns one page of bindings.
func (s *Store) ListBindings(ctx context.Context, pageSize int, pageToken string) (storage.BindingPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.BindingPage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.BindingPage{}, fmt.Errorf("storage is not configured")
	}
	if pageSize <= 0 {
		return storage.BindingPage{}, fmt.Errorf("page size must be greater than zero")
	}
	pageToken = strings.TrimSpace(pageToken)

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+bindingColumns+`
		   FROM icon_bindings
		  WHERE slot > ?
		  ORDER BY slot ASC
		  LIMIT ?`,
		pageToken,
		pageSize+1,
	)
	if err != nil {
		return storage.BindingPage{}, fmt.Errorf("list bindings: %w", err)
	}
	defer rows.Close()

	page := storage.BindingPage{
		Bindings: make([]storage.Binding, 0, pageSize),
	}
	for rows.Next() {
		binding, err := scanBinding(rows)
		if err != nil {
			return storage.BindingPage{}, fmt.Errorf("list bindings: %w", err)
		}
		page.Bindings = append(page.Bindings, binding)
	}
	if err := rows.Err(); err != nil {
		return storage.BindingPage{}, fmt.Errorf("list bindings: %w", err)
	}
	if len(page.Bindings) > pageSize {
		page.NextPageToken = page.Bindings[pageSize-1].Slot
		page.Bindings = page.Bindings[:pageSize]
	}
	return page, nil
}

// DeleteBinding removes one binding by slot.
func (s *Store) DeleteBinding(ctx context.Context, slot string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return fmt.Errorf("slot is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM icon_bindings WHERE slot = ?`, slot)
	if err != nil {
		return fmt.Errorf("delete binding: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete binding: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBinding(row rowScanner) (storage.Binding, error) {
	var (
		binding    storage.Binding
		decorative int
		createdAt  int64
		updatedAt  int64
	)
	if err := row.Scan(
		&binding.Slot,
		&binding.IconID,
		&binding.Label,
		&decorative,
		&binding.Color,
		&binding.Width,
		&binding.Height,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.Binding{}, err
	}
	binding.Decorative = decorative == 1
	binding.CreatedAt = fromMillis(createdAt)
	binding.UpdatedAt = fromMillis(updatedAt)
	return binding, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func isConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_CHECK, sqlite3lib.SQLITE_CONSTRAINT_NOTNULL:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "constraint failed")
}

var _ storage.BindingStore = (*Store)(nil)
