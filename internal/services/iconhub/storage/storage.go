// Package storage defines persistence contracts for icon bindings.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested binding is missing.
var ErrNotFound = errors.New("record not found")

// Binding stores one slot-to-icon assignment with its presentation options.
type Binding struct {
	Slot       string
	IconID     string
	Label      string
	Decorative bool
	Color      string
	Width      float64
	Height     float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BindingPage stores one page of bindings ordered by slot.
type BindingPage struct {
	Bindings      []Binding
	NextPageToken string
}

// BindingStore persists bindings.
type BindingStore interface {
	// PutBinding inserts or replaces the binding for its slot, keeping the
	// original CreatedAt on replace.
	PutBinding(ctx context.Context, binding Binding) error
	GetBinding(ctx context.Context, slot string) (Binding, error)
	ListBindings(ctx context.Context, pageSize int, pageToken string) (BindingPage, error)
	// DeleteBinding returns ErrNotFound when the slot has no binding.
	DeleteBinding(ctx context.Context, slot string) error
}
