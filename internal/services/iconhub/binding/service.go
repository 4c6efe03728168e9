package binding

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/louisbranch/iconhub/internal/platform/icons"
	"github.com/louisbranch/iconhub/internal/platform/telemetry/metrics"
	"github.com/louisbranch/iconhub/internal/services/iconhub/storage"
)

const (
	// DefaultPageSize applies when List is called without a page size.
	DefaultPageSize = 50
	// MaxPageSize caps one List page.
	MaxPageSize = 200
)

var slotPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Binding is a validated slot assignment.
type Binding struct {
	Slot       string
	IconID     icons.ID
	Label      string
	Decorative bool
	Color      string
	Size       icons.Size
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Options returns the render options the binding describes.
func (b Binding) Options() icons.Options {
	return icons.Options{
		Size:       b.Size,
		Color:      b.Color,
		Decorative: b.Decorative,
		Label:      b.Label,
	}
}

// Page is one page of bindings ordered by slot.
type Page struct {
	Bindings      []Binding
	NextPageToken string
}

// Service validates and persists bindings.
type Service struct {
	store    storage.BindingStore
	registry *icons.Registry
	now      func() time.Time
	metrics  *metrics.Recorder
}

// Option configures a Service.
type Option func(*Service)

// WithRegistry validates bindings against registry instead of the default set.
func WithRegistry(registry *icons.Registry) Option {
	return func(s *Service) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMetrics records binding writes on recorder.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(s *Service) {
		s.metrics = recorder
	}
}

// NewService builds a Service on store.
func NewService(store storage.BindingStore, opts ...Option) *Service {
	s := &Service{
		store:    store,
		registry: icons.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NormalizeSlot trims and lowercases raw and checks the slot syntax.
func NormalizeSlot(raw string) (string, error) {
	slot := strings.ToLower(strings.TrimSpace(raw))
	if slot == "" {
		return "", ErrSlotEmpty
	}
	if !slotPattern.MatchString(slot) {
		return "", slotInvalidError(slot)
	}
	return slot, nil
}

// Put validates input and stores it, replacing any binding on the same slot.
func (s *Service) Put(ctx context.Context, input Binding) (Binding, error) {
	if err := s.ready(); err != nil {
		return Binding{}, err
	}
	binding, err := s.put(ctx, input)
	s.metrics.RecordBindingWrite(ctx, "put", err)
	return binding, err
}

func (s *Service) put(ctx context.Context, input Binding) (Binding, error) {
	slot, err := NormalizeSlot(input.Slot)
	if err != nil {
		return Binding{}, err
	}
	iconID, err := s.registry.ParseID(string(input.IconID))
	if err != nil {
		return Binding{}, err
	}
	input.Color = strings.TrimSpace(input.Color)
	if err := icons.ValidateColor(input.Color); err != nil {
		return Binding{}, err
	}
	input.Slot = slot
	input.IconID = iconID

	// The trial render applies the same label and size rules a real render
	// would, so the stored record is exactly what renders.
	el, err := s.registry.Render(iconID, input.Options())
	if err != nil {
		return Binding{}, err
	}

	now := s.now().UTC()
	record := storage.Binding{
		Slot:       slot,
		IconID:     string(iconID),
		Label:      el.Label,
		Decorative: el.Decorative,
		Color:      input.Color,
		Width:      el.Width,
		Height:     el.Height,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.store.PutBinding(ctx, record); err != nil {
		return Binding{}, fmt.Errorf("put binding %s: %w", slot, err)
	}
	return s.get(ctx, slot)
}

// Get returns the binding stored for slot.
func (s *Service) Get(ctx context.Context, slot string) (Binding, error) {
	if err := s.ready(); err != nil {
		return Binding{}, err
	}
	normalized, err := NormalizeSlot(slot)
	if err != nil {
		return Binding{}, err
	}
	return s.get(ctx, normalized)
}

func (s *Service) get(ctx context.Context, slot string) (Binding, error) {
	record, err := s.store.GetBinding(ctx, slot)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Binding{}, notFoundError(slot, err)
		}
		return Binding{}, fmt.Errorf("get binding %s: %w", slot, err)
	}
	return fromRecord(record), nil
}

// List returns one page of bindings. pageSize is clamped to MaxPageSize and
// defaults to DefaultPageSize.
func (s *Service) List(ctx context.Context, pageSize int, pageToken string) (Page, error) {
	if err := s.ready(); err != nil {
		return Page{}, err
	}
	switch {
	case pageSize <= 0:
		pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}

	result, err := s.store.ListBindings(ctx, pageSize, strings.TrimSpace(pageToken))
	if err != nil {
		return Page{}, fmt.Errorf("list bindings: %w", err)
	}
	page := Page{
		Bindings:      make([]Binding, 0, len(result.Bindings)),
		NextPageToken: result.NextPageToken,
	}
	for _, record := range result.Bindings {
		page.Bindings = append(page.Bindings, fromRecord(record))
	}
	return page, nil
}

// Delete removes the binding stored for slot.
func (s *Service) Delete(ctx context.Context, slot string) error {
	if err := s.ready(); err != nil {
		return err
	}
	err := s.delete(ctx, slot)
	s.metrics.RecordBindingWrite(ctx, "delete", err)
	return err
}

func (s *Service) delete(ctx context.Context, slot string) error {
	normalized, err := NormalizeSlot(slot)
	if err != nil {
		return err
	}
	if err := s.store.DeleteBinding(ctx, normalized); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return notFoundError(normalized, err)
		}
		return fmt.Errorf("delete binding %s: %w", normalized, err)
	}
	return nil
}

// Render resolves the binding for slot into a renderable icon. A binding whose
// icon was removed from the registry after it was stored fails with
// icons.ErrUnknownIcon.
func (s *Service) Render(ctx context.Context, slot string) (icons.Element, error) {
	binding, err := s.Get(ctx, slot)
	if err != nil {
		return icons.Element{}, err
	}
	iconID, err := s.registry.ParseID(string(binding.IconID))
	if err != nil {
		return icons.Element{}, err
	}
	return s.registry.Render(iconID, binding.Options())
}

func (s *Service) ready() error {
	if s == nil || s.store == nil {
		return errors.New("binding store is not configured")
	}
	return nil
}

func fromRecord(record storage.Binding) Binding {
	return Binding{
		Slot:       record.Slot,
		IconID:     icons.ID(record.IconID),
		Label:      record.Label,
		Decorative: record.Decorative,
		Color:      record.Color,
		Size:       icons.Size{Width: record.Width, Height: record.Height},
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
}
