package binding

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	apperrors "github.com/louisbranch/iconhub/internal/platform/errors"
	"github.com/louisbranch/iconhub/internal/platform/icons"
	"github.com/louisbranch/iconhub/internal/services/iconhub/storage"
)

type fakeStore struct {
	mu       sync.Mutex
	bindings map[string]storage.Binding
	putErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{bindings: make(map[string]storage.Binding)}
}

func (f *fakeStore) PutBinding(_ context.Context, b storage.Binding) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	if existing, ok := f.bindings[b.Slot]; ok {
		b.CreatedAt = existing.CreatedAt
	}
	f.bindings[b.Slot] = b
	return nil
}

func (f *fakeStore) GetBinding(_ context.Context, slot string) (storage.Binding, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bindings[slot]
	if !ok {
		return storage.Binding{}, storage.ErrNotFound
	}
	return b, nil
}

func (f *fakeStore) ListBindings(_ context.Context, pageSize int, pageToken string) (storage.BindingPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	slots := make([]string, 0, len(f.bindings))
	for slot := range f.bindings {
		if slot > pageToken {
			slots = append(slots, slot)
		}
	}
	sort.Strings(slots)
	page := storage.BindingPage{}
	for i, slot := range slots {
		if i == pageSize {
			page.NextPageToken = slots[i-1]
			break
		}
		page.Bindings = append(page.Bindings, f.bindings[slot])
	}
	return page, nil
}

func (f *fakeStore) DeleteBinding(_ context.Context, slot string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.bindings[slot]; !ok {
		return storage.ErrNotFound
	}
	delete(f.bindings, slot)
	return nil
}

func newTestService(store storage.BindingStore) *Service {
	fixed := time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)
	return NewService(store, WithClock(func() time.Time { return fixed }))
}

func TestNormalizeSlot(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr error
	}{
		{raw: "toolbar.close", want: "toolbar.close"},
		{raw: "  Panel.Table-Toggle_2 ", want: "panel.table-toggle_2"},
		{raw: "", wantErr: ErrSlotEmpty},
		{raw: "   ", wantErr: ErrSlotEmpty},
		{raw: ".hidden", wantErr: ErrSlotInvalid},
		{raw: "has space", wantErr: ErrSlotInvalid},
		{raw: "slash/slot", wantErr: ErrSlotInvalid},
	}
	for _, tc := range tests {
		got, err := NormalizeSlot(tc.raw)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("NormalizeSlot(%q) error = %v, want %v", tc.raw, err, tc.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeSlot(%q) = %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizeSlot(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestPutNormalizesAndStores(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	got, err := svc.Put(context.Background(), Binding{
		Slot:   " Toolbar.Close ",
		IconID: " CLOSE ",
		Label:  "  Close dialog ",
		Size:   icons.Square(16),
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if got.Slot != "toolbar.close" || got.IconID != icons.Close {
		t.Fatalf("binding = %+v", got)
	}
	if got.Label != "Close dialog" {
		t.Fatalf("label = %q", got.Label)
	}
	if got.Size != icons.Square(16) {
		t.Fatalf("size = %+v", got.Size)
	}
	if got.CreatedAt.IsZero() || !got.CreatedAt.Equal(got.UpdatedAt) {
		t.Fatalf("timestamps = %v, %v", got.CreatedAt, got.UpdatedAt)
	}
	if _, ok := store.bindings["toolbar.close"]; !ok {
		t.Fatal("expected binding stored under normalized slot")
	}
}

func TestPutRejectsUnknownIcon(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.Put(context.Background(), Binding{Slot: "a", IconID: "not-an-icon", Decorative: true})
	if !errors.Is(err, icons.ErrUnknownIcon) {
		t.Fatalf("expected ErrUnknownIcon, got %v", err)
	}
	if len(store.bindings) != 0 {
		t.Fatal("expected nothing stored")
	}
}

func TestPutRejectsMissingLabel(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.Put(context.Background(), Binding{Slot: "a", IconID: icons.Close})
	if !errors.Is(err, icons.ErrMissingLabel) {
		t.Fatalf("expected ErrMissingLabel, got %v", err)
	}
	if len(store.bindings) != 0 {
		t.Fatal("expected nothing stored")
	}
}

func TestPutRejectsInvalidColor(t *testing.T) {
	tests := []struct {
		name  string
		color string
	}{
		{name: "markup", color: `red"><script>`},
		{name: "too long", color: strings.Repeat("x", icons.MaxColorLength+1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			svc := newTestService(store)

			_, err := svc.Put(context.Background(), Binding{Slot: "a", IconID: icons.Close, Decorative: true, Color: tc.color})
			if got := apperrors.CodeOf(err); got != apperrors.CodeInvalidArgument {
				t.Fatalf("code = %q, want %q (err %v)", got, apperrors.CodeInvalidArgument, err)
			}
			if len(store.bindings) != 0 {
				t.Fatal("expected nothing stored")
			}
		})
	}
}

func TestPutRejectsInvalidSlot(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.Put(context.Background(), Binding{Slot: "bad slot", IconID: icons.Close, Decorative: true})
	if got := apperrors.CodeOf(err); got != apperrors.CodeBindingSlotInvalid {
		t.Fatalf("code = %q, want %q", got, apperrors.CodeBindingSlotInvalid)
	}
}

func TestPutDecorativeDropsLabelAndSanitizesSize(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	got, err := svc.Put(context.Background(), Binding{
		Slot:       "status.spinner",
		IconID:     icons.Refresh,
		Label:      "ignored",
		Decorative: true,
		Size:       icons.Size{Width: -3, Height: 20},
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if got.Label != "" {
		t.Fatalf("label = %q, want empty", got.Label)
	}
	if got.Size.Width != 0 || got.Size.Height != 20 {
		t.Fatalf("size = %+v", got.Size)
	}
}

func TestPutKeepsCreatedAtOnReplace(t *testing.T) {
	store := newFakeStore()
	first := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	later := first.Add(time.Hour)
	now := first
	svc := NewService(store, WithClock(func() time.Time { return now }))

	if _, err := svc.Put(context.Background(), Binding{Slot: "a", IconID: icons.Info, Decorative: true}); err != nil {
		t.Fatalf("put: %v", err)
	}
	now = later
	got, err := svc.Put(context.Background(), Binding{Slot: "a", IconID: icons.Warning, Label: "Careful"})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if !got.CreatedAt.Equal(first) || !got.UpdatedAt.Equal(later) {
		t.Fatalf("timestamps = %v, %v", got.CreatedAt, got.UpdatedAt)
	}
	if got.IconID != icons.Warning {
		t.Fatalf("icon = %q", got.IconID)
	}
}

func TestPutWrapsStoreError(t *testing.T) {
	store := newFakeStore()
	store.putErr = errors.New("disk full")
	svc := newTestService(store)

	_, err := svc.Put(context.Background(), Binding{Slot: "a", IconID: icons.Info, Decorative: true})
	if !errors.Is(err, store.putErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestGetAndDeleteMissingSlot(t *testing.T) {
	svc := newTestService(newFakeStore())

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get error = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete error = %v, want ErrNotFound", err)
	}
	if _, err := svc.Render(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("render error = %v, want ErrNotFound", err)
	}
}

func TestNotFoundCarriesLocalizedMetadata(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.Get(context.Background(), "toolbar.close")
	domainErr, ok := apperrors.As(err)
	if !ok {
		t.Fatalf("expected domain error, got %T", err)
	}
	if got := domainErr.LocalizedMessage("en-US"); got != "Binding toolbar.close not found" {
		t.Fatalf("localized message = %q", got)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatal("expected storage cause in chain")
	}
}

func TestRenderBinding(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	if _, err := svc.Put(context.Background(), Binding{Slot: "toolbar.close", IconID: icons.Close, Label: "Close dialog", Color: "red"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	el, err := svc.Render(context.Background(), "TOOLBAR.CLOSE")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if el.ID != icons.Close || el.AccessibleName() != "Close dialog" || el.Color != "red" {
		t.Fatalf("element = %+v", el)
	}
}

func TestRenderStaleIcon(t *testing.T) {
	store := newFakeStore()
	store.bindings["legacy"] = storage.Binding{Slot: "legacy", IconID: "retired-icon", Decorative: true}
	svc := newTestService(store)

	if _, err := svc.Render(context.Background(), "legacy"); !errors.Is(err, icons.ErrUnknownIcon) {
		t.Fatalf("expected ErrUnknownIcon, got %v", err)
	}
}

func TestListPaginatesAndClamps(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	for _, slot := range []string{"c", "a", "b"} {
		if _, err := svc.Put(context.Background(), Binding{Slot: slot, IconID: icons.Info, Decorative: true}); err != nil {
			t.Fatalf("put %s: %v", slot, err)
		}
	}

	page, err := svc.List(context.Background(), 2, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Bindings) != 2 || page.Bindings[0].Slot != "a" || page.NextPageToken != "b" {
		t.Fatalf("page = %+v", page)
	}

	all, err := svc.List(context.Background(), 0, "")
	if err != nil {
		t.Fatalf("list default: %v", err)
	}
	if len(all.Bindings) != 3 || all.NextPageToken != "" {
		t.Fatalf("default page = %+v", all)
	}
}

func TestDeleteRemovesBinding(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	if _, err := svc.Put(context.Background(), Binding{Slot: "a", IconID: icons.Info, Decorative: true}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := svc.Delete(context.Background(), " A "); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.bindings) != 0 {
		t.Fatal("expected binding removed")
	}
}

func TestServiceRequiresStore(t *testing.T) {
	var nilSvc *Service
	if _, err := nilSvc.Put(context.Background(), Binding{}); err == nil {
		t.Fatal("expected error for nil service")
	}
	svc := NewService(nil)
	if _, err := svc.List(context.Background(), 10, ""); err == nil {
		t.Fatal("expected error for missing store")
	}
	if err := svc.Delete(context.Background(), "a"); err == nil {
		t.Fatal("expected error for missing store")
	}
}

func TestWithRegistryValidatesAgainstCustomSet(t *testing.T) {
	registry := icons.MustNew(icons.Definition{
		ID:      "dot",
		ViewBox: icons.ViewBox{0, 0, 4, 4},
		Paths:   []icons.Path{{D: "M0 0h4v4H0z"}},
	})
	svc := NewService(newFakeStore(), WithRegistry(registry))

	if _, err := svc.Put(context.Background(), Binding{Slot: "a", IconID: "dot", Decorative: true}); err != nil {
		t.Fatalf("put custom icon: %v", err)
	}
	if _, err := svc.Put(context.Background(), Binding{Slot: "b", IconID: icons.Close, Decorative: true}); !errors.Is(err, icons.ErrUnknownIcon) {
		t.Fatalf("expected ErrUnknownIcon for icon outside custom set, got %v", err)
	}
}
