package presets

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/models"
	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/overlay"
)

// fakeStore is an in-memory Store recording which calls were made.
type fakeStore struct {
	presets map[uuid.UUID]*models.OverlayPreset
	calls   []string
	failAll error
}

func newFakeStore() *fakeStore {
	return &fakeStore{presets: make(map[uuid.UUID]*models.OverlayPreset)}
}

func (f *fakeStore) List() ([]*models.OverlayPreset, error) {
	f.calls = append(f.calls, "List")
	if f.failAll != nil {
		return nil, f.failAll
	}
	var out []*models.OverlayPreset
	for _, p := range f.presets {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeStore) GetByID(id uuid.UUID) (*models.OverlayPreset, error) {
	f.calls = append(f.calls, "GetByID")
	if f.failAll != nil {
		return nil, f.failAll
	}
	return f.presets[id], nil
}

func (f *fakeStore) GetByName(name string) (*models.OverlayPreset, error) {
	f.calls = append(f.calls, "GetByName")
	if f.failAll != nil {
		return nil, f.failAll
	}
	for _, p := range f.presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Create(p *models.OverlayPreset) error {
	f.calls = append(f.calls, "Create")
	if f.failAll != nil {
		return f.failAll
	}
	f.presets[p.ID] = p
	return nil
}

func (f *fakeStore) Update(p *models.OverlayPreset) error {
	f.calls = append(f.calls, "Update")
	if f.failAll != nil {
		return f.failAll
	}
	f.presets[p.ID] = p
	return nil
}

func (f *fakeStore) Delete(id uuid.UUID) error {
	f.calls = append(f.calls, "Delete")
	if f.failAll != nil {
		return f.failAll
	}
	delete(f.presets, id)
	return nil
}

func (f *fakeStore) called(name string) bool {
	for _, c := range f.calls {
		if c == name {
			return true
		}
	}
	return false
}

func TestCreatePreset(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store)

	p, err := m.Create("Sunset", "warm evening look", overlay.NewConfig(), false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Name != "Sunset" || p.ID == uuid.Nil {
		t.Errorf("preset = %+v", p)
	}
}

func TestCreateRejectsBlankName(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store)

	for _, name := range []string{"", "   ", "\t"} {
		if _, err := m.Create(name, "", overlay.NewConfig(), false); !errors.Is(err, ErrBlankName) {
			t.Errorf("Create(%q): err = %v, want ErrBlankName", name, err)
		}
	}
	if store.called("Create") {
		t.Error("store.Create called for a blank name")
	}
}

func TestCreateNameCollisionCaseInsensitive(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store)

	if _, err := m.Create("sunset", "", overlay.NewConfig(), false); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Collision without overwrite confirmation must not create a duplicate.
	if _, err := m.Create("Sunset", "", overlay.NewConfig(), false); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("err = %v, want ErrNameTaken", err)
	}
	if len(store.presets) != 1 {
		t.Fatalf("store holds %d presets, want 1", len(store.presets))
	}

	// Explicit overwrite replaces the existing preset's config in place.
	cfg, _ := overlay.AddOverlay(overlay.NewConfig(), overlay.PositionTopLeft, overlay.TypeWeather)
	p, err := m.Create("SUNSET", "updated", cfg, true)
	if err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if len(store.presets) != 1 {
		t.Errorf("store holds %d presets after overwrite, want 1", len(store.presets))
	}
	if len(p.Config.OverlayItems) != 1 || p.Description != "updated" {
		t.Errorf("overwritten preset = %+v", p)
	}
}

func TestCreateRejectsInvalidConfig(t *testing.T) {
	m := NewManager(newFakeStore())
	bad := overlay.NewConfig()
	bad.GlobalSettings.Opacity = 300
	if _, err := m.Create("Broken", "", bad, false); err == nil {
		t.Error("invalid config accepted")
	}
}

func TestUpdateRename(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store)
	a, _ := m.Create("Alpha", "", overlay.NewConfig(), false)
	b, _ := m.Create("Beta", "", overlay.NewConfig(), false)

	// Renaming onto another preset's name is a collision.
	name := "alpha"
	if _, err := m.Update(b.ID, UpdatePatch{Name: &name}); !errors.Is(err, ErrNameTaken) {
		t.Errorf("err = %v, want ErrNameTaken", err)
	}

	// Renaming to the preset's own name (case change) is allowed.
	own := "ALPHA"
	got, err := m.Update(a.ID, UpdatePatch{Name: &own})
	if err != nil {
		t.Fatalf("self-rename: %v", err)
	}
	if got.Name != "ALPHA" {
		t.Errorf("Name = %q", got.Name)
	}
}

func TestUpdateNotFound(t *testing.T) {
	m := NewManager(newFakeStore())
	if _, err := m.Update(uuid.New(), UpdatePatch{}); !errors.Is(err, ErrPresetNotFound) {
		t.Errorf("err = %v, want ErrPresetNotFound", err)
	}
}

func TestDeleteBuiltinProtected(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store)

	builtin := &models.OverlayPreset{ID: uuid.New(), Name: "Classic", Config: overlay.NewConfig(), IsBuiltin: true}
	store.presets[builtin.ID] = builtin

	if err := m.Delete(builtin.ID); !errors.Is(err, ErrBuiltinProtected) {
		t.Fatalf("err = %v, want ErrBuiltinProtected", err)
	}
	if store.called("Delete") {
		t.Error("store.Delete called for a built-in preset")
	}
	if _, ok := store.presets[builtin.ID]; !ok {
		t.Error("built-in preset was removed")
	}
}

func TestDeleteCustom(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store)
	p, _ := m.Create("Mine", "", overlay.NewConfig(), false)

	if err := m.Delete(p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := store.presets[p.ID]; ok {
		t.Error("preset still present after delete")
	}
}

func TestStoreFailurePassesThrough(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store)
	upstream := errors.New("connection refused")
	store.failAll = upstream

	if _, err := m.Create("X", "", overlay.NewConfig(), false); !errors.Is(err, upstream) {
		t.Errorf("Create err = %v, want upstream error unchanged", err)
	}
	if _, err := m.List(); !errors.Is(err, upstream) {
		t.Errorf("List err = %v, want upstream error unchanged", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store)

	cfg, _ := overlay.AddOverlay(overlay.NewConfig(), overlay.PositionTopRight, overlay.TypeDateTime)
	p, _ := m.Create("Travel", "", cfg, false)

	now := time.Date(2025, time.July, 20, 12, 0, 0, 0, time.UTC)
	data, fileName, err := m.Export(p.ID, now)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if fileName != "overlay-config-20250720-120000.json" {
		t.Errorf("fileName = %q", fileName)
	}

	imported, err := m.Import("Travel Copy", "", data, false)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(imported.Config.OverlayItems) != 1 {
		t.Errorf("imported config has %d items, want 1", len(imported.Config.OverlayItems))
	}
	if imported.Config.OverlayItems[0].Type != overlay.TypeDateTime {
		t.Errorf("imported item type = %s", imported.Config.OverlayItems[0].Type)
	}
}
