package presets

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/models"
	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/overlay"
)

var (
	ErrBlankName        = errors.New("preset name cannot be blank")
	ErrNameTaken        = errors.New("preset name already in use")
	ErrBuiltinProtected = errors.New("built-in presets cannot be deleted")
	ErrPresetNotFound   = errors.New("preset not found")
)

// Store is the external preset store. GetByName reports a missing preset
// as (nil, nil); store failures pass through unchanged.
type Store interface {
	List() ([]*models.OverlayPreset, error)
	GetByID(id uuid.UUID) (*models.OverlayPreset, error)
	GetByName(name string) (*models.OverlayPreset, error)
	Create(p *models.OverlayPreset) error
	Update(p *models.OverlayPreset) error
	Delete(id uuid.UUID) error
}

// Manager enforces the preset lifecycle invariants (blank names,
// case-insensitive name collisions, built-in protection) before any store
// call is made.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

func (m *Manager) List() ([]*models.OverlayPreset, error) {
	return m.store.List()
}

func (m *Manager) Get(id uuid.UUID) (*models.OverlayPreset, error) {
	p, err := m.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPresetNotFound
	}
	return p, nil
}

// Create saves a new named preset. When a preset with the same name
// (case-insensitive) exists and overwrite is false, it fails with
// ErrNameTaken so the caller can ask for explicit confirmation; with
// overwrite true the existing preset's config is replaced instead.
func (m *Manager) Create(name, description string, cfg overlay.OverlayConfig, overwrite bool) (*models.OverlayPreset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankName
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	existing, err := m.store.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if !overwrite {
			return nil, ErrNameTaken
		}
		existing.Description = description
		existing.Config = cfg
		if err := m.store.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	p := &models.OverlayPreset{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Config:      cfg,
	}
	if err := m.store.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePatch carries the optional fields of a preset update.
type UpdatePatch struct {
	Name        *string                `json:"name,omitempty"`
	Description *string                `json:"description,omitempty"`
	Config      *overlay.OverlayConfig `json:"overlay_config,omitempty"`
}

// Update applies a partial update to an existing preset. Renames follow
// the same blank-name and collision rules as Create, ignoring a collision
// with the preset being edited itself.
func (m *Manager) Update(id uuid.UUID, patch UpdatePatch) (*models.OverlayPreset, error) {
	p, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, ErrBlankName
		}
		other, err := m.store.GetByName(name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != p.ID {
			return nil, ErrNameTaken
		}
		p.Name = name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Config != nil {
		if err := patch.Config.Validate(); err != nil {
			return nil, err
		}
		p.Config = *patch.Config
	}

	if err := m.store.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a custom preset. Built-in presets are protected here, at
// the lifecycle layer, so the store is never reached for them.
func (m *Manager) Delete(id uuid.UUID) error {
	p, err := m.Get(id)
	if err != nil {
		return err
	}
	if p.IsBuiltin {
		return ErrBuiltinProtected
	}
	return m.store.Delete(id)
}

// Export serializes a preset's composition to the on-disk document format
// and returns the bytes plus the conventional download file name.
func (m *Manager) Export(id uuid.UUID, now time.Time) ([]byte, string, error) {
	p, err := m.Get(id)
	if err != nil {
		return nil, "", err
	}
	data, err := json.MarshalIndent(p.Config, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("marshal config: %w", err)
	}
	name := fmt.Sprintf("overlay-config-%s.json", now.UTC().Format("20060102-150405"))
	return data, name, nil
}

// Import parses an exported composition document and saves it as a named
// preset, subject to the usual Create rules.
func (m *Manager) Import(name, description string, data []byte, overwrite bool) (*models.OverlayPreset, error) {
	var cfg overlay.OverlayConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse overlay config: %w", err)
	}
	return m.Create(name, description, cfg, overwrite)
}
