package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/models"
	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/overlay"
)

type PresetRepository struct {
	db *sql.DB
}

func NewPresetRepository(db *sql.DB) *PresetRepository {
	return &PresetRepository{db: db}
}

func (r *PresetRepository) Create(p *models.OverlayPreset) error {
	cfg, err := json.Marshal(p.Config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	query := `
		INSERT INTO overlay_presets (id, name, description, config, is_builtin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`
	return r.db.QueryRow(query, p.ID, p.Name, p.Description, cfg, p.IsBuiltin).
		Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *PresetRepository) GetByID(id uuid.UUID) (*models.OverlayPreset, error) {
	query := `
		SELECT id, name, description, config, is_builtin, created_at, updated_at
		FROM overlay_presets WHERE id = $1`
	return r.scanOne(r.db.QueryRow(query, id))
}

// GetByName looks a preset up by name, case-insensitively. Returns
// (nil, nil) when no preset has that name.
func (r *PresetRepository) GetByName(name string) (*models.OverlayPreset, error) {
	query := `
		SELECT id, name, description, config, is_builtin, created_at, updated_at
		FROM overlay_presets WHERE LOWER(name) = LOWER($1)`
	return r.scanOne(r.db.QueryRow(query, name))
}

func (r *PresetRepository) List() ([]*models.OverlayPreset, error) {
	query := `
		SELECT id, name, description, config, is_builtin, created_at, updated_at
		FROM overlay_presets
		ORDER BY is_builtin DESC, LOWER(name)`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []*models.OverlayPreset
	for rows.Next() {
		p := &models.OverlayPreset{}
		var cfg []byte
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &cfg, &p.IsBuiltin,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(cfg, &p.Config); err != nil {
			return nil, fmt.Errorf("preset %s: unmarshal config: %w", p.ID, err)
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

func (r *PresetRepository) Update(p *models.OverlayPreset) error {
	cfg, err := json.Marshal(p.Config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	query := `
		UPDATE overlay_presets
		SET name = $2, description = $3, config = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at`
	return r.db.QueryRow(query, p.ID, p.Name, p.Description, cfg).Scan(&p.UpdatedAt)
}

func (r *PresetRepository) Delete(id uuid.UUID) error {
	_, err := r.db.Exec(`DELETE FROM overlay_presets WHERE id = $1`, id)
	return err
}

func (r *PresetRepository) scanOne(row *sql.Row) (*models.OverlayPreset, error) {
	p := &models.OverlayPreset{}
	var cfg []byte
	err := row.Scan(&p.ID, &p.Name, &p.Description, &cfg, &p.IsBuiltin,
		&p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.Config = overlay.OverlayConfig{}
	if err := json.Unmarshal(cfg, &p.Config); err != nil {
		return nil, fmt.Errorf("preset %s: unmarshal config: %w", p.ID, err)
	}
	return p, nil
}
