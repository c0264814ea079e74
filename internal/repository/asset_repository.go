package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/models"
)

type AssetRepository struct {
	db *sql.DB
}

func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(a *models.Asset) error {
	query := `
		INSERT INTO overlay_assets (id, file_name, content_type, size_bytes, url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`
	return r.db.QueryRow(query, a.ID, a.FileName, a.ContentType, a.SizeBytes, a.URL).
		Scan(&a.CreatedAt)
}

// GetByID returns (nil, nil) when the asset does not exist.
func (r *AssetRepository) GetByID(id uuid.UUID) (*models.Asset, error) {
	a := &models.Asset{}
	err := r.db.QueryRow(`
		SELECT id, file_name, content_type, size_bytes, url, created_at
		FROM overlay_assets WHERE id = $1`, id).
		Scan(&a.ID, &a.FileName, &a.ContentType, &a.SizeBytes, &a.URL, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AssetRepository) Delete(id uuid.UUID) error {
	_, err := r.db.Exec(`DELETE FROM overlay_assets WHERE id = $1`, id)
	return err
}

// ListOrphaned returns assets older than the cutoff that no preset
// references through a watermark assetId.
func (r *AssetRepository) ListOrphaned(olderThan time.Duration) ([]*models.Asset, error) {
	cutoff := time.Now().Add(-olderThan)
	query := `
		SELECT a.id, a.file_name, a.content_type, a.size_bytes, a.url, a.created_at
		FROM overlay_assets a
		WHERE a.created_at < $1
		  AND NOT EXISTS (
			SELECT 1
			FROM overlay_presets p,
			     jsonb_array_elements(p.config->'overlayItems') item
			WHERE item->'settings'->>'assetId' = a.id::text
		  )`
	rows, err := r.db.Query(query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []*models.Asset
	for rows.Next() {
		a := &models.Asset{}
		if err := rows.Scan(&a.ID, &a.FileName, &a.ContentType, &a.SizeBytes, &a.URL, &a.CreatedAt); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}
