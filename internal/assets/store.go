package assets

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/models"
	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/repository"
)

// Store persists watermark images on the local filesystem and records
// them in the asset repository. Stored files are addressable under
// baseURL by their generated name.
type Store struct {
	dir     string
	baseURL string
	repo    *repository.AssetRepository
}

func NewStore(dir, baseURL string, repo *repository.AssetRepository) *Store {
	return &Store{dir: dir, baseURL: baseURL, repo: repo}
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	}
	return ".bin"
}

// Upload writes the bytes under a generated name and records the asset.
func (s *Store) Upload(ctx context.Context, fileName, contentType string, data []byte) (*models.Asset, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create asset dir: %w", err)
	}

	id := uuid.New()
	stored := id.String() + extensionFor(contentType)
	path := filepath.Join(s.dir, stored)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write asset file: %w", err)
	}

	asset := &models.Asset{
		ID:          id,
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
		URL:         s.baseURL + "/" + stored,
	}
	if err := s.repo.Create(asset); err != nil {
		// Don't leave unrecorded files behind.
		if rmErr := os.Remove(path); rmErr != nil {
			log.Printf("assets: could not remove %s after failed insert: %v", path, rmErr)
		}
		return nil, fmt.Errorf("record asset: %w", err)
	}
	return asset, nil
}

// Delete removes both the stored file and the repository row.
func (s *Store) Delete(a *models.Asset) error {
	stored := filepath.Base(a.URL)
	if err := os.Remove(filepath.Join(s.dir, stored)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove asset file: %w", err)
	}
	return s.repo.Delete(a.ID)
}

// Dir returns the directory stored assets are served from.
func (s *Store) Dir() string { return s.dir }
