package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/overlay"
)

// OverlayPreset is a named, persisted overlay composition. Built-in
// presets are seeded by migrations; they can be edited but never deleted.
type OverlayPreset struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Config      overlay.OverlayConfig `json:"overlay_config"`
	IsBuiltin   bool                  `json:"is_builtin"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// Asset is a persisted watermark image. The core never owns the bytes;
// overlay settings hold the asset ID as a weak reference.
type Asset struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}
