package assets

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/models"
	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/overlay"
)

// UploadState tracks where a watermark image sits between file selection
// and durable storage.
type UploadState string

const (
	StateIdle         UploadState = "idle"
	StateLocalPreview UploadState = "local_preview"
	StatePersisted    UploadState = "persisted"
	StateFailed       UploadState = "failed"
)

// Uploader persists raw image bytes and returns the stored asset.
type Uploader interface {
	Upload(ctx context.Context, fileName, contentType string, data []byte) (*models.Asset, error)
}

// StateOf derives the upload state from a watermark's settings.
func StateOf(s overlay.OverlaySettings) UploadState {
	switch {
	case s.IsUploading:
		return StateLocalPreview
	case s.AssetID != "":
		return StatePersisted
	case s.ImageURL != "":
		// A preview without an assetId means the upload failed or never
		// completed; the image will not survive a reload.
		return StateFailed
	default:
		return StateIdle
	}
}

// Begin installs an immediate local preview of the selected file so the
// composition renders usably before the upload round-trip completes.
func Begin(s overlay.OverlaySettings, contentType string, data []byte) overlay.OverlaySettings {
	out := s
	out.ImageURL = fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	out.AssetID = ""
	out.IsUploading = true
	return out
}

// Complete swaps the local preview for the persisted asset's stable
// reference.
func Complete(s overlay.OverlaySettings, a *models.Asset) overlay.OverlaySettings {
	out := s
	out.ImageURL = a.URL
	out.AssetID = a.ID.String()
	out.IsUploading = false
	return out
}

// Fail clears the in-flight flag but keeps the local preview so the user
// does not lose visual context. No assetId is set, signaling the image is
// not yet durable.
func Fail(s overlay.OverlaySettings) overlay.OverlaySettings {
	out := s
	out.IsUploading = false
	return out
}

// Reconciler drives a watermark settings value through the upload state
// machine: LocalPreview, then Persisted or Failed.
type Reconciler struct {
	uploader Uploader
}

func NewReconciler(uploader Uploader) *Reconciler {
	return &Reconciler{uploader: uploader}
}

// Run uploads the file and returns the settings reflecting the outcome.
// On failure the degraded settings (preview kept, not durable) are
// returned alongside the upstream error.
func (r *Reconciler) Run(ctx context.Context, s overlay.OverlaySettings, fileName, contentType string, data []byte) (overlay.OverlaySettings, error) {
	s = Begin(s, contentType, data)

	asset, err := r.uploader.Upload(ctx, fileName, contentType, data)
	if err != nil {
		return Fail(s), fmt.Errorf("upload asset: %w", err)
	}
	return Complete(s, asset), nil
}
