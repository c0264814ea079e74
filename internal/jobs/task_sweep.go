package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/assets"
	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/repository"
)

// SweepPayload configures one orphaned-asset sweep run.
type SweepPayload struct {
	// OlderThanHours guards recent uploads that may not be referenced by a
	// saved preset yet. Zero means the 24h default.
	OlderThanHours int `json:"older_than_hours"`
}

// AssetSweepHandler deletes uploaded watermark images that no preset
// references anymore.
type AssetSweepHandler struct {
	assetRepo *repository.AssetRepository
	store     *assets.Store
}

func NewAssetSweepHandler(assetRepo *repository.AssetRepository, store *assets.Store) *AssetSweepHandler {
	return &AssetSweepHandler{assetRepo: assetRepo, store: store}
}

func (h *AssetSweepHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p SweepPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if p.OlderThanHours <= 0 {
		p.OlderThanHours = 24
	}

	orphans, err := h.assetRepo.ListOrphaned(time.Duration(p.OlderThanHours) * time.Hour)
	if err != nil {
		return fmt.Errorf("list orphaned assets: %w", err)
	}
	if len(orphans) == 0 {
		return nil
	}

	removed := 0
	for _, a := range orphans {
		if err := h.store.Delete(a); err != nil {
			log.Printf("Sweep: could not delete asset %s: %v", a.ID, err)
			continue
		}
		removed++
	}
	log.Printf("Sweep: removed %d orphaned assets", removed)
	return nil
}
