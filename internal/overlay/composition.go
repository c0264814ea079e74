package overlay

import "github.com/google/uuid"

// Composition mutations are pure: each takes an OverlayConfig value and
// returns a new one, leaving the input untouched. The editing session just
// holds the latest value, which makes undo and change detection trivial.

// NewConfig returns an empty composition with default shared settings.
func NewConfig() OverlayConfig {
	return OverlayConfig{GlobalSettings: DefaultGlobalSettings()}
}

// ItemAt returns the overlay occupying pos, if any.
func ItemAt(cfg OverlayConfig, pos Position) (OverlayItem, bool) {
	for _, item := range cfg.OverlayItems {
		if item.Position == pos {
			return item, true
		}
	}
	return OverlayItem{}, false
}

// AddOverlay places a new overlay of the given type at pos, initialized
// from the type's default settings. It fails with ErrPositionOccupied when
// pos already holds an overlay; the existing item must be removed first.
func AddOverlay(cfg OverlayConfig, pos Position, t OverlayType) (OverlayConfig, error) {
	if !pos.Valid() {
		return cfg, validationErr("position", "unknown position %q", pos)
	}
	if !ValidType(t) {
		return cfg, validationErr("type", "unknown overlay type %q", t)
	}
	if _, ok := ItemAt(cfg, pos); ok {
		return cfg, ErrPositionOccupied
	}

	item := OverlayItem{
		ID:       uuid.NewString(),
		Type:     t,
		Position: pos,
		Enabled:  true,
		Settings: DefaultSettings(t),
	}
	out := cfg
	out.OverlayItems = make([]OverlayItem, len(cfg.OverlayItems), len(cfg.OverlayItems)+1)
	copy(out.OverlayItems, cfg.OverlayItems)
	out.OverlayItems = append(out.OverlayItems, item)
	return out, nil
}

// RemoveOverlay removes the overlay at pos. Removing an empty position is
// a no-op, not an error.
func RemoveOverlay(cfg OverlayConfig, pos Position) OverlayConfig {
	if _, ok := ItemAt(cfg, pos); !ok {
		return cfg
	}
	out := cfg
	out.OverlayItems = make([]OverlayItem, 0, len(cfg.OverlayItems)-1)
	for _, item := range cfg.OverlayItems {
		if item.Position != pos {
			out.OverlayItems = append(out.OverlayItems, item)
		}
	}
	return out
}

// UpdateOverlay merges a partial settings patch into the item with the
// given ID. Fails with ErrItemNotFound for unknown IDs; on any failure the
// original configuration is returned unchanged.
func UpdateOverlay(cfg OverlayConfig, id string, patch Patch) (OverlayConfig, error) {
	idx := -1
	for i, item := range cfg.OverlayItems {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return cfg, ErrItemNotFound
	}

	updated, err := cfg.OverlayItems[idx].Settings.ApplyPatch(patch)
	if err != nil {
		return cfg, err
	}

	out := cfg
	out.OverlayItems = make([]OverlayItem, len(cfg.OverlayItems))
	copy(out.OverlayItems, cfg.OverlayItems)
	out.OverlayItems[idx].Settings = updated
	return out, nil
}

// SetOverlayEnabled toggles visibility of the item with the given ID.
func SetOverlayEnabled(cfg OverlayConfig, id string, enabled bool) (OverlayConfig, error) {
	idx := -1
	for i, item := range cfg.OverlayItems {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return cfg, ErrItemNotFound
	}
	out := cfg
	out.OverlayItems = make([]OverlayItem, len(cfg.OverlayItems))
	copy(out.OverlayItems, cfg.OverlayItems)
	out.OverlayItems[idx].Enabled = enabled
	return out, nil
}

// UpdateGlobalSettings merges a partial update into the shared settings.
func UpdateGlobalSettings(cfg OverlayConfig, patch Patch) (OverlayConfig, error) {
	updated, err := cfg.GlobalSettings.ApplyPatch(patch)
	if err != nil {
		return cfg, err
	}
	out := cfg
	out.GlobalSettings = updated
	return out, nil
}
