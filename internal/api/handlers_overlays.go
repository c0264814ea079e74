package api

import (
	"encoding/json"
	"net/http"

	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/overlay"
)

func (s *Server) handleListPositions(w http.ResponseWriter, r *http.Request) {
	type positionInfo struct {
		Position overlay.Position `json:"position"`
		Label    string           `json:"label"`
		Row      int              `json:"row"`
		Col      int              `json:"col"`
	}
	var out []positionInfo
	for _, p := range overlay.Positions() {
		out = append(out, positionInfo{Position: p, Label: p.Label(), Row: p.Row(), Col: p.Col()})
	}
	s.respondJSON(w, http.StatusOK, Response{Success: true, Data: out})
}

func (s *Server) handleListTypes(w http.ResponseWriter, r *http.Request) {
	type typeInfo struct {
		Type            overlay.OverlayType     `json:"type"`
		Label           string                  `json:"label"`
		Description     string                  `json:"description"`
		DefaultSettings overlay.OverlaySettings `json:"default_settings"`
	}
	var out []typeInfo
	for _, t := range overlay.Types() {
		out = append(out, typeInfo{
			Type:            t,
			Label:           overlay.Label(t),
			Description:     overlay.Description(t),
			DefaultSettings: overlay.DefaultSettings(t),
		})
	}
	s.respondJSON(w, http.StatusOK, Response{Success: true, Data: out})
}

type renderRequest struct {
	Config overlay.OverlayConfig `json:"overlay_config"`
	Mode   string                `json:"mode"`   // "edit" or "preview"
	Source string                `json:"source"` // "sample" or "live"
}

type renderedOverlay struct {
	ID        string                `json:"id"`
	Type      overlay.OverlayType   `json:"type"`
	Position  overlay.Position      `json:"position"`
	Style     overlay.RenderStyle   `json:"style"`
	Placement overlay.PlacementRect `json:"placement"`
	Content   overlay.Content       `json:"content"`
}

// handleRenderOverlays resolves a whole composition into effective render
// descriptors, placements, and content. The editor's grid, the live
// preview, and the external burn-in renderer all consume this one path.
func (s *Server) handleRenderOverlays(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Config.Validate(); err != nil {
		s.respondDomainError(w, err)
		return
	}

	mode := overlay.ModePreview
	if req.Mode == "edit" {
		mode = overlay.ModeEdit
	}
	var src overlay.DataSource = overlay.SampleSource{}
	if req.Source == "live" && mode == overlay.ModePreview {
		src = s.live
	}

	out := make([]renderedOverlay, 0, len(req.Config.OverlayItems))
	for _, item := range req.Config.OverlayItems {
		if !item.Enabled {
			continue
		}
		out = append(out, renderedOverlay{
			ID:        item.ID,
			Type:      item.Type,
			Position:  item.Position,
			Style:     overlay.Resolve(req.Config.GlobalSettings, item),
			Placement: overlay.Place(item.Position, req.Config.GlobalSettings, mode),
			Content:   overlay.ContentFor(item, src),
		})
	}
	s.respondJSON(w, http.StatusOK, Response{Success: true, Data: out})
}
