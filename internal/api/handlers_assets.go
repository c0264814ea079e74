package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/overlay"
)

// Watermark uploads are capped well above any reasonable logo size.
const maxUploadBytes = 10 << 20

// handleUploadAsset accepts a multipart watermark upload and runs it
// through the reconciler. The optional "settings" part carries the item's
// current watermark settings so the response reflects the full state
// transition. On upstream failure the degraded settings (local preview
// kept, no assetId) are still returned so the editor keeps its context.
func (s *Server) handleUploadAsset(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "could not read file")
		return
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	var settings overlay.OverlaySettings
	if raw := r.FormValue("settings"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &settings); err != nil {
			s.respondError(w, http.StatusBadRequest, "invalid settings")
			return
		}
	}

	updated, err := s.reconciler.Run(r.Context(), settings, header.Filename, contentType, data)
	if err != nil {
		s.respondJSON(w, http.StatusBadGateway, Response{
			Success: false,
			Error:   err.Error(),
			Data:    map[string]interface{}{"settings": updated},
		})
		return
	}

	asset, err := s.assetRepo.GetByID(uuid.MustParse(updated.AssetID))
	if err != nil || asset == nil {
		s.respondError(w, http.StatusInternalServerError, "uploaded asset not found")
		return
	}
	s.respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Data: map[string]interface{}{
			"asset":    asset,
			"settings": updated,
		},
	})
}

func (s *Server) handleDeleteAsset(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid asset ID")
		return
	}
	asset, err := s.assetRepo.GetByID(id)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to load asset")
		return
	}
	if asset == nil {
		s.respondError(w, http.StatusNotFound, "asset not found")
		return
	}
	if err := s.assetStore.Delete(asset); err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to delete asset")
		return
	}
	s.respondJSON(w, http.StatusOK, Response{Success: true})
}
