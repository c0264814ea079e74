package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/overlay"
	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/presets"
)

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	list, err := s.presets.List()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "failed to list presets")
		return
	}
	s.respondJSON(w, http.StatusOK, Response{Success: true, Data: list})
}

func (s *Server) handleCreatePreset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string                `json:"name"`
		Description string                `json:"description"`
		Config      overlay.OverlayConfig `json:"overlay_config"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Overwriting an existing name requires the caller's explicit
	// confirmation via ?overwrite=true; the first attempt gets a 409.
	overwrite := r.URL.Query().Get("overwrite") == "true"

	p, err := s.presets.Create(req.Name, req.Description, req.Config, overwrite)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, Response{Success: true, Data: p})
}

func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid preset ID")
		return
	}
	p, err := s.presets.Get(id)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, Response{Success: true, Data: p})
}

func (s *Server) handleUpdatePreset(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid preset ID")
		return
	}
	var patch presets.UpdatePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := s.presets.Update(id, patch)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, Response{Success: true, Data: p})
}

func (s *Server) handleDeletePreset(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid preset ID")
		return
	}
	if err := s.presets.Delete(id); err != nil {
		s.respondDomainError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, Response{Success: true})
}

func (s *Server) handleExportPreset(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid preset ID")
		return
	}
	data, fileName, err := s.presets.Export(id, time.Now())
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleImportPreset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Document    json.RawMessage `json:"document"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Document) == 0 {
		s.respondError(w, http.StatusBadRequest, "document is required")
		return
	}
	overwrite := r.URL.Query().Get("overwrite") == "true"

	p, err := s.presets.Import(req.Name, req.Description, req.Document, overwrite)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, Response{Success: true, Data: p})
}
