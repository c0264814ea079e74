package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/overlay"
	"github.com/jordanlambrecht/timelapser-v4-sub001/internal/presets"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, Response{Success: false, Error: message})
}

// respondDomainError maps the error taxonomy onto HTTP statuses:
// validation failures 400, missing things 404, name collisions 409,
// built-in protection 403, everything else an upstream 500.
func (s *Server) respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, presets.ErrNameTaken):
		s.respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, presets.ErrBuiltinProtected):
		s.respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, presets.ErrPresetNotFound), errors.Is(err, overlay.ErrItemNotFound):
		s.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, presets.ErrBlankName), overlay.IsValidation(err):
		s.respondError(w, http.StatusBadRequest, err.Error())
	default:
		s.respondError(w, http.StatusInternalServerError, err.Error())
	}
}
