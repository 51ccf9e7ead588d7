package server

import (
	"errors"
	"net/http"
	"os"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/nwgo/networth-projector/internal/config"
	"github.com/nwgo/networth-projector/internal/domain"
)

// statusResponse is the body for /save, /load errors and simple confirmations.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "networth-projector",
	})
}

// handleSimulate runs a projection over the posted scenario and returns the
// per-year records.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var input domain.SimulationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	config.Normalize(&input)
	if err := config.Validate(&input); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	records := s.engine.Project(&input)

	calcID := uuid.NewString()
	s.log.Debug().
		Str("calculation_id", calcID).
		Int("years", len(records)).
		Msg("Projection complete")

	w.Header().Set("X-Calculation-ID", calcID)
	s.writeJSON(w, http.StatusOK, records)
}

// handleSave persists the posted scenario. Saving only requires a
// decodable document: defaults are filled in, but semantic validation is
// deferred to simulation time so drafts can be stored.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var input domain.SimulationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	config.Normalize(&input)

	if err := s.store.Save(&input); err != nil {
		s.log.Error().Err(err).Msg("Failed to save scenario")
		s.writeError(w, http.StatusInternalServerError, "failed to save data")
		return
	}

	s.writeJSON(w, http.StatusOK, statusResponse{
		Status:  "success",
		Message: "Data saved successfully",
	})
}

// handleLoad returns the previously saved scenario, or 404 when none exists.
func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	input, err := s.store.Load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.writeJSON(w, http.StatusNotFound, statusResponse{
				Status:  "error",
				Message: "No saved data found",
			})
			return
		}
		s.log.Error().Err(err).Msg("Failed to load scenario")
		s.writeError(w, http.StatusInternalServerError, "failed to load data")
		return
	}

	s.writeJSON(w, http.StatusOK, input)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
