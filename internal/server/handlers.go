package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/pitchkraft/internal/types"
)

// maxGenerateBody caps POST /generate bodies; the request only carries a URL.
const maxGenerateBody = 64 << 10

// Generator produces outreach drafts for a job posting URL.
type Generator interface {
	Generate(ctx context.Context, jobURL string) ([]types.GenerationResult, error)
}

// handleGenerate runs the generation pipeline for one URL
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxGenerateBody)

	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		verr := validationError(err)
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	id := requestID(r.Context())
	s.logger.Infof("[generate] %s %s", id, req.URL)

	results, err := s.generator.Generate(r.Context(), req.URL)
	if err != nil {
		status := HTTPStatus(err)
		s.logger.Errorf("[generate] %s failed (%d): %v", id, status, err)
		s.errorResponse(w, status, err.Error())
		return
	}
	if results == nil {
		results = []types.GenerationResult{}
	}

	s.logger.Infof("[generate] %s produced %d drafts", id, len(results))
	s.jsonResponse(w, http.StatusOK, types.GenerateResponse{Results: results})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Errorf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, types.ErrorResponse{Error: message})
}
