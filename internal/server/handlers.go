package server

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/moviefy/internal/types"
)

// maxBodyBytes bounds request bodies; profiles are small.
const maxBodyBytes = 1 << 20

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Message: "MOVIEFY API is running", Status: "healthy"})
}

// handleRecommendations ranks the catalog against the posted profile. The body is
// either the profile object itself (with an optional top_n) or
// {"profile": {...}, "top_n": n}.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRecommendRequest(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	// top_n 0 or absent means the configured default.
	topN := req.TopN
	if topN == 0 {
		topN = s.topN
	}

	recs := s.engine.Recommend(r.Context(), req.Profile, topN)
	if recs == nil {
		recs = []types.Recommendation{}
	}
	writeJSON(w, http.StatusOK, types.RecommendResponse{
		RequestID:       RequestID(r.Context()),
		Recommendations: recs,
	})
}

// handleIndexStats reports the live index.
func (s *Server) handleIndexStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Stats())
}

// handleIndexRebuild reloads the catalog and swaps in a fresh index.
func (s *Server) handleIndexRebuild(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.Rebuild(r.Context()); err != nil {
		s.logger.Error().Err(err).Str("request_id", RequestID(r.Context())).Msg("index rebuild failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"error": err.Error(),
			"index": s.engine.Stats(),
		})
		return
	}
	writeJSON(w, http.StatusOK, s.engine.Stats())
}

func decodeRecommendRequest(body io.Reader) (*types.RecommendRequest, error) {
	var raw map[string]any
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return nil, &ErrMalformedBody{Cause: err}
	}
	if raw == nil {
		return nil, &ErrValidation{Field: "profile", Message: "is required"}
	}

	req := &types.RecommendRequest{Profile: raw}
	if nested, ok := raw["profile"]; ok {
		profile, ok := nested.(map[string]any)
		if !ok {
			return nil, &ErrValidation{Field: "profile", Message: "must be an object"}
		}
		req.Profile = profile
	}

	if v, ok := raw["top_n"]; ok && v != nil {
		n, ok := v.(float64)
		if !ok || n != math.Trunc(n) {
			return nil, &ErrValidation{Field: "top_n", Message: "must be an integer"}
		}
		if n < 0 || n > 15 {
			return nil, &ErrValidation{Field: "top_n", Message: "must be between 0 and 15"}
		}
		req.TopN = int(n)
	}

	if err := req.Validate(); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, &ErrValidation{Field: verrs[0].Field(), Message: verrs[0].Tag()}
		}
		return nil, &ErrValidation{Field: "request", Message: err.Error()}
	}
	return req, nil
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// errorResponse writes an error JSON response with the status mapped from err.
func (s *Server) errorResponse(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
