package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hirepath/match-engine/internal/engine"
	"github.com/hirepath/match-engine/internal/extraction"
	"github.com/hirepath/match-engine/internal/types"
)

// AnalyzeRequest represents the request body for /v1/analyze.
type AnalyzeRequest struct {
	Applicant   extraction.AccountRecord     `json:"applicant"`
	Job         *extraction.JobPostingRecord `json:"job" validate:"required"`
	CoverLetter string                       `json:"cover_letter,omitempty"`
}

// ProfileStatus reports how much scoreable data a profile carries. It is
// returned with rejections so clients can tell the user what to fill in.
type ProfileStatus struct {
	Skills      int `json:"skills"`
	Educations  int `json:"educations"`
	Experiences int `json:"experiences"`
}

// AnalyzeResponse represents the response for /v1/analyze.
type AnalyzeResponse struct {
	RequestID    string             `json:"request_id"`
	Result       *types.MatchResult `json:"result"`
	MatchQuality string             `json:"match_quality"`
}

// handleAnalyze scores one applicant/job pair.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	log := s.logger.With(zap.String("request_id", requestID))

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validate.Struct(&req); err != nil {
		invalid := &ErrValidation{Field: "job", Message: "job posting is required"}
		s.errorResponse(w, HTTPStatus(invalid), invalid.Error())
		return
	}

	profile := extraction.BuildProfile(req.Applicant)
	if len(profile.Skills) == 0 && len(profile.Educations) == 0 && len(profile.Experiences) == 0 {
		incomplete := &ErrIncompleteProfile{
			Skills:      len(profile.Skills),
			Educations:  len(profile.Educations),
			Experiences: len(profile.Experiences),
		}
		log.Info("rejecting incomplete profile", zap.Error(incomplete))
		s.jsonResponse(w, HTTPStatus(incomplete), map[string]any{
			"error": incomplete.Error(),
			"profile_status": ProfileStatus{
				Skills:      incomplete.Skills,
				Educations:  incomplete.Educations,
				Experiences: incomplete.Experiences,
			},
		})
		return
	}

	job := extraction.BuildRequirements(*req.Job)

	result, err := s.engine.Analyze(r.Context(), &profile, &job, req.CoverLetter)
	if err != nil {
		log.Error("analysis failed", zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	log.Info("analysis complete",
		zap.Float64("match_score", result.MatchScore),
		zap.Bool("fallback_used", result.FallbackUsed),
	)

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		RequestID:    requestID,
		Result:       result,
		MatchQuality: engine.MatchQuality(result.MatchScore),
	})
}

// handleClearCache drops all cached analysis results.
func (s *Server) handleClearCache(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.ClearCache(r.Context()); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "cache cleared"})
}

// handleHealth reports engine health. Pass ?probe=true to issue a live
// connectivity check against the LLM backend.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	probe := r.URL.Query().Get("probe") == "true"
	status := s.engine.Health(r.Context(), probe)

	// Fallback mode still serves requests, so degraded is not down.
	s.jsonResponse(w, http.StatusOK, status)
}
