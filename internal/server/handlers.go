package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sadhikari20/AIJobInsight/internal/catalog"
	"github.com/sadhikari20/AIJobInsight/internal/dataset"
	"github.com/sadhikari20/AIJobInsight/internal/types"
)

// CatalogsResponse lists the fixed selection catalogs for UI clients.
type CatalogsResponse struct {
	JobTitles    []string `json:"job_titles"`
	CareerLevels []string `json:"career_levels"`
}

// handleInsights serves POST /insights.
func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	var req types.InsightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "job_title and career_level are required")
		return
	}

	insight, err := s.provider.Insights(req)
	if err != nil {
		var notFound *dataset.NotFoundError
		if errors.As(err, &notFound) {
			s.errorResponse(w, http.StatusNotFound, notFound.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Insight generation failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, insight)
}

// handleCatalogs serves GET /catalogs.
func (s *Server) handleCatalogs(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, CatalogsResponse{
		JobTitles:    catalog.JobTitles,
		CareerLevels: catalog.CareerLevels,
	})
}

// handleHealth returns server health status, including dataset size.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"postings": s.provider.Len(),
	})
}
