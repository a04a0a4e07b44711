package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/skillgap-analyzer/internal/db"
	"github.com/jonathan/skillgap-analyzer/internal/fetch"
	"github.com/jonathan/skillgap-analyzer/internal/llm"
	"github.com/jonathan/skillgap-analyzer/internal/server/middleware"
	"github.com/jonathan/skillgap-analyzer/internal/types"
)

const maxAnalyzeBodyBytes = 1 << 20 // 1 MB

// analyzeResponse is the payload returned for a completed analysis.
type analyzeResponse struct {
	ID        uuid.UUID            `json:"id"`
	Result    types.AnalysisResult `json:"result"`
	CreatedAt time.Time            `json:"created_at"`
}

// handleCreateAnalysis runs the AI comparison for a submitted resume and job
// description, records the outcome, and returns the structured result.
func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAnalyzeBodyBytes)

	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	jobDescription := req.JobDescription
	if jobDescription == "" {
		if req.JobDescriptionURL == "" {
			s.errorResponse(w, http.StatusBadRequest, "either job_description or job_description_url is required")
			return
		}
		fetched, err := fetch.JobDescription(r.Context(), req.JobDescriptionURL)
		if err != nil {
			log.Printf("job description fetch failed: %v", err)
			s.errorResponse(w, http.StatusBadGateway, "failed to fetch job description from URL")
			return
		}
		jobDescription = fetched
	}

	result, err := llm.AnalyzeMatch(r.Context(), s.llmClient, req.ResumeText, jobDescription, req.JobRole)
	if err != nil {
		wrapped := &ErrUpstreamAnalysis{Cause: err}
		log.Printf("analysis failed: %v", wrapped)
		s.errorResponse(w, HTTPStatus(wrapped), "analysis failed, please try again")
		return
	}

	sub := &types.Submission{
		StudentName:  req.StudentName,
		Department:   req.Department,
		AcademicYear: req.AcademicYear,
		CompanyName:  req.CompanyName,
		JobRole:      req.JobRole,
		Result:       *result,
	}

	// Attach the submitter when the request carried a valid token.
	if userID, err := middleware.GetUserID(r); err == nil {
		sub.UserID = &userID
	}

	record, err := s.recorder.Record(r.Context(), sub)
	if err != nil {
		log.Printf("failed to record analysis: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to record analysis")
		return
	}

	s.jsonResponse(w, http.StatusCreated, analyzeResponse{
		ID:        record.ID,
		Result:    *result,
		CreatedAt: record.CreatedAt,
	})
}

// handleListAnalyses returns stored skill gap records, newest first.
// Filters: department, academic_year, limit.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	filters := db.RecordFilters{
		Department:   r.URL.Query().Get("department"),
		AcademicYear: r.URL.Query().Get("academic_year"),
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		filters.Limit = limit
	}

	records, err := s.records.ListRecords(r.Context(), filters)
	if err != nil {
		log.Printf("failed to list analyses: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	if records == nil {
		records = []db.SkillGapRecord{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"total":   len(records),
		"records": records,
	})
}
