package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jonathan/skillgap-analyzer/internal/analytics"
	"github.com/jonathan/skillgap-analyzer/internal/db"
	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// handleDashboard returns the aggregated analytics snapshot. Aggregation never
// fails the request: partial backend errors degrade to an empty snapshot.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	filter := types.SnapshotFilter{
		Department:   r.URL.Query().Get("department"),
		AcademicYear: r.URL.Query().Get("academic_year"),
	}

	snapshot := s.aggregator.Aggregate(r.Context(), filter)
	s.jsonResponse(w, http.StatusOK, snapshot)
}

// handleExport streams stored records as CSV or JSON.
// Query params: format (csv|json, default csv), department, academic_year.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "json" {
		s.errorResponse(w, http.StatusBadRequest, "format must be csv or json")
		return
	}

	records, err := s.records.ListRecords(r.Context(), db.RecordFilters{
		Department:   r.URL.Query().Get("department"),
		AcademicYear: r.URL.Query().Get("academic_year"),
	})
	if err != nil {
		log.Printf("failed to load records for export: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to export records")
		return
	}

	filename := fmt.Sprintf("skill-gap-records-%s.%s", time.Now().UTC().Format("2006-01-02"), format)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		err = analytics.WriteCSV(w, records)
	case "json":
		w.Header().Set("Content-Type", "application/json")
		err = analytics.WriteJSON(w, records)
	}
	if err != nil {
		// Headers are already sent, only log
		log.Printf("failed to write export: %v", err)
	}
}
