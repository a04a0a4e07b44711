package analytics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jonathan/skillgap-analyzer/internal/db"
)

// exportHeader is the column order of the CSV export.
var exportHeader = []string{
	"id", "student_name", "department", "academic_year", "job_role",
	"company_name", "match_score", "missing_skills", "matched_skills",
	"skill_priority", "recommendations", "created_at",
}

// WriteCSV flattens records to CSV rows. JSON-valued fields are stringified;
// encoding/csv doubles embedded quotes, so the export round-trips cleanly.
func WriteCSV(w io.Writer, records []db.SkillGapRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range records {
		missing, err := json.Marshal(rec.MissingSkills)
		if err != nil {
			return fmt.Errorf("failed to marshal missing skills: %w", err)
		}
		matched, err := json.Marshal(rec.MatchedSkills)
		if err != nil {
			return fmt.Errorf("failed to marshal matched skills: %w", err)
		}
		priority, err := json.Marshal(rec.SkillPriority)
		if err != nil {
			return fmt.Errorf("failed to marshal skill priority: %w", err)
		}
		recommendations := string(rec.Recommendations)
		if recommendations == "" {
			recommendations = "[]"
		}

		row := []string{
			rec.ID.String(),
			rec.StudentName,
			rec.Department,
			rec.AcademicYear,
			rec.JobRole,
			rec.CompanyName,
			fmt.Sprintf("%d", rec.MatchScore),
			string(missing),
			string(matched),
			string(priority),
			recommendations,
			rec.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportEnvelope is the JSON export shape: the filtered record set plus a
// total count.
type ExportEnvelope struct {
	Total   int                 `json:"total"`
	Records []db.SkillGapRecord `json:"records"`
}

// WriteJSON writes the filtered record set as a JSON envelope.
func WriteJSON(w io.Writer, records []db.SkillGapRecord) error {
	if records == nil {
		records = []db.SkillGapRecord{}
	}
	envelope := ExportEnvelope{
		Total:   len(records),
		Records: records,
	}
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}
