package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// InsertSkillGapRecord appends one immutable analysis record and returns its
// ID. The record's CreatedAt is stamped from the inserted row so callers see
// the same timestamp later reads return.
func (db *DB) InsertSkillGapRecord(ctx context.Context, rec *SkillGapRecord) (uuid.UUID, error) {
	priorityJSON, err := json.Marshal(rec.SkillPriority)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal skill priority: %w", err)
	}
	recsJSON := rec.Recommendations
	if len(recsJSON) == 0 {
		recsJSON = []byte("[]")
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO skill_gap_records
		 (user_id, student_name, department, academic_year, job_role, company_name,
		  match_score, missing_skills, matched_skills, skill_priority, recommendations)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at`,
		rec.UserID, rec.StudentName, rec.Department, rec.AcademicYear, rec.JobRole,
		rec.CompanyName, rec.MatchScore, rec.MissingSkills, rec.MatchedSkills,
		priorityJSON, recsJSON,
	).Scan(&id, &rec.CreatedAt)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert skill gap record: %w", err)
	}
	return id, nil
}

// RecordFilters holds optional filters for listing skill gap records
type RecordFilters struct {
	Department   string
	AcademicYear string
	Limit        int
}

// ListRecords retrieves skill gap records matching the filters, newest first.
// A zero Limit returns all matching records.
func (db *DB) ListRecords(ctx context.Context, filters RecordFilters) ([]SkillGapRecord, error) {
	query := `SELECT id, user_id, student_name, department, academic_year, job_role,
		 company_name, match_score, missing_skills, matched_skills, skill_priority,
		 recommendations, created_at
		 FROM skill_gap_records WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Department != "" {
		query += fmt.Sprintf(" AND department = $%d", argNum)
		args = append(args, filters.Department)
		argNum++
	}
	if filters.AcademicYear != "" {
		query += fmt.Sprintf(" AND academic_year = $%d", argNum)
		args = append(args, filters.AcademicYear)
		argNum++
	}

	query += " ORDER BY created_at DESC"
	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argNum)
		args = append(args, filters.Limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []SkillGapRecord
	for rows.Next() {
		var rec SkillGapRecord
		var priorityRaw []byte
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.StudentName, &rec.Department,
			&rec.AcademicYear, &rec.JobRole, &rec.CompanyName, &rec.MatchScore,
			&rec.MissingSkills, &rec.MatchedSkills, &priorityRaw, &rec.Recommendations,
			&rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		// Stored priority blobs are decoded defensively: a malformed blob
		// leaves the partition empty instead of failing the whole list.
		_ = json.Unmarshal(priorityRaw, &rec.SkillPriority)
		records = append(records, rec)
	}
	return records, nil
}
