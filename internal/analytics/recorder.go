package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skillgap-analyzer/internal/db"
	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// RecordStore is the persistence surface the recorder writes through.
type RecordStore interface {
	InsertSkillGapRecord(ctx context.Context, rec *db.SkillGapRecord) (uuid.UUID, error)
	UpsertSkillCounter(ctx context.Context, skill, department string) error
	UpsertTrendCounter(ctx context.Context, skill string, week, year int) error
}

// Recorder persists one analysis result and incrementally updates the
// per-skill and per-week aggregate counters.
type Recorder struct {
	store RecordStore
	now   func() time.Time
}

// NewRecorder creates a Recorder backed by the given store.
func NewRecorder(store RecordStore) *Recorder {
	return &Recorder{
		store: store,
		now:   time.Now,
	}
}

// Record validates the submission, inserts the immutable skill gap record and
// bumps the skill/trend counters for every distinct missing skill.
//
// The primary insert is fatal for the request. Counter upserts are
// best-effort: each skill is an independent unit that logs and continues on
// error, so one failed upsert never aborts the batch or rolls back the record.
func (r *Recorder) Record(ctx context.Context, sub *types.Submission) (*db.SkillGapRecord, error) {
	if err := sub.Validate(); err != nil {
		return nil, fmt.Errorf("invalid submission: %w", err)
	}

	recsJSON := []byte("[]")
	if len(sub.Result.Recommendations) > 0 {
		var err error
		if recsJSON, err = json.Marshal(sub.Result.Recommendations); err != nil {
			return nil, fmt.Errorf("failed to marshal recommendations: %w", err)
		}
	}

	rec := &db.SkillGapRecord{
		UserID:          sub.UserID,
		StudentName:     sub.StudentName,
		Department:      sub.Department,
		AcademicYear:    sub.AcademicYear,
		JobRole:         sub.JobRole,
		CompanyName:     sub.CompanyName,
		MatchScore:      sub.Result.MatchPercentage,
		MissingSkills:   dedupe(sub.Result.MissingSkills),
		MatchedSkills:   dedupe(sub.Result.MatchedSkills),
		SkillPriority:   sub.Result.SkillPriority,
		Recommendations: recsJSON,
	}

	// The store stamps rec.CreatedAt from the row it inserts, so the response
	// timestamp matches what listing and export return later.
	id, err := r.store.InsertSkillGapRecord(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to record analysis: %w", err)
	}
	rec.ID = id

	week, year := isoWeek(r.now())
	for _, skill := range rec.MissingSkills {
		if err := r.store.UpsertSkillCounter(ctx, skill, rec.Department); err != nil {
			log.Printf("skipping skill counter for %q: %v", skill, err)
		}
		if err := r.store.UpsertTrendCounter(ctx, skill, week, year); err != nil {
			log.Printf("skipping trend counter for %q: %v", skill, err)
		}
	}

	return rec, nil
}

// dedupe removes duplicate skills while preserving first-seen order.
func dedupe(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
