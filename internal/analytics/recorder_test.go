package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skillgap-analyzer/internal/db"
	"github.com/jonathan/skillgap-analyzer/internal/types"
)

type counterCall struct {
	skill      string
	department string
}

type trendCall struct {
	skill string
	week  int
	year  int
}

type fakeRecordStore struct {
	inserted      []*db.SkillGapRecord
	skillCounters []counterCall
	trendCounters []trendCall

	insertErr       error
	skillCounterErr error
	trendCounterErr error
	insertedAt      time.Time
}

// InsertSkillGapRecord stamps CreatedAt like the real store, which takes it
// from the inserted row.
func (f *fakeRecordStore) InsertSkillGapRecord(_ context.Context, rec *db.SkillGapRecord) (uuid.UUID, error) {
	if f.insertErr != nil {
		return uuid.Nil, f.insertErr
	}
	if f.insertedAt.IsZero() {
		f.insertedAt = time.Date(2026, 8, 26, 10, 0, 1, 0, time.UTC)
	}
	rec.CreatedAt = f.insertedAt
	f.inserted = append(f.inserted, rec)
	return uuid.New(), nil
}

func (f *fakeRecordStore) UpsertSkillCounter(_ context.Context, skill, department string) error {
	if f.skillCounterErr != nil {
		return f.skillCounterErr
	}
	f.skillCounters = append(f.skillCounters, counterCall{skill, department})
	return nil
}

func (f *fakeRecordStore) UpsertTrendCounter(_ context.Context, skill string, week, year int) error {
	if f.trendCounterErr != nil {
		return f.trendCounterErr
	}
	f.trendCounters = append(f.trendCounters, trendCall{skill, week, year})
	return nil
}

func testSubmission() *types.Submission {
	return &types.Submission{
		StudentName:  "Asha Patel",
		Department:   "CSE",
		AcademicYear: "2026",
		CompanyName:  "Acme",
		JobRole:      "Backend Engineer",
		Result: types.AnalysisResult{
			MatchPercentage: 72,
			MissingSkills:   []string{"Docker", "Kubernetes", "Docker"},
			MatchedSkills:   []string{"Go", "SQL"},
			SkillPriority: types.SkillPriority{
				Critical: []string{"Docker"},
				Optional: []string{"Kubernetes"},
			},
		},
	}
}

func newTestRecorder(store RecordStore, now time.Time) *Recorder {
	r := NewRecorder(store)
	r.now = func() time.Time { return now }
	return r
}

func TestRecord(t *testing.T) {
	store := &fakeRecordStore{}
	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	rec, err := newTestRecorder(store, now).Record(context.Background(), testSubmission())
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if rec.ID == uuid.Nil {
		t.Error("record ID not set")
	}
	if rec.MatchScore != 72 {
		t.Errorf("MatchScore = %d, want 72", rec.MatchScore)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d records, want 1", len(store.inserted))
	}
	// The timestamp comes from the store, so the creation response matches
	// what later listing and export reads return.
	if !rec.CreatedAt.Equal(store.insertedAt) {
		t.Errorf("CreatedAt = %v, want the store's %v", rec.CreatedAt, store.insertedAt)
	}
	if string(rec.Recommendations) != "[]" {
		t.Errorf("empty recommendations stored as %q, want []", rec.Recommendations)
	}

	// Missing skills are deduplicated before counter updates.
	if got := len(rec.MissingSkills); got != 2 {
		t.Errorf("missing skills after dedupe = %d, want 2", got)
	}
	if len(store.skillCounters) != 2 {
		t.Errorf("skill counter upserts = %d, want 2", len(store.skillCounters))
	}
	if store.skillCounters[0] != (counterCall{"Docker", "CSE"}) {
		t.Errorf("unexpected first skill counter call: %+v", store.skillCounters[0])
	}
	if len(store.trendCounters) != 2 {
		t.Fatalf("trend counter upserts = %d, want 2", len(store.trendCounters))
	}
	wantWeek, wantYear := isoWeek(now)
	if store.trendCounters[0].week != wantWeek || store.trendCounters[0].year != wantYear {
		t.Errorf("trend counter week/year = %d/%d, want %d/%d",
			store.trendCounters[0].week, store.trendCounters[0].year, wantWeek, wantYear)
	}
}

func TestRecord_SerializesRecommendations(t *testing.T) {
	store := &fakeRecordStore{}
	sub := testSubmission()
	sub.Result.Recommendations = []types.Recommendation{
		{Skill: "Docker", Description: "take a containers course", Priority: types.PriorityCritical},
	}

	rec, err := NewRecorder(store).Record(context.Background(), sub)
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	var recs []types.Recommendation
	if err := json.Unmarshal(rec.Recommendations, &recs); err != nil {
		t.Fatalf("stored recommendations are not JSON: %v", err)
	}
	if len(recs) != 1 || recs[0].Skill != "Docker" {
		t.Errorf("recommendations = %v", recs)
	}
}

func TestRecord_InvalidSubmission(t *testing.T) {
	store := &fakeRecordStore{}
	sub := testSubmission()
	sub.StudentName = ""

	_, err := NewRecorder(store).Record(context.Background(), sub)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(store.inserted) != 0 {
		t.Error("invalid submission must not be inserted")
	}
}

func TestRecord_InsertFailure(t *testing.T) {
	store := &fakeRecordStore{insertErr: errors.New("connection reset")}

	_, err := NewRecorder(store).Record(context.Background(), testSubmission())
	if err == nil {
		t.Fatal("expected insert error")
	}
	if len(store.skillCounters) != 0 || len(store.trendCounters) != 0 {
		t.Error("counters must not be touched when the insert fails")
	}
}

func TestRecord_CounterFailureIsBestEffort(t *testing.T) {
	store := &fakeRecordStore{skillCounterErr: errors.New("deadlock")}

	rec, err := NewRecorder(store).Record(context.Background(), testSubmission())
	if err != nil {
		t.Fatalf("Record() error = %v, counter failures must not fail the request", err)
	}
	if rec == nil {
		t.Fatal("expected record despite counter failures")
	}
	// Trend counters still run for every skill.
	if len(store.trendCounters) != 2 {
		t.Errorf("trend counter upserts = %d, want 2", len(store.trendCounters))
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want int
	}{
		{"duplicates removed", []string{"Go", "Go", "SQL"}, 2},
		{"empties removed", []string{"", "Go", ""}, 1},
		{"empty input", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dedupe(tt.in); len(got) != tt.want {
				t.Errorf("dedupe(%v) = %v, want %d entries", tt.in, got, tt.want)
			}
		})
	}
}
