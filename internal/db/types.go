package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// User represents a stored user account
type User struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool       `json:"password_set" db:"password_set"`
	Role         string     `json:"role"`
	Department   string     `json:"department,omitempty"`
	AcademicYear string     `json:"academic_year,omitempty"`
	Institution  string     `json:"institution,omitempty"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// SkillGapRecord is one immutable analysis submission. Records are
// append-only: inserted once and never updated or deleted.
type SkillGapRecord struct {
	ID              uuid.UUID           `json:"id"`
	UserID          *uuid.UUID          `json:"user_id,omitempty"` // nil for anonymous submissions
	StudentName     string              `json:"student_name"`
	Department      string              `json:"department"`
	AcademicYear    string              `json:"academic_year"`
	JobRole         string              `json:"job_role"`
	CompanyName     string              `json:"company_name"`
	MatchScore      int                 `json:"match_score"`
	MissingSkills   StringArray         `json:"missing_skills"`
	MatchedSkills   StringArray         `json:"matched_skills"`
	SkillPriority   types.SkillPriority `json:"skill_priority"`
	Recommendations json.RawMessage     `json:"recommendations"` // stored JSONB, passed through verbatim
	CreatedAt       time.Time           `json:"created_at"`
}

// SkillCounter tracks how often a skill has been missing per department.
type SkillCounter struct {
	Skill      string    `json:"skill"`
	Department string    `json:"department"`
	Count      int       `json:"count"`
	LastSeen   time.Time `json:"last_seen"`
}

// TrendCounter tallies per-skill occurrences for one ISO week.
type TrendCounter struct {
	Skill string `json:"skill"`
	Week  int    `json:"week"`
	Year  int    `json:"year"`
	Count int    `json:"count"`
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}
