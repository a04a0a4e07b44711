package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PriorityTier classifies how urgently a missing skill should be addressed.
type PriorityTier string

// Priority tiers for missing skills and recommendations.
const (
	PriorityCritical  PriorityTier = "critical"
	PriorityImportant PriorityTier = "important"
	PriorityOptional  PriorityTier = "optional"
)

// ParsePriorityTier maps a free-text priority tag onto the closed tier set.
// Unrecognized or empty tags default to PriorityOptional.
func ParsePriorityTier(s string) PriorityTier {
	switch PriorityTier(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityCritical:
		return PriorityCritical
	case PriorityImportant:
		return PriorityImportant
	default:
		return PriorityOptional
	}
}

// SkillPriority partitions the missing skill set into priority tiers.
type SkillPriority struct {
	Critical  []string `json:"critical"`
	Important []string `json:"important"`
	Optional  []string `json:"optional"`
}

// Recommendation is one free-text improvement suggestion tagged with a priority.
type Recommendation struct {
	Skill       string       `json:"skill"`
	Description string       `json:"description"`
	Priority    PriorityTier `json:"priority"`
}

// AnalysisResult is the structured output of the AI resume-vs-job comparison.
type AnalysisResult struct {
	MatchPercentage int              `json:"matchPercentage"`
	MissingSkills   []string         `json:"missingSkills"`
	MatchedSkills   []string         `json:"matchedSkills"`
	SkillPriority   SkillPriority    `json:"skillPriority"`
	Recommendations []Recommendation `json:"recommendations"`
	Summary         string           `json:"summary,omitempty"`
}

// Normalize clamps the match percentage to [0,100] and folds priority and
// recommendation tags onto the closed tier set.
func (r *AnalysisResult) Normalize() {
	if r.MatchPercentage < 0 {
		r.MatchPercentage = 0
	}
	if r.MatchPercentage > 100 {
		r.MatchPercentage = 100
	}
	for i := range r.Recommendations {
		r.Recommendations[i].Priority = ParsePriorityTier(string(r.Recommendations[i].Priority))
	}
}

// AnalyzeRequest is the payload for a resume-vs-job analysis. Exactly one of
// JobDescription or JobDescriptionURL must be provided.
type AnalyzeRequest struct {
	StudentName       string `json:"student_name" validate:"required,min=1"`
	Department        string `json:"department,omitempty"`
	AcademicYear      string `json:"academic_year,omitempty"`
	CompanyName       string `json:"company_name,omitempty"`
	JobRole           string `json:"job_role" validate:"required,min=1"`
	ResumeText        string `json:"resume_text" validate:"required,min=1"`
	JobDescription    string `json:"job_description,omitempty"`
	JobDescriptionURL string `json:"job_description_url,omitempty" validate:"omitempty,url"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Submission carries one completed analysis plus submitter metadata into the
// ingestion recorder.
type Submission struct {
	UserID       *uuid.UUID     `json:"user_id,omitempty"` // nil for anonymous submissions
	StudentName  string         `json:"student_name" validate:"required,min=1"`
	Department   string         `json:"department,omitempty"`
	AcademicYear string         `json:"academic_year,omitempty"`
	CompanyName  string         `json:"company_name,omitempty"`
	JobRole      string         `json:"job_role" validate:"required,min=1"`
	Result       AnalysisResult `json:"result"`
}

// Validate validates the Submission using the validator.
func (s *Submission) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
