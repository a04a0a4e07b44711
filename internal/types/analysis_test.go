package types

import "testing"

func TestParsePriorityTier(t *testing.T) {
	tests := []struct {
		in   string
		want PriorityTier
	}{
		{"critical", PriorityCritical},
		{"Critical", PriorityCritical},
		{"  IMPORTANT ", PriorityImportant},
		{"optional", PriorityOptional},
		{"nice-to-have", PriorityOptional},
		{"", PriorityOptional},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParsePriorityTier(tt.in); got != tt.want {
				t.Errorf("ParsePriorityTier(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAnalysisResult_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"negative clamped to 0", -5, 0},
		{"over 100 clamped", 130, 100},
		{"in range unchanged", 72, 72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := AnalysisResult{MatchPercentage: tt.in}
			r.Normalize()
			if r.MatchPercentage != tt.want {
				t.Errorf("MatchPercentage = %d, want %d", r.MatchPercentage, tt.want)
			}
		})
	}
}

func TestAnalysisResult_NormalizeFoldsPriorities(t *testing.T) {
	r := AnalysisResult{
		MatchPercentage: 50,
		Recommendations: []Recommendation{
			{Skill: "Docker", Priority: "CRITICAL"},
			{Skill: "Git", Priority: "somewhat useful"},
		},
	}
	r.Normalize()

	if r.Recommendations[0].Priority != PriorityCritical {
		t.Errorf("priority = %q, want critical", r.Recommendations[0].Priority)
	}
	if r.Recommendations[1].Priority != PriorityOptional {
		t.Errorf("unknown tag should default to optional, got %q", r.Recommendations[1].Priority)
	}
}

func TestSubmission_Validate(t *testing.T) {
	valid := Submission{StudentName: "Asha Patel", JobRole: "Backend Engineer"}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid submission rejected: %v", err)
	}

	missingName := Submission{JobRole: "Backend Engineer"}
	if err := missingName.Validate(); err == nil {
		t.Error("submission without student name must be rejected")
	}

	missingRole := Submission{StudentName: "Asha Patel"}
	if err := missingRole.Validate(); err == nil {
		t.Error("submission without job role must be rejected")
	}
}

func TestAnalyzeRequest_Validate(t *testing.T) {
	valid := AnalyzeRequest{
		StudentName: "Asha Patel",
		JobRole:     "Backend Engineer",
		ResumeText:  "Go, SQL",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	badURL := valid
	badURL.JobDescriptionURL = "not a url"
	if err := badURL.Validate(); err == nil {
		t.Error("malformed job_description_url must be rejected")
	}

	noResume := valid
	noResume.ResumeText = ""
	if err := noResume.Validate(); err == nil {
		t.Error("request without resume text must be rejected")
	}
}
