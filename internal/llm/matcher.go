package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/skillgap-analyzer/internal/schemas"
	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// Input size caps keep prompts inside model context limits.
const (
	maxResumeRunes = 8000
	maxJobRunes    = 6000
)

// MatchError represents a failure of the external AI matching call. Nothing
// is persisted when the match fails; the error is surfaced to the caller.
type MatchError struct {
	Stage string // "generate", "validate" or "decode"
	Cause error
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("match analysis failed during %s: %v", e.Stage, e.Cause)
}

func (e *MatchError) Unwrap() error {
	return e.Cause
}

const matchPrompt = `You are an expert career advisor that evaluates how well a candidate's resume matches a job description.

TARGET ROLE: %s

RESUME:
%s

JOB DESCRIPTION:
%s

Analyze the resume against the job description:

1. Assign an overall match percentage from 0 to 100.
2. List the skills from the job description that the resume demonstrates (matched skills).
3. List the skills the job description asks for that the resume lacks (missing skills).
4. Partition the missing skills into priority tiers:
   - "critical" - explicitly required, mentioned in the requirements section or repeatedly
   - "important" - clearly relevant to the role but not a hard requirement
   - "optional" - nice-to-have or implied by other requirements
5. For each missing skill, write one concrete recommendation (course, project, certification)
   tagged with the same priority tier.
6. Write a brief summary (2-3 sentences) of the candidate's overall fit.

Return a JSON object with this exact structure:
{
  "matchPercentage": <number 0-100>,
  "matchedSkills": ["<skill>"],
  "missingSkills": ["<skill>"],
  "skillPriority": {
    "critical": ["<skill>"],
    "important": ["<skill>"],
    "optional": ["<skill>"]
  },
  "recommendations": [
    {"skill": "<skill>", "description": "<how to close the gap>", "priority": "<critical|important|optional>"}
  ],
  "summary": "<overall fit assessment>"
}

Base all reasoning only on the provided text. Do not invent experience not explicitly mentioned.
Return ONLY the JSON object, no markdown, no explanation.`

// AnalyzeMatch runs the resume-vs-job comparison through the AI model and
// returns the normalized structured result. The call is context-bound and
// not retried; a failed analysis is reported, never stored.
func AnalyzeMatch(ctx context.Context, client Client, resume, jobDescription, jobRole string) (*types.AnalysisResult, error) {
	prompt := fmt.Sprintf(matchPrompt,
		jobRole,
		truncateRunes(resume, maxResumeRunes),
		truncateRunes(jobDescription, maxJobRunes),
	)

	raw, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, &MatchError{Stage: "generate", Cause: err}
	}

	if err := schemas.ValidateAnalysisResult(raw); err != nil {
		return nil, &MatchError{Stage: "validate", Cause: err}
	}

	var result types.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, &MatchError{Stage: "decode", Cause: err}
	}

	result.Normalize()
	return &result, nil
}

// truncateRunes caps s at n runes without splitting a multi-byte character.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
