package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAnalysisResult_Valid(t *testing.T) {
	content := `{
		"matchPercentage": 72,
		"matchedSkills": ["Go"],
		"missingSkills": ["Docker"],
		"skillPriority": {"critical": ["Docker"], "important": [], "optional": []},
		"recommendations": [{"skill": "Docker", "description": "Take a course", "priority": "critical"}],
		"summary": "Good fit overall."
	}`
	assert.NoError(t, ValidateAnalysisResult(content))
}

func TestValidateAnalysisResult_MinimalValid(t *testing.T) {
	// Only the required fields.
	content := `{
		"matchPercentage": 0,
		"matchedSkills": [],
		"missingSkills": [],
		"skillPriority": {}
	}`
	assert.NoError(t, ValidateAnalysisResult(content))
}

func TestValidateAnalysisResult_MissingRequiredField(t *testing.T) {
	content := `{"matchedSkills": [], "missingSkills": [], "skillPriority": {}}`

	err := ValidateAnalysisResult(content)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "matchPercentage")
}

func TestValidateAnalysisResult_WrongType(t *testing.T) {
	content := `{
		"matchPercentage": "seventy",
		"matchedSkills": [],
		"missingSkills": [],
		"skillPriority": {}
	}`

	err := ValidateAnalysisResult(content)
	require.Error(t, err)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestValidateAnalysisResult_RecommendationMissingDescription(t *testing.T) {
	content := `{
		"matchPercentage": 50,
		"matchedSkills": [],
		"missingSkills": [],
		"skillPriority": {},
		"recommendations": [{"skill": "Docker"}]
	}`

	err := ValidateAnalysisResult(content)
	require.Error(t, err)
}

func TestValidateJSONString_InvalidDocument(t *testing.T) {
	err := ValidateJSONString(`{"type": "object"}`, "not json at all")
	require.Error(t, err)

	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}
