package schemas

// analysisResultSchema constrains the JSON the AI model returns for one
// resume-vs-job comparison before it is decoded and persisted.
const analysisResultSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["matchPercentage", "matchedSkills", "missingSkills", "skillPriority"],
  "properties": {
    "matchPercentage": {"type": "number"},
    "matchedSkills": {"type": "array", "items": {"type": "string"}},
    "missingSkills": {"type": "array", "items": {"type": "string"}},
    "skillPriority": {
      "type": "object",
      "properties": {
        "critical": {"type": "array", "items": {"type": "string"}},
        "important": {"type": "array", "items": {"type": "string"}},
        "optional": {"type": "array", "items": {"type": "string"}}
      }
    },
    "recommendations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["skill", "description"],
        "properties": {
          "skill": {"type": "string"},
          "description": {"type": "string"},
          "priority": {"type": "string"}
        }
      }
    },
    "summary": {"type": "string"}
  }
}`

// ValidateAnalysisResult validates raw AI output against the analysis result schema.
func ValidateAnalysisResult(jsonContent string) error {
	return ValidateJSONString(analysisResultSchema, jsonContent)
}
