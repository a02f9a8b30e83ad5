package llm

// analysisSchema is the JSON Schema an analysis response must satisfy before
// it is accepted. Only the two scores are required; the qualitative fields
// are validated for shape when present.
const analysisSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["ats_score", "match_percentage"],
	"properties": {
		"ats_score": {"type": "number", "minimum": 0, "maximum": 100},
		"match_percentage": {"type": "number", "minimum": 0, "maximum": 100},
		"keyword_analysis": {
			"type": "object",
			"properties": {
				"found": {"type": "array", "items": {"type": "string"}},
				"missing": {"type": "array", "items": {"type": "string"}},
				"density": {"type": "number"}
			}
		},
		"section_analysis": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"name": {"type": "string"},
					"present": {"type": "boolean"},
					"score": {"type": "number"},
					"feedback": {"type": "string"}
				}
			}
		},
		"strengths": {"type": "array", "items": {"type": "string"}},
		"weaknesses": {"type": "array", "items": {"type": "string"}},
		"recommendations": {"type": "array", "items": {"type": "string"}}
	}
}`
