package types

import "time"

// ComponentScores holds the six bounded sub-scores computed for a resume.
// Every field is a float in [0,100]; the validate tags mirror that invariant
// for records arriving from outside the scorer (exports, stored documents).
type ComponentScores struct {
	SkillMatch     float64 `json:"skill_match" validate:"gte=0,lte=100"`
	Experience     float64 `json:"experience" validate:"gte=0,lte=100"`
	Education      float64 `json:"education" validate:"gte=0,lte=100"`
	Format         float64 `json:"format" validate:"gte=0,lte=100"`
	KeywordDensity float64 `json:"keyword_density" validate:"gte=0,lte=100"`
	Timeline       float64 `json:"timeline" validate:"gte=0,lte=100"`
}

// KeywordAnalysis lists the job keywords the external analyzer found and missed.
type KeywordAnalysis struct {
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
	Density float64  `json:"density"`
}

// SectionAnalysis is the external analyzer's verdict on one resume section.
type SectionAnalysis struct {
	Name     string  `json:"name"`
	Present  bool    `json:"present"`
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// ExternalAnalysis is the qualitative analysis returned by the LLM collaborator.
// The system validates its shape at the collaborator boundary but never its
// internal correctness.
type ExternalAnalysis struct {
	ATSScore        float64           `json:"ats_score" validate:"gte=0,lte=100"`
	MatchPercentage float64           `json:"match_percentage" validate:"gte=0,lte=100"`
	KeywordAnalysis KeywordAnalysis   `json:"keyword_analysis"`
	SectionAnalysis []SectionAnalysis `json:"section_analysis"`
	Strengths       []string          `json:"strengths"`
	Weaknesses      []string          `json:"weaknesses"`
	Recommendations []string          `json:"recommendations"`
}

// ResumeAnalysis is one appended analysis record: component scores plus the
// external analysis for a resume, optionally against a job description.
type ResumeAnalysis struct {
	ID              string           `json:"id"`
	ResumeID        string           `json:"resume_id"`
	Filename        string           `json:"filename"`
	ComponentScores ComponentScores  `json:"component_scores"`
	External        ExternalAnalysis `json:"gemini_analysis"`
	CreatedAt       time.Time        `json:"created_at"`
	IsBest          bool             `json:"is_best"`
}
