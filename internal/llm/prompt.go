package llm

import (
	"fmt"
	"strings"
)

// buildAnalysisPrompt renders the resume analysis prompt. The job description
// section is included only when one was supplied; without it the model is
// asked for a general ATS assessment.
func buildAnalysisPrompt(resumeText, jobDescription string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert ATS (Applicant Tracking System) and resume reviewer.\n")
	sb.WriteString("Analyze the resume below and respond with a single JSON object, no prose, with these fields:\n")
	sb.WriteString(`  ats_score: number 0-100, how well the resume would pass automated screening
  match_percentage: number 0-100, fit against the job description (general fit if none given)
  keyword_analysis: {"found": [...], "missing": [...], "density": number}
  section_analysis: [{"name": ..., "present": bool, "score": number, "feedback": ...}]
  strengths: array of strings
  weaknesses: array of strings
  recommendations: array of strings
`)

	if strings.TrimSpace(jobDescription) != "" {
		fmt.Fprintf(&sb, "\nJob description:\n%s\n", jobDescription)
	}

	fmt.Fprintf(&sb, "\nResume:\n%s\n", resumeText)
	return sb.String()
}
