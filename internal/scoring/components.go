// Package scoring computes the bounded component scores for a resume and the
// composite ranking score that blends them with the external analysis.
package scoring

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

// canonicalSections are the section headings a well-formed resume carries.
var canonicalSections = []string{"experience", "education", "skills", "summary", "objective", "contact"}

var (
	bulletPattern     = regexp.MustCompile(`[•\-*]\s+`)
	numberedPattern   = regexp.MustCompile(`\d+\.\s+`)
	timelinePattern   = regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(\d{4}|present|current)`)
	maxTimelineRanges = 5
)

// CalculateScores computes all six component scores for a resume. Pure
// function of the text, the extracted facts and the optional job keywords;
// every returned field is in [0,100].
func CalculateScores(text string, skills []string, experienceYears float64, education []string, jobKeywords []string) types.ComponentScores {
	return types.ComponentScores{
		SkillMatch:     SkillMatchScore(skills, jobKeywords),
		Experience:     ExperienceScore(experienceYears),
		Education:      EducationScore(education),
		Format:         FormatScore(text),
		KeywordDensity: KeywordDensityScore(text, jobKeywords),
		Timeline:       TimelineScore(text),
	}
}

// SkillMatchScore scores skill coverage. Without job keywords it rewards
// breadth (5 points per skill). With keywords it scores the fraction of
// keywords covered, where a skill covers a keyword if either contains the
// other as a substring (case-insensitive).
func SkillMatchScore(skills []string, jobKeywords []string) float64 {
	if len(jobKeywords) == 0 {
		return clamp(float64(len(skills)) * 5)
	}
	if len(skills) == 0 {
		return 0
	}

	matches := 0
	for _, skill := range skills {
		skillLower := strings.ToLower(skill)
		for _, keyword := range jobKeywords {
			keywordLower := strings.ToLower(keyword)
			if strings.Contains(skillLower, keywordLower) || strings.Contains(keywordLower, skillLower) {
				matches++
				break
			}
		}
	}

	return clamp(float64(matches) / float64(len(jobKeywords)) * 100)
}

// ExperienceScore maps years of experience through a monotonic step function.
func ExperienceScore(years float64) float64 {
	switch {
	case years == 0:
		return 20
	case years < 1:
		return 40
	case years < 2:
		return 60
	case years < 5:
		return 80
	case years < 10:
		return 90
	default:
		return 100
	}
}

// EducationScore scores education entries: 30 with none, otherwise a base of
// 50 plus a bonus for the highest degree tier found and +10 for holding more
// than one entry.
func EducationScore(education []string) float64 {
	if len(education) == 0 {
		return 30
	}

	joined := strings.ToLower(strings.Join(education, " "))
	score := 50.0

	switch {
	case containsAny(joined, "phd", "doctorate", "ph.d"):
		score += 30
	case containsAny(joined, "master", "mba", "ms", "ma", "msc"):
		score += 20
	case containsAny(joined, "bachelor", "bs", "ba", "bsc"):
		score += 10
	}

	if len(education) > 1 {
		score += 10
	}

	return clamp(score)
}

// FormatScore scores document structure: presence of canonical section
// headings, a sane word count and bullet or numbered list formatting.
func FormatScore(text string) float64 {
	score := 50.0
	textLower := strings.ToLower(text)

	found := 0
	for _, section := range canonicalSections {
		if strings.Contains(textLower, section) {
			found++
		}
	}
	score += float64(found) / float64(len(canonicalSections)) * 30

	wordCount := len(strings.Fields(text))
	switch {
	case wordCount >= 200 && wordCount <= 2000:
		score += 10
	case wordCount < 200:
		score -= 20
	default:
		score -= 10
	}

	if bulletPattern.MatchString(text) || numberedPattern.MatchString(text) {
		score += 10
	}

	return clamp(score)
}

// KeywordDensityScore maps the raw keyword occurrence density through scoring
// bands centred on the 1-3% optimum. Occurrences are raw substring counts
// over the full text, not tokenized matches; a keyword appearing inside a
// longer word inflates the count. Kept for compatibility with stored scores.
func KeywordDensityScore(text string, jobKeywords []string) float64 {
	if len(jobKeywords) == 0 {
		return 50
	}

	wordCount := len(strings.Fields(text))
	if wordCount == 0 {
		return 0
	}

	textLower := strings.ToLower(text)
	occurrences := 0
	for _, keyword := range jobKeywords {
		occurrences += strings.Count(textLower, strings.ToLower(keyword))
	}

	density := float64(occurrences) / float64(wordCount) * 100

	switch {
	case density >= 1 && density <= 3:
		return 100
	case (density >= 0.5 && density < 1) || (density > 3 && density <= 5):
		return 80
	case (density >= 0.1 && density < 0.5) || (density > 5 && density <= 7):
		return 60
	default:
		return 40
	}
}

// TimelineScore scores work-history chronology: 30 when no date ranges
// appear, otherwise a base of 50 plus up to 50 proportional to the fraction
// of valid ranges among the first five. A range is valid when its start year
// does not exceed its end year, or its end is "present"/"current".
func TimelineScore(text string) float64 {
	ranges := timelinePattern.FindAllStringSubmatch(text, -1)
	if len(ranges) == 0 {
		return 30
	}

	considered := len(ranges)
	if considered > maxTimelineRanges {
		considered = maxTimelineRanges
	}

	valid := 0
	for _, match := range ranges[:considered] {
		end := strings.ToLower(match[2])
		if end == "present" || end == "current" {
			valid++
			continue
		}
		startYear, err1 := strconv.Atoi(match[1])
		endYear, err2 := strconv.Atoi(match[2])
		if err1 == nil && err2 == nil && startYear <= endYear {
			valid++
		}
	}

	score := 50.0
	if valid > 0 {
		score += float64(valid) / float64(considered) * 50
	}
	return clamp(score)
}

// clamp bounds a score to [0,100]. The banding above never produces values
// outside the range on its own; the clamp is a final defensive bound.
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
