package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillMatchScore_NoKeywordsRewardsBreadth(t *testing.T) {
	assert.Equal(t, 0.0, SkillMatchScore(nil, nil))
	assert.Equal(t, 15.0, SkillMatchScore([]string{"Go", "Python", "SQL"}, nil))
	// 25 skills would exceed the cap.
	many := make([]string, 25)
	for i := range many {
		many[i] = "Skill"
	}
	assert.Equal(t, 100.0, SkillMatchScore(many, nil))
}

func TestSkillMatchScore_WithKeywords(t *testing.T) {
	skills := []string{"Python", "Machine Learning"}
	keywords := []string{"python", "docker", "machine learning frameworks", "sql"}

	// Python covers "python"; Machine Learning is a substring of the third
	// keyword. 2 of 4 keywords covered.
	assert.Equal(t, 50.0, SkillMatchScore(skills, keywords))
}

func TestSkillMatchScore_NoSkillsWithKeywords(t *testing.T) {
	assert.Equal(t, 0.0, SkillMatchScore(nil, []string{"python"}))
}

func TestExperienceScore_Boundaries(t *testing.T) {
	assert.Equal(t, 20.0, ExperienceScore(0))
	assert.Equal(t, 40.0, ExperienceScore(0.9))
	assert.Equal(t, 60.0, ExperienceScore(1.9))
	assert.Equal(t, 80.0, ExperienceScore(4.9))
	assert.Equal(t, 90.0, ExperienceScore(9.9))
	assert.Equal(t, 100.0, ExperienceScore(10))
}

func TestExperienceScore_MonotonicNonDecreasing(t *testing.T) {
	previous := 0.0
	for years := 0.0; years <= 15; years += 0.1 {
		score := ExperienceScore(years)
		assert.GreaterOrEqual(t, score, previous, "score decreased at %.1f years", years)
		previous = score
	}
}

func TestEducationScore_Empty(t *testing.T) {
	assert.Equal(t, 30.0, EducationScore(nil))
}

func TestEducationScore_DoctorateTier(t *testing.T) {
	assert.Equal(t, 80.0, EducationScore([]string{"PhD in Physics"}))
}

func TestEducationScore_HighestTierOnlyPlusMultiEntryBonus(t *testing.T) {
	// Master tier (+20) wins over bachelor; two entries add +10.
	assert.Equal(t, 80.0, EducationScore([]string{"Bachelor of Science", "Master of Arts"}))
}

func TestEducationScore_BachelorTier(t *testing.T) {
	assert.Equal(t, 60.0, EducationScore([]string{"Bachelor of Engineering"}))
}

func TestFormatScore_WellStructuredResume(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Summary Experience Education Skills Contact Objective\n")
	for i := 0; i < 250; i++ {
		sb.WriteString("word ")
	}
	sb.WriteString("\n- led team\n- shipped product\n")

	// Base 50 + all 6 sections (30) + good length (10) + bullets (10) = 100.
	assert.Equal(t, 100.0, FormatScore(sb.String()))
}

func TestFormatScore_ShortUnstructuredText(t *testing.T) {
	// Base 50, no sections, < 200 words (-20), no bullets.
	assert.Equal(t, 30.0, FormatScore("just a few plain words"))
}

func TestKeywordDensityScore_NeutralWithoutKeywords(t *testing.T) {
	assert.Equal(t, 50.0, KeywordDensityScore("any text at all", nil))
}

func TestKeywordDensityScore_OptimalBand(t *testing.T) {
	// 2 occurrences in 100 words: density 2% -> optimal.
	text := "go go " + strings.Repeat("filler ", 98)
	assert.Equal(t, 100.0, KeywordDensityScore(text, []string{"go"}))
}

func TestKeywordDensityScore_SubstringCountsInflate(t *testing.T) {
	// "go" occurs inside "good" twice plus once standalone: 3 occurrences in
	// 100 words -> still the optimal band. Raw substring counting is the
	// documented behavior.
	text := "go good good " + strings.Repeat("filler ", 97)
	assert.Equal(t, 100.0, KeywordDensityScore(text, []string{"go"}))
}

func TestKeywordDensityScore_OutOfBand(t *testing.T) {
	// 0 occurrences -> density 0 -> lowest band.
	text := strings.Repeat("filler ", 100)
	assert.Equal(t, 40.0, KeywordDensityScore(text, []string{"kubernetes"}))
}

func TestKeywordDensityScore_EmptyText(t *testing.T) {
	assert.Equal(t, 0.0, KeywordDensityScore("", []string{"go"}))
}

func TestTimelineScore_NoRanges(t *testing.T) {
	assert.Equal(t, 30.0, TimelineScore("no dates here"))
}

func TestTimelineScore_AllValidRanges(t *testing.T) {
	assert.Equal(t, 100.0, TimelineScore("2015 - 2018 then 2018 - present"))
}

func TestTimelineScore_MixedValidity(t *testing.T) {
	// One valid, one inverted: 50 + 1/2 * 50 = 75.
	assert.Equal(t, 75.0, TimelineScore("2015 - 2018 then 2019 - 2016"))
}

func TestTimelineScore_OnlyFirstFiveRangesConsidered(t *testing.T) {
	text := "2001 - 2002 2003 - 2004 2005 - 2006 2007 - 2008 2009 - 2010 2020 - 1999"
	// The invalid sixth range is past the considered window.
	assert.Equal(t, 100.0, TimelineScore(text))
}

func TestCalculateScores_AllFieldsBounded(t *testing.T) {
	texts := []string{
		"",
		"short",
		"Experienced engineer, 12 years. PhD. 2010 - present. Skills: everything.",
		strings.Repeat("word ", 3000),
	}
	for _, text := range texts {
		scores := CalculateScores(text, []string{"Go"}, 3, []string{"BSc"}, []string{"go"})
		for name, value := range map[string]float64{
			"skill_match":     scores.SkillMatch,
			"experience":      scores.Experience,
			"education":       scores.Education,
			"format":          scores.Format,
			"keyword_density": scores.KeywordDensity,
			"timeline":        scores.Timeline,
		} {
			assert.GreaterOrEqual(t, value, 0.0, "%s below range", name)
			assert.LessOrEqual(t, value, 100.0, "%s above range", name)
		}
	}
}

func TestClamp_NeverTriggeredByBandedScores(t *testing.T) {
	// The banding logic is self-consistent: intended inputs produce scores
	// already inside [0,100], so clamping must be a no-op.
	assert.Equal(t, EducationScore([]string{"PhD", "MSc", "BSc"}), 90.0)
	assert.Equal(t, TimelineScore(strings.Repeat("2010 - 2012 ", 10)), 100.0)
	assert.Equal(t, SkillMatchScore(make([]string, 20), nil), 100.0)
}
