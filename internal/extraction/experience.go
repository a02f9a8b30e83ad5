package extraction

import (
	"math"
	"regexp"
	"strconv"
)

var (
	yearPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)`),
		regexp.MustCompile(`(?i)(\d+)\+?\s*(?:y\.?o\.?e\.?)`),
	}
	monthPattern     = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:months?|mos?)`)
	dateRangePattern = regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(\d{4}|present|current)`)
)

// Experience extracts total years of experience from resume text. Explicit
// "N years" mentions keep the maximum N found; "N months" mentions are summed
// and converted to years. When neither appears, the count of YYYY-YYYY date
// ranges estimates 2.5 years per range. Unparseable numeric tokens are
// skipped, never surfaced as errors. Result is rounded to one decimal.
func (e *Extractor) Experience(text string) float64 {
	var years, months int

	for _, pattern := range yearPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			if n, err := strconv.Atoi(match[1]); err == nil && n > years {
				years = n
			}
		}
	}

	for _, match := range monthPattern.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(match[1]); err == nil {
			months += n
		}
	}

	total := float64(years) + float64(months)/12

	// No explicit duration anywhere: estimate from work-history date ranges.
	// Rough approximation, kept for compatibility with stored records.
	if total == 0 {
		ranges := dateRangePattern.FindAllStringSubmatch(text, -1)
		total = float64(len(ranges)) * 2.5
	}

	return math.Round(total*10) / 10
}
