package ingestion

import (
	"regexp"
	"strings"
)

var (
	innerSpaceRuns = regexp.MustCompile(`\s+`)
	blankLineRuns  = regexp.MustCompile(`\n\n\n+`)
)

// CleanText cleans extracted document text while preserving structure:
// line endings are normalized, trailing whitespace stripped, bullet markers
// and headings kept, and excessive blank lines collapsed. This runs before
// the resume-level normalization so that section and bullet signals survive
// for the format scorer.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = blankLineRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")

	// Keep bullet markers with their indentation.
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") {
		indent := len(line) - len(trimmed)
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	// Regular lines: collapse inner space runs, preserve leading indentation.
	leadingSpace := len(line) - len(trimmed)
	content := innerSpaceRuns.ReplaceAllString(strings.TrimSpace(line), " ")
	if leadingSpace > 0 {
		return strings.Repeat(" ", leadingSpace) + content
	}
	return content
}
