// Package recommend implements the hybrid job recommendation engine: a
// TF-IDF vector space over a static job catalog blended with a multi-class
// category classifier.
package recommend

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

// defaultCategory is assigned to catalog entries that declare none.
const defaultCategory = "general"

// ParseCatalog parses a job catalog document: either a top-level list of
// entries or an object with a "jobs" list. Entries without an id, a title or
// a description field are dropped silently; an empty description is kept as
// long as the field is present. A structurally invalid document yields an
// empty catalog.
func ParseCatalog(data []byte) []types.JobCatalogEntry {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil
	}

	var rawJobs []any
	switch doc := payload.(type) {
	case []any:
		rawJobs = doc
	case map[string]any:
		jobs, ok := doc["jobs"].([]any)
		if !ok {
			return nil
		}
		rawJobs = jobs
	default:
		return nil
	}

	var entries []types.JobCatalogEntry
	for _, raw := range rawJobs {
		fields, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		id := scalarString(fields["id"])
		title := stringField(fields, "title")
		_, hasDescription := fields["description"]
		if id == "" || title == "" || !hasDescription {
			continue
		}

		category := stringField(fields, "category")
		if category == "" {
			category = defaultCategory
		}

		entries = append(entries, types.JobCatalogEntry{
			ID:           id,
			Title:        title,
			Company:      stringField(fields, "company"),
			Location:     stringField(fields, "location"),
			Category:     category,
			Description:  stringField(fields, "description"),
			Requirements: stringSlice(fields, "requirements"),
			Skills:       stringSlice(fields, "skills"),
			Tags:         stringSlice(fields, "tags"),
		})
	}
	return entries
}

// entryDocument builds the indexable document for a catalog entry by
// concatenating its description, requirements, skills and tags.
func entryDocument(entry types.JobCatalogEntry) string {
	parts := make([]string, 0, 1+len(entry.Requirements)+len(entry.Skills)+len(entry.Tags))
	parts = append(parts, entry.Description)
	parts = append(parts, entry.Requirements...)
	parts = append(parts, entry.Skills...)
	parts = append(parts, entry.Tags...)
	return strings.Join(parts, " ")
}

// scalarString renders a JSON scalar (string or number) as its string form.
func scalarString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		if value == float64(int64(value)) {
			return fmt.Sprintf("%d", int64(value))
		}
		return fmt.Sprintf("%g", value)
	default:
		return ""
	}
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func stringSlice(fields map[string]any, key string) []string {
	raw, ok := fields[key].([]any)
	if !ok {
		return nil
	}
	var values []string
	for _, item := range raw {
		if s, ok := item.(string); ok {
			values = append(values, s)
		}
	}
	return values
}
