package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog_TopLevelList(t *testing.T) {
	data := []byte(`[
		{"id": "j1", "title": "Backend Engineer", "description": "Go services"},
		{"id": "j2", "title": "Data Analyst", "description": "SQL dashboards", "category": "analytics"}
	]`)

	entries := ParseCatalog(data)

	require.Len(t, entries, 2)
	assert.Equal(t, "j1", entries[0].ID)
	assert.Equal(t, "general", entries[0].Category)
	assert.Equal(t, "analytics", entries[1].Category)
}

func TestParseCatalog_JobsWrapper(t *testing.T) {
	data := []byte(`{"jobs": [{"id": 7, "title": "SRE", "description": "on-call"}]}`)

	entries := ParseCatalog(data)

	require.Len(t, entries, 1)
	assert.Equal(t, "7", entries[0].ID, "numeric ids are coerced to strings")
}

func TestParseCatalog_DropsIncompleteEntries(t *testing.T) {
	data := []byte(`[
		{"id": "ok", "title": "Engineer", "description": "builds things"},
		{"id": "no-title", "description": "missing title"},
		{"title": "no-id", "description": "missing id"},
		{"id": "no-desc", "title": "missing description"},
		"not an object"
	]`)

	entries := ParseCatalog(data)

	require.Len(t, entries, 1)
	assert.Equal(t, "ok", entries[0].ID)
}

func TestParseCatalog_KeepsEmptyDescription(t *testing.T) {
	data := []byte(`[
		{"id": "blank", "title": "Engineer", "description": ""},
		{"id": "no-desc", "title": "Engineer"}
	]`)

	entries := ParseCatalog(data)

	require.Len(t, entries, 1)
	assert.Equal(t, "blank", entries[0].ID)
	assert.Empty(t, entries[0].Description)
}

func TestParseCatalog_ListFields(t *testing.T) {
	data := []byte(`[{
		"id": "j1", "title": "ML Engineer", "description": "models",
		"requirements": ["python", 42, "statistics"],
		"skills": ["pytorch"],
		"tags": []
	}]`)

	entries := ParseCatalog(data)

	require.Len(t, entries, 1)
	assert.Equal(t, []string{"python", "statistics"}, entries[0].Requirements)
	assert.Equal(t, []string{"pytorch"}, entries[0].Skills)
	assert.Empty(t, entries[0].Tags)
}

func TestParseCatalog_InvalidDocument(t *testing.T) {
	assert.Empty(t, ParseCatalog([]byte(`not json`)))
	assert.Empty(t, ParseCatalog([]byte(`"just a string"`)))
	assert.Empty(t, ParseCatalog([]byte(`{"items": []}`)), "wrapper key must be jobs")
}
