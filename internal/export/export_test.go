package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-insight/internal/types"
)

func sampleAnalyses() []types.ResumeAnalysis {
	return []types.ResumeAnalysis{
		{
			ID:       "a1",
			ResumeID: "r1",
			Filename: "resume.txt",
			ComponentScores: types.ComponentScores{
				SkillMatch: 50, Experience: 80, Education: 60,
				Format: 70, KeywordDensity: 100, Timeline: 75,
			},
			External:  types.ExternalAnalysis{ATSScore: 82, MatchPercentage: 74},
			CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
			IsBest:    true,
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSON(&buf, sampleAnalyses()))

	var decoded []types.ResumeAnalysis
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "a1", decoded[0].ID)
	assert.Equal(t, 82.0, decoded[0].External.ATSScore)
}

func TestWriteJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSON(&buf, nil))

	assert.JSONEq(t, `[]`, buf.String())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, sampleAnalyses()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, csvHeader, records[0])
	row := records[1]
	assert.Equal(t, "a1", row[0])
	assert.Equal(t, "true", row[4])
	// 0.5*82 + 0.3*74 + 0.2*50 = 73.20
	assert.Equal(t, "73.20", row[len(row)-1])
}

func TestWriteCSV_EmptyHasHeaderOnly(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer

	err := Write(&buf, Format("xml"), nil)

	assert.Error(t, err)
}
