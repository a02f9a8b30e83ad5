package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	data []byte
	err  error
}

func (s *staticSource) Fetch(context.Context) ([]byte, error) {
	return s.data, s.err
}

const testCatalog = `[
	{"id": "be", "title": "Backend Engineer", "category": "engineering",
	 "description": "golang kubernetes microservices grpc",
	 "skills": ["golang", "kubernetes"]},
	{"id": "fe", "title": "Frontend Engineer", "category": "engineering",
	 "description": "react typescript css accessibility",
	 "skills": ["react", "typescript"]},
	{"id": "ds", "title": "Graphic Designer", "category": "design",
	 "description": "illustrator typography branding layouts",
	 "skills": ["illustrator", "figma"]}
]`

func builtEngine(t *testing.T, catalog string) *Engine {
	t.Helper()
	engine := NewEngine(&staticSource{data: []byte(catalog)}, nil)
	engine.Refresh(context.Background())
	require.True(t, engine.Built())
	return engine
}

func TestEngine_UnbuiltRecommendsNothing(t *testing.T) {
	engine := NewEngine(&staticSource{err: errors.New("unavailable")}, nil)

	engine.Refresh(context.Background())

	assert.False(t, engine.Built())
	assert.Nil(t, engine.Recommend("golang developer", 5))
	assert.Nil(t, engine.Jobs())
}

func TestEngine_InvalidCatalogStaysUnbuilt(t *testing.T) {
	engine := NewEngine(&staticSource{data: []byte(`{"items": []}`)}, nil)

	engine.Refresh(context.Background())

	assert.False(t, engine.Built())
}

func TestEngine_BlankTextRecommendsNothing(t *testing.T) {
	engine := builtEngine(t, testCatalog)

	assert.Nil(t, engine.Recommend("", 5))
	assert.Nil(t, engine.Recommend("   \n\t", 5))
}

func TestEngine_RanksSimilarJobFirst(t *testing.T) {
	engine := builtEngine(t, testCatalog)

	recs := engine.Recommend("Senior golang engineer, kubernetes and grpc microservices", 3)

	require.Len(t, recs, 3)
	assert.Equal(t, "be", recs[0].ID)
	assert.Greater(t, recs[0].SimilarityScore, recs[2].SimilarityScore)
	assert.Greater(t, recs[0].FinalScore, recs[1].FinalScore)
}

func TestEngine_TopNBoundedByCatalog(t *testing.T) {
	engine := builtEngine(t, testCatalog)

	assert.Len(t, engine.Recommend("golang", 50), 3)
	assert.Len(t, engine.Recommend("golang", 1), 1)
}

func TestEngine_DefaultTopN(t *testing.T) {
	engine := builtEngine(t, testCatalog)

	// topN <= 0 falls back to the default of 5, bounded by catalog size.
	assert.Len(t, engine.Recommend("golang", 0), 3)
}

func TestEngine_SingleCategoryCatalogSkipsClassifier(t *testing.T) {
	catalog := `[
		{"id": "a", "title": "A", "category": "engineering", "description": "golang services"},
		{"id": "b", "title": "B", "category": "engineering", "description": "python scripts"}
	]`
	engine := builtEngine(t, catalog)

	recs := engine.Recommend("golang services", 2)

	require.Len(t, recs, 2)
	for _, rec := range recs {
		assert.Zero(t, rec.ProbabilityScore)
	}
	// With probability zeroed the blend is similarity alone.
	assert.InDelta(t, similarityWeight*recs[0].SimilarityScore, recs[0].FinalScore, 1e-3)
}

func TestEngine_FailedRefreshClearsModel(t *testing.T) {
	source := &staticSource{data: []byte(testCatalog)}
	engine := NewEngine(source, nil)
	engine.Refresh(context.Background())
	require.True(t, engine.Built())

	source.data = nil
	source.err = errors.New("catalog gone")
	engine.Refresh(context.Background())

	assert.False(t, engine.Built())
	assert.Nil(t, engine.Jobs())
	assert.Empty(t, engine.Recommend("golang developer", 5))
}

func TestEngine_UnparseableRefreshClearsModel(t *testing.T) {
	source := &staticSource{data: []byte(testCatalog)}
	engine := NewEngine(source, nil)
	engine.Refresh(context.Background())
	require.True(t, engine.Built())

	source.data = []byte(`{not valid json`)
	engine.Refresh(context.Background())

	assert.False(t, engine.Built())
	assert.Empty(t, engine.Recommend("golang developer", 5))
}

func TestEngine_TieBreaksPreserveCatalogOrder(t *testing.T) {
	catalog := `[
		{"id": "first", "title": "A", "category": "x", "description": "alpha beta"},
		{"id": "second", "title": "B", "category": "x", "description": "alpha beta"}
	]`
	engine := builtEngine(t, catalog)

	recs := engine.Recommend("alpha beta", 2)

	require.Len(t, recs, 2)
	assert.Equal(t, "first", recs[0].ID)
	assert.Equal(t, recs[0].FinalScore, recs[1].FinalScore)
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := FileSource{Path: "/nonexistent/catalog.json"}.Fetch(context.Background())

	assert.Error(t, err)
}
