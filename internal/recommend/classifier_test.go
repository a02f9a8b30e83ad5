package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainOnCorpus(t *testing.T, docs []string, labels []string) (*classifier, *vectorizer) {
	t.Helper()
	v, vectors := fitVectorizer(docs)
	return trainClassifier(vectors, labels), v
}

func TestTrainClassifier_RequiresTwoCategories(t *testing.T) {
	clf, _ := trainOnCorpus(t,
		[]string{"golang services", "python scripts"},
		[]string{"engineering", "engineering"})

	assert.Nil(t, clf)
}

func TestClassifier_ProbabilitiesSumToOne(t *testing.T) {
	clf, v := trainOnCorpus(t,
		[]string{"golang kubernetes backend", "illustrator typography branding"},
		[]string{"engineering", "design"})
	require.NotNil(t, clf)

	probs := clf.Probabilities(v.Transform("golang backend experience"))

	var sum float64
	for _, p := range probs {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestClassifier_PrefersMatchingCategory(t *testing.T) {
	clf, v := trainOnCorpus(t,
		[]string{
			"golang kubernetes backend microservices",
			"python data pipelines airflow",
			"illustrator typography branding figma",
		},
		[]string{"engineering", "engineering", "design"})
	require.NotNil(t, clf)

	probs := clf.Probabilities(v.Transform("kubernetes microservices in golang"))

	assert.Greater(t, probs["engineering"], probs["design"])
}
