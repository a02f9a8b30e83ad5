package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleParser_Sentences(t *testing.T) {
	parser := NewRuleParser()

	sentences := parser.Sentences("Bachelor of Science in CS. Worked at Acme for 5 years! Now seeking new roles")

	assert.Len(t, sentences, 3)
	assert.Equal(t, "Bachelor of Science in CS", sentences[0])
	assert.Equal(t, "Worked at Acme for 5 years", sentences[1])
	assert.Equal(t, "Now seeking new roles", sentences[2])
}

func TestRuleParser_Sentences_Newlines(t *testing.T) {
	parser := NewRuleParser()

	sentences := parser.Sentences("EXPERIENCE\nSoftware Engineer\nEDUCATION")

	assert.Equal(t, []string{"EXPERIENCE", "Software Engineer", "EDUCATION"}, sentences)
}

func TestRuleParser_Sentences_Empty(t *testing.T) {
	parser := NewRuleParser()
	assert.Empty(t, parser.Sentences(""))
	assert.Empty(t, parser.Sentences("   "))
}

func TestRuleParser_NounPhrases_MaxThreeTokens(t *testing.T) {
	parser := NewRuleParser()

	phrases := parser.NounPhrases("deep learning models")

	assert.Contains(t, phrases, "deep learning models")
	assert.Contains(t, phrases, "deep learning")
	assert.Contains(t, phrases, "learning models")
	for _, phrase := range phrases {
		assert.LessOrEqual(t, len(strings.Fields(phrase)), 3)
	}
}

func TestRuleParser_NounPhrases_BreaksAtStopWords(t *testing.T) {
	parser := NewRuleParser()

	phrases := parser.NounPhrases("python and machine learning")

	assert.Contains(t, phrases, "python")
	assert.Contains(t, phrases, "machine learning")
	assert.NotContains(t, phrases, "python and machine")
}
