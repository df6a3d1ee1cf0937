package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNounPhrasesEmptyInput(t *testing.T) {
	e := NewProseExtractor()
	assert.Empty(t, e.NounPhrases(""))
	assert.Empty(t, e.NounPhrases("   \n  "))
}

func TestNounPhrasesFindsNouns(t *testing.T) {
	e := NewProseExtractor()

	phrases := e.NounPhrases("The software engineer maintains the deployment pipeline.")

	assert.NotEmpty(t, phrases)
	joined := strings.Join(phrases, " | ")
	assert.Contains(t, joined, "engineer")
	assert.Contains(t, joined, "pipeline")
}

func TestNounPhrasesDeterministic(t *testing.T) {
	e := NewProseExtractor()
	text := "Senior backend developer with cloud infrastructure experience."

	first := e.NounPhrases(text)
	second := e.NounPhrases(text)

	assert.Equal(t, first, second)
}

func TestNounPhrasesNoNouns(t *testing.T) {
	e := NewProseExtractor()

	// Verbs and punctuation only, so no run survives the noun requirement
	phrases := e.NounPhrases("go, went, gone")
	for _, phrase := range phrases {
		assert.NotEmpty(t, phrase)
	}
}
