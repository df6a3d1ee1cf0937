package nlp

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// PhraseExtractor identifies contiguous noun-phrase spans in text. Implementations
// must be deterministic: the same input always yields the same phrases in the
// same order. Instances are owned by whoever constructs them and injected into
// the parser and analyzer, so tests can substitute a double.
type PhraseExtractor interface {
	NounPhrases(text string) []string
}

// ProseExtractor is the default PhraseExtractor backed by the prose POS tagger.
// It groups maximal runs of adjective/noun tokens into phrases, dropping runs
// that contain no noun.
type ProseExtractor struct{}

// NewProseExtractor creates a new ProseExtractor
func NewProseExtractor() *ProseExtractor {
	return &ProseExtractor{}
}

// NounPhrases returns the noun phrases found in text, in document order.
// Tokenization or tagging failures degrade to no phrases, never an error.
func (e *ProseExtractor) NounPhrases(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return nil
	}

	var phrases []string
	var run []prose.Token

	flush := func() {
		if len(run) == 0 {
			return
		}
		// Trim trailing adjectives so the phrase ends on a noun
		end := len(run)
		for end > 0 && !isNounTag(run[end-1].Tag) {
			end--
		}
		if end > 0 {
			words := make([]string, 0, end)
			for _, tok := range run[:end] {
				words = append(words, tok.Text)
			}
			phrases = append(phrases, strings.Join(words, " "))
		}
		run = nil
	}

	for _, tok := range doc.Tokens() {
		if isNounTag(tok.Tag) || isAdjectiveTag(tok.Tag) {
			run = append(run, tok)
			continue
		}
		flush()
	}
	flush()

	return phrases
}

// isNounTag reports whether a Penn Treebank tag marks a noun
func isNounTag(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}

// isAdjectiveTag reports whether a Penn Treebank tag marks an adjective
func isAdjectiveTag(tag string) bool {
	return strings.HasPrefix(tag, "JJ")
}
