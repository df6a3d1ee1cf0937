package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkillsCommaSeparated(t *testing.T) {
	skills := newTestParser().ExtractSkills("Python, Go, Rust")
	assert.Equal(t, []string{"Python", "Go", "Rust"}, skills)
}

func TestExtractSkillsStructuredLayout(t *testing.T) {
	text := "Programming Languages:\n" +
		"Proficient: Python, Go\n" +
		"Intermediate: Rust\n" +
		"\n" +
		"Frameworks & Technologies:\n" +
		"Frontend: React, Vue.js\n" +
		"Backend: Django\n" +
		"\n" +
		"Areas of Expertise:\n" +
		"- Distributed systems\n" +
		"- API design"

	skills := newTestParser().ExtractSkills(text)

	assert.Equal(t, []string{
		"Python", "Go", "Rust",
		"React", "Vue.js", "Django",
		"Distributed systems", "API design",
	}, skills)
}

func TestExtractSkillsStructuredTakesPrecedence(t *testing.T) {
	// The delimiter fallback never runs when a structured block is present
	text := "Programming Languages:\nProficient: Python\n\nMisc notes • not a skill list"

	skills := newTestParser().ExtractSkills(text)
	assert.Equal(t, []string{"Python"}, skills)
}

func TestExtractSkillsDelimiterPrecedence(t *testing.T) {
	// Bullet beats comma when both are present
	skills := newTestParser().ExtractSkills("Python, Go • Rust, Scala")
	assert.Equal(t, []string{"Python, Go", "Rust, Scala"}, skills)
}

func TestExtractSkillsSingleTerm(t *testing.T) {
	skills := newTestParser().ExtractSkills("Teamwork")
	assert.Equal(t, []string{"Teamwork"}, skills)
}

func TestExtractSkillsMarkdownResidueStripped(t *testing.T) {
	skills := newTestParser().ExtractSkills("**Python**, `Go`")
	assert.Equal(t, []string{"Python", "Go"}, skills)
}

func TestExtractSkillsDeduplicates(t *testing.T) {
	skills := newTestParser().ExtractSkills("Python, Go, Python")
	assert.Equal(t, []string{"Python", "Go"}, skills)
}

func TestExtractSkillsIncludesNounPhrases(t *testing.T) {
	p := New(Config{}, &stubPhrases{phrases: []string{"cloud infrastructure"}})

	skills := p.ExtractSkills("Python")
	assert.Equal(t, []string{"cloud infrastructure", "Python"}, skills)
}

func TestExtractSkillsEmptySection(t *testing.T) {
	skills := newTestParser().ExtractSkills("")
	assert.NotNil(t, skills)
	assert.Empty(t, skills)
}
