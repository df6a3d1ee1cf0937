package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPhrases is a deterministic PhraseExtractor double
type stubPhrases struct {
	phrases []string
}

func (s *stubPhrases) NounPhrases(string) []string {
	return s.phrases
}

func newTestAnalyzer() *Analyzer {
	return New(nil, nil, &stubPhrases{})
}

func TestExtractJobSkills(t *testing.T) {
	skills := newTestAnalyzer().ExtractJobSkills("We need an engineer skilled in AWS, Kubernetes, and Docker.")
	assert.Equal(t, []string{"AWS", "Kubernetes", "Docker"}, skills)
}

func TestExtractJobSkillsCaseInsensitive(t *testing.T) {
	skills := newTestAnalyzer().ExtractJobSkills("experience with PYTHON and docker required")
	assert.Equal(t, []string{"Python", "Docker"}, skills)
}

func TestExtractJobSkillsWordBoundaries(t *testing.T) {
	// "Java" must not fire on "JavaScript"
	skills := newTestAnalyzer().ExtractJobSkills("Deep JavaScript expertise")
	assert.Contains(t, skills, "JavaScript")
	assert.NotContains(t, skills, "Java")
}

func TestExtractJobSkillsFromNounPhrases(t *testing.T) {
	a := New(nil, nil, &stubPhrases{phrases: []string{"python tooling"}})

	skills := a.ExtractJobSkills("A data position.")
	assert.Equal(t, []string{"Python"}, skills)
}

func TestExtractJobSkillsEmptyDescription(t *testing.T) {
	skills := newTestAnalyzer().ExtractJobSkills("")
	assert.NotNil(t, skills)
	assert.Empty(t, skills)
}

func TestMissingSkills(t *testing.T) {
	a := newTestAnalyzer()

	missing := a.MissingSkills(
		[]string{"aws", "Docker", "Python"},
		[]string{"AWS", "Kubernetes", "Docker"},
	)
	assert.Equal(t, []string{"Kubernetes"}, missing)
}

func TestMissingSkillsNoneMissing(t *testing.T) {
	a := newTestAnalyzer()

	missing := a.MissingSkills([]string{"Go"}, []string{"Go"})
	assert.NotNil(t, missing)
	assert.Empty(t, missing)
}

func TestSuggestCertifications(t *testing.T) {
	suggestions := newTestAnalyzer().SuggestCertifications([]string{"Kubernetes", "Erlang"})

	require.Contains(t, suggestions, "Kubernetes")
	assert.NotContains(t, suggestions, "Erlang")

	names := []string{}
	for _, cert := range suggestions["Kubernetes"] {
		names = append(names, cert.Name)
	}
	assert.Equal(t, []string{
		"Certified Kubernetes Administrator (CKA)",
		"Certified Kubernetes Application Developer (CKAD)",
	}, names)
}

func TestAnalyze(t *testing.T) {
	result := newTestAnalyzer().Analyze(
		[]string{"AWS", "Docker", "Python"},
		"We need an engineer skilled in AWS, Kubernetes, and Docker.",
	)

	assert.Equal(t, []string{"AWS", "Kubernetes", "Docker"}, result.JobSkills)
	assert.Equal(t, []string{"Kubernetes"}, result.MissingSkills)
	require.Len(t, result.CertificationSuggestions, 1)
	assert.Contains(t, result.CertificationSuggestions, "Kubernetes")
}

func TestAnalyzeProperties(t *testing.T) {
	a := newTestAnalyzer()
	resumeSkills := []string{"Python", "git"}
	description := "Looking for Python, Git, Terraform and PostgreSQL experience."

	result := a.Analyze(resumeSkills, description)

	// Missing skills are a subset of job skills
	jobSet := make(map[string]bool)
	for _, s := range result.JobSkills {
		jobSet[s] = true
	}
	for _, s := range result.MissingSkills {
		assert.True(t, jobSet[s])
	}

	// No missing skill is held on the resume, case-insensitively
	have := make(map[string]bool)
	for _, s := range resumeSkills {
		have[strings.ToLower(s)] = true
	}
	for _, s := range result.MissingSkills {
		assert.False(t, have[strings.ToLower(s)])
	}

	// Suggestion keys all come from the missing set
	missingSet := make(map[string]bool)
	for _, s := range result.MissingSkills {
		missingSet[s] = true
	}
	for skill := range result.CertificationSuggestions {
		assert.True(t, missingSet[skill])
	}

	// Same input, same output
	assert.Equal(t, result, a.Analyze(resumeSkills, description))
}
