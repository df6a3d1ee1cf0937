package analyzer

import (
	"regexp"
	"strings"

	"resumatch-utils/internal/nlp"
	"resumatch-utils/pkg/models"
)

// Analyzer extracts required skills from job descriptions and compares them
// against resume skills. Reference data is read-only after construction, so
// one Analyzer can serve concurrent analyses.
type Analyzer struct {
	skills   []string
	patterns []*regexp.Regexp
	catalog  map[string][]models.Certification
	phrases  nlp.PhraseExtractor
}

// New creates an Analyzer over the given vocabulary and certification catalog.
// Nil vocabulary or catalog selects the built-in reference data. The phrase
// extractor is injected and owned by the caller.
func New(vocabulary []SkillCategory, catalog map[string][]models.Certification, phrases nlp.PhraseExtractor) *Analyzer {
	if vocabulary == nil {
		vocabulary = DefaultVocabulary
	}
	if catalog == nil {
		catalog = DefaultCertifications
	}

	skills := Flatten(vocabulary)
	patterns := make([]*regexp.Regexp, len(skills))
	for i, skill := range skills {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
	}

	return &Analyzer{
		skills:   skills,
		patterns: patterns,
		catalog:  catalog,
		phrases:  phrases,
	}
}

// ExtractJobSkills returns the vocabulary skills found in a job description,
// ordered and unique. Two passes: a word-boundary match per vocabulary skill,
// then a substring check of each noun phrase between 3 and 30 characters. The
// second pass deliberately matches more loosely than the first; it never
// invents names outside the vocabulary.
func (a *Analyzer) ExtractJobSkills(jobDescription string) []string {
	description := strings.ToLower(jobDescription)

	seen := make(map[string]bool)
	found := []string{}
	add := func(skill string) {
		if !seen[skill] {
			seen[skill] = true
			found = append(found, skill)
		}
	}

	for i, skill := range a.skills {
		if a.patterns[i].MatchString(description) {
			add(skill)
		}
	}

	for _, phrase := range a.phrases.NounPhrases(description) {
		phrase = strings.TrimSpace(phrase)
		if len(phrase) < 3 || len(phrase) > 30 {
			continue
		}
		lower := strings.ToLower(phrase)
		for _, skill := range a.skills {
			if strings.Contains(lower, strings.ToLower(skill)) {
				add(skill)
			}
		}
	}

	return found
}

// MissingSkills returns every job skill absent from the resume skills,
// compared case-insensitively, preserving job skill order and casing
func (a *Analyzer) MissingSkills(resumeSkills, jobSkills []string) []string {
	have := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		have[strings.ToLower(skill)] = true
	}

	missing := []string{}
	for _, skill := range jobSkills {
		if !have[strings.ToLower(skill)] {
			missing = append(missing, skill)
		}
	}
	return missing
}

// SuggestCertifications looks each missing skill up in the certification
// catalog. Skills without a catalog entry are simply absent from the result.
func (a *Analyzer) SuggestCertifications(missingSkills []string) map[string][]models.Certification {
	suggestions := make(map[string][]models.Certification)
	for _, skill := range missingSkills {
		if certifications, ok := a.catalog[skill]; ok {
			suggestions[skill] = certifications
		}
	}
	return suggestions
}

// Analyze runs the full gap analysis: extract job skills, diff against resume
// skills, and map the gap to certification suggestions
func (a *Analyzer) Analyze(resumeSkills []string, jobDescription string) *models.AnalysisResult {
	jobSkills := a.ExtractJobSkills(jobDescription)
	missingSkills := a.MissingSkills(resumeSkills, jobSkills)

	return &models.AnalysisResult{
		JobSkills:                jobSkills,
		MissingSkills:            missingSkills,
		CertificationSuggestions: a.SuggestCertifications(missingSkills),
	}
}
