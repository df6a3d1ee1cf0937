package parser

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

func newTestParser() *Parser {
	return New(Config{}, &stubPhrases{})
}

func TestExtractEducation(t *testing.T) {
	text := "Bachelor of Science in Computer Science\nState University\n2018-2022\nGPA: 3.8"

	entries := newTestParser().ExtractEducation(text)
	require.Len(t, entries, 1)

	entry := entries[0]
	require.NotNil(t, entry.Degree)
	assert.True(t, strings.HasPrefix(*entry.Degree, "Bachelor of Science"))
	require.NotNil(t, entry.Institution)
	assert.Contains(t, *entry.Institution, "University")
	require.NotNil(t, entry.Date)
	assert.Equal(t, "2018-2022", *entry.Date)
	require.NotNil(t, entry.GPA)
	assert.Equal(t, "3.8", *entry.GPA)
	assert.Equal(t, text, entry.FullText)
}

func TestExtractEducationMultipleEntries(t *testing.T) {
	text := "Master of Science in Data Science\nTech Institute\n2022-2024\n\nBachelor of Arts\nCity College\n2018-2022"

	entries := newTestParser().ExtractEducation(text)
	require.Len(t, entries, 2)

	require.NotNil(t, entries[0].Degree)
	assert.True(t, strings.HasPrefix(*entries[0].Degree, "Master of Science"))
	require.NotNil(t, entries[1].Degree)
	assert.True(t, strings.HasPrefix(*entries[1].Degree, "Bachelor of Arts"))
	require.NotNil(t, entries[1].Institution)
	assert.Contains(t, *entries[1].Institution, "College")
}

func TestExtractEducationNoMatches(t *testing.T) {
	entries := newTestParser().ExtractEducation("Self-taught developer")
	require.Len(t, entries, 1)

	assert.Nil(t, entries[0].Degree)
	assert.Nil(t, entries[0].Date)
	assert.Nil(t, entries[0].GPA)
}

func TestExtractEducationEmpty(t *testing.T) {
	entries := newTestParser().ExtractEducation("")
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestExtractExperience(t *testing.T) {
	text := "Acme Corp\nSenior Software Engineer\nJan 2020 - Present\n• Built distributed data pipelines\n• Led a team of five engineers"

	entries := newTestParser().ExtractExperience(text)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "Acme Corp", entry.Company)
	require.NotNil(t, entry.Title)
	assert.Equal(t, "Senior Software Engineer", *entry.Title)
	require.NotNil(t, entry.Date)
	assert.Equal(t, "Jan 2020 - Present", *entry.Date)
	assert.Equal(t, []string{
		"• Built distributed data pipelines",
		"• Led a team of five engineers",
	}, entry.BulletPoints)
}

func TestExtractExperienceCompanyIsFirstLine(t *testing.T) {
	// The first line is taken as the company even when it is a title
	text := "Senior Software Engineer\nAcme Corp\n2019-2021"

	entries := newTestParser().ExtractExperience(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "Senior Software Engineer", entries[0].Company)
}

func TestExtractExperienceBulletRegrouping(t *testing.T) {
	// No blank lines; a non-bullet line after a bullet run starts a new entry
	text := "Acme Corp\n• Shipped the billing service\nGlobex Inc\n• Maintained the data warehouse"

	entries := newTestParser().ExtractExperience(text)
	require.Len(t, entries, 2)
	assert.Equal(t, "Acme Corp", entries[0].Company)
	assert.Equal(t, []string{"• Shipped the billing service"}, entries[0].BulletPoints)
	assert.Equal(t, "Globex Inc", entries[1].Company)
	assert.Equal(t, []string{"• Maintained the data warehouse"}, entries[1].BulletPoints)
}

func TestExtractExperienceEmpty(t *testing.T) {
	entries := newTestParser().ExtractExperience("")
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestExtractProjects(t *testing.T) {
	text := "Weather Dashboard\n• Real-time forecasts from public APIs\n• Deployed on a small VPS\n\nChess Engine\n• Alpha-beta search with transposition tables"

	entries := newTestParser().ExtractProjects(text)
	require.Len(t, entries, 2)

	assert.Equal(t, "Weather Dashboard", entries[0].Name)
	assert.Len(t, entries[0].BulletPoints, 2)
	assert.Equal(t, "Chess Engine", entries[1].Name)
	assert.Equal(t, []string{"• Alpha-beta search with transposition tables"}, entries[1].BulletPoints)
}

func TestExtractAwards(t *testing.T) {
	text := "Dean's List 2021\n\nEmployee of the Month, March 2023\n"

	awards := newTestParser().ExtractAwards(text)
	assert.Equal(t, []string{"Dean's List 2021", "Employee of the Month, March 2023"}, awards)
}

func TestExtractSummary(t *testing.T) {
	assert.Equal(t, "Pragmatic backend developer.", newTestParser().ExtractSummary("  Pragmatic backend developer.\n"))
	assert.Equal(t, "", newTestParser().ExtractSummary("   \n  "))
}

func TestParseFullResume(t *testing.T) {
	raw := strings.Join([]string{
		"Jane Doe",
		"jane@example.com",
		"",
		"Summary",
		"Backend developer focused on data infrastructure.",
		"",
		"Education",
		"Bachelor of Science in Computer Science",
		"State University",
		"2018-2022",
		"GPA: 3.8",
		"",
		"Experience",
		"Acme Corp",
		"Senior Software Engineer",
		"Jan 2020 - Present",
		"• Built distributed data pipelines",
		"",
		"Skills",
		"Python, Go, Rust",
		"",
		"Awards",
		"Dean's List 2021",
	}, "\n")

	resume := newTestParser().Parse(raw)

	assert.Equal(t, "Backend developer focused on data infrastructure.", resume.Summary)
	require.Len(t, resume.Education, 1)
	require.NotNil(t, resume.Education[0].GPA)
	assert.Equal(t, "3.8", *resume.Education[0].GPA)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "Acme Corp", resume.Experience[0].Company)
	assert.Equal(t, []string{"Python", "Go", "Rust"}, resume.Skills)
	assert.Equal(t, []string{"Dean's List 2021"}, resume.Awards)
	assert.Empty(t, resume.Projects)
}
