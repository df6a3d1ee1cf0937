package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resumatch-utils/pkg/models"
)

func TestSegmentBasicSections(t *testing.T) {
	raw := "Education\nBachelor of Science in Computer Science\nState University\n\nExperience\nAcme Corp\nSenior Software Engineer\n\nSkills\nPython, Go, Rust"

	sections := NewSegmenter(nil).Segment(raw)

	assert.Contains(t, sections[models.SectionEducation], "Bachelor of Science")
	assert.Contains(t, sections[models.SectionEducation], "State University")
	assert.Contains(t, sections[models.SectionExperience], "Acme Corp")
	assert.Equal(t, "Python, Go, Rust", sections[models.SectionSkills])
}

func TestSegmentNoHeaders(t *testing.T) {
	sections := NewSegmenter(nil).Segment("Just a wall of plain paragraphs with nothing recognizable.")
	assert.Empty(t, sections)
}

func TestSegmentEmptyInput(t *testing.T) {
	assert.Empty(t, NewSegmenter(nil).Segment(""))
}

func TestSegmentPreambleDiscarded(t *testing.T) {
	raw := "John Doe\njohn@example.com\n555-0100\n\nEducation\nState University"

	sections := NewSegmenter(nil).Segment(raw)

	assert.Len(t, sections, 1)
	assert.Equal(t, "State University", sections[models.SectionEducation])
}

func TestSegmentDuplicateHeaderLastWins(t *testing.T) {
	raw := "Education\nOld College\n\nEducation\nState University"

	sections := NewSegmenter(nil).Segment(raw)

	assert.Equal(t, "State University", sections[models.SectionEducation])
}

func TestSegmentHeaderSynonyms(t *testing.T) {
	raw := "Professional Experience\nAcme Corp\n\nCore Competencies\nPython"

	sections := NewSegmenter(nil).Segment(raw)

	assert.Equal(t, "Acme Corp", sections[models.SectionExperience])
	assert.Equal(t, "Python", sections[models.SectionSkills])
}

func TestSegmentSectionRunsToNextHeader(t *testing.T) {
	raw := "Skills\nPython\nGo\nAwards\nDean's List"

	sections := NewSegmenter(nil).Segment(raw)

	assert.Equal(t, "Python\nGo", sections[models.SectionSkills])
	assert.Equal(t, "Dean's List", sections[models.SectionAwards])
}

func TestSegmentTwoKindsOnOneLine(t *testing.T) {
	// Both kinds match the same line; the earlier table entry is recorded
	// first and ends up empty, the later one gets the content.
	raw := "Skills and Experience\nAcme Corp"

	sections := NewSegmenter(nil).Segment(raw)

	assert.Equal(t, "", sections[models.SectionExperience])
	assert.Equal(t, "Acme Corp", sections[models.SectionSkills])
}
