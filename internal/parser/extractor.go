package parser

import (
	"strings"

	"resumatch-utils/internal/nlp"
	"resumatch-utils/pkg/models"
)

// Config customizes parsing behavior. Zero values select the built-in defaults.
type Config struct {
	BulletGlyphs   string
	SectionHeaders []SectionSynonyms
}

// Parser turns raw resume text into a structured Resume. Every extractor is
// pure and degrades to an empty result on missing or malformed input; the
// untouched source paragraph is always retained as FullText.
type Parser struct {
	segmenter    *Segmenter
	phrases      nlp.PhraseExtractor
	bulletGlyphs map[rune]bool
}

// New creates a Parser. The phrase extractor is required; it is injected so
// callers own the NLP model lifecycle.
func New(cfg Config, phrases nlp.PhraseExtractor) *Parser {
	glyphs := cfg.BulletGlyphs
	if glyphs == "" {
		glyphs = DefaultBulletGlyphs
	}
	glyphSet := make(map[rune]bool, len(glyphs))
	for _, r := range glyphs {
		glyphSet[r] = true
	}

	return &Parser{
		segmenter:    NewSegmenter(cfg.SectionHeaders),
		phrases:      phrases,
		bulletGlyphs: glyphSet,
	}
}

// Segment exposes the section segmentation step on its own
func (p *Parser) Segment(raw string) map[models.SectionKind]string {
	return p.segmenter.Segment(raw)
}

// Parse segments the resume text and runs every entity extractor
func (p *Parser) Parse(raw string) *models.Resume {
	sections := p.segmenter.Segment(raw)

	return &models.Resume{
		Education:  p.ExtractEducation(sections[models.SectionEducation]),
		Experience: p.ExtractExperience(sections[models.SectionExperience]),
		Skills:     p.ExtractSkills(sections[models.SectionSkills]),
		Projects:   p.ExtractProjects(sections[models.SectionProjects]),
		Awards:     p.ExtractAwards(sections[models.SectionAwards]),
		Summary:    p.ExtractSummary(sections[models.SectionSummary]),
	}
}

// ExtractEducation extracts one entry per paragraph of the education section
func (p *Parser) ExtractEducation(text string) []models.EducationEntry {
	entries := []models.EducationEntry{}

	for _, paragraph := range strings.Split(text, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		entry := models.EducationEntry{
			Degree:      firstMatch(degreePatterns, paragraph),
			Institution: firstMatch(institutionPatterns, paragraph),
			FullText:    paragraph,
		}

		if m := educationDatePattern.FindString(paragraph); m != "" {
			date := strings.TrimSpace(m)
			entry.Date = &date
		}

		if m := gpaPattern.FindStringSubmatch(paragraph); m != nil {
			gpa := m[1]
			entry.GPA = &gpa
		}

		entries = append(entries, entry)
	}

	return entries
}

// ExtractExperience extracts one entry per paragraph of the experience section.
// The first non-empty line is taken as the company name unconditionally; the
// heuristic is deliberately simple and may be wrong when the paragraph leads
// with a title or date.
func (p *Parser) ExtractExperience(text string) []models.ExperienceEntry {
	entries := []models.ExperienceEntry{}

	for _, paragraph := range p.splitParagraphs(text) {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		lines := strings.Split(paragraph, "\n")
		entry := models.ExperienceEntry{
			Company:  strings.TrimSpace(lines[0]),
			Title:    firstMatch(jobTitlePatterns, paragraph),
			FullText: paragraph,
		}

		if m := experienceDatePattern.FindString(paragraph); m != "" {
			date := strings.TrimSpace(m)
			entry.Date = &date
		}

		var bullets []string
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if p.isBulletLine(line) {
				bullets = append(bullets, line)
			}
		}
		entry.BulletPoints = bullets

		entries = append(entries, entry)
	}

	return entries
}

// ExtractProjects extracts one entry per paragraph of the projects section,
// taking the first line as the project name
func (p *Parser) ExtractProjects(text string) []models.ProjectEntry {
	entries := []models.ProjectEntry{}

	for _, paragraph := range p.splitParagraphs(text) {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		lines := strings.Split(paragraph, "\n")
		entry := models.ProjectEntry{
			Name:     strings.TrimSpace(lines[0]),
			FullText: paragraph,
		}

		var bullets []string
		for _, line := range lines[1:] {
			line = strings.TrimSpace(line)
			if p.isBulletLine(line) {
				bullets = append(bullets, line)
			}
		}
		entry.BulletPoints = bullets

		entries = append(entries, entry)
	}

	return entries
}

// ExtractAwards returns every non-empty line of the awards section verbatim
func (p *Parser) ExtractAwards(text string) []string {
	awards := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			awards = append(awards, line)
		}
	}
	return awards
}

// ExtractSummary returns the trimmed section text verbatim
func (p *Parser) ExtractSummary(text string) string {
	return strings.TrimSpace(text)
}

// isBulletLine reports whether the line starts with a configured bullet glyph
func (p *Parser) isBulletLine(line string) bool {
	for _, r := range line {
		return p.bulletGlyphs[r]
	}
	return false
}

// splitParagraphs groups section text by blank-line boundaries. When the whole
// section is one blank-line-free block, bullet runs delimit the groups instead:
// a non-bullet line directly after a bullet line opens a new paragraph.
func (p *Parser) splitParagraphs(text string) []string {
	paragraphs := blankLinePattern.Split(text, -1)
	if len(paragraphs) > 1 {
		return paragraphs
	}

	lines := strings.Split(text, "\n")
	var groups []string
	var current []string
	prevBullet := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		isBullet := p.isBulletLine(trimmed)
		if prevBullet && !isBullet && trimmed != "" && len(current) > 0 {
			groups = append(groups, strings.Join(current, "\n"))
			current = nil
		}
		current = append(current, line)
		prevBullet = isBullet
	}
	if len(current) > 0 {
		groups = append(groups, strings.Join(current, "\n"))
	}

	if len(groups) == 0 {
		return paragraphs
	}
	return groups
}
