package parser

import (
	"strings"

	"resumatch-utils/pkg/models"
)

// Segmenter splits raw resume text into labeled sections using header-line
// detection against a synonym table.
type Segmenter struct {
	headers []SectionSynonyms
}

// NewSegmenter creates a Segmenter with the given header table, falling back
// to DefaultSectionHeaders when the table is empty
func NewSegmenter(headers []SectionSynonyms) *Segmenter {
	if len(headers) == 0 {
		headers = DefaultSectionHeaders
	}
	return &Segmenter{headers: headers}
}

type headerPosition struct {
	line int
	kind models.SectionKind
}

// Segment maps each recognized section kind to the text between its header
// line and the next header of any kind. When the same kind appears more than
// once the last occurrence wins. Text before the first header belongs to no
// section. Zero recognized headers yields an empty map.
func (s *Segmenter) Segment(raw string) map[models.SectionKind]string {
	lines := strings.Split(raw, "\n")

	var positions []headerPosition
	for i, line := range lines {
		trimmed := strings.ToLower(strings.TrimSpace(line))
		if trimmed == "" {
			continue
		}
		for _, section := range s.headers {
			for _, header := range section.Headers {
				if header == trimmed || strings.Contains(trimmed, header) {
					positions = append(positions, headerPosition{line: i, kind: section.Kind})
					break
				}
			}
		}
	}

	sections := make(map[models.SectionKind]string)
	for i, pos := range positions {
		end := len(lines)
		if i < len(positions)-1 {
			end = positions[i+1].line
		}
		if end <= pos.line+1 {
			// Another header on the same line claimed the content
			sections[pos.kind] = ""
			continue
		}
		sections[pos.kind] = strings.TrimSpace(strings.Join(lines[pos.line+1:end], "\n"))
	}

	return sections
}
