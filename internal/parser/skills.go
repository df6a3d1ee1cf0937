package parser

import (
	"regexp"
	"strings"
)

// Labels announcing the structured sub-blocks of a skills section
const (
	programmingLanguagesLabel = "Programming Languages:"
	frameworksLabel           = "Frameworks & Technologies:"
	expertiseLabel            = "Areas of Expertise:"
)

// Delimiters tried in order by the fallback strategy
var skillDelimiters = []string{"•", ",", "|", "\n", ";"}

// ExtractSkills flattens the skills section into a deduplicated list of skill
// terms. Two strategies are tried in order and never blended: the structured
// sub-block layout first, then delimiter splitting over the whole section.
// Each candidate is cleaned of markdown residue, then its noun phrases and the
// cleaned string itself are added to the result set.
func (p *Parser) ExtractSkills(text string) []string {
	candidates := p.structuredSkillCandidates(text)

	if len(candidates) == 0 {
		candidates = fallbackSkillCandidates(text)
	}

	seen := make(map[string]bool)
	skills := []string{}
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		skills = append(skills, s)
	}

	for _, candidate := range candidates {
		candidate = strings.TrimSpace(markdownResiduePattern.ReplaceAllString(candidate, ""))
		if candidate == "" {
			continue
		}
		for _, phrase := range p.phrases.NounPhrases(candidate) {
			add(phrase)
		}
		add(candidate)
	}

	return skills
}

// structuredSkillCandidates implements Strategy A: the three fixed labeled
// sub-blocks of a structured skills section
func (p *Parser) structuredSkillCandidates(text string) []string {
	var candidates []string

	if block := labeledBlock(text, programmingLanguagesLabel); block != "" {
		for _, label := range proficiencyLabels {
			re := regexp.MustCompile(regexp.QuoteMeta(label) + `\s*([^\n]+)`)
			if m := re.FindStringSubmatch(block); m != nil {
				candidates = append(candidates, splitCommaList(m[1])...)
			}
		}
	}

	if block := labeledBlock(text, frameworksLabel); block != "" {
		for _, m := range frameworkCategoryPattern.FindAllStringSubmatch(block, -1) {
			candidates = append(candidates, splitCommaList(m[1])...)
		}
	}

	if block := labeledBlock(text, expertiseLabel); block != "" {
		for _, m := range expertiseItemPattern.FindAllStringSubmatch(block, -1) {
			candidates = append(candidates, strings.TrimSpace(m[1]))
		}
	}

	return candidates
}

// fallbackSkillCandidates implements Strategy B: split the whole section text
// on the first delimiter present, or treat it as a single skill
func fallbackSkillCandidates(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	for _, delimiter := range skillDelimiters {
		if !strings.Contains(text, delimiter) {
			continue
		}
		var candidates []string
		for _, part := range strings.Split(text, delimiter) {
			if part = strings.TrimSpace(part); part != "" {
				candidates = append(candidates, part)
			}
		}
		return candidates
	}

	return []string{strings.TrimSpace(text)}
}

// labeledBlock returns the span from the label to the next blank line, or to
// the end of text when no blank line follows. Empty when the label is absent.
func labeledBlock(text, label string) string {
	start := strings.Index(text, label)
	if start < 0 {
		return ""
	}
	rest := text[start:]
	if end := strings.Index(rest, "\n\n"); end >= 0 {
		return rest[:end]
	}
	return rest
}

// splitCommaList splits a comma-separated list and trims each item
func splitCommaList(list string) []string {
	var items []string
	for _, item := range commaSplitPattern.Split(strings.TrimSpace(list), -1) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
