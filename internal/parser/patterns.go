package parser

import (
	"regexp"
	"strings"

	"resumatch-utils/pkg/models"
)

// SectionSynonyms binds a section kind to the header phrases that announce it.
// The table is ordered: when one line names several kinds, earlier entries are
// recorded first, so a later kind on the same line takes the content slot.
type SectionSynonyms struct {
	Kind    models.SectionKind
	Headers []string
}

// DefaultSectionHeaders lists the header phrases commonly found in resumes
var DefaultSectionHeaders = []SectionSynonyms{
	{models.SectionEducation, []string{"education", "academic background", "academic history", "academic qualification", "qualifications"}},
	{models.SectionExperience, []string{"experience", "work experience", "employment history", "work history", "professional experience"}},
	{models.SectionSkills, []string{"skills", "technical skills", "core competencies", "competencies", "key skills"}},
	{models.SectionProjects, []string{"projects", "project experience", "academic projects", "personal projects"}},
	{models.SectionCertifications, []string{"certifications", "certificates", "professional certifications"}},
	{models.SectionAwards, []string{"awards", "honors", "achievements", "recognitions"}},
	{models.SectionPublications, []string{"publications", "research", "papers", "articles"}},
	{models.SectionLanguages, []string{"languages", "language proficiency"}},
	{models.SectionInterests, []string{"interests", "hobbies", "activities"}},
	{models.SectionSummary, []string{"summary", "professional summary", "profile", "objective", "about me"}},
}

// DefaultBulletGlyphs holds every character treated as a bullet marker when it
// leads a line. The predicate is data so callers can swap the policy in config.
const DefaultBulletGlyphs = "•-*○▪▫◦◘◙■□▣▢▤▥▦▧▨▩◆◇◈◉◊◌◍◎●◐◑◒◓◔◕◖◗◚◛◜◝◞◟◠◡◢◣◤◥◧◨◩◪◫◬◭◮◯◰◱◲◳◴◵◶◷◸◹◺◻◼◽◾◿"

// Field patterns are tried in table order; the first match wins.

var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Bachelor|Master|Ph\.?D\.?|B\.?S\.?|M\.?S\.?|B\.?A\.?|M\.?A\.?|M\.?B\.?A\.?)[^,.]*`),
	regexp.MustCompile(`(?i)(Associate|Diploma|Certificate)[^,.]*`),
}

var institutionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(University|College|Institute|School) of [^,.\n]*`),
	regexp.MustCompile(`(?i)[^,.\n]*(University|College|Institute|School)`),
}

// A 4-digit year with an optional second year, or a month name plus a year
var educationDatePattern = regexp.MustCompile(
	`(19|20)\d{2}\s*(-|–|to)?\s*(19|20)?\d{0,2}|\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* (19|20)\d{2}`)

var gpaPattern = regexp.MustCompile(`(?i)GPA[:\s]*([0-9]\.[0-9]+)`)

var jobTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Senior|Junior|Lead|Principal|Staff)? ?(Software|Systems|Data|Full[- ]Stack|Front[- ]End|Back[- ]End|DevOps|Cloud|Machine Learning|AI)? ?(Engineer|Developer|Scientist|Analyst|Architect|Designer|Consultant|Manager|Director)`),
	regexp.MustCompile(`(?i)(Project|Product|Program|Technical) (Manager|Lead|Director)`),
}

// A date range ending in a second date, "Present" or "Current"
var experienceDatePattern = regexp.MustCompile(
	`(19|20)\d{2}\s*(-|–|to)?\s*(19|20)?\d{0,2}|\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* (19|20)\d{2}\s*(-|–|to)?\s*((Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* (19|20)\d{2}|Present|Current)`)

// Residual markdown formatting stripped from skill candidates
var markdownResiduePattern = regexp.MustCompile("\\*\\*|\\*|__|\\\\_|`|\\[|\\]|\\(|\\)|#")

// Skills section sub-block labels (Strategy A)

var proficiencyLabels = []string{"Proficient:", "Intermediate:", "Familiar:"}

var frameworkCategoryPattern = regexp.MustCompile(`(?:Frontend|Backend|Mobile|Cloud & DevOps|Databases|Tools):\s*([^\n]+)`)

var expertiseItemPattern = regexp.MustCompile(`- ([^\n]+)`)

var commaSplitPattern = regexp.MustCompile(`,\s*`)

var blankLinePattern = regexp.MustCompile(`\n\s*\n`)

// firstMatch returns the whole text of the first pattern in the table that
// matches, or nil when none does
func firstMatch(patterns []*regexp.Regexp, text string) *string {
	for _, re := range patterns {
		if m := re.FindString(text); m != "" {
			m = strings.TrimSpace(m)
			return &m
		}
	}
	return nil
}
