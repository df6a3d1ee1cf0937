package models

// SectionKind labels a recognized resume subsection
type SectionKind string

const (
	SectionEducation      SectionKind = "education"
	SectionExperience     SectionKind = "experience"
	SectionSkills         SectionKind = "skills"
	SectionProjects       SectionKind = "projects"
	SectionCertifications SectionKind = "certifications"
	SectionAwards         SectionKind = "awards"
	SectionPublications   SectionKind = "publications"
	SectionLanguages      SectionKind = "languages"
	SectionInterests      SectionKind = "interests"
	SectionSummary        SectionKind = "summary"
)

// EducationEntry represents one education paragraph from a resume.
// Pattern fields are nil when no pattern matched; FullText always carries
// the untouched source paragraph so nothing is silently dropped.
type EducationEntry struct {
	Degree      *string `json:"degree,omitempty"`
	Institution *string `json:"institution,omitempty"`
	Date        *string `json:"date,omitempty"`
	GPA         *string `json:"gpa,omitempty"`
	FullText    string  `json:"full_text"`
}

// ExperienceEntry represents one work experience paragraph.
// Company is always the first non-empty line of the paragraph.
type ExperienceEntry struct {
	Company      string   `json:"company"`
	Title        *string  `json:"title,omitempty"`
	Date         *string  `json:"date,omitempty"`
	BulletPoints []string `json:"bullet_points,omitempty"`
	FullText     string   `json:"full_text"`
}

// ProjectEntry represents one project paragraph
type ProjectEntry struct {
	Name         string   `json:"name"`
	BulletPoints []string `json:"bullet_points,omitempty"`
	FullText     string   `json:"full_text"`
}

// Resume is the structured result of parsing one resume document
type Resume struct {
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	Skills     []string          `json:"skills"`
	Projects   []ProjectEntry    `json:"projects"`
	Awards     []string          `json:"awards"`
	Summary    string            `json:"summary"`
}
