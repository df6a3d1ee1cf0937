package models

// Certification is a static reference record pointing at an online certification
type Certification struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
	URL      string `json:"url"`
}

// AnalysisResult is the outcome of comparing resume skills against a job description.
// JobSkills and MissingSkills are ordered-unique; CertificationSuggestions only
// contains keys that are present in MissingSkills.
type AnalysisResult struct {
	JobSkills                []string                   `json:"job_skills"`
	MissingSkills            []string                   `json:"missing_skills"`
	CertificationSuggestions map[string][]Certification `json:"certification_suggestions"`
}
