package models

// ParseResumeRequest represents the JSON payload for parsing raw resume text.
// File uploads use the multipart form field "file" instead.
type ParseResumeRequest struct {
	Text string `json:"text" validate:"required"`
}

// AnalyzeRequest represents the request payload for a skill gap analysis.
// Resume skills can be supplied directly or extracted from resume_text;
// the job description can be supplied inline or fetched from job_url.
type AnalyzeRequest struct {
	ResumeSkills   []string `json:"resume_skills,omitempty"`
	ResumeText     string   `json:"resume_text,omitempty"`
	JobDescription string   `json:"job_description,omitempty"`
	JobURL         string   `json:"job_url,omitempty" validate:"omitempty,url"`
}

// FetchJobRequest represents the request payload for downloading a job posting page
type FetchJobRequest struct {
	URL string `json:"url" validate:"required,url"`
}
