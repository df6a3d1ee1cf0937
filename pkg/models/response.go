package models

import "time"

// ParseResumeResponse represents the response from a resume parse request
type ParseResumeResponse struct {
	Success        bool                   `json:"success"`
	Resume         *Resume                `json:"resume,omitempty"`
	Sections       map[SectionKind]string `json:"sections,omitempty"`
	ProcessingTime time.Duration          `json:"processing_time"`
	RequestID      string                 `json:"request_id"`
}

// AnalyzeResponse represents the response from a skill gap analysis request
type AnalyzeResponse struct {
	Success        bool            `json:"success"`
	ResumeSkills   []string        `json:"resume_skills"`
	Analysis       *AnalysisResult `json:"analysis,omitempty"`
	ProcessingTime time.Duration   `json:"processing_time"`
	RequestID      string          `json:"request_id"`
}

// FetchJobResponse represents the response from a job page fetch request
type FetchJobResponse struct {
	Success        bool          `json:"success"`
	URL            string        `json:"url"`
	Text           string        `json:"text,omitempty"`
	ProcessingTime time.Duration `json:"processing_time"`
	RequestID      string        `json:"request_id"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
