package handlers

import (
	"fmt"
	"net/http"
	"time"

	"resumatch-utils/internal/analyzer"
	"resumatch-utils/internal/fetcher"
	"resumatch-utils/internal/logging"
	"resumatch-utils/internal/parser"
	"resumatch-utils/pkg/models"
	"resumatch-utils/pkg/utils"

	"github.com/labstack/echo/v4"
)

// AnalyzeHandler handles skill gap analysis requests. Resume skills come from
// the request directly or are extracted from resume_text; the job description
// comes inline or is fetched from job_url.
func AnalyzeHandler(p *parser.Parser, a *analyzer.Analyzer, f *fetcher.Fetcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		logger.Info("Analyze request received")

		var req models.AnalyzeRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind request", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}
		if err := validate.Struct(&req); err != nil {
			logger.Error("Request validation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		resumeSkills := req.ResumeSkills
		if len(resumeSkills) == 0 && req.ResumeText != "" {
			resumeSkills = p.Parse(req.ResumeText).Skills
		}
		if len(resumeSkills) == 0 {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   "Either resume_skills or resume_text is required",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		jobDescription := req.JobDescription
		if jobDescription == "" && req.JobURL != "" {
			text, err := f.FetchText(c.Request().Context(), req.JobURL)
			if err != nil {
				logger.Error("Failed to fetch job posting", map[string]interface{}{
					"url":   req.JobURL,
					"error": err.Error(),
				})
				return c.JSON(http.StatusBadGateway, models.ErrorResponse{
					Error:     "fetch_failed",
					Message:   fmt.Sprintf("Failed to fetch job posting: %v", err),
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
			jobDescription = text
		}
		if jobDescription == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   "Either job_description or job_url is required",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		analysis := a.Analyze(resumeSkills, jobDescription)

		logger.WithFields(map[string]interface{}{
			"processing_time": time.Since(startTime),
			"job_skills":      len(analysis.JobSkills),
			"missing_skills":  len(analysis.MissingSkills),
		}).Info("Analyze request completed successfully")

		return c.JSON(http.StatusOK, models.AnalyzeResponse{
			Success:        true,
			ResumeSkills:   resumeSkills,
			Analysis:       analysis,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}
