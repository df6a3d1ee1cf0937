package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"resumatch-utils/internal/document"
	"resumatch-utils/internal/logging"
	"resumatch-utils/internal/parser"
	"resumatch-utils/pkg/models"
	"resumatch-utils/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// ParseResumeHandler handles resume parsing requests. Resume text arrives
// either as a JSON body or as an uploaded file in the "file" form field.
func ParseResumeHandler(p *parser.Parser) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		logger.Info("Resume parse request received")

		text, err := resumeTextFromRequest(c, logger)
		if err != nil {
			code, status := classifyParseError(err)
			return c.JSON(status, models.ErrorResponse{
				Error:     code,
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		resume := p.Parse(text)
		sections := p.Segment(text)

		logger.WithFields(map[string]interface{}{
			"processing_time": time.Since(startTime),
			"sections":        len(sections),
			"skills":          len(resume.Skills),
		}).Info("Resume parse request completed successfully")

		return c.JSON(http.StatusOK, models.ParseResumeResponse{
			Success:        true,
			Resume:         resume,
			Sections:       sections,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}

// resumeTextFromRequest extracts resume text from a file upload or a JSON body
func resumeTextFromRequest(c echo.Context, logger logging.Logger) (string, error) {
	file, err := c.FormFile("file")
	if err != nil {
		// No upload, fall back to the JSON body
		var req models.ParseResumeRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind request", map[string]interface{}{"error": err.Error()})
			return "", utils.NewBadRequestError("Invalid request format")
		}
		if err := validate.Struct(&req); err != nil {
			logger.Error("Request validation failed", map[string]interface{}{"error": err.Error()})
			return "", utils.NewValidationError(err.Error())
		}
		if strings.TrimSpace(req.Text) == "" {
			return "", utils.NewValidationError("resume text must not be blank")
		}
		return req.Text, nil
	}

	src, err := file.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", map[string]interface{}{"error": err.Error()})
		return "", utils.NewBadRequestError("Failed to read uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		logger.Error("Failed to read uploaded file", map[string]interface{}{"error": err.Error()})
		return "", utils.NewBadRequestError("Failed to read uploaded file")
	}

	text, err := document.ExtractTextFromBytes(filepath.Ext(file.Filename), data)
	if err != nil {
		logger.Error("Failed to extract text from upload", map[string]interface{}{
			"filename": file.Filename,
			"error":    err.Error(),
		})
		return "", err
	}
	return text, nil
}

// classifyParseError maps an extraction or validation error to an error code
// and HTTP status for the response envelope
func classifyParseError(err error) (string, int) {
	if _, ok := err.(*document.UnsupportedFormatError); ok {
		return "unsupported_format", http.StatusUnsupportedMediaType
	}
	if customErr, ok := err.(*utils.CustomError); ok {
		switch customErr.Code {
		case http.StatusBadRequest:
			return "invalid_request", http.StatusBadRequest
		case http.StatusUnprocessableEntity:
			return "extraction_failed", http.StatusUnprocessableEntity
		}
	}
	return "internal_error", http.StatusInternalServerError
}
