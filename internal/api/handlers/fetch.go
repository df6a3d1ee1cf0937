package handlers

import (
	"fmt"
	"net/http"
	"time"

	"resumatch-utils/internal/fetcher"
	"resumatch-utils/internal/logging"
	"resumatch-utils/pkg/models"
	"resumatch-utils/pkg/utils"

	"github.com/labstack/echo/v4"
)

// FetchJobHandler handles job page fetch requests
func FetchJobHandler(f *fetcher.Fetcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		logger.Info("Job fetch request received")

		var req models.FetchJobRequest
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

		text, err := f.FetchText(c.Request().Context(), req.URL)
		if err != nil {
			logger.Error("Failed to fetch job posting", map[string]interface{}{
				"url":   req.URL,
				"error": err.Error(),
			})
			return c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:     "fetch_failed",
				Message:   fmt.Sprintf("Failed to fetch job posting: %v", err),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.WithFields(map[string]interface{}{
			"processing_time": time.Since(startTime),
			"url":             req.URL,
			"length":          len(text),
		}).Info("Job fetch request completed successfully")

		return c.JSON(http.StatusOK, models.FetchJobResponse{
			Success:        true,
			URL:            req.URL,
			Text:           text,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}
