package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"batas-backend/llm"
	"batas-backend/logging"
	"batas-backend/service"

	"github.com/gin-gonic/gin"
)

// Error codes carried in the error envelope
const (
	CodeInvalidInput         = "INVALID_INPUT"
	CodeConfigurationError   = "CONFIGURATION_ERROR"
	CodeReferenceUnavailable = "REFERENCE_UNAVAILABLE"
	CodeUpstreamExhausted    = "UPSTREAM_EXHAUSTED"
	CodeAttachmentRejected   = "ATTACHMENT_REJECTED"
	CodeNotFound             = "NOT_FOUND"
	CodeInternalError        = "INTERNAL_ERROR"
)

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// respondServiceError maps a service error onto a status and envelope code.
// Upstream and internal details are logged, never returned.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error) {
	log := logging.FromContext(c.Request.Context(), logger)

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, CodeInvalidInput, err.Error())
	case errors.Is(err, service.ErrAttachmentRejected):
		respondError(c, http.StatusBadRequest, CodeAttachmentRejected, err.Error())
	case errors.Is(err, service.ErrLawyerNotFound), errors.Is(err, service.ErrAttachmentNotFound):
		respondError(c, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, service.ErrAttachmentsNotEnabled):
		respondError(c, http.StatusNotFound, CodeNotFound, "attachment downloads are not enabled")
	case errors.Is(err, service.ErrNotConfigured):
		log.Error("analysis requested without a configured provider")
		respondError(c, http.StatusInternalServerError, CodeConfigurationError, "the analysis service is not configured")
	case errors.Is(err, service.ErrReferenceUnavailable):
		log.Error("reference data unavailable", "error", err)
		respondError(c, http.StatusServiceUnavailable, CodeReferenceUnavailable, "reference data is temporarily unavailable, please try again later")
	case errors.Is(err, llm.ErrUpstreamExhausted):
		attrs := []any{"error", err}
		var exhausted *llm.ExhaustedError
		if errors.As(err, &exhausted) {
			attrs = append(attrs, "attempted", exhausted.Attempted)
		}
		log.Error("all candidate models failed", attrs...)
		respondError(c, http.StatusBadGateway, CodeUpstreamExhausted, "the analysis service is temporarily unavailable, please try again later")
	default:
		log.Error("request failed", "error", err)
		respondError(c, http.StatusInternalServerError, CodeInternalError, "internal server error")
	}
}
