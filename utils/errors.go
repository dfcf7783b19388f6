package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content-ops-platform/internal/ai"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	ErrorCode string      `json:"error_code"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}

// RespondWithError sends a standardized error response
func RespondWithError(c *gin.Context, statusCode int, errorCode, message string, details interface{}) {
	c.JSON(statusCode, ErrorResponse{
		ErrorCode: errorCode,
		Message:   message,
		Details:   details,
	})
}

// RespondWithBadRequest sends a 400 Bad Request error
func RespondWithBadRequest(c *gin.Context, message string, details interface{}) {
	RespondWithError(c, http.StatusBadRequest, "bad_request", message, details)
}

// RespondWithNotFound sends a 404 Not Found error
func RespondWithNotFound(c *gin.Context, message string) {
	RespondWithError(c, http.StatusNotFound, "not_found", message, nil)
}

// RespondWithInternalError sends a 500 Internal Server Error
func RespondWithInternalError(c *gin.Context, message string, details interface{}) {
	RespondWithError(c, http.StatusInternalServerError, "internal_error", message, details)
}

// RespondWithServiceError maps an assistant failure onto an HTTP response.
// The localized message and the retry hint are always sent to the client;
// retryable kinds tell the UI to re-enable the triggering control.
func RespondWithServiceError(c *gin.Context, err error) {
	svcErr := ai.Classify(err)

	status := http.StatusBadGateway
	switch svcErr.Code {
	case ai.CodeInvalidInput:
		status = http.StatusBadRequest
	case ai.CodeServiceUnavailable:
		status = http.StatusServiceUnavailable
	case ai.CodeUnknownError:
		status = http.StatusInternalServerError
	}

	RespondWithError(c, status, string(svcErr.Code), svcErr.Message, gin.H{
		"isRetryable": svcErr.Retryable,
	})
}
