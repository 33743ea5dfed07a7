package handler

import (
	"errors"
	"net/http"

	"health_check_project/internal/extractor"
	"health_check_project/internal/service"
	"health_check_project/internal/storage"
	"health_check_project/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SuccessResponse struct {
	Message string `json:"message" example:"Registration successful"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"id number must be 1 letter followed by 9 digits, e.g. A123456789"`
}

// handleServiceError maps the sentinel taxonomy onto HTTP statuses. Domain
// errors surface with their message; anything unexpected is logged with
// detail server-side and answered with a generic 500.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case validation.IsValidationError(err),
		errors.Is(err, storage.ErrIdentifierExists),
		errors.Is(err, extractor.ErrUnsupportedFormat),
		errors.Is(err, extractor.ErrExtraction),
		errors.Is(err, extractor.ErrEmptyContent),
		errors.Is(err, service.ErrNoSession):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "id number not found"})
	case errors.Is(err, service.ErrStoredHash):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error("unhandled internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
	}
}
