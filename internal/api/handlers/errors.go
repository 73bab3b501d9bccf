package handlers

import (
	"errors"
	"net/http"

	"condo-maintenance-backend/internal/auth"
	apperrors "condo-maintenance-backend/internal/errors"
	"condo-maintenance-backend/internal/logger"
	"condo-maintenance-backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// respondError maps service errors onto status codes. failure is the message
// used when nothing more specific applies.
func respondError(c *gin.Context, err error, failure string) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs), apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrInvalidStatusTransition),
		errors.Is(err, apperrors.ErrUnsupportedEntityType),
		errors.Is(err, apperrors.ErrInvalidPaginationParams):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "redirect": auth.LoginPath})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error(), "redirect": auth.HomePath})
	case apperrors.IsTransient(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable", "retryable": true})
	case errors.Is(err, apperrors.ErrFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error(failure)
		c.JSON(http.StatusInternalServerError, gin.H{"error": failure, "details": err.Error()})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
}

// activeCondominium reads the tenant resolved by RequireTenant
func activeCondominium(c *gin.Context) (uuid.UUID, bool) {
	id, ok := tenant.GetCondominiumID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrNoActiveCondominium.Error(), "redirect": auth.HomePath})
		return uuid.Nil, false
	}
	return id, true
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "redirect": auth.LoginPath})
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses a uuid path parameter; what names it in the error
func pathID(c *gin.Context, param, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + " ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// queryID parses an optional uuid query parameter
func queryID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": invalid UUID format"})
		return nil, false
	}
	return &id, true
}
