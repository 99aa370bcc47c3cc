package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-messease/database"
	"go-messease/middleware"
	"go-messease/models"
	"go-messease/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// bindBody decodes, validates and defaults a JSON request body.
func bindBody(c *gin.Context, v interface{}) error {
	if err := c.ShouldBindBodyWith(v, binding.JSON); err != nil {
		return decodeError(err)
	}
	body, _ := c.Get(gin.BodyBytesKey)
	raw, _ := body.([]byte)
	if err := models.RejectNulls(raw, v); err != nil {
		return err
	}
	if err := models.Validate(v); err != nil {
		return err
	}
	return models.ApplyDefaults(v)
}

func decodeError(err error) error {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &models.ValidationError{Fields: []models.FieldError{{
			Field:   typeErr.Field,
			Rule:    "type",
			Message: "must be of type " + typeErr.Type.String(),
		}}}
	}
	return &models.ValidationError{Fields: []models.FieldError{{
		Field:   "body",
		Rule:    "json",
		Message: "request body is not valid JSON",
	}}}
}

// abortWithError maps an error onto the API's status codes. Anything
// unrecognised is logged and reported as a plain 500.
func abortWithError(c *gin.Context, logger *zap.SugaredLogger, err error) {
	var verr *models.ValidationError
	switch {
	case errors.Is(err, database.ErrUnavailable):
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Database not available"})
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "details": verr.Fields})
	case errors.Is(err, services.ErrSubtotalMismatch):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Subtotal mismatch"})
	default:
		logger.Errorw("request failed",
			"path", c.FullPath(),
			"request_id", middleware.RequestIDFrom(c),
			"error", err,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
