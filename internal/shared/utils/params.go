package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/egest-app/egest/internal/shared/errors"
)

// ParseIDParam reads a UUID path parameter. entityName is used in the error message.
func ParseIDParam(c *gin.Context, paramName, entityName string) (string, error) {
	raw := strings.TrimSpace(c.Param(paramName))
	if raw == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}
	if _, err := uuid.Parse(raw); err != nil {
		return "", errors.NewValidationError("invalid " + entityName + " ID format, expected a UUID")
	}
	return raw, nil
}
