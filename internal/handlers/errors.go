package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/products_accounts/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondServiceError writes the status for a failed service call.
// A CRUDError answers with its own code; bad requests also carry the cause.
// Other errors fall back to the sentinels: not found is 404, validation is 400, anything else is 500.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, notFoundMsg, failMsg string) {
	if crudErr, ok := apperrors.AsCRUDError(err); ok {
		switch {
		case crudErr.Code >= http.StatusInternalServerError:
			logger.Error(crudErr.Message, slog.String("error", err.Error()))
			c.JSON(crudErr.Code, gin.H{"error": crudErr.Message})
		case crudErr.Code == http.StatusBadRequest:
			logger.Warn("Validation error", slog.String("error", err.Error()))
			c.JSON(crudErr.Code, gin.H{"error": crudErr.Error()})
		default:
			logger.Warn(crudErr.Message, slog.Int("status", crudErr.Code))
			c.JSON(crudErr.Code, gin.H{"error": crudErr.Message})
		}
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(notFoundMsg)
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}
