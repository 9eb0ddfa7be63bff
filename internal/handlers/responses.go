package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/abuyamnglobal-com/tajheez/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// parseIDParam parses a positive integer path parameter. A malformed id is a
// client error, reported before any service call.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + ": " + raw})
		return 0, false
	}
	return id, true
}

// respondError maps service errors onto the HTTP surface. Validation failures
// include per-field detail; everything unrecognized is a 500 with a generic
// message so store internals never leak to clients.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var vErr *apperrors.ValidationError
	if errors.As(err, &vErr) {
		logger.Warn("Validation failure", slog.String("error", vErr.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "fields": vErr.Fields})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failure", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidTransition):
		logger.Warn("Invalid state transition", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
