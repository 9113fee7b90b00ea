package handler

import (
	"errors"
	"net/http"

	"coffee-filter-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// writeError maps service-layer failures onto HTTP responses. Nothing below
// the service boundary leaks to clients; unknown errors become a generic 500.
func writeError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "coffee shop not found"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
	case errors.Is(err, service.ErrRejected):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
