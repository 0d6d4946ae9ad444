package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamevault/internal/repository"
	"gamevault/internal/service"
)

// respondError maps service and repository errors onto the HTTP error
// taxonomy. Anything unrecognized becomes an opaque 500.
func (h HandlerSet) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, repository.ErrDuplicateEmail),
		errors.Is(err, repository.ErrDuplicateUsername),
		errors.Is(err, repository.ErrDuplicateTitle):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrGameNotFound),
		errors.Is(err, repository.ErrGenreNotFound),
		errors.Is(err, repository.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
	}
}
