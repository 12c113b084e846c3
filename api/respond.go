package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmoulin/skyflight/internal/domain"
)

// respondError maps domain errors onto HTTP statuses. Repository failures
// surface as a generic retryable 500; the detail stays in the server log.
func respondError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrCancellationNotAllowed):
		c.JSON(http.StatusConflict, gin.H{"error": "Annulation impossible : le vol part dans moins de 24 heures."})
	default:
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error, please retry"})
	}
}
