package api

import (
	"errors"
	"net/http"

	"github.com/arjunm592/airtravel/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps the domain taxonomy to status codes. Unknown errors become
// an opaque 500 so storage internals never leak into response bodies.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrFlightNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrFlightNotFound.Error()})
	case errors.Is(err, domain.ErrNoSeatsAvailable):
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrNoSeatsAvailable.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
