// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vanrent/internal/modules/customer"
	"vanrent/internal/modules/fleet"
	"vanrent/internal/modules/pricing"
	"vanrent/internal/modules/rental"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeServiceError maps module sentinel errors onto HTTP status codes.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fleet.ErrBadRequest),
		errors.Is(err, customer.ErrBadRequest),
		errors.Is(err, rental.ErrBadRequest),
		errors.Is(err, rental.ErrInvalidWindow),
		errors.Is(err, pricing.ErrNegativeRate):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, fleet.ErrNotFound),
		errors.Is(err, customer.ErrNotFound),
		errors.Is(err, rental.ErrNotFound),
		errors.Is(err, rental.ErrUnknownVehicle),
		errors.Is(err, rental.ErrUnknownCustomer),
		errors.Is(err, pricing.ErrUnknownVehicle):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, rental.ErrVehicleTaken):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
