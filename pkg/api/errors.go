package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/louannemur/fleetd/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		respondError(c, http.StatusBadRequest, "validation_error", validErr.Error())
	case errors.Is(err, services.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, "unauthorized", "invalid or inactive runner session")
	case errors.Is(err, services.ErrForbidden):
		respondError(c, http.StatusForbidden, "forbidden", "agent is not owned by this session")
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, services.ErrStateConflict):
		respondError(c, http.StatusConflict, "state_conflict", "resource is not in a state that allows this operation")
	case errors.Is(err, services.ErrRetryBudgetExhausted):
		respondError(c, http.StatusConflict, "retry_exhausted", "task retry budget is exhausted")
	case errors.Is(err, services.ErrRetryRefused):
		respondError(c, http.StatusConflict, "retry_refused", "failure type is not automatically retryable")
	default:
		slog.Error("Unexpected service error", "error", err)
		respondError(c, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
