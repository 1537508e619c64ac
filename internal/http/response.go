package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baladia/fuel-service/internal/service"
)

// envelope is the uniform response shape. List payloads nest the page object
// under data, keeping the SPA contract.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, envelope{Success: true, Data: data, Message: message})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, envelope{Success: true, Message: message})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, envelope{Success: false, Message: message})
}

// handleError maps service errors onto HTTP statuses. Unexpected errors are
// logged with the request id and reach the client as text only when the
// deployment opts in.
func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, envelope{Success: false, Message: "resource not found"})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, envelope{Success: false, Message: err.Error()})
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, envelope{Success: false, Message: "invalid credentials"})
	case errors.Is(err, service.ErrReadOnly):
		c.JSON(http.StatusForbidden, envelope{Success: false, Message: "account is read-only"})
	default:
		h.log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		message := "internal error"
		if h.exposeErrors {
			message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, envelope{Success: false, Message: message})
	}
}
