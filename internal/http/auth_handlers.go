package http

import (
	"github.com/gin-gonic/gin"

	"github.com/baladia/fuel-service/internal/http/middleware"
)

type loginRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=3"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondBadRequest(c, "username and password are required")
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, result)
}

// logout acknowledges the request. Tokens are stateless; the client discards
// its copy.
func (h *Handler) logout(c *gin.Context) {
	respondMessage(c, "logged out")
}

func (h *Handler) verify(c *gin.Context) {
	respondMessage(c, "token is valid")
}

func (h *Handler) currentUser(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondBadRequest(c, "missing principal")
		return
	}
	respondOK(c, principal)
}
