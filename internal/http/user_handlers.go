package http

import (
	"github.com/gin-gonic/gin"

	"github.com/baladia/fuel-service/internal/http/middleware"
	"github.com/baladia/fuel-service/internal/service"
)

func (h *Handler) listUsers(c *gin.Context) {
	q := service.UserListQuery{Search: c.Query("search")}
	var err error
	if q.Active, err = queryBool(c, "user_active"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.ReadOnly, err = queryBool(c, "read_only"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	q.Page, q.PageSize = paging(c)

	page, err := h.users.List(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, page)
}

func (h *Handler) getUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, user)
}

type userRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=100"`
	Password *string `json:"password" validate:"omitempty,min=3,max=100"`
	FullName *string `json:"full_name"`
	SSN      *int64  `json:"ssn"`
	Active   *bool   `json:"active"`
	ReadOnly *bool   `json:"read_only"`
}

func (h *Handler) createUser(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondBadRequest(c, "missing principal")
		return
	}

	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondBadRequest(c, "invalid username or password")
		return
	}

	in := service.UserCreateInput{
		SSN:      req.SSN,
		Active:   req.Active,
		ReadOnly: req.ReadOnly,
	}
	if req.Username != nil {
		in.Username = *req.Username
	}
	if req.Password != nil {
		in.Password = *req.Password
	}
	if req.FullName != nil {
		in.FullName = *req.FullName
	}

	user, err := h.users.Create(c.Request.Context(), principal, in)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondCreated(c, user, "user created")
}

func (h *Handler) updateUser(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondBadRequest(c, "missing principal")
		return
	}
	id, err := parseID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	user, err := h.users.Update(c.Request.Context(), principal, id, service.UserUpdateInput{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		SSN:      req.SSN,
		Active:   req.Active,
		ReadOnly: req.ReadOnly,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, user)
}

func (h *Handler) deleteUser(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondBadRequest(c, "missing principal")
		return
	}
	id, err := parseID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if err := h.users.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	respondMessage(c, "user deleted")
}
