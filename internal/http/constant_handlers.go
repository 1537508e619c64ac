package http

import (
	"github.com/gin-gonic/gin"

	"github.com/baladia/fuel-service/internal/http/middleware"
	"github.com/baladia/fuel-service/internal/service"
)

func (h *Handler) listConstants(c *gin.Context) {
	var q service.ConstantListQuery
	if raw := c.Query("type"); raw != "" {
		q.Type = &raw
	}
	if raw := c.Query("search"); raw != "" {
		q.Search = &raw
	}
	q.Page, q.PageSize = paging(c)

	page, err := h.constants.List(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, page)
}

func (h *Handler) getConstant(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	constant, err := h.constants.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, constant)
}

type constantRequest struct {
	Name    *string `json:"cnst_name"`
	Type    *string `json:"cnst_type"`
	NameEng *string `json:"cnst_eng"`
}

func (h *Handler) createConstant(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondBadRequest(c, "missing principal")
		return
	}

	var req constantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	constant, err := h.constants.Create(c.Request.Context(), principal, service.ConstantCreateInput{
		Name:    req.Name,
		Type:    req.Type,
		NameEng: req.NameEng,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondCreated(c, constant, "constant created")
}

func (h *Handler) updateConstant(c *gin.Context) {
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

	var req constantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	constant, err := h.constants.Update(c.Request.Context(), principal, id, service.ConstantUpdateInput{
		Name:    req.Name,
		Type:    req.Type,
		NameEng: req.NameEng,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, constant)
}

func (h *Handler) deleteConstant(c *gin.Context) {
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
	if err := h.constants.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	respondMessage(c, "constant deleted")
}

func (h *Handler) constantsByType(c *gin.Context) {
	rows, err := h.constants.ByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, rows)
}

func (h *Handler) constantOptions(c *gin.Context) {
	options, err := h.constants.Options(c.Request.Context(), c.Param("type"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, options)
}

func (h *Handler) constantTypes(c *gin.Context) {
	types, err := h.constants.Types(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, types)
}
