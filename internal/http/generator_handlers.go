package http

import (
	"github.com/gin-gonic/gin"

	"github.com/baladia/fuel-service/internal/http/middleware"
	"github.com/baladia/fuel-service/internal/service"
)

func (h *Handler) listGenerators(c *gin.Context) {
	q := service.GeneratorListQuery{Search: c.Query("search")}
	var err error
	if q.FuelTypeOID, err = queryInt64(c, "fuel_type_oid"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.AssignedTo, err = queryInt64(c, "assigned_to"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.TypeOID, err = queryInt64(c, "type_oid"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	q.Page, q.PageSize = paging(c)

	page, err := h.generators.List(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, page)
}

func (h *Handler) getGenerator(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	generator, err := h.generators.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, generator)
}

type generatorRequest struct {
	Name           *string  `json:"name"`
	AssignedTo     *int64   `json:"assigned_to"`
	FuelTypeOID    *int64   `json:"fuel_type_oid"`
	TypeOID        *int64   `json:"type_oid"`
	EngineCapacity *float64 `json:"engine_capacity"`
	Note           *string  `json:"note"`
}

func (h *Handler) createGenerator(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondBadRequest(c, "missing principal")
		return
	}

	var req generatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	in := service.GeneratorCreateInput{
		AssignedTo:     req.AssignedTo,
		TypeOID:        req.TypeOID,
		EngineCapacity: req.EngineCapacity,
		Note:           req.Note,
	}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.FuelTypeOID != nil {
		in.FuelTypeOID = *req.FuelTypeOID
	}

	generator, err := h.generators.Create(c.Request.Context(), principal, in)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondCreated(c, generator, "generator created")
}

func (h *Handler) updateGenerator(c *gin.Context) {
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

	var req generatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	generator, err := h.generators.Update(c.Request.Context(), principal, id, service.GeneratorUpdateInput{
		Name:           req.Name,
		AssignedTo:     req.AssignedTo,
		FuelTypeOID:    req.FuelTypeOID,
		TypeOID:        req.TypeOID,
		EngineCapacity: req.EngineCapacity,
		Note:           req.Note,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, generator)
}

func (h *Handler) deleteGenerator(c *gin.Context) {
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
	if err := h.generators.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	respondMessage(c, "generator deleted")
}

func (h *Handler) generatorFuelLogs(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	limit := 50
	value, err := queryInt(c, "limit")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if value != nil && *value > 0 {
		limit = *value
	}
	logs, err := h.generators.FuelLogs(c.Request.Context(), id, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if err := h.fuelLogs.Enrich(c.Request.Context(), logs); err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, logs)
}

func (h *Handler) generatorOptions(c *gin.Context) {
	fuelType, err := queryInt64(c, "fuel_type_oid")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	options, err := h.generators.Options(c.Request.Context(), fuelType)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, options)
}
