package http

import (
	"github.com/gin-gonic/gin"

	"github.com/baladia/fuel-service/internal/http/middleware"
	"github.com/baladia/fuel-service/internal/service"
)

func (h *Handler) listStations(c *gin.Context) {
	q := service.StationListQuery{Search: c.Query("search")}
	var err error
	if q.ParentOID, err = queryInt64(c, "parent_oid"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	q.Page, q.PageSize = paging(c)

	page, err := h.stations.List(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, page)
}

func (h *Handler) getStation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	station, err := h.stations.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, station)
}

type stationRequest struct {
	StationName   *string `json:"station_name"`
	StationEname  *string `json:"station_ename"`
	StationWeight *int    `json:"station_weight"`
	ParentOID     *int64  `json:"parent_oid"`
}

func (h *Handler) createStation(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondBadRequest(c, "missing principal")
		return
	}

	var req stationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	in := service.StationCreateInput{
		StationEname:  req.StationEname,
		StationWeight: req.StationWeight,
		ParentOID:     req.ParentOID,
	}
	if req.StationName != nil {
		in.StationName = *req.StationName
	}

	station, err := h.stations.Create(c.Request.Context(), principal, in)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondCreated(c, station, "station created")
}

func (h *Handler) updateStation(c *gin.Context) {
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

	var req stationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	station, err := h.stations.Update(c.Request.Context(), principal, id, service.StationUpdateInput{
		StationName:   req.StationName,
		StationEname:  req.StationEname,
		StationWeight: req.StationWeight,
		ParentOID:     req.ParentOID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, station)
}

func (h *Handler) deleteStation(c *gin.Context) {
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
	if err := h.stations.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	respondMessage(c, "station deleted")
}

func (h *Handler) stationOptions(c *gin.Context) {
	options, err := h.stations.Options(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, options)
}
