package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/baladia/fuel-service/internal/http/middleware"
	"github.com/baladia/fuel-service/internal/service"
)

func (h *Handler) listFuelLogs(c *gin.Context) {
	var q service.FuelLogListQuery
	var err error
	if q.VehicleOID, err = queryInt64(c, "veh_oid"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.GeneratorOID, err = queryInt64(c, "generator_oid"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.StationOID, err = queryInt64(c, "station_oid"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.GasType, err = queryInt64(c, "gas_type"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.FuelYear, err = queryInt(c, "fuel_year"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.StatusOID, err = queryInt64(c, "status_oid"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.DateFrom, err = queryDate(c, "date_from"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.DateTo, err = queryDate(c, "date_to"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.MinGallons, err = queryFloat(c, "min_quantity"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	q.Page, q.PageSize = paging(c)

	page, err := h.fuelLogs.List(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, page)
}

func (h *Handler) getFuelLog(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	log, err := h.fuelLogs.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, log)
}

type fuelLogRequest struct {
	VehicleOID   *int64   `json:"veh_oid"`
	GeneratorOID *int64   `json:"generator_oid"`
	FillUpDate   *string  `json:"fill_up_date"`
	Gallons      *float64 `json:"gallons"`
	Odometer     *float64 `json:"odometer"`
	StationOID   *int64   `json:"station_oid"`
	GasType      *int64   `json:"gas_type"`
	FuelYear     *int     `json:"fuel_year"`
	StatusOID    *int64   `json:"status_oid"`
	Note         *string  `json:"note"`
}

func (req *fuelLogRequest) fillUpDate() (*time.Time, error) {
	if req.FillUpDate == nil || *req.FillUpDate == "" {
		return nil, nil
	}
	parsed, err := parseDate(*req.FillUpDate)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func (h *Handler) createFuelLog(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondBadRequest(c, "missing principal")
		return
	}

	var req fuelLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	fillUpDate, err := req.fillUpDate()
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	in := service.FuelLogCreateInput{
		VehicleOID:   req.VehicleOID,
		GeneratorOID: req.GeneratorOID,
		Gallons:      req.Gallons,
		Odometer:     req.Odometer,
		StationOID:   req.StationOID,
		GasType:      req.GasType,
		FuelYear:     req.FuelYear,
		StatusOID:    req.StatusOID,
		Note:         req.Note,
	}
	if fillUpDate != nil {
		in.FillUpDate = *fillUpDate
	}

	log, err := h.fuelLogs.Create(c.Request.Context(), principal, in)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondCreated(c, log, "fuel log created")
}

func (h *Handler) updateFuelLog(c *gin.Context) {
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

	var req fuelLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	fillUpDate, err := req.fillUpDate()
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	log, err := h.fuelLogs.Update(c.Request.Context(), principal, id, service.FuelLogUpdateInput{
		VehicleOID:   req.VehicleOID,
		GeneratorOID: req.GeneratorOID,
		FillUpDate:   fillUpDate,
		Gallons:      req.Gallons,
		Odometer:     req.Odometer,
		StationOID:   req.StationOID,
		GasType:      req.GasType,
		FuelYear:     req.FuelYear,
		StatusOID:    req.StatusOID,
		Note:         req.Note,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, log)
}

func (h *Handler) deleteFuelLog(c *gin.Context) {
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
	if err := h.fuelLogs.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	respondMessage(c, "fuel log deleted")
}
