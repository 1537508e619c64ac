package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/baladia/fuel-service/internal/http/middleware"
	"github.com/baladia/fuel-service/internal/service"
)

func (h *Handler) listVehicles(c *gin.Context) {
	q := service.VehicleListQuery{Search: c.Query("search")}
	var err error
	if q.StatusOID, err = queryInt64(c, "status_oid"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.FuelTypeOID, err = queryInt64(c, "fuel_type_oid"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.AssignedTo, err = queryInt64(c, "assigned_to"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	q.Page, q.PageSize = paging(c)

	page, err := h.vehicles.List(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, page)
}

func (h *Handler) getVehicle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	vehicle, err := h.vehicles.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, vehicle)
}

type vehicleRequest struct {
	VehicleNum     *string  `json:"vehicle_num"`
	Model          *string  `json:"model"`
	ModelYear      *int     `json:"model_year"`
	PlateNum       *string  `json:"plate_num"`
	VinNum         *string  `json:"vin_num"`
	FuelTypeOID    *int64   `json:"fuel_type_oid"`
	TypeOID        *int64   `json:"type_oid"`
	UsageTypeOID   *int64   `json:"usage_type_oid"`
	VendorOID      *int64   `json:"vendor_oid"`
	StatusOID      *int64   `json:"status_oid"`
	AssignedTo     *int64   `json:"assigned_to"`
	EngineCapacity *float64 `json:"engine_capacity"`
	TankCapacity   *float64 `json:"tank_capacity"`
	Odometer       *float64 `json:"odometer"`
	GPSNum         *int64   `json:"gps_num"`
	Note           *string  `json:"note"`
}

func (h *Handler) createVehicle(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondBadRequest(c, "missing principal")
		return
	}

	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	in := service.VehicleCreateInput{
		Model:          req.Model,
		ModelYear:      req.ModelYear,
		PlateNum:       req.PlateNum,
		VinNum:         req.VinNum,
		UsageTypeOID:   req.UsageTypeOID,
		VendorOID:      req.VendorOID,
		StatusOID:      req.StatusOID,
		AssignedTo:     req.AssignedTo,
		EngineCapacity: req.EngineCapacity,
		TankCapacity:   req.TankCapacity,
		Odometer:       req.Odometer,
		GPSNum:         req.GPSNum,
		Note:           req.Note,
	}
	if req.VehicleNum != nil {
		in.VehicleNum = *req.VehicleNum
	}
	if req.FuelTypeOID != nil {
		in.FuelTypeOID = *req.FuelTypeOID
	}
	if req.TypeOID != nil {
		in.TypeOID = *req.TypeOID
	}

	vehicle, err := h.vehicles.Create(c.Request.Context(), principal, in)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondCreated(c, vehicle, "vehicle created")
}

func (h *Handler) updateVehicle(c *gin.Context) {
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

	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	vehicle, err := h.vehicles.Update(c.Request.Context(), principal, id, service.VehicleUpdateInput{
		VehicleNum:     req.VehicleNum,
		Model:          req.Model,
		ModelYear:      req.ModelYear,
		PlateNum:       req.PlateNum,
		VinNum:         req.VinNum,
		FuelTypeOID:    req.FuelTypeOID,
		TypeOID:        req.TypeOID,
		UsageTypeOID:   req.UsageTypeOID,
		VendorOID:      req.VendorOID,
		StatusOID:      req.StatusOID,
		AssignedTo:     req.AssignedTo,
		EngineCapacity: req.EngineCapacity,
		TankCapacity:   req.TankCapacity,
		Odometer:       req.Odometer,
		GPSNum:         req.GPSNum,
		Note:           req.Note,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, vehicle)
}

func (h *Handler) deleteVehicle(c *gin.Context) {
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
	if err := h.vehicles.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	respondMessage(c, "vehicle deleted")
}

func (h *Handler) vehicleFuelLogs(c *gin.Context) {
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
	logs, err := h.vehicles.FuelLogs(c.Request.Context(), id, limit)
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

func (h *Handler) vehicleFuelStats(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	stats, err := h.vehicles.FuelStats(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, stats)
}

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) exportVehiclesExcel(c *gin.Context) {
	vehicles, err := h.vehicles.Roster(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	content, err := h.excel.VehicleRoster(vehicles)
	if err != nil {
		h.handleError(c, err)
		return
	}
	fileName := "vehicles_" + time.Now().UTC().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, excelContentType, content)
}

func (h *Handler) exportVehiclesPDF(c *gin.Context) {
	vehicles, err := h.vehicles.Roster(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	content, err := h.pdf.VehicleRoster(vehicles)
	if err != nil {
		h.handleError(c, err)
		return
	}
	fileName := "vehicles_" + time.Now().UTC().Format("20060102") + ".pdf"
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, "application/pdf", content)
}
