package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/baladia/fuel-service/internal/http/middleware"
	"github.com/baladia/fuel-service/internal/service"
)

func (h *Handler) listMaintenance(c *gin.Context) {
	var q service.MaintenanceListQuery
	var err error
	if q.VehicleOID, err = queryInt64(c, "vehicle_oid"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.MntcTypeOID, err = queryInt64(c, "mntc_type_oid"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.StatusOID, err = queryInt64(c, "status_oid"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.IsAccidental, err = queryInt(c, "is_accidental"); err != nil {
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
	q.Page, q.PageSize = paging(c)

	page, err := h.maintenance.List(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, page)
}

func (h *Handler) getMaintenance(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	record, err := h.maintenance.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, record)
}

type maintenanceRequest struct {
	VehicleOID     *int64   `json:"vehicle_oid"`
	MntcTypeOID    *int64   `json:"mntc_type_oid"`
	IsAccidental   *int     `json:"is_accidental"`
	CurrentMileage *float64 `json:"current_mileage"`
	MntcDate       *string  `json:"mntc_date"`
	StatusOID      *int64   `json:"status_oid"`
	FinishDate     *string  `json:"finish_date"`
	RepairTime     *int     `json:"repair_time"`
	Note           *string  `json:"note"`
}

func (req *maintenanceRequest) toInput() (service.MaintenanceCreateInput, error) {
	in := service.MaintenanceCreateInput{
		VehicleOID:     req.VehicleOID,
		MntcTypeOID:    req.MntcTypeOID,
		IsAccidental:   req.IsAccidental,
		CurrentMileage: req.CurrentMileage,
		StatusOID:      req.StatusOID,
		RepairTime:     req.RepairTime,
		Note:           req.Note,
	}
	parse := func(raw *string) (*time.Time, error) {
		if raw == nil || *raw == "" {
			return nil, nil
		}
		parsed, err := parseDate(*raw)
		if err != nil {
			return nil, err
		}
		return &parsed, nil
	}
	var err error
	if in.MntcDate, err = parse(req.MntcDate); err != nil {
		return in, err
	}
	if in.FinishDate, err = parse(req.FinishDate); err != nil {
		return in, err
	}
	return in, nil
}

func (h *Handler) createMaintenance(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondBadRequest(c, "missing principal")
		return
	}

	var req maintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	in, err := req.toInput()
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	record, err := h.maintenance.Create(c.Request.Context(), principal, in)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondCreated(c, record, "maintenance record created")
}

func (h *Handler) updateMaintenance(c *gin.Context) {
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

	var req maintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	in, err := req.toInput()
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	record, err := h.maintenance.Update(c.Request.Context(), principal, id, in)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, record)
}

func (h *Handler) deleteMaintenance(c *gin.Context) {
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
	if err := h.maintenance.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	respondMessage(c, "maintenance record deleted")
}
