package http

import (
	"github.com/gin-gonic/gin"

	"github.com/baladia/fuel-service/internal/http/middleware"
	"github.com/baladia/fuel-service/internal/service"
)

func (h *Handler) listGasBills(c *gin.Context) {
	var q service.GasBillListQuery
	var err error
	if q.GasStationOID, err = queryInt64(c, "gas_station_oid"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.EnteryUserOID, err = queryInt64(c, "entery_user_oid"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.FuelTypeOID, err = queryInt64(c, "fuel_type_oid"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.BillTypeOID, err = queryInt64(c, "bill_type_oid"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.StatusOID, err = queryInt64(c, "status_oid"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if q.BillNum, err = queryInt64(c, "bill_num"); err != nil {
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

	page, err := h.gasBills.List(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, page)
}

func (h *Handler) getGasBill(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	bill, err := h.gasBills.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, bill)
}

type gasBillRequest struct {
	GasStationOID *int64   `json:"gas_station_oid"`
	FuelTypeOID   *int64   `json:"fuel_type_oid"`
	BillTypeOID   *int64   `json:"bill_type_oid"`
	Quantity      *float64 `json:"quantity"`
	Price         *float64 `json:"price"`
	BillNum       *int64   `json:"bill_num"`
	BillDate      *string  `json:"bill_date"`
	StatusOID     *int64   `json:"status_oid"`
	DonorNameOID  *int64   `json:"donor_name_oid"`
	Notes         *string  `json:"notes"`
}

func (h *Handler) createGasBill(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondBadRequest(c, "missing principal")
		return
	}

	var req gasBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	in := service.GasBillCreateInput{
		Quantity:     req.Quantity,
		Price:        req.Price,
		BillNum:      req.BillNum,
		StatusOID:    req.StatusOID,
		DonorNameOID: req.DonorNameOID,
		Notes:        req.Notes,
	}
	if req.GasStationOID != nil {
		in.GasStationOID = *req.GasStationOID
	}
	if req.FuelTypeOID != nil {
		in.FuelTypeOID = *req.FuelTypeOID
	}
	if req.BillTypeOID != nil {
		in.BillTypeOID = *req.BillTypeOID
	}
	if req.BillDate != nil && *req.BillDate != "" {
		parsed, err := parseDate(*req.BillDate)
		if err != nil {
			respondBadRequest(c, err.Error())
			return
		}
		in.BillDate = &parsed
	}

	bill, err := h.gasBills.Create(c.Request.Context(), principal, in)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondCreated(c, bill, "invoice created")
}

func (h *Handler) updateGasBill(c *gin.Context) {
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

	var req gasBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	in := service.GasBillUpdateInput{
		GasStationOID: req.GasStationOID,
		FuelTypeOID:   req.FuelTypeOID,
		BillTypeOID:   req.BillTypeOID,
		Quantity:      req.Quantity,
		Price:         req.Price,
		BillNum:       req.BillNum,
		StatusOID:     req.StatusOID,
		DonorNameOID:  req.DonorNameOID,
		Notes:         req.Notes,
	}
	if req.BillDate != nil && *req.BillDate != "" {
		parsed, err := parseDate(*req.BillDate)
		if err != nil {
			respondBadRequest(c, err.Error())
			return
		}
		in.BillDate = &parsed
	}

	bill, err := h.gasBills.Update(c.Request.Context(), principal, id, in)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, bill)
}

func (h *Handler) deleteGasBill(c *gin.Context) {
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
	if err := h.gasBills.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	respondMessage(c, "invoice deleted")
}

func (h *Handler) gasBillStats(c *gin.Context) {
	stats, err := h.gasBills.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, stats)
}
