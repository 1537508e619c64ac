package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/baladia/fuel-service/internal/http/middleware"
	"github.com/baladia/fuel-service/internal/service"
)

func (h *Handler) listInventory(c *gin.Context) {
	var q service.InventoryListQuery
	var err error
	if q.IsActive, err = queryInt(c, "is_active"); err != nil {
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
	if q.MinQuantity, err = queryFloat(c, "min_quantity"); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	q.Page, q.PageSize = paging(c)

	page, err := h.inventory.List(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, page)
}

func (h *Handler) getInventory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	snapshot, err := h.inventory.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, snapshot)
}

func (h *Handler) currentInventory(c *gin.Context) {
	snapshot, err := h.inventory.Current(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, snapshot)
}

func (h *Handler) inventoryHistory(c *gin.Context) {
	from, err := queryDate(c, "date_from")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	to, err := queryDate(c, "date_to")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	snapshots, err := h.inventory.History(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, snapshots)
}

type inventoryRequest struct {
	EntryDate          *string  `json:"entry_date"`
	GasQuantity        *float64 `json:"gas_quantity"`
	SolarQuantity      *float64 `json:"solar_quantity"`
	EgyptSolarQuantity *float64 `json:"egypt_solar_quantity"`
	GasBills           *float64 `json:"gas_bills"`
	FillUpDate         *string  `json:"fill_up_date"`
	PrvOID             *int64   `json:"prv_oid"`
	PrvQty             *float64 `json:"prv_qty"`
	Note               *string  `json:"note"`
	IsActive           *int     `json:"is_active"`
}

func (req *inventoryRequest) toInput() (service.InventoryCreateInput, error) {
	in := service.InventoryCreateInput{
		GasQuantity:        req.GasQuantity,
		SolarQuantity:      req.SolarQuantity,
		EgyptSolarQuantity: req.EgyptSolarQuantity,
		GasBills:           req.GasBills,
		PrvOID:             req.PrvOID,
		PrvQty:             req.PrvQty,
		Note:               req.Note,
		IsActive:           req.IsActive,
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
	if in.EntryDate, err = parse(req.EntryDate); err != nil {
		return in, err
	}
	if in.FillUpDate, err = parse(req.FillUpDate); err != nil {
		return in, err
	}
	return in, nil
}

func (h *Handler) createInventory(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondBadRequest(c, "missing principal")
		return
	}

	var req inventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	in, err := req.toInput()
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	snapshot, err := h.inventory.Create(c.Request.Context(), principal, in)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondCreated(c, snapshot, "inventory entry created")
}

func (h *Handler) updateInventory(c *gin.Context) {
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

	var req inventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	in, err := req.toInput()
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	snapshot, err := h.inventory.Update(c.Request.Context(), principal, id, in)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, snapshot)
}

func (h *Handler) deleteInventory(c *gin.Context) {
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
	if err := h.inventory.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	respondMessage(c, "inventory entry deleted")
}

type inventoryTopUpRequest struct {
	GasQuantity   *float64 `json:"gas_quantity"`
	SolarQuantity *float64 `json:"solar_quantity"`
	Note          *string  `json:"note"`
}

func (h *Handler) topUpInventory(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondBadRequest(c, "missing principal")
		return
	}

	var req inventoryTopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	snapshot, err := h.inventory.TopUp(c.Request.Context(), principal, service.InventoryTopUpInput{
		GasQuantity:   req.GasQuantity,
		SolarQuantity: req.SolarQuantity,
		Note:          req.Note,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondCreated(c, snapshot, "inventory updated")
}

func (h *Handler) inventoryStats(c *gin.Context) {
	stats, err := h.inventory.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, stats)
}
