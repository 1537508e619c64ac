package service

import (
	"context"
	"errors"
	"time"

	"github.com/baladia/fuel-service/internal/model"
	"github.com/baladia/fuel-service/internal/repository"
)

type InventoryService struct {
	repo *repository.InventoryRepository
}

func NewInventoryService(repo *repository.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

type InventoryListQuery struct {
	IsActive    *int
	DateFrom    *time.Time
	DateTo      *time.Time
	MinQuantity *float64
	Page        int
	PageSize    int
}

type InventoryCreateInput struct {
	EntryDate          *time.Time
	GasQuantity        *float64
	SolarQuantity      *float64
	EgyptSolarQuantity *float64
	GasBills           *float64
	FillUpDate         *time.Time
	PrvOID             *int64
	PrvQty             *float64
	Note               *string
	IsActive           *int
}

type InventoryUpdateInput = InventoryCreateInput

// InventoryTopUpInput backs POST /inventory/update: a new active snapshot
// stamped with the current time.
type InventoryTopUpInput struct {
	GasQuantity   *float64
	SolarQuantity *float64
	Note          *string
}

func (s *InventoryService) List(ctx context.Context, q InventoryListQuery) (*repository.Page[model.InventorySnapshot], error) {
	crit := repository.Criteria{}
	if q.IsActive != nil {
		crit = crit.Equal("is_active", *q.IsActive)
	}
	crit = crit.Between("entry_date", q.DateFrom, q.DateTo)
	if q.MinQuantity != nil {
		crit = crit.AtLeast("gas_quantity", *q.MinQuantity)
	}

	page, err := s.repo.List(ctx, crit, q.Page, q.PageSize)
	if err != nil {
		return nil, fromStore(err)
	}
	return page, nil
}

func (s *InventoryService) Get(ctx context.Context, id int64) (*model.InventorySnapshot, error) {
	snapshot, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return snapshot, nil
}

// Current returns the newest active snapshot, or nil when the store has no
// readings yet; an empty store is not an error.
func (s *InventoryService) Current(ctx context.Context) (*model.InventorySnapshot, error) {
	snapshot, err := s.repo.Current(ctx)
	if err != nil {
		if errors.Is(fromStore(err), ErrNotFound) {
			return nil, nil
		}
		return nil, fromStore(err)
	}
	return snapshot, nil
}

func (s *InventoryService) History(ctx context.Context, from, to *time.Time) ([]model.InventorySnapshot, error) {
	crit := repository.Criteria{}.Between("entry_date", from, to)
	snapshots, err := s.repo.History(ctx, crit)
	if err != nil {
		return nil, fromStore(err)
	}
	return snapshots, nil
}

func (s *InventoryService) Create(ctx context.Context, p model.Principal, in InventoryCreateInput) (*model.InventorySnapshot, error) {
	if err := guardWrite(p); err != nil {
		return nil, err
	}
	if err := validateQuantities(in); err != nil {
		return nil, err
	}

	isActive := 1
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	snapshot := &model.InventorySnapshot{
		EntryDate:          in.EntryDate,
		GasQuantity:        in.GasQuantity,
		SolarQuantity:      in.SolarQuantity,
		EgyptSolarQuantity: in.EgyptSolarQuantity,
		GasBills:           in.GasBills,
		FillUpDate:         in.FillUpDate,
		PrvOID:             in.PrvOID,
		PrvQty:             in.PrvQty,
		Note:               in.Note,
		IsActive:           isActive,
	}
	if err := s.repo.Create(ctx, snapshot); err != nil {
		return nil, fromStore(err)
	}
	return snapshot, nil
}

func (s *InventoryService) Update(ctx context.Context, p model.Principal, id int64, in InventoryUpdateInput) (*model.InventorySnapshot, error) {
	if err := guardWrite(p); err != nil {
		return nil, err
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, fromStore(err)
	}
	if err := validateQuantities(in); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	setIfPresent(fields, "entry_date", in.EntryDate)
	setIfPresent(fields, "gas_quantity", in.GasQuantity)
	setIfPresent(fields, "solar_quantity", in.SolarQuantity)
	setIfPresent(fields, "egypt_solar_quantity", in.EgyptSolarQuantity)
	setIfPresent(fields, "gas_bills", in.GasBills)
	setIfPresent(fields, "fill_up_date", in.FillUpDate)
	setIfPresent(fields, "prv_oid", in.PrvOID)
	setIfPresent(fields, "prv_qty", in.PrvQty)
	setIfPresent(fields, "note", in.Note)
	setIfPresent(fields, "is_active", in.IsActive)

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fromStore(err)
	}
	return s.Get(ctx, id)
}

func (s *InventoryService) Delete(ctx context.Context, p model.Principal, id int64) error {
	if err := guardWrite(p); err != nil {
		return err
	}
	return fromStore(s.repo.Delete(ctx, id))
}

// TopUp records a new active snapshot stamped now.
func (s *InventoryService) TopUp(ctx context.Context, p model.Principal, in InventoryTopUpInput) (*model.InventorySnapshot, error) {
	if err := guardWrite(p); err != nil {
		return nil, err
	}
	if in.GasQuantity == nil {
		return nil, invalid("gas_quantity is required")
	}
	if *in.GasQuantity < 0 {
		return nil, invalid("gas_quantity cannot be negative")
	}
	if in.SolarQuantity != nil && *in.SolarQuantity < 0 {
		return nil, invalid("solar_quantity cannot be negative")
	}

	now := nowUTC()
	snapshot := &model.InventorySnapshot{
		EntryDate:     &now,
		GasQuantity:   in.GasQuantity,
		SolarQuantity: in.SolarQuantity,
		Note:          in.Note,
		IsActive:      1,
	}
	if err := s.repo.Create(ctx, snapshot); err != nil {
		return nil, fromStore(err)
	}
	return snapshot, nil
}

func (s *InventoryService) Stats(ctx context.Context) (*model.InventoryStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fromStore(err)
	}
	return stats, nil
}

func validateQuantities(in InventoryCreateInput) error {
	check := func(name string, value *float64) error {
		if value != nil && *value < 0 {
			return invalid("%s cannot be negative", name)
		}
		return nil
	}
	if err := check("gas_quantity", in.GasQuantity); err != nil {
		return err
	}
	if err := check("solar_quantity", in.SolarQuantity); err != nil {
		return err
	}
	if err := check("egypt_solar_quantity", in.EgyptSolarQuantity); err != nil {
		return err
	}
	if err := check("gas_bills", in.GasBills); err != nil {
		return err
	}
	return check("prv_qty", in.PrvQty)
}
