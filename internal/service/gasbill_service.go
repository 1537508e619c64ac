package service

import (
	"context"
	"time"

	"github.com/baladia/fuel-service/internal/constants"
	"github.com/baladia/fuel-service/internal/model"
	"github.com/baladia/fuel-service/internal/repository"
)

type GasBillService struct {
	repo     *repository.GasBillRepository
	resolver *constants.Resolver
	lookups  *repository.LookupRepository
}

func NewGasBillService(repo *repository.GasBillRepository, resolver *constants.Resolver, lookups *repository.LookupRepository) *GasBillService {
	return &GasBillService{repo: repo, resolver: resolver, lookups: lookups}
}

type GasBillListQuery struct {
	GasStationOID *int64
	EnteryUserOID *int64
	FuelTypeOID   *int64
	BillTypeOID   *int64
	StatusOID     *int64
	BillNum       *int64
	DateFrom      *time.Time
	DateTo        *time.Time
	Page          int
	PageSize      int
}

type GasBillCreateInput struct {
	GasStationOID int64
	FuelTypeOID   int64
	BillTypeOID   int64
	Quantity      *float64
	Price         *float64
	BillNum       *int64
	BillDate      *time.Time
	StatusOID     *int64
	DonorNameOID  *int64
	Notes         *string
}

type GasBillUpdateInput struct {
	GasStationOID *int64
	FuelTypeOID   *int64
	BillTypeOID   *int64
	Quantity      *float64
	Price         *float64
	BillNum       *int64
	BillDate      *time.Time
	StatusOID     *int64
	DonorNameOID  *int64
	Notes         *string
}

func (s *GasBillService) List(ctx context.Context, q GasBillListQuery) (*repository.Page[model.GasBill], error) {
	crit := repository.Criteria{}
	if q.GasStationOID != nil {
		crit = crit.Equal("gas_station_oid", *q.GasStationOID)
	}
	if q.EnteryUserOID != nil {
		crit = crit.Equal("entery_user_oid", *q.EnteryUserOID)
	}
	if q.FuelTypeOID != nil {
		crit = crit.Equal("fuel_type_oid", *q.FuelTypeOID)
	}
	if q.BillTypeOID != nil {
		crit = crit.Equal("bill_type_oid", *q.BillTypeOID)
	}
	if q.StatusOID != nil {
		crit = crit.Equal("status_oid", *q.StatusOID)
	}
	if q.BillNum != nil {
		crit = crit.Equal("bill_num", *q.BillNum)
	}
	crit = crit.Between("bill_date", q.DateFrom, q.DateTo)

	page, err := s.repo.List(ctx, crit, q.Page, q.PageSize)
	if err != nil {
		return nil, fromStore(err)
	}
	if err := s.enrich(ctx, page.Rows); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *GasBillService) Get(ctx context.Context, id int64) (*model.GasBill, error) {
	bill, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	rows := []model.GasBill{*bill}
	if err := s.enrich(ctx, rows); err != nil {
		return nil, err
	}
	return &rows[0], nil
}

func (s *GasBillService) Create(ctx context.Context, p model.Principal, in GasBillCreateInput) (*model.GasBill, error) {
	if err := guardWrite(p); err != nil {
		return nil, err
	}
	if in.GasStationOID == 0 {
		return nil, invalid("gas_station_oid is required")
	}
	if in.FuelTypeOID == 0 {
		return nil, invalid("fuel_type_oid is required")
	}
	if in.BillTypeOID == 0 {
		return nil, invalid("bill_type_oid is required")
	}
	if in.Quantity == nil {
		return nil, invalid("quantity is required")
	}
	if *in.Quantity < 0 {
		return nil, invalid("quantity cannot be negative")
	}
	if in.Price != nil && *in.Price < 0 {
		return nil, invalid("price cannot be negative")
	}

	now := nowUTC()
	entryUser := p.ID
	bill := &model.GasBill{
		GasStationOID: in.GasStationOID,
		FuelTypeOID:   in.FuelTypeOID,
		BillTypeOID:   in.BillTypeOID,
		Quantity:      *in.Quantity,
		Price:         in.Price,
		BillNum:       in.BillNum,
		BillDate:      in.BillDate,
		StatusOID:     in.StatusOID,
		DonorNameOID:  in.DonorNameOID,
		Notes:         in.Notes,
		EnteryUserOID: &entryUser,
		EntryDate:     &now,
	}
	if err := s.repo.Create(ctx, bill); err != nil {
		return nil, fromStore(err)
	}
	bill.Total = billTotal(bill)
	return bill, nil
}

func (s *GasBillService) Update(ctx context.Context, p model.Principal, id int64, in GasBillUpdateInput) (*model.GasBill, error) {
	if err := guardWrite(p); err != nil {
		return nil, err
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, fromStore(err)
	}

	fields := map[string]interface{}{}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, invalid("quantity cannot be negative")
		}
		fields["quantity"] = *in.Quantity
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, invalid("price cannot be negative")
		}
		fields["price"] = *in.Price
	}
	setIfPresent(fields, "gas_station_oid", in.GasStationOID)
	setIfPresent(fields, "fuel_type_oid", in.FuelTypeOID)
	setIfPresent(fields, "bill_type_oid", in.BillTypeOID)
	setIfPresent(fields, "bill_num", in.BillNum)
	setIfPresent(fields, "bill_date", in.BillDate)
	setIfPresent(fields, "status_oid", in.StatusOID)
	setIfPresent(fields, "donor_name_oid", in.DonorNameOID)
	setIfPresent(fields, "notes", in.Notes)

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fromStore(err)
	}
	return s.Get(ctx, id)
}

func (s *GasBillService) Delete(ctx context.Context, p model.Principal, id int64) error {
	if err := guardWrite(p); err != nil {
		return err
	}
	return fromStore(s.repo.Delete(ctx, id))
}

func (s *GasBillService) Stats(ctx context.Context) (*model.GasBillStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fromStore(err)
	}
	return stats, nil
}

// billTotal derives the invoice value at read time; it is never stored.
func billTotal(bill *model.GasBill) float64 {
	if bill.Price == nil {
		return 0
	}
	return bill.Quantity * *bill.Price
}

func (s *GasBillService) enrich(ctx context.Context, bills []model.GasBill) error {
	if len(bills) == 0 {
		return nil
	}

	fuelIDs := make([]int64, 0, len(bills))
	billTypeIDs := make([]int64, 0, len(bills))
	statusIDs := make([]int64, 0, len(bills))
	stationIDs := make([]int64, 0, len(bills))
	userIDs := make([]int64, 0, len(bills))
	for i := range bills {
		b := &bills[i]
		fuelIDs = append(fuelIDs, b.FuelTypeOID)
		billTypeIDs = append(billTypeIDs, b.BillTypeOID)
		if b.StatusOID != nil && *b.StatusOID != 0 {
			statusIDs = append(statusIDs, *b.StatusOID)
		}
		stationIDs = append(stationIDs, b.GasStationOID)
		if b.EnteryUserOID != nil && *b.EnteryUserOID != 0 {
			userIDs = append(userIDs, *b.EnteryUserOID)
		}
	}

	fuelNames, err := s.resolver.Labels(ctx, constants.TagFuelType, fuelIDs)
	if err != nil {
		return fromStore(err)
	}
	billTypeNames, err := s.resolver.Labels(ctx, constants.TagBillType, billTypeIDs)
	if err != nil {
		return fromStore(err)
	}
	statusNames, err := s.resolver.Labels(ctx, constants.TagVehicleStatus, statusIDs)
	if err != nil {
		return fromStore(err)
	}
	stationNames, err := s.lookups.StationNames(ctx, stationIDs)
	if err != nil {
		return fromStore(err)
	}
	userNames, err := s.lookups.UserFullNames(ctx, userIDs)
	if err != nil {
		return fromStore(err)
	}

	for i := range bills {
		b := &bills[i]
		b.Total = billTotal(b)
		if name, ok := fuelNames[b.FuelTypeOID]; ok {
			b.FuelTypeName = &name
		}
		if name, ok := billTypeNames[b.BillTypeOID]; ok {
			b.BillTypeName = &name
		}
		if b.StatusOID != nil {
			if name, ok := statusNames[*b.StatusOID]; ok {
				b.StatusName = &name
			}
		}
		if name, ok := stationNames[b.GasStationOID]; ok {
			b.StationName = &name
		}
		if b.EnteryUserOID != nil {
			if name, ok := userNames[*b.EnteryUserOID]; ok {
				b.EntryUserName = &name
			}
		}
	}
	return nil
}
