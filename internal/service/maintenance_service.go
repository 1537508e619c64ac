package service

import (
	"context"
	"time"

	"github.com/baladia/fuel-service/internal/constants"
	"github.com/baladia/fuel-service/internal/model"
	"github.com/baladia/fuel-service/internal/repository"
)

type MaintenanceService struct {
	repo     *repository.MaintenanceRepository
	resolver *constants.Resolver
	lookups  *repository.LookupRepository
}

func NewMaintenanceService(repo *repository.MaintenanceRepository, resolver *constants.Resolver, lookups *repository.LookupRepository) *MaintenanceService {
	return &MaintenanceService{repo: repo, resolver: resolver, lookups: lookups}
}

type MaintenanceListQuery struct {
	VehicleOID   *int64
	MntcTypeOID  *int64
	StatusOID    *int64
	IsAccidental *int
	DateFrom     *time.Time
	DateTo       *time.Time
	Page         int
	PageSize     int
}

type MaintenanceCreateInput struct {
	VehicleOID     *int64
	MntcTypeOID    *int64
	IsAccidental   *int
	CurrentMileage *float64
	MntcDate       *time.Time
	StatusOID      *int64
	FinishDate     *time.Time
	RepairTime     *int
	Note           *string
}

type MaintenanceUpdateInput = MaintenanceCreateInput

func (s *MaintenanceService) List(ctx context.Context, q MaintenanceListQuery) (*repository.Page[model.MaintenanceRecord], error) {
	crit := repository.Criteria{}
	if q.VehicleOID != nil {
		crit = crit.Equal("vehicle_oid", *q.VehicleOID)
	}
	if q.MntcTypeOID != nil {
		crit = crit.Equal("mntc_type_oid", *q.MntcTypeOID)
	}
	if q.StatusOID != nil {
		crit = crit.Equal("status_oid", *q.StatusOID)
	}
	if q.IsAccidental != nil {
		crit = crit.Equal("is_accidental", *q.IsAccidental)
	}
	crit = crit.Between("mntc_date", q.DateFrom, q.DateTo)

	page, err := s.repo.List(ctx, crit, q.Page, q.PageSize)
	if err != nil {
		return nil, fromStore(err)
	}
	if err := s.enrich(ctx, page.Rows); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *MaintenanceService) Get(ctx context.Context, id int64) (*model.MaintenanceRecord, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	rows := []model.MaintenanceRecord{*record}
	if err := s.enrich(ctx, rows); err != nil {
		return nil, err
	}
	return &rows[0], nil
}

func (s *MaintenanceService) Create(ctx context.Context, p model.Principal, in MaintenanceCreateInput) (*model.MaintenanceRecord, error) {
	if err := guardWrite(p); err != nil {
		return nil, err
	}
	if in.VehicleOID == nil || *in.VehicleOID == 0 {
		return nil, invalid("vehicle_oid is required")
	}
	if in.RepairTime != nil && *in.RepairTime < 0 {
		return nil, invalid("repair_time cannot be negative")
	}

	record := &model.MaintenanceRecord{
		VehicleOID:     *in.VehicleOID,
		MntcTypeOID:    in.MntcTypeOID,
		IsAccidental:   in.IsAccidental,
		CurrentMileage: in.CurrentMileage,
		MntcDate:       in.MntcDate,
		StatusOID:      in.StatusOID,
		FinishDate:     in.FinishDate,
		RepairTime:     in.RepairTime,
		Note:           in.Note,
		EntryUser:      &p.ID,
	}
	if record.MntcDate == nil {
		now := nowUTC()
		record.MntcDate = &now
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fromStore(err)
	}
	return s.Get(ctx, record.ID)
}

func (s *MaintenanceService) Update(ctx context.Context, p model.Principal, id int64, in MaintenanceUpdateInput) (*model.MaintenanceRecord, error) {
	if err := guardWrite(p); err != nil {
		return nil, err
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, fromStore(err)
	}
	if in.VehicleOID != nil && *in.VehicleOID == 0 {
		return nil, invalid("vehicle_oid cannot be empty")
	}
	if in.RepairTime != nil && *in.RepairTime < 0 {
		return nil, invalid("repair_time cannot be negative")
	}

	fields := map[string]interface{}{}
	setIfPresent(fields, "vehicle_oid", in.VehicleOID)
	setIfPresent(fields, "mntc_type_oid", in.MntcTypeOID)
	setIfPresent(fields, "is_accidental", in.IsAccidental)
	setIfPresent(fields, "current_mileage", in.CurrentMileage)
	setIfPresent(fields, "mntc_date", in.MntcDate)
	setIfPresent(fields, "status_oid", in.StatusOID)
	setIfPresent(fields, "finish_date", in.FinishDate)
	setIfPresent(fields, "repair_time", in.RepairTime)
	setIfPresent(fields, "note", in.Note)

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fromStore(err)
	}
	return s.Get(ctx, id)
}

func (s *MaintenanceService) Delete(ctx context.Context, p model.Principal, id int64) error {
	if err := guardWrite(p); err != nil {
		return err
	}
	return fromStore(s.repo.Delete(ctx, id))
}

func (s *MaintenanceService) enrich(ctx context.Context, records []model.MaintenanceRecord) error {
	if len(records) == 0 {
		return nil
	}

	typeIDs := make([]int64, 0, len(records))
	statusIDs := make([]int64, 0, len(records))
	vehicleIDs := make([]int64, 0, len(records))
	for i := range records {
		r := &records[i]
		if r.MntcTypeOID != nil && *r.MntcTypeOID != 0 {
			typeIDs = append(typeIDs, *r.MntcTypeOID)
		}
		if r.StatusOID != nil && *r.StatusOID != 0 {
			statusIDs = append(statusIDs, *r.StatusOID)
		}
		if r.VehicleOID != 0 {
			vehicleIDs = append(vehicleIDs, r.VehicleOID)
		}
	}

	types, err := s.resolver.Labels(ctx, constants.TagMntcType, typeIDs)
	if err != nil {
		return fromStore(err)
	}
	statuses, err := s.resolver.Labels(ctx, constants.TagVehicleStatus, statusIDs)
	if err != nil {
		return fromStore(err)
	}
	vehicles, err := s.lookups.VehicleNumbers(ctx, vehicleIDs)
	if err != nil {
		return fromStore(err)
	}

	for i := range records {
		r := &records[i]
		if r.MntcTypeOID != nil {
			if name, ok := types[*r.MntcTypeOID]; ok {
				r.MntcTypeName = &name
			}
		}
		if r.StatusOID != nil {
			if name, ok := statuses[*r.StatusOID]; ok {
				r.StatusName = &name
			}
		}
		if num, ok := vehicles[r.VehicleOID]; ok {
			r.VehicleNum = &num
		}
	}
	return nil
}
