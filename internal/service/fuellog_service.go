package service

import (
	"context"
	"time"

	"github.com/baladia/fuel-service/internal/constants"
	"github.com/baladia/fuel-service/internal/model"
	"github.com/baladia/fuel-service/internal/repository"
)

type FuelLogService struct {
	repo     *repository.FuelLogRepository
	resolver *constants.Resolver
	lookups  *repository.LookupRepository
}

func NewFuelLogService(repo *repository.FuelLogRepository, resolver *constants.Resolver, lookups *repository.LookupRepository) *FuelLogService {
	return &FuelLogService{repo: repo, resolver: resolver, lookups: lookups}
}

type FuelLogListQuery struct {
	VehicleOID   *int64
	GeneratorOID *int64
	StationOID   *int64
	GasType      *int64
	FuelYear     *int
	StatusOID    *int64
	DateFrom     *time.Time
	DateTo       *time.Time
	MinGallons   *float64
	Page         int
	PageSize     int
}

type FuelLogCreateInput struct {
	VehicleOID   *int64
	GeneratorOID *int64
	FillUpDate   time.Time
	Gallons      *float64
	Odometer     *float64
	StationOID   *int64
	GasType      *int64
	FuelYear     *int
	StatusOID    *int64
	Note         *string
}

type FuelLogUpdateInput struct {
	VehicleOID   *int64
	GeneratorOID *int64
	FillUpDate   *time.Time
	Gallons      *float64
	Odometer     *float64
	StationOID   *int64
	GasType      *int64
	FuelYear     *int
	StatusOID    *int64
	Note         *string
}

func (s *FuelLogService) List(ctx context.Context, q FuelLogListQuery) (*repository.Page[model.FuelLog], error) {
	crit := repository.Criteria{}
	if q.VehicleOID != nil {
		crit = crit.Equal("veh_oid", *q.VehicleOID)
	}
	if q.GeneratorOID != nil {
		crit = crit.Equal("generator_oid", *q.GeneratorOID)
	}
	if q.StationOID != nil {
		crit = crit.Equal("station_oid", *q.StationOID)
	}
	if q.GasType != nil {
		crit = crit.Equal("gas_type", *q.GasType)
	}
	if q.FuelYear != nil {
		crit = crit.Equal("fuel_year", *q.FuelYear)
	}
	if q.StatusOID != nil {
		crit = crit.Equal("status_oid", *q.StatusOID)
	}
	crit = crit.Between("fill_up_date", q.DateFrom, q.DateTo)
	if q.MinGallons != nil {
		crit = crit.AtLeast("gallons", *q.MinGallons)
	}

	page, err := s.repo.List(ctx, crit, q.Page, q.PageSize)
	if err != nil {
		return nil, fromStore(err)
	}
	if err := s.Enrich(ctx, page.Rows); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *FuelLogService) Get(ctx context.Context, id int64) (*model.FuelLog, error) {
	log, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	rows := []model.FuelLog{*log}
	if err := s.Enrich(ctx, rows); err != nil {
		return nil, err
	}
	return &rows[0], nil
}

func (s *FuelLogService) Create(ctx context.Context, p model.Principal, in FuelLogCreateInput) (*model.FuelLog, error) {
	if err := guardWrite(p); err != nil {
		return nil, err
	}
	if err := validateOwner(in.VehicleOID, in.GeneratorOID); err != nil {
		return nil, err
	}
	if in.FillUpDate.IsZero() {
		return nil, invalid("fill_up_date is required")
	}
	if in.Gallons == nil {
		return nil, invalid("gallons is required")
	}
	if *in.Gallons < 0 {
		return nil, invalid("gallons cannot be negative")
	}

	now := nowUTC()
	entryUser := p.ID
	log := &model.FuelLog{
		VehicleOID:   in.VehicleOID,
		GeneratorOID: in.GeneratorOID,
		FillUpDate:   in.FillUpDate,
		Gallons:      *in.Gallons,
		Odometer:     in.Odometer,
		StationOID:   in.StationOID,
		GasType:      in.GasType,
		FuelYear:     in.FuelYear,
		StatusOID:    in.StatusOID,
		Note:         in.Note,
		EntryUser:    &entryUser,
		EntryDate:    &now,
	}
	if err := s.repo.Create(ctx, log); err != nil {
		return nil, fromStore(err)
	}
	return log, nil
}

func (s *FuelLogService) Update(ctx context.Context, p model.Principal, id int64, in FuelLogUpdateInput) (*model.FuelLog, error) {
	if err := guardWrite(p); err != nil {
		return nil, err
	}
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}

	// The exactly-one-owner invariant must survive partial updates: merge
	// the incoming owner fields over the stored ones before checking.
	vehicleOID := existing.VehicleOID
	generatorOID := existing.GeneratorOID
	if in.VehicleOID != nil {
		vehicleOID = normalizeOwner(in.VehicleOID)
	}
	if in.GeneratorOID != nil {
		generatorOID = normalizeOwner(in.GeneratorOID)
	}
	if err := validateOwner(vehicleOID, generatorOID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.VehicleOID != nil {
		fields["veh_oid"] = vehicleOID
	}
	if in.GeneratorOID != nil {
		fields["generator_oid"] = generatorOID
	}
	if in.Gallons != nil {
		if *in.Gallons < 0 {
			return nil, invalid("gallons cannot be negative")
		}
		fields["gallons"] = *in.Gallons
	}
	setIfPresent(fields, "fill_up_date", in.FillUpDate)
	setIfPresent(fields, "odometer", in.Odometer)
	setIfPresent(fields, "station_oid", in.StationOID)
	setIfPresent(fields, "gas_type", in.GasType)
	setIfPresent(fields, "fuel_year", in.FuelYear)
	setIfPresent(fields, "status_oid", in.StatusOID)
	setIfPresent(fields, "note", in.Note)

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fromStore(err)
	}
	return s.Get(ctx, id)
}

func (s *FuelLogService) Delete(ctx context.Context, p model.Principal, id int64) error {
	if err := guardWrite(p); err != nil {
		return err
	}
	return fromStore(s.repo.Delete(ctx, id))
}

// validateOwner enforces that a fuel log belongs to exactly one of a vehicle
// or a generator.
func validateOwner(vehicleOID, generatorOID *int64) error {
	hasVehicle := vehicleOID != nil && *vehicleOID != 0
	hasGenerator := generatorOID != nil && *generatorOID != 0
	if hasVehicle == hasGenerator {
		return invalid("exactly one of veh_oid or generator_oid must be set")
	}
	return nil
}

// normalizeOwner maps an explicit zero to nil so clients can clear the other
// owner field when switching a log between a vehicle and a generator.
func normalizeOwner(id *int64) *int64 {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

// Enrich attaches labels for a batch of fuel logs. Exported because vehicle
// and generator sub-resources reuse it for their own log listings.
func (s *FuelLogService) Enrich(ctx context.Context, logs []model.FuelLog) error {
	if len(logs) == 0 {
		return nil
	}

	gasIDs := make([]int64, 0, len(logs))
	statusIDs := make([]int64, 0, len(logs))
	stationIDs := make([]int64, 0, len(logs))
	vehicleIDs := make([]int64, 0, len(logs))
	userIDs := make([]int64, 0, len(logs))
	for i := range logs {
		l := &logs[i]
		if l.GasType != nil && *l.GasType != 0 {
			gasIDs = append(gasIDs, *l.GasType)
		}
		if l.StatusOID != nil && *l.StatusOID != 0 {
			statusIDs = append(statusIDs, *l.StatusOID)
		}
		if l.StationOID != nil && *l.StationOID != 0 {
			stationIDs = append(stationIDs, *l.StationOID)
		}
		if l.VehicleOID != nil && *l.VehicleOID != 0 {
			vehicleIDs = append(vehicleIDs, *l.VehicleOID)
		}
		if l.EntryUser != nil && *l.EntryUser != 0 {
			userIDs = append(userIDs, *l.EntryUser)
		}
	}

	gasNames, err := s.resolver.Labels(ctx, constants.TagFuelType, gasIDs)
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
	vehicleNums, err := s.lookups.VehicleNumbers(ctx, vehicleIDs)
	if err != nil {
		return fromStore(err)
	}
	userNames, err := s.lookups.UserFullNames(ctx, userIDs)
	if err != nil {
		return fromStore(err)
	}

	for i := range logs {
		l := &logs[i]
		if l.GasType != nil {
			if name, ok := gasNames[*l.GasType]; ok {
				l.GasTypeName = &name
			}
		}
		if l.StatusOID != nil {
			if name, ok := statusNames[*l.StatusOID]; ok {
				l.StatusName = &name
			}
		}
		if l.StationOID != nil {
			if name, ok := stationNames[*l.StationOID]; ok {
				l.StationName = &name
			}
		}
		if l.VehicleOID != nil {
			if num, ok := vehicleNums[*l.VehicleOID]; ok {
				l.VehicleNum = &num
			}
		}
		if l.EntryUser != nil {
			if name, ok := userNames[*l.EntryUser]; ok {
				l.EntryUserName = &name
			}
		}
	}
	return nil
}
