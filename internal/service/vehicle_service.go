package service

import (
	"context"

	"github.com/baladia/fuel-service/internal/constants"
	"github.com/baladia/fuel-service/internal/model"
	"github.com/baladia/fuel-service/internal/repository"
)

type VehicleService struct {
	repo     *repository.VehicleRepository
	resolver *constants.Resolver
	lookups  *repository.LookupRepository
}

func NewVehicleService(repo *repository.VehicleRepository, resolver *constants.Resolver, lookups *repository.LookupRepository) *VehicleService {
	return &VehicleService{repo: repo, resolver: resolver, lookups: lookups}
}

// VehicleListQuery carries the recognized list filters. Unset fields are
// skipped; filters resolve in the fixed order status, fuel type, station,
// search.
type VehicleListQuery struct {
	StatusOID   *int64
	FuelTypeOID *int64
	AssignedTo  *int64
	Search      string
	Page        int
	PageSize    int
}

type VehicleCreateInput struct {
	VehicleNum     string
	Model          *string
	ModelYear      *int
	PlateNum       *string
	VinNum         *string
	FuelTypeOID    int64
	TypeOID        int64
	UsageTypeOID   *int64
	VendorOID      *int64
	StatusOID      *int64
	AssignedTo     *int64
	EngineCapacity *float64
	TankCapacity   *float64
	Odometer       *float64
	GPSNum         *int64
	Note           *string
}

// VehicleUpdateInput has pointer fields throughout: only non-nil fields are
// written, and none are re-required on update.
type VehicleUpdateInput struct {
	VehicleNum     *string
	Model          *string
	ModelYear      *int
	PlateNum       *string
	VinNum         *string
	FuelTypeOID    *int64
	TypeOID        *int64
	UsageTypeOID   *int64
	VendorOID      *int64
	StatusOID      *int64
	AssignedTo     *int64
	EngineCapacity *float64
	TankCapacity   *float64
	Odometer       *float64
	GPSNum         *int64
	Note           *string
}

func (s *VehicleService) List(ctx context.Context, q VehicleListQuery) (*repository.Page[model.Vehicle], error) {
	crit := repository.Criteria{}
	if q.StatusOID != nil {
		crit = crit.Equal("status_oid", *q.StatusOID)
	}
	if q.FuelTypeOID != nil {
		crit = crit.Equal("fuel_type_oid", *q.FuelTypeOID)
	}
	if q.AssignedTo != nil {
		crit = crit.Equal("assigned_to", *q.AssignedTo)
	}
	if q.Search != "" {
		crit = crit.Match(q.Search, "vehicle_num", "plate_num", "model")
	}

	page, err := s.repo.List(ctx, crit, q.Page, q.PageSize)
	if err != nil {
		return nil, fromStore(err)
	}
	if err := s.enrich(ctx, page.Rows); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *VehicleService) Get(ctx context.Context, id int64) (*model.Vehicle, error) {
	vehicle, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	rows := []model.Vehicle{*vehicle}
	if err := s.enrich(ctx, rows); err != nil {
		return nil, err
	}
	return &rows[0], nil
}

func (s *VehicleService) Create(ctx context.Context, p model.Principal, in VehicleCreateInput) (*model.Vehicle, error) {
	if err := guardWrite(p); err != nil {
		return nil, err
	}
	if in.VehicleNum == "" {
		return nil, invalid("vehicle_num is required")
	}
	if len(in.VehicleNum) > 100 {
		return nil, invalid("vehicle_num exceeds 100 characters")
	}
	if in.FuelTypeOID == 0 {
		return nil, invalid("fuel_type_oid is required")
	}
	if in.TypeOID == 0 {
		return nil, invalid("type_oid is required")
	}

	now := nowUTC()
	entryUser := p.ID
	vehicle := &model.Vehicle{
		VehicleNum:     in.VehicleNum,
		Model:          in.Model,
		ModelYear:      in.ModelYear,
		PlateNum:       in.PlateNum,
		VinNum:         in.VinNum,
		FuelTypeOID:    in.FuelTypeOID,
		TypeOID:        in.TypeOID,
		UsageTypeOID:   in.UsageTypeOID,
		VendorOID:      in.VendorOID,
		StatusOID:      in.StatusOID,
		AssignedTo:     in.AssignedTo,
		EngineCapacity: in.EngineCapacity,
		TankCapacity:   in.TankCapacity,
		Odometer:       in.Odometer,
		GPSNum:         in.GPSNum,
		Note:           in.Note,
		EntryUser:      &entryUser,
		EntryDate:      &now,
	}
	if err := s.repo.Create(ctx, vehicle); err != nil {
		return nil, fromStore(err)
	}
	return vehicle, nil
}

func (s *VehicleService) Update(ctx context.Context, p model.Principal, id int64, in VehicleUpdateInput) (*model.Vehicle, error) {
	if err := guardWrite(p); err != nil {
		return nil, err
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, fromStore(err)
	}

	fields := map[string]interface{}{}
	if in.VehicleNum != nil {
		if *in.VehicleNum == "" {
			return nil, invalid("vehicle_num cannot be empty")
		}
		fields["vehicle_num"] = *in.VehicleNum
	}
	setIfPresent(fields, "model", in.Model)
	setIfPresent(fields, "model_year", in.ModelYear)
	setIfPresent(fields, "plate_num", in.PlateNum)
	setIfPresent(fields, "vin_num", in.VinNum)
	setIfPresent(fields, "fuel_type_oid", in.FuelTypeOID)
	setIfPresent(fields, "type_oid", in.TypeOID)
	setIfPresent(fields, "usage_type_oid", in.UsageTypeOID)
	setIfPresent(fields, "vendor_oid", in.VendorOID)
	setIfPresent(fields, "status_oid", in.StatusOID)
	setIfPresent(fields, "assigned_to", in.AssignedTo)
	setIfPresent(fields, "engine_capacity", in.EngineCapacity)
	setIfPresent(fields, "tank_capacity", in.TankCapacity)
	setIfPresent(fields, "odometer", in.Odometer)
	setIfPresent(fields, "gps_num", in.GPSNum)
	setIfPresent(fields, "note", in.Note)

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fromStore(err)
	}
	return s.Get(ctx, id)
}

func (s *VehicleService) Delete(ctx context.Context, p model.Principal, id int64) error {
	if err := guardWrite(p); err != nil {
		return err
	}
	return fromStore(s.repo.Delete(ctx, id))
}

func (s *VehicleService) FuelLogs(ctx context.Context, id int64, limit int) ([]model.FuelLog, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, fromStore(err)
	}
	logs, err := s.repo.FuelLogs(ctx, id, limit)
	if err != nil {
		return nil, fromStore(err)
	}
	return logs, nil
}

func (s *VehicleService) FuelStats(ctx context.Context, id int64) (*model.VehicleFuelStats, error) {
	vehicle, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	stats, err := s.repo.FuelStats(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	stats.CurrentOdometer = vehicle.Odometer
	return stats, nil
}

// Roster returns the enriched full vehicle list for file exports.
func (s *VehicleService) Roster(ctx context.Context) ([]model.Vehicle, error) {
	vehicles, err := s.repo.All(ctx)
	if err != nil {
		return nil, fromStore(err)
	}
	if err := s.enrich(ctx, vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// enrich attaches constant-store labels and the assigned station name to each
// row in place. Unknown references yield nil labels, never errors.
func (s *VehicleService) enrich(ctx context.Context, vehicles []model.Vehicle) error {
	if len(vehicles) == 0 {
		return nil
	}

	tagged := map[string][]int64{}
	collect := func(tag string, id *int64) {
		if id != nil && *id != 0 {
			tagged[tag] = append(tagged[tag], *id)
		}
	}
	stationIDs := make([]int64, 0, len(vehicles))
	for i := range vehicles {
		v := &vehicles[i]
		collect(constants.TagFuelType, &v.FuelTypeOID)
		collect(constants.TagVehicleType, &v.TypeOID)
		collect(constants.TagUsageType, v.UsageTypeOID)
		collect(constants.TagVendor, v.VendorOID)
		collect(constants.TagVehicleStatus, v.StatusOID)
		if v.AssignedTo != nil && *v.AssignedTo != 0 {
			stationIDs = append(stationIDs, *v.AssignedTo)
		}
	}

	labels := map[string]map[int64]string{}
	for tag, ids := range tagged {
		resolved, err := s.resolver.Labels(ctx, tag, ids)
		if err != nil {
			return fromStore(err)
		}
		labels[tag] = resolved
	}
	stations, err := s.lookups.StationNames(ctx, stationIDs)
	if err != nil {
		return fromStore(err)
	}

	pick := func(tag string, id *int64) *string {
		if id == nil {
			return nil
		}
		if name, ok := labels[tag][*id]; ok {
			return &name
		}
		return nil
	}
	for i := range vehicles {
		v := &vehicles[i]
		v.FuelTypeName = pick(constants.TagFuelType, &v.FuelTypeOID)
		v.TypeName = pick(constants.TagVehicleType, &v.TypeOID)
		v.UsageTypeName = pick(constants.TagUsageType, v.UsageTypeOID)
		v.VendorName = pick(constants.TagVendor, v.VendorOID)
		v.StatusName = pick(constants.TagVehicleStatus, v.StatusOID)
		if v.AssignedTo != nil {
			if name, ok := stations[*v.AssignedTo]; ok {
				v.AssignedStationName = &name
			}
		}
	}
	return nil
}
