package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/baladia/fuel-service/internal/model"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) List(ctx context.Context, crit Criteria, page, pageSize int) (*Page[model.Vehicle], error) {
	query := r.db.WithContext(ctx).Model(&model.Vehicle{}).Scopes(crit.Scope())
	return Paginate[model.Vehicle](query, "oid DESC", page, pageSize)
}

func (r *VehicleRepository) Get(ctx context.Context, id int64) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	err := r.db.WithContext(ctx).First(&vehicle, "oid = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

// Update modifies only the supplied columns.
func (r *VehicleRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.Vehicle{}).
		Where("oid = ?", id).
		Updates(fields).Error
}

func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Vehicle{}, "oid = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FuelLogs returns the newest fill-ups recorded against the vehicle.
func (r *VehicleRepository) FuelLogs(ctx context.Context, vehicleID int64, limit int) ([]model.FuelLog, error) {
	var logs []model.FuelLog
	query := r.db.WithContext(ctx).
		Where("veh_oid = ?", vehicleID).
		Order("fill_up_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *VehicleRepository) FuelStats(ctx context.Context, vehicleID int64) (*model.VehicleFuelStats, error) {
	var row struct {
		TotalFuelLogs int64
		TotalGallons  float64
		LastFuelDate  *string
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_fuel_logs,
			COALESCE(SUM(gallons), 0) AS total_gallons,
			MAX(fill_up_date) AS last_fuel_date
		FROM fuel_logs
		WHERE veh_oid = ?
	`, vehicleID).Scan(&row).Error
	if err != nil {
		return nil, err
	}

	stats := &model.VehicleFuelStats{
		TotalFuelLogs: row.TotalFuelLogs,
		TotalGallons:  row.TotalGallons,
	}

	// MAX over zero rows comes back NULL; fetch the timestamp typed only
	// when at least one log exists.
	if row.TotalFuelLogs > 0 {
		var last model.FuelLog
		err := r.db.WithContext(ctx).
			Where("veh_oid = ?", vehicleID).
			Order("fill_up_date DESC").
			First(&last).Error
		if err != nil {
			return nil, err
		}
		stats.LastFuelDate = &last.FillUpDate
	}
	return stats, nil
}

// All returns the unfiltered roster ordered for export.
func (r *VehicleRepository) All(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := r.db.WithContext(ctx).Order("oid DESC").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}
