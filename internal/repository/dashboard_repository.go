package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/baladia/fuel-service/internal/model"
)

// DashboardRepository aggregates the landing-page counters. Time boundaries
// are computed by the caller so the queries stay portable across stores.
type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) CountVehicles(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Vehicle{}).Count(&n).Error
	return n, err
}

func (r *DashboardRepository) CountGenerators(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Generator{}).Count(&n).Error
	return n, err
}

func (r *DashboardRepository) CountStations(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Station{}).Count(&n).Error
	return n, err
}

func (r *DashboardRepository) CountGasBills(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.GasBill{}).Count(&n).Error
	return n, err
}

// CountFuelLogsBetween counts logs entered in [from, to).
func (r *DashboardRepository) CountFuelLogsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.FuelLog{}).
		Where("entry_date >= ? AND entry_date < ?", from, to).
		Count(&n).Error
	return n, err
}

// CurrentInventory returns the gas and solar quantities of the newest active
// snapshot, zeros when the store has never been stocked.
func (r *DashboardRepository) CurrentInventory(ctx context.Context) (gas, solar float64, err error) {
	var snapshot model.InventorySnapshot
	err = r.db.WithContext(ctx).
		Where("is_active = ?", 1).
		Order("entry_date DESC").
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, nil
		}
		return 0, 0, err
	}
	if snapshot.GasQuantity != nil {
		gas = *snapshot.GasQuantity
	}
	if snapshot.SolarQuantity != nil {
		solar = *snapshot.SolarQuantity
	}
	return gas, solar, nil
}

func (r *DashboardRepository) RecentFuelLogs(ctx context.Context, limit int) ([]model.RecentFuelLog, error) {
	var logs []model.RecentFuelLog
	err := r.db.WithContext(ctx).Raw(`
		SELECT oid, veh_oid, gallons, station_oid, entry_date
		FROM fuel_logs
		ORDER BY entry_date DESC
		LIMIT ?
	`, limit).Scan(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
