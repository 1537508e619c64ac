package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/baladia/fuel-service/internal/model"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) List(ctx context.Context, crit Criteria, page, pageSize int) (*Page[model.InventorySnapshot], error) {
	query := r.db.WithContext(ctx).Model(&model.InventorySnapshot{}).Scopes(crit.Scope())
	return Paginate[model.InventorySnapshot](query, "entry_date DESC", page, pageSize)
}

func (r *InventoryRepository) Get(ctx context.Context, id int64) (*model.InventorySnapshot, error) {
	var snapshot model.InventorySnapshot
	err := r.db.WithContext(ctx).First(&snapshot, "oid = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Current returns the newest active snapshot, or ErrRecordNotFound when the
// store has never been stocked.
func (r *InventoryRepository) Current(ctx context.Context) (*model.InventorySnapshot, error) {
	var snapshot model.InventorySnapshot
	err := r.db.WithContext(ctx).
		Where("is_active = ?", 1).
		Order("entry_date DESC").
		First(&snapshot).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// History returns snapshots in the range, newest first, without paging.
func (r *InventoryRepository) History(ctx context.Context, crit Criteria) ([]model.InventorySnapshot, error) {
	var snapshots []model.InventorySnapshot
	err := r.db.WithContext(ctx).
		Model(&model.InventorySnapshot{}).
		Scopes(crit.Scope()).
		Order("entry_date DESC").
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (r *InventoryRepository) Create(ctx context.Context, snapshot *model.InventorySnapshot) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

func (r *InventoryRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.InventorySnapshot{}).
		Where("oid = ?", id).
		Updates(fields).Error
}

func (r *InventoryRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.InventorySnapshot{}, "oid = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *InventoryRepository) Stats(ctx context.Context) (*model.InventoryStats, error) {
	var stats model.InventoryStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_stores,
			COALESCE(SUM(CASE WHEN is_active = 1 THEN 1 ELSE 0 END), 0) AS active_stores,
			COALESCE(SUM(gas_quantity), 0) AS total_gas_quantity,
			COALESCE(SUM(solar_quantity), 0) AS total_solar_quantity,
			COALESCE(SUM(gas_bills), 0) AS total_bills_value
		FROM gas_store
	`).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
