package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/baladia/fuel-service/internal/model"
)

type FuelLogRepository struct {
	db *gorm.DB
}

func NewFuelLogRepository(db *gorm.DB) *FuelLogRepository {
	return &FuelLogRepository{db: db}
}

func (r *FuelLogRepository) List(ctx context.Context, crit Criteria, page, pageSize int) (*Page[model.FuelLog], error) {
	query := r.db.WithContext(ctx).Model(&model.FuelLog{}).Scopes(crit.Scope())
	return Paginate[model.FuelLog](query, "fill_up_date DESC", page, pageSize)
}

func (r *FuelLogRepository) Get(ctx context.Context, id int64) (*model.FuelLog, error) {
	var log model.FuelLog
	err := r.db.WithContext(ctx).First(&log, "oid = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *FuelLogRepository) Create(ctx context.Context, log *model.FuelLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *FuelLogRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.FuelLog{}).
		Where("oid = ?", id).
		Updates(fields).Error
}

func (r *FuelLogRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.FuelLog{}, "oid = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
