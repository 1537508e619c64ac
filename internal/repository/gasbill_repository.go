package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/baladia/fuel-service/internal/model"
)

type GasBillRepository struct {
	db *gorm.DB
}

func NewGasBillRepository(db *gorm.DB) *GasBillRepository {
	return &GasBillRepository{db: db}
}

func (r *GasBillRepository) List(ctx context.Context, crit Criteria, page, pageSize int) (*Page[model.GasBill], error) {
	query := r.db.WithContext(ctx).Model(&model.GasBill{}).Scopes(crit.Scope())
	return Paginate[model.GasBill](query, "bill_date DESC", page, pageSize)
}

func (r *GasBillRepository) Get(ctx context.Context, id int64) (*model.GasBill, error) {
	var bill model.GasBill
	err := r.db.WithContext(ctx).First(&bill, "oid = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *GasBillRepository) Create(ctx context.Context, bill *model.GasBill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *GasBillRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.GasBill{}).
		Where("oid = ?", id).
		Updates(fields).Error
}

func (r *GasBillRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.GasBill{}, "oid = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GasBillRepository) Stats(ctx context.Context) (*model.GasBillStats, error) {
	var stats model.GasBillStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_bills,
			COALESCE(SUM(quantity), 0) AS total_quantity,
			COALESCE(SUM(quantity * COALESCE(price, 0)), 0) AS total_value
		FROM gas_bills
	`).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
