package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/baladia/fuel-service/internal/model"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) List(ctx context.Context, crit Criteria, page, pageSize int) (*Page[model.MaintenanceRecord], error) {
	query := r.db.WithContext(ctx).Model(&model.MaintenanceRecord{}).Scopes(crit.Scope())
	return Paginate[model.MaintenanceRecord](query, "mntc_date DESC", page, pageSize)
}

func (r *MaintenanceRepository) Get(ctx context.Context, id int64) (*model.MaintenanceRecord, error) {
	var record model.MaintenanceRecord
	err := r.db.WithContext(ctx).First(&record, "oid = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *MaintenanceRepository) Create(ctx context.Context, record *model.MaintenanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *MaintenanceRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.MaintenanceRecord{}).
		Where("oid = ?", id).
		Updates(fields).Error
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.MaintenanceRecord{}, "oid = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
