package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/baladia/fuel-service/internal/model"
)

type GeneratorRepository struct {
	db *gorm.DB
}

func NewGeneratorRepository(db *gorm.DB) *GeneratorRepository {
	return &GeneratorRepository{db: db}
}

func (r *GeneratorRepository) List(ctx context.Context, crit Criteria, page, pageSize int) (*Page[model.Generator], error) {
	query := r.db.WithContext(ctx).Model(&model.Generator{}).Scopes(crit.Scope())
	return Paginate[model.Generator](query, "oid DESC", page, pageSize)
}

func (r *GeneratorRepository) Get(ctx context.Context, id int64) (*model.Generator, error) {
	var generator model.Generator
	err := r.db.WithContext(ctx).First(&generator, "oid = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &generator, nil
}

func (r *GeneratorRepository) Create(ctx context.Context, generator *model.Generator) error {
	return r.db.WithContext(ctx).Create(generator).Error
}

func (r *GeneratorRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.Generator{}).
		Where("oid = ?", id).
		Updates(fields).Error
}

func (r *GeneratorRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Generator{}, "oid = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GeneratorRepository) FuelLogs(ctx context.Context, generatorID int64, limit int) ([]model.FuelLog, error) {
	var logs []model.FuelLog
	query := r.db.WithContext(ctx).
		Where("generator_oid = ?", generatorID).
		Order("fill_up_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// Options lists generators of one fuel type for dropdown population.
func (r *GeneratorRepository) Options(ctx context.Context, fuelTypeOID *int64) ([]model.Generator, error) {
	query := r.db.WithContext(ctx).Model(&model.Generator{})
	if fuelTypeOID != nil {
		query = query.Where("fuel_type_oid = ?", *fuelTypeOID)
	}
	var generators []model.Generator
	if err := query.Order("name ASC").Find(&generators).Error; err != nil {
		return nil, err
	}
	return generators, nil
}
