package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/baladia/fuel-service/internal/model"
)

type ConstantRepository struct {
	db *gorm.DB
}

func NewConstantRepository(db *gorm.DB) *ConstantRepository {
	return &ConstantRepository{db: db}
}

func (r *ConstantRepository) List(ctx context.Context, crit Criteria, page, pageSize int) (*Page[model.Constant], error) {
	query := r.db.WithContext(ctx).Model(&model.Constant{}).Scopes(crit.Scope())
	return Paginate[model.Constant](query, "oid DESC", page, pageSize)
}

func (r *ConstantRepository) Get(ctx context.Context, id int64) (*model.Constant, error) {
	var constant model.Constant
	err := r.db.WithContext(ctx).First(&constant, "oid = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &constant, nil
}

func (r *ConstantRepository) Create(ctx context.Context, constant *model.Constant) error {
	return r.db.WithContext(ctx).Create(constant).Error
}

func (r *ConstantRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.Constant{}).
		Where("oid = ?", id).
		Updates(fields).Error
}

func (r *ConstantRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Constant{}, "oid = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ByType returns every row carrying the tag. Tags are matched exactly; the
// legacy data is case- and spelling-sensitive by construction.
func (r *ConstantRepository) ByType(ctx context.Context, typeTag string) ([]model.Constant, error) {
	var constants []model.Constant
	err := r.db.WithContext(ctx).
		Where("cnst_type = ?", typeTag).
		Find(&constants).Error
	if err != nil {
		return nil, err
	}
	return constants, nil
}

func (r *ConstantRepository) Options(ctx context.Context, typeTag string) ([]model.ConstantOption, error) {
	var options []model.ConstantOption
	err := r.db.WithContext(ctx).
		Model(&model.Constant{}).
		Select("oid, cnst_name").
		Where("cnst_type = ?", typeTag).
		Scan(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

// Types returns the distinct tag set present in the store.
func (r *ConstantRepository) Types(ctx context.Context) ([]string, error) {
	var types []string
	err := r.db.WithContext(ctx).
		Model(&model.Constant{}).
		Distinct("cnst_type").
		Where("cnst_type IS NOT NULL").
		Pluck("cnst_type", &types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}
