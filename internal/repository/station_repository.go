package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/baladia/fuel-service/internal/model"
)

type StationRepository struct {
	db *gorm.DB
}

func NewStationRepository(db *gorm.DB) *StationRepository {
	return &StationRepository{db: db}
}

// List orders by the display weight; station list UIs rely on it.
func (r *StationRepository) List(ctx context.Context, crit Criteria, page, pageSize int) (*Page[model.Station], error) {
	query := r.db.WithContext(ctx).Model(&model.Station{}).Scopes(crit.Scope())
	return Paginate[model.Station](query, "station_weight ASC", page, pageSize)
}

func (r *StationRepository) Get(ctx context.Context, id int64) (*model.Station, error) {
	var station model.Station
	err := r.db.WithContext(ctx).First(&station, "oid = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &station, nil
}

func (r *StationRepository) Create(ctx context.Context, station *model.Station) error {
	return r.db.WithContext(ctx).Create(station).Error
}

func (r *StationRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.Station{}).
		Where("oid = ?", id).
		Updates(fields).Error
}

func (r *StationRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.Station{}, "oid = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *StationRepository) Options(ctx context.Context) ([]model.StationOption, error) {
	var options []model.StationOption
	err := r.db.WithContext(ctx).
		Model(&model.Station{}).
		Select("oid, station_name").
		Order("station_name ASC").
		Scan(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}
