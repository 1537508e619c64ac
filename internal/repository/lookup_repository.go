package repository

import (
	"context"

	"gorm.io/gorm"
)

// LookupRepository resolves foreign keys against other entities' own display
// fields. This is distinct from constant-store enrichment: the label comes
// from the referenced row, not from the soft enum table.
type LookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) *LookupRepository {
	return &LookupRepository{db: db}
}

type labelRow struct {
	OID   int64 `gorm:"column:oid"`
	Label string
}

func (r *LookupRepository) labels(ctx context.Context, query string, ids []int64) (map[int64]string, error) {
	if len(ids) == 0 {
		return map[int64]string{}, nil
	}
	var rows []labelRow
	if err := r.db.WithContext(ctx).Raw(query, ids).Scan(&rows).Error; err != nil {
		return nil, err
	}
	labels := make(map[int64]string, len(rows))
	for _, row := range rows {
		labels[row.OID] = row.Label
	}
	return labels, nil
}

func (r *LookupRepository) StationNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	return r.labels(ctx, `SELECT oid, station_name AS label FROM stations WHERE oid IN ?`, ids)
}

func (r *LookupRepository) VehicleNumbers(ctx context.Context, ids []int64) (map[int64]string, error) {
	return r.labels(ctx, `SELECT oid, vehicle_num AS label FROM vehicles WHERE oid IN ?`, ids)
}

func (r *LookupRepository) UserFullNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	return r.labels(ctx, `SELECT oid, user_full_name AS label FROM users WHERE oid IN ?`, ids)
}
