package constants

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/baladia/fuel-service/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Constant{}))
	return db
}

func seedConstant(t *testing.T, db *gorm.DB, id int64, name, typeTag string) {
	t.Helper()
	require.NoError(t, db.Create(&model.Constant{ID: id, Name: name, Type: &typeTag}).Error)
}

func TestResolveLabel(t *testing.T) {
	db := setupTestDB(t)
	seedConstant(t, db, 3, "بنزين", TagFuelType)

	resolver := NewResolver(db)
	id := int64(3)
	label, err := resolver.ResolveLabel(context.Background(), TagFuelType, &id)
	require.NoError(t, err)
	require.NotNil(t, label)
	require.Equal(t, "بنزين", *label)
}

func TestResolveLabelMissingPairIsNil(t *testing.T) {
	db := setupTestDB(t)
	seedConstant(t, db, 3, "بنزين", TagFuelType)

	resolver := NewResolver(db)

	unknown := int64(999)
	label, err := resolver.ResolveLabel(context.Background(), TagFuelType, &unknown)
	require.NoError(t, err)
	require.Nil(t, label)

	// Same id under a different tag is a different pair.
	id := int64(3)
	label, err = resolver.ResolveLabel(context.Background(), TagVehicleStatus, &id)
	require.NoError(t, err)
	require.Nil(t, label)
}

func TestResolveLabelNilAndZeroID(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewResolver(db)

	label, err := resolver.ResolveLabel(context.Background(), TagFuelType, nil)
	require.NoError(t, err)
	require.Nil(t, label)

	zero := int64(0)
	label, err = resolver.ResolveLabel(context.Background(), TagFuelType, &zero)
	require.NoError(t, err)
	require.Nil(t, label)
}

func TestLabelsBatch(t *testing.T) {
	db := setupTestDB(t)
	seedConstant(t, db, 1, "بنزين", TagFuelType)
	seedConstant(t, db, 2, "سولار", TagFuelType)

	resolver := NewResolver(db)
	labels, err := resolver.Labels(context.Background(), TagFuelType, []int64{1, 2, 99, 0})
	require.NoError(t, err)
	require.Len(t, labels, 2)
	require.Equal(t, "بنزين", labels[1])
	require.Equal(t, "سولار", labels[2])
	_, ok := labels[99]
	require.False(t, ok)
}

func TestResolverCachesUntilInvalidate(t *testing.T) {
	db := setupTestDB(t)
	seedConstant(t, db, 5, "old name", TagBillType)

	resolver := NewResolver(db)
	id := int64(5)

	label, err := resolver.ResolveLabel(context.Background(), TagBillType, &id)
	require.NoError(t, err)
	require.Equal(t, "old name", *label)

	require.NoError(t, db.Model(&model.Constant{}).Where("oid = ?", id).Update("cnst_name", "new name").Error)

	// Still served from cache.
	label, err = resolver.ResolveLabel(context.Background(), TagBillType, &id)
	require.NoError(t, err)
	require.Equal(t, "old name", *label)

	resolver.Invalidate()

	label, err = resolver.ResolveLabel(context.Background(), TagBillType, &id)
	require.NoError(t, err)
	require.Equal(t, "new name", *label)
}
