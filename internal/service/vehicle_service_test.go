package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/baladia/fuel-service/internal/constants"
	"github.com/baladia/fuel-service/internal/model"
	"github.com/baladia/fuel-service/internal/repository"
)

func newVehicleService(db *gorm.DB) *VehicleService {
	return NewVehicleService(
		repository.NewVehicleRepository(db),
		constants.NewResolver(db),
		repository.NewLookupRepository(db),
	)
}

func TestVehicleCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	svc := newVehicleService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, writer(), VehicleCreateInput{
		VehicleNum:  "TRK-100",
		FuelTypeOID: 3,
		TypeOID:     1,
		PlateNum:    ptr("ABC-123"),
		Odometer:    ptr(12500.0),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.NotNil(t, created.EntryDate)
	require.NotNil(t, created.EntryUser)
	require.EqualValues(t, 1, *created.EntryUser)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "TRK-100", got.VehicleNum)
	require.Equal(t, "ABC-123", *got.PlateNum)
}

func TestVehicleCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newVehicleService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, writer(), VehicleCreateInput{FuelTypeOID: 3, TypeOID: 1})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, writer(), VehicleCreateInput{VehicleNum: "TRK-1", TypeOID: 1})
	require.ErrorIs(t, err, ErrValidation)
}

func TestVehicleWriteRejectedForReadOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := newVehicleService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, readOnly(), VehicleCreateInput{VehicleNum: "TRK-1", FuelTypeOID: 3, TypeOID: 1})
	require.ErrorIs(t, err, ErrReadOnly)
}

func TestVehicleUpdatePartial(t *testing.T) {
	db := setupTestDB(t)
	svc := newVehicleService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, writer(), VehicleCreateInput{
		VehicleNum:  "TRK-200",
		FuelTypeOID: 3,
		TypeOID:     1,
		PlateNum:    ptr("OLD-1"),
		Odometer:    ptr(1000.0),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, writer(), created.ID, VehicleUpdateInput{
		Odometer: ptr(2000.0),
	})
	require.NoError(t, err)
	require.Equal(t, 2000.0, *updated.Odometer)
	// Untouched fields survive a partial update.
	require.Equal(t, "TRK-200", updated.VehicleNum)
	require.Equal(t, "OLD-1", *updated.PlateNum)
}

func TestVehicleDeleteThenNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newVehicleService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, writer(), VehicleCreateInput{VehicleNum: "TRK-300", FuelTypeOID: 3, TypeOID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, writer(), created.ID))
	require.ErrorIs(t, svc.Delete(ctx, writer(), created.ID), ErrNotFound)

	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestVehicleEnrichment(t *testing.T) {
	db := setupTestDB(t)
	svc := newVehicleService(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.Constant{ID: 3, Name: "بنزين", Type: ptr(constants.TagFuelType)}).Error)
	require.NoError(t, db.Create(&model.Constant{ID: 10, Name: "شاحنة", Type: ptr(constants.TagVehicleType)}).Error)
	require.NoError(t, db.Create(&model.Station{ID: 7, StationName: "المحطة الرئيسية"}).Error)

	created, err := svc.Create(ctx, writer(), VehicleCreateInput{
		VehicleNum:  "TRK-400",
		FuelTypeOID: 3,
		TypeOID:     10,
		StatusOID:   ptr(int64(999)),
		AssignedTo:  ptr(int64(7)),
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.FuelTypeName)
	require.Equal(t, "بنزين", *got.FuelTypeName)
	require.NotNil(t, got.TypeName)
	require.Equal(t, "شاحنة", *got.TypeName)
	require.NotNil(t, got.AssignedStationName)
	require.Equal(t, "المحطة الرئيسية", *got.AssignedStationName)
	// Unknown status id resolves to no label, not an error.
	require.Nil(t, got.StatusName)
}

func TestVehicleListFiltersAndSearch(t *testing.T) {
	db := setupTestDB(t)
	svc := newVehicleService(db)
	ctx := context.Background()

	active := int64(1)
	parked := int64(2)
	_, err := svc.Create(ctx, writer(), VehicleCreateInput{VehicleNum: "TRK-500", FuelTypeOID: 3, TypeOID: 1, StatusOID: &active})
	require.NoError(t, err)
	_, err = svc.Create(ctx, writer(), VehicleCreateInput{VehicleNum: "BUS-501", FuelTypeOID: 4, TypeOID: 1, StatusOID: &parked})
	require.NoError(t, err)

	page, err := svc.List(ctx, VehicleListQuery{StatusOID: &active, Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, page.Total)
	require.Equal(t, "TRK-500", page.Rows[0].VehicleNum)

	page, err = svc.List(ctx, VehicleListQuery{Search: "bus", Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, page.Total)
	require.Equal(t, "BUS-501", page.Rows[0].VehicleNum)
}

func TestVehicleFuelStats(t *testing.T) {
	db := setupTestDB(t)
	svc := newVehicleService(db)
	logSvc := NewFuelLogService(repository.NewFuelLogRepository(db), constants.NewResolver(db), repository.NewLookupRepository(db))
	ctx := context.Background()

	vehicle, err := svc.Create(ctx, writer(), VehicleCreateInput{VehicleNum: "TRK-600", FuelTypeOID: 3, TypeOID: 1, Odometer: ptr(5000.0)})
	require.NoError(t, err)

	for _, gallons := range []float64{20, 30} {
		_, err := logSvc.Create(ctx, writer(), FuelLogCreateInput{
			VehicleOID: &vehicle.ID,
			FillUpDate: nowUTC(),
			Gallons:    ptr(gallons),
		})
		require.NoError(t, err)
	}

	stats, err := svc.FuelStats(ctx, vehicle.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, stats.TotalFuelLogs)
	require.Equal(t, 50.0, stats.TotalGallons)
	require.Equal(t, 5000.0, *stats.CurrentOdometer)
}
