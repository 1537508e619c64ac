package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/baladia/fuel-service/internal/constants"
	"github.com/baladia/fuel-service/internal/repository"
)

func newFuelLogService(db *gorm.DB) *FuelLogService {
	return NewFuelLogService(
		repository.NewFuelLogRepository(db),
		constants.NewResolver(db),
		repository.NewLookupRepository(db),
	)
}

func TestFuelLogRequiresExactlyOneOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := newFuelLogService(db)
	ctx := context.Background()

	vehicleID := int64(1)
	generatorID := int64(2)

	_, err := svc.Create(ctx, writer(), FuelLogCreateInput{
		FillUpDate: nowUTC(),
		Gallons:    ptr(10.0),
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, writer(), FuelLogCreateInput{
		VehicleOID:   &vehicleID,
		GeneratorOID: &generatorID,
		FillUpDate:   nowUTC(),
		Gallons:      ptr(10.0),
	})
	require.ErrorIs(t, err, ErrValidation)

	log, err := svc.Create(ctx, writer(), FuelLogCreateInput{
		VehicleOID: &vehicleID,
		FillUpDate: nowUTC(),
		Gallons:    ptr(10.0),
	})
	require.NoError(t, err)
	require.NotNil(t, log.VehicleOID)
	require.Nil(t, log.GeneratorOID)
}

func TestFuelLogOwnerInvariantSurvivesUpdate(t *testing.T) {
	db := setupTestDB(t)
	svc := newFuelLogService(db)
	ctx := context.Background()

	vehicleID := int64(42)
	log, err := svc.Create(ctx, writer(), FuelLogCreateInput{
		VehicleOID: &vehicleID,
		FillUpDate: nowUTC(),
		Gallons:    ptr(50.0),
	})
	require.NoError(t, err)

	// Adding a generator on top of the stored vehicle breaks the invariant.
	generatorID := int64(9)
	_, err = svc.Update(ctx, writer(), log.ID, FuelLogUpdateInput{GeneratorOID: &generatorID})
	require.ErrorIs(t, err, ErrValidation)

	// Swapping the owner in one call is fine: clear the vehicle, set the
	// generator.
	zero := int64(0)
	updated, err := svc.Update(ctx, writer(), log.ID, FuelLogUpdateInput{
		VehicleOID:   &zero,
		GeneratorOID: &generatorID,
	})
	require.NoError(t, err)
	require.Nil(t, updated.VehicleOID)
	require.NotNil(t, updated.GeneratorOID)
	require.EqualValues(t, 9, *updated.GeneratorOID)
}

func TestFuelLogCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newFuelLogService(db)
	ctx := context.Background()

	vehicleID := int64(1)
	_, err := svc.Create(ctx, writer(), FuelLogCreateInput{
		VehicleOID: &vehicleID,
		Gallons:    ptr(10.0),
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, writer(), FuelLogCreateInput{
		VehicleOID: &vehicleID,
		FillUpDate: nowUTC(),
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, writer(), FuelLogCreateInput{
		VehicleOID: &vehicleID,
		FillUpDate: nowUTC(),
		Gallons:    ptr(-1.0),
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestFuelLogListFilterByVehicle(t *testing.T) {
	db := setupTestDB(t)
	svc := newFuelLogService(db)
	ctx := context.Background()

	target := int64(42)
	other := int64(7)
	for _, owner := range []*int64{&target, &target, &other} {
		_, err := svc.Create(ctx, writer(), FuelLogCreateInput{
			VehicleOID: owner,
			FillUpDate: nowUTC(),
			Gallons:    ptr(50.0),
		})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, FuelLogListQuery{VehicleOID: &target, Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.EqualValues(t, 2, page.Total)
	for _, row := range page.Rows {
		require.EqualValues(t, target, *row.VehicleOID)
		require.Equal(t, 50.0, row.Gallons)
	}
}

func TestFuelLogMinGallonsFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := newFuelLogService(db)
	ctx := context.Background()

	vehicleID := int64(1)
	for _, gallons := range []float64{5, 25, 60} {
		_, err := svc.Create(ctx, writer(), FuelLogCreateInput{
			VehicleOID: &vehicleID,
			FillUpDate: nowUTC(),
			Gallons:    ptr(gallons),
		})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, FuelLogListQuery{MinGallons: ptr(25.0), Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.EqualValues(t, 2, page.Total)
}
