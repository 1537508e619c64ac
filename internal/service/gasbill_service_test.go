package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baladia/fuel-service/internal/constants"
	"github.com/baladia/fuel-service/internal/repository"
)

func TestGasBillCreateComputesTotal(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGasBillService(repository.NewGasBillRepository(db), constants.NewResolver(db), repository.NewLookupRepository(db))
	ctx := context.Background()

	bill, err := svc.Create(ctx, writer(), GasBillCreateInput{
		GasStationOID: 1,
		FuelTypeOID:   3,
		BillTypeOID:   2,
		Quantity:      ptr(100.0),
		Price:         ptr(2.5),
	})
	require.NoError(t, err)
	require.Equal(t, 250.0, bill.Total)
}

func TestGasBillTotalZeroWithoutPrice(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGasBillService(repository.NewGasBillRepository(db), constants.NewResolver(db), repository.NewLookupRepository(db))
	ctx := context.Background()

	bill, err := svc.Create(ctx, writer(), GasBillCreateInput{
		GasStationOID: 1,
		FuelTypeOID:   3,
		BillTypeOID:   2,
		Quantity:      ptr(100.0),
	})
	require.NoError(t, err)
	require.Equal(t, 0.0, bill.Total)
}

func TestGasBillCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGasBillService(repository.NewGasBillRepository(db), constants.NewResolver(db), repository.NewLookupRepository(db))
	ctx := context.Background()

	_, err := svc.Create(ctx, writer(), GasBillCreateInput{
		FuelTypeOID: 3,
		BillTypeOID: 2,
		Quantity:    ptr(100.0),
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, writer(), GasBillCreateInput{
		GasStationOID: 1,
		FuelTypeOID:   3,
		BillTypeOID:   2,
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestGasBillStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGasBillService(repository.NewGasBillRepository(db), constants.NewResolver(db), repository.NewLookupRepository(db))
	ctx := context.Background()

	for _, entry := range []struct{ qty, price float64 }{{100, 2}, {50, 4}} {
		_, err := svc.Create(ctx, writer(), GasBillCreateInput{
			GasStationOID: 1,
			FuelTypeOID:   3,
			BillTypeOID:   2,
			Quantity:      ptr(entry.qty),
			Price:         ptr(entry.price),
		})
		require.NoError(t, err)
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, stats.TotalBills)
	require.Equal(t, 150.0, stats.TotalQuantity)
	require.Equal(t, 400.0, stats.TotalValue)
}
