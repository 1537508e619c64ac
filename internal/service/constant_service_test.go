package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baladia/fuel-service/internal/constants"
	"github.com/baladia/fuel-service/internal/repository"
)

func TestConstantCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewConstantService(repository.NewConstantRepository(db), constants.NewResolver(db))
	ctx := context.Background()

	_, err := svc.Create(ctx, writer(), ConstantCreateInput{Type: ptr(constants.TagFuelType)})
	require.ErrorIs(t, err, ErrValidation)

	long := strings.Repeat("x", 81)
	_, err = svc.Create(ctx, writer(), ConstantCreateInput{Name: &long})
	require.ErrorIs(t, err, ErrValidation)
}

func TestConstantByTypeMatchesTagExactly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewConstantService(repository.NewConstantRepository(db), constants.NewResolver(db))
	ctx := context.Background()

	_, err := svc.Create(ctx, writer(), ConstantCreateInput{Name: ptr("بنزين"), Type: ptr(constants.TagFuelType)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, writer(), ConstantCreateInput{Name: ptr("نشط"), Type: ptr(constants.TagVehicleStatus)})
	require.NoError(t, err)

	rows, err := svc.ByType(ctx, constants.TagFuelType)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "بنزين", rows[0].Name)

	// The historical tag spellings are matched byte for byte.
	rows, err = svc.ByType(ctx, "vehicle_status")
	require.NoError(t, err)
	require.Empty(t, rows)

	rows, err = svc.ByType(ctx, constants.TagVehicleStatus)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestConstantWriteInvalidatesResolver(t *testing.T) {
	db := setupTestDB(t)
	resolver := constants.NewResolver(db)
	svc := NewConstantService(repository.NewConstantRepository(db), resolver)
	ctx := context.Background()

	created, err := svc.Create(ctx, writer(), ConstantCreateInput{Name: ptr("old"), Type: ptr(constants.TagBillType)})
	require.NoError(t, err)

	label, err := resolver.ResolveLabel(ctx, constants.TagBillType, &created.ID)
	require.NoError(t, err)
	require.Equal(t, "old", *label)

	_, err = svc.Update(ctx, writer(), created.ID, ConstantUpdateInput{Name: ptr("new")})
	require.NoError(t, err)

	// The rename is visible immediately because the write dropped the cache.
	label, err = resolver.ResolveLabel(ctx, constants.TagBillType, &created.ID)
	require.NoError(t, err)
	require.Equal(t, "new", *label)
}

func TestConstantTypes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewConstantService(repository.NewConstantRepository(db), constants.NewResolver(db))
	ctx := context.Background()

	for _, tag := range []string{constants.TagFuelType, constants.TagFuelType, constants.TagVendor} {
		tag := tag
		_, err := svc.Create(ctx, writer(), ConstantCreateInput{Name: ptr("x"), Type: &tag})
		require.NoError(t, err)
	}

	types, err := svc.Types(ctx)
	require.NoError(t, err)
	require.Len(t, types, 2)
	require.Contains(t, types, constants.TagFuelType)
	require.Contains(t, types, constants.TagVendor)
}
