package pdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baladia/fuel-service/internal/model"
)

func ptr[T any](v T) *T { return &v }

func TestVehicleRosterRendersArabicLabels(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)

	vehicles := []model.Vehicle{
		{
			VehicleNum:          "V-001",
			PlateNum:            ptr("ق ن م 1234"),
			Model:               ptr("Toyota Hilux"),
			ModelYear:           ptr(2020),
			FuelTypeName:        ptr("بنزين"),
			StatusName:          ptr("نشط"),
			AssignedStationName: ptr("محطة الشمال"),
		},
	}

	out, err := g.VehicleRoster(vehicles)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	// The TrueType subset must be embedded; core fonts cannot carry the
	// Arabic label glyphs and leave no FontFile2 object behind.
	require.Contains(t, string(out), "FontFile2")
}

func TestVehicleRosterEmptyList(t *testing.T) {
	g, err := NewGenerator()
	require.NoError(t, err)

	out, err := g.VehicleRoster(nil)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
