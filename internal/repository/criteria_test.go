package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

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
	require.NoError(t, db.AutoMigrate(
		&model.Constant{},
		&model.Station{},
		&model.Vehicle{},
		&model.FuelLog{},
	))
	return db
}

func seedVehicles(t *testing.T, db *gorm.DB, count int) {
	t.Helper()
	for i := 1; i <= count; i++ {
		vehicle := model.Vehicle{
			VehicleNum:  fmt.Sprintf("V-%03d", i),
			FuelTypeOID: 3,
			TypeOID:     1,
		}
		require.NoError(t, db.Create(&vehicle).Error)
	}
}

func TestPaginateSecondPage(t *testing.T) {
	db := setupTestDB(t)
	seedVehicles(t, db, 25)

	page, err := Paginate[model.Vehicle](db.Model(&model.Vehicle{}), "oid ASC", 2, 10)
	require.NoError(t, err)

	require.EqualValues(t, 25, page.Total)
	require.Equal(t, 2, page.Page)
	require.Equal(t, 10, page.PageSize)
	require.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Rows, 10)
	require.Equal(t, "V-011", page.Rows[0].VehicleNum)
	require.Equal(t, "V-020", page.Rows[9].VehicleNum)
}

func TestPaginateLastPagePartial(t *testing.T) {
	db := setupTestDB(t)
	seedVehicles(t, db, 25)

	page, err := Paginate[model.Vehicle](db.Model(&model.Vehicle{}), "oid ASC", 3, 10)
	require.NoError(t, err)
	require.Len(t, page.Rows, 5)
	require.Equal(t, 3, page.TotalPages)
}

func TestPaginateBeyondLastPage(t *testing.T) {
	db := setupTestDB(t)
	seedVehicles(t, db, 5)

	page, err := Paginate[model.Vehicle](db.Model(&model.Vehicle{}), "oid ASC", 4, 10)
	require.NoError(t, err)
	require.Empty(t, page.Rows)
	require.EqualValues(t, 5, page.Total)
}

func TestPaginateDefaultsPageSize(t *testing.T) {
	db := setupTestDB(t)
	seedVehicles(t, db, 20)

	page, err := Paginate[model.Vehicle](db.Model(&model.Vehicle{}), "oid ASC", 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, page.Page)
	require.Equal(t, DefaultPageSize, page.PageSize)
	require.Len(t, page.Rows, DefaultPageSize)
}

func TestCriteriaEqual(t *testing.T) {
	db := setupTestDB(t)

	status := int64(7)
	require.NoError(t, db.Create(&model.Vehicle{VehicleNum: "A-1", FuelTypeOID: 3, TypeOID: 1, StatusOID: &status}).Error)
	require.NoError(t, db.Create(&model.Vehicle{VehicleNum: "A-2", FuelTypeOID: 3, TypeOID: 1}).Error)

	crit := Criteria{}.Equal("status_oid", status)
	var vehicles []model.Vehicle
	require.NoError(t, db.Model(&model.Vehicle{}).Scopes(crit.Scope()).Find(&vehicles).Error)
	require.Len(t, vehicles, 1)
	require.Equal(t, "A-1", vehicles[0].VehicleNum)
}

func TestCriteriaMatchIsCaseInsensitiveAcrossFields(t *testing.T) {
	db := setupTestDB(t)

	plate := "XYZ-991"
	modelName := "Land Cruiser"
	require.NoError(t, db.Create(&model.Vehicle{VehicleNum: "TRUCK-9", FuelTypeOID: 3, TypeOID: 1}).Error)
	require.NoError(t, db.Create(&model.Vehicle{VehicleNum: "B-2", PlateNum: &plate, FuelTypeOID: 3, TypeOID: 1}).Error)
	require.NoError(t, db.Create(&model.Vehicle{VehicleNum: "B-3", Model: &modelName, FuelTypeOID: 3, TypeOID: 1}).Error)

	crit := Criteria{}.Match("truck", "vehicle_num", "plate_num", "model")
	var vehicles []model.Vehicle
	require.NoError(t, db.Model(&model.Vehicle{}).Scopes(crit.Scope()).Find(&vehicles).Error)
	require.Len(t, vehicles, 1)
	require.Equal(t, "TRUCK-9", vehicles[0].VehicleNum)

	crit = Criteria{}.Match("cruiser", "vehicle_num", "plate_num", "model")
	require.NoError(t, db.Model(&model.Vehicle{}).Scopes(crit.Scope()).Find(&vehicles).Error)
	require.Len(t, vehicles, 1)
	require.Equal(t, "B-3", vehicles[0].VehicleNum)
}

func TestCriteriaBetweenIsInclusive(t *testing.T) {
	db := setupTestDB(t)

	vehicleID := int64(1)
	days := []time.Time{
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
	}
	for _, day := range days {
		require.NoError(t, db.Create(&model.FuelLog{VehicleOID: &vehicleID, FillUpDate: day, Gallons: 10}).Error)
	}

	from := days[0]
	to := days[1]
	crit := Criteria{}.Between("fill_up_date", &from, &to)
	var logs []model.FuelLog
	require.NoError(t, db.Model(&model.FuelLog{}).Scopes(crit.Scope()).Find(&logs).Error)
	require.Len(t, logs, 2)
}

func TestCriteriaBetweenOpenEnded(t *testing.T) {
	db := setupTestDB(t)

	vehicleID := int64(1)
	require.NoError(t, db.Create(&model.FuelLog{VehicleOID: &vehicleID, FillUpDate: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), Gallons: 5}).Error)
	require.NoError(t, db.Create(&model.FuelLog{VehicleOID: &vehicleID, FillUpDate: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), Gallons: 5}).Error)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	crit := Criteria{}.Between("fill_up_date", &from, nil)
	var logs []model.FuelLog
	require.NoError(t, db.Model(&model.FuelLog{}).Scopes(crit.Scope()).Find(&logs).Error)
	require.Len(t, logs, 1)
}

func TestCriteriaAtLeast(t *testing.T) {
	db := setupTestDB(t)

	vehicleID := int64(1)
	for _, gallons := range []float64{10, 50, 80} {
		require.NoError(t, db.Create(&model.FuelLog{VehicleOID: &vehicleID, FillUpDate: time.Now(), Gallons: gallons}).Error)
	}

	crit := Criteria{}.AtLeast("gallons", 50)
	var logs []model.FuelLog
	require.NoError(t, db.Model(&model.FuelLog{}).Scopes(crit.Scope()).Find(&logs).Error)
	require.Len(t, logs, 2)
}

func TestEmptyCriteriaMatchesEverything(t *testing.T) {
	db := setupTestDB(t)
	seedVehicles(t, db, 3)

	crit := Criteria{}
	var vehicles []model.Vehicle
	require.NoError(t, db.Model(&model.Vehicle{}).Scopes(crit.Scope()).Find(&vehicles).Error)
	require.Len(t, vehicles, 3)
}

func TestVehicleRepositoryDeleteMissingRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVehicleRepository(db)

	err := repo.Delete(context.Background(), 12345)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
