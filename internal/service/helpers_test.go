package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/baladia/fuel-service/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Constant{},
		&model.Station{},
		&model.User{},
		&model.Vehicle{},
		&model.Generator{},
		&model.FuelLog{},
		&model.GasBill{},
		&model.InventorySnapshot{},
		&model.MaintenanceRecord{},
	))
	return db
}

func writer() model.Principal {
	return model.Principal{ID: 1, Username: "admin", FullName: "Admin", Active: true}
}

func readOnly() model.Principal {
	return model.Principal{ID: 2, Username: "viewer", FullName: "Viewer", Active: true, ReadOnly: true}
}

func ptr[T any](v T) *T { return &v }
