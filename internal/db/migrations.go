package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS constants (
		oid BIGSERIAL PRIMARY KEY,
		cnst_name VARCHAR(80) NOT NULL,
		cnst_type VARCHAR(40),
		cnst_eng VARCHAR(80)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_constants_type ON constants (cnst_type);`,
	`CREATE TABLE IF NOT EXISTS stations (
		oid BIGSERIAL PRIMARY KEY,
		station_name VARCHAR(200) NOT NULL,
		station_ename VARCHAR(200),
		station_weight INTEGER,
		parent_oid BIGINT REFERENCES stations(oid)
	);`,
	`CREATE TABLE IF NOT EXISTS users (
		oid BIGSERIAL PRIMARY KEY,
		user_name VARCHAR(100) NOT NULL,
		user_password VARCHAR(100) NOT NULL,
		user_full_name VARCHAR(200) NOT NULL DEFAULT '',
		user_ssn BIGINT,
		user_active BOOLEAN NOT NULL DEFAULT TRUE,
		read_only BOOLEAN NOT NULL DEFAULT FALSE
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_user_name ON users (user_name);`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		oid BIGSERIAL PRIMARY KEY,
		vehicle_num VARCHAR(100) NOT NULL,
		model VARCHAR(100),
		model_year INTEGER,
		plate_num VARCHAR(100),
		vin_num VARCHAR(100),
		fuel_type_oid BIGINT NOT NULL,
		type_oid BIGINT NOT NULL,
		usage_type_oid BIGINT,
		vendor_oid BIGINT,
		status_oid BIGINT,
		assigned_to BIGINT REFERENCES stations(oid),
		engine_capacity NUMERIC(12,2),
		tank_capacity NUMERIC(12,2),
		odometer NUMERIC(14,2),
		gps_num BIGINT,
		note VARCHAR(1000),
		entry_user BIGINT REFERENCES users(oid),
		entry_date TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_status_oid ON vehicles (status_oid);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_fuel_type_oid ON vehicles (fuel_type_oid);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_assigned_to ON vehicles (assigned_to);`,
	`CREATE TABLE IF NOT EXISTS generators (
		oid BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		assigned_to BIGINT REFERENCES vehicles(oid),
		fuel_type_oid BIGINT NOT NULL,
		type_oid BIGINT,
		engine_capacity NUMERIC(12,2),
		note VARCHAR(1000),
		entry_user BIGINT REFERENCES users(oid),
		entry_date TIMESTAMPTZ
	);`,
	`CREATE TABLE IF NOT EXISTS fuel_logs (
		oid BIGSERIAL PRIMARY KEY,
		veh_oid BIGINT REFERENCES vehicles(oid),
		generator_oid BIGINT REFERENCES generators(oid),
		fill_up_date TIMESTAMPTZ NOT NULL,
		gallons NUMERIC(12,2) NOT NULL,
		odometer NUMERIC(14,2),
		station_oid BIGINT REFERENCES stations(oid),
		gas_type BIGINT,
		fuel_year INTEGER,
		status_oid BIGINT,
		note VARCHAR(1000),
		entry_user BIGINT REFERENCES users(oid),
		entry_date TIMESTAMPTZ,
		CONSTRAINT chk_fuel_log_owner CHECK (
			(veh_oid IS NOT NULL AND generator_oid IS NULL) OR
			(veh_oid IS NULL AND generator_oid IS NOT NULL)
		)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_fuel_logs_veh_oid ON fuel_logs (veh_oid);`,
	`CREATE INDEX IF NOT EXISTS idx_fuel_logs_generator_oid ON fuel_logs (generator_oid);`,
	`CREATE INDEX IF NOT EXISTS idx_fuel_logs_fill_up_date ON fuel_logs (fill_up_date);`,
	`CREATE TABLE IF NOT EXISTS gas_bills (
		oid BIGSERIAL PRIMARY KEY,
		gas_station_oid BIGINT NOT NULL REFERENCES stations(oid),
		fuel_type_oid BIGINT NOT NULL,
		bill_type_oid BIGINT NOT NULL,
		quantity NUMERIC(12,2) NOT NULL,
		price NUMERIC(12,2),
		bill_num BIGINT,
		bill_date TIMESTAMPTZ,
		status_oid BIGINT,
		donor_name_oid BIGINT,
		notes VARCHAR(4000),
		entery_user_oid BIGINT REFERENCES users(oid),
		en_date TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS idx_gas_bills_bill_date ON gas_bills (bill_date);`,
	`CREATE INDEX IF NOT EXISTS idx_gas_bills_gas_station_oid ON gas_bills (gas_station_oid);`,
	`CREATE TABLE IF NOT EXISTS gas_store (
		oid BIGSERIAL PRIMARY KEY,
		entry_date TIMESTAMPTZ,
		gas_quantity NUMERIC(14,2),
		solar_quantity NUMERIC(14,2),
		egypt_solar_quantity NUMERIC(14,2),
		gas_bills NUMERIC(14,2),
		fill_up_date TIMESTAMPTZ,
		prv_oid BIGINT,
		prv_qty NUMERIC(14,2),
		note VARCHAR(1000),
		is_active INTEGER NOT NULL DEFAULT 1
	);`,
	`CREATE INDEX IF NOT EXISTS idx_gas_store_entry_date ON gas_store (entry_date);`,
	`CREATE TABLE IF NOT EXISTS vehicle_maintenance (
		oid BIGSERIAL PRIMARY KEY,
		vehicle_oid BIGINT NOT NULL REFERENCES vehicles(oid),
		mntc_type_oid BIGINT,
		is_accidental INTEGER,
		current_mileage NUMERIC(14,2),
		mntc_date TIMESTAMPTZ,
		status_oid BIGINT,
		finish_date TIMESTAMPTZ,
		repair_time INTEGER,
		note VARCHAR(1000),
		entry_user BIGINT REFERENCES users(oid)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicle_maintenance_vehicle_oid ON vehicle_maintenance (vehicle_oid);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicle_maintenance_mntc_date ON vehicle_maintenance (mntc_date);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
