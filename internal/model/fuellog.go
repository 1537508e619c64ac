package model

import "time"

// FuelLog records one fill-up. Exactly one of VehicleOID or GeneratorOID is
// set; the constraint is checked in the service layer and again by the store.
type FuelLog struct {
	ID           int64      `gorm:"column:oid;primaryKey" json:"id"`
	VehicleOID   *int64     `gorm:"column:veh_oid" json:"veh_oid"`
	GeneratorOID *int64     `gorm:"column:generator_oid" json:"generator_oid"`
	FillUpDate   time.Time  `gorm:"column:fill_up_date" json:"fill_up_date"`
	Gallons      float64    `gorm:"column:gallons" json:"gallons"`
	Odometer     *float64   `gorm:"column:odometer" json:"odometer"`
	StationOID   *int64     `gorm:"column:station_oid" json:"station_oid"`
	GasType      *int64     `gorm:"column:gas_type" json:"gas_type"`
	FuelYear     *int       `gorm:"column:fuel_year" json:"fuel_year"`
	StatusOID    *int64     `gorm:"column:status_oid" json:"status_oid"`
	Note         *string    `gorm:"column:note;size:1000" json:"note"`
	EntryUser    *int64     `gorm:"column:entry_user" json:"entry_user"`
	EntryDate    *time.Time `gorm:"column:entry_date" json:"entry_date"`

	GasTypeName   *string `gorm:"-" json:"gas_type_name"`
	StatusName    *string `gorm:"-" json:"status_name"`
	StationName   *string `gorm:"-" json:"station_name"`
	VehicleNum    *string `gorm:"-" json:"vehicle_num"`
	EntryUserName *string `gorm:"-" json:"entry_user_name"`
}

func (FuelLog) TableName() string { return "fuel_logs" }
