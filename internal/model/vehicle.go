package model

import "time"

type Vehicle struct {
	ID             int64      `gorm:"column:oid;primaryKey" json:"id"`
	VehicleNum     string     `gorm:"column:vehicle_num;size:100" json:"vehicle_num"`
	Model          *string    `gorm:"column:model;size:100" json:"model"`
	ModelYear      *int       `gorm:"column:model_year" json:"model_year"`
	PlateNum       *string    `gorm:"column:plate_num;size:100" json:"plate_num"`
	VinNum         *string    `gorm:"column:vin_num;size:100" json:"vin_num"`
	FuelTypeOID    int64      `gorm:"column:fuel_type_oid" json:"fuel_type_oid"`
	TypeOID        int64      `gorm:"column:type_oid" json:"type_oid"`
	UsageTypeOID   *int64     `gorm:"column:usage_type_oid" json:"usage_type_oid"`
	VendorOID      *int64     `gorm:"column:vendor_oid" json:"vendor_oid"`
	StatusOID      *int64     `gorm:"column:status_oid" json:"status_oid"`
	AssignedTo     *int64     `gorm:"column:assigned_to" json:"assigned_to"`
	EngineCapacity *float64   `gorm:"column:engine_capacity" json:"engine_capacity"`
	TankCapacity   *float64   `gorm:"column:tank_capacity" json:"tank_capacity"`
	Odometer       *float64   `gorm:"column:odometer" json:"odometer"`
	GPSNum         *int64     `gorm:"column:gps_num" json:"gps_num"`
	Note           *string    `gorm:"column:note;size:1000" json:"note"`
	EntryUser      *int64     `gorm:"column:entry_user" json:"entry_user"`
	EntryDate      *time.Time `gorm:"column:entry_date" json:"entry_date"`

	// Labels resolved from the constant store and the stations table.
	FuelTypeName        *string `gorm:"-" json:"fuel_type_name"`
	TypeName            *string `gorm:"-" json:"type_name"`
	UsageTypeName       *string `gorm:"-" json:"usage_type_name"`
	VendorName          *string `gorm:"-" json:"vendor_name"`
	StatusName          *string `gorm:"-" json:"status_name"`
	AssignedStationName *string `gorm:"-" json:"assigned_station_name"`
}

func (Vehicle) TableName() string { return "vehicles" }

// VehicleFuelStats is the per-vehicle aggregate served by /vehicles/{id}/stats.
type VehicleFuelStats struct {
	TotalFuelLogs   int64      `json:"total_fuel_logs"`
	TotalGallons    float64    `json:"total_gallons"`
	LastFuelDate    *time.Time `json:"last_fuel_date"`
	CurrentOdometer *float64   `json:"current_odometer"`
}
