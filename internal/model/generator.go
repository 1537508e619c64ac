package model

import "time"

// Generator is a stationary or vehicle-hosted generator. AssignedTo references
// the host vehicle when the generator is mounted on one.
type Generator struct {
	ID             int64      `gorm:"column:oid;primaryKey" json:"id"`
	Name           string     `gorm:"column:name;size:100" json:"name"`
	AssignedTo     *int64     `gorm:"column:assigned_to" json:"assigned_to"`
	FuelTypeOID    int64      `gorm:"column:fuel_type_oid" json:"fuel_type_oid"`
	TypeOID        *int64     `gorm:"column:type_oid" json:"type_oid"`
	EngineCapacity *float64   `gorm:"column:engine_capacity" json:"engine_capacity"`
	Note           *string    `gorm:"column:note;size:1000" json:"note"`
	EntryUser      *int64     `gorm:"column:entry_user" json:"entry_user"`
	EntryDate      *time.Time `gorm:"column:entry_date" json:"entry_date"`

	FuelTypeName   *string `gorm:"-" json:"fuel_type_name"`
	TypeName       *string `gorm:"-" json:"type_name"`
	HostVehicleNum *string `gorm:"-" json:"host_vehicle_num"`
}

func (Generator) TableName() string { return "generators" }
