package model

import "time"

type MaintenanceRecord struct {
	ID             int64      `gorm:"column:oid;primaryKey" json:"id"`
	VehicleOID     int64      `gorm:"column:vehicle_oid" json:"vehicle_oid"`
	MntcTypeOID    *int64     `gorm:"column:mntc_type_oid" json:"mntc_type_oid"`
	IsAccidental   *int       `gorm:"column:is_accidental" json:"is_accidental"`
	CurrentMileage *float64   `gorm:"column:current_mileage" json:"current_mileage"`
	MntcDate       *time.Time `gorm:"column:mntc_date" json:"mntc_date"`
	StatusOID      *int64     `gorm:"column:status_oid" json:"status_oid"`
	FinishDate     *time.Time `gorm:"column:finish_date" json:"finish_date"`
	RepairTime     *int       `gorm:"column:repair_time" json:"repair_time"`
	Note           *string    `gorm:"column:note;size:1000" json:"note"`
	EntryUser      *int64     `gorm:"column:entry_user" json:"entry_user"`

	MntcTypeName *string `gorm:"-" json:"mntc_type_name"`
	StatusName   *string `gorm:"-" json:"status_name"`
	VehicleNum   *string `gorm:"-" json:"vehicle_num"`
}

func (MaintenanceRecord) TableName() string { return "vehicle_maintenance" }
