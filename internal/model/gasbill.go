package model

import "time"

// GasBill is a supplier invoice for fuel delivered to a station. Total is
// derived at read time, never stored.
type GasBill struct {
	ID            int64      `gorm:"column:oid;primaryKey" json:"id"`
	GasStationOID int64      `gorm:"column:gas_station_oid" json:"gas_station_oid"`
	FuelTypeOID   int64      `gorm:"column:fuel_type_oid" json:"fuel_type_oid"`
	BillTypeOID   int64      `gorm:"column:bill_type_oid" json:"bill_type_oid"`
	Quantity      float64    `gorm:"column:quantity" json:"quantity"`
	Price         *float64   `gorm:"column:price" json:"price"`
	BillNum       *int64     `gorm:"column:bill_num" json:"bill_num"`
	BillDate      *time.Time `gorm:"column:bill_date" json:"bill_date"`
	StatusOID     *int64     `gorm:"column:status_oid" json:"status_oid"`
	DonorNameOID  *int64     `gorm:"column:donor_name_oid" json:"donor_name_oid"`
	Notes         *string    `gorm:"column:notes;size:4000" json:"notes"`
	EnteryUserOID *int64     `gorm:"column:entery_user_oid" json:"entery_user_oid"`
	EntryDate     *time.Time `gorm:"column:en_date" json:"en_date"`

	Total         float64 `gorm:"-" json:"total"`
	FuelTypeName  *string `gorm:"-" json:"fuel_type_name"`
	BillTypeName  *string `gorm:"-" json:"bill_type_name"`
	StatusName    *string `gorm:"-" json:"status_name"`
	StationName   *string `gorm:"-" json:"station_name"`
	EntryUserName *string `gorm:"-" json:"entry_user_name"`
}

func (GasBill) TableName() string { return "gas_bills" }

// GasBillStats aggregates invoices for the financial dashboard.
type GasBillStats struct {
	TotalBills    int64   `json:"total_bills"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalValue    float64 `json:"total_value"`
}
