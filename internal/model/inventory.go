package model

import "time"

// InventorySnapshot is one point-in-time reading of the gas store. The table
// is not a running ledger: current inventory is the newest active row by
// entry date.
type InventorySnapshot struct {
	ID                 int64      `gorm:"column:oid;primaryKey" json:"id"`
	EntryDate          *time.Time `gorm:"column:entry_date" json:"entry_date"`
	GasQuantity        *float64   `gorm:"column:gas_quantity" json:"gas_quantity"`
	SolarQuantity      *float64   `gorm:"column:solar_quantity" json:"solar_quantity"`
	EgyptSolarQuantity *float64   `gorm:"column:egypt_solar_quantity" json:"egypt_solar_quantity"`
	GasBills           *float64   `gorm:"column:gas_bills" json:"gas_bills"`
	FillUpDate         *time.Time `gorm:"column:fill_up_date" json:"fill_up_date"`
	PrvOID             *int64     `gorm:"column:prv_oid" json:"prv_oid"`
	PrvQty             *float64   `gorm:"column:prv_qty" json:"prv_qty"`
	Note               *string    `gorm:"column:note;size:1000" json:"note"`
	IsActive           int        `gorm:"column:is_active" json:"is_active"`
}

func (InventorySnapshot) TableName() string { return "gas_store" }

// InventoryStats aggregates the gas store table.
type InventoryStats struct {
	TotalStores        int64   `json:"total_stores"`
	ActiveStores       int64   `json:"active_stores"`
	TotalGasQuantity   float64 `json:"total_gas_quantity"`
	TotalSolarQuantity float64 `json:"total_solar_quantity"`
	TotalBillsValue    float64 `json:"total_bills_value"`
}
