package model

import "time"

// DashboardStats carries the fleet-wide counters shown on the admin landing
// page. Field names follow the SPA contract.
type DashboardStats struct {
	TotalVehicles     int64   `json:"totalVehicles"`
	TotalGenerators   int64   `json:"totalGenerators"`
	TodayFuelLogs     int64   `json:"todayFuelLogs"`
	ThisMonthFuelLogs int64   `json:"thisMonthFuelLogs"`
	ActiveStations    int64   `json:"activeStations"`
	TotalGasBills     int64   `json:"totalGasBills"`
	GasInventory      float64 `json:"gasInventory"`
	SolarInventory    float64 `json:"solarInventory"`
}

type RecentFuelLog struct {
	ID         int64      `gorm:"column:oid" json:"id"`
	VehicleOID *int64     `gorm:"column:veh_oid" json:"vehicle_oid"`
	Quantity   float64    `gorm:"column:gallons" json:"quantity"`
	StationOID *int64     `gorm:"column:station_oid" json:"station_oid"`
	EntryDate  *time.Time `gorm:"column:entry_date" json:"entry_date"`
}
