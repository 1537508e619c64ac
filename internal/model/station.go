package model

// Station is a fuel station. ParentOID forms a self-referential hierarchy a
// few levels deep; list order follows the explicit display weight.
type Station struct {
	ID            int64   `gorm:"column:oid;primaryKey" json:"id"`
	StationName   string  `gorm:"column:station_name;size:200" json:"station_name"`
	StationEname  *string `gorm:"column:station_ename;size:200" json:"station_ename"`
	StationWeight *int    `gorm:"column:station_weight" json:"station_weight"`
	ParentOID     *int64  `gorm:"column:parent_oid" json:"parent_oid"`
}

func (Station) TableName() string { return "stations" }

// StationOption is the value/label pair served to dropdowns.
type StationOption struct {
	Value int64  `gorm:"column:oid" json:"value"`
	Label string `gorm:"column:station_name" json:"label"`
}
