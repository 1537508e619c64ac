// Package constants resolves the soft enum table: human-readable labels for
// the numeric *_oid codes scattered across every other entity.
package constants

// Legacy type tags, preserved byte-for-byte from the source schema. Lookups
// are case- and spelling-sensitive, so the historical misspellings stay --
// these constants exist to keep each spelling in exactly one place.
const (
	TagFuelType      = "gas_type"
	TagVehicleStatus = "vehcile_status"
	TagVehicleType   = "Vehcile_type"
	TagUsageType     = "veh_type"
	TagVendor        = "Vendor"
	TagBillType      = "bill_type"
	TagMntcType      = "mntc_type"
	TagGeneratorType = "generator_type"
)
