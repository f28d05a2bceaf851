package constants

// Redis key formats
const (
	KeyDriverGeo    = "drivers:geo"      // GeoHash set of all driver locations
	KeyDriverStatus = "drivers:status"   // Hash: driver_id -> availability status
	KeyDriverPrefs  = "drivers:prefs:%s" // Format: drivers:prefs:{driver_id}
)

// Redis hash fields
const (
	FieldStatus          = "status"
	FieldAcceptsExtended = "accepts_extended"
	FieldAcceptsParcel   = "accepts_parcel"
)
