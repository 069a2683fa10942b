package model

// GPS is a WGS84 position reported by the car.
type GPS struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CarRecord is the telemetry payload for one vehicle as returned by
// GET /api/car/{licensePlate}.
//
// A record is treated as immutable once decoded. Holders replace it
// wholesale and hand out copies via Clone.
type CarRecord struct {
	LicensePlate string  `json:"licensePlate"`
	Owner        string  `json:"owner"`
	IndoorTemp   float64 `json:"indoorTemp"`
	OutdoorTemp  float64 `json:"outdoorTemp"`

	// GPS is nil when the payload has no position or an explicit null.
	GPS *GPS `json:"gps"`

	// LastService and LastUpdated are displayed verbatim.
	LastService string `json:"lastService"`
	LastUpdated string `json:"lastUpdated"`
}

// HasGPS reports whether the record carries a position.
func (r *CarRecord) HasGPS() bool {
	return r != nil && r.GPS != nil
}

// Clone returns a deep copy of r. A nil receiver yields nil.
func (r *CarRecord) Clone() *CarRecord {
	if r == nil {
		return nil
	}

	out := *r
	if r.GPS != nil {
		gps := *r.GPS
		out.GPS = &gps
	}

	return &out
}
