// Package entity contains the core business objects of the project.
package entity

import "time"

// Location is a WGS-84 coordinate in degrees.
type Location struct {
	Latitude  float64 `json:"latitude"`  // The geographic latitude, [-90, 90].
	Longitude float64 `json:"longitude"` // The geographic longitude, [-180, 180].
}

// IsValid reports whether the coordinate lies inside the WGS-84 ranges.
func (l Location) IsValid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// LocationFix is a timestamped coordinate delivered by the device location feed.
type LocationFix struct {
	Location
	ObservedAt time.Time `json:"observed_at"`
}
