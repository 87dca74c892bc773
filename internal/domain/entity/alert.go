// Package entity contains the core business objects of the project.
package entity

import "time"

// AlertRecord is a single geotagged panic report. It is immutable once stored.
type AlertRecord struct {
	ID            string    `json:"id"`             // Store-assigned identifier.
	Latitude      float64   `json:"latitude"`       // The geographic latitude of the sender.
	Longitude     float64   `json:"longitude"`      // The geographic longitude of the sender.
	SenderID      string    `json:"sender_id"`      // Recipient profile ID of the sender, or "anonymous".
	SentAt        time.Time `json:"sent_at"`        // Store-assigned insertion time.
	LocationLabel string    `json:"location_label"` // Best-effort reverse-geocoded label, may be empty.
}

// Location returns the alert position.
func (a *AlertRecord) Location() Location {
	return Location{Latitude: a.Latitude, Longitude: a.Longitude}
}

// EnrichedAlert is an AlertRecord joined with the sender's public profile fields.
// It is built per query and never cached, since profile fields may change.
type EnrichedAlert struct {
	AlertRecord
	SenderDisplayName     string  `json:"sender_display_name"`
	SenderProfilePhotoRef string  `json:"sender_profile_photo_ref"`
	DistanceMiles         float64 `json:"distance_miles"` // Distance from the viewer at query time.
}
