// Package entity contains the core business objects of the project.
package entity

// RecipientProfile is the subset of a user profile consumed by alert distribution.
// Profiles are owned by the profile service and are read-only here.
type RecipientProfile struct {
	ID                string    `json:"id"`
	DisplayName       string    `json:"display_name"`
	ProfilePhotoRef   string    `json:"profile_photo_ref"`
	PushEnabled       bool      `json:"push_enabled"`
	DeviceToken       string    `json:"device_token"`                  // Empty if push was never registered.
	LastKnownLocation *Location `json:"last_known_location,omitempty"` // Optional, used by radius-scoped fanout.
}

// Reachable reports whether a push can be addressed to this profile.
// A push-enabled profile without a device token is valid but unreachable.
func (p *RecipientProfile) Reachable() bool {
	return p.PushEnabled && p.DeviceToken != ""
}
