package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationAlertModel is the GORM-specific struct for the 'location_alerts' table.
// SentAt is assigned by the database on insert.
type LocationAlertModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Latitude      float64   `gorm:"type:decimal(10,8);not null"`
	Longitude     float64   `gorm:"type:decimal(11,8);not null"`
	SenderID      string    `gorm:"type:text;not null"`
	LocationLabel string    `gorm:"type:text;not null;default:''"`
	SentAt        time.Time `gorm:"type:timestamptz;not null;default:clock_timestamp();index"`
}

// TableName explicitly sets the table name for GORM.
func (LocationAlertModel) TableName() string {
	return "location_alerts"
}
