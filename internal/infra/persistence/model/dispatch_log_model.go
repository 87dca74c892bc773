package model

import (
	"time"

	"github.com/google/uuid"
)

// DispatchLogModel is the GORM-specific struct for the 'alert_dispatch_logs' table.
// It represents the outcome of one push attempt for an alert.
type DispatchLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AlertID      uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientID  string    `gorm:"type:text;not null"`
	Status       string    `gorm:"type:text;not null"`
	ErrorMessage string    `gorm:"type:text"`
	AttemptedAt  time.Time `gorm:"type:timestamptz;not null"`
}

// TableName explicitly sets the table name for GORM.
func (DispatchLogModel) TableName() string {
	return "alert_dispatch_logs"
}
