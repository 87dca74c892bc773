package model

// RecipientModel maps the columns of the 'users' table read for alert distribution.
// The table is owned by the profile service.
type RecipientModel struct {
	ID           string   `gorm:"type:text;primary_key"`
	Name         string   `gorm:"type:text"`
	ProfilePhoto string   `gorm:"type:text"`
	PushEnabled  bool     `gorm:"not null;default:false;index"`
	PushToken    string   `gorm:"type:text"`
	Lat          *float64 `gorm:"type:decimal(10,8)"`
	Lng          *float64 `gorm:"type:decimal(11,8)"`
}

// TableName explicitly sets the table name for GORM.
func (RecipientModel) TableName() string {
	return "users"
}
