package models

// DefaultCurrency is assigned when settings are first created for a user.
const DefaultCurrency = "INR"

// UserSettings holds per-user display preferences. A row is created lazily
// the first time settings are read for a user.
type UserSettings struct {
	Base
	UserID   string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Currency string `gorm:"not null" json:"currency"`
}
