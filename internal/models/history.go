package models

// DailyHistory is a pre-aggregated rollup of one user's activity for a
// single calendar day. Rows are created on the first transaction for their
// key and monotonically incremented afterwards, always inside the same
// database transaction as the raw Transaction insert. Month is 0-indexed
// (January = 0) throughout the API.
type DailyHistory struct {
	UserID  string  `gorm:"type:uuid;primaryKey" json:"user_id"`
	Day     int     `gorm:"primaryKey" json:"day"`
	Month   int     `gorm:"primaryKey" json:"month"`
	Year    int     `gorm:"primaryKey" json:"year"`
	Income  float64 `gorm:"not null;default:0" json:"income"`
	Expense float64 `gorm:"not null;default:0" json:"expense"`
}

// MonthlyHistory is the month-granularity counterpart of DailyHistory.
type MonthlyHistory struct {
	UserID  string  `gorm:"type:uuid;primaryKey" json:"user_id"`
	Month   int     `gorm:"primaryKey" json:"month"`
	Year    int     `gorm:"primaryKey" json:"year"`
	Income  float64 `gorm:"not null;default:0" json:"income"`
	Expense float64 `gorm:"not null;default:0" json:"expense"`
}
