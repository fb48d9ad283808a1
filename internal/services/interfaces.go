package services

import (
	"time"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// SettingsServicer defines the contract for user settings business logic.
type SettingsServicer interface {
	GetUserSettings(userID string) (*models.UserSettings, error)
	UpdateCurrency(userID, currency string) (*models.UserSettings, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name, icon string, categoryType models.CategoryType) (*models.Category, error)
	ListCategories(userID string, categoryType *models.CategoryType) ([]models.Category, error)
	GetCategoryByName(userID, name string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Type     *models.TransactionType
}

// TransactionServicer defines the contract for recording and listing transactions.
type TransactionServicer interface {
	RecordTransaction(userID string, amount float64, date time.Time, txType models.TransactionType, categoryName, description string) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
}

// TimeFrame selects the granularity of a history query.
type TimeFrame string

const (
	TimeFrameMonth TimeFrame = "month"
	TimeFrameYear  TimeFrame = "year"
)

// Period identifies the month or year a history query covers.
// Month is 0-indexed and ignored when the time frame is "year".
type Period struct {
	Year  int
	Month int
}

// BalanceTotals holds the income and expense sums over a date range.
type BalanceTotals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// CategoryTotal is one row of a per-category breakdown.
type CategoryTotal struct {
	Type         models.TransactionType `json:"type"`
	Category     string                 `json:"category"`
	CategoryIcon string                 `json:"category_icon"`
	Sum          float64                `gorm:"column:total" json:"sum"`
}

// HistoryPoint is one zero-filled bucket in a history series. Day is only
// set for month-granularity series.
type HistoryPoint struct {
	Day     int     `json:"day,omitempty"`
	Month   int     `json:"month"`
	Year    int     `json:"year"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// StatisticsServicer defines the read-only aggregation contract. All
// operations are pure; empty result sets resolve to documented defaults
// rather than errors.
type StatisticsServicer interface {
	BalanceTotals(userID string, from, to time.Time) (*BalanceTotals, error)
	CategoryTotals(userID string, from, to time.Time) ([]CategoryTotal, error)
	History(userID string, timeFrame TimeFrame, period Period) ([]HistoryPoint, error)
	DistinctYears(userID string) ([]int, error)
}
