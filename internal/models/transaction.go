package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a recorded income or expense. The category name and
// icon are snapshotted at write time rather than referenced by foreign key,
// so renaming or deleting a category never rewrites history.
type Transaction struct {
	Base
	UserID       string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount       float64         `gorm:"not null" json:"amount"`
	Date         time.Time       `gorm:"not null;index" json:"date"`
	Type         TransactionType `gorm:"not null" json:"type"`
	Category     string          `gorm:"not null" json:"category"`
	CategoryIcon string          `gorm:"not null" json:"category_icon"`
	Description  string          `json:"description"`
}
