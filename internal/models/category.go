package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a user-defined transaction category. Categories are
// looked up by name when recording a transaction, so the name is unique per
// user.
type Category struct {
	Base
	UserID string       `gorm:"type:uuid;not null;uniqueIndex:idx_categories_user_name" json:"user_id"`
	Name   string       `gorm:"not null;uniqueIndex:idx_categories_user_name" json:"name"`
	Icon   string       `gorm:"not null" json:"icon"`
	Type   CategoryType `gorm:"not null" json:"type"`
}
