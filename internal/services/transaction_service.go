package services

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// transactionService records transactions and maintains the rollup tables.
type transactionService struct {
	db              *gorm.DB
	categoryService CategoryServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, categoryService CategoryServicer) TransactionServicer {
	return &transactionService{
		db:              db,
		categoryService: categoryService,
	}
}

// RecordTransaction persists a transaction and increments the daily and
// monthly rollup buckets for its date, all within one database transaction.
// Bucket keys are taken from the UTC components of date; clients that want
// local-calendar-day bucketing must submit midnight-UTC dates. The category
// name and icon are snapshotted onto the transaction row.
func (s *transactionService) RecordTransaction(
	userID string,
	amount float64,
	date time.Time,
	txType models.TransactionType,
	categoryName string,
	description string,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	if txType != models.TransactionTypeIncome && txType != models.TransactionTypeExpense {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
	}

	if date.IsZero() {
		date = time.Now()
	}

	category, err := s.categoryService.GetCategoryByName(userID, categoryName)
	if err != nil {
		return nil, err
	}
	if models.TransactionType(category.Type) != txType {
		return nil, apperrors.WithMessage(apperrors.ErrCategoryNotFound, "category type does not match transaction type")
	}

	utc := date.UTC()
	day := utc.Day()
	month := int(utc.Month()) - 1 // 0-indexed, matching the history tables
	year := utc.Year()

	var incomeDelta, expenseDelta float64
	if txType == models.TransactionTypeIncome {
		incomeDelta = amount
	} else {
		expenseDelta = amount
	}

	transaction := &models.Transaction{
		UserID:       userID,
		Amount:       amount,
		Date:         date,
		Type:         txType,
		Category:     category.Name,
		CategoryIcon: category.Icon,
		Description:  description,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		// The increments run as SQL expressions inside ON CONFLICT DO
		// UPDATE, so concurrent writers for the same bucket key cannot
		// lose updates.
		daily := models.DailyHistory{
			UserID: userID, Day: day, Month: month, Year: year,
			Income: incomeDelta, Expense: expenseDelta,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "day"}, {Name: "month"}, {Name: "year"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"income":  gorm.Expr("income + ?", incomeDelta),
				"expense": gorm.Expr("expense + ?", expenseDelta),
			}),
		}).Create(&daily).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		monthly := models.MonthlyHistory{
			UserID: userID, Month: month, Year: year,
			Income: incomeDelta, Expense: expenseDelta,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "month"}, {Name: "year"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"income":  gorm.Expr("income + ?", incomeDelta),
				"expense": gorm.Expr("expense + ?", expenseDelta),
			}),
		}).Create(&monthly).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// GetUserTransactions retrieves a paginated, filtered list of the user's
// transactions, newest first.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	if filter.FromDate != nil {
		base = base.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		base = base.Where("date <= ?", *filter.ToDate)
	}
	if filter.Type != nil {
		base = base.Where("type = ?", *filter.Type)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}
