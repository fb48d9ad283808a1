package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// MaxDateRangeDays caps the span of range-based statistics queries. The
// range validation is owned by the API schema, but the query layer rejects
// out-of-policy ranges as well.
const MaxDateRangeDays = 90

// statisticsService answers read-only aggregation queries over raw
// transactions and the rollup tables.
type statisticsService struct {
	db *gorm.DB
}

// NewStatisticsService creates a new StatisticsServicer.
func NewStatisticsService(db *gorm.DB) StatisticsServicer {
	return &statisticsService{db: db}
}

func validateRange(from, to time.Time) error {
	if to.Before(from) {
		return apperrors.WithMessage(apperrors.ErrInvalidDateRange, "end date is before start date")
	}
	if to.Sub(from) >= MaxDateRangeDays*24*time.Hour {
		return apperrors.WithMessage(apperrors.ErrInvalidDateRange, "date range exceeds 90 days")
	}
	return nil
}

// BalanceTotals sums transaction amounts by type over the inclusive range
// [from, to]. Types with no transactions report zero.
func (s *statisticsService) BalanceTotals(userID string, from, to time.Time) (*BalanceTotals, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	var rows []struct {
		Type  models.TransactionType
		Total float64
	}
	if err := s.db.Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Group("type").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals := &BalanceTotals{}
	for _, row := range rows {
		switch row.Type {
		case models.TransactionTypeIncome:
			totals.Income = row.Total
		case models.TransactionTypeExpense:
			totals.Expense = row.Total
		}
	}
	return totals, nil
}

// CategoryTotals sums transaction amounts grouped by (type, category, icon)
// over the inclusive range [from, to], ordered by sum ascending.
func (s *statisticsService) CategoryTotals(userID string, from, to time.Time) ([]CategoryTotal, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	var totals []CategoryTotal
	if err := s.db.Model(&models.Transaction{}).
		Select("type, category, category_icon, SUM(amount) AS total").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Group("type").Group("category").Group("category_icon").
		Order("total ASC").
		Scan(&totals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if totals == nil {
		totals = []CategoryTotal{}
	}
	return totals, nil
}

// History returns a dense, ordered series of rollup buckets. A "year" time
// frame yields 12 monthly points for period.Year; a "month" time frame
// yields one point per day of period.Month/period.Year. Buckets with no
// activity are materialized with zero sums, never omitted.
func (s *statisticsService) History(userID string, timeFrame TimeFrame, period Period) ([]HistoryPoint, error) {
	switch timeFrame {
	case TimeFrameYear:
		return s.yearHistory(userID, period.Year)
	case TimeFrameMonth:
		return s.monthHistory(userID, period.Year, period.Month)
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "time frame must be month or year")
	}
}

func (s *statisticsService) yearHistory(userID string, year int) ([]HistoryPoint, error) {
	var rows []models.MonthlyHistory
	if err := s.db.Where("user_id = ? AND year = ?", userID, year).
		Order("month ASC").
		Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	byMonth := make(map[int]models.MonthlyHistory, len(rows))
	for _, row := range rows {
		byMonth[row.Month] = row
	}

	history := make([]HistoryPoint, 0, 12)
	for month := 0; month < 12; month++ {
		point := HistoryPoint{Month: month, Year: year}
		if row, ok := byMonth[month]; ok {
			point.Income = row.Income
			point.Expense = row.Expense
		}
		history = append(history, point)
	}
	return history, nil
}

func (s *statisticsService) monthHistory(userID string, year, month int) ([]HistoryPoint, error) {
	if month < 0 || month > 11 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 0 and 11")
	}

	var rows []models.DailyHistory
	if err := s.db.Where("user_id = ? AND year = ? AND month = ?", userID, year, month).
		Order("day ASC").
		Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	byDay := make(map[int]models.DailyHistory, len(rows))
	for _, row := range rows {
		byDay[row.Day] = row
	}

	days := daysInMonth(year, month)
	history := make([]HistoryPoint, 0, days)
	for day := 1; day <= days; day++ {
		point := HistoryPoint{Day: day, Month: month, Year: year}
		if row, ok := byDay[day]; ok {
			point.Income = row.Income
			point.Expense = row.Expense
		}
		history = append(history, point)
	}
	return history, nil
}

// DistinctYears returns the ascending years present in the daily rollup
// table, or the current calendar year if the user has no history yet.
func (s *statisticsService) DistinctYears(userID string) ([]int, error) {
	var years []int
	if err := s.db.Model(&models.DailyHistory{}).
		Where("user_id = ?", userID).
		Distinct().
		Order("year ASC").
		Pluck("year", &years).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if len(years) == 0 {
		return []int{time.Now().Year()}, nil
	}
	return years, nil
}

// daysInMonth returns the number of days in the 0-indexed month of year.
// Day zero of the following month normalizes to the last day of this one.
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}
