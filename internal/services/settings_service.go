package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/validator"
)

// settingsService handles user settings business logic.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// GetUserSettings returns the user's settings, creating a row with the
// default currency on first access.
func (s *settingsService) GetUserSettings(userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	settings = models.UserSettings{
		UserID:   userID,
		Currency: models.DefaultCurrency,
	}
	if err := s.db.Create(&settings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &settings, nil
}

// UpdateCurrency sets the user's display currency.
func (s *settingsService) UpdateCurrency(userID, currency string) (*models.UserSettings, error) {
	if !validator.IsSupportedCurrency(currency) {
		return nil, apperrors.ErrUnsupportedCurrency
	}

	settings, err := s.GetUserSettings(userID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(settings).Update("currency", currency).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	settings.Currency = currency
	return settings, nil
}
