package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new category
func (s *categoryService) CreateCategory(userID, name, icon string, categoryType models.CategoryType) (*models.Category, error) {
	if name == "" || len(name) > 50 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name must be between 1 and 50 characters")
	}
	if icon == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category icon is required")
	}

	// Names are unique per user regardless of type, since transactions
	// resolve categories by name alone.
	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateCategory
	}

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Icon:   icon,
		Type:   categoryType,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// ListCategories retrieves a user's categories ordered by name, optionally
// filtered by type.
func (s *categoryService) ListCategories(userID string, categoryType *models.CategoryType) ([]models.Category, error) {
	q := s.db.Where("user_id = ?", userID)
	if categoryType != nil {
		q = q.Where("type = ?", *categoryType)
	}

	var categories []models.Category
	if err := q.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategoryByName retrieves a category by its per-user unique name.
func (s *categoryService) GetCategoryByName(userID, name string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("user_id = ? AND name = ?", userID, name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// DeleteCategory deletes a category. Existing transactions carry their own
// snapshot of the category name and icon, so history is unaffected.
func (s *categoryService) DeleteCategory(userID, categoryID string) error {
	result := s.db.Where("id = ? AND user_id = ?", categoryID, userID).Delete(&models.Category{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}
