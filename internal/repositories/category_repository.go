package repositories

import "blog/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	Create(category *models.Category) error
	Update(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	GetAll() ([]models.Category, error)
	PostCount(categoryID uint) (int64, error)
	Delete(id uint) error
}
