package repositories

import (
	"errors"
	"fmt"

	"blog/internal/models"

	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// Create inserts a category row.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", translateError(err))
	}
	return nil
}

// Update writes every column of an existing category.
func (r *GORMCategoryRepository) Update(category *models.Category) error {
	res := r.db.Model(category).Select("*").Omit("Date").Updates(category)
	if res.Error != nil {
		return fmt.Errorf("failed to update category: %w", translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with ID %d not found for update: %w", category.ID, ErrNotFound)
	}
	return nil
}

// GetByID retrieves a category by its ID.
func (r *GORMCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with ID %d not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by ID %d: %w", id, err)
	}
	return &category, nil
}

// GetBySlug retrieves a category by its slug.
func (r *GORMCategoryRepository) GetBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with slug %s not found: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by slug %s: %w", slug, err)
	}
	return &category, nil
}

// GetAll retrieves every category ordered by title.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("title").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

// PostCount counts the posts currently referencing the category.
func (r *GORMCategoryRepository) PostCount(categoryID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Post{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count posts for category %d: %w", categoryID, err)
	}
	return count, nil
}

// Delete removes a category. Posts that referenced it keep existing with no category.
func (r *GORMCategoryRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category: %w", translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with ID %d not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}
