package services

import (
	"fmt"

	"blog/internal/models"
	"blog/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	store repositories.Store
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store repositories.Store) *CategoryService {
	return &CategoryService{
		store: store,
	}
}

// Create saves a new category, deriving its slug from the title when none is given.
// Two categories whose titles normalize to the same slug collide with ErrUniqueViolation.
func (s *CategoryService) Create(category *models.Category) error {
	normalized := category.Normalized()
	if err := normalized.Validate(); err != nil {
		return err
	}
	if err := s.store.Categories().Create(&normalized); err != nil {
		return err
	}
	*category = normalized
	return nil
}

// Update saves category edits. A slug that is already set is kept even if the title changed.
func (s *CategoryService) Update(category *models.Category) error {
	normalized := category.Normalized()
	if err := normalized.Validate(); err != nil {
		return err
	}
	if err := s.store.Categories().Update(&normalized); err != nil {
		return err
	}
	*category = normalized
	return nil
}

// GetBySlug retrieves a category by its slug.
func (s *CategoryService) GetBySlug(slug string) (*models.Category, error) {
	return s.store.Categories().GetBySlug(slug)
}

// List returns every category with a live count of the posts referencing it.
func (s *CategoryService) List() ([]models.CategoryWithCount, error) {
	categories, err := s.store.Categories().GetAll()
	if err != nil {
		return nil, err
	}

	result := make([]models.CategoryWithCount, 0, len(categories))
	for _, c := range categories {
		count, err := s.store.Categories().PostCount(c.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, models.CategoryWithCount{Category: c, PostCount: count})
	}
	return result, nil
}

// PostCount counts the posts currently in the category.
func (s *CategoryService) PostCount(categoryID uint) (int64, error) {
	return s.store.Categories().PostCount(categoryID)
}

// Posts lists the category's posts in the given status, newest first.
func (s *CategoryService) Posts(slug string, status models.PostStatus) ([]models.Post, error) {
	category, err := s.store.Categories().GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	posts, err := s.store.Posts().List(repositories.PostFilter{Status: status, CategoryID: &category.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to get posts of category %s: %w", slug, err)
	}
	return posts, nil
}

// Delete removes a category. Its posts stay, with no category.
func (s *CategoryService) Delete(id uint) error {
	return s.store.Categories().Delete(id)
}
