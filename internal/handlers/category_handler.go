package handlers

import (
	"blog/internal/models"
	"blog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	categoryService *services.CategoryService
	validate        *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the category routes. Writes go through auth.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.GetAllCategories)
	categoryRoutes.Post("/", auth, h.CreateCategory)
	categoryRoutes.Get("/:slug", h.GetCategory)
	categoryRoutes.Patch("/:slug", auth, h.UpdateCategory)
	categoryRoutes.Delete("/:slug", auth, h.DeleteCategory)
	categoryRoutes.Get("/:slug/posts", h.GetCategoryPosts)
}

// CategoryRequest represents the request body for creating or editing a category.
type CategoryRequest struct {
	Title string `json:"title" validate:"required,max=100"`
	Image string `json:"image" validate:"omitempty,max=255"`
	Slug  string `json:"slug" validate:"omitempty,max=120"`
}

// GetAllCategories lists categories with their current post counts.
func (h *CategoryHandler) GetAllCategories(c *fiber.Ctx) error {
	categories, err := h.categoryService.List()
	if err != nil {
		return respondError(c, err, "Failed to retrieve categories")
	}
	return c.JSON(categories)
}

// CreateCategory handles the creation of a new category.
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req CategoryRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	category := models.Category{Title: req.Title, Image: req.Image, Slug: req.Slug}
	if err := h.categoryService.Create(&category); err != nil {
		return respondError(c, err, "Failed to create category")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// GetCategory returns a category with its post count.
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	category, err := h.categoryService.GetBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve category")
	}
	count, err := h.categoryService.PostCount(category.ID)
	if err != nil {
		return respondError(c, err, "Failed to count category posts")
	}
	return c.JSON(models.CategoryWithCount{Category: *category, PostCount: count})
}

// UpdateCategory edits a category. The slug stays unless the request names a new one.
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	var req CategoryRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	category, err := h.categoryService.GetBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve category")
	}
	category.Title = req.Title
	category.Image = req.Image
	if req.Slug != "" {
		category.Slug = req.Slug
	}

	if err := h.categoryService.Update(category); err != nil {
		return respondError(c, err, "Failed to update category")
	}
	return c.JSON(category)
}

// DeleteCategory removes a category. Its posts are kept without a category.
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	category, err := h.categoryService.GetBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve category")
	}
	if err := h.categoryService.Delete(category.ID); err != nil {
		return respondError(c, err, "Failed to delete category")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetCategoryPosts lists the category's active posts, or those in the status query parameter.
func (h *CategoryHandler) GetCategoryPosts(c *fiber.Ctx) error {
	status := models.PostStatus(c.Query("status", string(models.StatusActive)))
	if !status.Valid() {
		return respondError(c, &models.InvalidChoiceError{Field: "status", Value: string(status)}, "Invalid status")
	}
	posts, err := h.categoryService.Posts(c.Params("slug"), status)
	if err != nil {
		return respondError(c, err, "Failed to retrieve category posts")
	}
	return c.JSON(posts)
}
