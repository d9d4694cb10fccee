package models

import (
	"strings"
	"time"

	"blog/internal/slugs"
)

// Category groups posts under a unique slug.
type Category struct {
	ID    uint      `json:"id" gorm:"primaryKey"`
	Title string    `json:"title" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Image string    `json:"image" gorm:"type:varchar(255)"`
	Slug  string    `json:"slug" gorm:"uniqueIndex;type:varchar(120)"`
	Date  time.Time `json:"date" gorm:"autoCreateTime"`
}

func (c Category) String() string {
	return c.Title
}

// Normalized derives the slug from the title when none is set. An existing slug is kept as is.
func (c Category) Normalized() Category {
	if strings.TrimSpace(c.Slug) == "" {
		c.Slug = slugs.Normalize(c.Title)
	}
	return c
}

// Validate checks the fields required before the category is saved.
func (c Category) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return &RequiredFieldError{Field: "title"}
	}
	return nil
}

// CategoryWithCount pairs a category with the number of posts referencing it.
type CategoryWithCount struct {
	Category
	PostCount int64 `json:"post_count"`
}
