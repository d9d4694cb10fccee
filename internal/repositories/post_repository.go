package repositories

import "blog/internal/models"

// PostFilter narrows a post listing. Zero fields do not filter.
type PostFilter struct {
	Status     models.PostStatus
	CategoryID *uint
	AccountID  *uint
}

// PostRepository defines the interface for post data access.
type PostRepository interface {
	Create(post *models.Post) error
	Update(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	GetBySlug(slug string) (*models.Post, error)
	List(filter PostFilter) ([]models.Post, error)
	IncrementView(id uint) error
	Delete(id uint) error

	AddLike(postID, accountID uint) error
	RemoveLike(postID, accountID uint) error
	HasLike(postID, accountID uint) (bool, error)
	LikeCount(postID uint) (int64, error)
	Likers(postID uint) ([]models.Account, error)
}
