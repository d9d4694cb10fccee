package repositories

import (
	"errors"
	"fmt"

	"blog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMPostRepository is a GORM implementation of PostRepository.
type GORMPostRepository struct {
	db *gorm.DB
}

// NewGORMPostRepository creates a new instance of GORMPostRepository.
func NewGORMPostRepository(db *gorm.DB) *GORMPostRepository {
	return &GORMPostRepository{
		db: db,
	}
}

// Create inserts a post row.
func (r *GORMPostRepository) Create(post *models.Post) error {
	if err := r.db.Omit(clause.Associations).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", translateError(err))
	}
	return nil
}

// Update writes every column of an existing post.
func (r *GORMPostRepository) Update(post *models.Post) error {
	res := r.db.Model(post).Select("*").Omit("Date", clause.Associations).Updates(post)
	if res.Error != nil {
		return fmt.Errorf("failed to update post: %w", translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("post with ID %d not found for update: %w", post.ID, ErrNotFound)
	}
	return nil
}

// GetByID retrieves a post by its ID with its author, profile and category loaded.
func (r *GORMPostRepository) GetByID(id uint) (*models.Post, error) {
	return r.first("posts.id = ?", id, fmt.Sprintf("ID %d", id))
}

// GetBySlug retrieves a post by its slug with its author, profile and category loaded.
func (r *GORMPostRepository) GetBySlug(slug string) (*models.Post, error) {
	return r.first("posts.slug = ?", slug, "slug "+slug)
}

func (r *GORMPostRepository) first(query string, arg interface{}, desc string) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Account").Preload("Profile").Preload("Category").First(&post, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post with %s not found: %w", desc, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get post by %s: %w", desc, err)
	}
	return &post, nil
}

// List retrieves posts matching filter, newest first.
func (r *GORMPostRepository) List(filter PostFilter) ([]models.Post, error) {
	query := r.db.Model(&models.Post{}).Preload("Category")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}

	var posts []models.Post
	if err := query.Order("id DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// IncrementView adds one to the post's view counter.
func (r *GORMPostRepository) IncrementView(id uint) error {
	res := r.db.Model(&models.Post{}).Where("id = ?", id).UpdateColumn("view", gorm.Expr("view + ?", 1))
	if res.Error != nil {
		return fmt.Errorf("failed to increment views of post %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("post with ID %d not found: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a post. Its comments, bookmarks, notifications and likes cascade.
func (r *GORMPostRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Post{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete post: %w", translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("post with ID %d not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}

// AddLike puts the account in the post's liked-by set. Adding an existing member is a no-op.
func (r *GORMPostRepository) AddLike(postID, accountID uint) error {
	like := models.PostLike{PostID: postID, AccountID: accountID}
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(&like).Error
	if err != nil {
		return fmt.Errorf("failed to like post %d: %w", postID, translateError(err))
	}
	return nil
}

// RemoveLike takes the account out of the post's liked-by set.
func (r *GORMPostRepository) RemoveLike(postID, accountID uint) error {
	err := r.db.Where("post_id = ? AND account_id = ?", postID, accountID).Delete(&models.PostLike{}).Error
	if err != nil {
		return fmt.Errorf("failed to unlike post %d: %w", postID, err)
	}
	return nil
}

// HasLike reports whether the account is in the post's liked-by set.
func (r *GORMPostRepository) HasLike(postID, accountID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.PostLike{}).Where("post_id = ? AND account_id = ?", postID, accountID).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check like on post %d: %w", postID, err)
	}
	return count > 0, nil
}

// LikeCount counts the accounts that like the post.
func (r *GORMPostRepository) LikeCount(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.PostLike{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count likes on post %d: %w", postID, err)
	}
	return count, nil
}

// Likers returns the accounts that like the post.
func (r *GORMPostRepository) Likers(postID uint) ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.Joins("JOIN post_likes ON post_likes.account_id = accounts.id").
		Where("post_likes.post_id = ?", postID).
		Order("accounts.id").
		Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get likers of post %d: %w", postID, err)
	}
	return accounts, nil
}
