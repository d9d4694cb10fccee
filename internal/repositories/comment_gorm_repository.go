package repositories

import (
	"errors"
	"fmt"

	"blog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMCommentRepository is a GORM implementation of CommentRepository.
type GORMCommentRepository struct {
	db *gorm.DB
}

// NewGORMCommentRepository creates a new instance of GORMCommentRepository.
func NewGORMCommentRepository(db *gorm.DB) *GORMCommentRepository {
	return &GORMCommentRepository{
		db: db,
	}
}

// Create inserts a comment row.
func (r *GORMCommentRepository) Create(comment *models.Comment) error {
	if err := r.db.Omit(clause.Associations).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", translateError(err))
	}
	return nil
}

// Update writes every column of an existing comment.
func (r *GORMCommentRepository) Update(comment *models.Comment) error {
	res := r.db.Model(comment).Select("*").Omit("Date", clause.Associations).Updates(comment)
	if res.Error != nil {
		return fmt.Errorf("failed to update comment: %w", translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("comment with ID %d not found for update: %w", comment.ID, ErrNotFound)
	}
	return nil
}

// GetByID retrieves a comment by its ID.
func (r *GORMCommentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("comment with ID %d not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get comment by ID %d: %w", id, err)
	}
	return &comment, nil
}

// ListForPost returns the post's comments, most recently created first.
func (r *GORMCommentRepository) ListForPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("post_id = ?", postID).Order("id DESC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to get comments for post %d: %w", postID, err)
	}
	return comments, nil
}

// GORMBookmarkRepository is a GORM implementation of BookmarkRepository.
type GORMBookmarkRepository struct {
	db *gorm.DB
}

// NewGORMBookmarkRepository creates a new instance of GORMBookmarkRepository.
func NewGORMBookmarkRepository(db *gorm.DB) *GORMBookmarkRepository {
	return &GORMBookmarkRepository{
		db: db,
	}
}

// Create inserts a bookmark row.
func (r *GORMBookmarkRepository) Create(bookmark *models.Bookmark) error {
	if err := r.db.Omit(clause.Associations).Create(bookmark).Error; err != nil {
		return fmt.Errorf("failed to create bookmark: %w", translateError(err))
	}
	return nil
}

// Find retrieves the bookmark an account holds on a post.
func (r *GORMBookmarkRepository) Find(accountID, postID uint) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	err := r.db.First(&bookmark, "account_id = ? AND post_id = ?", accountID, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("bookmark of post %d by account %d not found: %w", postID, accountID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}
	return &bookmark, nil
}

// ListForAccount returns the account's bookmarks with their posts, newest first.
func (r *GORMBookmarkRepository) ListForAccount(accountID uint) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := r.db.Preload("Post").Where("account_id = ?", accountID).Order("id DESC").Find(&bookmarks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmarks for account %d: %w", accountID, err)
	}
	return bookmarks, nil
}

// Delete removes a bookmark by its ID.
func (r *GORMBookmarkRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Bookmark{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete bookmark: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("bookmark with ID %d not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}

// GORMNotificationRepository is a GORM implementation of NotificationRepository.
type GORMNotificationRepository struct {
	db *gorm.DB
}

// NewGORMNotificationRepository creates a new instance of GORMNotificationRepository.
func NewGORMNotificationRepository(db *gorm.DB) *GORMNotificationRepository {
	return &GORMNotificationRepository{
		db: db,
	}
}

// Create inserts a notification row.
func (r *GORMNotificationRepository) Create(notification *models.Notification) error {
	if err := r.db.Omit(clause.Associations).Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", translateError(err))
	}
	return nil
}

// ListForAccount returns the account's notifications with their posts, newest first.
func (r *GORMNotificationRepository) ListForAccount(accountID uint, unseenOnly bool) ([]models.Notification, error) {
	query := r.db.Preload("Post").Where("account_id = ?", accountID)
	if unseenOnly {
		query = query.Where("seen = ?", false)
	}

	var notifications []models.Notification
	if err := query.Order("id DESC").Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to get notifications for account %d: %w", accountID, err)
	}
	return notifications, nil
}

// MarkSeen flags one of the account's notifications as seen.
func (r *GORMNotificationRepository) MarkSeen(id, accountID uint) error {
	res := r.db.Model(&models.Notification{}).
		Where("id = ? AND account_id = ?", id, accountID).
		Update("seen", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark notification %d as seen: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("notification with ID %d not found: %w", id, ErrNotFound)
	}
	return nil
}
