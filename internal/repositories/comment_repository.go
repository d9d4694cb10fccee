package repositories

import "blog/internal/models"

// CommentRepository defines the interface for comment data access.
type CommentRepository interface {
	Create(comment *models.Comment) error
	Update(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	ListForPost(postID uint) ([]models.Comment, error)
}

// BookmarkRepository defines the interface for bookmark data access.
type BookmarkRepository interface {
	Create(bookmark *models.Bookmark) error
	Find(accountID, postID uint) (*models.Bookmark, error)
	ListForAccount(accountID uint) ([]models.Bookmark, error)
	Delete(id uint) error
}

// NotificationRepository defines the interface for notification data access.
type NotificationRepository interface {
	Create(notification *models.Notification) error
	ListForAccount(accountID uint, unseenOnly bool) ([]models.Notification, error)
	MarkSeen(id, accountID uint) error
}
