package services

import (
	"blog/internal/models"
	"blog/internal/repositories"
)

// NotificationService reads and acknowledges notifications.
type NotificationService struct {
	store repositories.Store
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(store repositories.Store) *NotificationService {
	return &NotificationService{
		store: store,
	}
}

// List returns an account's notifications, newest first.
func (s *NotificationService) List(accountID uint, unseenOnly bool) ([]models.Notification, error) {
	return s.store.Notifications().ListForAccount(accountID, unseenOnly)
}

// MarkSeen flags a notification owned by accountID as seen.
func (s *NotificationService) MarkSeen(id, accountID uint) error {
	return s.store.Notifications().MarkSeen(id, accountID)
}

// notify records an event on a post for the post's author.
func notify(tx repositories.Store, post *models.Post, kind models.NotificationType) error {
	n := &models.Notification{AccountID: post.AccountID, PostID: post.ID, Type: kind}
	if err := n.Validate(); err != nil {
		return err
	}
	return tx.Notifications().Create(n)
}
