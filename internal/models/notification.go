package models

import (
	"fmt"
	"time"
)

// NotificationType names the event a notification reports.
type NotificationType string

const (
	NotifyLike     NotificationType = "Like"
	NotifyComment  NotificationType = "Comment"
	NotifyBookmark NotificationType = "Bookmark"
)

// Valid reports whether t is one of the known notification types.
func (t NotificationType) Valid() bool {
	switch t {
	case NotifyLike, NotifyComment, NotifyBookmark:
		return true
	}
	return false
}

// Notification records a like, comment or bookmark on a post for the account that owns it.
type Notification struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	AccountID uint             `json:"account_id" gorm:"not null;index"`
	Account   *Account         `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PostID    uint             `json:"post_id" gorm:"not null;index"`
	Post      *Post            `json:"post,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Type      NotificationType `json:"type" gorm:"type:varchar(20);not null"`
	Seen      bool             `json:"seen" gorm:"default:false"`
	Date      time.Time        `json:"date" gorm:"autoCreateTime"`
}

// String falls back to a generic label when the post is not loaded.
func (n Notification) String() string {
	if n.Post != nil {
		return fmt.Sprintf("%s - %s", n.Type, n.Post.Title)
	}
	return "Notification"
}

// Validate checks the type is known.
func (n Notification) Validate() error {
	if !n.Type.Valid() {
		return &InvalidChoiceError{Field: "type", Value: string(n.Type)}
	}
	return nil
}
