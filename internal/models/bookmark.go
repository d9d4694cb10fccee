package models

import (
	"fmt"
	"time"
)

// Bookmark marks a post as saved by an account.
type Bookmark struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AccountID uint      `json:"account_id" gorm:"not null;index"`
	Account   *Account  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PostID    uint      `json:"post_id" gorm:"not null;index"`
	Post      *Post     `json:"post,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Date      time.Time `json:"date" gorm:"autoCreateTime"`
}

func (b Bookmark) String() string {
	var title, username string
	if b.Post != nil {
		title = b.Post.Title
	}
	if b.Account != nil {
		username = b.Account.Username
	}
	return fmt.Sprintf("%s - %s", title, username)
}
