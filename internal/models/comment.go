package models

import (
	"fmt"
	"strings"
	"time"
)

// Comment is feedback attached to a post. The author is identified by name and email only.
type Comment struct {
	ID      uint      `json:"id" gorm:"primaryKey"`
	PostID  uint      `json:"post_id" gorm:"not null;index"`
	Post    *Post     `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Name    string    `json:"name" gorm:"type:varchar(100)"`
	Email   string    `json:"email" gorm:"type:varchar(100)"`
	Comment string    `json:"comment" gorm:"type:text;not null"`
	Reply   string    `json:"reply" gorm:"type:text"`
	Date    time.Time `json:"date" gorm:"autoCreateTime"`
}

func (c Comment) String() string {
	title := ""
	if c.Post != nil {
		title = c.Post.Title
	}
	return fmt.Sprintf("%s - %s", title, c.Name)
}

// Validate checks the fields required before the comment is saved.
func (c Comment) Validate() error {
	if strings.TrimSpace(c.Comment) == "" {
		return &RequiredFieldError{Field: "comment"}
	}
	if c.PostID == 0 {
		return &RequiredFieldError{Field: "post_id"}
	}
	return nil
}
