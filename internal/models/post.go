package models

import (
	"strings"
	"time"

	"blog/internal/slugs"
)

// PostStatus is the publication state of a post.
type PostStatus string

const (
	StatusActive   PostStatus = "Active"
	StatusDraft    PostStatus = "Draft"
	StatusDisabled PostStatus = "Disabled"
)

// Valid reports whether s is one of the known statuses.
func (s PostStatus) Valid() bool {
	switch s {
	case StatusActive, StatusDraft, StatusDisabled:
		return true
	}
	return false
}

// Post is authored content owned by an Account. Its likers are stored as PostLike rows.
type Post struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	AccountID   uint       `json:"account_id" gorm:"not null;index"`
	Account     *Account   `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ProfileID   *uint      `json:"profile_id" gorm:"index"`
	Profile     *Profile   `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CategoryID  *uint      `json:"category_id" gorm:"index"`
	Category    *Category  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Title       string     `json:"title" gorm:"type:varchar(100);not null"`
	Image       string     `json:"image" gorm:"type:varchar(255)"`
	Description string     `json:"description" gorm:"type:text"`
	Tags        string     `json:"tags" gorm:"type:varchar(100)"`
	Status      PostStatus `json:"status" gorm:"type:varchar(20);default:Active"`
	View        int        `json:"view" gorm:"default:0"`
	Slug        string     `json:"slug" gorm:"uniqueIndex;type:varchar(120)"`
	Date        time.Time  `json:"date" gorm:"autoCreateTime"`
}

func (p Post) String() string {
	return p.Title
}

// Normalized derives the slug once, from the title plus a short random suffix, and
// defaults a blank status to Active.
func (p Post) Normalized(gen slugs.SuffixGenerator) Post {
	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = slugs.PostSlug(p.Title, gen)
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	return p
}

// Validate checks the fields required before the post is saved.
func (p Post) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return &RequiredFieldError{Field: "title"}
	}
	if p.AccountID == 0 {
		return &RequiredFieldError{Field: "account_id"}
	}
	if p.Status != "" && !p.Status.Valid() {
		return &InvalidChoiceError{Field: "status", Value: string(p.Status)}
	}
	return nil
}

// PostLike is one membership row of a post's "liked by" set.
type PostLike struct {
	PostID    uint      `json:"post_id" gorm:"primaryKey"`
	Post      *Post     `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AccountID uint      `json:"account_id" gorm:"primaryKey"`
	Account   *Account  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Date      time.Time `json:"date" gorm:"autoCreateTime"`
}
