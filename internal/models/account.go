package models

import (
	"strings"
	"time"
)

// DefaultProfileImage is the avatar reference used when a profile has none.
const DefaultProfileImage = "default/default-user.jpg"

// Account is a user identity keyed by a unique email.
type Account struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Email    string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Username string    `json:"username" gorm:"uniqueIndex;type:varchar(100);not null"`
	FullName string    `json:"full_name" gorm:"type:varchar(100)"`
	OTP      string    `json:"-" gorm:"column:otp;type:varchar(100)"`
	Password string    `json:"-" gorm:"type:varchar(255)"` // bcrypt hash
	Date     time.Time `json:"date" gorm:"autoCreateTime"`
}

func (a Account) String() string {
	return a.Email
}

// EmailLocalPart returns the part of the email before the "@" separator.
func (a Account) EmailLocalPart() string {
	local, _, _ := strings.Cut(a.Email, "@")
	return local
}

// Normalized fills a blank FullName and Username from the email's local part.
// It runs before every save, so a username cleared later is re-derived from the current email.
func (a Account) Normalized() Account {
	local := a.EmailLocalPart()
	if strings.TrimSpace(a.FullName) == "" {
		a.FullName = local
	}
	if strings.TrimSpace(a.Username) == "" {
		a.Username = local
	}
	return a
}

// Validate checks the fields that must be present once the account is normalized.
func (a Account) Validate() error {
	if strings.TrimSpace(a.Email) == "" {
		return &RequiredFieldError{Field: "email"}
	}
	if strings.TrimSpace(a.Username) == "" {
		return &RequiredFieldError{Field: "username"}
	}
	return nil
}

// Profile carries the display metadata of exactly one Account.
type Profile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AccountID uint      `json:"account_id" gorm:"uniqueIndex;not null"`
	Account   *Account  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Image     string    `json:"image" gorm:"type:varchar(255)"`
	FullName  string    `json:"full_name" gorm:"type:varchar(100)"`
	Bio       string    `json:"bio" gorm:"type:text"`
	About     string    `json:"about" gorm:"type:text"`
	Author    bool      `json:"author" gorm:"default:false"`
	Country   string    `json:"country" gorm:"type:varchar(100)"`
	Facebook  string    `json:"facebook" gorm:"type:varchar(100)"`
	Twitter   string    `json:"twitter" gorm:"type:varchar(100)"`
	Date      time.Time `json:"date" gorm:"autoCreateTime"`
}

// Normalized copies the owner's FullName into a blank FullName and sets the placeholder image.
func (p Profile) Normalized(owner Account) Profile {
	if strings.TrimSpace(p.FullName) == "" {
		p.FullName = owner.FullName
	}
	if p.Image == "" {
		p.Image = DefaultProfileImage
	}
	return p
}

// DisplayName returns the profile's own name, or the owner's when the profile has none.
func (p Profile) DisplayName(owner Account) string {
	if p.FullName != "" {
		return p.FullName
	}
	return owner.FullName
}

func (p Profile) String() string {
	if p.Account != nil {
		return p.DisplayName(*p.Account)
	}
	return p.FullName
}
