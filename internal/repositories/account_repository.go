package repositories

import "blog/internal/models"

// AccountRepository defines the interface for account data access.
type AccountRepository interface {
	Create(account *models.Account) error
	Update(account *models.Account) error
	GetByID(id uint) (*models.Account, error)
	GetByEmail(email string) (*models.Account, error)
	GetByUsername(username string) (*models.Account, error)
	Delete(id uint) error
}

// ProfileRepository defines the interface for profile data access.
type ProfileRepository interface {
	Create(profile *models.Profile) error
	Update(profile *models.Profile) error
	GetByAccountID(accountID uint) (*models.Profile, error)
	CountByAccountID(accountID uint) (int64, error)
}
