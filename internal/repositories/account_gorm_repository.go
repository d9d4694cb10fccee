package repositories

import (
	"errors"
	"fmt"

	"blog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMAccountRepository is a GORM implementation of AccountRepository.
type GORMAccountRepository struct {
	db *gorm.DB
}

// NewGORMAccountRepository creates a new instance of GORMAccountRepository.
func NewGORMAccountRepository(db *gorm.DB) *GORMAccountRepository {
	return &GORMAccountRepository{
		db: db,
	}
}

// Create inserts a new account row.
func (r *GORMAccountRepository) Create(account *models.Account) error {
	if err := r.db.Omit(clause.Associations).Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", translateError(err))
	}
	return nil
}

// Update writes every column of an existing account.
func (r *GORMAccountRepository) Update(account *models.Account) error {
	res := r.db.Model(account).Select("*").Omit("Date").Updates(account)
	if res.Error != nil {
		return fmt.Errorf("failed to update account: %w", translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("account with ID %d not found for update: %w", account.ID, ErrNotFound)
	}
	return nil
}

// GetByID retrieves an account by its ID.
func (r *GORMAccountRepository) GetByID(id uint) (*models.Account, error) {
	return r.first("id = ?", id, fmt.Sprintf("ID %d", id))
}

// GetByEmail retrieves an account by its email.
func (r *GORMAccountRepository) GetByEmail(email string) (*models.Account, error) {
	return r.first("email = ?", email, "email "+email)
}

// GetByUsername retrieves an account by its username.
func (r *GORMAccountRepository) GetByUsername(username string) (*models.Account, error) {
	return r.first("username = ?", username, "username "+username)
}

func (r *GORMAccountRepository) first(query string, arg interface{}, desc string) (*models.Account, error) {
	var account models.Account
	if err := r.db.First(&account, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("account with %s not found: %w", desc, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get account by %s: %w", desc, err)
	}
	return &account, nil
}

// Delete removes an account. Its profile, posts, bookmarks and notifications cascade.
func (r *GORMAccountRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Account{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete account: %w", translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("account with ID %d not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}

// GORMProfileRepository is a GORM implementation of ProfileRepository.
type GORMProfileRepository struct {
	db *gorm.DB
}

// NewGORMProfileRepository creates a new instance of GORMProfileRepository.
func NewGORMProfileRepository(db *gorm.DB) *GORMProfileRepository {
	return &GORMProfileRepository{
		db: db,
	}
}

// Create inserts a profile row.
func (r *GORMProfileRepository) Create(profile *models.Profile) error {
	if err := r.db.Omit(clause.Associations).Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", translateError(err))
	}
	return nil
}

// Update writes every column of an existing profile.
func (r *GORMProfileRepository) Update(profile *models.Profile) error {
	res := r.db.Model(profile).Select("*").Omit("Date", clause.Associations).Updates(profile)
	if res.Error != nil {
		return fmt.Errorf("failed to update profile: %w", translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("profile with ID %d not found for update: %w", profile.ID, ErrNotFound)
	}
	return nil
}

// GetByAccountID retrieves the profile owned by an account, with the account loaded.
func (r *GORMProfileRepository) GetByAccountID(accountID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Preload("Account").First(&profile, "account_id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile for account %d not found: %w", accountID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get profile for account %d: %w", accountID, err)
	}
	return &profile, nil
}

// CountByAccountID returns how many profiles reference an account.
func (r *GORMProfileRepository) CountByAccountID(accountID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Profile{}).Where("account_id = ?", accountID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count profiles for account %d: %w", accountID, err)
	}
	return count, nil
}
