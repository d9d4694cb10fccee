package services

import (
	"fmt"

	"blog/internal/models"
	"blog/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AccountService keeps every account paired with exactly one profile.
type AccountService struct {
	store     repositories.Store
	publisher EventPublisher
}

// NewAccountService creates a new AccountService. publisher may be nil.
func NewAccountService(store repositories.Store, publisher EventPublisher) *AccountService {
	return &AccountService{
		store:     store,
		publisher: publisher,
	}
}

// Register creates an account and its profile in one transaction. account.Password holds
// the plain password on input and the bcrypt hash on return. If either row fails to
// write, neither is kept.
func (s *AccountService) Register(account *models.Account) (*models.Profile, error) {
	normalized := account.Normalized()
	if err := normalized.Validate(); err != nil {
		return nil, err
	}

	if normalized.Password != "" {
		hashed, err := HashPassword(normalized.Password)
		if err != nil {
			return nil, err
		}
		normalized.Password = hashed
	}

	var profile *models.Profile
	err := s.store.Transaction(func(tx repositories.Store) error {
		if err := tx.Accounts().Create(&normalized); err != nil {
			return err
		}
		if err := tx.Profiles().Create(&models.Profile{AccountID: normalized.ID}); err != nil {
			return err
		}
		synced, err := syncProfile(tx, normalized)
		if err != nil {
			return err
		}
		profile = synced
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register account: %w", err)
	}

	*account = normalized
	publishEvent(s.publisher, Event{Type: EventAccountRegistered, AccountID: account.ID})
	return profile, nil
}

// Update saves the account and then re-saves its profile against the new account state,
// both in one transaction.
func (s *AccountService) Update(account *models.Account) (*models.Profile, error) {
	normalized := account.Normalized()
	if err := normalized.Validate(); err != nil {
		return nil, err
	}

	var profile *models.Profile
	err := s.store.Transaction(func(tx repositories.Store) error {
		if err := tx.Accounts().Update(&normalized); err != nil {
			return err
		}
		synced, err := syncProfile(tx, normalized)
		if err != nil {
			return err
		}
		profile = synced
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update account %d: %w", account.ID, err)
	}

	*account = normalized
	return profile, nil
}

// Get retrieves an account by its ID.
func (s *AccountService) Get(id uint) (*models.Account, error) {
	return s.store.Accounts().GetByID(id)
}

// Delete removes an account together with everything it owns.
func (s *AccountService) Delete(id uint) error {
	return s.store.Accounts().Delete(id)
}

// syncProfile saves the account's profile so blank fields are backfilled from owner.
func syncProfile(tx repositories.Store, owner models.Account) (*models.Profile, error) {
	profile, err := tx.Profiles().GetByAccountID(owner.ID)
	if err != nil {
		return nil, err
	}
	normalized := profile.Normalized(owner)
	normalized.Account = nil
	if err := tx.Profiles().Update(&normalized); err != nil {
		return nil, err
	}
	return &normalized, nil
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
