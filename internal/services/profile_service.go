package services

import (
	"fmt"

	"blog/internal/models"
	"blog/internal/repositories"
)

// ProfileService reads and edits profiles.
type ProfileService struct {
	store repositories.Store
}

// NewProfileService creates a new ProfileService.
func NewProfileService(store repositories.Store) *ProfileService {
	return &ProfileService{
		store: store,
	}
}

// Get retrieves the profile of an account.
func (s *ProfileService) Get(accountID uint) (*models.Profile, error) {
	return s.store.Profiles().GetByAccountID(accountID)
}

// Update saves profile edits. A blank full name falls back to the owner's.
func (s *ProfileService) Update(profile *models.Profile) error {
	owner, err := s.store.Accounts().GetByID(profile.AccountID)
	if err != nil {
		return fmt.Errorf("failed to load owner of profile %d: %w", profile.ID, err)
	}
	normalized := profile.Normalized(*owner)
	normalized.Account = nil
	if err := s.store.Profiles().Update(&normalized); err != nil {
		return err
	}
	*profile = normalized
	profile.Account = owner
	return nil
}
