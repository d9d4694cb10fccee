package services_test

import (
	"testing"

	"blog/internal/models"
	"blog/internal/repositories"
	"blog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAccountService_Register_DerivesDefaultsAndProfile(t *testing.T) {
	store, _ := newTestStore(t)
	publisher := new(MockPublisher)
	publisher.On("Publish", services.EventAccountRegistered, mock.Anything).Return(nil).Once()
	service := services.NewAccountService(store, publisher)

	account := &models.Account{Email: "jane@example.com", Password: "password123"}
	profile, err := service.Register(account)
	require.NoError(t, err)

	assert.NotZero(t, account.ID)
	assert.Equal(t, "jane", account.Username)
	assert.Equal(t, "jane", account.FullName)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.Password), []byte("password123")))

	require.NotNil(t, profile)
	assert.Equal(t, account.ID, profile.AccountID)
	assert.Equal(t, "jane", profile.FullName)
	assert.Equal(t, models.DefaultProfileImage, profile.Image)

	count, err := store.Profiles().CountByAccountID(account.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	stored, err := store.Profiles().GetByAccountID(account.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane", stored.FullName)
	publisher.AssertExpectations(t)
}

func TestAccountService_Register_KeepsExplicitFields(t *testing.T) {
	store, _ := newTestStore(t)
	service := services.NewAccountService(store, nil)

	account := &models.Account{Email: "jane@example.com", Username: "janedoe", FullName: "Jane Doe"}
	profile, err := service.Register(account)
	require.NoError(t, err)
	assert.Equal(t, "janedoe", account.Username)
	assert.Equal(t, "Jane Doe", profile.FullName)
}

func TestAccountService_Register_DuplicateEmailOrUsername(t *testing.T) {
	store, _ := newTestStore(t)
	service := services.NewAccountService(store, nil)

	_, err := service.Register(&models.Account{Email: "jane@example.com"})
	require.NoError(t, err)

	_, err = service.Register(&models.Account{Email: "jane@example.com", Username: "someoneelse"})
	assert.ErrorIs(t, err, repositories.ErrUniqueViolation)

	// The derived username "jane" is already taken.
	_, err = service.Register(&models.Account{Email: "jane@example.org"})
	assert.ErrorIs(t, err, repositories.ErrUniqueViolation)
}

func TestAccountService_Register_RequiresEmail(t *testing.T) {
	store, _ := newTestStore(t)
	service := services.NewAccountService(store, nil)

	_, err := service.Register(&models.Account{Username: "nobody"})
	var reqErr *models.RequiredFieldError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "email", reqErr.Field)
}

func TestAccountService_Register_RollsBackWhenProfileFails(t *testing.T) {
	store, db := newTestStore(t)
	require.NoError(t, db.Exec(
		"CREATE TRIGGER reject_profiles BEFORE INSERT ON profiles BEGIN SELECT RAISE(ABORT, 'profile storage unavailable'); END;",
	).Error)
	publisher := new(MockPublisher)
	service := services.NewAccountService(store, publisher)

	_, err := service.Register(&models.Account{Email: "jane@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile storage unavailable")

	_, err = store.Accounts().GetByEmail("jane@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestAccountService_Update_ResavesProfile(t *testing.T) {
	store, _ := newTestStore(t)
	service := services.NewAccountService(store, nil)

	account := &models.Account{Email: "jane@example.com"}
	_, err := service.Register(account)
	require.NoError(t, err)

	// Clear the profile name so the next account save backfills it from the new full name.
	profile, err := store.Profiles().GetByAccountID(account.ID)
	require.NoError(t, err)
	profile.FullName = ""
	profile.Account = nil
	require.NoError(t, store.Profiles().Update(profile))

	account.FullName = "Jane Doe"
	account.Username = ""
	updated, err := service.Update(account)
	require.NoError(t, err)

	assert.Equal(t, "jane", account.Username, "blank username is derived again from the email")
	assert.Equal(t, "Jane Doe", updated.FullName)

	stored, err := store.Accounts().GetByID(account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", stored.FullName)
}

func TestAccountService_Update_RollsBackWhenProfileFails(t *testing.T) {
	store, db := newTestStore(t)
	service := services.NewAccountService(store, nil)

	account := &models.Account{Email: "jane@example.com"}
	_, err := service.Register(account)
	require.NoError(t, err)

	require.NoError(t, db.Exec(
		"CREATE TRIGGER reject_profile_updates BEFORE UPDATE ON profiles BEGIN SELECT RAISE(ABORT, 'profile storage unavailable'); END;",
	).Error)

	account.FullName = "Renamed"
	_, err = service.Update(account)
	require.Error(t, err)

	stored, err := store.Accounts().GetByID(account.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane", stored.FullName)
}

func TestAccountService_Delete_RemovesProfile(t *testing.T) {
	store, _ := newTestStore(t)
	service := services.NewAccountService(store, nil)

	account := &models.Account{Email: "jane@example.com"}
	_, err := service.Register(account)
	require.NoError(t, err)

	require.NoError(t, service.Delete(account.ID))

	count, err := store.Profiles().CountByAccountID(account.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.ErrorIs(t, service.Delete(account.ID), repositories.ErrNotFound)
}

func TestProfileService_Update_BackfillsFromOwner(t *testing.T) {
	store, _ := newTestStore(t)
	accounts := services.NewAccountService(store, nil)
	profiles := services.NewProfileService(store)

	account := &models.Account{Email: "jane@example.com", FullName: "Jane Doe"}
	_, err := accounts.Register(account)
	require.NoError(t, err)

	profile, err := profiles.Get(account.ID)
	require.NoError(t, err)
	profile.Bio = "Writes about Go."
	profile.FullName = ""
	require.NoError(t, profiles.Update(profile))

	stored, err := profiles.Get(account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", stored.FullName)
	assert.Equal(t, "Writes about Go.", stored.Bio)
	assert.Equal(t, "Jane Doe", stored.String())
}
