package services_test

import (
	"fmt"
	"testing"
	"time"

	"blog/internal/models"
	"blog/internal/repositories"
	"blog/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockAccountRepository is a mock implementation of repositories.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(account *models.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(account *models.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByID(id uint) (*models.Account, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByEmail(email string) (*models.Account, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByUsername(username string) (*models.Account, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

const testJWTSecret = "test_jwt_secret"

func hashedAccount(t *testing.T) *models.Account {
	t.Helper()
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.Account{
		ID:       123,
		Email:    "test@example.com",
		Username: "test",
		Password: string(hashedPassword),
	}
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)
	account := hashedAccount(t)

	// Test successful login
	mockRepo.On("GetByEmail", account.Email).Return(account, nil).Once()
	token, err := authService.Login(account.Email, "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "123", claims["account_id"])
	assert.Equal(t, account.Email, claims["email"])

	id, err := services.AccountIDFromClaims(claims)
	require.NoError(t, err)
	assert.EqualValues(t, 123, id)

	// Test wrong password
	mockRepo.On("GetByEmail", account.Email).Return(account, nil).Once()
	_, err = authService.Login(account.Email, "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Test unknown email; the error does not reveal whether the account exists
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, repositories.ErrNotFound).Once()
	_, err = authService.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"account_id": "7",
		"exp":        jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	claims, err := authService.ValidateToken(validTokenString)
	require.NoError(t, err)
	assert.Equal(t, "7", claims["account_id"])

	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"account_id": "7",
		"exp":        jwt.TimeFunc().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)

	otherSecret, _ := token.SignedString([]byte("another_secret"))
	_, err = authService.ValidateToken(otherSecret)
	assert.Error(t, err)
}

func TestAccountIDFromClaims_Malformed(t *testing.T) {
	_, err := services.AccountIDFromClaims(jwt.MapClaims{})
	assert.Error(t, err)
	_, err = services.AccountIDFromClaims(jwt.MapClaims{"account_id": "abc"})
	assert.Error(t, err)
}

func TestAuthService_OTPPasswordReset(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)
	account := hashedAccount(t)

	mockRepo.On("GetByEmail", account.Email).Return(account, nil)
	mockRepo.On("Update", account).Return(nil)

	otp, err := authService.IssueOTP(account.Email)
	require.NoError(t, err)
	assert.Len(t, otp, 6)
	assert.Equal(t, otp, account.OTP)

	assert.ErrorIs(t, authService.ResetPassword(account.Email, "not-it", "newpassword"), services.ErrInvalidOTP)

	require.NoError(t, authService.ResetPassword(account.Email, otp, "newpassword"))
	assert.Empty(t, account.OTP)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.Password), []byte("newpassword")))

	// The passcode is single use.
	assert.ErrorIs(t, authService.ResetPassword(account.Email, otp, "again"), services.ErrInvalidOTP)
	mockRepo.AssertExpectations(t)
}
