package services

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strconv"
	"time"

	"blog/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when an email and password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidOTP is returned when a one-time passcode does not match the stored one.
	ErrInvalidOTP = errors.New("invalid one-time passcode")
)

const otpDigits = 6

// AuthService handles login, token validation and password resets.
type AuthService struct {
	accounts  repositories.AccountRepository
	jwtSecret []byte
	tokenTTL  time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(accounts repositories.AccountRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		accounts:  accounts,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Login authenticates an account by email and returns a signed JWT.
func (s *AuthService) Login(email, password string) (string, error) {
	account, err := s.accounts.GetByEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"account_id": strconv.FormatUint(uint64(account.ID), 10),
		"email":      account.Email,
		"username":   account.Username,
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
		"iat":        time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT, returning its claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// AccountIDFromClaims extracts the account ID carried by a validated token.
func AccountIDFromClaims(claims jwt.MapClaims) (uint, error) {
	raw, ok := claims["account_id"].(string)
	if !ok {
		return 0, fmt.Errorf("invalid token: missing account_id")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token: malformed account_id: %w", err)
	}
	return uint(id), nil
}

// IssueOTP stores a fresh numeric one-time passcode on the account and returns it.
// Delivering the code to the account holder is up to the caller.
func (s *AuthService) IssueOTP(email string) (string, error) {
	account, err := s.accounts.GetByEmail(email)
	if err != nil {
		return "", err
	}

	otp, err := generateOTP(otpDigits)
	if err != nil {
		return "", err
	}
	account.OTP = otp
	if err := s.accounts.Update(account); err != nil {
		return "", err
	}
	return otp, nil
}

// ResetPassword replaces the password when otp matches the stored passcode, then clears it.
func (s *AuthService) ResetPassword(email, otp, newPassword string) error {
	account, err := s.accounts.GetByEmail(email)
	if err != nil {
		return err
	}
	if account.OTP == "" || subtle.ConstantTimeCompare([]byte(account.OTP), []byte(otp)) != 1 {
		return ErrInvalidOTP
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	account.Password = hashed
	account.OTP = ""
	return s.accounts.Update(account)
}

func generateOTP(digits int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate one-time passcode: %w", err)
	}
	return fmt.Sprintf("%0*d", digits, n.Int64()), nil
}
