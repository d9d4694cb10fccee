package handlers

import (
	"log"

	"blog/internal/models"
	"blog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OTPSender delivers a password reset passcode to the account holder.
type OTPSender interface {
	SendOTP(email, otp string) error
}

// AuthHandler handles HTTP requests for registration, login and password resets.
type AuthHandler struct {
	authService    *services.AuthService
	accountService *services.AccountService
	otpSender      OTPSender
	validate       *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, accountService *services.AccountService, otpSender OTPSender) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		accountService: accountService,
		otpSender:      otpSender,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/otp", h.HandleIssueOTP)
	authRoutes.Post("/password", h.HandleResetPassword)
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"omitempty,max=100"`
	FullName string `json:"full_name" validate:"omitempty,max=100"`
	Password string `json:"password" validate:"required,min=6"`
}

// HandleRegister creates an account together with its profile.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	account := models.Account{
		Email:    req.Email,
		Username: req.Username,
		FullName: req.FullName,
		Password: req.Password,
	}
	profile, err := h.accountService.Register(&account)
	if err != nil {
		log.Printf("Error registering account %s: %v", req.Email, err)
		return respondError(c, err, "Registration failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account registered successfully",
		"account": account,
		"profile": profile,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles account login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		log.Printf("Error during login for %s: %v", req.Email, err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}

// OTPRequest represents the request body asking for a password reset passcode.
type OTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// HandleIssueOTP stores a one-time passcode on the account and sends it to the holder.
func (h *AuthHandler) HandleIssueOTP(c *fiber.Ctx) error {
	var req OTPRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	otp, err := h.authService.IssueOTP(req.Email)
	if err != nil {
		return respondError(c, err, "Could not issue passcode")
	}
	if h.otpSender != nil {
		if err := h.otpSender.SendOTP(req.Email, otp); err != nil {
			return respondError(c, err, "Could not send passcode")
		}
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Passcode sent",
	})
}

// ResetPasswordRequest represents the request body of a password reset.
type ResetPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	OTP      string `json:"otp" validate:"required,numeric"`
	Password string `json:"password" validate:"required,min=6"`
}

// HandleResetPassword replaces the password of an account holding a valid passcode.
func (h *AuthHandler) HandleResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	if err := h.authService.ResetPassword(req.Email, req.OTP, req.Password); err != nil {
		return respondError(c, err, "Password reset failed")
	}

	return c.JSON(fiber.Map{
		"message": "Password updated",
	})
}
