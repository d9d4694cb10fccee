package handlers

import (
	"blog/internal/middleware"
	"blog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AccountHandler handles HTTP requests for the signed-in account and for profiles.
type AccountHandler struct {
	accountService *services.AccountService
	profileService *services.ProfileService
	validate       *validator.Validate
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService *services.AccountService, profileService *services.ProfileService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		profileService: profileService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the account and profile routes. auth guards every route
// except the public profile lookup.
func (h *AccountHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	accountRoutes := router.Group("/accounts")
	accountRoutes.Get("/me", auth, h.GetMe)
	accountRoutes.Patch("/me", auth, h.UpdateMe)
	accountRoutes.Delete("/me", auth, h.DeleteMe)

	profileRoutes := router.Group("/profiles")
	profileRoutes.Patch("/me", auth, h.UpdateMyProfile)
	profileRoutes.Get("/:accountID", h.GetProfile)
}

// GetMe returns the signed-in account and its profile.
func (h *AccountHandler) GetMe(c *fiber.Ctx) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return unauthorized(c)
	}

	account, err := h.accountService.Get(accountID)
	if err != nil {
		return respondError(c, err, "Failed to retrieve account")
	}
	profile, err := h.profileService.Get(accountID)
	if err != nil {
		return respondError(c, err, "Failed to retrieve profile")
	}
	return c.JSON(fiber.Map{
		"account": account,
		"profile": profile,
	})
}

// UpdateAccountRequest represents the editable fields of an account. Blank username and
// full name are derived from the email again.
type UpdateAccountRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"omitempty,max=100"`
	FullName string `json:"full_name" validate:"omitempty,max=100"`
}

// UpdateMe saves account edits and resynchronizes the profile.
func (h *AccountHandler) UpdateMe(c *fiber.Ctx) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return unauthorized(c)
	}
	var req UpdateAccountRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	account, err := h.accountService.Get(accountID)
	if err != nil {
		return respondError(c, err, "Failed to retrieve account")
	}
	account.Email = req.Email
	account.Username = req.Username
	account.FullName = req.FullName

	profile, err := h.accountService.Update(account)
	if err != nil {
		return respondError(c, err, "Failed to update account")
	}
	return c.JSON(fiber.Map{
		"account": account,
		"profile": profile,
	})
}

// DeleteMe removes the signed-in account and everything it owns.
func (h *AccountHandler) DeleteMe(c *fiber.Ctx) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return unauthorized(c)
	}
	if err := h.accountService.Delete(accountID); err != nil {
		return respondError(c, err, "Failed to delete account")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetProfile returns the public profile of an account.
func (h *AccountHandler) GetProfile(c *fiber.Ctx) error {
	accountID, err := paramID(c, "accountID")
	if err != nil {
		return badParam(c, err)
	}
	profile, err := h.profileService.Get(accountID)
	if err != nil {
		return respondError(c, err, "Failed to retrieve profile")
	}
	return c.JSON(profile)
}

// UpdateProfileRequest represents the editable fields of a profile.
type UpdateProfileRequest struct {
	Image    string `json:"image" validate:"omitempty,max=255"`
	FullName string `json:"full_name" validate:"omitempty,max=100"`
	Bio      string `json:"bio"`
	About    string `json:"about"`
	Author   bool   `json:"author"`
	Country  string `json:"country" validate:"omitempty,max=100"`
	Facebook string `json:"facebook" validate:"omitempty,max=100"`
	Twitter  string `json:"twitter" validate:"omitempty,max=100"`
}

// UpdateMyProfile saves edits to the signed-in account's profile.
func (h *AccountHandler) UpdateMyProfile(c *fiber.Ctx) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return unauthorized(c)
	}
	var req UpdateProfileRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	profile, err := h.profileService.Get(accountID)
	if err != nil {
		return respondError(c, err, "Failed to retrieve profile")
	}
	profile.Image = req.Image
	profile.FullName = req.FullName
	profile.Bio = req.Bio
	profile.About = req.About
	profile.Author = req.Author
	profile.Country = req.Country
	profile.Facebook = req.Facebook
	profile.Twitter = req.Twitter

	if err := h.profileService.Update(profile); err != nil {
		return respondError(c, err, "Failed to update profile")
	}
	return c.JSON(profile)
}
