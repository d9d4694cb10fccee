package middleware

import (
	"log"
	"strings"

	"blog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AccountIDKey is the fiber.Ctx local holding the authenticated account ID.
const AccountIDKey = "account_id"

// AuthRequired is a Fiber middleware to check for a valid JWT token.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		accountID, err := services.AccountIDFromClaims(claims)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		c.Locals(AccountIDKey, accountID)
		c.Locals("email", claims["email"])

		return c.Next()
	}
}

// AccountID returns the authenticated account ID stored by AuthRequired.
func AccountID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(AccountIDKey).(uint)
	return id, ok
}
