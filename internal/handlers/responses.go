package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"blog/internal/models"
	"blog/internal/repositories"
	"blog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// statusFor maps service and repository errors onto HTTP status codes.
func statusFor(err error) int {
	var required *models.RequiredFieldError
	var invalid *models.InvalidChoiceError
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, repositories.ErrUniqueViolation):
		return fiber.StatusConflict
	case errors.Is(err, repositories.ErrForeignKeyViolation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrInvalidOTP):
		return fiber.StatusUnauthorized
	case errors.As(err, &required), errors.As(err, &invalid):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// respondError logs err and writes it with the status statusFor picks.
func respondError(c *fiber.Ctx, err error, message string) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("%s: %v", message, err)
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// parseBody decodes the request body into req and validates it. It writes the 400
// response itself and returns false when either step fails.
func parseBody(c *fiber.Ctx, validate *validator.Validate, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   err.Error(),
			})
		}
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}
	return true, nil
}

// paramID reads a numeric route parameter.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, c.Params(name))
	}
	return uint(id), nil
}

func badParam(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request",
		"error":   err.Error(),
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Authentication required",
	})
}
