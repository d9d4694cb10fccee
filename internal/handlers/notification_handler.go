package handlers

import (
	"blog/internal/middleware"
	"blog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler handles HTTP requests for the signed-in account's notifications.
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// RegisterRoutes registers the notification routes, all behind auth.
func (h *NotificationHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	notificationRoutes := router.Group("/notifications", auth)
	notificationRoutes.Get("/", h.GetNotifications)
	notificationRoutes.Post("/:id/seen", h.MarkSeen)
}

// GetNotifications lists notifications newest first. unseen=true hides those already seen.
func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return unauthorized(c)
	}
	notifications, err := h.notificationService.List(accountID, c.QueryBool("unseen", false))
	if err != nil {
		return respondError(c, err, "Failed to retrieve notifications")
	}
	return c.JSON(notifications)
}

// MarkSeen flags one of the account's notifications as seen.
func (h *NotificationHandler) MarkSeen(c *fiber.Ctx) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return badParam(c, err)
	}
	if err := h.notificationService.MarkSeen(id, accountID); err != nil {
		return respondError(c, err, "Failed to update notification")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
