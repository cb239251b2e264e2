package controllers

import (
	"Backend-Tutoria-001/src/models"
	"Backend-Tutoria-001/src/services"
	"Backend-Tutoria-001/src/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// CreateNotification lets staff push a single notification into a student's
// inbox. Broadcasts go through general messages instead.
func CreateNotification(c *fiber.Ctx) error {
	var n models.StudentNotification
	if err := c.BodyParser(&n); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if n.StudentID.IsZero() || n.Title == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "studentId and title are required")
	}
	if n.Type == "" {
		n.Type = models.NotifySystem
	}

	if err := services.CreateNotification(&n); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating notification")
	}

	return c.Status(fiber.StatusCreated).JSON(n)
}

func GetNotificationsByStudent(c *fiber.Ctx) error {
	notifications, err := services.GetNotificationsByStudent(c.Params("studentId"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching notifications")
	}

	return c.JSON(notifications)
}

func MarkNotificationRead(c *fiber.Ctx) error {
	n, err := services.MarkNotificationRead(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Notification not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error updating notification")
	}

	return c.JSON(n)
}
