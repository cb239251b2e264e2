package routes

import (
	"Backend-Tutoria-001/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func NotificationRoutes(api fiber.Router) {
	notifications := api.Group("/notifications")
	notifications.Post("/", controllers.CreateNotification)
	notifications.Get("/student/:studentId", controllers.GetNotificationsByStudent)
	notifications.Put("/:id/read", controllers.MarkNotificationRead)
}
