package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	api := app.Group("/api")

	AuthRoutes(api)
	StudentRoutes(api)
	LessonRoutes(api)
	SubscriptionRoutes(api)
	PurchaseRoutes(api)
	TransferRoutes(api)
	PaymentMethodRoutes(api)
	GeneralMessageRoutes(api)
	BookRoutes(api)
	BookOrderRoutes(api)
	ExamRoutes(api)
	MessageRoutes(api)
	NotificationRoutes(api)
	RewardRoutes(api)
	SupportRoutes(api)

	// liveness probe, no side effects
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "✅ API is running...",
		})
	})
}
