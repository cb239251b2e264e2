package routes

import (
	"Backend-Tutoria-001/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func SubscriptionRoutes(api fiber.Router) {
	subs := api.Group("/subscriptions")
	subs.Post("/", controllers.CreateSubscription)
	subs.Get("/", controllers.GetSubscriptions)
	subs.Put("/:id", controllers.UpdateSubscription)
	subs.Delete("/:id", controllers.DeleteSubscription)
}
