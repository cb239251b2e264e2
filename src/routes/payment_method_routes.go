package routes

import (
	"Backend-Tutoria-001/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func PaymentMethodRoutes(api fiber.Router) {
	methods := api.Group("/payment-methods")
	methods.Post("/", controllers.CreatePaymentMethod)
	methods.Get("/", controllers.GetPaymentMethods)
	methods.Delete("/:id", controllers.DeletePaymentMethod)
}
