package routes

import (
	"Backend-Tutoria-001/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func PurchaseRoutes(api fiber.Router) {
	purchases := api.Group("/purchases")
	purchases.Post("/", controllers.CreatePurchase)
	purchases.Get("/student/:studentId", controllers.GetPurchasesByStudent)
}
