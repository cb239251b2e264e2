package routes

import (
	"Backend-Tutoria-001/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func BookOrderRoutes(api fiber.Router) {
	orders := api.Group("/book-orders")
	orders.Post("/", controllers.CreateBookOrder)
	orders.Get("/", controllers.GetBookOrders)
	orders.Get("/student/:studentId", controllers.GetBookOrdersByStudent)
	orders.Put("/:id/status", controllers.UpdateBookOrderStatus)
}
