package routes

import (
	"Backend-Tutoria-001/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func GeneralMessageRoutes(api fiber.Router) {
	messages := api.Group("/general-messages")
	messages.Post("/", controllers.CreateGeneralMessage)
	messages.Get("/", controllers.GetGeneralMessages)
	messages.Delete("/:id", controllers.DeleteGeneralMessage)
}
