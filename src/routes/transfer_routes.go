package routes

import (
	"Backend-Tutoria-001/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func TransferRoutes(api fiber.Router) {
	transfers := api.Group("/transfer-requests")
	transfers.Post("/", controllers.CreateTransferRequest)
	transfers.Get("/", controllers.GetTransferRequests)
	transfers.Put("/:id/confirm", controllers.ConfirmTransferRequest)
	transfers.Put("/:id/reject", controllers.RejectTransferRequest)
}
