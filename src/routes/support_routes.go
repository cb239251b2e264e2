package routes

import (
	"Backend-Tutoria-001/src/controllers"
	"Backend-Tutoria-001/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func SupportRoutes(api fiber.Router) {
	support := api.Group("/support")
	support.Get("/activity-logs", middleware.AuthJWT, controllers.GetSupportActivityLogs)
}
