package routes

import (
	"Backend-Tutoria-001/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(api fiber.Router) {
	auth := api.Group("/auth")
	auth.Post("/register", controllers.RegisterStudent)
	auth.Post("/teacher-login", controllers.TeacherLogin)
	auth.Post("/support-login", controllers.SupportLogin)
	auth.Post("/support-logout", controllers.SupportLogout)
}
