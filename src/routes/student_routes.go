package routes

import (
	"Backend-Tutoria-001/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func StudentRoutes(api fiber.Router) {
	students := api.Group("/students")
	students.Get("/", controllers.GetStudents)
	students.Get("/:id", controllers.GetStudentByID)
	students.Put("/:id/ban", controllers.BanStudent)
	students.Put("/:id/unban", controllers.UnbanStudent)
}
