package routes

import (
	"Backend-Tutoria-001/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func MessageRoutes(api fiber.Router) {
	messages := api.Group("/student-messages")
	messages.Post("/", controllers.CreateStudentMessage)
	messages.Get("/", controllers.GetStudentMessages)
	messages.Get("/student/:studentId", controllers.GetStudentMessagesByStudent)
	messages.Post("/:id/replies", controllers.AddMessageReply)
}
