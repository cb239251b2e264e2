package routes

import (
	"Backend-Tutoria-001/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func LessonRoutes(api fiber.Router) {
	lessons := api.Group("/lessons")
	lessons.Post("/", controllers.CreateLesson)
	lessons.Get("/", controllers.GetLessons)
	lessons.Get("/:id", controllers.GetLessonByID)
	lessons.Put("/:id", controllers.UpdateLesson)
	lessons.Delete("/:id", controllers.DeleteLesson)
}
