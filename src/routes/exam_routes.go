package routes

import (
	"Backend-Tutoria-001/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func ExamRoutes(api fiber.Router) {
	exams := api.Group("/exam-results")
	exams.Post("/", controllers.SubmitExamResult)
	exams.Get("/student/:studentId", controllers.GetExamResultsByStudent)
	exams.Get("/lesson/:lessonId", controllers.GetExamResultsByLesson)
}
