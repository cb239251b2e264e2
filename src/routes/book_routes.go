package routes

import (
	"Backend-Tutoria-001/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func BookRoutes(api fiber.Router) {
	books := api.Group("/books")
	books.Post("/", controllers.CreateBook)
	books.Get("/", controllers.GetBooks)
	books.Get("/:id", controllers.GetBookByID)
	books.Put("/:id", controllers.UpdateBook)
	books.Delete("/:id", controllers.DeleteBook)
}
