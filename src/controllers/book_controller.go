package controllers

import (
	"Backend-Tutoria-001/src/models"
	"Backend-Tutoria-001/src/services"
	"Backend-Tutoria-001/src/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

func CreateBook(c *fiber.Ctx) error {
	var book models.Book
	if err := c.BodyParser(&book); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := utils.ValidateStruct(&book); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := services.CreateBook(&book); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating book")
	}

	return c.Status(fiber.StatusCreated).JSON(book)
}

func GetBooks(c *fiber.Ctx) error {
	books, err := services.GetAllBooks()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching books")
	}

	return c.JSON(books)
}

func GetBookByID(c *fiber.Ctx) error {
	book, err := services.GetBookByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Book not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching book")
	}

	return c.JSON(book)
}

func UpdateBook(c *fiber.Ctx) error {
	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	book, err := services.UpdateBook(c.Params("id"), bson.M(fields))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Book not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error updating book")
	}

	return c.JSON(book)
}

func DeleteBook(c *fiber.Ctx) error {
	err := services.DeleteBook(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Book not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error deleting book")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
