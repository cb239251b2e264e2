package controllers

import (
	"Backend-Tutoria-001/src/models"
	"Backend-Tutoria-001/src/services"
	"Backend-Tutoria-001/src/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateLesson godoc
// @Summary      Create a new lesson
// @Description  Create a new lesson with optional media keys and exam questions
// @Tags         lessons
// @Accept       json
// @Produce      json
// @Param        body body models.Lesson true "Lesson"
// @Success      201  {object}  models.Lesson
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /lessons [post]
func CreateLesson(c *fiber.Ctx) error {
	var lesson models.Lesson
	if err := c.BodyParser(&lesson); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := utils.ValidateStruct(&lesson); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := services.CreateLesson(&lesson); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating lesson")
	}

	return c.Status(fiber.StatusCreated).JSON(lesson)
}

// GetLessons godoc
// @Summary      List all lessons
// @Tags         lessons
// @Produce      json
// @Success      200  {array}  models.Lesson
// @Failure      500  {object}  models.ErrorResponse
// @Router       /lessons [get]
func GetLessons(c *fiber.Ctx) error {
	lessons, err := services.GetAllLessons()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching lessons")
	}

	return c.JSON(lessons)
}

// GetLessonByID godoc
// @Summary      Get a lesson by ID
// @Tags         lessons
// @Produce      json
// @Param        id path string true "Lesson ID"
// @Success      200  {object}  models.Lesson
// @Failure      404  {object}  models.ErrorResponse
// @Router       /lessons/{id} [get]
func GetLessonByID(c *fiber.Ctx) error {
	lesson, err := services.GetLessonByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Lesson not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching lesson")
	}

	return c.JSON(lesson)
}

// UpdateLesson godoc
// @Summary      Update a lesson
// @Description  Merge the supplied fields into the lesson
// @Tags         lessons
// @Accept       json
// @Produce      json
// @Param        id path string true "Lesson ID"
// @Param        body body object true "Partial lesson"
// @Success      200  {object}  models.Lesson
// @Failure      404  {object}  models.ErrorResponse
// @Router       /lessons/{id} [put]
func UpdateLesson(c *fiber.Ctx) error {
	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	lesson, err := services.UpdateLesson(c.Params("id"), bson.M(fields))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Lesson not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error updating lesson")
	}

	return c.JSON(lesson)
}

// DeleteLesson godoc
// @Summary      Delete a lesson
// @Tags         lessons
// @Param        id path string true "Lesson ID"
// @Success      204
// @Failure      404  {object}  models.ErrorResponse
// @Router       /lessons/{id} [delete]
func DeleteLesson(c *fiber.Ctx) error {
	err := services.DeleteLesson(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Lesson not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error deleting lesson")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
