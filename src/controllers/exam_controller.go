package controllers

import (
	"Backend-Tutoria-001/src/services"
	"Backend-Tutoria-001/src/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// SubmitExamResult grades the submitted answers against the lesson's exam
// questions and stores the result.
func SubmitExamResult(c *fiber.Ctx) error {
	type SubmitRequest struct {
		StudentID string `json:"studentId"`
		LessonID  string `json:"lessonId"`
		Answers   []int  `json:"answers"`
	}

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if req.StudentID == "" || req.LessonID == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "studentId and lessonId are required")
	}

	result, err := services.SubmitExamResult(req.StudentID, req.LessonID, req.Answers)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Student or lesson not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error submitting exam result")
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func GetExamResultsByStudent(c *fiber.Ctx) error {
	results, err := services.GetExamResultsByStudent(c.Params("studentId"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching exam results")
	}

	return c.JSON(results)
}

func GetExamResultsByLesson(c *fiber.Ctx) error {
	results, err := services.GetExamResultsByLesson(c.Params("lessonId"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Lesson not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching exam results")
	}

	return c.JSON(results)
}
