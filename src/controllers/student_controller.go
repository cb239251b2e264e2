package controllers

import (
	"Backend-Tutoria-001/src/models"
	"Backend-Tutoria-001/src/services"
	"Backend-Tutoria-001/src/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func GetStudents(c *fiber.Ctx) error {
	students, err := services.GetAllStudents()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching students")
	}

	return c.JSON(students)
}

func GetStudentByID(c *fiber.Ctx) error {
	student, err := services.GetStudentByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching student")
	}

	return c.JSON(student)
}

// BanStudent bans a student on behalf of a teacher or support user. The
// bannedByType discriminator must name the collection type the reference
// actually points at.
func BanStudent(c *fiber.Ctx) error {
	type BanRequest struct {
		Reason       string `json:"reason"`
		BannedBy     string `json:"bannedBy"`
		BannedByType string `json:"bannedByType"` // teacher | support
	}

	var req BanRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if req.Reason == "" || req.BannedBy == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "reason and bannedBy are required")
	}
	if req.BannedByType != models.UserTypeTeacher && req.BannedByType != models.UserTypeSupport {
		return utils.HandleError(c, fiber.StatusBadRequest, "bannedByType must be teacher or support")
	}

	bannedBy, err := primitive.ObjectIDFromHex(req.BannedBy)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "bannedBy is not a valid id")
	}

	student, err := services.BanStudent(c.Params("id"), req.Reason, bannedBy, req.BannedByType)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error banning student")
	}

	return c.JSON(student)
}

func UnbanStudent(c *fiber.Ctx) error {
	student, err := services.UnbanStudent(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error unbanning student")
	}

	return c.JSON(student)
}
