package controllers

import (
	"Backend-Tutoria-001/src/models"
	"Backend-Tutoria-001/src/services"
	"Backend-Tutoria-001/src/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// RegisterStudent godoc
// @Summary      Register a new student
// @Description  Creates a student account with a zeroed wallet and no reward points
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body object true "fullName, studentNumber, parentNumber, password, gradeLevel"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /auth/register [post]
func RegisterStudent(c *fiber.Ctx) error {
	type RegisterRequest struct {
		FullName      string `json:"fullName"`
		StudentNumber string `json:"studentNumber"`
		ParentNumber  string `json:"parentNumber"`
		Password      string `json:"password"`
		GradeLevel    string `json:"gradeLevel"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	if req.FullName == "" || req.StudentNumber == "" || req.ParentNumber == "" ||
		req.Password == "" || req.GradeLevel == "" {
		return utils.HandleError(c, fiber.StatusBadRequest,
			"fullName, studentNumber, parentNumber, password and gradeLevel are required")
	}
	if !models.ValidGrade(req.GradeLevel) {
		return utils.HandleError(c, fiber.StatusBadRequest, "gradeLevel must be first, second, third or all")
	}

	student, err := services.RegisterStudent(req.FullName, req.StudentNumber, req.ParentNumber, req.Password, req.GradeLevel)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			return utils.HandleError(c, fiber.StatusConflict, "A student with this number or name already exists")
		}
		log.Println("❌ Student registration failed:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error registering student")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Student registered successfully",
		"studentId": student.ID.Hex(),
	})
}

// TeacherLogin checks the submitted triple against the hardcoded teacher
// credentials and finds-or-creates the teacher document on a match.
func TeacherLogin(c *fiber.Ctx) error {
	type LoginRequest struct {
		Name  string `json:"name"`
		Code  string `json:"code"`
		Phone string `json:"phone"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	teacher, err := services.TeacherLogin(req.Name, req.Code, req.Phone)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error logging in")
	}

	token, err := utils.GenerateJWT(teacher.ID.Hex(), teacher.FullName, teacher.Type)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    teacher,
		"token":   token,
	})
}

// SupportLogin looks the support user up by name and code, flips the online
// flag and stamps activity.
func SupportLogin(c *fiber.Ctx) error {
	type LoginRequest struct {
		Name string `json:"name"`
		Code string `json:"code"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	support, err := services.SupportLogin(req.Name, req.Code)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		log.Println("❌ Support login failed:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error logging in")
	}

	token, err := utils.GenerateJWT(support.ID.Hex(), support.FullName, support.Type)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    support,
		"token":   token,
	})
}

// SupportLogout flips the online flag off and stamps the logout time.
func SupportLogout(c *fiber.Ctx) error {
	type LogoutRequest struct {
		SupportID string `json:"supportId"`
	}

	var req LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	if err := services.SupportLogout(req.SupportID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Support user not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error logging out")
	}

	return c.JSON(fiber.Map{
		"message": "Logout successful",
	})
}
