package controllers

import (
	"Backend-Tutoria-001/src/models"
	"Backend-Tutoria-001/src/services"
	"Backend-Tutoria-001/src/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func CreateStudentMessage(c *fiber.Ctx) error {
	var msg models.StudentMessage
	if err := c.BodyParser(&msg); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := utils.ValidateStruct(&msg); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	if msg.StudentID.IsZero() {
		return utils.HandleError(c, fiber.StatusBadRequest, "studentId is required")
	}

	if err := services.CreateStudentMessage(&msg); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating message")
	}

	return c.Status(fiber.StatusCreated).JSON(msg)
}

func GetStudentMessages(c *fiber.Ctx) error {
	messages, err := services.GetAllStudentMessages()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching messages")
	}

	return c.JSON(messages)
}

func GetStudentMessagesByStudent(c *fiber.Ctx) error {
	messages, err := services.GetStudentMessagesByStudent(c.Params("studentId"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching messages")
	}

	return c.JSON(messages)
}

// AddMessageReply appends a staff reply to a message thread.
func AddMessageReply(c *fiber.Ctx) error {
	type ReplyRequest struct {
		ResponderID string `json:"responderId"`
		Text        string `json:"text"`
		ImageKey    string `json:"imageKey"`
		AudioKey    string `json:"audioKey"`
	}

	var req ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if req.Text == "" || req.ResponderID == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "responderId and text are required")
	}

	responderID, err := primitive.ObjectIDFromHex(req.ResponderID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "responderId is not a valid id")
	}

	reply := models.MessageReply{
		ResponderID: responderID,
		Text:        req.Text,
		ImageKey:    req.ImageKey,
		AudioKey:    req.AudioKey,
	}

	msg, err := services.AddMessageReply(c.Params("id"), reply)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Message not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error adding reply")
	}

	return c.JSON(msg)
}
