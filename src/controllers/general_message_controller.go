package controllers

import (
	"Backend-Tutoria-001/src/models"
	"Backend-Tutoria-001/src/services"
	"Backend-Tutoria-001/src/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func CreateGeneralMessage(c *fiber.Ctx) error {
	var msg models.GeneralMessage
	if err := c.BodyParser(&msg); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := utils.ValidateStruct(&msg); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	if !models.ValidGrade(msg.Audience) {
		return utils.HandleError(c, fiber.StatusBadRequest, "audience must be all, first, second or third")
	}

	if err := services.CreateGeneralMessage(&msg); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating general message")
	}

	return c.Status(fiber.StatusCreated).JSON(msg)
}

func GetGeneralMessages(c *fiber.Ctx) error {
	messages, err := services.GetAllGeneralMessages()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching general messages")
	}

	return c.JSON(messages)
}

func DeleteGeneralMessage(c *fiber.Ctx) error {
	err := services.DeleteGeneralMessage(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "General message not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error deleting general message")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
