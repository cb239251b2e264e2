package controllers

import (
	"Backend-Tutoria-001/src/models"
	"Backend-Tutoria-001/src/services"
	"Backend-Tutoria-001/src/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

func CreateSubscription(c *fiber.Ctx) error {
	var sub models.Subscription
	if err := c.BodyParser(&sub); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := utils.ValidateStruct(&sub); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := services.CreateSubscription(&sub); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating subscription")
	}

	return c.Status(fiber.StatusCreated).JSON(sub)
}

func GetSubscriptions(c *fiber.Ctx) error {
	subs, err := services.GetAllSubscriptions()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching subscriptions")
	}

	return c.JSON(subs)
}

func UpdateSubscription(c *fiber.Ctx) error {
	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	sub, err := services.UpdateSubscription(c.Params("id"), bson.M(fields))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Subscription not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error updating subscription")
	}

	return c.JSON(sub)
}

func DeleteSubscription(c *fiber.Ctx) error {
	err := services.DeleteSubscription(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Subscription not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error deleting subscription")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
