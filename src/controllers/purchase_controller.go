package controllers

import (
	"Backend-Tutoria-001/src/models"
	"Backend-Tutoria-001/src/services"
	"Backend-Tutoria-001/src/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// CreatePurchase godoc
// @Summary      Purchase a lesson or subscription
// @Description  Debits the student wallet and records the purchase
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        body body object true "studentId, itemId, itemType"
// @Success      201  {object}  models.PurchasedItem
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /purchases [post]
func CreatePurchase(c *fiber.Ctx) error {
	type PurchaseRequest struct {
		StudentID string `json:"studentId"`
		ItemID    string `json:"itemId"`
		ItemType  string `json:"itemType"` // lesson | subscription
	}

	var req PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if req.StudentID == "" || req.ItemID == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "studentId and itemId are required")
	}
	if req.ItemType != models.ItemTypeLesson && req.ItemType != models.ItemTypeSubscription {
		return utils.HandleError(c, fiber.StatusBadRequest, "itemType must be lesson or subscription")
	}

	purchase, err := services.CreatePurchase(req.StudentID, req.ItemID, req.ItemType)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Student or item not found")
		case errors.Is(err, services.ErrInsufficient):
			return utils.HandleError(c, fiber.StatusBadRequest, "Insufficient wallet balance")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Error recording purchase")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(purchase)
}

func GetPurchasesByStudent(c *fiber.Ctx) error {
	purchases, err := services.GetPurchasesByStudent(c.Params("studentId"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching purchases")
	}

	return c.JSON(purchases)
}
