package controllers

import (
	"Backend-Tutoria-001/src/models"
	"Backend-Tutoria-001/src/services"
	"Backend-Tutoria-001/src/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func CreateTransferRequest(c *fiber.Ctx) error {
	var req models.TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.StudentID.IsZero() || req.BankTransNumber == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "studentId and bankTransNumber are required")
	}

	if err := services.CreateTransferRequest(&req); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating transfer request")
	}

	return c.Status(fiber.StatusCreated).JSON(req)
}

func GetTransferRequests(c *fiber.Ctx) error {
	requests, err := services.GetAllTransferRequests()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching transfer requests")
	}

	return c.JSON(requests)
}

// ConfirmTransferRequest credits the wallet and stamps the confirming
// support user. supportId identifies who is acting.
func ConfirmTransferRequest(c *fiber.Ctx) error {
	support, err := resolveSupport(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "supportId does not resolve to a support user")
	}

	req, err := services.ConfirmTransferRequest(c.Params("id"), support)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Transfer request not found")
		case errors.Is(err, services.ErrConflict):
			return utils.HandleError(c, fiber.StatusConflict, "Transfer request is not pending")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Error confirming transfer request")
		}
	}

	return c.JSON(req)
}

func RejectTransferRequest(c *fiber.Ctx) error {
	support, err := resolveSupport(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "supportId does not resolve to a support user")
	}

	req, err := services.RejectTransferRequest(c.Params("id"), support)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Transfer request not found")
		case errors.Is(err, services.ErrConflict):
			return utils.HandleError(c, fiber.StatusConflict, "Transfer request is not pending")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Error rejecting transfer request")
		}
	}

	return c.JSON(req)
}

func resolveSupport(c *fiber.Ctx) (*models.User, error) {
	type ActorRequest struct {
		SupportID string `json:"supportId"`
	}

	var req ActorRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, err
	}
	return services.GetSupportByID(req.SupportID)
}
