package controllers

import (
	"Backend-Tutoria-001/src/models"
	"Backend-Tutoria-001/src/services"
	"Backend-Tutoria-001/src/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// CreatePaymentMethod godoc
// @Summary      Create a payment method
// @Description  The control password is hashed and later required to delete the method
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        body body object true "name, number, password"
// @Success      201  {object}  models.PaymentMethod
// @Failure      400  {object}  models.ErrorResponse
// @Router       /payment-methods [post]
func CreatePaymentMethod(c *fiber.Ctx) error {
	type CreateRequest struct {
		Name     string `json:"name"`
		Number   string `json:"number"`
		Password string `json:"password"`
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if req.Name == "" || req.Number == "" || req.Password == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "name, number and password are required")
	}

	method := models.PaymentMethod{Name: req.Name, Number: req.Number}
	if err := services.CreatePaymentMethod(&method, req.Password); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating payment method")
	}

	return c.Status(fiber.StatusCreated).JSON(method)
}

func GetPaymentMethods(c *fiber.Ctx) error {
	methods, err := services.GetAllPaymentMethods()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching payment methods")
	}

	return c.JSON(methods)
}

// DeletePaymentMethod godoc
// @Summary      Delete a payment method
// @Description  Requires the control password set at creation
// @Tags         payment-methods
// @Accept       json
// @Param        id path string true "Payment method ID"
// @Param        body body object true "password"
// @Success      204
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /payment-methods/{id} [delete]
func DeletePaymentMethod(c *fiber.Ctx) error {
	type DeleteRequest struct {
		Password string `json:"password"`
	}

	var req DeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	err := services.DeletePaymentMethod(c.Params("id"), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Payment method not found")
		case errors.Is(err, services.ErrUnauthorized):
			return utils.HandleError(c, fiber.StatusUnauthorized, "Wrong control password")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Error deleting payment method")
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}
