package controllers

import (
	"Backend-Tutoria-001/src/models"
	"Backend-Tutoria-001/src/services"
	"Backend-Tutoria-001/src/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func CreateBookOrder(c *fiber.Ctx) error {
	type OrderRequest struct {
		StudentID       string `json:"studentId"`
		BookID          string `json:"bookId"`
		DeliveryAddress string `json:"deliveryAddress"`
		DeliveryPhone   string `json:"deliveryPhone"`
	}

	var req OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if req.StudentID == "" || req.BookID == "" || req.DeliveryAddress == "" || req.DeliveryPhone == "" {
		return utils.HandleError(c, fiber.StatusBadRequest,
			"studentId, bookId, deliveryAddress and deliveryPhone are required")
	}

	order, err := services.CreateBookOrder(req.StudentID, req.BookID, req.DeliveryAddress, req.DeliveryPhone)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Student or book not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error placing book order")
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

func GetBookOrders(c *fiber.Ctx) error {
	orders, err := services.GetAllBookOrders()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching book orders")
	}

	return c.JSON(orders)
}

func GetBookOrdersByStudent(c *fiber.Ctx) error {
	orders, err := services.GetBookOrdersByStudent(c.Params("studentId"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching book orders")
	}

	return c.JSON(orders)
}

// UpdateBookOrderStatus moves an order to pending, confirmed, shipped or
// cancelled.
func UpdateBookOrderStatus(c *fiber.Ctx) error {
	type StatusRequest struct {
		Status string `json:"status"`
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	switch req.Status {
	case models.OrderPending, models.OrderConfirmed, models.OrderShipped, models.OrderCancelled:
	default:
		return utils.HandleError(c, fiber.StatusBadRequest, "status must be pending, confirmed, shipped or cancelled")
	}

	order, err := services.UpdateBookOrderStatus(c.Params("id"), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Book order not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error updating book order")
	}

	return c.JSON(order)
}
