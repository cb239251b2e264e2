package controllers

import (
	"Backend-Tutoria-001/src/services"
	"Backend-Tutoria-001/src/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// RedeemReward spends a student's points on a catalog reward.
func RedeemReward(c *fiber.Ctx) error {
	type RedeemRequest struct {
		StudentID  string `json:"studentId"`
		RewardID   string `json:"rewardId"`
		RewardName string `json:"rewardName"`
		PointsCost int    `json:"pointsCost"`
	}

	var req RedeemRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if req.StudentID == "" || req.RewardID == "" || req.PointsCost <= 0 {
		return utils.HandleError(c, fiber.StatusBadRequest, "studentId, rewardId and a positive pointsCost are required")
	}

	redeemed, err := services.RedeemReward(req.StudentID, req.RewardID, req.RewardName, req.PointsCost)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
		case errors.Is(err, services.ErrInsufficient):
			return utils.HandleError(c, fiber.StatusBadRequest, "Not enough reward points")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Error redeeming reward")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(redeemed)
}

// GrantRewardPoints credits points to a student with a reason.
func GrantRewardPoints(c *fiber.Ctx) error {
	type GrantRequest struct {
		StudentID string `json:"studentId"`
		Points    int    `json:"points"`
		Reason    string `json:"reason"`
	}

	var req GrantRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if req.StudentID == "" || req.Points <= 0 {
		return utils.HandleError(c, fiber.StatusBadRequest, "studentId and a positive points value are required")
	}

	history, err := services.GrantRewardPoints(req.StudentID, req.Points, req.Reason)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error granting points")
	}

	return c.Status(fiber.StatusCreated).JSON(history)
}

func GetRewardHistory(c *fiber.Ctx) error {
	history, err := services.GetRewardHistory(c.Params("studentId"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching reward history")
	}

	return c.JSON(history)
}

func GetRedeemedRewards(c *fiber.Ctx) error {
	redeemed, err := services.GetRedeemedRewards(c.Params("studentId"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching redeemed rewards")
	}

	return c.JSON(redeemed)
}
