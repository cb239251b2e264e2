package routes

import (
	"Backend-Tutoria-001/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func RewardRoutes(api fiber.Router) {
	rewards := api.Group("/rewards")
	rewards.Post("/redeem", controllers.RedeemReward)
	rewards.Post("/grant", controllers.GrantRewardPoints)
	rewards.Get("/history/:studentId", controllers.GetRewardHistory)
	rewards.Get("/redeemed/:studentId", controllers.GetRedeemedRewards)
}
