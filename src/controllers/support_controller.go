package controllers

import (
	"Backend-Tutoria-001/src/services"
	"Backend-Tutoria-001/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetSupportActivityLogs lists the audit trail of support actions, newest
// first. The route sits behind AuthJWT.
func GetSupportActivityLogs(c *fiber.Ctx) error {
	logs, err := services.GetSupportActivityLogs()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching activity logs")
	}

	return c.JSON(logs)
}
