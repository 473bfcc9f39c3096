package handlers

import "github.com/gofiber/fiber/v2"

// HealthHandler is the liveness endpoint.
func HealthHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "School API is running"})
	}
}
