package middleware

import (
	"github.com/gofiber/fiber/v2"

	"lumina/backend/config"
	"lumina/backend/utils"
)

// SessionMiddleware requires a valid session token on user-scoped routes.
// The login and session-restore endpoints stay outside it.
func SessionMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, err := utils.ExtractRegNoFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		return c.Next()
	}
}
