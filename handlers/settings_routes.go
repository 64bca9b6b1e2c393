package handlers

import (
	"team-ops-system/middleware"
	"team-ops-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupSettingsRoutes(app *fiber.App, settingsService *services.UserSettingsService) {
	secured := app.Group("/", middleware.UserContextMiddleware())

	secured.Get("/settings", func(c *fiber.Ctx) error {
		settings, err := settingsService.GetSettings(middleware.UserID(c))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(settings)
	})

	secured.Put("/settings", func(c *fiber.Ctx) error {
		var req services.UserSettingsRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		settings, err := settingsService.UpdateSettings(middleware.UserID(c), req)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(settings)
	})
}
