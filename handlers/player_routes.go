package handlers

import (
	"team-ops-system/middleware"
	"team-ops-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupPlayerRoutes(app *fiber.App, playerService *services.PlayerService) {
	secured := app.Group("/", middleware.UserContextMiddleware())

	secured.Post("/players", func(c *fiber.Ctx) error {
		var req services.PlayerRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		player, err := playerService.CreatePlayer(middleware.UserID(c), req)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(player)
	})

	// Player detail carries derived full name, age, and current-season stats.
	secured.Get("/players/:id", func(c *fiber.Ctx) error {
		detail, err := playerService.GetPlayer(middleware.UserID(c), c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(detail)
	})

	secured.Get("/players/:id/seasons/:season_id/stats", func(c *fiber.Ctx) error {
		stats, err := playerService.ComputePlayerSeasonStats(
			middleware.UserID(c), c.Params("id"), c.Params("season_id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(stats)
	})

	secured.Put("/players/:id", func(c *fiber.Ctx) error {
		var req services.PlayerRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		player, err := playerService.UpdatePlayer(middleware.UserID(c), c.Params("id"), req)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(player)
	})

	secured.Delete("/players/:id", func(c *fiber.Ctx) error {
		if err := playerService.DeletePlayer(middleware.UserID(c), c.Params("id")); err != nil {
			return fail(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	secured.Get("/teams/:id/roster", func(c *fiber.Ctx) error {
		summary, err := playerService.GetRosterSummary(middleware.UserID(c), c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(summary)
	})
}
