package handlers

import (
	"team-ops-system/middleware"
	"team-ops-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupMatchRoutes(app *fiber.App, matchService *services.MatchService) {
	secured := app.Group("/", middleware.UserContextMiddleware())

	secured.Post("/matches", func(c *fiber.Ctx) error {
		var req services.MatchRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		match, err := matchService.CreateMatch(middleware.UserID(c), req)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(match)
	})

	secured.Get("/teams/:id/matches", func(c *fiber.Ctx) error {
		matches, err := matchService.ListTeamMatches(middleware.UserID(c), c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(matches)
	})

	secured.Get("/opponents/:id/matches", func(c *fiber.Ctx) error {
		matches, err := matchService.ListOpponentMatches(middleware.UserID(c), c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(matches)
	})

	secured.Get("/matches/:id", func(c *fiber.Ctx) error {
		match, err := matchService.GetMatch(middleware.UserID(c), c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(match)
	})

	secured.Put("/matches/:id", func(c *fiber.Ctx) error {
		var req services.MatchUpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		match, err := matchService.UpdateMatch(middleware.UserID(c), c.Params("id"), req)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(match)
	})

	secured.Delete("/matches/:id", func(c *fiber.Ctx) error {
		if err := matchService.DeleteMatch(middleware.UserID(c), c.Params("id")); err != nil {
			return fail(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Two-phase stat read: materialize missing rows, then the pure read.
	secured.Get("/matches/:id/stats", func(c *fiber.Ctx) error {
		userID := middleware.UserID(c)
		matchID := c.Params("id")
		if err := matchService.EnsureStatsMaterialized(userID, matchID); err != nil {
			return fail(c, err)
		}
		stats, err := matchService.GetMatchStats(userID, matchID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(stats)
	})

	secured.Put("/match-stats/:id", func(c *fiber.Ctx) error {
		var req services.PlayerMatchStatRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		stat, err := matchService.UpdatePlayerMatchStat(middleware.UserID(c), c.Params("id"), req)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(stat)
	})
}
