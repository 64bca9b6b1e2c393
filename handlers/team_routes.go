package handlers

import (
	"team-ops-system/middleware"
	"team-ops-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTeamRoutes(app *fiber.App, teamService *services.TeamService, opponentService *services.OpponentService) {
	secured := app.Group("/", middleware.UserContextMiddleware())

	secured.Post("/teams", func(c *fiber.Ctx) error {
		var req services.TeamRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		team, err := teamService.CreateTeam(middleware.UserID(c), req)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(team)
	})

	secured.Get("/teams", func(c *fiber.Ctx) error {
		teams, err := teamService.GetTeams(middleware.UserID(c))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(teams)
	})

	secured.Get("/teams/:id", func(c *fiber.Ctx) error {
		team, err := teamService.GetTeam(middleware.UserID(c), c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(team)
	})

	secured.Put("/teams/:id", func(c *fiber.Ctx) error {
		var req services.TeamRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		team, err := teamService.UpdateTeam(middleware.UserID(c), c.Params("id"), req)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(team)
	})

	secured.Delete("/teams/:id", func(c *fiber.Ctx) error {
		if err := teamService.DeleteTeam(middleware.UserID(c), c.Params("id")); err != nil {
			return fail(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	secured.Post("/opponents", func(c *fiber.Ctx) error {
		var req services.OpponentRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		opponent, err := opponentService.CreateOpponent(middleware.UserID(c), req)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(opponent)
	})

	secured.Get("/teams/:id/opponents", func(c *fiber.Ctx) error {
		opponents, err := opponentService.ListOpponents(middleware.UserID(c), c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(opponents)
	})
}
