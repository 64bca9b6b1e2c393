package handlers

import (
	"time"

	"team-ops-system/middleware"
	"team-ops-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupSeasonRoutes(app *fiber.App, seasonService *services.SeasonService) {
	secured := app.Group("/", middleware.UserContextMiddleware())

	secured.Get("/seasons/current", func(c *fiber.Ctx) error {
		season, err := seasonService.ResolveCurrentSeason()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(season)
	})

	secured.Get("/seasons", func(c *fiber.Ctx) error {
		seasons, err := seasonService.ListSeasons()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(seasons)
	})

	type seasonBody struct {
		Name      string    `json:"name"`
		StartDate time.Time `json:"start_date"`
		EndDate   time.Time `json:"end_date"`
	}

	secured.Post("/seasons", func(c *fiber.Ctx) error {
		var body seasonBody
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, "invalid request body")
		}
		season, err := seasonService.CreateSeason(body.Name, body.StartDate, body.EndDate)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(season)
	})

	secured.Put("/seasons/:id", func(c *fiber.Ctx) error {
		var body seasonBody
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, "invalid request body")
		}
		season, err := seasonService.UpdateSeason(c.Params("id"), body.Name, body.StartDate, body.EndDate)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(season)
	})
}
