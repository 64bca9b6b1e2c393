package handlers

import (
	"team-ops-system/middleware"
	"team-ops-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTrainingRoutes(app *fiber.App, trainingService *services.TrainingService, exerciseService *services.ExerciseService) {
	secured := app.Group("/", middleware.UserContextMiddleware())

	secured.Post("/trainings", func(c *fiber.Ctx) error {
		var req services.TrainingRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		training, err := trainingService.CreateTraining(middleware.UserID(c), req)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(training)
	})

	secured.Get("/trainings", func(c *fiber.Ctx) error {
		trainings, err := trainingService.ListUserTrainings(middleware.UserID(c))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(trainings)
	})

	secured.Get("/teams/:id/trainings", func(c *fiber.Ctx) error {
		trainings, err := trainingService.ListTeamTrainings(middleware.UserID(c), c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(trainings)
	})

	secured.Get("/trainings/:id", func(c *fiber.Ctx) error {
		training, err := trainingService.GetTraining(middleware.UserID(c), c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(training)
	})

	secured.Put("/trainings/:id", func(c *fiber.Ctx) error {
		var req services.TrainingRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		training, err := trainingService.UpdateTraining(middleware.UserID(c), c.Params("id"), req)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(training)
	})

	secured.Delete("/trainings/:id", func(c *fiber.Ctx) error {
		if err := trainingService.DeleteTraining(middleware.UserID(c), c.Params("id")); err != nil {
			return fail(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	secured.Get("/trainings/:id/attendance", func(c *fiber.Ctx) error {
		attendance, err := trainingService.GetTrainingAttendance(middleware.UserID(c), c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(attendance)
	})

	secured.Put("/trainings/:id/attendance/:player_id", func(c *fiber.Ctx) error {
		var req services.AttendanceRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		attendance, err := trainingService.UpsertAttendance(
			middleware.UserID(c), c.Params("id"), c.Params("player_id"), req)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(attendance)
	})

	secured.Post("/exercises", func(c *fiber.Ctx) error {
		var req services.ExerciseRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		exercise, err := exerciseService.CreateExercise(middleware.UserID(c), req)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(exercise)
	})

	secured.Get("/exercises", func(c *fiber.Ctx) error {
		exercises, err := exerciseService.ListExercises(middleware.UserID(c))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(exercises)
	})

	secured.Delete("/exercises/:id", func(c *fiber.Ctx) error {
		if err := exerciseService.DeleteExercise(middleware.UserID(c), c.Params("id")); err != nil {
			return fail(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
