package handlers

import (
	"team-ops-system/models"

	"github.com/gofiber/fiber/v2"
)

// SetupEnumRoutes exposes the enum catalogs frontends render pickers from.
// Public: they carry no tenant data.
func SetupEnumRoutes(app *fiber.App) {
	type entry struct {
		Value string `json:"value"`
		Label string `json:"label"`
		Order int    `json:"order,omitempty"`
	}

	app.Get("/enums/positions", func(c *fiber.Ctx) error {
		var out []entry
		for _, p := range models.AllPositions() {
			out = append(out, entry{Value: string(p), Label: p.Label(), Order: p.Order()})
		}
		return c.JSON(out)
	})

	app.Get("/enums/player-statuses", func(c *fiber.Ctx) error {
		var out []entry
		for _, s := range models.AllPlayerStatuses() {
			out = append(out, entry{Value: string(s), Label: s.Label()})
		}
		return c.JSON(out)
	})

	app.Get("/enums/feet", func(c *fiber.Ctx) error {
		var out []entry
		for _, f := range models.AllFeet() {
			out = append(out, entry{Value: string(f), Label: f.Label()})
		}
		return c.JSON(out)
	})

	app.Get("/enums/attendance-statuses", func(c *fiber.Ctx) error {
		var out []entry
		for _, s := range models.AllAttendanceStatuses() {
			out = append(out, entry{Value: string(s), Label: s.Label()})
		}
		return c.JSON(out)
	})

	app.Get("/enums/categories", func(c *fiber.Ctx) error {
		var out []entry
		for _, cat := range models.AllCategories() {
			out = append(out, entry{Value: string(cat), Label: cat.Label()})
		}
		return c.JSON(out)
	})
}
