package calendar

import (
	"github.com/gofiber/fiber/v2"

	"github.com/contentcrush/portalcc-sub007/app/services"
)

// SetupCalendarRoutes sets up calendar routes
func SetupCalendarRoutes(app *fiber.App, refresher *services.Refresher) {
	api := app.Group("/api/calendar")
	api.Get("/", func(c *fiber.Ctx) error {
		return GetCalendarViewAPI(c, refresher)
	})
	api.Get("/export.ics", func(c *fiber.Ctx) error {
		return ExportICSAPI(c, refresher)
	})
	api.Post("/refresh", func(c *fiber.Ctx) error {
		return RefreshSnapshotAPI(c, refresher)
	})
}
