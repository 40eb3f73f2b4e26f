package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/contentcrush/portalcc-sub007/app/config"
	"github.com/contentcrush/portalcc-sub007/app/dataapi"
	"github.com/contentcrush/portalcc-sub007/app/routes/calendar"
	"github.com/contentcrush/portalcc-sub007/app/services"
)

// customErrorHandler converts errors into the API's JSON envelope
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Load configuration
	config.Load()

	// Align the process-wide timezone with the calendar display zone
	time.Local = config.AppConfig.Location
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Data API client and background snapshot refresher
	api := dataapi.New(config.AppConfig.DataAPIURL, config.AppConfig.DataAPIToken)
	refresher := services.NewRefresher(api)
	if err := refresher.Start(config.AppConfig.RefreshCron); err != nil {
		log.Fatal("Failed to start snapshot refresher:", err)
	}
	defer refresher.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		snap := refresher.Snapshot()
		return c.JSON(fiber.Map{
			"success":      true,
			"has_snapshot": snap != nil,
		})
	})

	// Setup calendar routes
	calendar.SetupCalendarRoutes(app, refresher)

	log.Printf("Starting server on %s", config.AppConfig.ListenAddr)
	log.Fatal(app.Listen(config.AppConfig.ListenAddr))
}
