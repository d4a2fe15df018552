package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	authMiddleware "schoolsite_backend/internals/middlewares/auth"
)

func BaseRoutes(app *fiber.App, d *Deps, startTime time.Time) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(authMiddleware.LoginPage, fiber.StatusFound)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if d.Ping != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := d.Ping(ctx); err != nil {
				dbStatus = "Database connection error"
				serverStatus = "DOWN"
				httpStatus = fiber.StatusServiceUnavailable
			}
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    d.Config.Env,
		})
	})
}

// NotFound dipasang paling akhir.
func NotFound(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Not Found",
		})
	})
}
