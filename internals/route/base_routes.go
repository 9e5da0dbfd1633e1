package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func BaseRoutes(app *fiber.App, deps Deps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Portal MPA tournament API")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		st, ok := deps.Health.Last()
		if !ok {
			st = deps.Health.Check(c.UserContext())
		}

		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK
		if !st.OK {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":          serverStatus,
			"database":        dbStatus,
			"last_checked":    st.CheckedAt.Format(time.RFC3339),
			"ping_latency_ms": st.Latency.Milliseconds(),
			"server_time":     time.Now().Format(time.RFC3339),
			"uptime_seconds":  int(time.Since(deps.StartedAt).Seconds()),
			"environment":     deps.Environment,
		})
	})
}
