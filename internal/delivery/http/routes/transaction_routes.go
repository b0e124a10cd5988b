package routes

import (
	"github.com/fundunity/donation-service/internal/delivery/http/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterTransactionRoutes(app *fiber.App, th *handlers.TransactionHandler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to FundUnity API"})
	})

	content := app.Group("/api/v1/content")
	t := content.Group("/transaction")
	t.Post("/", th.Create)
	t.Get("/", th.List)
	t.Post("/notification", th.HandleNotification)
	t.Get("/check-status", th.CheckStatus)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
