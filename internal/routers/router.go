package routers

import (
	"stashed/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(map[string]interface{}{"status": "ok"})
	})

	SetupUserRouter(app, server)
	SetupLocationRouter(app, server)
	SetupItemRouter(app, server)
	SetupBoxRouter(app, server)
	SetupBoxItemRouter(app, server)
}
