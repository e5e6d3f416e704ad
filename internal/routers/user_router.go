package routers

import (
	"stashed/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRouter(app *fiber.App, server *cmd.Server) {
	userHandler := server.UserHandler
	requireUser := server.AuthMiddleware.RequireUser

	app.Post("/users/register", userHandler.Register)
	app.Post("/users/login", userHandler.Login)
	app.Post("/users/logout", requireUser, userHandler.Logout)
	app.Get("/users/me", requireUser, userHandler.Me)
	app.Patch("/users/me", requireUser, userHandler.UpdateMe)
	app.Delete("/users/me", requireUser, userHandler.DeleteMe)
}
