package routers

import (
	"stashed/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupBoxRouter(app *fiber.App, server *cmd.Server) {
	boxHandler := server.BoxHandler
	requireUser := server.AuthMiddleware.RequireUser

	app.Get("/boxes", requireUser, boxHandler.ListBoxes)
	app.Post("/boxes", requireUser, boxHandler.CreateBox)
	app.Get("/boxes/location/:locationId", requireUser, boxHandler.ListBoxesByLocation)
	app.Get("/boxes/:id", requireUser, boxHandler.GetBoxByID)
	app.Patch("/boxes/:id", requireUser, boxHandler.UpdateBox)
	app.Delete("/boxes/:id", requireUser, boxHandler.DeleteBox)
}
