package routers

import (
	"stashed/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupLocationRouter(app *fiber.App, server *cmd.Server) {
	locationHandler := server.LocationHandler
	requireUser := server.AuthMiddleware.RequireUser

	app.Get("/storage_locations", requireUser, locationHandler.ListLocations)
	app.Post("/storage_locations", requireUser, locationHandler.CreateLocation)
	app.Get("/storage_locations/:id", requireUser, locationHandler.GetLocationByID)
	app.Get("/storage_locations/:id/contents", requireUser, locationHandler.GetLocationContents)
	app.Patch("/storage_locations/:id", requireUser, locationHandler.UpdateLocation)
	app.Delete("/storage_locations/:id", requireUser, locationHandler.DeleteLocation)
}
