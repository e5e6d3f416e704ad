package routers

import (
	"stashed/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupItemRouter(app *fiber.App, server *cmd.Server) {
	itemHandler := server.ItemHandler
	requireUser := server.AuthMiddleware.RequireUser

	app.Get("/items", requireUser, itemHandler.ListItems)
	app.Post("/items", requireUser, itemHandler.CreateItem)
	app.Get("/items/location/:locationId", requireUser, itemHandler.ListItemsByLocation)
	app.Get("/items/:id", requireUser, itemHandler.GetItemByID)
	app.Patch("/items/:id", requireUser, itemHandler.UpdateItem)
	app.Delete("/items/:id", requireUser, itemHandler.DeleteItem)
}
