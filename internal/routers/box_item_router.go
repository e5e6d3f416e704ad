package routers

import (
	"stashed/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupBoxItemRouter(app *fiber.App, server *cmd.Server) {
	membershipHandler := server.MembershipHandler
	requireUser := server.AuthMiddleware.RequireUser

	app.Post("/box_items", requireUser, membershipHandler.AssignItem)
	app.Get("/box_items/box/:boxId", requireUser, membershipHandler.ListMembersByBox)
	app.Get("/box_items/:itemId", requireUser, membershipHandler.GetMembershipByItem)
	app.Patch("/box_items/:itemId", requireUser, membershipHandler.ReassignItem)
	app.Delete("/box_items/:itemId", requireUser, membershipHandler.UnassignItem)
}
