package cmd

import (
	"stashed/internal/handlers"
	"stashed/internal/services"
)

type Server struct {
	UserService       services.UserService
	UserHandler       *handlers.UserHandler
	LocationService   services.LocationService
	LocationHandler   *handlers.LocationHandler
	ItemService       services.ItemService
	ItemHandler       *handlers.ItemHandler
	BoxService        services.BoxService
	BoxHandler        *handlers.BoxHandler
	MembershipService services.MembershipService
	MembershipHandler *handlers.MembershipHandler
	CascadeService    services.CascadeService
	AuthService       services.AuthService
	AuthMiddleware    *handlers.AuthMiddleware
	LogService        services.LogService
	JanitorService    *services.Janitor
}

func NewServer(
	userService services.UserService,
	userHandler *handlers.UserHandler,
	locationService services.LocationService,
	locationHandler *handlers.LocationHandler,
	itemService services.ItemService,
	itemHandler *handlers.ItemHandler,
	boxService services.BoxService,
	boxHandler *handlers.BoxHandler,
	membershipService services.MembershipService,
	membershipHandler *handlers.MembershipHandler,
	cascadeService services.CascadeService,
	authService services.AuthService,
	authMiddleware *handlers.AuthMiddleware,
	logService services.LogService,
	janitorService *services.Janitor,
) *Server {
	return &Server{
		UserService:       userService,
		UserHandler:       userHandler,
		LocationService:   locationService,
		LocationHandler:   locationHandler,
		ItemService:       itemService,
		ItemHandler:       itemHandler,
		BoxService:        boxService,
		BoxHandler:        boxHandler,
		MembershipService: membershipService,
		MembershipHandler: membershipHandler,
		CascadeService:    cascadeService,
		AuthService:       authService,
		AuthMiddleware:    authMiddleware,
		LogService:        logService,
		JanitorService:    janitorService,
	}
}
