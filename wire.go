//go:build wireinject
// +build wireinject

package main

import (
	"stashed/cmd"
	"stashed/database"
	"stashed/internal/handlers"
	"stashed/internal/repository"
	"stashed/internal/services"

	"github.com/google/wire"
)

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		database.SetupDatabase,
		repository.NewUserRepository,
		repository.NewLocationRepository,
		repository.NewItemRepository,
		repository.NewBoxRepository,
		repository.NewBoxItemRepository,
		repository.NewSessionRepository,
		services.NewUserService,
		services.NewLocationService,
		services.NewItemService,
		services.NewBoxService,
		services.NewMembershipService,
		services.NewCascadeService,
		services.NewAuthService,
		services.NewLogService,
		services.NewJanitorService,
		handlers.NewUserHandler,
		handlers.NewLocationHandler,
		handlers.NewItemHandler,
		handlers.NewBoxHandler,
		handlers.NewMembershipHandler,
		handlers.NewAuthMiddleware,
		Provider,
	)
	return nil, nil
}
