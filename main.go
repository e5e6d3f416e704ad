package main

import (
	"fmt"
	"log"

	"stashed/internal/config"
	"stashed/internal/routers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	server, err := InitializeServer()
	if err != nil {
		log.Fatal(err)
	}
	server.JanitorService.StartPurgeCycle()

	cfg, err := Provider()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit:   cfg.Server.RequestConfig.SizeLimit * 1024 * 1024,
		Concurrency: cfg.Server.Concurrency * 1024,
		AppName:     "Stashed",
	})

	app.Use(logger.New())
	routers.SetupRoutes(app, server)

	err = app.Listen(fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("stashed.yaml")
}
