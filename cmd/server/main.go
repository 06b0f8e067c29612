package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/matchboard/gamelogic/internal/controller"
	"github.com/matchboard/gamelogic/internal/middleware"
	"github.com/matchboard/gamelogic/internal/service"
)

func main() {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(middleware.EnsureRequestID())

	// Initialize services
	engineService := service.NewEngineService()

	// Initialize controllers
	engineController := controller.NewEngineController(engineService)
	wsController := controller.NewWebSocketController(engineService)

	// Set up WebSocket route: each message is one engine request
	app.Use("/ws/*", middleware.WebSocketUpgrade())
	app.Get("/ws/engine", websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	// Set up REST routes
	api := app.Group("/api")
	api.Post("/engine", engineController.HandleRequest)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	addr := ":3000"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	log.Fatal(app.Listen(addr))
}
