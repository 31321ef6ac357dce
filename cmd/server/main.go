package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"fasttrackLogistics/internal/config"
	"fasttrackLogistics/internal/coordinator"
	"fasttrackLogistics/internal/db"
	"fasttrackLogistics/internal/httpapi"
	"fasttrackLogistics/internal/notify"
	"fasttrackLogistics/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.Printf("Configuration loaded: %v", cfg)

	// Open DB
	d, err := db.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.Printf("close db: %v", err)
		}
	}()

	shipments := repository.NewShipmentRepository(d)
	personnel := repository.NewPersonnelRepository(d)
	deliveries := repository.NewDeliveryRepository(d)
	notifications := repository.NewNotificationRepository(d)

	emitter := notify.NewEmitter(notifications)
	coord := coordinator.New(shipments, personnel, deliveries, emitter)

	app := setupFiberApp()
	httpapi.NewHandler(coord, emitter).Register(app)

	go func() {
		log.Printf("HTTP server listening on %s", cfg.HTTP.Address)
		if err := app.Listen(cfg.HTTP.Address); err != nil {
			log.Fatalf("server startup error: %v", err)
		}
	}()

	// Wait for signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func setupFiberApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "FastTrack Logistics v1.0",
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} - ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Request-ID",
	}))

	return app
}
