package main

import (
	"log"

	"attendance-backend/config"
	"attendance-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	cfg := config.Load()
	config.ConnectDB(cfg)

	app := fiber.New()

	// Middleware global
	app.Use(cors.New())
	app.Use(logger.New())

	// Foto bukti absen bisa diakses via /uploads/...
	app.Static("/uploads", cfg.UploadDir)

	routes.SetupAuthRoutes(app, config.DB, cfg)
	routes.SetupAttendanceRoutes(app, config.DB, cfg)
	routes.SetupScheduleRoutes(app, config.DB, cfg)
	routes.SetupMonitoringRoutes(app, config.DB, cfg)
	routes.SetupReportRoutes(app, config.DB, cfg)

	log.Println("Server siap di port", cfg.Port)
	log.Fatal(app.Listen(cfg.Port))
}
