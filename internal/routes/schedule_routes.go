package routes

import (
	"attendance-backend/config"
	"attendance-backend/internal/handler"
	"attendance-backend/internal/middleware"
	"attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupScheduleRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	repo := repository.NewScheduleRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	hdl := handler.NewScheduleHandler(repo, employeeRepo)

	api := app.Group("/api/schedule", middleware.Auth(cfg.JWTSecret))
	api.Post("/", hdl.Create)
	api.Get("/", hdl.List)
	api.Delete("/:id", hdl.Delete)
}
