package routes

import (
	"attendance-backend/config"
	"attendance-backend/internal/handler"
	"attendance-backend/internal/middleware"
	"attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMonitoringRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	attendanceRepo := repository.NewAttendanceRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	hdl := handler.NewMonitoringHandler(attendanceRepo, employeeRepo, cfg.Location)

	app.Get("/api/monitoring", middleware.Auth(cfg.JWTSecret), hdl.Today)
}
