package routes

import (
	"attendance-backend/config"
	"attendance-backend/internal/handler"
	"attendance-backend/internal/middleware"
	"attendance-backend/internal/model"
	"attendance-backend/internal/report"
	"attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	aggregator := report.NewAggregator(cfg.Catalog, cfg.Location)

	hdl := handler.NewReportHandler(employeeRepo, attendanceRepo, scheduleRepo, aggregator)

	api := app.Group("/api/reports", middleware.Auth(cfg.JWTSecret),
		middleware.Role(model.RoleSupervisor, model.RoleManager, model.RoleOwner))
	api.Get("/", hdl.GetMonthly)
	api.Get("/export", hdl.Export)
}
