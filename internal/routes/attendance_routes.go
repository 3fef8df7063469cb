package routes

import (
	"attendance-backend/config"
	"attendance-backend/internal/handler"
	"attendance-backend/internal/middleware"
	"attendance-backend/internal/repository"
	"attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	attendanceRepo := repository.NewAttendanceRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	uc := usecase.NewAttendanceUsecase(attendanceRepo, employeeRepo, cfg.Catalog, cfg.Grace, cfg.Location)
	hdl := handler.NewAttendanceHandler(uc, employeeRepo, cfg.UploadDir, cfg.Location)

	api := app.Group("/api/attendance", middleware.Auth(cfg.JWTSecret))
	api.Post("/checkin", hdl.CheckIn)
	api.Post("/checkout", hdl.CheckOut)
	api.Get("/status", hdl.GetStatus)
	api.Get("/history", hdl.GetHistory)
	api.Post("/:id/approve-overtime", hdl.ApproveOvertime)
}
