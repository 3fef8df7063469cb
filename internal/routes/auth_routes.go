package routes

import (
	"attendance-backend/config"
	"attendance-backend/internal/handler"
	"attendance-backend/internal/middleware"
	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
	"attendance-backend/internal/usecase"
	"attendance-backend/pkg/mailer"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	repo := repository.NewEmployeeRepository(db)
	m := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	uc := usecase.NewAuthUsecase(repo, cfg.JWTSecret, m)
	hdl := handler.NewAuthHandler(uc, repo)

	app.Post("/api/auth/register", hdl.Register)
	app.Post("/api/auth/login", hdl.Login)

	admin := app.Group("/api/admin/employees", middleware.Auth(cfg.JWTSecret), middleware.Role(model.RoleManager, model.RoleOwner))
	admin.Get("/", hdl.ListEmployees)
	admin.Post("/:id/approve", hdl.Approve)
}
