package routes

import (
	"logbook-lapangan-backend/internal/handler"
	"logbook-lapangan-backend/internal/middleware"
	"logbook-lapangan-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPetugasRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewPetugasRepository(db)
	hdl := handler.NewPetugasHandler(repo)

	app.Post("/api/login", hdl.Login)

	api := app.Group("/api", middleware.Auth)
	api.Get("/profil", hdl.GetProfile)

	admin := app.Group("/api/admin/petugas", middleware.Auth, middleware.Role("admin"))
	admin.Get("/", hdl.GetAll)
	admin.Post("/", hdl.Create)
}
