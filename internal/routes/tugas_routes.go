package routes

import (
	"logbook-lapangan-backend/internal/handler"
	"logbook-lapangan-backend/internal/middleware"
	"logbook-lapangan-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTugasRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewTugasRepository(db)
	hdl := handler.NewTugasHandler(repo)

	api := app.Group("/api/admin/tugas", middleware.Auth, middleware.Role("admin"))

	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetDetail)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
