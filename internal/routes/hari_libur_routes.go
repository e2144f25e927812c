package routes

import (
	"logbook-lapangan-backend/internal/handler"
	"logbook-lapangan-backend/internal/middleware"
	"logbook-lapangan-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupHariLiburRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewHariLiburRepository(db)
	hdl := handler.NewHariLiburHandler(repo)

	api := app.Group("/api/admin/hari-libur", middleware.Auth, middleware.Role("admin"))

	api.Get("/", hdl.GetAll)
	api.Get("/cek", hdl.Cek)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
